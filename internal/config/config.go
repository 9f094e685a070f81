package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fjacquet/activity-export/internal/logging"
)

// LoadEnv loads variables from a .env file in the current or parent
// directory, if there is one. Variables already set are kept. It returns
// the file it loaded.
func LoadEnv(logger logging.Logger) string {
	logger = logging.OrDefault(logger)

	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			logger.WithError(err).Warn("Error loading .env file", logging.F(logging.FieldInputFile, envFile))
			return ""
		}
		logger.Debug("Loaded environment variables", logging.F(logging.FieldInputFile, envFile))
		return envFile
	}

	logger.Debug("No .env file found, using environment variables")
	return ""
}

// ConfigureLoggingFromConfig builds the logrus logger described by the log
// section.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// NewLogger wraps ConfigureLoggingFromConfig in the application Logger.
func NewLogger(config *Config) logging.Logger {
	return logging.NewLogrusAdapterFromLogger(ConfigureLoggingFromConfig(config))
}
