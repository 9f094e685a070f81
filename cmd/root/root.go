// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"fjacquet/activity-export/internal/config"
	"fjacquet/activity-export/internal/container"
	"fjacquet/activity-export/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input   string
	Output  string
	Account string
}

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured one once the container is built.
	Log = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the wired dependencies of the running command.
	AppContainer *container.Container

	// ConfigFile is an explicit configuration file, if any.
	ConfigFile string

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "activity-export",
		Short: "Normalize brokerage activity and export it to CSV, OFX or QFX.",
		Long: `activity-export reads raw brokerage activity (JSON or CSV), normalizes it
into signed, categorized transactions and exports them as budgeting or trading
CSV, OFX or QFX statements.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to activity-export!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}

	initOnce sync.Once
)

// Init initializes the root command and all flags
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input activity file or directory (JSON or CSV)")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output directory, file, gs://bucket/prefix or azblob://container/prefix")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Account, "account", "a", "", "Restrict to one account id")
		Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Configuration file (default: config.yaml in $HOME/.activity-export, .activity-export or .)")
	})
}

func setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv(Log)

	cfg, err := config.InitializeConfigWithFile(ConfigFile)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("error initializing application: %w", err)
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if AppContainer == nil {
		return nil
	}
	err := AppContainer.Close()
	AppContainer = nil
	return err
}
