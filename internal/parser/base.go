// Package parser provides the base functionality shared by the activity
// readers.
package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
	"fjacquet/activity-export/internal/parsererror"
)

// FromReader is the file path reported for errors on reader input.
const FromReader = "(from reader)"

// BaseParser holds the logger of a reader. Readers embed it:
//
//	type Adapter struct {
//		parser.BaseParser
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser. A nil logger is replaced by the
// default one.
func NewBaseParser(logger logging.Logger) BaseParser {
	return BaseParser{logger: logging.OrDefault(logger)}
}

// SetLogger replaces the logger.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// ParseFileWith opens path, hands it to parse and tags format errors with
// the file path.
func (b *BaseParser) ParseFileWith(path string, parse func(io.Reader) ([]models.RawActivity, error)) ([]models.RawActivity, error) {
	b.logger.Info("Reading activities", logging.F(logging.FieldInputFile, path))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			b.logger.WithError(err).Warn("Failed to close input file",
				logging.F(logging.FieldInputFile, path))
		}
	}()

	activities, err := parse(f)
	if err != nil {
		return nil, withPath(err, path)
	}

	b.logger.Info("Read activities",
		logging.F(logging.FieldInputFile, path),
		logging.F(logging.FieldCount, len(activities)))
	return activities, nil
}

func withPath(err error, path string) error {
	switch e := err.(type) {
	case *parsererror.InvalidFormatError:
		if e.FilePath == FromReader {
			e.FilePath = path
		}
	case *parsererror.DataExtractionError:
		if e.FilePath == FromReader {
			e.FilePath = path
		}
	}
	return err
}

// ValidateActivities checks the fields every record must carry: an id, used
// as the export transaction id, and a type.
func ValidateActivities(activities []models.RawActivity) error {
	for i, a := range activities {
		if strings.TrimSpace(a.ID) == "" {
			return &parsererror.DataExtractionError{
				FilePath:       FromReader,
				FieldName:      "id",
				RawDataSnippet: fmt.Sprintf("record %d", i+1),
				Reason:         "missing activity id",
			}
		}
		if strings.TrimSpace(a.Type) == "" {
			return &parsererror.DataExtractionError{
				FilePath:       FromReader,
				FieldName:      "type",
				RawDataSnippet: fmt.Sprintf("record %d (id %s)", i+1, a.ID),
				Reason:         "missing activity type",
			}
		}
	}
	return nil
}
