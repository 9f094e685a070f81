package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
)

// FileSink writes exports into a local directory.
type FileSink struct {
	Dir    string
	logger logging.Logger
}

// NewFileSink creates a FileSink rooted at dir.
func NewFileSink(dir string, logger logging.Logger) *FileSink {
	return &FileSink{Dir: dir, logger: logging.OrDefault(logger)}
}

// Put writes data to Dir/name, creating Dir when needed.
func (s *FileSink) Put(_ context.Context, name, _ string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, models.PermissionDirectory); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, models.PermissionReportFile); err != nil {
		return "", fmt.Errorf("error writing %s: %w", path, err)
	}

	s.logger.Debug("Wrote export file",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, len(data)))
	return path, nil
}

// Close implements Sink.
func (s *FileSink) Close() error {
	return nil
}
