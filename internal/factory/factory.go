// Package factory creates activity readers by input format.
package factory

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/activity-export/internal/csvparser"
	"fjacquet/activity-export/internal/jsonparser"
	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
)

// ParserType defines the types of readers available.
type ParserType string

const (
	JSON ParserType = "json"
	CSV  ParserType = "csv"
)

// GetParserWithLogger returns a reader for the given type.
func GetParserWithLogger(parserType ParserType, logger logging.Logger) (models.Parser, error) {
	switch parserType {
	case JSON:
		return jsonparser.NewAdapter(logger), nil
	case CSV:
		return csvparser.NewAdapter(logger), nil
	default:
		return nil, fmt.Errorf("unknown parser type: %s", parserType)
	}
}

// DetectParserType picks the reader for a file from its extension. Files
// without a known extension are probed with each reader's ValidateFormat.
func DetectParserType(path string, logger logging.Logger) (ParserType, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".csv":
		return CSV, nil
	}

	for _, t := range []ParserType{JSON, CSV} {
		p, err := GetParserWithLogger(t, logger)
		if err != nil {
			return "", err
		}
		ok, err := p.ValidateFormat(path)
		if err != nil {
			return "", fmt.Errorf("error probing %s: %w", path, err)
		}
		if ok {
			return t, nil
		}
	}
	return "", fmt.Errorf("cannot detect the activity format of %s", path)
}
