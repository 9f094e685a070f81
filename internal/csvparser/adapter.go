package csvparser

import (
	"encoding/csv"
	"io"
	"os"

	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
	"fjacquet/activity-export/internal/parser"
)

// Adapter implements models.Parser for CSV activity files.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates a CSV activity reader.
func NewAdapter(logger logging.Logger) *Adapter {
	return &Adapter{BaseParser: parser.NewBaseParser(logger)}
}

// Parse implements models.Parser.
func (a *Adapter) Parse(r io.Reader) ([]models.RawActivity, error) {
	return Parse(r)
}

// ParseFile implements models.Parser.
func (a *Adapter) ParseFile(path string) ([]models.RawActivity, error) {
	return a.ParseFileWith(path, Parse)
}

// ValidateFormat reports whether the file has a CSV header with the
// required columns.
func (a *Adapter) ValidateFormat(file string) (bool, error) {
	f, err := os.Open(file)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			a.GetLogger().WithError(err).Warn("Failed to close file during format validation",
				logging.F(logging.FieldInputFile, file))
		}
	}()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		return false, nil
	}
	if len(header) > 0 {
		header[0] = trimBOM(header[0])
	}
	return len(missingColumns(header)) == 0, nil
}

func trimBOM(s string) string {
	if len(s) >= len(utf8BOM) && s[:len(utf8BOM)] == string(utf8BOM) {
		return s[len(utf8BOM):]
	}
	return s
}

var _ models.Parser = (*Adapter)(nil)
