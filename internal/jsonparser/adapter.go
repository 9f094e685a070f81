package jsonparser

import (
	"bufio"
	"io"
	"os"
	"unicode"

	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
	"fjacquet/activity-export/internal/parser"
)

// Adapter implements models.Parser for JSON activity files.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates a JSON activity reader.
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

// ValidateFormat reports whether the file starts like a JSON document.
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

	reader := bufio.NewReader(f)
	for {
		r, _, err := reader.ReadRune()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if r == '\uFEFF' || unicode.IsSpace(r) {
			continue
		}
		return r == '[' || r == '{', nil
	}
}

var _ models.Parser = (*Adapter)(nil)
