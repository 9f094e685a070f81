package exporter

import (
	"strings"

	"fjacquet/activity-export/internal/parsererror"
)

// MIME types
const (
	MIMETypeCSV = "text/csv;charset=utf-8"
	MIMETypeOFX = "application/x-ofx"
)

// Format is one of CSV, OFX or QFX. The interface is sealed: no other
// package can add a format, and the nil Format is not a valid value.
type Format interface {
	Name() string
	Extension() string
	MIMEType() string

	render(e *Exporter, p payload) string
}

type csvFormat struct{}
type ofxFormat struct{}
type qfxFormat struct{}

// Supported formats
var (
	CSV Format = csvFormat{}
	OFX Format = ofxFormat{}
	QFX Format = qfxFormat{}
)

// Formats lists every format in a stable order.
func Formats() []Format {
	return []Format{CSV, OFX, QFX}
}

func (csvFormat) Name() string      { return "csv" }
func (csvFormat) Extension() string { return "csv" }
func (csvFormat) MIMEType() string  { return MIMETypeCSV }

func (ofxFormat) Name() string      { return "ofx" }
func (ofxFormat) Extension() string { return "ofx" }
func (ofxFormat) MIMEType() string  { return MIMETypeOFX }

func (qfxFormat) Name() string      { return "qfx" }
func (qfxFormat) Extension() string { return "qfx" }
func (qfxFormat) MIMEType() string  { return MIMETypeOFX }

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Formats() {
		if f.Name() == n {
			return f, nil
		}
	}
	return nil, &parsererror.UnsupportedFormatError{Format: name, Supported: FormatNames()}
}

// FormatNames returns the names ParseFormat accepts.
func FormatNames() []string {
	formats := Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.Name()
	}
	return names
}
