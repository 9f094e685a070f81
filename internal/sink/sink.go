// Package sink delivers export files to a local directory, a Google Cloud
// Storage bucket or an Azure blob container.
package sink

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"fjacquet/activity-export/internal/dateutils"
	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
)

// Sink stores one named object and returns where it went.
type Sink interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
	Close() error
}

// Scheme identifies the kind of destination.
type Scheme string

const (
	SchemeFile  Scheme = "file"
	SchemeGCS   Scheme = "gs"
	SchemeAzure Scheme = "azblob"
)

// Destination is a parsed output location: a directory, gs://bucket/prefix
// or azblob://container/prefix.
type Destination struct {
	Scheme    Scheme
	Container string // bucket or container, empty for files
	Prefix    string // directory for files, object prefix otherwise
}

// ParseDestination parses an output location. Anything without a known
// scheme is a local directory; the empty string is the current one.
func ParseDestination(raw string) (Destination, error) {
	for _, scheme := range []Scheme{SchemeGCS, SchemeAzure} {
		rest, ok := strings.CutPrefix(raw, string(scheme)+"://")
		if !ok {
			continue
		}
		container, prefix, _ := strings.Cut(rest, "/")
		if container == "" {
			return Destination{}, fmt.Errorf("missing bucket or container in %q", raw)
		}
		return Destination{Scheme: scheme, Container: container, Prefix: strings.Trim(prefix, "/")}, nil
	}

	dir := strings.TrimPrefix(raw, "file://")
	if dir == "" {
		dir = "."
	}
	return Destination{Scheme: SchemeFile, Prefix: dir}, nil
}

// FileName is the object name of an account's export generated on date.
func FileName(accountID string, date time.Time, extension string) string {
	id := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(strings.TrimSpace(accountID))
	if id == "" {
		id = "export"
	}
	return fmt.Sprintf("%s-%s.%s", id, dateutils.ToOFXDate(date), extension)
}

// Encode returns the bytes to store. OFX and QFX declare CHARSET:1252, so
// with transcode set they are converted from UTF-8 to Windows-1252;
// characters outside it become the encoding's replacement byte.
func Encode(file models.ExportFile, transcode bool) ([]byte, error) {
	if !transcode || file.Extension == "csv" {
		return []byte(file.Content), nil
	}
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	out, err := enc.String(file.Content)
	if err != nil {
		return nil, fmt.Errorf("error transcoding to windows-1252: %w", err)
	}
	return []byte(out), nil
}

// Publisher encodes export files and hands them to a Sink.
type Publisher struct {
	sink      Sink
	transcode bool
	logger    logging.Logger
}

// NewPublisher creates a Publisher.
func NewPublisher(s Sink, transcode bool, logger logging.Logger) *Publisher {
	return &Publisher{sink: s, transcode: transcode, logger: logging.OrDefault(logger)}
}

// Publish stores file under the account's dated name and returns its
// location.
func (p *Publisher) Publish(ctx context.Context, accountID string, date time.Time, file models.ExportFile) (string, error) {
	return p.PublishAs(ctx, FileName(accountID, date, file.Extension), accountID, file)
}

// PublishAs stores file under an explicit name.
func (p *Publisher) PublishAs(ctx context.Context, name, accountID string, file models.ExportFile) (string, error) {
	data, err := Encode(file, p.transcode)
	if err != nil {
		return "", err
	}

	location, err := p.sink.Put(ctx, name, file.MIMEType, data)
	if err != nil {
		return "", fmt.Errorf("error publishing %s: %w", name, err)
	}

	p.logger.Info("Published export",
		logging.F(logging.FieldAccountID, accountID),
		logging.F(logging.FieldDestination, location),
		logging.F(logging.FieldFormat, file.Extension))
	return location, nil
}

// Close releases the underlying sink.
func (p *Publisher) Close() error {
	return p.sink.Close()
}

// Options configures the remote sinks.
type Options struct {
	AzureServiceURL string
}

// Open creates the Sink of a destination.
func Open(ctx context.Context, dest Destination, opts Options, logger logging.Logger) (Sink, error) {
	switch dest.Scheme {
	case SchemeGCS:
		return NewGCSSink(ctx, dest.Container, dest.Prefix, logger)
	case SchemeAzure:
		return NewAzureBlobSink(opts.AzureServiceURL, dest.Container, dest.Prefix, logger)
	default:
		return NewFileSink(dest.Prefix, logger), nil
	}
}

func objectName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
