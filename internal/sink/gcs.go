package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"

	"fjacquet/activity-export/internal/logging"
)

// GCSSink uploads exports to a Cloud Storage bucket using application
// default credentials.
type GCSSink struct {
	client *storage.Client
	bucket string
	prefix string
	logger logging.Logger
}

// NewGCSSink creates a GCSSink.
func NewGCSSink(ctx context.Context, bucket, prefix string, logger logging.Logger) (*GCSSink, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSSink{client: client, bucket: bucket, prefix: prefix, logger: logging.OrDefault(logger)}, nil
}

// Put uploads data as bucket/prefix/name.
func (s *GCSSink) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	object := objectName(s.prefix, name)

	w := s.client.Bucket(s.bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("copy export to GCS writer: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize upload: %w", err)
	}

	location := fmt.Sprintf("gs://%s/%s", s.bucket, object)
	s.logger.Debug("Uploaded export", logging.F(logging.FieldDestination, location))
	return location, nil
}

// Close releases the storage client.
func (s *GCSSink) Close() error {
	return s.client.Close()
}
