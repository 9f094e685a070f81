package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"

	"fjacquet/activity-export/internal/logging"
)

// AzureBlobSink uploads exports to a blob container, authenticating with
// the default Azure credential chain.
type AzureBlobSink struct {
	client    *azblob.Client
	container string
	prefix    string
	logger    logging.Logger
}

// NewAzureBlobSink creates an AzureBlobSink for the storage account at
// serviceURL.
func NewAzureBlobSink(serviceURL, container, prefix string, logger logging.Logger) (*AzureBlobSink, error) {
	if serviceURL == "" {
		return nil, errors.New("sink.azure_service_url is required for azblob:// destinations")
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create default azure credential: %w", err)
	}
	client, err := azblob.NewClient(serviceURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	return &AzureBlobSink{client: client, container: container, prefix: prefix, logger: logging.OrDefault(logger)}, nil
}

// Put uploads data as container/prefix/name.
func (s *AzureBlobSink) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	blobName := objectName(s.prefix, name)

	opts := &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	}
	if _, err := s.client.UploadBuffer(ctx, s.container, blobName, data, opts); err != nil {
		return "", fmt.Errorf("upload blob: %w", err)
	}

	location := fmt.Sprintf("azblob://%s/%s", s.container, blobName)
	s.logger.Debug("Uploaded export", logging.F(logging.FieldDestination, location))
	return location, nil
}

// Close implements Sink.
func (s *AzureBlobSink) Close() error {
	return nil
}
