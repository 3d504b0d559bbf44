package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"element-attributes/core/artifact"
	"element-attributes/core/compile"
	"element-attributes/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageSink uploads the encoded artifact to object storage.
type StorageSink struct {
	client storage.Client
	bucket string
	object string
	region string
	format artifact.Format
}

var (
	_ Sink   = (*StorageSink)(nil)
	_ Reader = (*StorageSink)(nil)
)

// NewStorageSink creates a StorageSink for cfg's bucket and object.
func NewStorageSink(client storage.Client, cfg storage.Config, format artifact.Format) *StorageSink {
	return &StorageSink{
		client: client,
		bucket: cfg.Bucket,
		object: cfg.Object,
		region: cfg.Region,
		format: format,
	}
}

// Name returns "storage".
func (s *StorageSink) Name() string {
	return "storage"
}

// Write uploads the artifact, creating the bucket when it does not exist.
func (s *StorageSink) Write(ctx context.Context, t compile.Table, runID string) error {
	data, err := artifact.Encode(t, s.format)
	if err != nil {
		return err
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	contentType := "application/json"
	if s.format == artifact.FormatModule {
		contentType = "text/javascript"
	}
	opts := minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"run-id": runID},
	}
	if _, err := s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(data), int64(len(data)), opts); err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", s.bucket, s.object, err)
	}
	return nil
}

// Read downloads and decodes the artifact.
func (s *StorageSink) Read(ctx context.Context) (compile.Table, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", s.bucket, s.object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", s.bucket, s.object, err)
	}
	return artifact.Decode(data, artifact.DetectFormat(data))
}
