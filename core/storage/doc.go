// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client with the few operations the artifact sink needs:
// checking and creating the bucket, uploading the compiled table and reading it
// back for the lookup server. Both AWS S3 and self-hosted MinIO are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider so that sinks can
// be tested against the mock in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
