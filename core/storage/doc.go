// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the country dataset can be read from (and
// published to) AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface exposes only the operations the service needs, which keeps
// the mock in core/storage/mocks small.
//
//   - BucketExists: Verifies access to the dataset bucket.
//   - MakeBucket: Creates the bucket when publishing a dataset.
//   - PutObject: Uploads a dataset file.
//   - GetObject: Streams the dataset at startup.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	src := &dataset.StorageSource{Client: client, Bucket: cfg.Storage.Bucket, Object: cfg.Dataset.Object}
package storage
