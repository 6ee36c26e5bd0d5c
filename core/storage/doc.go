// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so schema listings can be read from, and generated
// SQL written to, AWS S3 or a self-hosted MinIO instance. Objects are addressed with
// "s3://bucket/object" URLs (see ParseURL).
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: used by Upload to create the target bucket on demand.
//   - PutObject: uploads generated SQL.
//   - GetObject: retrieves schema listings as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.Upload(ctx, client, "diffs", "daily/diff.sql", sql, "application/sql")
package storage
