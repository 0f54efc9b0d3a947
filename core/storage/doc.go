// Package storage wraps the MinIO client for S3 compatible object storage.
//
// Client is the narrow interface the service needs, which keeps storage
// interactions mockable (see core/storage/mocks). Uploader builds on it:
//
//   - EnsureBucket: creates the bucket on first use.
//   - Upload: copies a local file into a bucket.
//   - UploadStream: stores a reader, e.g. a multipart upload.
//   - Download and Remove: read back or delete an object.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	up := storage.NewUploader(client, cfg.Storage.Region)
//	_, err = up.Upload(ctx, "assets", "logo.png", "/tmp/logo.png")
package storage
