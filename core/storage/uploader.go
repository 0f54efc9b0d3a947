package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"

	"github.com/minio/minio-go/v7"
)

// ErrEmptyName is returned when a bucket or object name is missing.
var ErrEmptyName = errors.New("bucket and object names are required")

// Uploader stores files and streams as objects.
type Uploader struct {
	client Client
	region string
}

// NewUploader creates an Uploader. region is used when EnsureBucket has to
// create the bucket.
func NewUploader(client Client, region string) *Uploader {
	return &Uploader{client: client, region: region}
}

// Client returns the underlying storage client.
func (u *Uploader) Client() Client {
	return u.client
}

// EnsureBucket creates bucket when it does not exist yet.
func (u *Uploader) EnsureBucket(ctx context.Context, bucket string) (created bool, err error) {
	if bucket == "" {
		return false, ErrEmptyName
	}

	exists, err := u.client.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return false, nil
	}

	if err := u.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: u.region}); err != nil {
		return false, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return true, nil
}

// Upload copies the local file source to bucket/destination.
func (u *Uploader) Upload(ctx context.Context, bucket, destination, source string) (minio.UploadInfo, error) {
	if bucket == "" || destination == "" {
		return minio.UploadInfo{}, ErrEmptyName
	}

	info, err := u.client.FPutObject(ctx, bucket, destination, source, minio.PutObjectOptions{
		ContentType: contentTypeOf(destination, ""),
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload %s: %w", source, err)
	}
	return info, nil
}

// UploadStream writes size bytes from r to bucket/destination. A negative size
// streams until EOF.
func (u *Uploader) UploadStream(ctx context.Context, bucket, destination string, r io.Reader, size int64, contentType string) (minio.UploadInfo, error) {
	if bucket == "" || destination == "" {
		return minio.UploadInfo{}, ErrEmptyName
	}

	info, err := u.client.PutObject(ctx, bucket, destination, r, size, minio.PutObjectOptions{
		ContentType: contentTypeOf(destination, contentType),
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload %s: %w", destination, err)
	}
	return info, nil
}

// Download opens bucket/name for reading. The caller closes the reader.
func (u *Uploader) Download(ctx context.Context, bucket, name string) (io.ReadCloser, error) {
	if bucket == "" || name == "" {
		return nil, ErrEmptyName
	}
	obj, err := u.client.GetObject(ctx, bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return obj, nil
}

// Remove deletes bucket/name.
func (u *Uploader) Remove(ctx context.Context, bucket, name string) error {
	if bucket == "" || name == "" {
		return ErrEmptyName
	}
	if err := u.client.RemoveObject(ctx, bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}

func contentTypeOf(name, given string) string {
	if given != "" {
		return given
	}
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// IsNotFound reports whether err is a missing bucket or object.
func IsNotFound(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
	}
	return false
}
