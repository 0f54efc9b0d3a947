package uploads

import (
	"context"
	"io"
	"mime"
	"path"
	"strings"
	"sync"

	"fiber-extras/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service handles object operations for one bucket.
type Service struct {
	uploader *storage.Uploader
	bucket   string
	logger   *zap.Logger

	mu      sync.Mutex
	ensured bool
}

// NewService creates a new uploads service.
func NewService(uploader *storage.Uploader, bucket string, logger *zap.Logger) *Service {
	return &Service{uploader: uploader, bucket: bucket, logger: logger}
}

// Store writes r under name, creating the bucket on first use.
func (s *Service) Store(ctx context.Context, name string, r io.Reader, size int64, contentType string) (minio.UploadInfo, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return minio.UploadInfo{}, err
	}
	return s.uploader.UploadStream(ctx, s.bucket, name, r, size, contentType)
}

// Open returns a reader for name.
func (s *Service) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.uploader.Download(ctx, s.bucket, name)
}

// Delete removes name.
func (s *Service) Delete(ctx context.Context, name string) error {
	return s.uploader.Remove(ctx, s.bucket, name)
}

func (s *Service) ensureBucket(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ensured {
		return nil
	}
	created, err := s.uploader.EnsureBucket(ctx, s.bucket)
	if err != nil {
		return err
	}
	if created {
		s.logger.Info("Bucket created", zap.String("bucket", s.bucket))
	}
	s.ensured = true
	return nil
}

// objectName cleans a wildcard route parameter into an object key.
func objectName(raw string) string {
	name := path.Clean("/" + raw)
	return strings.TrimPrefix(name, "/")
}

func readAll(rc io.ReadCloser) ([]byte, error) {
	defer rc.Close()
	return io.ReadAll(rc)
}

func contentTypeOf(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
