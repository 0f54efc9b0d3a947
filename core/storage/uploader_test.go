package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"fiber-extras/core/storage"
	"fiber-extras/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploader_Upload(t *testing.T) {
	client := new(mocks.Client)
	u := storage.NewUploader(client, "")
	ctx := context.Background()

	client.On("FPutObject", ctx, "test-bucket", "destination.png", "source.png",
		minio.PutObjectOptions{ContentType: "image/png"}).
		Return(minio.UploadInfo{Bucket: "test-bucket", Key: "destination.png", Size: 4}, nil).Once()

	info, err := u.Upload(ctx, "test-bucket", "destination.png", "source.png")
	require.NoError(t, err)
	assert.Equal(t, "destination.png", info.Key)
	client.AssertExpectations(t)
}

func TestUploader_UploadFails(t *testing.T) {
	client := new(mocks.Client)
	u := storage.NewUploader(client, "")

	client.On("FPutObject", mock.Anything, "b", "d.bin", "missing.bin", mock.Anything).
		Return(minio.UploadInfo{}, errors.New("open missing.bin: no such file")).Once()

	_, err := u.Upload(context.Background(), "b", "d.bin", "missing.bin")
	assert.ErrorContains(t, err, "no such file")
}

func TestUploader_UploadStream(t *testing.T) {
	client := new(mocks.Client)
	u := storage.NewUploader(client, "")
	body := strings.NewReader("hello")

	client.On("PutObject", mock.Anything, "b", "dir/blob", body, int64(5),
		minio.PutObjectOptions{ContentType: "application/octet-stream"}).
		Return(minio.UploadInfo{Key: "dir/blob", Size: 5}, nil).Once()

	info, err := u.UploadStream(context.Background(), "b", "dir/blob", body, 5, "")
	require.NoError(t, err)
	assert.EqualValues(t, 5, info.Size)
	client.AssertExpectations(t)
}

func TestUploader_EmptyNames(t *testing.T) {
	u := storage.NewUploader(new(mocks.Client), "")
	ctx := context.Background()

	_, err := u.Upload(ctx, "", "d", "s")
	assert.ErrorIs(t, err, storage.ErrEmptyName)
	_, err = u.UploadStream(ctx, "b", "", strings.NewReader(""), 0, "")
	assert.ErrorIs(t, err, storage.ErrEmptyName)
	_, err = u.Download(ctx, "b", "")
	assert.ErrorIs(t, err, storage.ErrEmptyName)
	assert.ErrorIs(t, u.Remove(ctx, "", "x"), storage.ErrEmptyName)
	_, err = u.EnsureBucket(ctx, "")
	assert.ErrorIs(t, err, storage.ErrEmptyName)
}

func TestUploader_EnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "assets").Return(true, nil).Once()

		created, err := storage.NewUploader(client, "us-east-1").EnsureBucket(ctx, "assets")
		require.NoError(t, err)
		assert.False(t, created)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "assets").Return(false, nil).Once()
		client.On("MakeBucket", ctx, "assets", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil).Once()

		created, err := storage.NewUploader(client, "us-east-1").EnsureBucket(ctx, "assets")
		require.NoError(t, err)
		assert.True(t, created)
		client.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "assets").Return(false, errors.New("connection refused")).Once()

		_, err := storage.NewUploader(client, "").EnsureBucket(ctx, "assets")
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestUploader_DownloadAndRemove(t *testing.T) {
	client := new(mocks.Client)
	u := storage.NewUploader(client, "")
	ctx := context.Background()

	client.On("GetObject", ctx, "b", "k", minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader("data")), nil).Once()
	client.On("RemoveObject", ctx, "b", "k", minio.RemoveObjectOptions{}).Return(nil).Once()

	rc, err := u.Download(ctx, "b", "k")
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "data", string(data))

	assert.NoError(t, u.Remove(ctx, "b", "k"))
	client.AssertExpectations(t)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchBucket"}))
	assert.False(t, storage.IsNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, storage.IsNotFound(errors.New("boom")))
}
