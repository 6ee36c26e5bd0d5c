package storage_test

import (
	"context"
	"io"
	"testing"

	"checkatron/core/storage"
	"checkatron/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestConfigEnabled(t *testing.T) {
	assert.False(t, storage.Config{Endpoint: "localhost:9000"}.Enabled())
	assert.True(t, storage.Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}.Enabled())
}

func TestParseURL(t *testing.T) {
	tests := []struct {
		in     string
		bucket string
		object string
		ok     bool
	}{
		{"s3://schemas/prod/before.csv", "schemas", "prod/before.csv", true},
		{"s3://schemas/x", "schemas", "x", true},
		{"s3://schemas/", "", "", false},
		{"s3://", "", "", false},
		{"before.csv", "", "", false},
		{"/tmp/s3://a/b", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			bucket, object, ok := storage.ParseURL(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.object, object)
		})
	}
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	payload := []byte("SELECT 1;\n")

	t.Run("ExistingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "diffs").Return(true, nil)
		client.On("PutObject", ctx, "diffs", "out/diff.sql", mock.Anything, int64(len(payload)), mock.Anything).
			Run(func(args mock.Arguments) {
				body, err := io.ReadAll(args.Get(3).(io.Reader))
				require.NoError(t, err)
				assert.Equal(t, payload, body)
				assert.Equal(t, "application/sql", args.Get(5).(minio.PutObjectOptions).ContentType)
			}).
			Return(minio.UploadInfo{}, nil)

		err := storage.Upload(ctx, client, "diffs", "out/diff.sql", payload, "application/sql")
		assert.NoError(t, err)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
		client.AssertExpectations(t)
	})

	t.Run("MissingBucketIsCreated", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "diffs").Return(false, nil)
		client.On("MakeBucket", ctx, "diffs", mock.Anything).Return(nil)
		client.On("PutObject", ctx, "diffs", "diff.sql", mock.Anything, int64(len(payload)), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		assert.NoError(t, storage.Upload(ctx, client, "diffs", "diff.sql", payload, "application/sql"))
		client.AssertExpectations(t)
	})

	t.Run("BucketCheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "diffs").Return(false, assert.AnError)

		err := storage.Upload(ctx, client, "diffs", "diff.sql", payload, "application/sql")
		assert.ErrorIs(t, err, assert.AnError)
	})
}
