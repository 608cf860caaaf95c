package storage_test

import (
	"context"
	"reflect"
	"testing"

	"garment-stock/core/storage"
	"garment-stock/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func defaultBucket(t *testing.T) string {
	t.Helper()
	field, ok := reflect.TypeOf(storage.Config{}).FieldByName("Bucket")
	require.True(t, ok)
	return field.Tag.Get("default")
}

func TestConfig(t *testing.T) {
	assert.Equal(t, "garment-exports", defaultBucket(t))
	assert.True(t, storage.Config{Endpoint: "minio:9000"}.Enabled())
	assert.False(t, storage.Config{Endpoint: "  "}.Enabled())
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     storage.Config
		wantErr string
	}{
		{name: "BareHost", cfg: storage.Config{Endpoint: "localhost:9000", Bucket: "garment-exports"}},
		{name: "HTTPSScheme", cfg: storage.Config{Endpoint: "https://s3.amazonaws.com/", Bucket: "garment-exports", Region: "us-east-1"}},
		{name: "NoEndpoint", cfg: storage.Config{Bucket: "garment-exports"}, wantErr: "endpoint is not configured"},
		{name: "NoBucket", cfg: storage.Config{Endpoint: "localhost:9000"}, wantErr: "bucket is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestSplitEndpoint(t *testing.T) {
	tests := []struct {
		endpoint   string
		useSSL     bool
		wantHost   string
		wantSecure bool
	}{
		{"localhost:9000", false, "localhost:9000", false},
		{"localhost:9000", true, "localhost:9000", true},
		{"https://minio.internal", false, "minio.internal", true},
		{"http://minio.internal:9000/", true, "minio.internal:9000", false},
	}

	for _, tt := range tests {
		host, secure := storage.SplitEndpoint(tt.endpoint, tt.useSSL)
		assert.Equal(t, tt.wantHost, host, tt.endpoint)
		assert.Equal(t, tt.wantSecure, secure, tt.endpoint)
	}
}

func TestPublishToDefaultBucket(t *testing.T) {
	ctx := context.Background()
	bucket := defaultBucket(t)
	data := []byte("Type,Code\n\"Shirt\",\"AB1\"\n")

	client := new(mocks.Client)
	client.On("BucketExists", ctx, bucket).Return(false, nil).Once()
	client.On("MakeBucket", ctx, bucket, minio.MakeBucketOptions{}).Return(nil).Once()
	client.On("PutObject", ctx, bucket, "exports/inventory.csv", mock.Anything, int64(len(data)), mock.Anything).
		Return(minio.UploadInfo{Bucket: bucket, Key: "exports/inventory.csv"}, nil).Once()

	require.NoError(t, storage.EnsureBucket(ctx, client, bucket, ""))
	require.NoError(t, storage.Upload(ctx, client, bucket, "exports/inventory.csv", data, "text/csv"))
	client.AssertExpectations(t)
}
