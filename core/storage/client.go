package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client is the subset of the MinIO API used to publish CSV exports.
type Client interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
}

// NewClient builds an export client from cfg. No request is sent until the
// first EnsureBucket call.
func NewClient(cfg Config) (Client, error) {
	if !cfg.Enabled() {
		return nil, errors.New("storage endpoint is not configured")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}

	host, secure := splitEndpoint(cfg.Endpoint, cfg.UseSSL)
	transport, err := minio.DefaultTransport(secure)
	if err != nil {
		return nil, fmt.Errorf("failed to build storage transport: %w", err)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	transport.DialContext = (&net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}).DialContext
	transport.TLSHandshakeTimeout = timeout
	transport.ResponseHeaderTimeout = timeout

	client, err := minio.New(host, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    secure,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client for %s: %w", host, err)
	}
	return client, nil
}

// splitEndpoint strips a URL scheme from endpoint. An explicit scheme decides
// TLS; a bare host:port falls back to useSSL.
func splitEndpoint(endpoint string, useSSL bool) (string, bool) {
	host := strings.TrimRight(strings.TrimSpace(endpoint), "/")
	switch {
	case strings.HasPrefix(host, "https://"):
		return strings.TrimPrefix(host, "https://"), true
	case strings.HasPrefix(host, "http://"):
		return strings.TrimPrefix(host, "http://"), false
	}
	return host, useSSL
}
