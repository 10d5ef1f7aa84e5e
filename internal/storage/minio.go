package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage stores uploads in an S3-compatible bucket. The object key
// is recorded on the media row so deletes can reach the backend object.
type MinioStorage struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

func NewMinioStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &MinioStorage{client: client, bucket: bucket, endpoint: endpoint, useSSL: useSSL}, nil
}

func (m *MinioStorage) Save(ctx context.Context, filename, mimeType string, r io.Reader, size int64) (*SavedObject, error) {
	ext := filepath.Ext(filename)
	key := fmt.Sprintf("%s/%s%s", time.Now().Format("2006-01"), uuid.New().String(), ext)

	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, err
	}

	scheme := "http"
	if m.useSSL {
		scheme = "https"
	}
	return &SavedObject{
		URL: fmt.Sprintf("%s://%s/%s/%s", scheme, m.endpoint, m.bucket, key),
		Key: key,
	}, nil
}

func (m *MinioStorage) Remove(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}
