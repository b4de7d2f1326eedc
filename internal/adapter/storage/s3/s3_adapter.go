package s3

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/config"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
)

// Storage keeps pet and garage photos in a MinIO bucket and hands back
// public URLs.
type Storage struct {
	client *minio.Client
	bucket string
	log    logger.Logger
}

func NewStorage(cfg *config.StorageConfig, log logger.Logger) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", cfg.Endpoint, err)
	}

	ctx := context.Background()
	if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		exists, errExists := client.BucketExists(ctx, cfg.Bucket)
		if errExists != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: %w", cfg.Bucket, err)
		}
	}
	log.Infof("Photo storage ready, bucket %s at %s", cfg.Bucket, cfg.Endpoint)

	return &Storage{client: client, bucket: cfg.Bucket, log: log}, nil
}

// Upload stores the file under a generated key (original extension kept) and
// returns the object's URL.
func (s *Storage) Upload(ctx context.Context, originalFileName string, data []byte) (string, error) {
	ext := filepath.Ext(originalFileName)
	objectKey := fmt.Sprintf("photos/%s%s", uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		s.log.Errorf("PutObject failed for key %s: %v", objectKey, err)
		return "", fmt.Errorf("failed to upload %s: %w", objectKey, err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectKey)
	s.log.Debugf("Uploaded photo %s (%d bytes)", objectKey, len(data))
	return url, nil
}
