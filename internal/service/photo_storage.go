package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/spec-kit/hr-service/internal/config"
)

const (
	maxPhotoSize    = 5 * 1024 * 1024 // 5 MB
	presignedURLTTL = 15 * time.Minute
	photoPathPrefix = "profiles"
)

var (
	ErrPhotoTooBig        = errors.New("photo exceeds 5MB limit")
	ErrInvalidPhotoType   = errors.New("invalid photo type, only JPEG and PNG are allowed")
	ErrStorageUnreachable = errors.New("photo storage unavailable")

	allowedPhotoTypes = map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
	}
)

// PhotoStorage stores profile photos in S3-compatible object storage and
// hands out presigned read URLs.
type PhotoStorage interface {
	Upload(ctx context.Context, userKey string, file io.Reader, size int64, contentType string) (string, error)
	PresignedURL(ctx context.Context, objectKey string) (string, error)
}

type minioPhotoStorage struct {
	client *minio.Client
	bucket string
}

// NewPhotoStorage builds a minio-backed photo store and ensures the bucket
// exists. Returns nil when no endpoint is configured; callers treat a nil
// store as "photos by external URL only".
func NewPhotoStorage(cfg config.StorageConfig) (PhotoStorage, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	store := &minioPhotoStorage{client: client, bucket: cfg.Bucket}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnreachable, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	return store, nil
}

func (s *minioPhotoStorage) Upload(ctx context.Context, userKey string, file io.Reader, size int64, contentType string) (string, error) {
	if size > maxPhotoSize {
		return "", ErrPhotoTooBig
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	ext, ok := allowedPhotoTypes[contentType]
	if !ok {
		return "", ErrInvalidPhotoType
	}

	objectKey := fmt.Sprintf("%s/user-%s/%s%s", photoPathPrefix, userKey, uuid.NewString(), ext)
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}
	return objectKey, nil
}

func (s *minioPhotoStorage) PresignedURL(ctx context.Context, objectKey string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey, presignedURLTTL, nil)
	if err != nil {
		return "", fmt.Errorf("presign photo url: %w", err)
	}
	return u.String(), nil
}
