package photos

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"property_hub/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store keeps listing photos in object storage.
type Store interface {
	// UploadPhoto stores the photo and returns its object key.
	UploadPhoto(ctx context.Context, data io.Reader, size int64, contentType string) (string, error)
	// PhotoURL returns a time-limited download link for an object key.
	PhotoURL(ctx context.Context, key string) (string, error)
	IsEnabled() bool
}

type store struct {
	client *minio.Client
	bucket string
	log    *slog.Logger
}

// NewStore connects to the configured bucket. When storage is disabled the
// returned store rejects uploads, which keeps the listing form usable
// without photos in local setups.
func NewStore(cfg config.MinioConfig, log *slog.Logger) (Store, error) {
	const op = "photos.NewStore"

	if !cfg.Enabled {
		return &noopStore{log: log}, nil
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioRootUser, cfg.MinioRootPassword, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &store{
		client: client,
		bucket: cfg.BucketName,
		log:    log,
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func EnsureBucket(ctx context.Context, s Store) error {
	const op = "photos.EnsureBucket"

	st, ok := s.(*store)
	if !ok {
		return nil
	}

	exists, err := st.client.BucketExists(ctx, st.bucket)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil
	}
	if err := st.client.MakeBucket(ctx, st.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	st.log.Info("bucket created", slog.String("bucket", st.bucket))
	return nil
}

func (s *store) UploadPhoto(ctx context.Context, data io.Reader, size int64, contentType string) (string, error) {
	const op = "photos.Store.UploadPhoto"

	key := fmt.Sprintf("listings/%s", uuid.NewString())

	_, err := s.client.PutObject(ctx, s.bucket, key, data, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return key, nil
}

func (s *store) PhotoURL(ctx context.Context, key string) (string, error) {
	const op = "photos.Store.PhotoURL"

	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, 24*time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return u.String(), nil
}

func (s *store) IsEnabled() bool { return true }

// noopStore stands in when object storage is disabled.
type noopStore struct {
	log *slog.Logger
}

var ErrStorageDisabled = fmt.Errorf("photo storage is disabled")

func (s *noopStore) UploadPhoto(context.Context, io.Reader, int64, string) (string, error) {
	s.log.Warn("photo storage is disabled, rejecting upload")
	return "", ErrStorageDisabled
}

func (s *noopStore) PhotoURL(_ context.Context, key string) (string, error) {
	return "", ErrStorageDisabled
}

func (s *noopStore) IsEnabled() bool { return false }
