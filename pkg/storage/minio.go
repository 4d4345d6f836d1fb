package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

// ErrObjectExists indicates an upload would overwrite an existing object.
// Uploads never replace data; a path collision fails the attempt instead.
var ErrObjectExists = errors.New("object already exists")

// Config contains credentials required to talk to the S3-compatible store.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// Service implements bucket operations against a MinIO/S3 endpoint.
type Service struct {
	client *minio.Client
	logger zerolog.Logger
}

// New constructs a blob store service instance.
func New(cfg Config, logger zerolog.Logger) (*Service, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("blob store credentials must be provided")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob store client: %w", err)
	}

	return &Service{
		client: client,
		logger: logger.With().Str("component", "storage").Logger(),
	}, nil
}

// Upload stores the object and returns its public URL. An existing object at
// the same path fails the upload with ErrObjectExists.
func (s *Service) Upload(ctx context.Context, bucket, object string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
	if err == nil {
		return "", ErrObjectExists
	}
	if resp := minio.ToErrorResponse(err); resp.Code != "NoSuchKey" {
		return "", fmt.Errorf("failed to check object %q: %w", object, err)
	}

	if _, err := s.client.PutObject(ctx, bucket, object, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("failed to upload object %q: %w", object, err)
	}

	s.logger.Info().Str("bucket", bucket).Str("object", object).Msg("blob uploaded")

	return s.PublicURL(bucket, object), nil
}

// List returns the names of every object in the bucket.
func (s *Service) List(ctx context.Context, bucket string) ([]string, error) {
	names := make([]string, 0)
	for info := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %q: %w", bucket, info.Err)
		}
		names = append(names, info.Key)
	}

	return names, nil
}

// PublicURL derives the stable unauthenticated URL for a stored object.
func (s *Service) PublicURL(bucket, object string) string {
	endpoint := *s.client.EndpointURL()
	endpoint.Path = path.Join(endpoint.Path, bucket, object)
	return endpoint.String()
}
