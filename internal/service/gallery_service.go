package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/englishroom/portal-api/internal/dto"
	"github.com/englishroom/portal-api/internal/models"
	"github.com/englishroom/portal-api/internal/observability"
	"github.com/englishroom/portal-api/internal/repository"
)

// ImageUploader abstracts uploading an image and returning its URL.
type ImageUploader interface {
	Upload(ctx context.Context, name string, reader io.Reader) (string, error)
}

// GalleryService exposes the session photo gallery.
type GalleryService interface {
	List(ctx context.Context) ([]dto.GalleryItemResponse, error)
	Create(ctx context.Context, payload dto.GalleryCreateRequest, image *multipart.FileHeader) (dto.GalleryItemResponse, error)
}

type galleryService struct {
	repo      repository.GalleryRepository
	uploader  ImageUploader
	validator *validator.Validate
	policy    *bluemonday.Policy
	logger    zerolog.Logger
	maxSize   int64
}

// NewGalleryService constructs the gallery service.
func NewGalleryService(repo repository.GalleryRepository, uploader ImageUploader, maxSizeMB int, validate *validator.Validate, logger zerolog.Logger) GalleryService {
	if maxSizeMB <= 0 {
		maxSizeMB = 25
	}
	return &galleryService{
		repo:      repo,
		uploader:  uploader,
		validator: validate,
		policy:    bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "gallery_service").Logger(),
		maxSize:   int64(maxSizeMB) * 1024 * 1024,
	}
}

func (s *galleryService) List(ctx context.Context) ([]dto.GalleryItemResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		observability.ContentRequests().WithLabelValues("gallery", "error").Inc()
		return nil, err
	}

	observability.ContentRequests().WithLabelValues("gallery", "success").Inc()

	return dto.NewGalleryItemResponseSlice(items), nil
}

// Create uploads the session photo, then inserts the gallery record with the
// returned URL. Like the other write paths this is not transactional.
func (s *galleryService) Create(ctx context.Context, payload dto.GalleryCreateRequest, image *multipart.FileHeader) (dto.GalleryItemResponse, error) {
	payload.Title = strings.TrimSpace(payload.Title)
	if err := s.validator.Struct(payload); err != nil {
		return dto.GalleryItemResponse{}, err
	}

	if image == nil {
		return dto.GalleryItemResponse{}, ErrNoFilesSelected
	}

	data, err := readFile(image, s.maxSize)
	if err != nil {
		observability.UploadRejected().WithLabelValues("size").Inc()
		return dto.GalleryItemResponse{}, err
	}

	if !sniffedImage(data) {
		observability.UploadRejected().WithLabelValues("type").Inc()
		return dto.GalleryItemResponse{}, fmt.Errorf("%s: %w", image.Filename, ErrNotImage)
	}

	url, err := s.uploader.Upload(ctx, image.Filename, bytes.NewReader(data))
	if err != nil {
		observability.UploadRejected().WithLabelValues("storage").Inc()
		return dto.GalleryItemResponse{}, err
	}

	item := models.GalleryItem{
		Title:    payload.Title,
		Caption:  s.policy.Sanitize(strings.TrimSpace(payload.Caption)),
		ImageURL: url,
	}

	if err := s.repo.Create(ctx, &item); err != nil {
		return dto.GalleryItemResponse{}, err
	}

	s.logger.Info().Uint("gallery_id", item.ID).Msg("session photo published")

	return dto.NewGalleryItemResponse(item), nil
}
