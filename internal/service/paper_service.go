package service

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	"github.com/englishroom/portal-api/internal/dto"
	"github.com/englishroom/portal-api/internal/observability"
	"github.com/englishroom/portal-api/internal/repository"
)

// PaperService exposes the past-year question paper bucket.
type PaperService interface {
	List(ctx context.Context) ([]dto.PaperResponse, error)
	Upload(ctx context.Context, file *multipart.FileHeader) (dto.PaperResponse, error)
}

type paperService struct {
	repo     repository.PaperRepository
	uploader BlobUploader
	bucket   string
	logger   zerolog.Logger
	maxSize  int64
	now      func() time.Time
}

// NewPaperService builds a new paper service.
func NewPaperService(repo repository.PaperRepository, uploader BlobUploader, bucket string, maxSizeMB int, logger zerolog.Logger) PaperService {
	if maxSizeMB <= 0 {
		maxSizeMB = 25
	}
	return &paperService{
		repo:     repo,
		uploader: uploader,
		bucket:   bucket,
		logger:   logger.With().Str("component", "paper_service").Logger(),
		maxSize:  int64(maxSizeMB) * 1024 * 1024,
		now:      time.Now,
	}
}

func (s *paperService) List(ctx context.Context) ([]dto.PaperResponse, error) {
	papers, err := s.repo.List(ctx)
	if err != nil {
		observability.ContentRequests().WithLabelValues("papers", "error").Inc()
		return nil, err
	}

	observability.ContentRequests().WithLabelValues("papers", "success").Inc()

	return papers, nil
}

// Upload stores one PDF in the papers bucket under a timestamped path.
func (s *paperService) Upload(ctx context.Context, file *multipart.FileHeader) (dto.PaperResponse, error) {
	if file == nil {
		return dto.PaperResponse{}, ErrNoFilesSelected
	}

	if !declaredPDF(file) {
		observability.UploadRejected().WithLabelValues("type").Inc()
		return dto.PaperResponse{}, fmt.Errorf("%s: %w", file.Filename, ErrNotPDF)
	}

	payload, err := readFile(file, s.maxSize)
	if err != nil {
		observability.UploadRejected().WithLabelValues("size").Inc()
		return dto.PaperResponse{}, err
	}

	if !sniffedPDF(payload) {
		observability.UploadRejected().WithLabelValues("type").Inc()
		return dto.PaperResponse{}, fmt.Errorf("%s: %w", file.Filename, ErrNotPDF)
	}

	object := objectName(s.now().UnixMilli(), file.Filename)
	url, err := s.uploader.Upload(ctx, s.bucket, object, bytes.NewReader(payload), int64(len(payload)), pdfMime)
	if err != nil {
		observability.UploadRejected().WithLabelValues("storage").Inc()
		return dto.PaperResponse{}, err
	}

	s.logger.Info().Str("object", object).Msg("paper uploaded")

	return dto.PaperResponse{Name: object, URL: url}, nil
}
