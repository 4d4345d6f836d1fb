package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"

	"github.com/englishroom/portal-api/internal/dto"
	"github.com/englishroom/portal-api/internal/models"
	"github.com/englishroom/portal-api/internal/observability"
	"github.com/englishroom/portal-api/internal/repository"
)

// BlobUploader abstracts the bucket write side of the blob store.
type BlobUploader interface {
	Upload(ctx context.Context, bucket, object string, reader io.Reader, size int64, contentType string) (string, error)
}

// ClassworkService exposes classwork listing and the upload-then-insert workflow.
type ClassworkService interface {
	List(ctx context.Context) ([]dto.ClassworkResponse, error)
	Create(ctx context.Context, payload dto.ClassworkCreateRequest, files []*multipart.FileHeader) (dto.ClassworkResponse, error)
}

type classworkService struct {
	repo      repository.ClassworkRepository
	uploader  BlobUploader
	bucket    string
	validator *validator.Validate
	policy    *bluemonday.Policy
	logger    zerolog.Logger
	maxSize   int64
	tracer    trace.Tracer
	now       func() time.Time
}

// NewClassworkService builds a new classwork service.
func NewClassworkService(repo repository.ClassworkRepository, uploader BlobUploader, bucket string, maxSizeMB int, validate *validator.Validate, logger zerolog.Logger) ClassworkService {
	if maxSizeMB <= 0 {
		maxSizeMB = 25
	}
	return &classworkService{
		repo:      repo,
		uploader:  uploader,
		bucket:    bucket,
		validator: validate,
		policy:    bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "classwork_service").Logger(),
		maxSize:   int64(maxSizeMB) * 1024 * 1024,
		tracer:    otel.Tracer("github.com/englishroom/portal-api/internal/service/classwork"),
		now:       time.Now,
	}
}

func (s *classworkService) List(ctx context.Context) ([]dto.ClassworkResponse, error) {
	classworks, err := s.repo.List(ctx)
	if err != nil {
		observability.ContentRequests().WithLabelValues("classwork", "error").Inc()
		return nil, err
	}

	observability.ContentRequests().WithLabelValues("classwork", "success").Inc()

	return dto.NewClassworkResponseSlice(classworks), nil
}

// Create runs the submission saga: validate locally, upload the PDFs one by
// one in selection order, then perform a single insert with the returned
// URLs. The first failure aborts the attempt; blobs uploaded before the
// failure stay in the bucket and are never rolled back.
func (s *classworkService) Create(ctx context.Context, payload dto.ClassworkCreateRequest, files []*multipart.FileHeader) (dto.ClassworkResponse, error) {
	payload.Title = strings.TrimSpace(payload.Title)
	if err := s.validator.Struct(payload); err != nil {
		return dto.ClassworkResponse{}, err
	}

	if len(files) == 0 {
		return dto.ClassworkResponse{}, ErrNoFilesSelected
	}

	// Declared types are checked up front so a non-PDF anywhere in the
	// selection aborts before any upload happens.
	for _, file := range files {
		if !declaredPDF(file) {
			observability.UploadRejected().WithLabelValues("type").Inc()
			return dto.ClassworkResponse{}, fmt.Errorf("%s: %w", file.Filename, ErrNotPDF)
		}
	}

	urls, err := s.uploadAll(ctx, files)
	if err != nil {
		return dto.ClassworkResponse{}, err
	}

	classwork := models.Classwork{
		Title:   payload.Title,
		Details: s.policy.Sanitize(strings.TrimSpace(payload.Details)),
		Files:   datatypes.JSONSlice[string](urls),
	}

	if err := s.repo.Create(ctx, &classwork); err != nil {
		// Uploaded blobs stay behind as orphans; the record insert is not
		// transactional with the uploads.
		return dto.ClassworkResponse{}, err
	}

	s.logger.Info().Uint("classwork_id", classwork.ID).Int("files", len(urls)).Msg("classwork published")

	return dto.NewClassworkResponse(classwork), nil
}

func (s *classworkService) uploadAll(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "classwork.upload")
	defer span.End()
	span.SetAttributes(attribute.Int("upload.file_count", len(files)))

	start := s.now()
	defer func() {
		observability.UploadLatency().Observe(time.Since(start).Seconds())
	}()

	urls := make([]string, 0, len(files))
	for _, file := range files {
		payload, err := readFile(file, s.maxSize)
		if err != nil {
			observability.UploadRejected().WithLabelValues("size").Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, "read failed")
			return nil, err
		}

		if !sniffedPDF(payload) {
			observability.UploadRejected().WithLabelValues("type").Inc()
			span.RecordError(ErrNotPDF)
			span.SetStatus(codes.Error, "type not allowed")
			return nil, fmt.Errorf("%s: %w", file.Filename, ErrNotPDF)
		}

		object := objectName(s.now().UnixMilli(), file.Filename)
		url, err := s.uploader.Upload(ctx, s.bucket, object, bytes.NewReader(payload), int64(len(payload)), pdfMime)
		if err != nil {
			observability.UploadRejected().WithLabelValues("storage").Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, "storage failed")
			return nil, err
		}

		urls = append(urls, url)
	}

	span.SetStatus(codes.Ok, "stored")

	return urls, nil
}
