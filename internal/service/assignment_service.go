package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/englishroom/portal-api/internal/dto"
	"github.com/englishroom/portal-api/internal/models"
	"github.com/englishroom/portal-api/internal/observability"
	"github.com/englishroom/portal-api/internal/repository"
)

// AssignmentService exposes assignment listing and the publish workflow.
type AssignmentService interface {
	List(ctx context.Context) ([]dto.AssignmentResponse, error)
	Create(ctx context.Context, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error)
}

type assignmentService struct {
	repo      repository.AssignmentRepository
	validator *validator.Validate
	policy    *bluemonday.Policy
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAssignmentService builds a new assignment service.
func NewAssignmentService(repo repository.AssignmentRepository, validate *validator.Validate, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		repo:      repo,
		validator: validate,
		policy:    bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "assignment_service").Logger(),
		now:       time.Now,
	}
}

func (s *assignmentService) List(ctx context.Context) ([]dto.AssignmentResponse, error) {
	assignments, err := s.repo.List(ctx)
	if err != nil {
		observability.ContentRequests().WithLabelValues("assignments", "error").Inc()
		return nil, err
	}

	observability.ContentRequests().WithLabelValues("assignments", "success").Inc()

	return dto.NewAssignmentResponseSlice(assignments, s.now()), nil
}

// Create validates locally, then performs a single insert. Links are stored
// verbatim in the order supplied; nothing is retried on failure.
func (s *assignmentService) Create(ctx context.Context, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error) {
	payload.Title = strings.TrimSpace(payload.Title)
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	links := make([]string, 0, len(payload.Links))
	for _, link := range payload.Links {
		trimmed := strings.TrimSpace(link)
		if trimmed == "" {
			return dto.AssignmentResponse{}, ErrBlankFileLink
		}
		links = append(links, trimmed)
	}

	var deadline *time.Time
	if payload.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, payload.Deadline)
		if err != nil {
			return dto.AssignmentResponse{}, fmt.Errorf("%w: %v", ErrInvalidDeadline, err)
		}
		deadline = &parsed
	}

	assignment := models.Assignment{
		Title:    payload.Title,
		Details:  s.policy.Sanitize(strings.TrimSpace(payload.Details)),
		Deadline: deadline,
		Files:    datatypes.JSONSlice[string](links),
	}

	if err := s.repo.Create(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.logger.Info().Uint("assignment_id", assignment.ID).Int("links", len(links)).Msg("assignment published")

	return dto.NewAssignmentResponse(assignment, s.now()), nil
}
