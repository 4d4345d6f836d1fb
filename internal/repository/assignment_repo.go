package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/englishroom/portal-api/internal/models"
)

// AssignmentRepository defines persistence operations for assignments.
// Records are append-only; the portal never updates or deletes them.
type AssignmentRepository interface {
	List(ctx context.Context) ([]models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) error
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository instantiates a GORM-backed repository.
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

// List returns all assignments newest-first. Tie order among equal creation
// timestamps is whatever the backend returns.
func (r *assignmentRepository) List(ctx context.Context) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}
