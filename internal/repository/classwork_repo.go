package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/englishroom/portal-api/internal/models"
)

// ClassworkRepository defines persistence operations for classwork records.
type ClassworkRepository interface {
	List(ctx context.Context) ([]models.Classwork, error)
	Create(ctx context.Context, classwork *models.Classwork) error
}

type classworkRepository struct {
	db *gorm.DB
}

// NewClassworkRepository instantiates a GORM-backed repository.
func NewClassworkRepository(db *gorm.DB) ClassworkRepository {
	return &classworkRepository{db: db}
}

func (r *classworkRepository) List(ctx context.Context) ([]models.Classwork, error) {
	var classworks []models.Classwork
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&classworks).Error; err != nil {
		return nil, err
	}

	return classworks, nil
}

func (r *classworkRepository) Create(ctx context.Context, classwork *models.Classwork) error {
	return r.db.WithContext(ctx).Create(classwork).Error
}
