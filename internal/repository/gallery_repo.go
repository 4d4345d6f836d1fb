package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/englishroom/portal-api/internal/models"
)

// GalleryRepository manages session photo persistence.
type GalleryRepository interface {
	List(ctx context.Context) ([]models.GalleryItem, error)
	Create(ctx context.Context, item *models.GalleryItem) error
}

type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository constructs a gallery repository implementation.
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) List(ctx context.Context) ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *galleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}
