package dto

import (
	"time"

	"github.com/englishroom/portal-api/internal/models"
)

// GalleryCreateRequest describes the metadata for a session photo. The image
// itself arrives as a multipart attachment.
type GalleryCreateRequest struct {
	Title   string `json:"title" form:"title" validate:"required"`
	Caption string `json:"caption" form:"caption"`
}

// GalleryItemResponse is the serialized representation of a session photo.
type GalleryItemResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Caption   string    `json:"caption"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGalleryItemResponse converts a model into a DTO.
func NewGalleryItemResponse(model models.GalleryItem) GalleryItemResponse {
	return GalleryItemResponse{
		ID:        model.ID,
		Title:     model.Title,
		Caption:   model.Caption,
		ImageURL:  model.ImageURL,
		CreatedAt: model.CreatedAt,
	}
}

// NewGalleryItemResponseSlice converts a slice of models into DTOs.
func NewGalleryItemResponseSlice(items []models.GalleryItem) []GalleryItemResponse {
	responses := make([]GalleryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewGalleryItemResponse(item))
	}

	return responses
}
