package dto

import (
	"time"

	"github.com/englishroom/portal-api/internal/models"
)

// ClassworkCreateRequest describes the metadata for a classwork submission.
// The PDF files themselves arrive as multipart attachments.
type ClassworkCreateRequest struct {
	Title   string `json:"title" form:"title" validate:"required"`
	Details string `json:"details" form:"details"`
}

// ClassworkResponse is the serialized representation returned to API clients.
type ClassworkResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Details   string    `json:"details"`
	Files     []string  `json:"files"`
	CreatedAt time.Time `json:"created_at"`
}

// NewClassworkResponse converts a model into a DTO.
func NewClassworkResponse(model models.Classwork) ClassworkResponse {
	return ClassworkResponse{
		ID:        model.ID,
		Title:     model.Title,
		Details:   model.Details,
		Files:     append([]string{}, model.Files...),
		CreatedAt: model.CreatedAt,
	}
}

// NewClassworkResponseSlice converts a slice of models into DTOs.
func NewClassworkResponseSlice(classworks []models.Classwork) []ClassworkResponse {
	responses := make([]ClassworkResponse, 0, len(classworks))
	for _, classwork := range classworks {
		responses = append(responses, NewClassworkResponse(classwork))
	}

	return responses
}
