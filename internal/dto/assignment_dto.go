package dto

import (
	"time"

	"github.com/englishroom/portal-api/internal/models"
)

// AssignmentCreateRequest describes the payload for publishing a new assignment.
// Links are supplied directly by the admin; no upload is involved.
type AssignmentCreateRequest struct {
	Title    string   `json:"title" form:"title" validate:"required"`
	Details  string   `json:"details" form:"details"`
	Deadline string   `json:"deadline" form:"deadline"`
	Links    []string `json:"links" form:"links" validate:"dive,required"`
}

// AssignmentResponse is the serialized representation returned to API clients.
type AssignmentResponse struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Details       string     `json:"details"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	DeadlineBadge string     `json:"deadline_badge,omitempty"`
	Files         []string   `json:"files"`
	CreatedAt     time.Time  `json:"created_at"`
}

// NewAssignmentResponse converts a model into a DTO, computing the deadline
// badge against the supplied reference time.
func NewAssignmentResponse(model models.Assignment, now time.Time) AssignmentResponse {
	return AssignmentResponse{
		ID:            model.ID,
		Title:         model.Title,
		Details:       model.Details,
		Deadline:      model.Deadline,
		DeadlineBadge: model.DeadlineBadge(now),
		Files:         append([]string{}, model.Files...),
		CreatedAt:     model.CreatedAt,
	}
}

// NewAssignmentResponseSlice converts a slice of models into DTOs.
func NewAssignmentResponseSlice(assignments []models.Assignment, now time.Time) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, NewAssignmentResponse(assignment, now))
	}

	return responses
}
