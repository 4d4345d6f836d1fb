package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/englishroom/portal-api/internal/dto"
	"github.com/englishroom/portal-api/internal/models"
)

type assignmentRepoStub struct {
	items     []models.Assignment
	created   []models.Assignment
	listErr   error
	createErr error
}

func (s *assignmentRepoStub) List(_ context.Context) ([]models.Assignment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items, nil
}

func (s *assignmentRepoStub) Create(_ context.Context, assignment *models.Assignment) error {
	if s.createErr != nil {
		return s.createErr
	}
	assignment.ID = uint(len(s.created) + 1)
	assignment.CreatedAt = time.Now()
	s.created = append(s.created, *assignment)
	return nil
}

func newAssignmentService(repo *assignmentRepoStub) AssignmentService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewAssignmentService(repo, validate, testLogger())
}

func TestAssignmentCreateRejectsBlankTitle(t *testing.T) {
	repo := &assignmentRepoStub{}
	svc := newAssignmentService(repo)

	_, err := svc.Create(context.Background(), dto.AssignmentCreateRequest{
		Title: "   ",
		Links: []string{"http://a"},
	})

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	require.Empty(t, repo.created, "no insert may happen on a validation failure")
}

func TestAssignmentCreateRejectsBlankLink(t *testing.T) {
	repo := &assignmentRepoStub{}
	svc := newAssignmentService(repo)

	_, err := svc.Create(context.Background(), dto.AssignmentCreateRequest{
		Title: "Essay on Modern Literature",
		Links: []string{"http://a", "   "},
	})

	require.ErrorIs(t, err, ErrBlankFileLink)
	require.Empty(t, repo.created)
}

func TestAssignmentCreateRejectsBadDeadline(t *testing.T) {
	repo := &assignmentRepoStub{}
	svc := newAssignmentService(repo)

	_, err := svc.Create(context.Background(), dto.AssignmentCreateRequest{
		Title:    "Essay",
		Deadline: "15th June 2024",
		Links:    []string{"http://a"},
	})

	require.ErrorIs(t, err, ErrInvalidDeadline)
	require.Empty(t, repo.created)
}

func TestAssignmentCreateStoresLinksVerbatim(t *testing.T) {
	repo := &assignmentRepoStub{}
	svc := newAssignmentService(repo)

	resp, err := svc.Create(context.Background(), dto.AssignmentCreateRequest{
		Title:    "Essay on Modern Literature",
		Details:  "<b>Read</b> chapter 3",
		Deadline: "2030-06-15T00:00:00Z",
		Links:    []string{"http://a", "http://b"},
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	require.Equal(t, []string{"http://a", "http://b"}, []string(repo.created[0].Files))
	require.Equal(t, "Read chapter 3", repo.created[0].Details, "markup is stripped before persisting")
	require.Equal(t, []string{"http://a", "http://b"}, resp.Files)
	require.NotNil(t, resp.Deadline)
	require.NotEmpty(t, resp.DeadlineBadge)
}

func TestAssignmentListComputesBadges(t *testing.T) {
	deadline := time.Now().Add(48 * time.Hour)
	repo := &assignmentRepoStub{items: []models.Assignment{
		{ID: 1, Title: "Essay", Deadline: &deadline},
		{ID: 2, Title: "No deadline"},
	}}
	svc := newAssignmentService(repo)

	responses, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, responses, 2)
	require.NotEmpty(t, responses[0].DeadlineBadge)
	require.Empty(t, responses[1].DeadlineBadge)
}
