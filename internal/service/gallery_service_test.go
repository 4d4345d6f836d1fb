package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/englishroom/portal-api/internal/dto"
	"github.com/englishroom/portal-api/internal/models"
)

type galleryRepoStub struct {
	items   []models.GalleryItem
	created []models.GalleryItem
}

func (s *galleryRepoStub) List(_ context.Context) ([]models.GalleryItem, error) {
	return s.items, nil
}

func (s *galleryRepoStub) Create(_ context.Context, item *models.GalleryItem) error {
	item.ID = uint(len(s.created) + 1)
	item.CreatedAt = time.Now()
	s.created = append(s.created, *item)
	return nil
}

type imageUploaderStub struct {
	names []string
	err   error
}

func (s *imageUploaderStub) Upload(_ context.Context, name string, _ io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.names = append(s.names, name)
	return "https://res.cloudinary.com/demo/" + name, nil
}

func newGalleryService(repo *galleryRepoStub, uploader *imageUploaderStub) GalleryService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewGalleryService(repo, uploader, 25, validate, testLogger())
}

func TestGalleryList(t *testing.T) {
	repo := &galleryRepoStub{items: []models.GalleryItem{
		{ID: 1, Title: "Debate day", ImageURL: "https://img/1.jpg", CreatedAt: time.Now()},
	}}
	svc := newGalleryService(repo, &imageUploaderStub{})

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Debate day", items[0].Title)
}

func TestGalleryCreateRequiresImage(t *testing.T) {
	repo := &galleryRepoStub{}
	svc := newGalleryService(repo, &imageUploaderStub{})

	_, err := svc.Create(context.Background(), dto.GalleryCreateRequest{Title: "Debate day"}, nil)
	require.ErrorIs(t, err, ErrNoFilesSelected)
	require.Empty(t, repo.created)
}

func TestGalleryCreateRejectsNonImage(t *testing.T) {
	repo := &galleryRepoStub{}
	uploader := &imageUploaderStub{}
	svc := newGalleryService(repo, uploader)

	files := makeFileHeaders(t, "image", testFile{name: "notes.pdf", contentType: "application/pdf", content: pdfBytes})

	_, err := svc.Create(context.Background(), dto.GalleryCreateRequest{Title: "Debate day"}, files[0])
	require.ErrorIs(t, err, ErrNotImage)
	require.Empty(t, uploader.names)
}

func TestGalleryCreateUploadsThenInserts(t *testing.T) {
	repo := &galleryRepoStub{}
	uploader := &imageUploaderStub{}
	svc := newGalleryService(repo, uploader)

	files := makeFileHeaders(t, "image", testFile{name: "debate.png", contentType: "image/png", content: pngBytes})

	item, err := svc.Create(context.Background(), dto.GalleryCreateRequest{Title: "Debate day", Caption: "Finals"}, files[0])
	require.NoError(t, err)
	require.Equal(t, []string{"debate.png"}, uploader.names)
	require.Len(t, repo.created, 1)
	require.Equal(t, "https://res.cloudinary.com/demo/debate.png", item.ImageURL)
}

func TestGalleryCreateUploadFailureSkipsInsert(t *testing.T) {
	repo := &galleryRepoStub{}
	uploader := &imageUploaderStub{err: errors.New("cloud unreachable")}
	svc := newGalleryService(repo, uploader)

	files := makeFileHeaders(t, "image", testFile{name: "debate.png", contentType: "image/png", content: pngBytes})

	_, err := svc.Create(context.Background(), dto.GalleryCreateRequest{Title: "Debate day"}, files[0])
	require.EqualError(t, err, "cloud unreachable")
	require.Empty(t, repo.created)
}
