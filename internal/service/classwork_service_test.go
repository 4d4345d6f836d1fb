package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/englishroom/portal-api/internal/dto"
	"github.com/englishroom/portal-api/internal/models"
)

type classworkRepoStub struct {
	items     []models.Classwork
	created   []models.Classwork
	createErr error
}

func (s *classworkRepoStub) List(_ context.Context) ([]models.Classwork, error) {
	return s.items, nil
}

func (s *classworkRepoStub) Create(_ context.Context, classwork *models.Classwork) error {
	if s.createErr != nil {
		return s.createErr
	}
	classwork.ID = uint(len(s.created) + 1)
	classwork.CreatedAt = time.Now()
	s.created = append(s.created, *classwork)
	return nil
}

type blobUploaderStub struct {
	objects []string
	failAt  int // 0-based index of the upload that fails; -1 for none
}

func (s *blobUploaderStub) Upload(_ context.Context, bucket, object string, _ io.Reader, _ int64, _ string) (string, error) {
	if s.failAt >= 0 && len(s.objects) == s.failAt {
		return "", errors.New("bucket unreachable")
	}
	s.objects = append(s.objects, object)
	return fmt.Sprintf("https://files.example.com/%s/%s", bucket, object), nil
}

func newClassworkService(repo *classworkRepoStub, uploader *blobUploaderStub) ClassworkService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewClassworkService(repo, uploader, "classwork", 25, validate, testLogger())
}

func TestClassworkCreateRejectsZeroFiles(t *testing.T) {
	repo := &classworkRepoStub{}
	uploader := &blobUploaderStub{failAt: -1}
	svc := newClassworkService(repo, uploader)

	_, err := svc.Create(context.Background(), dto.ClassworkCreateRequest{Title: "Week 1"}, nil)

	require.ErrorIs(t, err, ErrNoFilesSelected)
	require.Empty(t, uploader.objects, "no upload may happen on a validation failure")
	require.Empty(t, repo.created)
}

func TestClassworkCreateRejectsBlankTitleBeforeUploads(t *testing.T) {
	repo := &classworkRepoStub{}
	uploader := &blobUploaderStub{failAt: -1}
	svc := newClassworkService(repo, uploader)

	files := makeFileHeaders(t, "files", testFile{name: "week1.pdf", contentType: "application/pdf", content: pdfBytes})

	_, err := svc.Create(context.Background(), dto.ClassworkCreateRequest{Title: "  "}, files)

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	require.Empty(t, uploader.objects)
}

func TestClassworkCreateChecksDeclaredTypesBeforeAnyUpload(t *testing.T) {
	repo := &classworkRepoStub{}
	uploader := &blobUploaderStub{failAt: -1}
	svc := newClassworkService(repo, uploader)

	files := makeFileHeaders(t, "files",
		testFile{name: "week1.pdf", contentType: "application/pdf", content: pdfBytes},
		testFile{name: "notes.txt", contentType: "text/plain", content: []byte("plain text")},
	)

	_, err := svc.Create(context.Background(), dto.ClassworkCreateRequest{Title: "Week 1"}, files)

	require.ErrorIs(t, err, ErrNotPDF)
	require.Empty(t, uploader.objects, "a non-PDF anywhere aborts before any upload")
	require.Empty(t, repo.created)
}

func TestClassworkCreateSniffsBytesBeforeEachUpload(t *testing.T) {
	repo := &classworkRepoStub{}
	uploader := &blobUploaderStub{failAt: -1}
	svc := newClassworkService(repo, uploader)

	// Declared PDF, but the payload is not.
	files := makeFileHeaders(t, "files",
		testFile{name: "week1.pdf", contentType: "application/pdf", content: []byte("not a pdf at all")},
	)

	_, err := svc.Create(context.Background(), dto.ClassworkCreateRequest{Title: "Week 1"}, files)

	require.ErrorIs(t, err, ErrNotPDF)
	require.Empty(t, uploader.objects)
}

func TestClassworkCreateAbortsOnFirstUploadFailure(t *testing.T) {
	repo := &classworkRepoStub{}
	uploader := &blobUploaderStub{failAt: 1}
	svc := newClassworkService(repo, uploader)

	files := makeFileHeaders(t, "files",
		testFile{name: "week1.pdf", contentType: "application/pdf", content: pdfBytes},
		testFile{name: "week2.pdf", contentType: "application/pdf", content: pdfBytes},
		testFile{name: "week3.pdf", contentType: "application/pdf", content: pdfBytes},
	)

	_, err := svc.Create(context.Background(), dto.ClassworkCreateRequest{Title: "Week 1"}, files)

	require.EqualError(t, err, "bucket unreachable")
	require.Len(t, uploader.objects, 1, "the first upload stays behind as an orphan; later uploads never run")
	require.Empty(t, repo.created, "no insert after a failed upload")
}

func TestClassworkCreateUploadsSequentiallyAndInserts(t *testing.T) {
	repo := &classworkRepoStub{}
	uploader := &blobUploaderStub{failAt: -1}
	svc := newClassworkService(repo, uploader)

	files := makeFileHeaders(t, "files",
		testFile{name: "week1.pdf", contentType: "application/pdf", content: pdfBytes},
		testFile{name: "week2.pdf", contentType: "application/pdf", content: pdfBytes},
	)

	resp, err := svc.Create(context.Background(), dto.ClassworkCreateRequest{Title: "Grammar drills", Details: "In-class work"}, files)
	require.NoError(t, err)

	require.Len(t, uploader.objects, 2)
	require.Contains(t, uploader.objects[0], "week1.pdf")
	require.Contains(t, uploader.objects[1], "week2.pdf")

	require.Len(t, repo.created, 1)
	require.Equal(t, []string(repo.created[0].Files), resp.Files)
	require.Len(t, resp.Files, 2)
	require.Contains(t, resp.Files[0], "week1.pdf")
	require.Contains(t, resp.Files[1], "week2.pdf")
}

func TestClassworkCreateInsertFailureLeavesOrphans(t *testing.T) {
	repo := &classworkRepoStub{createErr: errors.New("insert refused")}
	uploader := &blobUploaderStub{failAt: -1}
	svc := newClassworkService(repo, uploader)

	files := makeFileHeaders(t, "files",
		testFile{name: "week1.pdf", contentType: "application/pdf", content: pdfBytes},
	)

	_, err := svc.Create(context.Background(), dto.ClassworkCreateRequest{Title: "Week 1"}, files)

	require.EqualError(t, err, "insert refused")
	require.Len(t, uploader.objects, 1, "uploaded blobs are not rolled back")
}
