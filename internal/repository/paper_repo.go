package repository

import (
	"context"
	"strings"

	"github.com/englishroom/portal-api/internal/dto"
)

const pdfSuffix = ".pdf"

// BlobLister abstracts the bucket listing side of the blob store.
type BlobLister interface {
	List(ctx context.Context, bucket string) ([]string, error)
	PublicURL(bucket, object string) string
}

// PaperRepository lists past-year question papers stored as PDF blobs.
type PaperRepository interface {
	List(ctx context.Context) ([]dto.PaperResponse, error)
}

type paperRepository struct {
	store  BlobLister
	bucket string
}

// NewPaperRepository constructs a bucket-backed paper repository.
func NewPaperRepository(store BlobLister, bucket string) PaperRepository {
	return &paperRepository{store: store, bucket: bucket}
}

// List returns every PDF in the papers bucket with its public URL. The suffix
// match is case-sensitive and entry order is whatever the store returns.
func (r *paperRepository) List(ctx context.Context) ([]dto.PaperResponse, error) {
	names, err := r.store.List(ctx, r.bucket)
	if err != nil {
		return nil, err
	}

	papers := make([]dto.PaperResponse, 0, len(names))
	for _, name := range names {
		if !strings.HasSuffix(name, pdfSuffix) {
			continue
		}
		papers = append(papers, dto.PaperResponse{
			Name: name,
			URL:  r.store.PublicURL(r.bucket, name),
		})
	}

	return papers, nil
}
