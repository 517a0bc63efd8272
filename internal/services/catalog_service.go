package services

import (
	"context"
	"errors"
	"io"

	"github.com/RanganathP76/ecommerce-frontend/internal/backend"
	"github.com/RanganathP76/ecommerce-frontend/internal/model"
)

// CatalogBackend covers browsing plus the two write paths a shopper has:
// reviews and customization file uploads.
type CatalogBackend interface {
	Collections(ctx context.Context) ([]model.Collection, error)
	Collection(ctx context.Context, id string) (*model.CollectionDetail, error)
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	SubmitReview(ctx context.Context, token, productID string, review backend.ReviewUpload) error
	UploadTemp(ctx context.Context, filename string, file io.Reader) (*model.UploadResult, error)
}

type CatalogService struct {
	Backend CatalogBackend
}

func NewCatalogService(b CatalogBackend) *CatalogService {
	return &CatalogService{Backend: b}
}

func (s *CatalogService) Collections(ctx context.Context) ([]model.Collection, error) {
	return s.Backend.Collections(ctx)
}

func (s *CatalogService) Collection(ctx context.Context, id string) (*model.CollectionDetail, error) {
	return s.Backend.Collection(ctx, id)
}

func (s *CatalogService) Products(ctx context.Context) ([]model.Product, error) {
	return s.Backend.Products(ctx)
}

func (s *CatalogService) Product(ctx context.Context, id string) (*model.Product, error) {
	return s.Backend.Product(ctx, id)
}

func (s *CatalogService) SubmitReview(ctx context.Context, token, productID string, review backend.ReviewUpload) error {
	if review.Rating < 1 || review.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return s.Backend.SubmitReview(ctx, token, productID, review)
}

func (s *CatalogService) UploadCustomizationFile(ctx context.Context, filename string, file io.Reader) (*model.UploadResult, error) {
	return s.Backend.UploadTemp(ctx, filename, file)
}
