package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
)

// FeedBackend is the product listing the feed is built from.
type FeedBackend interface {
	Products(ctx context.Context) ([]model.Product, error)
}

// FeedService renders the Facebook catalog CSV for the marketing pixel.
// Download-only; nothing here feeds back into checkout.
type FeedService struct {
	Backend FeedBackend
	BaseURL string // public storefront URL used for product links
}

func NewFeedService(b FeedBackend, baseURL string) *FeedService {
	return &FeedService{Backend: b, BaseURL: strings.TrimSuffix(baseURL, "/")}
}

type feedRow struct {
	ID           string `csv:"id"`
	Title        string `csv:"title"`
	Description  string `csv:"description"`
	Availability string `csv:"availability"`
	Condition    string `csv:"condition"`
	Price        string `csv:"price"`
	Link         string `csv:"link"`
	ImageLink    string `csv:"image_link"`
}

func (s *FeedService) FacebookCSV(ctx context.Context) ([]byte, error) {
	products, err := s.Backend.Products(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]feedRow, 0, len(products))
	for _, p := range products {
		availability := "in stock"
		if p.Stock != nil && *p.Stock <= 0 {
			availability = "out of stock"
		}
		var image string
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		rows = append(rows, feedRow{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Availability: availability,
			Condition:    "new",
			Price:        fmt.Sprintf("%.2f INR", p.Price.Float()),
			Link:         s.BaseURL + "/product/" + p.ID,
			ImageLink:    image,
		})
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return nil, fmt.Errorf("render feed: %w", err)
	}
	return []byte(out), nil
}
