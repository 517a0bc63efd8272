package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
)

type mockFeedBackend struct {
	products []model.Product
	err      error
}

func (m *mockFeedBackend) Products(ctx context.Context) ([]model.Product, error) {
	return m.products, m.err
}

func TestFacebookCSV(t *testing.T) {
	zero := 0
	svc := NewFeedService(&mockFeedBackend{products: []model.Product{
		{
			ID:          "p1",
			Title:       "Photo Mug",
			Description: "Custom printed mug",
			Price:       499,
			Images:      []string{"https://cdn.test/mug.jpg"},
		},
		{
			ID:    "p2",
			Title: "Gone Frame",
			Price: 899,
			Stock: &zero,
		},
	}}, "https://shop.test/")

	out, err := svc.FacebookCSV(context.Background())
	require.NoError(t, err)
	csv := string(out)

	lines := strings.Split(strings.TrimSpace(csv), "\n")
	require.Len(t, lines, 3, "header plus one row per product")
	assert.Equal(t, "id,title,description,availability,condition,price,link,image_link", lines[0])

	assert.Contains(t, lines[1], "499.00 INR")
	assert.Contains(t, lines[1], "https://shop.test/product/p1")
	assert.Contains(t, lines[1], "in stock")
	assert.Contains(t, lines[1], "https://cdn.test/mug.jpg")

	assert.Contains(t, lines[2], "out of stock")
}

func TestFacebookCSVPropagatesBackendError(t *testing.T) {
	svc := NewFeedService(&mockFeedBackend{err: assert.AnError}, "https://shop.test")
	_, err := svc.FacebookCSV(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
