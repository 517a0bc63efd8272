package backend

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/RanganathP76/ecommerce-frontend/internal/model"
)

func (c *Client) Collections(ctx context.Context) ([]model.Collection, error) {
	var out []model.Collection
	if err := c.get(ctx, "", "/collections", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Collection(ctx context.Context, id string) (*model.CollectionDetail, error) {
	var out model.CollectionDetail
	if err := c.get(ctx, "", "/collections/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := c.get(ctx, "", "/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id string) (*model.Product, error) {
	var out model.Product
	if err := c.get(ctx, "", "/products/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReviewUpload is a review form submission, image optional.
type ReviewUpload struct {
	Rating    int
	Comment   string
	ImageName string
	Image     io.Reader
}

// SubmitReview posts a multipart review to the backend. Requires a token; the
// backend rejects anonymous reviews.
func (c *Client) SubmitReview(ctx context.Context, token, productID string, review ReviewUpload) error {
	build := func(w *multipart.Writer) error {
		if err := w.WriteField("rating", strconv.Itoa(review.Rating)); err != nil {
			return err
		}
		if err := w.WriteField("comment", review.Comment); err != nil {
			return err
		}
		if review.Image != nil {
			part, err := w.CreateFormFile("reviewImages", review.ImageName)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, review.Image); err != nil {
				return err
			}
		}
		return nil
	}
	return c.postMultipart(ctx, token, fmt.Sprintf("/products/%s/review", productID), build, nil)
}

// UploadTemp stores a customization file and returns its hosted URL + id.
func (c *Client) UploadTemp(ctx context.Context, filename string, file io.Reader) (*model.UploadResult, error) {
	var out model.UploadResult
	build := func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("file", filename)
		if err != nil {
			return err
		}
		_, err = io.Copy(part, file)
		return err
	}
	if err := c.postMultipart(ctx, "", "/upload/temp", build, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
