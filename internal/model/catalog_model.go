package model

import "time"

type Collection struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// CollectionDetail is GET /collections/:id — the collection plus its products.
type CollectionDetail struct {
	Collection Collection `json:"collection"`
	Products   []Product  `json:"products"`
}

// SpecificationValue is a selectable variant value with its own stock count.
type SpecificationValue struct {
	Value string `json:"value"`
	Stock *int   `json:"stock,omitempty"`
}

// SpecificationAxis is a named variant axis (e.g. Size) on a product.
type SpecificationAxis struct {
	Key    string               `json:"key"`
	Values []SpecificationValue `json:"values"`
}

// CustomizationSchema describes one input the buyer must fill before the
// product can go in the cart.
type CustomizationSchema struct {
	Label string `json:"label"`
	Type  string `json:"type"` // "text" or "file"
}

type Review struct {
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Images    []string  `json:"images,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Product struct {
	ID                  string                `json:"_id"`
	Title               string                `json:"title"`
	Description         string                `json:"description,omitempty"`
	Price               Price                 `json:"price"`
	Images              []string              `json:"images,omitempty"`
	Stock               *int                  `json:"stock,omitempty"`
	IsCustomizable      bool                  `json:"isCustomizable"`
	CustomizationFields []CustomizationSchema `json:"customizationFields,omitempty"`
	Specifications      []SpecificationAxis   `json:"specifications,omitempty"`
	Reviews             []Review              `json:"reviews,omitempty"`
}

// UploadResult is what POST /upload/temp returns for a customization file.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}
