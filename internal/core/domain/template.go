package domain

import "time"

// Category is the kind of decoration a template produces. The values are
// the ones the storefront reads from the templates collection.
type Category string

const (
	CategoryArch        Category = "arco"
	CategoryColumn      Category = "columna"
	CategoryCenterpiece Category = "centro"
)

// CollectionTemplates is the document collection product templates are written to.
const CollectionTemplates = "templates"

// Template is a product template offered to clients.
type Template struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Category    Category  `json:"type" validate:"required,oneof=arco columna centro"`
	BasePrice   float64   `json:"base_price" validate:"gte=0"`
	ImageURL    *string   `json:"image_url" validate:"omitempty,url"`
	Active      bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at" validate:"required"`
}

// Document returns the payload stored under the template's document ID.
// imageUrl is always present; a missing image is stored as null.
func (t Template) Document() map[string]any {
	var image any
	if t.ImageURL != nil {
		image = *t.ImageURL
	}
	return map[string]any{
		"name":        t.Name,
		"description": t.Description,
		"type":        string(t.Category),
		"basePrice":   t.BasePrice,
		"imageUrl":    image,
		"isActive":    t.Active,
		"createdAt":   ToWireTimestamp(t.CreatedAt),
	}
}
