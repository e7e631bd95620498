// internal/models/painting.go
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MaxImageVersions caps the additional images stored per painting, on top
// of the required primary image.
const MaxImageVersions = 3

// PlaceholderImagePrefix marks records whose primary image was never
// uploaded. Such records count as needing attention.
const PlaceholderImagePrefix = "/placeholder.svg"

// Painting is the canonical record for a single artwork. The dimensions
// string is the source of truth for size; no numeric height/width columns
// are persisted. Deletion is permanent, so there is no soft-delete column.
type Painting struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string `json:"title" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`

	ImageURL string `json:"image_url" gorm:"size:1024"`
	// Additional views of the same physical artwork, in display order.
	ImageVersions pq.StringArray `json:"image_versions" gorm:"type:text[]"`

	// Formatted as "<height> x <width> <unit>", e.g. "24 x 36 inches".
	Dimensions string `json:"dimensions" gorm:"size:100"`

	Medium string `json:"medium" gorm:"size:100"`
	Genre  string `json:"genre,omitempty" gorm:"size:100;index"`
	Year   int    `json:"year"`

	Price Price `json:"price" gorm:"type:varchar(32)"`

	Sold       bool `json:"sold" gorm:"default:false;index"`
	Featured   bool `json:"featured" gorm:"default:false;index"`
	InProgress bool `json:"in_progress" gorm:"default:false"`

	ReferenceCredit string `json:"reference_credit,omitempty" gorm:"size:255"`

	// Pricing-calculator inputs retained so the suggested price can be
	// recomputed later; the persisted Price stays whatever the operator
	// last entered.
	RatePerSquareInch float64 `json:"rate_per_square_inch,omitempty" gorm:"default:0"`
	MaterialCosts     float64 `json:"material_costs,omitempty" gorm:"default:0"`
}

// Images returns the full carousel list, primary first.
func (p *Painting) Images() []string {
	images := make([]string, 0, 1+len(p.ImageVersions))
	if p.ImageURL != "" {
		images = append(images, p.ImageURL)
	}
	images = append(images, p.ImageVersions...)
	return images
}

// HasPlaceholderImage reports whether the primary image is the placeholder
// sentinel rather than an uploaded asset.
func (p *Painting) HasPlaceholderImage() bool {
	return p.ImageURL == "" || strings.HasPrefix(p.ImageURL, PlaceholderImagePrefix)
}

// NeedsAttention reports whether a required descriptive field is missing or
// the image is still a placeholder. The admin list surfaces these records.
func (p *Painting) NeedsAttention() bool {
	if strings.TrimSpace(p.Title) == "" {
		return true
	}
	if strings.TrimSpace(p.Description) == "" {
		return true
	}
	if strings.TrimSpace(p.Dimensions) == "" {
		return true
	}
	if strings.TrimSpace(p.Medium) == "" {
		return true
	}
	if p.Year <= 0 {
		return true
	}
	return p.HasPlaceholderImage()
}

// Available reports whether the painting can still be inquired about or
// bought. Sold paintings are excluded from availability filtering and from
// offer submissions.
func (p *Painting) Available() bool {
	return !p.Sold
}
