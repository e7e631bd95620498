// internal/models/painting_test.go
package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestPaintingImages(t *testing.T) {
	p := Painting{
		ImageURL:      "/uploads/front.jpg",
		ImageVersions: pq.StringArray{"/uploads/detail.jpg", "/uploads/framed.jpg"},
	}
	assert.Equal(t, []string{"/uploads/front.jpg", "/uploads/detail.jpg", "/uploads/framed.jpg"}, p.Images())

	// A missing primary never produces an empty leading entry.
	p.ImageURL = ""
	assert.Equal(t, []string{"/uploads/detail.jpg", "/uploads/framed.jpg"}, p.Images())
}

func TestPaintingHasPlaceholderImage(t *testing.T) {
	assert.True(t, (&Painting{}).HasPlaceholderImage())
	assert.True(t, (&Painting{ImageURL: "/placeholder.svg"}).HasPlaceholderImage())
	assert.True(t, (&Painting{ImageURL: "/placeholder.svg?height=400&width=300"}).HasPlaceholderImage())
	assert.False(t, (&Painting{ImageURL: "/uploads/real.jpg"}).HasPlaceholderImage())
}

func TestPaintingNeedsAttention(t *testing.T) {
	complete := Painting{
		Title:       "Morning Light",
		Description: "Oil landscape at dawn",
		Dimensions:  "24 x 36 inches",
		Medium:      "Oil on canvas",
		Year:        2023,
		ImageURL:    "/uploads/morning.jpg",
	}
	assert.False(t, complete.NeedsAttention())

	missingTitle := complete
	missingTitle.Title = "   "
	assert.True(t, missingTitle.NeedsAttention())

	missingYear := complete
	missingYear.Year = 0
	assert.True(t, missingYear.NeedsAttention())

	placeholder := complete
	placeholder.ImageURL = "/placeholder.svg"
	assert.True(t, placeholder.NeedsAttention())
}

func TestPaintingAvailable(t *testing.T) {
	assert.True(t, (&Painting{}).Available())
	assert.False(t, (&Painting{Sold: true}).Available())
}
