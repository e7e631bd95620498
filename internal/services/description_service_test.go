// internal/services/description_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptionGenerateDeterministic(t *testing.T) {
	svc := NewDescriptionService()
	req := &DescriptionRequest{
		Title:      "Morning Light",
		Medium:     "Oil on canvas",
		Dimensions: "24 x 36 inches",
		Notes:      "painted on the north coast at dawn",
	}

	first := svc.Generate(req)
	second := svc.Generate(req)
	assert.Equal(t, first, second)
}

func TestDescriptionGenerateContent(t *testing.T) {
	svc := NewDescriptionService()

	out := svc.Generate(&DescriptionRequest{
		Title:      "Harbour Mist",
		Medium:     "Oil on board",
		Dimensions: "18 x 24 inches",
		Genre:      "Seascape",
		Notes:      "loose brushwork, muted palette",
	})

	assert.Contains(t, out, `"Harbour Mist"`)
	assert.Contains(t, out, "oil on board painting")
	assert.Contains(t, out, "18 x 24 inches")
	assert.Contains(t, out, "landscape format")
	assert.Contains(t, out, "seascape work")
	assert.Contains(t, out, "Loose brushwork, muted palette.")
}

func TestDescriptionGenerateSparseInput(t *testing.T) {
	svc := NewDescriptionService()

	out := svc.Generate(&DescriptionRequest{Title: "Untitled Study"})
	assert.Contains(t, out, `"Untitled Study"`)
	assert.Contains(t, out, "painting")
	// No dimensions means no measurement claim.
	assert.NotContains(t, out, "measuring")
	assert.False(t, strings.Contains(out, "  "), "no double spaces from empty sections")
}

func TestDescriptionOrientation(t *testing.T) {
	svc := NewDescriptionService()

	portrait := svc.Generate(&DescriptionRequest{Title: "Tall", Dimensions: "36 x 24 inches"})
	assert.Contains(t, portrait, "portrait format")

	square := svc.Generate(&DescriptionRequest{Title: "Square", Dimensions: "30 x 30 inches"})
	assert.NotContains(t, square, "format")
}
