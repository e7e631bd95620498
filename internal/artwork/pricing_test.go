// internal/artwork/pricing_test.go
package artwork

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestedPrice(t *testing.T) {
	assert.Equal(t, 520.0, SuggestedPrice(PricingInput{
		Height:            10,
		Width:             10,
		RatePerSquareInch: 5,
		MaterialCosts:     20,
	}))

	// Result is rounded to the nearest whole unit.
	assert.Equal(t, 216.0, SuggestedPrice(PricingInput{
		Height:            11.5,
		Width:             16.25,
		RatePerSquareInch: 1.1,
		MaterialCosts:     10,
	}))

	// Blank form fields contribute nothing.
	assert.Equal(t, 0.0, SuggestedPrice(PricingInput{}))
	assert.Equal(t, 20.0, SuggestedPrice(PricingInput{MaterialCosts: 20}))
}

func TestSuggestedPriceClampsGarbage(t *testing.T) {
	// Negative or non-finite entries are treated as blank, never as a
	// negative price.
	assert.Equal(t, 20.0, SuggestedPrice(PricingInput{
		Height:            -10,
		Width:             10,
		RatePerSquareInch: 5,
		MaterialCosts:     20,
	}))
	assert.Equal(t, 0.0, SuggestedPrice(PricingInput{
		Height:            math.NaN(),
		Width:             math.Inf(1),
		RatePerSquareInch: 5,
	}))
}

func TestSuggestedPriceMonotonic(t *testing.T) {
	small := SuggestedPrice(PricingInput{Height: 10, Width: 10, RatePerSquareInch: 5})
	large := SuggestedPrice(PricingInput{Height: 20, Width: 10, RatePerSquareInch: 5})
	assert.Greater(t, large, small)

	withMaterials := SuggestedPrice(PricingInput{Height: 10, Width: 10, RatePerSquareInch: 5, MaterialCosts: 35})
	assert.Greater(t, withMaterials, small)
}
