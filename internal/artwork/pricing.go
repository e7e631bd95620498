// internal/artwork/pricing.go
package artwork

import "math"

// PricingInput is the explicit view-model for the admin form's price helper.
// All fields default to zero when the operator leaves them blank or enters
// something unparsable; the calculator never blocks a save.
type PricingInput struct {
	Height            float64 `json:"height"`
	Width             float64 `json:"width"`
	RatePerSquareInch float64 `json:"rate_per_square_inch"`
	MaterialCosts     float64 `json:"material_costs"`
}

// SuggestedPrice computes round(height * width * rate + materialCosts).
// The result is advisory only: the persisted price is always the operator's
// last explicit entry, which may be any positive number or "Enquire".
func SuggestedPrice(in PricingInput) float64 {
	h := nonNegative(in.Height)
	w := nonNegative(in.Width)
	rate := nonNegative(in.RatePerSquareInch)
	materials := nonNegative(in.MaterialCosts)

	return math.Round(h*w*rate + materials)
}

func nonNegative(f float64) float64 {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
