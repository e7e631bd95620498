// internal/artwork/dimensions.go
package artwork

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FallbackAspectRatio is used whenever a dimensions string cannot be parsed.
// Gallery layout must never be blocked by malformed historical data, so
// parse failures degrade to a 3:4 portrait ratio instead of erroring.
const FallbackAspectRatio = 0.75

// Collage tiles are scaled relative to a base canvas by the square root of
// their area, clamped so one huge painting cannot dominate the layout.
const (
	MinCollageScale = 0.5
	MaxCollageScale = 2.5
)

var dimensionsPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*[xX]\s*(\d+(?:\.\d+)?)`)

// Dimensions holds the numeric size extracted from a painting's free-text
// dimensions string. Height comes first in the stored format.
type Dimensions struct {
	Height float64
	Width  float64
}

// ParseDimensions extracts height and width from a string like
// "24 x 36 inches". The unit suffix is ignored; both numbers share it.
// ok is false when the string does not start with a <number> x <number> pair.
func ParseDimensions(s string) (Dimensions, bool) {
	m := dimensionsPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Dimensions{}, false
	}

	height, err := strconv.ParseFloat(m[1], 64)
	if err != nil || height <= 0 {
		return Dimensions{}, false
	}
	width, err := strconv.ParseFloat(m[2], 64)
	if err != nil || width <= 0 {
		return Dimensions{}, false
	}

	return Dimensions{Height: height, Width: width}, true
}

// FormatDimensions renders the canonical stored form, "24 x 36 inches".
// Formatting then parsing recovers height and width exactly.
func FormatDimensions(height, width float64, unit string) string {
	s := fmt.Sprintf("%s x %s", formatNumber(height), formatNumber(width))
	if unit != "" {
		s += " " + unit
	}
	return s
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// AspectRatio returns width / height for sizing image containers, or the
// 3:4 fallback when the dimensions string is unparsable.
func AspectRatio(dimensions string) float64 {
	d, ok := ParseDimensions(dimensions)
	if !ok {
		return FallbackAspectRatio
	}
	return d.Width / d.Height
}

// Area returns height * width in square units.
func (d Dimensions) Area() float64 {
	return d.Height * d.Width
}

// CollageScale maps a painting's area onto a display scale factor relative
// to baseArea. Scaling by the square root keeps relative sizes honest
// without letting large canvases take over the page.
func CollageScale(dimensions string, baseArea float64) float64 {
	if baseArea <= 0 {
		return 1
	}
	d, ok := ParseDimensions(dimensions)
	if !ok {
		return 1
	}
	scale := math.Sqrt(d.Area() / baseArea)
	if scale < MinCollageScale {
		return MinCollageScale
	}
	if scale > MaxCollageScale {
		return MaxCollageScale
	}
	return scale
}
