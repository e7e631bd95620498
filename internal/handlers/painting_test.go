// internal/handlers/painting_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcoppard/gallery-backend/internal/artwork"
	"github.com/dcoppard/gallery-backend/internal/models"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/paintings?"+rawQuery, nil)
	return c
}

func TestParsePriceField(t *testing.T) {
	tests := []struct {
		input string
		want  models.Price
	}{
		{"", models.Price{}},
		{"  ", models.Price{}},
		{"Enquire", models.EnquirePrice()},
		{"enquire", models.EnquirePrice()},
		{"500", models.FixedPrice(500)},
		{"499.50", models.FixedPrice(499.5)},
	}

	for _, tt := range tests {
		got, err := parsePriceField(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParsePriceFieldRejectsNonPositive(t *testing.T) {
	for _, input := range []string{"0", "-5", "0.0", "-499.50"} {
		_, err := parsePriceField(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParsePriceFieldRejectsGarbage(t *testing.T) {
	_, err := parsePriceField("about 500")
	assert.Error(t, err)
}

// Every price the form accepts must survive a trip through the column
// codec, or the record it produced could never be listed again.
func TestParsePriceFieldRoundTripsThroughColumn(t *testing.T) {
	for _, input := range []string{"500", "499.50", "Enquire", ""} {
		price, err := parsePriceField(input)
		require.NoError(t, err, "input %q", input)

		value, err := price.Value()
		require.NoError(t, err, "input %q", input)

		var scanned models.Price
		require.NoError(t, scanned.Scan(value), "input %q", input)
		assert.Equal(t, price, scanned, "input %q", input)
	}
}

func TestFilterFromQueryFeatured(t *testing.T) {
	filter := filterFromQuery(queryContext(t, "featured=true"))
	assert.Equal(t, artwork.TriYes, filter.Featured)

	filter = filterFromQuery(queryContext(t, "featured=false"))
	assert.Equal(t, artwork.TriNo, filter.Featured)

	filter = filterFromQuery(queryContext(t, "genre=seascape"))
	assert.Equal(t, artwork.TriAny, filter.Featured)
}

func TestFilterFromQueryMapsSharedFilters(t *testing.T) {
	filter := filterFromQuery(queryContext(t, "genre=seascape&availability=sold&year=2024&search=cliff"))

	assert.Equal(t, "seascape", filter.Genre)
	assert.Equal(t, artwork.AvailabilitySold, filter.Availability)
	assert.Equal(t, 2024, filter.Year)
	assert.Equal(t, "cliff", filter.Search)
}

func TestDetailCacheControl(t *testing.T) {
	assert.Equal(t, "public, max-age=30", detailCacheControl())
}
