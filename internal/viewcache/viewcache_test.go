// internal/viewcache/viewcache_test.go
package viewcache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcoppard/gallery-backend/internal/models"
)

func TestStoreListRoundTrip(t *testing.T) {
	s := New()

	_, ok := s.GetList(ViewGallery)
	assert.False(t, ok)

	paintings := []models.Painting{{Title: "Morning Light"}, {Title: "Harbour Mist"}}
	s.SetList(ViewGallery, paintings)

	got, ok := s.GetList(ViewGallery)
	require.True(t, ok)
	assert.Len(t, got, 2)

	// Views are independent keys.
	_, ok = s.GetList(ViewAdmin)
	assert.False(t, ok)
}

func TestStoreDetailRoundTrip(t *testing.T) {
	s := New()
	p := &models.Painting{ID: uuid.New(), Title: "Morning Light"}

	_, ok := s.GetDetail(p.ID)
	assert.False(t, ok)

	s.SetDetail(p)
	got, ok := s.GetDetail(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Morning Light", got.Title)
}

func TestInvalidatePaintingDropsListsAndDetail(t *testing.T) {
	s := New()
	p := &models.Painting{ID: uuid.New(), Title: "Morning Light"}
	other := &models.Painting{ID: uuid.New(), Title: "Harbour Mist"}

	for _, view := range []string{ViewGallery, ViewHome, ViewShop, ViewAdmin} {
		s.SetList(view, []models.Painting{*p})
	}
	s.SetDetail(p)
	s.SetDetail(other)

	s.InvalidatePainting(p.ID)

	for _, view := range []string{ViewGallery, ViewHome, ViewShop, ViewAdmin} {
		_, ok := s.GetList(view)
		assert.False(t, ok, view)
	}
	_, ok := s.GetDetail(p.ID)
	assert.False(t, ok)

	// Untouched detail entries survive.
	_, ok = s.GetDetail(other.ID)
	assert.True(t, ok)
}

func TestInvalidateLists(t *testing.T) {
	s := New()
	p := &models.Painting{ID: uuid.New()}

	s.SetList(ViewGallery, nil)
	s.SetDetail(p)

	s.InvalidateLists()

	_, ok := s.GetList(ViewGallery)
	assert.False(t, ok)
	_, ok = s.GetDetail(p.ID)
	assert.True(t, ok)
}
