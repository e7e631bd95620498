// internal/viewcache/viewcache.go
package viewcache

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/dcoppard/gallery-backend/internal/models"
)

// Derived views that list paintings. Every mutating operation invalidates
// all of them so stale data is never served after a write.
const (
	ViewGallery = "view:gallery"
	ViewHome    = "view:home"
	ViewShop    = "view:shop"
	ViewAdmin   = "view:admin"
)

// DetailTTL bounds how stale a detail page may get when another session
// edits the same record. Between explicit invalidations the detail view
// simply expires and re-fetches.
const DetailTTL = 30 * time.Second

const listTTL = 5 * time.Minute

var listViews = []string{ViewGallery, ViewHome, ViewShop, ViewAdmin}

// Store caches the painting collection per derived view plus individual
// detail records.
type Store struct {
	cache *gocache.Cache
}

func New() *Store {
	return &Store{
		cache: gocache.New(listTTL, 2*listTTL),
	}
}

func (s *Store) GetList(view string) ([]models.Painting, bool) {
	v, ok := s.cache.Get(view)
	if !ok {
		return nil, false
	}
	paintings, ok := v.([]models.Painting)
	return paintings, ok
}

func (s *Store) SetList(view string, paintings []models.Painting) {
	s.cache.Set(view, paintings, listTTL)
}

func (s *Store) GetDetail(id uuid.UUID) (*models.Painting, bool) {
	v, ok := s.cache.Get(detailKey(id))
	if !ok {
		return nil, false
	}
	p, ok := v.(*models.Painting)
	return p, ok
}

func (s *Store) SetDetail(p *models.Painting) {
	s.cache.Set(detailKey(p.ID), p, DetailTTL)
}

// InvalidatePainting drops every list view plus the touched detail entry.
func (s *Store) InvalidatePainting(id uuid.UUID) {
	s.InvalidateLists()
	s.cache.Delete(detailKey(id))
}

func (s *Store) InvalidateLists() {
	for _, view := range listViews {
		s.cache.Delete(view)
	}
}

func detailKey(id uuid.UUID) string {
	return "painting:" + id.String()
}
