// internal/services/painting_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dcoppard/gallery-backend/internal/apperrors"
	"github.com/dcoppard/gallery-backend/internal/artwork"
	"github.com/dcoppard/gallery-backend/internal/models"
	"github.com/dcoppard/gallery-backend/internal/viewcache"
)

// PaintingService is the persistence collaborator for painting records.
// Reads go through the derived-view cache; every write invalidates the
// affected views so stale data is never served after a mutation.
type PaintingService struct {
	db    *gorm.DB
	cache *viewcache.Store
}

func NewPaintingService(db *gorm.DB, cache *viewcache.Store) *PaintingService {
	return &PaintingService{
		db:    db,
		cache: cache,
	}
}

// GetAll returns the full collection, most recently created first. The
// result is cached under the requesting view's key.
func (s *PaintingService) GetAll(ctx context.Context, view string) ([]models.Painting, error) {
	if paintings, ok := s.cache.GetList(view); ok {
		return paintings, nil
	}

	var paintings []models.Painting
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&paintings).Error; err != nil {
		return nil, &apperrors.PersistenceError{Op: "list", Err: err}
	}

	s.cache.SetList(view, paintings)
	return paintings, nil
}

// List applies the gallery filter over the ordered collection and takes a
// prefix of the result. limit <= 0 means no truncation.
func (s *PaintingService) List(ctx context.Context, view string, filter artwork.Filter, limit int) ([]models.Painting, int, error) {
	paintings, err := s.GetAll(ctx, view)
	if err != nil {
		return nil, 0, err
	}

	filtered := filter.Apply(paintings)
	total := len(filtered)
	if limit > 0 {
		filtered = artwork.Take(filtered, limit)
	}
	return filtered, total, nil
}

// GetFeatured returns the home-page rail of featured work.
func (s *PaintingService) GetFeatured(ctx context.Context, limit int) ([]models.Painting, error) {
	paintings, _, err := s.List(ctx, viewcache.ViewHome, artwork.Filter{Featured: artwork.TriYes}, limit)
	return paintings, err
}

// GetByID returns a single record, cached with a short TTL so a detail
// page refreshed on its polling interval picks up concurrent admin edits.
func (s *PaintingService) GetByID(ctx context.Context, id uuid.UUID) (*models.Painting, error) {
	if p, ok := s.cache.GetDetail(id); ok {
		return p, nil
	}

	var painting models.Painting
	if err := s.db.WithContext(ctx).First(&painting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, &apperrors.PersistenceError{Op: "get", Err: err}
	}

	s.cache.SetDetail(&painting)
	return &painting, nil
}

// Neighbors returns the previous and next painting ids in gallery order,
// wrapping at the ends, for the detail page's browse controls.
func (s *PaintingService) Neighbors(ctx context.Context, id uuid.UUID) (prev, next uuid.UUID, err error) {
	paintings, err := s.GetAll(ctx, viewcache.ViewGallery)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	ids := make([]string, len(paintings))
	for i := range paintings {
		ids[i] = paintings[i].ID.String()
	}

	prevStr, nextStr, ok := artwork.Neighbors(ids, id.String())
	if !ok {
		return uuid.Nil, uuid.Nil, apperrors.ErrNotFound
	}

	prev, _ = uuid.Parse(prevStr)
	next, _ = uuid.Parse(nextStr)
	return prev, next, nil
}

// Create persists a new record and invalidates the listing views. The
// caller (submission workflow) has already validated the draft and
// uploaded its images.
func (s *PaintingService) Create(ctx context.Context, painting *models.Painting) error {
	if err := s.db.WithContext(ctx).Create(painting).Error; err != nil {
		return &apperrors.PersistenceError{Op: "create", Err: err}
	}

	s.cache.InvalidatePainting(painting.ID)
	return nil
}

// Update merges the given column updates onto an existing record.
// Unspecified fields are left untouched.
func (s *PaintingService) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Painting, error) {
	var painting models.Painting
	if err := s.db.WithContext(ctx).First(&painting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, &apperrors.PersistenceError{Op: "update", Err: err}
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&painting).Updates(updates).Error; err != nil {
			return nil, &apperrors.PersistenceError{Op: "update", Err: err}
		}
	}

	// Reload so callers see the merged record
	if err := s.db.WithContext(ctx).First(&painting, "id = ?", id).Error; err != nil {
		return nil, &apperrors.PersistenceError{Op: "update", Err: err}
	}

	s.cache.InvalidatePainting(id)
	return &painting, nil
}

// Delete removes the record permanently. A second delete of the same id
// surfaces ErrNotFound rather than silently succeeding. The removed record
// is returned so the caller can clean up its stored images.
func (s *PaintingService) Delete(ctx context.Context, id uuid.UUID) (*models.Painting, error) {
	var painting models.Painting
	if err := s.db.WithContext(ctx).First(&painting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, &apperrors.PersistenceError{Op: "delete", Err: err}
	}

	if err := s.db.WithContext(ctx).Delete(&models.Painting{}, "id = ?", id).Error; err != nil {
		return nil, &apperrors.PersistenceError{Op: "delete", Err: err}
	}

	s.cache.InvalidatePainting(id)
	return &painting, nil
}

// DashboardStats summarizes the collection for the admin dashboard.
type DashboardStats struct {
	Total          int64      `json:"total"`
	Available      int64      `json:"available"`
	Sold           int64      `json:"sold"`
	Featured       int64      `json:"featured"`
	InProgress     int64      `json:"in_progress"`
	NeedsAttention int        `json:"needs_attention"`
	LastUpdatedAt  *time.Time `json:"last_updated_at,omitempty"`
}

func (s *PaintingService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	paintings, err := s.GetAll(ctx, viewcache.ViewAdmin)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{Total: int64(len(paintings))}
	for i := range paintings {
		p := &paintings[i]
		if p.Sold {
			stats.Sold++
		} else {
			stats.Available++
		}
		if p.Featured {
			stats.Featured++
		}
		if p.InProgress {
			stats.InProgress++
		}
		if p.NeedsAttention() {
			stats.NeedsAttention++
		}
		if stats.LastUpdatedAt == nil || p.UpdatedAt.After(*stats.LastUpdatedAt) {
			t := p.UpdatedAt
			stats.LastUpdatedAt = &t
		}
	}

	return stats, nil
}
