// internal/artwork/filter.go
package artwork

import (
	"strings"

	"github.com/dcoppard/gallery-backend/internal/models"
)

// Availability narrows the gallery to sold or for-sale work.
type Availability string

const (
	AvailabilityAll       Availability = "all"
	AvailabilityAvailable Availability = "available"
	AvailabilitySold      Availability = "sold"
)

// TriState is a yes/no filter that can also be left inactive.
type TriState int

const (
	TriAny TriState = iota
	TriYes
	TriNo
)

func (t TriState) matches(v bool) bool {
	switch t {
	case TriYes:
		return v
	case TriNo:
		return !v
	default:
		return true
	}
}

// Filter is a set of independent predicates combined with logical AND.
// An inactive predicate (zero value) contributes no constraint, predicates
// commute, and applying the same filter twice equals applying it once.
type Filter struct {
	Genre          string
	Availability   Availability
	Featured       TriState
	InProgress     TriState
	Year           int
	Search         string
	NeedsAttention bool
}

// Matches reports whether a single painting satisfies every active predicate.
func (f Filter) Matches(p *models.Painting) bool {
	if f.Genre != "" && !strings.EqualFold(p.Genre, f.Genre) {
		return false
	}

	switch f.Availability {
	case AvailabilityAvailable:
		if p.Sold {
			return false
		}
	case AvailabilitySold:
		if !p.Sold {
			return false
		}
	}

	if !f.Featured.matches(p.Featured) {
		return false
	}
	if !f.InProgress.matches(p.InProgress) {
		return false
	}

	if f.Year != 0 && p.Year != f.Year {
		return false
	}

	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}

	if f.NeedsAttention && !p.NeedsAttention() {
		return false
	}

	return true
}

// Apply returns the paintings satisfying the filter, preserving input order.
// Callers pre-sort the collection; the filter never reorders it.
func (f Filter) Apply(paintings []models.Painting) []models.Painting {
	result := make([]models.Painting, 0, len(paintings))
	for i := range paintings {
		if f.Matches(&paintings[i]) {
			result = append(result, paintings[i])
		}
	}
	return result
}

// Free-text search is a case-insensitive substring match; a painting
// matches when any of title, description or medium contains the query.
func matchesSearch(p *models.Painting, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Medium), q)
}

// DefaultPageSize is the gallery's "load more" increment.
const DefaultPageSize = 12

// Pager implements the gallery's take(n) pagination: a prefix of the
// filtered collection that grows by a fixed page size and can be reset.
type Pager struct {
	limit int
}

func NewPager() *Pager {
	return &Pager{limit: DefaultPageSize}
}

func (pg *Pager) Limit() int {
	if pg.limit < DefaultPageSize {
		return DefaultPageSize
	}
	return pg.limit
}

// LoadMore grows the visible prefix by one page.
func (pg *Pager) LoadMore() {
	pg.limit = pg.Limit() + DefaultPageSize
}

// ShowLess resets the visible prefix to the page size floor.
func (pg *Pager) ShowLess() {
	pg.limit = DefaultPageSize
}

// Slice returns the visible prefix of the filtered collection.
func (pg *Pager) Slice(paintings []models.Painting) []models.Painting {
	return Take(paintings, pg.Limit())
}

// Take returns the first n paintings; take(n) is always a prefix of
// take(n + pageSize) over the same filtered collection.
func Take(paintings []models.Painting, n int) []models.Painting {
	if n < 0 {
		n = 0
	}
	if n > len(paintings) {
		n = len(paintings)
	}
	return paintings[:n]
}
