// internal/artwork/carousel_test.go
package artwork

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarouselWrapAround(t *testing.T) {
	c := NewCarousel([]string{"a", "b", "c"})

	current, ok := c.Current()
	assert.True(t, ok)
	assert.Equal(t, "a", current)

	c.Next()
	c.Next()
	current, _ = c.Current()
	assert.Equal(t, "c", current)

	// Last wraps to first.
	c.Next()
	current, _ = c.Current()
	assert.Equal(t, "a", current)

	// First wraps to last.
	c.Previous()
	current, _ = c.Current()
	assert.Equal(t, "c", current)
}

func TestCarouselFullCycleReturnsToStart(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	c := NewCarousel(items)

	for range items {
		c.Next()
	}
	current, _ := c.Current()
	assert.Equal(t, "a", current)

	for range items {
		c.Previous()
	}
	current, _ = c.Current()
	assert.Equal(t, "a", current)
}

func TestCarouselEmpty(t *testing.T) {
	c := NewCarousel(nil)

	_, ok := c.Current()
	assert.False(t, ok)
	assert.Equal(t, -1, c.Index())

	// Navigation on an empty carousel is a no-op.
	c.Next()
	c.Previous()
	c.JumpTo(0)
	_, ok = c.Current()
	assert.False(t, ok)

	// First append becomes current.
	c.Append("a")
	current, ok := c.Current()
	assert.True(t, ok)
	assert.Equal(t, "a", current)
}

func TestCarouselJumpTo(t *testing.T) {
	c := NewCarousel([]string{"a", "b", "c"})

	c.JumpTo(2)
	current, _ := c.Current()
	assert.Equal(t, "c", current)

	// Out-of-range jumps leave the index where it was.
	c.JumpTo(5)
	current, _ = c.Current()
	assert.Equal(t, "c", current)
	c.JumpTo(-1)
	current, _ = c.Current()
	assert.Equal(t, "c", current)
}

func TestCarouselAppendKeepsCurrent(t *testing.T) {
	c := NewCarousel([]string{"a", "b"})
	c.Next()

	c.Append("c")
	current, _ := c.Current()
	assert.Equal(t, "b", current)
	assert.Equal(t, 3, c.Len())
}

func TestCarouselRemove(t *testing.T) {
	c := NewCarousel([]string{"a", "b", "c", "d"})
	c.JumpTo(2) // "c"

	// Removing before current shifts the index but not the entry.
	c.Remove(0)
	current, _ := c.Current()
	assert.Equal(t, "c", current)

	// Removing the current entry falls back to the previous one.
	c.Remove(1)
	current, _ = c.Current()
	assert.Equal(t, "b", current)

	// Removing the last remaining entries never leaves the index dangling.
	c.Remove(1)
	current, _ = c.Current()
	assert.Equal(t, "b", current)
	c.Remove(0)
	_, ok := c.Current()
	assert.False(t, ok)
}

func TestCarouselCopiesInput(t *testing.T) {
	items := []string{"a", "b"}
	c := NewCarousel(items)

	items[0] = "mutated"
	current, _ := c.Current()
	assert.Equal(t, "a", current)
}

func TestNeighbors(t *testing.T) {
	ids := []string{"p1", "p2", "p3"}

	prev, next, ok := Neighbors(ids, "p2")
	assert.True(t, ok)
	assert.Equal(t, "p1", prev)
	assert.Equal(t, "p3", next)

	// Ring order wraps at both ends.
	prev, next, _ = Neighbors(ids, "p1")
	assert.Equal(t, "p3", prev)
	assert.Equal(t, "p2", next)
	prev, next, _ = Neighbors(ids, "p3")
	assert.Equal(t, "p2", prev)
	assert.Equal(t, "p1", next)

	// A lone painting is its own neighbor.
	prev, next, _ = Neighbors([]string{"only"}, "only")
	assert.Equal(t, "only", prev)
	assert.Equal(t, "only", next)

	_, _, ok = Neighbors(ids, "missing")
	assert.False(t, ok)
}
