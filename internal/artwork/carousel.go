// internal/artwork/carousel.go
package artwork

// Carousel tracks the currently displayed entry of an ordered list with
// wrap-around navigation. It is used for a painting's image versions and,
// keyed by record id, for the gallery detail page's prev/next-painting
// controls. It knows nothing about rendering.
type Carousel struct {
	items   []string
	current int
}

// NewCarousel starts at the first entry. The slice is copied so later
// mutations of the caller's slice cannot desync the index.
func NewCarousel(items []string) *Carousel {
	c := &Carousel{items: make([]string, len(items))}
	copy(c.items, items)
	return c
}

func (c *Carousel) Len() int {
	return len(c.items)
}

func (c *Carousel) Items() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}

// Index returns the current position, or -1 for an empty carousel.
func (c *Carousel) Index() int {
	if len(c.items) == 0 {
		return -1
	}
	return c.current
}

// Current returns the displayed entry and false when the carousel is empty.
func (c *Carousel) Current() (string, bool) {
	if len(c.items) == 0 {
		return "", false
	}
	return c.items[c.current], true
}

// Next advances with wrap-around: the last entry leads back to the first.
func (c *Carousel) Next() {
	if len(c.items) == 0 {
		return
	}
	c.current = (c.current + 1) % len(c.items)
}

// Previous steps back with wrap-around: the first entry leads to the last.
func (c *Carousel) Previous() {
	if len(c.items) == 0 {
		return
	}
	c.current = (c.current - 1 + len(c.items)) % len(c.items)
}

// JumpTo selects an index directly. An out-of-range index is a no-op, not
// an error: jumps are driven by trusted UI state (thumbnail clicks).
func (c *Carousel) JumpTo(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.current = index
}

// Append adds an entry at the end. The current index is unchanged unless
// the list was empty, in which case the new entry becomes current.
func (c *Carousel) Append(item string) {
	c.items = append(c.items, item)
	if len(c.items) == 1 {
		c.current = 0
	}
}

// Remove deletes the entry at index. Removing the displayed entry shifts
// the current index to the previous valid one, clamped at 0; the index
// never ends up out of bounds.
func (c *Carousel) Remove(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)

	switch {
	case len(c.items) == 0:
		c.current = 0
	case index < c.current:
		c.current--
	case index == c.current && c.current > 0:
		c.current--
	case c.current >= len(c.items):
		c.current = len(c.items) - 1
	}
}

// Neighbors returns the entries before and after id in ring order, for a
// collection navigator keyed by record id. ok is false when id is absent.
// A single-entry collection wraps onto itself.
func Neighbors(ids []string, id string) (prev, next string, ok bool) {
	for i, candidate := range ids {
		if candidate != id {
			continue
		}
		n := len(ids)
		return ids[(i-1+n)%n], ids[(i+1)%n], true
	}
	return "", "", false
}
