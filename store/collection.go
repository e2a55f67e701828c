package store

// Collection is an ordered list of handles for bookkeeping and iteration.
// It does not own its hitboxes: the caller that created each one still has
// to Destroy it, and a destroyed hitbox stays in the list as a stale handle
// that every Store operation treats as empty.
type Collection struct {
	handles []Handle
}

// Add appends h and returns its index.
func (c *Collection) Add(h Handle) int {
	c.handles = append(c.handles, h)
	return len(c.handles) - 1
}

// At returns the handle at index i, or the empty handle when out of range.
func (c *Collection) At(i int) Handle {
	if i < 0 || i >= len(c.handles) {
		return Handle{}
	}
	return c.handles[i]
}

func (c *Collection) Len() int {
	return len(c.handles)
}

// Handles returns a copy of the list.
func (c *Collection) Handles() []Handle {
	out := make([]Handle, len(c.handles))
	copy(out, c.handles)
	return out
}
