// Package hitbox holds the axis-aligned hitbox value and its collision test.
// It must stay free of ECS and physics dependencies so it can be used by any
// owner, including the store and plain callers.
package hitbox

import "fmt"

// Box is an axis-aligned rectangle anchored at its center.
type Box struct {
	X      float64 // center x
	Y      float64 // center y
	W      float64 // width
	H      float64 // height
	Active bool    // inactive boxes neither move nor collide
}

// New returns an active box centered at (x, y).
// Negative sizes are kept as given; they produce an inverted interval.
func New(x, y, w, h float64) Box {
	return Box{
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		Active: true,
	}
}

// Move shifts the box by (dx, dy). Nil and inactive boxes stay where they are.
func (b *Box) Move(dx, dy float64) {
	if b == nil || !b.Active {
		return
	}
	b.X += dx
	b.Y += dy
}

// SetActive sets the active flag. Nil boxes are ignored.
func (b *Box) SetActive(active bool) {
	if b == nil {
		return
	}
	b.Active = active
}

// Bounds returns the min and max extents of the box. A nil box has zero bounds.
func (b *Box) Bounds() (minX, minY, maxX, maxY float64) {
	if b == nil {
		return 0, 0, 0, 0
	}
	halfW := b.W * 0.5
	halfH := b.H * 0.5
	return b.X - halfW, b.Y - halfH, b.X + halfW, b.Y + halfH
}

// Collide reports whether a and b overlap. Touching edges count as overlap.
// Nil or inactive boxes never collide.
func Collide(a, b *Box) bool {
	if a == nil || b == nil {
		return false
	}
	if !a.Active || !b.Active {
		return false
	}

	aMinX, aMinY, aMaxX, aMaxY := a.Bounds()
	bMinX, bMinY, bMaxX, bMaxY := b.Bounds()

	overlapX := aMinX <= bMaxX && aMaxX >= bMinX
	overlapY := aMinY <= bMaxY && aMaxY >= bMinY

	return overlapX && overlapY
}

// Describe formats the box as a single diagnostic line:
//
//	<label>: pos=(<x>, <y>) size=(<w> x <h>) active=<true|false>
//
// A nil box yields an empty string.
func (b *Box) Describe(label string) string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("%s: pos=(%.2f, %.2f) size=(%.2f x %.2f) active=%t",
		label, b.X, b.Y, b.W, b.H, b.Active)
}
