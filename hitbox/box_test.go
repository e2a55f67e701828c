package hitbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := New(1, 2, 3, 4)
	require.Equal(t, Box{X: 1, Y: 2, W: 3, H: 4, Active: true}, b)
}

func TestNewKeepsNegativeSize(t *testing.T) {
	b := New(0, 0, -2, -4)
	minX, minY, maxX, maxY := b.Bounds()
	assert.Equal(t, 1.0, minX)
	assert.Equal(t, 2.0, minY)
	assert.Equal(t, -1.0, maxX)
	assert.Equal(t, -2.0, maxY)

	// An inverted interval does not even reach itself.
	assert.False(t, Collide(&b, &b))
}

func TestMove(t *testing.T) {
	b := New(0, 0, 1, 1)
	b.Move(1.5, -2)
	assert.Equal(t, 1.5, b.X)
	assert.Equal(t, -2.0, b.Y)
}

func TestMoveInactiveIsFrozen(t *testing.T) {
	b := New(3, 4, 1, 1)
	b.SetActive(false)
	b.Move(10, 10)
	assert.Equal(t, 3.0, b.X)
	assert.Equal(t, 4.0, b.Y)
}

func TestNilReceivers(t *testing.T) {
	var b *Box
	require.NotPanics(t, func() {
		b.Move(1, 1)
		b.SetActive(false)
	})
	assert.Empty(t, b.Describe("Nobody"))

	var minX, minY, maxX, maxY float64
	require.NotPanics(t, func() { minX, minY, maxX, maxY = b.Bounds() })
	assert.Zero(t, minX)
	assert.Zero(t, minY)
	assert.Zero(t, maxX)
	assert.Zero(t, maxY)
}

func TestCollide(t *testing.T) {
	tests := []struct {
		name string
		a    Box
		b    Box
		want bool
	}{
		{
			name: "overlapping",
			a:    New(0, 0, 2, 2),
			b:    New(1, 1, 2, 2),
			want: true,
		},
		{
			name: "touching edges",
			a:    New(0, 0, 2, 2),
			b:    New(2, 0, 2, 2),
			want: true,
		},
		{
			name: "touching corners",
			a:    New(0, 0, 2, 2),
			b:    New(2, 2, 2, 2),
			want: true,
		},
		{
			name: "contained",
			a:    New(0, 0, 10, 10),
			b:    New(1, 1, 1, 1),
			want: true,
		},
		{
			name: "separated on x",
			a:    New(0, 0, 2, 2),
			b:    New(2.01, 0, 2, 2),
			want: false,
		},
		{
			name: "separated on y",
			a:    New(0, 0, 2, 2),
			b:    New(0, -3, 2, 2),
			want: false,
		},
		{
			name: "overlap on x only",
			a:    New(0, 0, 2, 2),
			b:    New(0.5, 5, 2, 2),
			want: false,
		},
		{
			name: "zero size point on edge",
			a:    New(0, 0, 2, 2),
			b:    New(1, 1, 0, 0),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collide(&tt.a, &tt.b))
			assert.Equal(t, tt.want, Collide(&tt.b, &tt.a), "collision must be symmetric")
		})
	}
}

func TestCollideInactive(t *testing.T) {
	a := New(0, 0, 2, 2)
	b := New(1, 0, 2, 2)
	require.True(t, Collide(&a, &b))

	b.SetActive(false)
	assert.False(t, Collide(&a, &b))
	assert.False(t, Collide(&b, &a))

	b.SetActive(true)
	a.SetActive(false)
	assert.False(t, Collide(&a, &b))
	assert.False(t, Collide(&b, &a))
}

func TestCollideNil(t *testing.T) {
	a := New(0, 0, 2, 2)
	assert.False(t, Collide(&a, nil))
	assert.False(t, Collide(nil, &a))
	assert.False(t, Collide(nil, nil))
}

func TestCollideWithSelf(t *testing.T) {
	for _, b := range []Box{
		New(0, 0, 1, 2),
		New(-5, 7, 0, 0),
		New(100, -100, 3.5, 0.25),
	} {
		assert.True(t, Collide(&b, &b), "%+v should collide with itself", b)
	}
}

func TestCollideSymmetryGrid(t *testing.T) {
	var boxes []Box
	for x := -3.0; x <= 3; x += 1.5 {
		for _, w := range []float64{0, 1, 2, 3} {
			boxes = append(boxes, New(x, x/2, w, 2))
		}
	}
	for i := range boxes {
		for j := range boxes {
			assert.Equal(t, Collide(&boxes[i], &boxes[j]), Collide(&boxes[j], &boxes[i]))
		}
	}
}

func TestDescribe(t *testing.T) {
	b := New(0, 0, 1, 2)
	assert.Equal(t, "Player: pos=(0.00, 0.00) size=(1.00 x 2.00) active=true", b.Describe("Player"))

	b = New(5, -0.25, 2, 2)
	b.SetActive(false)
	assert.Equal(t, "Enemy: pos=(5.00, -0.25) size=(2.00 x 2.00) active=false", b.Describe("Enemy"))
}
