package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionOrder(t *testing.T) {
	s := New()
	a := mustCreate(t, s, 0, 0, 1, 2)
	b := mustCreate(t, s, 5, 0, 2, 2)

	var c Collection
	assert.Equal(t, 0, c.Add(a))
	assert.Equal(t, 1, c.Add(b))

	require.Equal(t, 2, c.Len())
	assert.Equal(t, a, c.At(0))
	assert.Equal(t, b, c.At(1))
	assert.Equal(t, []Handle{a, b}, c.Handles())
}

func TestCollectionOutOfRange(t *testing.T) {
	var c Collection
	assert.True(t, c.At(0).IsZero())
	assert.True(t, c.At(-1).IsZero())
}

func TestCollectionDoesNotOwn(t *testing.T) {
	s := New()
	a := mustCreate(t, s, 0, 0, 1, 1)
	b := mustCreate(t, s, 0, 0, 1, 1)

	var c Collection
	c.Add(a)
	c.Add(b)

	// Destroying through the owner leaves the list intact but stale.
	s.Destroy(a)
	assert.Equal(t, 2, c.Len())
	assert.False(t, s.Valid(c.At(0)))
	assert.False(t, s.Collide(c.At(0), c.At(1)))
	assert.Empty(t, s.Describe(c.At(0), "Stale"))

	// Dropping the list does not touch the store.
	c = Collection{}
	assert.True(t, s.Valid(b))
	assert.Equal(t, 1, s.Len())
}

func TestCollectionHandlesIsCopy(t *testing.T) {
	s := New()
	a := mustCreate(t, s, 0, 0, 1, 1)

	var c Collection
	c.Add(a)
	hs := c.Handles()
	hs[0] = Handle{}
	assert.Equal(t, a, c.At(0))
}
