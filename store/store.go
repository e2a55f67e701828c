// Package store owns hitboxes. Each hitbox is an entity in a donburi world,
// reached through a Handle. Every operation treats the zero Handle, and any
// handle whose hitbox was destroyed, as empty: it does nothing and reports
// false or "".
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/automoto/hitbox/archetypes"
	"github.com/automoto/hitbox/components"
	"github.com/automoto/hitbox/config"
	"github.com/automoto/hitbox/hitbox"
	"github.com/automoto/hitbox/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ErrAllocation is returned when the store cannot take another hitbox.
var ErrAllocation = errors.New("hitbox allocation failed")

// Handle refers to a hitbox owned by a Store. The zero Handle is empty.
type Handle struct {
	entity donburi.Entity
	ok     bool
}

// IsZero reports whether h is the empty handle.
func (h Handle) IsZero() bool {
	return !h.ok
}

// Store manages hitbox entities.
type Store struct {
	world    donburi.World
	space    *resolv.Space
	capacity int

	// donburi worlds are not safe for concurrent use and entry lookups
	// write to the world's entry cache, so reads take the same lock.
	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithCapacity caps the number of live hitboxes. Zero or less means unlimited;
// callers taking the value from user input should reject negatives.
func WithCapacity(n int) Option {
	return func(s *Store) {
		s.capacity = n
	}
}

// WithSpace adds every hitbox body to space on Create and removes it on
// Destroy.
func WithSpace(space *resolv.Space) Option {
	return func(s *Store) {
		s.space = space
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		world:    donburi.NewWorld(),
		capacity: config.Store.MaxHitboxes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create spawns an active hitbox centered at (x, y) with size (w, h).
// The returned error wraps ErrAllocation when the store is full; the handle
// is empty in that case and must not be used.
func (s *Store) Create(x, y, w, h float64) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.capacity > 0 && s.world.Len() >= s.capacity {
		return Handle{}, fmt.Errorf("create hitbox (%d live, capacity %d): %w",
			s.world.Len(), s.capacity, ErrAllocation)
	}

	entry := archetypes.Hitbox.Spawn(s.world)
	box := hitbox.New(x, y, w, h)
	components.Hitbox.SetValue(entry, components.HitboxData{Box: box})

	minX, minY, _, _ := box.Bounds()
	body := resolv.NewObject(minX, minY, w, h, tags.ResolvHitbox)
	body.Data = entry.Entity()
	components.Object.SetValue(entry, components.ObjectData{Object: body})
	if s.space != nil {
		s.space.Add(body)
	}

	return Handle{entity: entry.Entity(), ok: true}, nil
}

// Destroy releases the hitbox. Empty and already-destroyed handles are ignored.
func (s *Store) Destroy(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(h)
	if entry == nil {
		return
	}

	// Drop the body from whichever space holds it, ours or the caller's.
	body := components.Object.Get(entry).Object
	if body.Space != nil {
		body.Space.Remove(body)
	}
	s.world.Remove(h.entity)
}

// Move shifts the hitbox by (dx, dy). Inactive hitboxes do not move.
func (s *Store) Move(h Handle, dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(h)
	if entry == nil {
		return
	}
	data := components.Hitbox.Get(entry)
	data.Move(dx, dy)
	syncBody(entry, &data.Box)
}

// SetActive sets whether the hitbox moves and collides.
func (s *Store) SetActive(h Handle, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(h)
	if entry == nil {
		return
	}
	components.Hitbox.Get(entry).SetActive(active)
}

// Active reports the hitbox's active flag. Empty handles report false.
func (s *Store) Active(h Handle) bool {
	box, ok := s.Box(h)
	return ok && box.Active
}

// Collide reports whether two hitboxes overlap, touching edges included.
// Both boxes are read under one lock so the pair is never torn by a
// concurrent Move.
func (s *Store) Collide(a, b Handle) bool {
	s.mu.Lock()
	boxA := s.snapshot(a)
	boxB := s.snapshot(b)
	s.mu.Unlock()

	return hitbox.Collide(boxA, boxB)
}

// Describe returns the diagnostic line for the hitbox, or "" for an empty handle.
func (s *Store) Describe(h Handle, label string) string {
	s.mu.Lock()
	box := s.snapshot(h)
	s.mu.Unlock()

	return box.Describe(label)
}

// Box returns a copy of the hitbox's state.
func (s *Store) Box(h Handle) (hitbox.Box, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	box := s.snapshot(h)
	if box == nil {
		return hitbox.Box{}, false
	}
	return *box, true
}

// Body returns the resolv object mirroring the hitbox's extents, for callers
// that add hitboxes to their own resolv.Space. The store keeps its position
// and cell registration in step with Move and removes it from its space on
// Destroy; callers must not move it themselves.
func (s *Store) Body(h Handle) *resolv.Object {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(h)
	if entry == nil {
		return nil
	}
	return components.Object.Get(entry).Object
}

// Valid reports whether h refers to a live hitbox.
func (s *Store) Valid(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.entry(h) != nil
}

// Len returns the number of live hitboxes.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.world.Len()
}

// Handles returns a handle for every live hitbox, in no particular order.
func (s *Store) Handles() []Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handles := make([]Handle, 0, s.world.Len())
	tags.Hitbox.Each(s.world, func(e *donburi.Entry) {
		handles = append(handles, Handle{entity: e.Entity(), ok: true})
	})
	return handles
}

func (s *Store) entry(h Handle) *donburi.Entry {
	if !h.ok || !s.world.Valid(h.entity) {
		return nil
	}
	return s.world.Entry(h.entity)
}

func (s *Store) snapshot(h Handle) *hitbox.Box {
	entry := s.entry(h)
	if entry == nil {
		return nil
	}
	box := components.Hitbox.Get(entry).Box
	return &box
}

func syncBody(entry *donburi.Entry, box *hitbox.Box) {
	body := components.Object.Get(entry).Object
	minX, minY, _, _ := box.Bounds()
	body.X = minX
	body.Y = minY
	if body.Space != nil {
		body.Update()
	}
}
