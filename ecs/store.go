package ecs

import (
	"errors"
	"fmt"

	"ebiten-raycaster/components"
)

// ErrStaleEntity is returned when a handle is not currently registered
var ErrStaleEntity = errors.New("stale entity handle")

// EntityStore owns the entity pool and the parallel component arrays.
// Not safe for concurrent mutation; callers serialize Register/Unregister.
type EntityStore struct {
	pool      *entityPool
	movement  ComponentArray[components.MovementComponent]
	kinds     ComponentArray[components.EnemyKindComponent]
	distances ComponentArray[components.DistanceComponent]
}

// NewEntityStore creates a store with every slot free
func NewEntityStore() *EntityStore {
	return &EntityStore{pool: newEntityPool()}
}

// RegisterEntity checks out a handle and resets its components.
// Returns false when the pool is exhausted.
func (s *EntityStore) RegisterEntity() (Entity, bool) {
	e, ok := s.pool.acquire()
	if !ok {
		return 0, false
	}
	idx := e.Index()
	s.movement.reset(idx)
	s.kinds.reset(idx)
	s.distances.reset(idx)
	return e, true
}

// UnregisterEntity returns the handle to the free pool.
// Component data is left in place until the slot is registered again.
func (s *EntityStore) UnregisterEntity(e Entity) error {
	if !s.pool.release(e) {
		return fmt.Errorf("unregister entity %d: %w", e.Index(), ErrStaleEntity)
	}
	return nil
}

// Alive reports whether the handle is currently registered
func (s *EntityStore) Alive(e Entity) bool {
	return s.pool.isAlive(e)
}

// Available returns the number of free slots
func (s *EntityStore) Available() int {
	return s.pool.count
}

// Movement returns the entity's movement component
func (s *EntityStore) Movement(e Entity) (*components.MovementComponent, bool) {
	if !s.pool.isAlive(e) {
		return nil, false
	}
	return s.movement.at(e.Index()), true
}

// EnemyKind returns the entity's enemy kind component
func (s *EntityStore) EnemyKind(e Entity) (*components.EnemyKindComponent, bool) {
	if !s.pool.isAlive(e) {
		return nil, false
	}
	return s.kinds.at(e.Index()), true
}

// Distance returns the entity's cached distance component
func (s *EntityStore) Distance(e Entity) (*components.DistanceComponent, bool) {
	if !s.pool.isAlive(e) {
		return nil, false
	}
	return s.distances.at(e.Index()), true
}
