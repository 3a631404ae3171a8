package ecs

import "fmt"

// EntityList is the ordered set of live entities the systems iterate.
// It holds no duplicates and only handles registered in its store.
type EntityList struct {
	store    *EntityStore
	entities []Entity
}

// NewEntityList creates an empty list bound to a store
func NewEntityList(store *EntityStore) *EntityList {
	return &EntityList{store: store}
}

// Add appends a registered handle
func (l *EntityList) Add(e Entity) error {
	if !l.store.Alive(e) {
		return fmt.Errorf("add entity %d: %w", e.Index(), ErrStaleEntity)
	}
	if l.Contains(e) {
		return fmt.Errorf("entity %d already active", e.Index())
	}
	l.entities = append(l.entities, e)
	return nil
}

// Remove drops a handle, keeping the order of the rest. Returns false if absent.
func (l *EntityList) Remove(e Entity) bool {
	for i, cur := range l.entities {
		if cur == e {
			l.entities = append(l.entities[:i], l.entities[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the handle is active
func (l *EntityList) Contains(e Entity) bool {
	for _, cur := range l.entities {
		if cur == e {
			return true
		}
	}
	return false
}

// Entities returns the active handles in insertion order.
// The slice is shared; callers must not modify it.
func (l *EntityList) Entities() []Entity {
	return l.entities
}

// Len returns the number of active entities
func (l *EntityList) Len() int {
	return len(l.entities)
}
