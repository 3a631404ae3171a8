package spawners

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"ebiten-raycaster/components"
	"ebiten-raycaster/data"
	"ebiten-raycaster/ecs"
	"ebiten-raycaster/systems"
)

func newSpawner(t *testing.T) (*EnemySpawner, *ecs.EntityStore, *ecs.EntityList, *ecs.EventManager) {
	t.Helper()
	store := ecs.NewEntityStore()
	list := ecs.NewEntityList(store)
	events := ecs.NewEventManager()
	return NewEnemySpawner(store, list, events, zaptest.NewLogger(t)), store, list, events
}

func TestCreateEnemy(t *testing.T) {
	s, store, list, events := newSpawner(t)

	var spawned []systems.EnemySpawnedEvent
	events.Subscribe(systems.EventEnemySpawned, func(ev ecs.Event) {
		spawned = append(spawned, ev.(systems.EnemySpawnedEvent))
	})

	e, ok := s.CreateEnemy(4, 8.5, 0.5, components.EnemyKindC)
	if !ok {
		t.Fatal("CreateEnemy failed on an empty pool")
	}
	if !list.Contains(e) {
		t.Error("Enemy not added to the active list")
	}
	mov, _ := store.Movement(e)
	if mov.X != 4 || mov.Y != 8.5 || mov.Speed != 0.5 {
		t.Errorf("Movement = %+v", *mov)
	}
	kind, _ := store.EnemyKind(e)
	if kind.Kind != components.EnemyKindC {
		t.Errorf("Kind = %v, want c", kind.Kind)
	}
	if len(spawned) != 1 || spawned[0].Entity != e {
		t.Errorf("Spawn events = %+v", spawned)
	}
}

func TestCreateEnemyPoolExhausted(t *testing.T) {
	s, store, list, events := newSpawner(t)

	dropped := 0
	events.Subscribe(systems.EventSpawnDropped, func(ecs.Event) { dropped++ })

	for i := 0; i < ecs.MaxEntities; i++ {
		if _, ok := s.CreateEnemy(1, 1, 1, components.EnemyKindA); !ok {
			t.Fatalf("Spawn %d failed before the pool was full", i)
		}
	}
	if _, ok := s.CreateEnemy(1, 1, 1, components.EnemyKindA); ok {
		t.Error("Spawn succeeded past capacity")
	}
	if dropped != 1 {
		t.Errorf("Dropped events = %d, want 1", dropped)
	}
	if list.Len() != ecs.MaxEntities || store.Available() != 0 {
		t.Errorf("Active=%d available=%d after overflow", list.Len(), store.Available())
	}
}

func TestSpawnLevel(t *testing.T) {
	s, _, list, _ := newSpawner(t)
	if n := s.SpawnLevel(data.DefaultLevel()); n != 4 {
		t.Errorf("SpawnLevel placed %d, want 4", n)
	}
	if list.Len() != 4 {
		t.Errorf("Active list length = %d, want 4", list.Len())
	}
}

func TestRemoveEnemy(t *testing.T) {
	s, store, list, events := newSpawner(t)

	var despawned []ecs.Entity
	events.Subscribe(systems.EventEnemyDespawned, func(ev ecs.Event) {
		despawned = append(despawned, ev.(systems.EnemyDespawnedEvent).Entity)
	})

	e, _ := s.CreateEnemy(2, 2, 1, components.EnemyKindB)
	if err := s.RemoveEnemy(e); err != nil {
		t.Fatalf("RemoveEnemy: %v", err)
	}
	if list.Contains(e) || store.Alive(e) {
		t.Error("Removed enemy still active")
	}
	if len(despawned) != 1 || despawned[0] != e {
		t.Errorf("Despawn events = %v", despawned)
	}

	if err := s.RemoveEnemy(e); !errors.Is(err, ecs.ErrStaleEntity) {
		t.Errorf("Second RemoveEnemy error = %v, want ErrStaleEntity", err)
	}
}
