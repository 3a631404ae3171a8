package spawners

import (
	"fmt"

	"go.uber.org/zap"

	"ebiten-raycaster/components"
	"ebiten-raycaster/data"
	"ebiten-raycaster/ecs"
	"ebiten-raycaster/systems"
)

// EnemySpawner manages the creation and removal of enemy entities
type EnemySpawner struct {
	store  *ecs.EntityStore
	active *ecs.EntityList
	events *ecs.EventManager
	log    *zap.Logger
}

// NewEnemySpawner creates a new enemy spawner. events may be nil.
func NewEnemySpawner(store *ecs.EntityStore, active *ecs.EntityList, events *ecs.EventManager, log *zap.Logger) *EnemySpawner {
	return &EnemySpawner{
		store:  store,
		active: active,
		events: events,
		log:    log,
	}
}

// CreateEnemy registers an enemy at the given position and activates it.
// A full pool drops the request and returns false.
func (s *EnemySpawner) CreateEnemy(x, y, speed float64, kind components.EnemyKind) (ecs.Entity, bool) {
	e, ok := s.store.RegisterEntity()
	if !ok {
		s.log.Warn("entity pool exhausted, spawn dropped",
			zap.Float64("x", x), zap.Float64("y", y), zap.Stringer("kind", kind))
		s.emit(systems.SpawnDroppedEvent{X: x, Y: y, Kind: kind})
		return 0, false
	}

	mov, _ := s.store.Movement(e)
	*mov = components.MovementComponent{X: x, Y: y, Speed: speed}
	k, _ := s.store.EnemyKind(e)
	k.Kind = kind

	// a freshly registered handle is always accepted
	_ = s.active.Add(e)

	s.log.Debug("enemy spawned",
		zap.Int("index", e.Index()), zap.Float64("x", x), zap.Float64("y", y), zap.Stringer("kind", kind))
	s.emit(systems.EnemySpawnedEvent{Entity: e, X: x, Y: y, Kind: kind})
	return e, true
}

// SpawnLevel creates every enemy in the level roster and returns how many were placed
func (s *EnemySpawner) SpawnLevel(level *data.Level) int {
	placed := 0
	for _, sp := range level.Enemies {
		if _, ok := s.CreateEnemy(sp.X, sp.Y, sp.Speed, sp.Kind); ok {
			placed++
		}
	}
	return placed
}

// RemoveEnemy deactivates an enemy and returns its handle to the pool
func (s *EnemySpawner) RemoveEnemy(e ecs.Entity) error {
	if !s.store.Alive(e) {
		return fmt.Errorf("remove enemy %d: %w", e.Index(), ecs.ErrStaleEntity)
	}
	s.active.Remove(e)
	if err := s.store.UnregisterEntity(e); err != nil {
		return err
	}

	s.log.Debug("enemy removed", zap.Int("index", e.Index()))
	s.emit(systems.EnemyDespawnedEvent{Entity: e})
	return nil
}

func (s *EnemySpawner) emit(event ecs.Event) {
	if s.events != nil {
		s.events.Emit(event)
	}
}
