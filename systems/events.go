package systems

import (
	"ebiten-raycaster/components"
	"ebiten-raycaster/ecs"
)

// Event type constants
const (
	EventEnemySpawned   ecs.EventType = "enemy_spawned"
	EventEnemyDespawned ecs.EventType = "enemy_despawned"
	EventSpawnDropped   ecs.EventType = "spawn_dropped"
)

// EnemySpawnedEvent is emitted after an enemy is registered and activated
type EnemySpawnedEvent struct {
	Entity ecs.Entity
	X, Y   float64
	Kind   components.EnemyKind
}

// Type returns the event type
func (e EnemySpawnedEvent) Type() ecs.EventType {
	return EventEnemySpawned
}

// EnemyDespawnedEvent is emitted after an enemy is deactivated and its handle released
type EnemyDespawnedEvent struct {
	Entity ecs.Entity
}

// Type returns the event type
func (e EnemyDespawnedEvent) Type() ecs.EventType {
	return EventEnemyDespawned
}

// SpawnDroppedEvent is emitted when a spawn request finds the entity pool exhausted
type SpawnDroppedEvent struct {
	X, Y float64
	Kind components.EnemyKind
}

// Type returns the event type
func (e SpawnDroppedEvent) Type() ecs.EventType {
	return EventSpawnDropped
}
