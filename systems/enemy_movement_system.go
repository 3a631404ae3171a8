package systems

import (
	"ebiten-raycaster/components"
	"ebiten-raycaster/ecs"
	"ebiten-raycaster/vmath"
)

// EnemyMovementSystem steers enemies toward a visible player and refreshes
// their cached distance
type EnemyMovementSystem struct {
	tiles           *components.TileMap
	player          *components.PlayerState
	store           *ecs.EntityStore
	active          *ecs.EntityList
	engagementRange float64
}

// NewEnemyMovementSystem creates the chase system
func NewEnemyMovementSystem(tiles *components.TileMap, player *components.PlayerState,
	store *ecs.EntityStore, active *ecs.EntityList, engagementRange float64) *EnemyMovementSystem {
	return &EnemyMovementSystem{
		tiles:           tiles,
		player:          player,
		store:           store,
		active:          active,
		engagementRange: engagementRange,
	}
}

// Update processes every active enemy in list order
func (s *EnemyMovementSystem) Update(dt float64) {
	target := s.player.Position
	for _, e := range s.active.Entities() {
		mov, ok := s.store.Movement(e)
		if !ok {
			continue
		}
		dist, _ := s.store.Distance(e)

		pos := vmath.NewVec2(mov.X, mov.Y)
		if vmath.Distance(pos, target) > s.engagementRange && HasLineOfSight(s.tiles, pos, target) {
			step := target.Sub(pos).Normalize().Scale(mov.Speed * dt)
			mov.X += step.X
			mov.Y += step.Y
		}

		dist.Distance = vmath.Distance(vmath.NewVec2(mov.X, mov.Y), target)
	}
}

// HasLineOfSight samples one tile per whole unit of x along the segment a-b,
// interpolating y. A vertical segment (same tile column) is always visible.
func HasLineOfSight(tiles *components.TileMap, a, b vmath.Vec2) bool {
	if a.X > b.X {
		a, b = b, a
	}
	x1, y1 := tileCoord(a.X), tileCoord(a.Y)
	x2, y2 := tileCoord(b.X), tileCoord(b.Y)

	dx := x2 - x1
	dy := y2 - y1
	if dx == 0 {
		return true
	}
	for x := x1; x < x2; x++ {
		y := y1 + dy*(x-x1)/dx
		if !tiles.IsFloor(x, y) {
			return false
		}
	}
	return true
}
