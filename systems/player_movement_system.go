package systems

import (
	"math"

	"ebiten-raycaster/components"
)

// WallMargin is how far the player is pushed back from a wall hit while moving
// in the positive direction. Moving negative snaps to the exact tile edge.
const WallMargin = 0.05

// PlayerMovementSystem applies the player's movement intent with wall correction
type PlayerMovementSystem struct {
	tiles  *components.TileMap
	player *components.PlayerState
}

// NewPlayerMovementSystem creates the system for one player
func NewPlayerMovementSystem(tiles *components.TileMap, player *components.PlayerState) *PlayerMovementSystem {
	return &PlayerMovementSystem{tiles: tiles, player: player}
}

// Update moves the player along forward/right and pushes it out of walls one
// axis at a time. Diagonal moves into a concave corner can still clip.
func (s *PlayerMovementSystem) Update(dt float64) {
	p := s.player
	old := p.Position

	move := p.Forward().Scale(p.MoveDir.Y * dt).Add(p.Right().Scale(p.MoveDir.X * dt))
	p.Position = p.Position.Add(move)

	if !s.tiles.IsFloor(tileCoord(p.Position.X), tileCoord(old.Y)) {
		p.Position.X = wallEdge(p.Position.X, move.X)
	}
	if !s.tiles.IsFloor(tileCoord(old.X), tileCoord(p.Position.Y)) {
		p.Position.Y = wallEdge(p.Position.Y, move.Y)
	}
}

func wallEdge(pos, delta float64) float64 {
	edge := math.Floor(pos)
	if delta < 0 {
		return edge + 1
	}
	return edge - WallMargin
}

func tileCoord(v float64) int {
	return int(math.Floor(v))
}
