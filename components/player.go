package components

import (
	"math"

	"ebiten-raycaster/vmath"
)

// PlayerState holds the viewer pose and the input-driven movement intent.
// MoveDir.X is strafe (positive = right), MoveDir.Y is forward.
type PlayerState struct {
	Position  vmath.Vec2
	MoveDir   vmath.Vec2
	ViewAngle float64 // radians
	FOV       float64 // radians
}

// Forward returns the unit vector the player is facing
func (p *PlayerState) Forward() vmath.Vec2 {
	return vmath.FromAngle(p.ViewAngle)
}

// Right returns the unit strafe vector
func (p *PlayerState) Right() vmath.Vec2 {
	return vmath.FromAngle(p.ViewAngle - math.Pi/2)
}
