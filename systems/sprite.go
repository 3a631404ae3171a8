package systems

import (
	"sort"

	"ebiten-raycaster/components"
)

// Sprite is the render-time snapshot of one enemy
type Sprite struct {
	X, Y     float64
	Distance float64
	Kind     components.EnemyKind
}

// SortSprites orders sprites farthest first so nearer ones overdraw them.
// Equal distances keep their input order.
func SortSprites(sprites []Sprite) {
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].Distance > sprites[j].Distance
	})
}
