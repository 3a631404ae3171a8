package components

import "fmt"

// MovementComponent stores an entity's world position and chase speed
type MovementComponent struct {
	X, Y  float64
	Speed float64 // world units per second
}

// EnemyKind selects which region of the enemy texture sheet an entity uses
type EnemyKind int

// Enemy kinds, in texture sheet order
const (
	EnemyKindA EnemyKind = iota
	EnemyKindB
	EnemyKindC
)

var enemyKindNames = map[EnemyKind]string{
	EnemyKindA: "a",
	EnemyKindB: "b",
	EnemyKindC: "c",
}

// String returns the level-file name of the kind
func (k EnemyKind) String() string {
	if name, ok := enemyKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EnemyKind(%d)", int(k))
}

// TextureIndex returns the sprite index in the enemy texture sheet
func (k EnemyKind) TextureIndex() int {
	return int(k)
}

// ParseEnemyKind converts a level-file name into an EnemyKind
func ParseEnemyKind(name string) (EnemyKind, error) {
	for kind, n := range enemyKindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy kind %q", name)
}

// EnemyKindComponent tags an entity with its enemy kind
type EnemyKindComponent struct {
	Kind EnemyKind
}

// DistanceComponent caches the entity's distance to the player.
// Refreshed every tick; read by the renderer for depth sorting and sprite scale.
type DistanceComponent struct {
	Distance float64
}
