package systems

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"ebiten-raycaster/components"
	"ebiten-raycaster/config"
	"ebiten-raycaster/ecs"
	"ebiten-raycaster/vmath"
)

var (
	wallBlue  = color.RGBA{0, 0, 200, 255}
	wallGreen = color.RGBA{0, 200, 0, 255}
	enemyRed  = color.RGBA{220, 0, 0, 255}
)

// buildMap turns rows of '#' and '_' into a tile map
func buildMap(t *testing.T, rows ...string) *components.TileMap {
	t.Helper()
	var tiles []components.TileKind
	for _, row := range rows {
		for _, ch := range row {
			if ch == '#' {
				tiles = append(tiles, components.TileWall1)
			} else {
				tiles = append(tiles, components.TileFloor)
			}
		}
	}
	m, err := components.NewTileMap(len(rows[0]), len(rows), tiles)
	if err != nil {
		t.Fatalf("NewTileMap: %v", err)
	}
	return m
}

// solidSheet builds a texture sheet with one flat-colored cell per color
func solidSheet(t *testing.T, size int, colors ...color.RGBA) *Texture {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size*len(colors), size))
	for cell, clr := range colors {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				img.SetRGBA(cell*size+x, y, clr)
			}
		}
	}
	tex, err := NewTexture(img)
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}
	return tex
}

func newChaseWorld(t *testing.T, player vmath.Vec2, rows ...string) (*EnemyMovementSystem, *ecs.EntityStore, *ecs.EntityList, *components.PlayerState) {
	t.Helper()
	tiles := buildMap(t, rows...)
	ps := &components.PlayerState{Position: player, FOV: math.Pi / 3}
	store := ecs.NewEntityStore()
	list := ecs.NewEntityList(store)
	sys := NewEnemyMovementSystem(tiles, ps, store, list, config.Default().Simulation.EngagementRange)
	return sys, store, list, ps
}

func spawn(t *testing.T, store *ecs.EntityStore, list *ecs.EntityList, x, y, speed float64) ecs.Entity {
	t.Helper()
	e, ok := store.RegisterEntity()
	if !ok {
		t.Fatal("pool exhausted")
	}
	mov, _ := store.Movement(e)
	*mov = components.MovementComponent{X: x, Y: y, Speed: speed}
	if err := list.Add(e); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return e
}

func corridor(width int, walls ...int) []string {
	row := []byte(strings.Repeat("_", width))
	row[0], row[width-1] = '#', '#'
	for _, x := range walls {
		row[x] = '#'
	}
	edge := strings.Repeat("#", width)
	return []string{edge, string(row), edge}
}
