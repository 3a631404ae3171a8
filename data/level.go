package data

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"ebiten-raycaster/components"
)

// PlayerStart is the initial player pose
type PlayerStart struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	ViewAngle float64 `yaml:"view_angle"` // radians
	FOV       float64 `yaml:"fov"`        // radians
}

// EnemySpawn places one enemy at level start
type EnemySpawn struct {
	X        float64              `yaml:"x"`
	Y        float64              `yaml:"y"`
	Speed    float64              `yaml:"speed"`
	KindName string               `yaml:"kind"`
	Kind     components.EnemyKind `yaml:"-"` // resolved from KindName
}

// Level is the player start and enemy roster for a map
type Level struct {
	Player  PlayerStart  `yaml:"player"`
	Enemies []EnemySpawn `yaml:"enemies"`
}

// DefaultLevel returns the built-in start used when no level file is configured
func DefaultLevel() *Level {
	return &Level{
		Player: PlayerStart{X: 2.0, Y: 7.0, ViewAngle: 1.0, FOV: math.Pi / 3},
		Enemies: []EnemySpawn{
			{X: 4.0, Y: 8.5, Speed: 0.5, Kind: components.EnemyKindC, KindName: "c"},
			{X: 2.5, Y: 9.0, Speed: 0.5, Kind: components.EnemyKindB, KindName: "b"},
			{X: 5.0, Y: 10.0, Speed: 0.5, Kind: components.EnemyKindA, KindName: "a"},
			{X: 5.5, Y: 9.0, Speed: 0.5, Kind: components.EnemyKindA, KindName: "a"},
		},
	}
}

// LoadLevel loads a level from a YAML file
func LoadLevel(path string) (*Level, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	lvl, err := ParseLevel(raw)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// ParseLevel decodes a YAML level and resolves enemy kinds
func ParseLevel(raw []byte) (*Level, error) {
	lvl := DefaultLevel()
	lvl.Enemies = nil
	if err := yaml.Unmarshal(raw, lvl); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if lvl.Player.FOV <= 0 || lvl.Player.FOV >= 2*math.Pi {
		return nil, fmt.Errorf("player fov %v out of range (0, 2pi)", lvl.Player.FOV)
	}
	for i := range lvl.Enemies {
		e := &lvl.Enemies[i]
		kind, err := components.ParseEnemyKind(e.KindName)
		if err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i, err)
		}
		e.Kind = kind
		if e.Speed < 0 {
			return nil, fmt.Errorf("enemy %d: negative speed %v", i, e.Speed)
		}
	}
	return lvl, nil
}
