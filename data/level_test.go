package data

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"ebiten-raycaster/components"
)

func TestParseLevel(t *testing.T) {
	raw := []byte(`
player:
  x: 3.5
  y: 4.5
  view_angle: 0.25
  fov: 1.2
enemies:
  - {x: 6.0, y: 2.0, speed: 0.75, kind: b}
  - {x: 1.5, y: 1.5, speed: 0.0, kind: c}
`)
	lvl, err := ParseLevel(raw)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	if lvl.Player.X != 3.5 || lvl.Player.Y != 4.5 || lvl.Player.ViewAngle != 0.25 || lvl.Player.FOV != 1.2 {
		t.Errorf("Unexpected player start %+v", lvl.Player)
	}
	if len(lvl.Enemies) != 2 {
		t.Fatalf("Expected 2 enemies, got %d", len(lvl.Enemies))
	}
	if lvl.Enemies[0].Kind != components.EnemyKindB || lvl.Enemies[1].Kind != components.EnemyKindC {
		t.Errorf("Kinds not resolved: %+v", lvl.Enemies)
	}
	if lvl.Enemies[0].Speed != 0.75 {
		t.Errorf("Speed = %v, want 0.75", lvl.Enemies[0].Speed)
	}
}

func TestParseLevelKeepsDefaultPlayer(t *testing.T) {
	lvl, err := ParseLevel([]byte("enemies: []\n"))
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	if math.Abs(lvl.Player.FOV-math.Pi/3) > 1e-12 {
		t.Errorf("FOV = %v, want default pi/3", lvl.Player.FOV)
	}
	if len(lvl.Enemies) != 0 {
		t.Errorf("Expected no enemies, got %d", len(lvl.Enemies))
	}
}

func TestParseLevelErrors(t *testing.T) {
	tests := map[string]string{
		"unknown kind":   "enemies:\n  - {x: 1, y: 1, speed: 1, kind: q}\n",
		"negative speed": "enemies:\n  - {x: 1, y: 1, speed: -1, kind: a}\n",
		"bad fov":        "player: {x: 1, y: 1, view_angle: 0, fov: 0}\n",
		"bad yaml":       "player: [\n",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseLevel([]byte(raw)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestDefaultLevelRoster(t *testing.T) {
	lvl := DefaultLevel()
	if len(lvl.Enemies) != 4 {
		t.Fatalf("Expected 4 default enemies, got %d", len(lvl.Enemies))
	}
	for i, e := range lvl.Enemies {
		kind, err := components.ParseEnemyKind(e.KindName)
		if err != nil || kind != e.Kind {
			t.Errorf("Enemy %d kind name %q does not match kind %v", i, e.KindName, e.Kind)
		}
	}
}

func TestLoadLevelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	if err := os.WriteFile(path, []byte("player: {x: 2, y: 2, view_angle: 0, fov: 1}\n"), 0o644); err != nil {
		t.Fatalf("write level: %v", err)
	}
	lvl, err := LoadLevel(path)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if lvl.Player.X != 2 || lvl.Player.FOV != 1 {
		t.Errorf("Unexpected player %+v", lvl.Player)
	}
}
