package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Assets     AssetsConfig     `toml:"assets"`
	Render     RenderConfig     `toml:"render"`
	Simulation SimulationConfig `toml:"simulation"`
	Logging    LoggingConfig    `toml:"logging"`
}

type AssetsConfig struct {
	MapPath          string `toml:"map_path"`
	WallTexturePath  string `toml:"wall_texture_path"`
	EnemyTexturePath string `toml:"enemy_texture_path"`
	LevelPath        string `toml:"level_path"` // optional; built-in level when empty
}

type RenderConfig struct {
	RayStep        float64 `toml:"ray_step"`         // march increment in world units
	MaxRayDistance float64 `toml:"max_ray_distance"` // rays give up past this range
	MaxSpriteSize  int     `toml:"max_sprite_size"`  // pixels
	AlphaThreshold uint8   `toml:"alpha_threshold"`  // sprite texels below this alpha are skipped
	ClearColor     uint32  `toml:"clear_color"`      // 0xRRGGBBAA
	FloorColor     uint32  `toml:"floor_color"`
	ConeColor      uint32  `toml:"cone_color"`
	MarkerColor    uint32  `toml:"marker_color"`
}

type SimulationConfig struct {
	TickRate        time.Duration `toml:"tick_rate"`
	EngagementRange float64       `toml:"engagement_range"` // enemies stop closing in at this distance
	MoveSpeed       float64       `toml:"move_speed"`       // input scale, units/second
	TurnSpeed       float64       `toml:"turn_speed"`       // input scale, radians/second
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Render.RayStep <= 0 {
		return fmt.Errorf("render.ray_step must be positive, got %v", c.Render.RayStep)
	}
	if c.Render.MaxRayDistance <= 0 {
		return fmt.Errorf("render.max_ray_distance must be positive, got %v", c.Render.MaxRayDistance)
	}
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("simulation.tick_rate must be positive, got %v", c.Simulation.TickRate)
	}
	return nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			MapPath:          "assets/map.txt",
			WallTexturePath:  "assets/walls.png",
			EnemyTexturePath: "assets/enemies.png",
		},
		Render: RenderConfig{
			RayStep:        0.01,
			MaxRayDistance: 20,
			MaxSpriteSize:  1000,
			AlphaThreshold: 0x80,
			ClearColor:     0xBBBBBBFF,
			FloorColor:     0xBBBBBBFF,
			ConeColor:      0x5555DDFF,
			MarkerColor:    0xFF0000FF,
		},
		Simulation: SimulationConfig{
			TickRate:        16 * time.Millisecond,
			EngagementRange: 1.0,
			MoveSpeed:       1.0,
			TurnSpeed:       math.Pi / 2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
