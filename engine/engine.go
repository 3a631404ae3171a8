// Package engine ties the map, the entity store and the systems together
// behind the operations the presentation layer drives.
package engine

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"ebiten-raycaster/components"
	"ebiten-raycaster/config"
	"ebiten-raycaster/data"
	"ebiten-raycaster/ecs"
	"ebiten-raycaster/generation"
	"ebiten-raycaster/spawners"
	"ebiten-raycaster/systems"
	"ebiten-raycaster/vmath"
)

// Assets are the decoded resources an engine is built from
type Assets struct {
	Map     *components.TileMap
	Walls   systems.TextureSource
	Enemies systems.TextureSource
	Level   *data.Level // nil selects data.DefaultLevel
}

// Engine owns the simulation state and the framebuffer.
//
// Lock order is moveMu then viewMu. Both are held for a whole simulation tick
// and while entities are registered or released, so input arriving from another
// goroutine lands entirely before or after a tick. The framebuffer has its own
// lock, held for a whole draw and a whole copy-out.
type Engine struct {
	moveMu sync.Mutex // player.MoveDir
	viewMu sync.Mutex // player.ViewAngle

	player components.PlayerState
	tiles  *components.TileMap

	store    *ecs.EntityStore
	active   *ecs.EntityList
	events   *ecs.EventManager
	spawner  *spawners.EnemySpawner
	pipeline []ecs.System

	renderer *systems.RenderSystem
	fb       *systems.FrameBuffer

	messages *systems.MessageLog
	dropped  atomic.Int64
	log      *zap.Logger
}

// messageLogSize bounds the overlay history
const messageLogSize = 32

// New loads the configured map, textures and level from disk and builds an engine
func New(cfg *config.Config, log *zap.Logger) (*Engine, error) {
	tiles, err := generation.LoadTileMap(cfg.Assets.MapPath, log)
	if err != nil {
		return nil, err
	}
	walls, err := systems.LoadTexture(cfg.Assets.WallTexturePath)
	if err != nil {
		return nil, err
	}
	enemies, err := systems.LoadTexture(cfg.Assets.EnemyTexturePath)
	if err != nil {
		return nil, err
	}

	level := data.DefaultLevel()
	if cfg.Assets.LevelPath != "" {
		if level, err = data.LoadLevel(cfg.Assets.LevelPath); err != nil {
			return nil, err
		}
	}

	return NewWithAssets(Assets{Map: tiles, Walls: walls, Enemies: enemies, Level: level}, cfg, log)
}

// NewWithAssets builds an engine from already decoded resources
func NewWithAssets(assets Assets, cfg *config.Config, log *zap.Logger) (*Engine, error) {
	if assets.Map == nil || assets.Walls == nil || assets.Enemies == nil {
		return nil, errors.New("engine needs a map and both texture sheets")
	}
	level := assets.Level
	if level == nil {
		level = data.DefaultLevel()
	}

	e := &Engine{
		player: components.PlayerState{
			Position:  vmath.NewVec2(level.Player.X, level.Player.Y),
			ViewAngle: level.Player.ViewAngle,
			FOV:       level.Player.FOV,
		},
		tiles:    assets.Map,
		store:    ecs.NewEntityStore(),
		events:   ecs.NewEventManager(),
		renderer: systems.NewRenderSystem(assets.Walls, assets.Enemies, cfg.Render),
		fb:       systems.NewFrameBuffer(config.FramebufferWidth, config.FramebufferHeight),
		messages: systems.NewMessageLog(messageLogSize),
		log:      log,
	}
	e.active = ecs.NewEntityList(e.store)
	e.spawner = spawners.NewEnemySpawner(e.store, e.active, e.events, log)
	e.subscribeLifecycle()

	// player first so the chase pass sees this tick's position
	e.pipeline = []ecs.System{
		systems.NewPlayerMovementSystem(e.tiles, &e.player),
		systems.NewEnemyMovementSystem(e.tiles, &e.player, e.store, e.active, cfg.Simulation.EngagementRange),
	}

	if !e.tiles.IsFloorAt(e.player.Position.X, e.player.Position.Y) {
		log.Warn("player starts outside open floor",
			zap.Float64("x", e.player.Position.X), zap.Float64("y", e.player.Position.Y))
	}

	placed := e.spawner.SpawnLevel(level)

	log.Info("engine ready",
		zap.Int("map_width", e.tiles.Width()),
		zap.Int("map_height", e.tiles.Height()),
		zap.Int("wall_texture_size", assets.Walls.Size()),
		zap.Int("enemy_texture_size", assets.Enemies.Size()),
		zap.Int("enemies", placed))
	return e, nil
}

// Update advances the simulation by dt seconds: player movement, then the chase pass
func (e *Engine) Update(dt float64) {
	e.lockSim()
	defer e.unlockSim()

	for _, sys := range e.pipeline {
		sys.Update(dt)
	}
}

// Render draws the current state into the framebuffer
func (e *Engine) Render() {
	e.renderer.Render(e.fb, e.snapshot())
}

// CopyFramebuffer copies the last complete frame into dst as R,G,B,A bytes,
// row-major from the top-left. dst should hold config.FramebufferBytes.
func (e *Engine) CopyFramebuffer(dst []byte) int {
	return e.fb.CopyTo(dst)
}

// SetViewDelta turns the player by delta radians. Non-finite deltas are ignored.
func (e *Engine) SetViewDelta(delta float64) {
	if math.IsInf(delta, 0) || math.IsNaN(delta) {
		return
	}
	e.viewMu.Lock()
	defer e.viewMu.Unlock()
	e.player.ViewAngle = vmath.WrapAngle(e.player.ViewAngle + delta)
}

// SetMoveDirection sets the movement intent: X strafes right, Y moves forward
func (e *Engine) SetMoveDirection(dir vmath.Vec2) {
	e.moveMu.Lock()
	defer e.moveMu.Unlock()
	e.player.MoveDir = dir
}

// Player returns a copy of the player state
func (e *Engine) Player() components.PlayerState {
	e.lockSim()
	defer e.unlockSim()
	return e.player
}

// AddEnemy spawns an enemy. Returns false when the entity pool is full.
func (e *Engine) AddEnemy(x, y, speed float64, kind components.EnemyKind) (ecs.Entity, bool) {
	e.lockSim()
	defer e.unlockSim()
	return e.spawner.CreateEnemy(x, y, speed, kind)
}

// RemoveEnemy despawns an enemy and frees its handle
func (e *Engine) RemoveEnemy(id ecs.Entity) error {
	e.lockSim()
	defer e.unlockSim()
	if err := e.spawner.RemoveEnemy(id); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}

// Sprites returns the active enemies as the renderer would see them now
func (e *Engine) Sprites() []systems.Sprite {
	return e.snapshot().Sprites
}

// DroppedSpawns counts spawn requests refused because the pool was full
func (e *Engine) DroppedSpawns() int64 {
	return e.dropped.Load()
}

// Events exposes the lifecycle event bus. Handlers run on the goroutine that
// spawns or removes the enemy, with the simulation locks held.
func (e *Engine) Events() *ecs.EventManager {
	return e.events
}

// RecentMessages returns up to n lifecycle messages, newest first
func (e *Engine) RecentMessages(n int) []string {
	return e.messages.RecentMessages(n)
}

func (e *Engine) subscribeLifecycle() {
	e.events.Subscribe(systems.EventEnemySpawned, func(ev ecs.Event) {
		spawned := ev.(systems.EnemySpawnedEvent)
		// seed the cached distance so the enemy renders correctly before its first tick
		if dist, ok := e.store.Distance(spawned.Entity); ok {
			dist.Distance = vmath.Distance(vmath.NewVec2(spawned.X, spawned.Y), e.player.Position)
		}
		e.messages.Add(fmt.Sprintf("enemy %s appeared at (%.1f, %.1f)", spawned.Kind, spawned.X, spawned.Y))
	})
	e.events.Subscribe(systems.EventEnemyDespawned, func(ev ecs.Event) {
		e.messages.Add(fmt.Sprintf("enemy #%d removed", ev.(systems.EnemyDespawnedEvent).Entity.Index()))
	})
	e.events.Subscribe(systems.EventSpawnDropped, func(ecs.Event) {
		e.dropped.Add(1)
		e.messages.Add("spawn dropped: entity pool full")
	})
}

// snapshot copies what a frame needs so drawing runs without the simulation locks.
// Sprite distances come from the cached DistanceComponent, which is seeded on
// spawn and refreshed every tick.
func (e *Engine) snapshot() systems.Scene {
	e.lockSim()
	defer e.unlockSim()

	sprites := make([]systems.Sprite, 0, e.active.Len())
	for _, id := range e.active.Entities() {
		mov, ok := e.store.Movement(id)
		if !ok {
			continue
		}
		kind, _ := e.store.EnemyKind(id)
		dist, _ := e.store.Distance(id)
		sprites = append(sprites, systems.Sprite{
			X:        mov.X,
			Y:        mov.Y,
			Distance: dist.Distance,
			Kind:     kind.Kind,
		})
	}
	return systems.Scene{Tiles: e.tiles, Player: e.player, Sprites: sprites}
}

func (e *Engine) lockSim() {
	e.moveMu.Lock()
	e.viewMu.Lock()
}

func (e *Engine) unlockSim() {
	e.viewMu.Unlock()
	e.moveMu.Unlock()
}
