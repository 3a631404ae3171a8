package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"ebiten-raycaster/config"
	"ebiten-raycaster/engine"
	"ebiten-raycaster/vmath"
)

// overlayMessages is how many lifecycle messages the HUD shows
const overlayMessages = 4

// Game implements ebiten.Game interface.
// ebiten's loop only polls input and presents frames; the simulation runs on
// its own fixed-step goroutine.
type Game struct {
	engine *engine.Engine
	sim    config.SimulationConfig
	pixels []byte
	log    *zap.Logger
}

// NewGame creates a new game around an engine and draws the first frame
func NewGame(eng *engine.Engine, sim config.SimulationConfig, log *zap.Logger) *Game {
	eng.Render()
	return &Game{
		engine: eng,
		sim:    sim,
		pixels: make([]byte, config.FramebufferBytes),
		log:    log,
	}
}

// runSimulation ticks and renders the engine at the configured rate until ctx ends
func (g *Game) runSimulation(ctx context.Context) error {
	ticker := time.NewTicker(g.sim.TickRate)
	defer ticker.Stop()

	dt := g.sim.TickRate.Seconds()
	g.log.Info("simulation started", zap.Duration("tick_rate", g.sim.TickRate))
	for {
		select {
		case <-ctx.Done():
			g.log.Info("simulation stopped")
			return nil
		case <-ticker.C:
			g.engine.Update(dt)
			g.engine.Render()
		}
	}
}

// Update polls the keyboard and forwards intent to the engine.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var forward, strafe float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		forward--
	}
	// view angles grow toward the right edge of the view, so the player's
	// right vector shows up on the left of the screen
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe--
	}
	g.engine.SetMoveDirection(vmath.NewVec2(strafe, forward).Scale(g.sim.MoveSpeed))

	turn := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		turn--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		turn++
	}
	if turn != 0 {
		g.engine.SetViewDelta(turn * g.sim.TurnSpeed / float64(ebiten.TPS()))
	}
	return nil
}

// Draw presents the last complete frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.engine.CopyFramebuffer(g.pixels)
	screen.WritePixels(g.pixels)

	// Print FPS for debugging
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))

	height := config.FramebufferHeight
	for i, msg := range g.engine.RecentMessages(overlayMessages) {
		ebitenutil.DebugPrintAt(screen, msg, 4, height-16*(i+1))
	}
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
