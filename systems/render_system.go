package systems

import (
	"image/color"
	"math"

	"ebiten-raycaster/components"
	"ebiten-raycaster/config"
	"ebiten-raycaster/vmath"
)

// markerSize is the side of an enemy marker on the minimap, in pixels
const markerSize = 5

// Scene is everything one frame needs, snapshotted by the caller
type Scene struct {
	Tiles   *components.TileMap
	Player  components.PlayerState
	Sprites []Sprite
}

// RenderSystem draws the minimap, the raycast wall view and the enemy sprites.
// The left half of the framebuffer holds the minimap, the right half the 3D view.
type RenderSystem struct {
	walls   TextureSource
	enemies TextureSource
	cfg     config.RenderConfig

	clearColor  color.RGBA
	floorColor  color.RGBA
	coneColor   color.RGBA
	markerColor color.RGBA

	// nearest wall distance per view column; +Inf where no wall was hit
	depth []float64
}

// NewRenderSystem creates a renderer for the given texture sheets
func NewRenderSystem(walls, enemies TextureSource, cfg config.RenderConfig) *RenderSystem {
	return &RenderSystem{
		walls:       walls,
		enemies:     enemies,
		cfg:         cfg,
		clearColor:  HexColor(cfg.ClearColor),
		floorColor:  HexColor(cfg.FloorColor),
		coneColor:   HexColor(cfg.ConeColor),
		markerColor: HexColor(cfg.MarkerColor),
	}
}

// Render draws a full frame while holding the framebuffer lock
func (s *RenderSystem) Render(fb *FrameBuffer, scene Scene) {
	fb.Paint(func(c *Canvas) {
		c.Fill(s.clearColor)

		cellW := c.Width() / (scene.Tiles.Width() * 2)
		cellH := c.Height() / scene.Tiles.Height()

		s.drawMinimap(c, scene.Tiles, cellW, cellH)
		s.castRays(c, scene, cellW, cellH)

		sprites := make([]Sprite, len(scene.Sprites))
		copy(sprites, scene.Sprites)
		SortSprites(sprites)
		for _, sp := range sprites {
			c.DrawRect(int(sp.X*float64(cellW)), int(sp.Y*float64(cellH)), markerSize, markerSize, s.markerColor)
			s.drawSprite(c, &scene.Player, sp)
		}
	})
}

// DepthBuffer returns a copy of the last frame's per-column wall distances
func (s *RenderSystem) DepthBuffer() []float64 {
	out := make([]float64, len(s.depth))
	copy(out, s.depth)
	return out
}

func (s *RenderSystem) drawMinimap(c *Canvas, tiles *components.TileMap, cellW, cellH int) {
	for y := 0; y < tiles.Height(); y++ {
		for x := 0; x < tiles.Width(); x++ {
			tile, _ := tiles.Tile(x, y)
			clr := s.floorColor
			if tile.IsWall() {
				clr = s.walls.Pixel(0, 0, tile.TextureIndex())
			}
			c.DrawRect(x*cellW, y*cellH, cellW, cellH, clr)
		}
	}
}

// castRays marches one ray per view column. Every sample is plotted on the
// minimap; the first wall tile hit fills the depth buffer and draws a column.
func (s *RenderSystem) castRays(c *Canvas, scene Scene, cellW, cellH int) {
	half := c.Width() / 2
	if len(s.depth) != half {
		s.depth = make([]float64, half)
	}
	for i := range s.depth {
		s.depth[i] = math.Inf(1)
	}

	p := &scene.Player
	for i := 0; i < half; i++ {
		angle := p.ViewAngle - p.FOV/2 + p.FOV*float64(i)/float64(half)
		cos, sin := math.Cos(angle), math.Sin(angle)

		for step := 0; ; step++ {
			d := float64(step) * s.cfg.RayStep
			if d >= s.cfg.MaxRayDistance {
				break
			}
			cx := p.Position.X + d*cos
			cy := p.Position.Y + d*sin

			tile, ok := scene.Tiles.Tile(tileCoord(cx), tileCoord(cy))
			if !ok {
				// left the map without hitting anything
				break
			}
			c.SetPixel(int(cx*float64(cellW)), int(cy*float64(cellH)), s.coneColor)
			if !tile.IsWall() {
				continue
			}

			dist := d * math.Cos(angle-p.ViewAngle)
			if dist < s.cfg.RayStep {
				dist = s.cfg.RayStep
			}
			s.depth[i] = dist
			s.drawWallColumn(c, half+i, dist, cx, cy, tile)
			break
		}
	}
}

func (s *RenderSystem) drawWallColumn(c *Canvas, px int, dist, cx, cy float64, tile components.TileKind) {
	height := c.Height()
	columnHeight := int(float64(height) / dist)
	size := s.walls.Size()

	// offset from the nearest grid line on each axis; the larger one is along the face
	hitX := cx - math.Floor(cx+0.5)
	hitY := cy - math.Floor(cy+0.5)
	texX := int(hitX * float64(size))
	if math.Abs(hitY) > math.Abs(hitX) {
		texX = int(hitY * float64(size))
	}
	if texX < 0 {
		texX += size
	}

	column := s.walls.Column(columnHeight, tile.TextureIndex(), texX)
	top := height/2 - columnHeight/2
	for j, clr := range column {
		y := top + j
		if y < 0 {
			continue
		}
		if y >= height {
			break
		}
		c.SetPixel(px, y, clr)
	}
}

func (s *RenderSystem) drawSprite(c *Canvas, p *components.PlayerState, sp Sprite) {
	half := c.Width() / 2
	height := c.Height()

	size := s.cfg.MaxSpriteSize
	if sp.Distance > 0 {
		if scaled := float64(height) / sp.Distance; scaled < float64(size) {
			size = int(scaled)
		}
	}
	if size <= 0 {
		return
	}

	bearing := math.Atan2(sp.Y-p.Position.Y, sp.X-p.Position.X)
	delta := vmath.WrapAngle(bearing - p.ViewAngle)

	left := int(delta/p.FOV*float64(half)+float64(half)/2) - size/2
	top := height/2 - size/2
	texSize := s.enemies.Size()
	index := sp.Kind.TextureIndex()

	for i := 0; i < size; i++ {
		col := left + i
		if col < 0 || col >= half {
			continue
		}
		if s.depth[col] < sp.Distance {
			continue // wall in front
		}
		for j := 0; j < size; j++ {
			y := top + j
			if y < 0 || y >= height {
				continue
			}
			texel := s.enemies.Pixel(i*texSize/size, j*texSize/size, index)
			if texel.A < s.cfg.AlphaThreshold {
				continue
			}
			c.SetPixel(half+col, y, texel)
		}
	}
}
