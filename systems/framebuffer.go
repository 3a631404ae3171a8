package systems

import (
	"image"
	"image/color"
	"sync"
)

// FrameBuffer is the RGBA render target shared with the presentation layer.
// Drawing and copy-out each hold the lock for their whole duration, so readers
// never observe a partially drawn frame.
type FrameBuffer struct {
	mu  sync.Mutex
	img *image.RGBA
}

// NewFrameBuffer allocates a width x height buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the buffer width in pixels
func (fb *FrameBuffer) Width() int { return fb.img.Rect.Dx() }

// Height returns the buffer height in pixels
func (fb *FrameBuffer) Height() int { return fb.img.Rect.Dy() }

// Paint runs draw with exclusive access to the canvas
func (fb *FrameBuffer) Paint(draw func(c *Canvas)) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	draw(&Canvas{img: fb.img})
}

// CopyTo copies the frame into dst in R,G,B,A order, row-major from the top-left.
// Returns the number of bytes copied.
func (fb *FrameBuffer) CopyTo(dst []byte) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return copy(dst, fb.img.Pix)
}

// Canvas is the drawing surface handed out by Paint
type Canvas struct {
	img *image.RGBA
}

// Width returns the canvas width
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// SetPixel writes one pixel; out-of-bounds writes are dropped
func (c *Canvas) SetPixel(x, y int, clr color.RGBA) {
	c.img.SetRGBA(x, y, clr)
}

// Pixel reads one pixel
func (c *Canvas) Pixel(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Fill clears the whole canvas
func (c *Canvas) Fill(clr color.RGBA) {
	c.DrawRect(0, 0, c.Width(), c.Height(), clr)
}

// DrawRect fills a rectangle clipped to the canvas
func (c *Canvas) DrawRect(x, y, w, h int, clr color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Rect)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			c.img.SetRGBA(px, py, clr)
		}
	}
}

// HexColor converts 0xRRGGBBAA into a color
func HexColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 24),
		G: uint8(hex >> 16),
		B: uint8(hex >> 8),
		A: uint8(hex),
	}
}
