package config

// Screen layout configuration
const (
	// Framebuffer dimensions in pixels
	FramebufferWidth  = 1024
	FramebufferHeight = 512

	// The left half holds the minimap, the right half the 3D view
	ViewWidth = FramebufferWidth / 2

	// Bytes per pixel in the RGBA framebuffer
	BytesPerPixel    = 4
	FramebufferBytes = FramebufferWidth * FramebufferHeight * BytesPerPixel
)

// GetScreenDimensions returns the framebuffer dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return FramebufferWidth, FramebufferHeight
}
