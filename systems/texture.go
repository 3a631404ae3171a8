package systems

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
)

// ErrTextureShape is returned for sheets that are not a row of square cells
var ErrTextureShape = errors.New("texture sheet is not a row of square cells")

// missingTexel marks lookups outside the sheet
var missingTexel = color.RGBA{255, 0, 255, 255}

// TextureSource is the pixel-addressable texture contract the renderer consumes.
// A sheet holds several square cells of equal side, selected by index.
type TextureSource interface {
	// Size returns the side length of one square cell
	Size() int
	// Pixel samples cell index at (x, y)
	Pixel(x, y, index int) color.RGBA
	// Column returns height pixels sampled down column texX of a cell
	Column(height, index, texX int) []color.RGBA
}

// Texture is a decoded sheet of square cells laid out left to right
type Texture struct {
	size  int
	count int
	pix   []color.RGBA // count cells, each size*size, row-major per cell
}

// LoadTexture decodes an image file into a texture sheet
func LoadTexture(filename string) (*Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", filename, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", filename, err)
	}

	tex, err := NewTexture(img)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", filename, err)
	}
	return tex, nil
}

// NewTexture slices an image into square cells whose side is the image height
func NewTexture(img image.Image) (*Texture, error) {
	bounds := img.Bounds()
	size := bounds.Dy()
	if size == 0 || bounds.Dx() == 0 || bounds.Dx()%size != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTextureShape, bounds.Dx(), bounds.Dy())
	}

	count := bounds.Dx() / size
	t := &Texture{
		size:  size,
		count: count,
		pix:   make([]color.RGBA, count*size*size),
	}
	for cell := 0; cell < count; cell++ {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				c := color.NRGBAModel.Convert(img.At(bounds.Min.X+cell*size+x, bounds.Min.Y+y)).(color.NRGBA)
				// straight alpha; texels are copied, never blended
				t.pix[t.offset(x, y, cell)] = color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
			}
		}
	}
	return t, nil
}

func (t *Texture) offset(x, y, index int) int {
	return index*t.size*t.size + y*t.size + x
}

// Size returns the side length of one cell
func (t *Texture) Size() int { return t.size }

// Count returns the number of cells in the sheet
func (t *Texture) Count() int { return t.count }

// Pixel samples a cell. Out-of-range lookups return magenta.
func (t *Texture) Pixel(x, y, index int) color.RGBA {
	if x < 0 || x >= t.size || y < 0 || y >= t.size || index < 0 || index >= t.count {
		return missingTexel
	}
	return t.pix[t.offset(x, y, index)]
}

// Column scales column texX of a cell to height pixels
func (t *Texture) Column(height, index, texX int) []color.RGBA {
	if height <= 0 {
		return nil
	}
	col := make([]color.RGBA, height)
	for j := range col {
		col[j] = t.Pixel(texX, j*t.size/height, index)
	}
	return col
}
