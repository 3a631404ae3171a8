package systems

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewTextureRejectsBadShape(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"empty", 0, 0},
		{"not a multiple of height", 20, 8},
		{"zero height", 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTexture(image.NewRGBA(image.Rect(0, 0, tt.w, tt.h)))
			if !errors.Is(err, ErrTextureShape) {
				t.Errorf("NewTexture(%dx%d) error = %v, want ErrTextureShape", tt.w, tt.h, err)
			}
		})
	}
}

func TestTextureCells(t *testing.T) {
	tex := solidSheet(t, 4, wallBlue, wallGreen, enemyRed)
	if tex.Size() != 4 || tex.Count() != 3 {
		t.Fatalf("Size/Count = %d/%d, want 4/3", tex.Size(), tex.Count())
	}
	for i, want := range []color.RGBA{wallBlue, wallGreen, enemyRed} {
		if got := tex.Pixel(3, 3, i); got != want {
			t.Errorf("Pixel(3,3,%d) = %v, want %v", i, got, want)
		}
	}
}

func TestTexturePixelOutOfRange(t *testing.T) {
	tex := solidSheet(t, 4, wallBlue)
	cases := [][3]int{{-1, 0, 0}, {4, 0, 0}, {0, 4, 0}, {0, 0, 1}, {0, 0, -1}}
	for _, c := range cases {
		if got := tex.Pixel(c[0], c[1], c[2]); got != missingTexel {
			t.Errorf("Pixel%v = %v, want magenta", c, got)
		}
	}
}

func TestTextureColumnScales(t *testing.T) {
	// top half red, bottom half blue
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			clr := enemyRed
			if y >= 2 {
				clr = wallBlue
			}
			img.SetRGBA(x, y, clr)
		}
	}
	tex, err := NewTexture(img)
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}

	col := tex.Column(16, 0, 1)
	if len(col) != 16 {
		t.Fatalf("Column length = %d, want 16", len(col))
	}
	for j, clr := range col {
		want := enemyRed
		if j >= 8 {
			want = wallBlue
		}
		if clr != want {
			t.Errorf("col[%d] = %v, want %v", j, clr, want)
		}
	}

	if col := tex.Column(0, 0, 1); col != nil {
		t.Errorf("Column(0) = %v, want nil", col)
	}
	if col := tex.Column(2, 0, 1); col[0] != enemyRed || col[1] != wallBlue {
		t.Errorf("Downscaled column = %v", col)
	}
}

func TestLoadTextureMissingFile(t *testing.T) {
	if _, err := LoadTexture("does/not/exist.png"); err == nil {
		t.Error("Expected error for missing texture file")
	}
}

func TestTextureKeepsStraightAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src := color.NRGBA{R: 200, G: 100, B: 50, A: 0x90}
	img.SetNRGBA(1, 1, src)

	tex, err := NewTexture(img)
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}
	want := color.RGBA{R: 200, G: 100, B: 50, A: 0x90}
	if got := tex.Pixel(1, 1, 0); got != want {
		t.Errorf("Pixel(1,1,0) = %v, want %v", got, want)
	}
}
