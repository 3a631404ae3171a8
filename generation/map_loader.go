package generation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"ebiten-raycaster/components"
)

var (
	// ErrBadHeader is returned when the width/height lines are not positive integers
	ErrBadHeader = errors.New("bad map header")
	// ErrShortMap is returned when the grid holds fewer tiles than width*height
	ErrShortMap = errors.New("map grid too short")
)

// tileSymbols maps map-file characters to tile kinds
var tileSymbols = map[rune]components.TileKind{
	'_': components.TileFloor,
	'#': components.TileWall1,
	'$': components.TileWall2,
	'%': components.TileWall3,
}

// LoadTileMap reads a map file from disk
func LoadTileMap(path string, log *zap.Logger) (*components.TileMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map %s: %w", path, err)
	}
	defer f.Close()

	m, err := ParseTileMap(f, log)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}
	return m, nil
}

// ParseTileMap reads the width line, the height line, then the character grid.
// Unknown characters become floor and are logged; newlines are skipped.
func ParseTileMap(r io.Reader, log *zap.Logger) (*components.TileMap, error) {
	br := bufio.NewReader(r)

	width, err := readDimension(br, "width")
	if err != nil {
		return nil, err
	}
	height, err := readDimension(br, "height")
	if err != nil {
		return nil, err
	}

	want := width * height
	tiles := make([]components.TileKind, 0, want)
	row, col := 0, 0
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read map grid: %w", err)
		}

		switch ch {
		case '\r':
			continue
		case '\n':
			if col != 0 && col != width {
				log.Warn("map row length mismatch",
					zap.Int("row", row), zap.Int("got", col), zap.Int("want", width))
			}
			row++
			col = 0
			continue
		}

		kind, ok := tileSymbols[ch]
		if !ok {
			log.Warn("unrecognised tile",
				zap.String("symbol", string(ch)), zap.Int("row", row), zap.Int("col", col))
			kind = components.TileFloor
		}
		tiles = append(tiles, kind)
		col++
	}

	if len(tiles) < want {
		return nil, fmt.Errorf("%w: %dx%d needs %d tiles, got %d", ErrShortMap, width, height, want, len(tiles))
	}
	if len(tiles) > want {
		log.Warn("map grid has trailing tiles", zap.Int("extra", len(tiles)-want))
		tiles = tiles[:want]
	}

	return components.NewTileMap(width, height, tiles)
}

func readDimension(br *bufio.Reader, name string) (int, error) {
	line, err := br.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return 0, fmt.Errorf("%w: missing %s line", ErrBadHeader, name)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrBadHeader, name, strings.TrimSpace(line))
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", ErrBadHeader, name, n)
	}
	return n, nil
}
