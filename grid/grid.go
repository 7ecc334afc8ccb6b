/*
Package grid implements the tile grid image codec.

A grid image lays a collection out as a 16 column, row major matrix of
tiles over an opaque black background, with a 2 pixel separator to the
right of and below every cell except past the last column and row. The
image width therefore identifies the tile kind exactly and the height
yields the number of rows.
*/
package grid

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"github.com/bodgit/osdfont/tile"
)

const (
	// Columns is the fixed width of a grid in tiles.
	Columns = 16

	separator = 2
)

// ErrInvalidImageDimensions is returned when an image's dimensions match
// the grid geometry of no tile kind.
var ErrInvalidImageDimensions = errors.New("image dimensions do not match a tile grid of any tile kind")

func imageWidth(kind tile.Kind) int {
	tw, _ := kind.Dimensions()
	return Columns*tw + (Columns-1)*separator
}

func imageHeight(kind tile.Kind, rows int) int {
	_, th := kind.Dimensions()
	return rows*th + (rows-1)*separator
}

// KindForImageDimensions identifies the tile kind and the number of grid
// rows from grid image dimensions.
func KindForImageDimensions(width, height int) (tile.Kind, int, error) {
	for _, k := range tile.Kinds {
		if width != imageWidth(k) {
			continue
		}
		_, th := k.Dimensions()
		if height < th || (height-th)%(th+separator) != 0 {
			break
		}
		return k, (height-th)/(th+separator) + 1, nil
	}
	return 0, 0, ErrInvalidImageDimensions
}

func cellOrigin(kind tile.Kind, col, row int) image.Point {
	tw, th := kind.Dimensions()
	return image.Pt(col*(tw+separator), row*(th+separator))
}

// Rows returns the logical grid height of a collection of n tiles.
func Rows(n int) int {
	return (n + Columns - 1) / Columns
}

// Decode extracts the tiles of a grid image, row major.
func Decode(m image.Image) ([]tile.Tile, error) {
	b := m.Bounds()
	kind, rows, err := KindForImageDimensions(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	tw, th := kind.Dimensions()
	tiles := make([]tile.Tile, 0, rows*Columns)
	for row := 0; row < rows; row++ {
		for col := 0; col < Columns; col++ {
			cell := image.NewNRGBA(image.Rect(0, 0, tw, th))
			draw.Draw(cell, cell.Bounds(), m, b.Min.Add(cellOrigin(kind, col, row)), draw.Src)
			t, err := tile.FromImage(cell)
			if err != nil {
				return nil, err
			}
			tiles = append(tiles, t)
		}
	}

	return tiles, nil
}

// Encode renders a uniform kind collection as a grid image.
func Encode(tiles []tile.Tile) (image.Image, error) {
	kind, err := tile.CollectionKind(tiles)
	if err != nil {
		return nil, err
	}

	rows := Rows(len(tiles))
	m := image.NewNRGBA(image.Rect(0, 0, imageWidth(kind), imageHeight(kind, rows)))
	draw.Draw(m, m.Bounds(), image.NewUniform(color.NRGBA{A: 0xff}), image.Point{}, draw.Src)

	tw, th := kind.Dimensions()
	for i, t := range tiles {
		origin := cellOrigin(kind, i%Columns, i/Columns)
		draw.Draw(m, image.Rectangle{Min: origin, Max: origin.Add(image.Pt(tw, th))}, t.Image(), image.Point{}, draw.Src)
	}

	return m, nil
}

// LoadImage reads a grid image file and extracts its tiles.
func LoadImage(path string) ([]tile.Tile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	return Decode(m)
}

// SaveImage renders a collection as a grid image file.
func SaveImage(tiles []tile.Tile, path string) error {
	m, err := Encode(tiles)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// NormalizedName returns the deterministic grid image file name for a kind
// and an optional identifier: grid[_<ident>][_hd].png.
func NormalizedName(kind tile.Kind, ident string) string {
	var b strings.Builder
	b.WriteString("grid")
	if ident != "" {
		b.WriteString("_" + ident)
	}
	if kind == tile.HD {
		b.WriteString("_hd")
	}
	b.WriteString(".png")
	return b.String()
}
