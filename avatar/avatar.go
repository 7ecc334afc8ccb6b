/*
Package avatar implements the Avatar OSD font image format.

An avatar file is a single image holding exactly 256 tiles stacked in one
column with no separators, so the image width equals the tile width and
the height is 256 tile heights.
*/
package avatar

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/bodgit/osdfont/tile"
)

// TileCount is the number of tiles in an avatar image.
const TileCount = 256

// ErrInvalidImageDimensions is returned when an image's dimensions match
// the avatar geometry of no tile kind.
var ErrInvalidImageDimensions = fmt.Errorf("image dimensions do not match an avatar image of any tile kind")

// WrongCollectionSizeError is returned when encoding a collection with
// fewer than 256 tiles.
type WrongCollectionSizeError struct {
	Size int
}

func (e WrongCollectionSizeError) Error() string {
	return fmt.Sprintf("wrong collection size, an avatar file needs at least %d tiles: %d", TileCount, e.Size)
}

// KindForImageDimensions identifies the tile kind from avatar image
// dimensions.
func KindForImageDimensions(width, height int) (tile.Kind, error) {
	for _, k := range tile.Kinds {
		if w, h := k.Dimensions(); width == w && height == TileCount*h {
			return k, nil
		}
	}
	return 0, ErrInvalidImageDimensions
}

// Decode extracts the 256 tiles of an avatar image.
func Decode(m image.Image) ([]tile.Tile, error) {
	b := m.Bounds()
	kind, err := KindForImageDimensions(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	tw, th := kind.Dimensions()
	tiles := make([]tile.Tile, 0, TileCount)
	for i := 0; i < TileCount; i++ {
		cell := image.NewNRGBA(image.Rect(0, 0, tw, th))
		draw.Draw(cell, cell.Bounds(), m, b.Min.Add(image.Pt(0, i*th)), draw.Src)
		t, err := tile.FromImage(cell)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}

	return tiles, nil
}

// Encode renders the first 256 tiles of a uniform kind collection as an
// avatar image. A collection with fewer than 256 tiles is rejected; extra
// tiles beyond 256 are ignored.
func Encode(tiles []tile.Tile) (image.Image, error) {
	if len(tiles) < TileCount {
		return nil, WrongCollectionSizeError{Size: len(tiles)}
	}

	kind, err := tile.CollectionKind(tiles)
	if err != nil {
		return nil, err
	}

	tw, th := kind.Dimensions()
	m := image.NewNRGBA(image.Rect(0, 0, tw, TileCount*th))
	for i, t := range tiles[:TileCount] {
		draw.Draw(m, image.Rect(0, i*th, tw, (i+1)*th), t.Image(), image.Point{}, draw.Src)
	}

	return m, nil
}

// Load reads an avatar image file and extracts its tiles.
func Load(path string) ([]tile.Tile, error) {
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

// Save renders a collection as an avatar image file.
func Save(tiles []tile.Tile, path string) error {
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
