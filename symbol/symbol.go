/*
Package symbol implements glyphs spanning one or more consecutive tiles.

A symbol is a non-empty ordered run of same kind tiles. A symbol with a
span of one is a bare tile. Symbols are stored on disk as a single image
holding the tiles side by side, so the image height identifies the tile
kind and the width must be a multiple of the tile width.
*/
package symbol

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/bodgit/osdfont/tile"
)

// Symbol is a glyph occupying span consecutive tile slots.
type Symbol struct {
	kind  tile.Kind
	tiles []tile.Tile
}

// New returns a blank symbol of the given kind spanning a single tile.
func New(kind tile.Kind) Symbol {
	return Symbol{kind: kind, tiles: []tile.Tile{tile.New(kind)}}
}

// FromTile wraps a single tile as a span one symbol.
func FromTile(t tile.Tile) Symbol {
	return Symbol{kind: t.Kind(), tiles: []tile.Tile{t}}
}

// FromTiles builds a symbol from a run of tiles which must all share one
// kind.
func FromTiles(tiles []tile.Tile) (Symbol, error) {
	kind, err := tile.CollectionKind(tiles)
	if err != nil {
		return Symbol{}, err
	}
	run := make([]tile.Tile, len(tiles))
	copy(run, tiles)
	return Symbol{kind: kind, tiles: run}, nil
}

// Kind returns the tile kind of the symbol.
func (s Symbol) Kind() tile.Kind {
	return s.kind
}

// Span returns the number of tile slots the symbol occupies.
func (s Symbol) Span() int {
	return len(s.tiles)
}

// Tiles returns the tiles making up the symbol, in order.
func (s Symbol) Tiles() []tile.Tile {
	return s.tiles
}

// Image renders the symbol as a single image with its tiles side by side.
func (s Symbol) Image() image.Image {
	tw, th := s.kind.Dimensions()
	m := image.NewNRGBA(image.Rect(0, 0, s.Span()*tw, th))
	for i, t := range s.tiles {
		r := image.Rect(i*tw, 0, (i+1)*tw, th)
		draw.Draw(m, r, t.Image(), image.Point{}, draw.Src)
	}
	return m
}

// InvalidWidthError is returned when a symbol image width is not a
// multiple of the tile width for its kind.
type InvalidWidthError struct {
	Kind  tile.Kind
	Width int
}

func (e InvalidWidthError) Error() string {
	return fmt.Sprintf("invalid symbol image width for %s tile kind: %d", e.Kind, e.Width)
}

// LoadFile reads a symbol image file. The tile kind is identified by the
// image height and the span by the image width. A missing file is reported
// with an error satisfying errors.Is(err, fs.ErrNotExist).
func LoadFile(path string) (Symbol, error) {
	f, err := os.Open(path)
	if err != nil {
		return Symbol{}, err
	}
	defer f.Close()

	m, err := png.Decode(f)
	if err != nil {
		return Symbol{}, fmt.Errorf("%s: %w", path, err)
	}

	b := m.Bounds()
	kind, err := tile.KindForHeight(b.Dy())
	if err != nil {
		return Symbol{}, err
	}
	tw, th := kind.Dimensions()
	if b.Dx()%tw != 0 {
		return Symbol{}, InvalidWidthError{Kind: kind, Width: b.Dx()}
	}

	span := b.Dx() / tw
	tiles := make([]tile.Tile, 0, span)
	for i := 0; i < span; i++ {
		view := image.NewNRGBA(image.Rect(0, 0, tw, th))
		draw.Draw(view, view.Bounds(), m, b.Min.Add(image.Pt(i*tw, 0)), draw.Src)
		t, err := tile.FromImage(view)
		if err != nil {
			return Symbol{}, err
		}
		tiles = append(tiles, t)
	}

	return Symbol{kind: kind, tiles: tiles}, nil
}

// SaveFile writes the symbol to a PNG image file.
func (s Symbol) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, s.Image()); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Flatten destructures symbols back into their constituent tiles.
func Flatten(symbols []Symbol) []tile.Tile {
	var tiles []tile.Tile
	for _, s := range symbols {
		tiles = append(tiles, s.tiles...)
	}
	return tiles
}

// CollectionKind returns the single tile kind shared by every tile of
// every symbol in the collection.
func CollectionKind(symbols []Symbol) (tile.Kind, error) {
	return tile.CollectionKind(Flatten(symbols))
}

// CheckCollectionKind verifies that every symbol in the collection is of
// the requested kind.
func CheckCollectionKind(symbols []Symbol, kind tile.Kind) error {
	loaded, err := CollectionKind(symbols)
	if err != nil {
		return err
	}
	if loaded != kind {
		return tile.WrongKindError{Requested: kind, Loaded: loaded}
	}
	return nil
}
