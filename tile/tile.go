/*
Package tile implements the OSD font tile model.

A tile is a fixed size RGBA glyph cell. Two resolution classes exist; SD
tiles are 36 by 54 pixels and HD tiles are 24 by 36 pixels. The class of a
tile is never declared anywhere, it is always inferred from a byte size or
pixel dimensions matching exactly one of the two geometries.
*/
package tile

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// Kind is the resolution class of a tile.
type Kind int

const (
	SD Kind = iota
	HD
)

// Kinds lists every known tile kind.
var Kinds = []Kind{SD, HD}

const (
	sdWidth  = 36
	sdHeight = 54
	hdWidth  = 24
	hdHeight = 36
)

func (k Kind) String() string {
	switch k {
	case SD:
		return "SD"
	case HD:
		return "HD"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Dimensions returns the pixel width and height of tiles of this kind.
func (k Kind) Dimensions() (width, height int) {
	switch k {
	case HD:
		return hdWidth, hdHeight
	default:
		return sdWidth, sdHeight
	}
}

// RawSize returns the size in bytes of one raw RGBA tile of this kind.
func (k Kind) RawSize() int {
	w, h := k.Dimensions()
	return w * h * 4
}

// SetDirName returns the subdirectory name used for this kind inside a
// collection set directory.
func (k Kind) SetDirName() string {
	return k.String()
}

// InvalidSizeError is returned when a byte count matches no tile kind.
type InvalidSizeError struct {
	Size int64
}

func (e InvalidSizeError) Error() string {
	return fmt.Sprintf("number of RGBA bytes does not match any tile kind: %dB", e.Size)
}

// InvalidDimensionsError is returned when pixel dimensions match no tile
// kind.
type InvalidDimensionsError struct {
	Width, Height int
}

func (e InvalidDimensionsError) Error() string {
	return fmt.Sprintf("dimensions do not match any known tile kind: %dx%d", e.Width, e.Height)
}

// InvalidHeightError is returned when a pixel height matches no tile kind.
type InvalidHeightError struct {
	Height int
}

func (e InvalidHeightError) Error() string {
	return fmt.Sprintf("height does not match any tile kind: %d", e.Height)
}

// KindForSize returns the kind whose raw RGBA tile size matches size.
func KindForSize(size int64) (Kind, error) {
	for _, k := range Kinds {
		if size == int64(k.RawSize()) {
			return k, nil
		}
	}
	return 0, InvalidSizeError{Size: size}
}

// KindForDimensions returns the kind whose tile dimensions match exactly.
func KindForDimensions(width, height int) (Kind, error) {
	for _, k := range Kinds {
		if w, h := k.Dimensions(); width == w && height == h {
			return k, nil
		}
	}
	return 0, InvalidDimensionsError{Width: width, Height: height}
}

// KindForHeight returns the kind whose tile height matches height.
func KindForHeight(height int) (Kind, error) {
	for _, k := range Kinds {
		if _, h := k.Dimensions(); height == h {
			return k, nil
		}
	}
	return 0, InvalidHeightError{Height: height}
}

// Tile is one glyph cell; a raw RGBA pixel buffer of exactly its kind's
// dimensions. Tiles are immutable value types, the pixel buffer is never
// modified after construction.
type Tile struct {
	kind Kind
	pix  []byte
}

// New returns a blank, fully transparent tile of the given kind.
func New(kind Kind) Tile {
	return Tile{kind: kind, pix: make([]byte, kind.RawSize())}
}

// FromBytes builds a tile from raw RGBA bytes, inferring the kind from the
// buffer length.
func FromBytes(b []byte) (Tile, error) {
	kind, err := KindForSize(int64(len(b)))
	if err != nil {
		return Tile{}, err
	}
	pix := make([]byte, len(b))
	copy(pix, b)
	return Tile{kind: kind, pix: pix}, nil
}

// FromImage builds a tile from an image, inferring the kind from the image
// dimensions.
func FromImage(m image.Image) (Tile, error) {
	b := m.Bounds()
	kind, err := KindForDimensions(b.Dx(), b.Dy())
	if err != nil {
		return Tile{}, err
	}
	t := New(kind)
	dst := t.nrgba()
	draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
	return t, nil
}

// LoadFile reads a PNG image file and builds a tile from it. A missing file
// is reported with an error satisfying errors.Is(err, fs.ErrNotExist).
func LoadFile(path string) (Tile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tile{}, err
	}
	defer f.Close()

	m, err := png.Decode(f)
	if err != nil {
		return Tile{}, fmt.Errorf("%s: %w", path, err)
	}

	t, err := FromImage(m)
	if err != nil {
		return Tile{}, fmt.Errorf("invalid tile image in file %s: %w", path, err)
	}
	return t, nil
}

// Kind returns the resolution class of the tile.
func (t Tile) Kind() Kind {
	return t.kind
}

// Raw returns the raw RGBA pixel buffer. Callers must not modify it.
func (t Tile) Raw() []byte {
	return t.pix
}

func (t Tile) nrgba() *image.NRGBA {
	w, h := t.kind.Dimensions()
	return &image.NRGBA{Pix: t.pix, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
}

// Image returns the tile as an image. The returned image shares the tile's
// pixel buffer and must not be modified.
func (t Tile) Image() image.Image {
	return t.nrgba()
}

// SaveFile writes the tile to a PNG image file.
func (t Tile) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, t.nrgba()); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
