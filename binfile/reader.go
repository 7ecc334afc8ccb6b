package binfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/osdfont/tile"
)

// ErrSeekOutOfBounds is returned when a seek resolves outside the tile
// index range of the file.
var ErrSeekOutOfBounds = errors.New("cannot seek outside of the file")

// Reader reads tiles sequentially from a bin file.
type Reader struct {
	f    *os.File
	kind tile.Kind
	pos  int
}

// Open opens a bin file, inferring the tile kind from the file size. The
// reader is positioned at tile index zero.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	kind, err := KindForSize(info.Size())
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Reader{f: f, kind: kind}, nil
}

// Kind returns the tile kind detected from the file size.
func (r *Reader) Kind() tile.Kind {
	return r.kind
}

// Seek moves the reader to a tile index. The offset is interpreted against
// io.SeekStart, io.SeekCurrent or io.SeekEnd, where io.SeekEnd addresses
// the last tile of the file. The resolved index must lie within the file.
func (r *Reader) Seek(offset int, whence int) (int, error) {
	var pos int
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = r.pos + offset
	case io.SeekEnd:
		pos = TileCount - 1 + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if pos < 0 || pos >= TileCount {
		return 0, ErrSeekOutOfBounds
	}

	if _, err := r.f.Seek(int64(pos)*int64(r.kind.RawSize()), io.SeekStart); err != nil {
		return 0, err
	}
	r.pos = pos

	return pos, nil
}

// Rewind moves the reader back to tile index zero.
func (r *Reader) Rewind() error {
	_, err := r.Seek(0, io.SeekStart)
	return err
}

// ReadTile reads the tile at the current position and advances by one.
// After the last tile has been read it returns io.EOF.
func (r *Reader) ReadTile() (tile.Tile, error) {
	if r.pos >= TileCount {
		return tile.Tile{}, io.EOF
	}

	b := make([]byte, r.kind.RawSize())
	if _, err := io.ReadFull(r.f, b); err != nil {
		return tile.Tile{}, err
	}
	r.pos++

	t, err := tile.FromBytes(b)
	if err != nil {
		return tile.Tile{}, err
	}
	return t, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}

// Load reads all 256 tiles from a bin file.
func Load(path string) ([]tile.Tile, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	tiles := make([]tile.Tile, 0, TileCount)
	for {
		t, err := r.ReadTile()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}

	return tiles, nil
}

// ExtensionKindMismatchError is returned when the base and extension files
// of an extended font do not hold the same kind of tiles.
type ExtensionKindMismatchError struct {
	Path       string
	Base, Part tile.Kind
}

func (e ExtensionKindMismatchError) Error() string {
	return fmt.Sprintf("bin file %s holds %s tiles, expected %s to match the base file", e.Path, e.Part, e.Base)
}

// LoadExtended reads an extended 512 tile collection from a base and an
// extension bin file, validating that both halves share one tile kind.
func LoadExtended(basePath, extPath string) ([]tile.Tile, error) {
	base, err := Load(basePath)
	if err != nil {
		return nil, err
	}

	ext, err := Load(extPath)
	if err != nil {
		return nil, err
	}

	if base[0].Kind() != ext[0].Kind() {
		return nil, ExtensionKindMismatchError{Path: extPath, Base: base[0].Kind(), Part: ext[0].Kind()}
	}

	return append(base, ext...), nil
}

// LoadExtendedNorm reads an extended collection of the given kind from a
// directory holding bin files with normalized names.
func LoadExtendedNorm(dir, ident string, kind tile.Kind) ([]tile.Tile, error) {
	tiles, err := LoadExtended(
		filepath.Join(dir, NormalizedName(kind, ident, Base)),
		filepath.Join(dir, NormalizedName(kind, ident, Ext)),
	)
	if err != nil {
		return nil, err
	}
	if err := tile.CheckCollectionKind(tiles, kind); err != nil {
		return nil, err
	}
	return tiles, nil
}
