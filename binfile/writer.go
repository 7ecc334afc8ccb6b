package binfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bodgit/osdfont/tile"
)

var (
	// ErrMaximumTilesReached is returned when writing more than 256
	// tiles to one writer.
	ErrMaximumTilesReached = fmt.Errorf("maximum number of tiles reached: a bin file can only contain %d tiles", TileCount)

	// ErrNotEnoughTiles is returned by Finish when fewer than 256 tiles
	// have been written.
	ErrNotEnoughTiles = fmt.Errorf("not enough tiles, a bin file must contain exactly %d tiles", TileCount)

	// ErrNoTilesWritten is returned by FillRemainingSpace when no tile
	// has been written yet, so the tile kind is unknown.
	ErrNoTilesWritten = errors.New("cannot fill bin file, no tile written to establish the tile kind")
)

// KindMismatchError is returned when a tile of a different kind than the
// first written tile is written.
type KindMismatchError struct {
	Written, Writing tile.Kind
}

func (e KindMismatchError) Error() string {
	return fmt.Sprintf("mismatched tile kind: writer holds %s tiles, writing %s tile", e.Written, e.Writing)
}

// Writer writes tiles sequentially to a bin file. The first written tile
// fixes the writer's kind.
type Writer struct {
	f     *os.File
	kind  tile.Kind
	fixed bool
	count int
}

// Create creates the named bin file for writing.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{f: f}, nil
}

// WriteTile appends one tile to the file.
func (w *Writer) WriteTile(t tile.Tile) error {
	if w.count >= TileCount {
		return ErrMaximumTilesReached
	}

	if !w.fixed {
		w.kind = t.Kind()
		w.fixed = true
	} else if t.Kind() != w.kind {
		return KindMismatchError{Written: w.kind, Writing: t.Kind()}
	}

	if _, err := w.f.Write(t.Raw()); err != nil {
		return err
	}
	w.count++

	return nil
}

// FillRemainingSpace pads any unwritten slots up to 256 with blank tiles
// of the established kind. At least one tile must have been written.
func (w *Writer) FillRemainingSpace() error {
	if !w.fixed {
		return ErrNoTilesWritten
	}

	blank := tile.New(w.kind)
	for w.count < TileCount {
		if err := w.WriteTile(blank); err != nil {
			return err
		}
	}

	return nil
}

// Finish closes the file after verifying that exactly 256 tiles were
// written. On ErrNotEnoughTiles the writer is left open and usable, so the
// caller may keep writing or call FillRemainingSpace and retry.
func (w *Writer) Finish() error {
	if w.count < TileCount {
		return ErrNotEnoughTiles
	}
	return w.f.Close()
}

// Save writes a collection of up to 256 uniform kind tiles to a bin file,
// padding any remaining slots with blank tiles.
func Save(tiles []tile.Tile, path string) error {
	if _, err := tile.CollectionKind(tiles); err != nil {
		return err
	}

	w, err := Create(path)
	if err != nil {
		return err
	}

	for _, t := range tiles {
		if err := w.WriteTile(t); err != nil {
			w.f.Close()
			return err
		}
	}

	if err := w.FillRemainingSpace(); err != nil {
		w.f.Close()
		return err
	}

	return w.Finish()
}

// ErrTooManyTiles is returned when saving a collection larger than an
// extended font to a pair of bin files.
var ErrTooManyTiles = fmt.Errorf("too many tiles, an extended font holds at most %d tiles", 2*TileCount)

// SaveExtended writes a collection to a base and an extension bin file,
// padding both with blank tiles as needed.
func SaveExtended(tiles []tile.Tile, basePath, extPath string) error {
	if len(tiles) > 2*TileCount {
		return ErrTooManyTiles
	}
	kind, err := tile.CollectionKind(tiles)
	if err != nil {
		return err
	}

	split := len(tiles)
	if split > TileCount {
		split = TileCount
	}

	if err := Save(tiles[:split], basePath); err != nil {
		return err
	}

	ext := tiles[split:]
	if len(ext) == 0 {
		// Extension part is all blanks of the base kind.
		ext = []tile.Tile{tile.New(kind)}
	}

	return Save(ext, extPath)
}

// SaveExtendedNorm writes a collection to a directory as a pair of bin
// files with normalized names.
func SaveExtendedNorm(tiles []tile.Tile, dir, ident string) error {
	kind, err := tile.CollectionKind(tiles)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	return SaveExtended(tiles,
		filepath.Join(dir, NormalizedName(kind, ident, Base)),
		filepath.Join(dir, NormalizedName(kind, ident, Ext)),
	)
}
