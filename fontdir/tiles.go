/*
Package fontdir implements the per-tile and per-symbol directory codecs.

A tile directory holds one PNG per tile, named by the zero padded tile
index, e.g. 011.png. A symbol directory holds one PNG per symbol, named
either by its index for single tile symbols or by the inclusive start and
end indices for wider ones, e.g. 030-032.png. Missing indices are gaps;
they load as blank entries up to the last index actually present.
*/
package fontdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bodgit/osdfont/tile"
)

// MaxTiles is the default scan cap for directory loads.
const MaxTiles = 512

// NoTileFoundError is returned when a directory scan finds no tile at all.
type NoTileFoundError struct {
	Dir string
}

func (e NoTileFoundError) Error() string {
	return fmt.Sprintf("no tile found in directory: %s", e.Dir)
}

// KindMismatchError is returned when a directory holds more than one kind
// of tile.
type KindMismatchError struct {
	Dir string
}

func (e KindMismatchError) Error() string {
	return fmt.Sprintf("directory should contain a single kind of tile: %s", e.Dir)
}

func tileFileName(index int) string {
	return fmt.Sprintf("%03d.png", index)
}

// LoadTiles scans indices 0..max in a tile directory. Missing files are
// gaps, filled with blank tiles of the directory's kind; any other read
// failure aborts the scan. The result is truncated to the highest index
// actually present.
func LoadTiles(dir string, max int) ([]tile.Tile, error) {
	tiles := make([]tile.Tile, max)
	present := make([]bool, max)
	kindKnown := false

	var kind tile.Kind
	for index := 0; index < max; index++ {
		t, err := tile.LoadFile(filepath.Join(dir, tileFileName(index)))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}

		if !kindKnown {
			kind, kindKnown = t.Kind(), true
		} else if t.Kind() != kind {
			return nil, KindMismatchError{Dir: dir}
		}

		tiles[index], present[index] = t, true
	}

	if !kindKnown {
		return nil, NoTileFoundError{Dir: dir}
	}

	last := 0
	for index, p := range present {
		if p {
			last = index
		}
	}

	tiles = tiles[:last+1]
	for index := range tiles {
		if !present[index] {
			tiles[index] = tile.New(kind)
		}
	}

	return tiles, nil
}

// SaveTiles writes each tile of a collection to an index named PNG file,
// creating the directory first if needed.
func SaveTiles(tiles []tile.Tile, dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	for index, t := range tiles {
		if err := t.SaveFile(filepath.Join(dir, tileFileName(index))); err != nil {
			return err
		}
	}

	return nil
}
