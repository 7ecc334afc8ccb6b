/*
Package binfile implements the raw binary OSD font container.

A bin file is the concatenation of exactly 256 raw RGBA tile records of a
single kind, so the file size is 256 times the raw tile size and the tile
kind is inferred from it. Fonts needing more than 256 tiles are stored as
two sequential files, a base part and an extension part, concatenated
logically into one 512 tile collection.
*/
package binfile

import (
	"fmt"
	"strings"

	"github.com/bodgit/osdfont/tile"
)

// TileCount is the number of tiles in one bin file.
const TileCount = 256

// Part selects the base or extension file of an extended font.
type Part int

const (
	Base Part = iota
	Ext
)

// Size returns the byte size of a bin file holding tiles of this kind.
func Size(kind tile.Kind) int64 {
	return int64(kind.RawSize()) * TileCount
}

// InvalidSizeError is returned when a file size matches no tile kind.
type InvalidSizeError struct {
	Size int64
}

func (e InvalidSizeError) Error() string {
	return fmt.Sprintf("file size does not match a valid bin file size: %dB", e.Size)
}

// KindForSize returns the kind whose bin file size matches size.
func KindForSize(size int64) (tile.Kind, error) {
	for _, k := range tile.Kinds {
		if size == Size(k) {
			return k, nil
		}
	}
	return 0, InvalidSizeError{Size: size}
}

// NormalizedName returns the deterministic bin file name for a kind, an
// optional identifier and the font part:
//
//	SD: font.bin + font2.bin
//	HD: font_hd.bin + font_hd_2.bin
//	with ident: font_<ident>.bin, font_<ident>_2.bin,
//	            font_<ident>_hd.bin, font_<ident>_hd_2.bin
func NormalizedName(kind tile.Kind, ident string, part Part) string {
	var b strings.Builder
	b.WriteString("font")
	if ident != "" {
		b.WriteString("_" + ident)
	}
	if kind == tile.HD {
		b.WriteString("_hd")
	}
	if part == Ext {
		if ident == "" && kind != tile.HD {
			b.WriteString("2")
		} else {
			b.WriteString("_2")
		}
	}
	b.WriteString(".bin")
	return b.String()
}
