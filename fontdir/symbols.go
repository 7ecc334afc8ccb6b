package fontdir

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/bodgit/osdfont/symbol"
	"github.com/bodgit/osdfont/tile"
)

// OverlapError is returned when two symbol files claim the same tile slot.
type OverlapError struct {
	PathA, PathB string
}

func (e OverlapError) Error() string {
	return fmt.Sprintf("overlapping symbol files: `%s` and `%s`", e.PathA, e.PathB)
}

// SpanMismatchError is returned when a symbol image holds a different
// number of tiles than its file name declares.
type SpanMismatchError struct {
	Path string
	Span int
}

func (e SpanMismatchError) Error() string {
	return fmt.Sprintf("symbol span %d does not match span from file name %s", e.Span, e.Path)
}

// NoSymbolFoundError is returned when a directory scan finds no symbol at
// all.
type NoSymbolFoundError struct {
	Dir string
}

func (e NoSymbolFoundError) Error() string {
	return fmt.Sprintf("no symbol found in directory: %s", e.Dir)
}

var symbolFileNameRE = regexp.MustCompile(`^(\d{3})(?:-(\d{3}))?\.`)

type symbolFile struct {
	path       string
	startIndex int
	span       int
}

// identifySymbolFile parses a symbol file name into its start index and
// span, or reports that the name matches neither pattern.
func identifySymbolFile(path string) (symbolFile, bool) {
	m := symbolFileNameRE.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return symbolFile{}, false
	}

	start, _ := strconv.Atoi(m[1])
	span := 1
	if m[2] != "" {
		end, _ := strconv.Atoi(m[2])
		span = end - start + 1
	}

	return symbolFile{path: path, startIndex: start, span: span}, true
}

func symbolFileName(startIndex, span int) string {
	if span == 1 {
		return fmt.Sprintf("%03d.png", startIndex)
	}
	return fmt.Sprintf("%03d-%03d.png", startIndex, startIndex+span-1)
}

// LoadSymbols scans a symbol directory, walking tile slots from zero for
// at most max symbols. Slots with no file load as blank single tile
// symbols; the result is truncated to the last slot holding a real symbol.
func LoadSymbols(dir string, max int) ([]symbol.Symbol, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make(map[int]symbolFile)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		sf, ok := identifySymbolFile(filepath.Join(dir, entry.Name()))
		if !ok {
			continue
		}
		if existing, ok := files[sf.startIndex]; ok {
			return nil, OverlapError{PathA: sf.path, PathB: existing.path}
		}
		files[sf.startIndex] = sf
	}

	var (
		symbols   []symbol.Symbol
		kind      tile.Kind
		kindKnown bool
	)
	lastReal := -1
	tileIndex := 0

	for i := 0; i < max; i++ {
		sf, ok := files[tileIndex]
		if !ok {
			// Gap; provisional blank symbol occupying one slot.
			symbols = append(symbols, symbol.Symbol{})
			tileIndex++
			continue
		}

		// The path came from the directory listing, so any failure
		// here is a real decode error.
		s, err := symbol.LoadFile(sf.path)
		if err != nil {
			return nil, err
		}

		if s.Span() != sf.span {
			return nil, SpanMismatchError{Path: sf.path, Span: s.Span()}
		}

		if !kindKnown {
			kind, kindKnown = s.Kind(), true
		} else if s.Kind() != kind {
			return nil, KindMismatchError{Dir: dir}
		}

		// A file starting inside this symbol's span overlaps it.
		for j := tileIndex + 1; j < tileIndex+s.Span(); j++ {
			if other, ok := files[j]; ok {
				return nil, OverlapError{PathA: sf.path, PathB: other.path}
			}
		}

		symbols = append(symbols, s)
		lastReal = len(symbols) - 1
		tileIndex += s.Span()
	}

	if !kindKnown {
		return nil, NoSymbolFoundError{Dir: dir}
	}

	symbols = symbols[:lastReal+1]
	for i, s := range symbols {
		if s.Span() == 0 {
			symbols[i] = symbol.New(kind)
		}
	}

	return symbols, nil
}

// SaveSymbols writes each symbol of a collection to a PNG file named after
// the tile slots it occupies, creating the directory first if needed.
func SaveSymbols(symbols []symbol.Symbol, dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	tileIndex := 0
	for _, s := range symbols {
		if err := s.SaveFile(filepath.Join(dir, symbolFileName(tileIndex, s.Span()))); err != nil {
			return err
		}
		tileIndex += s.Span()
	}

	return nil
}
