package osdfont

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bodgit/osdfont/binfile"
	"github.com/bodgit/osdfont/fontdir"
	"github.com/bodgit/osdfont/grid"
	"github.com/bodgit/osdfont/symbol"
	"github.com/bodgit/osdfont/tile"
)

// SetKindError is returned when one side of a collection set does not
// hold a single collection of the expected kind.
type SetKindError struct {
	Side tile.Kind
	Err  error
}

func (e SetKindError) Error() string {
	return fmt.Sprintf("%s collection: %v", e.Side, e.Err)
}

func (e SetKindError) Unwrap() error {
	return e.Err
}

// TileSet pairs an SD and an HD tile collection under one logical font.
type TileSet struct {
	SD, HD []tile.Tile
}

// NewTileSet builds a TileSet after validating each side's kind.
func NewTileSet(sd, hd []tile.Tile) (*TileSet, error) {
	if err := tile.CheckCollectionKind(sd, tile.SD); err != nil {
		return nil, SetKindError{Side: tile.SD, Err: err}
	}
	if err := tile.CheckCollectionKind(hd, tile.HD); err != nil {
		return nil, SetKindError{Side: tile.HD, Err: err}
	}
	return &TileSet{SD: sd, HD: hd}, nil
}

// Collection returns the side of the set holding the given kind.
func (s *TileSet) Collection(kind tile.Kind) []tile.Tile {
	if kind == tile.HD {
		return s.HD
	}
	return s.SD
}

// ToSymbolSet segments both sides of the set with the same specification
// table.
func (s *TileSet) ToSymbolSet(specs symbol.Specs) (*SymbolSet, error) {
	sd, err := symbol.Segment(s.SD, specs)
	if err != nil {
		return nil, err
	}
	hd, err := symbol.Segment(s.HD, specs)
	if err != nil {
		return nil, err
	}
	return NewSymbolSet(sd, hd)
}

// LoadTileSetFromDir loads a tile set from a directory holding the SD
// tiles in the SD subdirectory and the HD tiles in the HD subdirectory.
func LoadTileSetFromDir(dir string, max int) (*TileSet, error) {
	sd, err := fontdir.LoadTiles(filepath.Join(dir, tile.SD.SetDirName()), max)
	if err != nil {
		return nil, err
	}
	hd, err := fontdir.LoadTiles(filepath.Join(dir, tile.HD.SetDirName()), max)
	if err != nil {
		return nil, err
	}
	return NewTileSet(sd, hd)
}

// SaveToDir saves both sides of the set to the SD and HD subdirectories
// of dir.
func (s *TileSet) SaveToDir(dir string) error {
	for _, kind := range tile.Kinds {
		if err := fontdir.SaveTiles(s.Collection(kind), filepath.Join(dir, kind.SetDirName())); err != nil {
			return err
		}
	}
	return nil
}

// LoadTileSetFromBinFiles loads a tile set from four explicit bin file
// paths, a base and extension pair per kind.
func LoadTileSetFromBinFiles(sdPath, sd2Path, hdPath, hd2Path string) (*TileSet, error) {
	sd, err := binfile.LoadExtended(sdPath, sd2Path)
	if err != nil {
		return nil, err
	}
	hd, err := binfile.LoadExtended(hdPath, hd2Path)
	if err != nil {
		return nil, err
	}
	return NewTileSet(sd, hd)
}

// LoadTileSetFromBinNorm loads a tile set from a directory holding bin
// files with normalized names.
func LoadTileSetFromBinNorm(dir, ident string) (*TileSet, error) {
	sd, err := binfile.LoadExtendedNorm(dir, ident, tile.SD)
	if err != nil {
		return nil, err
	}
	hd, err := binfile.LoadExtendedNorm(dir, ident, tile.HD)
	if err != nil {
		return nil, err
	}
	return NewTileSet(sd, hd)
}

// SaveToBinFiles saves both sides of the set to four explicit bin file
// paths, a base and extension pair per kind.
func (s *TileSet) SaveToBinFiles(sdPath, sd2Path, hdPath, hd2Path string) error {
	if err := binfile.SaveExtended(s.SD, sdPath, sd2Path); err != nil {
		return err
	}
	return binfile.SaveExtended(s.HD, hdPath, hd2Path)
}

// SaveToBinNorm saves both sides of the set to a directory as bin files
// with normalized names.
func (s *TileSet) SaveToBinNorm(dir, ident string) error {
	for _, kind := range tile.Kinds {
		if err := binfile.SaveExtendedNorm(s.Collection(kind), dir, ident); err != nil {
			return err
		}
	}
	return nil
}

// LoadTileSetFromGrids loads a tile set from an SD and an HD grid image.
func LoadTileSetFromGrids(sdPath, hdPath string) (*TileSet, error) {
	sd, err := grid.LoadImage(sdPath)
	if err != nil {
		return nil, err
	}
	hd, err := grid.LoadImage(hdPath)
	if err != nil {
		return nil, err
	}
	return NewTileSet(sd, hd)
}

// LoadTileSetFromGridsNorm loads a tile set from a directory holding grid
// images with normalized names.
func LoadTileSetFromGridsNorm(dir, ident string) (*TileSet, error) {
	return LoadTileSetFromGrids(
		filepath.Join(dir, grid.NormalizedName(tile.SD, ident)),
		filepath.Join(dir, grid.NormalizedName(tile.HD, ident)),
	)
}

// SaveToGrids saves both sides of the set to an SD and an HD grid image.
func (s *TileSet) SaveToGrids(sdPath, hdPath string) error {
	if err := grid.SaveImage(s.SD, sdPath); err != nil {
		return err
	}
	return grid.SaveImage(s.HD, hdPath)
}

// SaveToGridsNorm saves both sides of the set to a directory as grid
// images with normalized names.
func (s *TileSet) SaveToGridsNorm(dir, ident string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	for _, kind := range tile.Kinds {
		if err := grid.SaveImage(s.Collection(kind), filepath.Join(dir, grid.NormalizedName(kind, ident))); err != nil {
			return err
		}
	}
	return nil
}

// SymbolSet pairs an SD and an HD symbol collection under one logical
// font.
type SymbolSet struct {
	SD, HD []symbol.Symbol
}

// NewSymbolSet builds a SymbolSet after validating each side's kind.
func NewSymbolSet(sd, hd []symbol.Symbol) (*SymbolSet, error) {
	if err := symbol.CheckCollectionKind(sd, tile.SD); err != nil {
		return nil, SetKindError{Side: tile.SD, Err: err}
	}
	if err := symbol.CheckCollectionKind(hd, tile.HD); err != nil {
		return nil, SetKindError{Side: tile.HD, Err: err}
	}
	return &SymbolSet{SD: sd, HD: hd}, nil
}

// Collection returns the side of the set holding the given kind.
func (s *SymbolSet) Collection(kind tile.Kind) []symbol.Symbol {
	if kind == tile.HD {
		return s.HD
	}
	return s.SD
}

// ToTileSet flattens both sides of the set back into tile collections.
func (s *SymbolSet) ToTileSet() (*TileSet, error) {
	return NewTileSet(symbol.Flatten(s.SD), symbol.Flatten(s.HD))
}

// LoadSymbolSetFromDir loads a symbol set from a directory holding the SD
// symbols in the SD subdirectory and the HD symbols in the HD
// subdirectory.
func LoadSymbolSetFromDir(dir string, max int) (*SymbolSet, error) {
	sd, err := fontdir.LoadSymbols(filepath.Join(dir, tile.SD.SetDirName()), max)
	if err != nil {
		return nil, err
	}
	hd, err := fontdir.LoadSymbols(filepath.Join(dir, tile.HD.SetDirName()), max)
	if err != nil {
		return nil, err
	}
	return NewSymbolSet(sd, hd)
}

// SaveToDir saves both sides of the set to the SD and HD subdirectories
// of dir.
func (s *SymbolSet) SaveToDir(dir string) error {
	for _, kind := range tile.Kinds {
		if err := fontdir.SaveSymbols(s.Collection(kind), filepath.Join(dir, kind.SetDirName())); err != nil {
			return err
		}
	}
	return nil
}
