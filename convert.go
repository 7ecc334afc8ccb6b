package osdfont

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bodgit/osdfont/avatar"
	"github.com/bodgit/osdfont/binfile"
	"github.com/bodgit/osdfont/fontdir"
	"github.com/bodgit/osdfont/grid"
	"github.com/bodgit/osdfont/symbol"
	"github.com/bodgit/osdfont/tile"
)

// ErrNoPrefix is returned when a conversion argument has no format
// prefix.
var ErrNoPrefix = errors.New("no prefix")

// InvalidPrefixError is returned when a conversion argument uses an
// unknown format prefix.
type InvalidPrefixError struct {
	Prefix string
}

func (e InvalidPrefixError) Error() string {
	return fmt.Sprintf("invalid prefix: %s", e.Prefix)
}

// InvalidExtensionError is returned when an image path argument does not
// name a PNG file.
type InvalidExtensionError struct {
	Path string
}

func (e InvalidExtensionError) Error() string {
	return fmt.Sprintf("invalid image file extension: %s", e.Path)
}

// InvalidConversionError is returned when the source and destination
// arguments use the same format.
type InvalidConversionError struct {
	From, To string
}

func (e InvalidConversionError) Error() string {
	return fmt.Sprintf("invalid conversion from %s to %s", e.From, e.To)
}

func checkImageExtension(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		return InvalidExtensionError{Path: path}
	}
	return nil
}

const (
	prefixBin      = "bin"
	prefixTileGrid = "tilegrid"
	prefixTileDir  = "tiledir"
	prefixSymDir   = "symdir"
	prefixAvatar   = "avatar"
)

type convertArg struct {
	prefix string
	path   string
}

func identifyConvertArg(input string) (convertArg, error) {
	prefix, path, found := strings.Cut(input, ":")
	if !found {
		return convertArg{}, ErrNoPrefix
	}

	switch prefix {
	case prefixBin, prefixTileDir, prefixSymDir:
	case prefixTileGrid, prefixAvatar:
		if err := checkImageExtension(path); err != nil {
			return convertArg{}, err
		}
	default:
		return convertArg{}, InvalidPrefixError{Prefix: prefix}
	}

	return convertArg{prefix: prefix, path: path}, nil
}

func (c *Converter) loadSpecs() (symbol.Specs, error) {
	return symbol.LoadSpecsFile(c.specsFile)
}

func (c *Converter) logKind(tiles []tile.Tile, path string) {
	if kind, err := tile.CollectionKind(tiles); err == nil {
		c.logger.Printf("detected %s kind of tiles in %s\n", kind, path)
	}
}

func (c *Converter) loadCollection(arg convertArg) ([]tile.Tile, error) {
	var (
		tiles []tile.Tile
		err   error
	)

	switch arg.prefix {
	case prefixBin:
		tiles, err = binfile.Load(arg.path)
	case prefixTileGrid:
		tiles, err = grid.LoadImage(arg.path)
	case prefixTileDir:
		tiles, err = fontdir.LoadTiles(arg.path, fontdir.MaxTiles)
	case prefixSymDir:
		var symbols []symbol.Symbol
		if symbols, err = fontdir.LoadSymbols(arg.path, fontdir.MaxTiles); err == nil {
			tiles = symbol.Flatten(symbols)
		}
	case prefixAvatar:
		tiles, err = avatar.Load(arg.path)
	}
	if err != nil {
		return nil, err
	}

	c.logKind(tiles, arg.path)

	return tiles, nil
}

func (c *Converter) saveCollection(tiles []tile.Tile, arg convertArg) error {
	switch arg.prefix {
	case prefixBin:
		return binfile.Save(tiles, arg.path)
	case prefixTileGrid:
		return grid.SaveImage(tiles, arg.path)
	case prefixTileDir:
		return fontdir.SaveTiles(tiles, arg.path)
	case prefixSymDir:
		specs, err := c.loadSpecs()
		if err != nil {
			return err
		}
		symbols, err := symbol.Segment(tiles, specs)
		if err != nil {
			return err
		}
		return fontdir.SaveSymbols(symbols, arg.path)
	case prefixAvatar:
		if len(tiles) > avatar.TileCount {
			c.logger.Printf("using only the first %d of %d tiles for avatar image %s\n", avatar.TileCount, len(tiles), arg.path)
		}
		return avatar.Save(tiles, arg.path)
	}
	return nil
}

// Convert converts one tile collection between two formats, each given as
// a prefix:path argument.
func (c *Converter) Convert(from, to string) error {
	fromArg, err := identifyConvertArg(from)
	if err != nil {
		return fmt.Errorf("invalid `from` argument: %w", err)
	}
	toArg, err := identifyConvertArg(to)
	if err != nil {
		return fmt.Errorf("invalid `to` argument: %w", err)
	}

	if fromArg.prefix == toArg.prefix {
		return InvalidConversionError{From: fromArg.prefix, To: toArg.prefix}
	}

	c.logger.Printf("converting %s -> %s\n", from, to)

	tiles, err := c.loadCollection(fromArg)
	if err != nil {
		return err
	}

	return c.saveCollection(tiles, toArg)
}

const (
	prefixBinSet       = "djibinset"
	prefixBinSetNorm   = "djibinsetnorm"
	prefixGridSet      = "tilesetgrids"
	prefixGridSetNorm  = "tilesetgridsnorm"
	prefixTileSetDir   = "tilesetdir"
	prefixSymbolSetDir = "symsetdir"
)

type convertSetArg struct {
	prefix string
	paths  []string
	dir    string
	ident  string
}

func splitNormArgs(arg string) (string, string, error) {
	parts := strings.Split(arg, ":")
	switch {
	case len(parts) > 2:
		return "", "", errors.New("too many arguments")
	case parts[0] == "":
		return "", "", errors.New("too few arguments")
	case len(parts) == 2:
		return parts[0], parts[1], nil
	default:
		return parts[0], "", nil
	}
}

func identifyConvertSetArg(input string) (convertSetArg, error) {
	prefix, rest, found := strings.Cut(input, ":")
	if !found {
		return convertSetArg{}, ErrNoPrefix
	}

	switch prefix {
	case prefixBinSet, prefixGridSet:
		want := 2
		if prefix == prefixBinSet {
			want = 4
		}
		paths := strings.Split(rest, ":")
		switch {
		case len(paths) < want:
			return convertSetArg{}, fmt.Errorf("%s: too few arguments", prefix)
		case len(paths) > want:
			return convertSetArg{}, fmt.Errorf("%s: too many arguments", prefix)
		}
		return convertSetArg{prefix: prefix, paths: paths}, nil

	case prefixBinSetNorm, prefixGridSetNorm:
		dir, ident, err := splitNormArgs(rest)
		if err != nil {
			return convertSetArg{}, fmt.Errorf("%s: %w", prefix, err)
		}
		return convertSetArg{prefix: prefix, dir: dir, ident: ident}, nil

	case prefixTileSetDir, prefixSymbolSetDir:
		return convertSetArg{prefix: prefix, dir: rest}, nil
	}

	return convertSetArg{}, InvalidPrefixError{Prefix: prefix}
}

func (c *Converter) loadTileSet(arg convertSetArg) (*TileSet, error) {
	switch arg.prefix {
	case prefixBinSet:
		return LoadTileSetFromBinFiles(arg.paths[0], arg.paths[1], arg.paths[2], arg.paths[3])
	case prefixBinSetNorm:
		return LoadTileSetFromBinNorm(arg.dir, arg.ident)
	case prefixGridSet:
		return LoadTileSetFromGrids(arg.paths[0], arg.paths[1])
	case prefixGridSetNorm:
		return LoadTileSetFromGridsNorm(arg.dir, arg.ident)
	case prefixTileSetDir:
		return LoadTileSetFromDir(arg.dir, fontdir.MaxTiles)
	case prefixSymbolSetDir:
		set, err := LoadSymbolSetFromDir(arg.dir, fontdir.MaxTiles)
		if err != nil {
			return nil, err
		}
		return set.ToTileSet()
	}
	return nil, InvalidPrefixError{Prefix: arg.prefix}
}

func (c *Converter) saveTileSet(set *TileSet, arg convertSetArg) error {
	switch arg.prefix {
	case prefixBinSet:
		return set.SaveToBinFiles(arg.paths[0], arg.paths[1], arg.paths[2], arg.paths[3])
	case prefixBinSetNorm:
		return set.SaveToBinNorm(arg.dir, arg.ident)
	case prefixGridSet:
		return set.SaveToGrids(arg.paths[0], arg.paths[1])
	case prefixGridSetNorm:
		return set.SaveToGridsNorm(arg.dir, arg.ident)
	case prefixTileSetDir:
		return set.SaveToDir(arg.dir)
	case prefixSymbolSetDir:
		specs, err := c.loadSpecs()
		if err != nil {
			return err
		}
		symbolSet, err := set.ToSymbolSet(specs)
		if err != nil {
			return err
		}
		return symbolSet.SaveToDir(arg.dir)
	}
	return InvalidPrefixError{Prefix: arg.prefix}
}

// ConvertSet converts one SD/HD collection set between two formats, each
// given as a prefix:path[:path...] argument.
func (c *Converter) ConvertSet(from, to string) error {
	fromArg, err := identifyConvertSetArg(from)
	if err != nil {
		return fmt.Errorf("invalid `from` argument: %w", err)
	}
	toArg, err := identifyConvertSetArg(to)
	if err != nil {
		return fmt.Errorf("invalid `to` argument: %w", err)
	}

	c.logger.Printf("converting %s -> %s\n", from, to)

	set, err := c.loadTileSet(fromArg)
	if err != nil {
		return err
	}

	return c.saveTileSet(set, toArg)
}
