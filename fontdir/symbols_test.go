package fontdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/osdfont/symbol"
	"github.com/bodgit/osdfont/tile"
)

func testSymbol(t *testing.T, kind tile.Kind, span int, seed byte) symbol.Symbol {
	t.Helper()

	tiles := make([]tile.Tile, span)
	for i := range tiles {
		tiles[i] = testTile(t, kind, seed+byte(i))
	}

	s, err := symbol.FromTiles(tiles)
	require.NoError(t, err)

	return s
}

func TestSymbolsRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "symbols")

	src := []symbol.Symbol{
		testSymbol(t, tile.SD, 1, 1),
		testSymbol(t, tile.SD, 3, 10),
		testSymbol(t, tile.SD, 1, 20),
	}
	require.NoError(t, SaveSymbols(src, dir))

	// 000.png, 001-003.png, 004.png
	for _, name := range []string{"000.png", "001-003.png", "004.png"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	symbols, err := LoadSymbols(dir, MaxTiles)
	require.NoError(t, err)
	require.Len(t, symbols, 3)

	for i := range src {
		require.Equal(t, src[i].Span(), symbols[i].Span())
		for j := range src[i].Tiles() {
			assert.Equal(t, src[i].Tiles()[j].Raw(), symbols[i].Tiles()[j].Raw())
		}
	}
}

func TestLoadSymbolsGapFilling(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, testSymbol(t, tile.HD, 1, 1).SaveFile(filepath.Join(dir, "000.png")))
	require.NoError(t, testSymbol(t, tile.HD, 2, 2).SaveFile(filepath.Join(dir, "002-003.png")))

	symbols, err := LoadSymbols(dir, MaxTiles)
	require.NoError(t, err)
	require.Len(t, symbols, 3)

	assert.Equal(t, 1, symbols[1].Span())
	assert.Equal(t, tile.New(tile.HD).Raw(), symbols[1].Tiles()[0].Raw())
	assert.Equal(t, 2, symbols[2].Span())
}

func TestLoadSymbolsOverlap(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, testSymbol(t, tile.SD, 3, 1).SaveFile(filepath.Join(dir, "000-002.png")))
	require.NoError(t, testSymbol(t, tile.SD, 1, 2).SaveFile(filepath.Join(dir, "001.png")))

	_, err := LoadSymbols(dir, MaxTiles)
	var overlap OverlapError
	require.ErrorAs(t, err, &overlap)
	assert.Equal(t, filepath.Join(dir, "000-002.png"), overlap.PathA)
	assert.Equal(t, filepath.Join(dir, "001.png"), overlap.PathB)
}

func TestLoadSymbolsDuplicateStart(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, testSymbol(t, tile.SD, 1, 1).SaveFile(filepath.Join(dir, "005.png")))
	require.NoError(t, testSymbol(t, tile.SD, 2, 2).SaveFile(filepath.Join(dir, "005-006.png")))

	_, err := LoadSymbols(dir, MaxTiles)
	assert.ErrorAs(t, err, &OverlapError{})
}

func TestLoadSymbolsSpanMismatch(t *testing.T) {
	dir := t.TempDir()

	// Two tiles wide but named as a single tile symbol
	require.NoError(t, testSymbol(t, tile.HD, 2, 1).SaveFile(filepath.Join(dir, "010.png")))

	_, err := LoadSymbols(dir, MaxTiles)
	var mismatch SpanMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, filepath.Join(dir, "010.png"), mismatch.Path)
	assert.Equal(t, 2, mismatch.Span)
}

func TestLoadSymbolsKindMismatch(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, testSymbol(t, tile.SD, 1, 1).SaveFile(filepath.Join(dir, "000.png")))
	require.NoError(t, testSymbol(t, tile.HD, 1, 2).SaveFile(filepath.Join(dir, "001.png")))

	_, err := LoadSymbols(dir, MaxTiles)
	assert.ErrorAs(t, err, &KindMismatchError{})
}

func TestLoadSymbolsNoSymbolFound(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSymbols(dir, MaxTiles)
	assert.ErrorAs(t, err, &NoSymbolFoundError{})
}

func TestLoadSymbolsCorruptFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "000.png"), []byte("not a png"), 0o644))

	_, err := LoadSymbols(dir, MaxTiles)
	assert.Error(t, err)
}

func TestLoadSymbolsSpanOneNamedAsRange(t *testing.T) {
	dir := t.TempDir()

	// 007-007.png declares a span of one; a matching image is fine
	require.NoError(t, testSymbol(t, tile.SD, 1, 1).SaveFile(filepath.Join(dir, "007-007.png")))

	symbols, err := LoadSymbols(dir, MaxTiles)
	require.NoError(t, err)
	assert.Len(t, symbols, 8)
}
