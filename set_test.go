package osdfont

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/osdfont/binfile"
	"github.com/bodgit/osdfont/fontdir"
	"github.com/bodgit/osdfont/symbol"
	"github.com/bodgit/osdfont/tile"
)

func testTile(t *testing.T, kind tile.Kind, seed byte) tile.Tile {
	t.Helper()

	b := make([]byte, kind.RawSize())
	for i := range b {
		b[i] = byte(i)*7 + seed
	}
	for i := 3; i < len(b); i += 4 {
		b[i] = 0xff
	}

	tl, err := tile.FromBytes(b)
	require.NoError(t, err)

	return tl
}

func testTiles(t *testing.T, kind tile.Kind, n int) []tile.Tile {
	t.Helper()

	tiles := make([]tile.Tile, n)
	for i := range tiles {
		tiles[i] = testTile(t, kind, byte(i))
	}

	return tiles
}

func assertTilesEqual(t *testing.T, want, got []tile.Tile) {
	t.Helper()

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Raw(), got[i].Raw())
	}
}

func TestNewTileSet(t *testing.T) {
	set, err := NewTileSet(testTiles(t, tile.SD, 4), testTiles(t, tile.HD, 4))
	require.NoError(t, err)

	assert.Equal(t, set.SD, set.Collection(tile.SD))
	assert.Equal(t, set.HD, set.Collection(tile.HD))
}

func TestNewTileSetWrongKind(t *testing.T) {
	// Two SD collections; the HD side is the one at fault
	_, err := NewTileSet(testTiles(t, tile.SD, 4), testTiles(t, tile.SD, 4))

	var kindErr SetKindError
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, tile.HD, kindErr.Side)

	var wrongKind tile.WrongKindError
	require.ErrorAs(t, err, &wrongKind)
	assert.Equal(t, tile.HD, wrongKind.Requested)
	assert.Equal(t, tile.SD, wrongKind.Loaded)
}

func TestTileSetSymbolSetRoundTrip(t *testing.T) {
	set, err := NewTileSet(testTiles(t, tile.SD, 8), testTiles(t, tile.HD, 8))
	require.NoError(t, err)

	specs := symbol.Specs{{StartIndex: 2, Span: 3}}

	symbolSet, err := set.ToSymbolSet(specs)
	require.NoError(t, err)
	require.Len(t, symbolSet.SD, 6)
	require.Len(t, symbolSet.HD, 6)
	assert.Equal(t, 3, symbolSet.SD[2].Span())

	back, err := symbolSet.ToTileSet()
	require.NoError(t, err)
	assertTilesEqual(t, set.SD, back.SD)
	assertTilesEqual(t, set.HD, back.HD)
}

func TestTileSetDirRoundTrip(t *testing.T) {
	dir := t.TempDir()

	set, err := NewTileSet(testTiles(t, tile.SD, 20), testTiles(t, tile.HD, 20))
	require.NoError(t, err)
	require.NoError(t, set.SaveToDir(dir))

	assert.FileExists(t, filepath.Join(dir, "SD", "000.png"))
	assert.FileExists(t, filepath.Join(dir, "HD", "000.png"))

	loaded, err := LoadTileSetFromDir(dir, fontdir.MaxTiles)
	require.NoError(t, err)
	assertTilesEqual(t, set.SD, loaded.SD)
	assertTilesEqual(t, set.HD, loaded.HD)
}

func TestTileSetBinNormRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fonts")

	set, err := NewTileSet(testTiles(t, tile.SD, 2*binfile.TileCount), testTiles(t, tile.HD, 2*binfile.TileCount))
	require.NoError(t, err)
	require.NoError(t, set.SaveToBinNorm(dir, "btfl"))

	for _, name := range []string{"font_btfl.bin", "font_btfl_2.bin", "font_btfl_hd.bin", "font_btfl_hd_2.bin"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	loaded, err := LoadTileSetFromBinNorm(dir, "btfl")
	require.NoError(t, err)
	assertTilesEqual(t, set.SD, loaded.SD)
	assertTilesEqual(t, set.HD, loaded.HD)
}

func TestTileSetGridsNormRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "grids")

	set, err := NewTileSet(testTiles(t, tile.SD, 256), testTiles(t, tile.HD, 256))
	require.NoError(t, err)
	require.NoError(t, set.SaveToGridsNorm(dir, ""))

	assert.FileExists(t, filepath.Join(dir, "grid.png"))
	assert.FileExists(t, filepath.Join(dir, "grid_hd.png"))

	loaded, err := LoadTileSetFromGridsNorm(dir, "")
	require.NoError(t, err)
	assertTilesEqual(t, set.SD, loaded.SD)
	assertTilesEqual(t, set.HD, loaded.HD)
}

func TestSymbolSetDirRoundTrip(t *testing.T) {
	dir := t.TempDir()

	set, err := NewTileSet(testTiles(t, tile.SD, 8), testTiles(t, tile.HD, 8))
	require.NoError(t, err)

	symbolSet, err := set.ToSymbolSet(symbol.Specs{{StartIndex: 0, Span: 2}})
	require.NoError(t, err)
	require.NoError(t, symbolSet.SaveToDir(dir))

	assert.FileExists(t, filepath.Join(dir, "SD", "000-001.png"))
	assert.FileExists(t, filepath.Join(dir, "HD", "000-001.png"))

	loaded, err := LoadSymbolSetFromDir(dir, fontdir.MaxTiles)
	require.NoError(t, err)
	require.Len(t, loaded.SD, len(symbolSet.SD))
	require.Len(t, loaded.HD, len(symbolSet.HD))

	back, err := loaded.ToTileSet()
	require.NoError(t, err)
	assertTilesEqual(t, set.SD, back.SD)
	assertTilesEqual(t, set.HD, back.HD)
}
