package osdfont

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/osdfont/binfile"
	"github.com/bodgit/osdfont/fontdir"
	"github.com/bodgit/osdfont/tile"
)

func testConverter(t *testing.T) (*Converter, *bytes.Buffer) {
	t.Helper()

	specsFile := filepath.Join(t.TempDir(), "sym_specs.yaml")
	require.NoError(t, os.WriteFile(specsFile, []byte("battery: 10:3\n"), 0o644))

	buf := new(bytes.Buffer)

	return New(specsFile, log.New(buf, "", 0)), buf
}

func TestConvertArgErrors(t *testing.T) {
	c, _ := testConverter(t)

	dir := t.TempDir()
	bin := "bin:" + filepath.Join(dir, "font.bin")

	tables := []struct {
		from, to string
	}{
		{"font.bin", bin},                                // no prefix
		{"nosuch:" + filepath.Join(dir, "x"), bin},      // unknown prefix
		{"tilegrid:" + filepath.Join(dir, "x.gif"), bin}, // not a png
		{bin, "avatar:" + filepath.Join(dir, "x.jpg")},  // not a png
	}

	for _, table := range tables {
		assert.Error(t, c.Convert(table.from, table.to), "%s -> %s", table.from, table.to)
	}
}

func TestConvertSameFormat(t *testing.T) {
	c, _ := testConverter(t)

	dir := t.TempDir()
	err := c.Convert("bin:"+filepath.Join(dir, "a.bin"), "bin:"+filepath.Join(dir, "b.bin"))
	assert.ErrorAs(t, err, &InvalidConversionError{})
}

func TestConvertBinTileDirRoundTrip(t *testing.T) {
	c, _ := testConverter(t)

	dir := t.TempDir()
	src := filepath.Join(dir, "font.bin")
	tiles := filepath.Join(dir, "tiles")
	back := filepath.Join(dir, "back.bin")

	require.NoError(t, binfile.Save(testTiles(t, tile.SD, binfile.TileCount), src))

	require.NoError(t, c.Convert("bin:"+src, "tiledir:"+tiles))
	require.NoError(t, c.Convert("tiledir:"+tiles, "bin:"+back))

	want, err := os.ReadFile(src)
	require.NoError(t, err)
	got, err := os.ReadFile(back)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConvertBinSymDirRoundTrip(t *testing.T) {
	c, _ := testConverter(t)

	dir := t.TempDir()
	src := filepath.Join(dir, "font_hd.bin")
	symbols := filepath.Join(dir, "symbols")
	back := filepath.Join(dir, "back.bin")

	require.NoError(t, binfile.Save(testTiles(t, tile.HD, binfile.TileCount), src))

	require.NoError(t, c.Convert("bin:"+src, "symdir:"+symbols))
	assert.FileExists(t, filepath.Join(symbols, "010-012.png"))

	require.NoError(t, c.Convert("symdir:"+symbols, "bin:"+back))

	want, err := os.ReadFile(src)
	require.NoError(t, err)
	got, err := os.ReadFile(back)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConvertGridAvatarRoundTrip(t *testing.T) {
	c, _ := testConverter(t)

	dir := t.TempDir()
	gridPath := filepath.Join(dir, "grid.png")
	avatarPath := filepath.Join(dir, "avatar.png")
	back := filepath.Join(dir, "back.png")

	src := testTiles(t, tile.SD, 256)
	set, err := NewTileSet(src, testTiles(t, tile.HD, 256))
	require.NoError(t, err)
	require.NoError(t, set.SaveToGrids(gridPath, filepath.Join(dir, "grid_hd.png")))

	require.NoError(t, c.Convert("tilegrid:"+gridPath, "avatar:"+avatarPath))
	require.NoError(t, c.Convert("avatar:"+avatarPath, "tilegrid:"+back))

	want, err := os.ReadFile(gridPath)
	require.NoError(t, err)
	got, err := os.ReadFile(back)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConvertAvatarTruncationWarning(t *testing.T) {
	c, buf := testConverter(t)

	dir := t.TempDir()
	tiles := filepath.Join(dir, "tiles")
	avatarPath := filepath.Join(dir, "avatar.png")

	require.NoError(t, fontdir.SaveTiles(testTiles(t, tile.SD, 300), tiles))
	require.NoError(t, c.Convert("tiledir:"+tiles, "avatar:"+avatarPath))

	assert.Contains(t, buf.String(), "using only the first 256")
}

func TestConvertSetArgErrors(t *testing.T) {
	c, _ := testConverter(t)

	dir := t.TempDir()
	tiles := "tilesetdir:" + dir

	tables := []struct {
		from, to string
	}{
		{dir, tiles}, // no prefix
		{"nosuch:" + dir, tiles},
		{"djibinset:a.bin:b.bin:c.bin", tiles},         // too few paths
		{"djibinset:a.bin:b.bin:c.bin:d.bin:e.bin", tiles}, // too many paths
		{"tilesetgrids:a.png", tiles},                  // too few paths
		{"djibinsetnorm:", tiles},                      // missing directory
		{"djibinsetnorm:" + dir + ":ident:extra", tiles},
	}

	for _, table := range tables {
		assert.Error(t, c.ConvertSet(table.from, table.to), "%s -> %s", table.from, table.to)
	}
}

func TestConvertSetRoundTrip(t *testing.T) {
	c, _ := testConverter(t)

	dir := t.TempDir()
	binDir := filepath.Join(dir, "bins")
	gridDir := filepath.Join(dir, "grids")
	backDir := filepath.Join(dir, "back")

	set, err := NewTileSet(testTiles(t, tile.SD, 2*binfile.TileCount), testTiles(t, tile.HD, 2*binfile.TileCount))
	require.NoError(t, err)
	require.NoError(t, set.SaveToBinNorm(binDir, "btfl"))

	require.NoError(t, c.ConvertSet("djibinsetnorm:"+binDir+":btfl", "tilesetgridsnorm:"+gridDir+":btfl"))
	require.NoError(t, c.ConvertSet("tilesetgridsnorm:"+gridDir+":btfl", "djibinsetnorm:"+backDir+":btfl"))

	for _, name := range []string{"font_btfl.bin", "font_btfl_2.bin", "font_btfl_hd.bin", "font_btfl_hd_2.bin"} {
		want, err := os.ReadFile(filepath.Join(binDir, name))
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(backDir, name))
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}
