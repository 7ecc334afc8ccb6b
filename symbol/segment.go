package symbol

import (
	"fmt"

	"github.com/bodgit/osdfont/tile"
)

// InvalidSpecError is returned when a specification entry would consume
// tiles past the end of the collection being segmented.
type InvalidSpecError struct {
	Spec  Spec
	Tiles int
}

func (e InvalidSpecError) Error() string {
	return fmt.Sprintf("symbol spec %d:%d runs past the end of the %d tile collection", e.Spec.StartIndex, e.Spec.Span, e.Tiles)
}

// Segment groups a flat tile collection into symbols. Walking from tile
// index zero, a spec entry starting at the current index consumes its span
// of tiles as one symbol, any other index consumes a single tile as a span
// one symbol. Overlapping spec entries are not detected; an entry reached
// by the walk decides alone how far it advances.
func Segment(tiles []tile.Tile, specs Specs) ([]Symbol, error) {
	var symbols []Symbol
	for index := 0; index < len(tiles); {
		if spec, ok := specs.Find(index); ok {
			if spec.EndIndex() > len(tiles) {
				return nil, InvalidSpecError{Spec: spec, Tiles: len(tiles)}
			}
			s, err := FromTiles(tiles[index:spec.EndIndex()])
			if err != nil {
				return nil, err
			}
			symbols = append(symbols, s)
			index += spec.Span
		} else {
			symbols = append(symbols, FromTile(tiles[index]))
			index++
		}
	}
	return symbols, nil
}
