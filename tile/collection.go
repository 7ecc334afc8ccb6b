package tile

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCollection is returned when a kind is requested from an
	// empty collection.
	ErrEmptyCollection = errors.New("cannot determine tile kind from empty collection")

	// ErrMultipleKinds is returned when a collection mixes tile kinds.
	ErrMultipleKinds = errors.New("collection includes multiple tile kinds")
)

// WrongKindError is returned when a collection's uniform kind is not the
// kind that was requested.
type WrongKindError struct {
	Requested, Loaded Kind
}

func (e WrongKindError) Error() string {
	return fmt.Sprintf("loaded kind does not match requested: loaded %s, requested %s", e.Loaded, e.Requested)
}

// CollectionKind returns the single kind shared by every tile in the
// collection. It returns ErrEmptyCollection for an empty collection and
// ErrMultipleKinds if the tiles do not all share one kind.
func CollectionKind(tiles []Tile) (Kind, error) {
	if len(tiles) == 0 {
		return 0, ErrEmptyCollection
	}
	kind := tiles[0].Kind()
	for _, t := range tiles[1:] {
		if t.Kind() != kind {
			return 0, ErrMultipleKinds
		}
	}
	return kind, nil
}

// CheckCollectionKind verifies that every tile in the collection is of the
// requested kind.
func CheckCollectionKind(tiles []Tile, kind Kind) error {
	loaded, err := CollectionKind(tiles)
	if err != nil {
		return err
	}
	if loaded != kind {
		return WrongKindError{Requested: kind, Loaded: loaded}
	}
	return nil
}
