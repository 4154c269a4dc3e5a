package catalog

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/uocflix/internal/common"
)

// Genre is the category of a Series. Films inherit the genre of their series.
type Genre int

// GenreNotFound is returned by queries that have nothing to report.
const GenreNotFound Genre = -1

const (
	GenreAction Genre = iota
	GenreAdventure
	GenreAnimation
	GenreComedy
	GenreDocumentary
	GenreDrama
	GenreHorror
	GenreSciFi
)

// GenreCount is the number of valid genres.
const GenreCount = 8

var genreNames = [GenreCount]string{
	"action",
	"adventure",
	"animation",
	"comedy",
	"documentary",
	"drama",
	"horror",
	"scifi",
}

// Valid reports whether g is one of the enumerated genres.
func (g Genre) Valid() bool {
	return g >= 0 && g < GenreCount
}

func (g Genre) String() string {
	if !g.Valid() {
		return "none"
	}
	return genreNames[g]
}

// ParseGenre maps a case-insensitive genre name to its Genre value.
func ParseGenre(s string) (Genre, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range genreNames {
		if n == name {
			return Genre(i), nil
		}
	}
	return GenreNotFound, fmt.Errorf("genre %q: %w", s, common.ErrorInvalidInput)
}

// MarshalText encodes the genre by name so JSON seeds stay readable.
func (g Genre) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("genre %d: %w", int(g), common.ErrorInvalidInput)
	}
	return []byte(g.String()), nil
}

// UnmarshalText decodes a genre name.
func (g *Genre) UnmarshalText(text []byte) error {
	v, err := ParseGenre(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}
