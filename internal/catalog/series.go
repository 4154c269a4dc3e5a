package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Series groups films under a title and a genre.
type Series struct {
	ID      uuid.UUID
	Title   string
	Genre   Genre
	Seasons int
}

// NewSeries returns a Series with a fresh random ID.
func NewSeries(title string, genre Genre, seasons int) *Series {
	return &Series{
		ID:      uuid.New(),
		Title:   title,
		Genre:   genre,
		Seasons: seasons,
	}
}

// Film is a single title of a series. Films are values; the series is shared.
type Film struct {
	Title    string
	Duration time.Duration
	Rating   float32
	Series   *Series
}

// Genre returns the genre inherited from the film's series,
// or GenreNotFound for a film without one.
func (f Film) Genre() Genre {
	if f.Series == nil {
		return GenreNotFound
	}
	return f.Series.Genre
}

// LengthInMin returns the film duration truncated to whole minutes.
func (f Film) LengthInMin() int {
	return int(f.Duration / time.Minute)
}
