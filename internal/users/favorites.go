package users

import (
	"fmt"

	"github.com/dmitrijs2005/uocflix/internal/catalog"
	"github.com/dmitrijs2005/uocflix/internal/common"
	"github.com/dmitrijs2005/uocflix/internal/favorites"
)

// AddFavorite pushes film on top of the user's favorites. A film without a
// series is rejected with common.ErrorInvalidInput, since genre queries read
// the genre through the series.
func (u *User) AddFavorite(film catalog.Film) error {
	if film.Series == nil {
		return fmt.Errorf("film %q has no series: %w", film.Title, common.ErrorInvalidInput)
	}
	u.stack().Push(favorites.New(film))
	return nil
}

// Favorites returns the user's favorites, most recent first.
func (u *User) Favorites() []favorites.Favorite {
	return u.stack().Items()
}

// FavoriteGenre returns the genre that occurs most often among the user's
// favorites, or catalog.GenreNotFound when there are none.
//
// Favorites are visited in pop order. On a tie the genre that reached the
// top count first wins; a later genre only takes over once its count is
// strictly greater.
func (u *User) FavoriteGenre() catalog.Genre {
	tmp := u.stack().Duplicate()
	defer tmp.Free()

	var counts [catalog.GenreCount]int
	best, bestCount := catalog.GenreNotFound, 0

	for !tmp.Empty() {
		fav, err := tmp.Pop()
		if err != nil {
			break
		}

		g := fav.Film.Genre()
		if !g.Valid() {
			continue
		}

		counts[g]++
		if counts[g] > bestCount {
			best, bestCount = g, counts[g]
		}
	}

	return best
}

// FavsCountPerSeries returns how many favorites belong to series.
func (u *User) FavsCountPerSeries(series *catalog.Series) int {
	return u.stack().CountPerSeries(series)
}

// FavsLengthInMin returns the total runtime of the favorites in minutes.
func (u *User) FavsLengthInMin() int {
	return u.stack().LengthInMin()
}
