package users

import (
	"testing"

	"github.com/dmitrijs2005/uocflix/internal/catalog"
	"github.com/dmitrijs2005/uocflix/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genreFilm(g catalog.Genre) catalog.Film {
	return testFilm(g.String(), 100, catalog.NewSeries(g.String(), g, 1))
}

func TestFavoriteGenre(t *testing.T) {
	tests := []struct {
		name   string
		pushed []catalog.Genre
		want   catalog.Genre
	}{
		{
			name: "no favorites",
			want: catalog.GenreNotFound,
		},
		{
			name:   "single",
			pushed: []catalog.Genre{catalog.GenreHorror},
			want:   catalog.GenreHorror,
		},
		{
			name:   "clear majority",
			pushed: []catalog.Genre{catalog.GenreDrama, catalog.GenreAction, catalog.GenreAction},
			want:   catalog.GenreAction,
		},
		{
			// pop order: drama, action
			name:   "tie goes to the first popped genre",
			pushed: []catalog.Genre{catalog.GenreAction, catalog.GenreDrama},
			want:   catalog.GenreDrama,
		},
		{
			// pop order: action, drama
			name:   "tie goes to the first popped genre, reversed",
			pushed: []catalog.Genre{catalog.GenreDrama, catalog.GenreAction},
			want:   catalog.GenreAction,
		},
		{
			// pop order: action, drama, drama, action; drama reaches 2 first
			name:   "tie goes to the genre reaching the maximum first",
			pushed: []catalog.Genre{catalog.GenreAction, catalog.GenreDrama, catalog.GenreDrama, catalog.GenreAction},
			want:   catalog.GenreDrama,
		},
		{
			name:   "later genre overtakes with strictly greater count",
			pushed: []catalog.Genre{catalog.GenreSciFi, catalog.GenreSciFi, catalog.GenreSciFi, catalog.GenreComedy, catalog.GenreComedy},
			want:   catalog.GenreSciFi,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := mustUser(t, "u", "U", "u@uoc.edu")
			for _, g := range tt.pushed {
				require.NoError(t, u.AddFavorite(genreFilm(g)))
			}

			assert.Equal(t, tt.want, u.FavoriteGenre())
			assert.Len(t, u.Favorites(), len(tt.pushed), "favorites must survive the query")
		})
	}
}

func TestFavoriteGenre_PreservesOrder(t *testing.T) {
	u := mustUser(t, "u", "U", "u@uoc.edu")
	require.NoError(t, u.AddFavorite(genreFilm(catalog.GenreDrama)))
	require.NoError(t, u.AddFavorite(genreFilm(catalog.GenreAction)))

	before := u.Favorites()
	_ = u.FavoriteGenre()
	assert.Equal(t, before, u.Favorites())
}

func TestAddFavorite_PushOrder(t *testing.T) {
	series := catalog.NewSeries("Star Trek", catalog.GenreSciFi, 3)
	u := mustUser(t, "u", "U", "u@uoc.edu")

	require.NoError(t, u.AddFavorite(testFilm("first", 100, series)))
	require.NoError(t, u.AddFavorite(testFilm("second", 100, series)))

	favs := u.Favorites()
	require.Len(t, favs, 2)
	assert.Equal(t, "second", favs[0].Film.Title)
	assert.Equal(t, "first", favs[1].Film.Title)
}

func TestAddFavorite_FilmWithoutSeries(t *testing.T) {
	u := mustUser(t, "u", "U", "u@uoc.edu")
	err := u.AddFavorite(testFilm("orphan", 10, nil))
	require.ErrorIs(t, err, common.ErrorInvalidInput)
	assert.Empty(t, u.Favorites())
}

func TestFavsCountPerSeries(t *testing.T) {
	trek := catalog.NewSeries("Star Trek", catalog.GenreSciFi, 3)
	alien := catalog.NewSeries("Alien", catalog.GenreHorror, 1)

	u := mustUser(t, "u", "U", "u@uoc.edu")
	assert.Equal(t, 0, u.FavsCountPerSeries(trek))

	require.NoError(t, u.AddFavorite(testFilm("tmp", 132, trek)))
	require.NoError(t, u.AddFavorite(testFilm("alien", 117, alien)))
	require.NoError(t, u.AddFavorite(testFilm("khan", 113, trek)))

	assert.Equal(t, 2, u.FavsCountPerSeries(trek))
	assert.Equal(t, 1, u.FavsCountPerSeries(alien))
	assert.Len(t, u.Favorites(), 3)
}

func TestFavsLengthInMin(t *testing.T) {
	series := catalog.NewSeries("s", catalog.GenreDrama, 1)
	u := mustUser(t, "u", "U", "u@uoc.edu")
	assert.Equal(t, 0, u.FavsLengthInMin())

	for _, m := range []int{90, 120, 45} {
		require.NoError(t, u.AddFavorite(testFilm("f", m, series)))
	}
	assert.Equal(t, 255, u.FavsLengthInMin())
}

func TestQueries_OnZeroValueUser(t *testing.T) {
	var u User
	assert.Equal(t, catalog.GenreNotFound, u.FavoriteGenre())
	assert.Equal(t, 0, u.FavsLengthInMin())
	assert.Empty(t, u.Favorites())
}
