package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/uocflix/internal/catalog"
)

func (a *App) ListFilms(ctx context.Context) error {
	for _, f := range a.service.Films(ctx) {
		fmt.Fprintf(a.out, "%-28s %-16s %-12s %4d min  %.1f\n",
			f.Title, f.Series.Title, f.Genre(), f.LengthInMin(), f.Rating)
	}
	return nil
}

func (a *App) AddFavorite(ctx context.Context, args []string) error {
	username, err := usernameArg("fav", args)
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "- Enter film title", a.prompts)
	if err != nil {
		return err
	}
	if err := a.service.AddFavorite(ctx, username, title); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Favorite %s added to %s\n", title, username)
	return nil
}

func (a *App) ListFavorites(ctx context.Context, args []string) error {
	username, err := usernameArg("favs", args)
	if err != nil {
		return err
	}
	favs, err := a.service.Favorites(ctx, username)
	if err != nil {
		return err
	}
	if len(favs) == 0 {
		fmt.Fprintln(a.out, "No favorites")
		return nil
	}
	for _, f := range favs {
		fmt.Fprintf(a.out, "%s  %s (%s)\n", f.AddedAt.Format("2006-01-02 15:04"), f.Film.Title, f.Film.Genre())
	}
	return nil
}

func (a *App) FavoriteGenre(ctx context.Context, args []string) error {
	username, err := usernameArg("favgenre", args)
	if err != nil {
		return err
	}
	g, err := a.service.FavoriteGenre(ctx, username)
	if err != nil {
		return err
	}
	if g == catalog.GenreNotFound {
		fmt.Fprintln(a.out, "No favorites")
		return nil
	}
	fmt.Fprintf(a.out, "Favorite genre: %s\n", g)
	return nil
}

func (a *App) FavsPerSeries(ctx context.Context, args []string) error {
	username, err := usernameArg("favseries", args)
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "- Enter series title", a.prompts)
	if err != nil {
		return err
	}
	n, err := a.service.FavsCountPerSeries(ctx, username, title)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Favorites of %s: %d\n", title, n)
	return nil
}

func (a *App) FavsLength(ctx context.Context, args []string) error {
	username, err := usernameArg("favtime", args)
	if err != nil {
		return err
	}
	mins, err := a.service.FavsLengthInMin(ctx, username)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Total favorites runtime: %d min\n", mins)
	return nil
}
