// Package services contains the UOCFlix business logic used by the CLI.
// CatalogService owns the user table and the film catalog and logs every
// change it makes.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/uocflix/internal/catalog"
	"github.com/dmitrijs2005/uocflix/internal/common"
	"github.com/dmitrijs2005/uocflix/internal/favorites"
	"github.com/dmitrijs2005/uocflix/internal/logging"
	"github.com/dmitrijs2005/uocflix/internal/users"
)

// UserView is a read-only summary of a user.
type UserView struct {
	Username  string
	Name      string
	Mail      string
	Favorites int
}

// CatalogService is not safe for concurrent use.
type CatalogService struct {
	table   *users.Table
	catalog *catalog.Catalog
	log     logging.Logger
}

// NewCatalogService returns a service with an empty user table.
func NewCatalogService(c *catalog.Catalog, log logging.Logger) *CatalogService {
	return &CatalogService{
		table:   users.NewTable(),
		catalog: c,
		log:     log.With("component", "catalog"),
	}
}

// Register adds a new user.
func (s *CatalogService) Register(ctx context.Context, username, name, mail string) error {
	u, err := users.NewUser(username, name, mail)
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	defer u.Free()

	if err := s.table.Add(u); err != nil {
		s.log.Warn(ctx, "register rejected", "username", username, "error", err)
		return fmt.Errorf("error adding user: %w", err)
	}

	s.log.Info(ctx, "user registered", "username", username, "users", s.table.Size())
	return nil
}

// Unregister removes a user and its favorites.
func (s *CatalogService) Unregister(ctx context.Context, username string) error {
	u, err := s.find(username)
	if err != nil {
		return err
	}
	if err := s.table.Remove(u); err != nil {
		return fmt.Errorf("error removing user: %w", err)
	}

	s.log.Info(ctx, "user removed", "username", username, "users", s.table.Size())
	return nil
}

// Get returns a summary of one user.
func (s *CatalogService) Get(_ context.Context, username string) (UserView, error) {
	u, err := s.find(username)
	if err != nil {
		return UserView{}, err
	}
	return view(u), nil
}

// List returns summaries of all users in table order.
func (s *CatalogService) List(_ context.Context) []UserView {
	all := s.table.Users()
	out := make([]UserView, 0, len(all))
	for _, u := range all {
		out = append(out, view(u))
	}
	return out
}

// NormalizeName trims and capitalizes the name of a user and returns it.
func (s *CatalogService) NormalizeName(ctx context.Context, username string) (string, error) {
	u, err := s.find(username)
	if err != nil {
		return "", err
	}

	before := u.Name
	if err := u.TrimCapitalizeName(); err != nil {
		return "", fmt.Errorf("error normalizing name: %w", err)
	}

	s.log.Debug(ctx, "name normalized", "username", username, "from", before, "to", u.Name)
	return u.Name, nil
}

// AddFavorite adds the catalog film with the given title to a user's favorites.
func (s *CatalogService) AddFavorite(ctx context.Context, username, filmTitle string) error {
	u, err := s.find(username)
	if err != nil {
		return err
	}

	film, err := s.catalog.FindFilm(filmTitle)
	if err != nil {
		return fmt.Errorf("film %q: %w", filmTitle, err)
	}

	if err := u.AddFavorite(film); err != nil {
		return fmt.Errorf("error adding favorite: %w", err)
	}

	s.log.Info(ctx, "favorite added", "username", username, "film", film.Title)
	return nil
}

// Favorites returns a user's favorites, most recent first.
func (s *CatalogService) Favorites(_ context.Context, username string) ([]favorites.Favorite, error) {
	u, err := s.find(username)
	if err != nil {
		return nil, err
	}
	return u.Favorites(), nil
}

// FavoriteGenre returns the most favorited genre of a user.
func (s *CatalogService) FavoriteGenre(_ context.Context, username string) (catalog.Genre, error) {
	u, err := s.find(username)
	if err != nil {
		return catalog.GenreNotFound, err
	}
	return u.FavoriteGenre(), nil
}

// FavsCountPerSeries counts a user's favorites that belong to the named series.
func (s *CatalogService) FavsCountPerSeries(_ context.Context, username, seriesTitle string) (int, error) {
	u, err := s.find(username)
	if err != nil {
		return 0, err
	}

	series, err := s.catalog.FindSeries(seriesTitle)
	if err != nil {
		return 0, fmt.Errorf("series %q: %w", seriesTitle, err)
	}
	return u.FavsCountPerSeries(series), nil
}

// FavsLengthInMin returns the total runtime of a user's favorites in minutes.
func (s *CatalogService) FavsLengthInMin(_ context.Context, username string) (int, error) {
	u, err := s.find(username)
	if err != nil {
		return 0, err
	}
	return u.FavsLengthInMin(), nil
}

// Films lists the catalog.
func (s *CatalogService) Films(_ context.Context) []catalog.Film {
	return s.catalog.Films()
}

// Close frees the user table.
func (s *CatalogService) Close(ctx context.Context) {
	n := s.table.Size()
	s.table.Free()
	s.log.Debug(ctx, "user table released", "users", n)
}

func (s *CatalogService) find(username string) (*users.User, error) {
	u := s.table.Find(username)
	if u == nil {
		return nil, fmt.Errorf("user %q: %w", username, common.ErrorNotFound)
	}
	return u, nil
}

func view(u *users.User) UserView {
	return UserView{
		Username:  u.Username,
		Name:      u.Name,
		Mail:      u.Mail,
		Favorites: len(u.Favorites()),
	}
}
