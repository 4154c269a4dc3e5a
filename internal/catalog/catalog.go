// Package catalog provides the film/series/genre value types and a read-only
// film catalog the user table draws favorites from.
//
// A Catalog is built once from a JSON seed and never mutated afterwards:
//
//	{
//	  "series": [{"title": "Alien", "genre": "horror", "seasons": 1}],
//	  "films":  [{"title": "Aliens", "series": "Alien", "minutes": 137, "rating": 4.6}]
//	}
//
// Films reference their series by title. Default returns the built-in seed.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/uocflix/internal/common"
)

//go:embed default.json
var defaultSeed []byte

// seedFile is the JSON DTO decoded by Load. Values are copied into
// Series and Film after validation.
type seedFile struct {
	Series []seedSeries `json:"series"`
	Films  []seedFilm   `json:"films"`
}

type seedSeries struct {
	Title   string `json:"title"`
	Genre   Genre  `json:"genre"`
	Seasons int    `json:"seasons"`
}

type seedFilm struct {
	Title   string  `json:"title"`
	Series  string  `json:"series"`
	Minutes int     `json:"minutes"`
	Rating  float32 `json:"rating"`
}

// Catalog holds the series and films available for favoriting.
type Catalog struct {
	series []*Series
	films  []Film
}

// Load decodes a JSON seed from r.
func Load(r io.Reader) (*Catalog, error) {
	var seed seedFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{}
	for _, s := range seed.Series {
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("series without title: %w", common.ErrorInvalidInput)
		}
		if _, err := c.FindSeries(s.Title); err == nil {
			return nil, fmt.Errorf("series %q: %w", s.Title, common.ErrorDuplicated)
		}
		c.series = append(c.series, NewSeries(s.Title, s.Genre, s.Seasons))
	}

	for _, f := range seed.Films {
		series, err := c.FindSeries(f.Series)
		if err != nil {
			return nil, fmt.Errorf("film %q: series %q: %w", f.Title, f.Series, err)
		}
		if f.Minutes < 0 {
			return nil, fmt.Errorf("film %q: negative duration: %w", f.Title, common.ErrorInvalidInput)
		}
		c.films = append(c.films, Film{
			Title:    f.Title,
			Duration: time.Duration(f.Minutes) * time.Minute,
			Rating:   f.Rating,
			Series:   series,
		})
	}

	return c, nil
}

// LoadFile reads a JSON seed from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Default returns a catalog built from the embedded seed.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultSeed))
	if err != nil {
		panic(err)
	}
	return c
}

// FindSeries looks a series up by case-insensitive title.
func (c *Catalog) FindSeries(title string) (*Series, error) {
	for _, s := range c.series {
		if strings.EqualFold(s.Title, title) {
			return s, nil
		}
	}
	return nil, common.ErrorNotFound
}

// FindFilm looks a film up by case-insensitive title.
func (c *Catalog) FindFilm(title string) (Film, error) {
	for _, f := range c.films {
		if strings.EqualFold(f.Title, title) {
			return f, nil
		}
	}
	return Film{}, common.ErrorNotFound
}

// Films returns the films in seed order.
func (c *Catalog) Films() []Film {
	out := make([]Film, len(c.films))
	copy(out, c.films)
	return out
}

// SeriesList returns the series in seed order.
func (c *Catalog) SeriesList() []*Series {
	out := make([]*Series, len(c.series))
	copy(out, c.series)
	return out
}
