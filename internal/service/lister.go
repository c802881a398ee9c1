package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/user/movielines/internal/model"
	"github.com/user/movielines/internal/repository"
	"github.com/user/movielines/internal/utils"
)

const (
	// MinLimit and MaxLimit bound the page size of both listings.
	MinLimit = 1
	MaxLimit = 250
	// DefaultLimit applies when the client omits the limit parameter.
	DefaultLimit = 50
)

// Lister implements the filtered, sorted, paginated listings over characters
// and movies. Pagination is applied after the full filter+sort, never pushed
// down partially, so the pagination concatenation law holds for any
// filter/sort combination.
type Lister struct {
	store      repository.Store
	characters *utils.ListCache[[]model.CharacterListItem]
	movies     *utils.ListCache[[]model.MovieListItem]
}

// NewLister creates a lister with result caches of the given size and TTL.
func NewLister(store repository.Store, cacheSize int, ttl time.Duration) *Lister {
	return &Lister{
		store:      store,
		characters: utils.NewListCache[[]model.CharacterListItem](cacheSize, ttl),
		movies:     utils.NewListCache[[]model.MovieListItem](cacheSize, ttl),
	}
}

// FlushCache drops all cached listings. Called by the writer after inserts.
func (l *Lister) FlushCache() {
	l.characters.Clear()
	l.movies.Clear()
}

func checkPage(limit, offset int) error {
	if limit < MinLimit || limit > MaxLimit {
		return fmt.Errorf("limit must be between %d and %d, got %d: %w",
			MinLimit, MaxLimit, limit, ErrInvalidArgument)
	}
	if offset < 0 {
		return fmt.Errorf("offset must not be negative, got %d: %w", offset, ErrInvalidArgument)
	}
	return nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return items[:0]
	}
	items = items[offset:]
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// ListCharacters returns characters whose name contains the filter
// (case-insensitive; empty filter matches all). Characters with an empty name
// are always excluded. Ties on the sort key break by character id ascending.
func (l *Lister) ListCharacters(name string, sortBy model.CharacterSort, limit, offset int) ([]model.CharacterListItem, error) {
	if err := checkPage(limit, offset); err != nil {
		return nil, err
	}

	needle := strings.ToLower(name)
	key := fmt.Sprintf("%s|%s|%d|%d", needle, sortBy, limit, offset)
	if cached, ok := l.characters.Get(key); ok {
		return cached, nil
	}

	chars, err := l.store.Characters()
	if err != nil {
		return nil, err
	}
	movies, err := l.store.Movies()
	if err != nil {
		return nil, err
	}
	titles := make(map[int]string, len(movies))
	for _, m := range movies {
		titles[m.ID] = m.Title
	}

	items := make([]model.CharacterListItem, 0, len(chars))
	for _, c := range chars {
		if c.Name == "" {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(c.Name), needle) {
			continue
		}
		items = append(items, model.CharacterListItem{
			CharacterID:   c.ID,
			Character:     c.Name,
			Movie:         titles[c.MovieID],
			NumberOfLines: c.NumLines,
		})
	}

	switch sortBy {
	case model.CharacterSortName:
		sort.Slice(items, func(i, j int) bool {
			if items[i].Character != items[j].Character {
				return items[i].Character < items[j].Character
			}
			return items[i].CharacterID < items[j].CharacterID
		})
	case model.CharacterSortMovie:
		sort.Slice(items, func(i, j int) bool {
			if items[i].Movie != items[j].Movie {
				return items[i].Movie < items[j].Movie
			}
			return items[i].CharacterID < items[j].CharacterID
		})
	case model.CharacterSortLines:
		sort.Slice(items, func(i, j int) bool {
			if items[i].NumberOfLines != items[j].NumberOfLines {
				return items[i].NumberOfLines > items[j].NumberOfLines
			}
			return items[i].CharacterID < items[j].CharacterID
		})
	default:
		return nil, fmt.Errorf("unknown character sort %q: %w", sortBy, ErrInvalidArgument)
	}

	items = paginate(items, limit, offset)
	l.characters.Set(key, items)
	return items, nil
}

// ListMovies returns movies whose title contains the filter, with the same
// pagination and tie-break contract as ListCharacters.
func (l *Lister) ListMovies(name string, sortBy model.MovieSort, limit, offset int) ([]model.MovieListItem, error) {
	if err := checkPage(limit, offset); err != nil {
		return nil, err
	}

	needle := strings.ToLower(name)
	key := fmt.Sprintf("%s|%s|%d|%d", needle, sortBy, limit, offset)
	if cached, ok := l.movies.Get(key); ok {
		return cached, nil
	}

	movies, err := l.store.Movies()
	if err != nil {
		return nil, err
	}

	items := make([]model.MovieListItem, 0, len(movies))
	for _, m := range movies {
		if needle != "" && !strings.Contains(strings.ToLower(m.Title), needle) {
			continue
		}
		items = append(items, model.MovieListItem{
			MovieID:    m.ID,
			MovieTitle: m.Title,
			Year:       m.Year,
			IMDBRating: m.IMDBRating,
			IMDBVotes:  m.IMDBVotes,
		})
	}

	switch sortBy {
	case model.MovieSortTitle:
		sort.Slice(items, func(i, j int) bool {
			if items[i].MovieTitle != items[j].MovieTitle {
				return items[i].MovieTitle < items[j].MovieTitle
			}
			return items[i].MovieID < items[j].MovieID
		})
	case model.MovieSortYear:
		sort.Slice(items, func(i, j int) bool {
			if items[i].Year != items[j].Year {
				return items[i].Year < items[j].Year
			}
			return items[i].MovieID < items[j].MovieID
		})
	case model.MovieSortRating:
		sort.Slice(items, func(i, j int) bool {
			if items[i].IMDBRating != items[j].IMDBRating {
				return items[i].IMDBRating > items[j].IMDBRating
			}
			return items[i].MovieID < items[j].MovieID
		})
	default:
		return nil, fmt.Errorf("unknown movie sort %q: %w", sortBy, ErrInvalidArgument)
	}

	items = paginate(items, limit, offset)
	l.movies.Set(key, items)
	return items, nil
}
