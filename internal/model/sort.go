package model

import "fmt"

// CharacterSort selects the ordering of the character listing. Values form a
// closed set; anything else is a parse error, never a silent default.
type CharacterSort string

const (
	CharacterSortName  CharacterSort = "character"
	CharacterSortMovie CharacterSort = "movie"
	CharacterSortLines CharacterSort = "number_of_lines"
)

// ParseCharacterSort validates a raw query value. Empty means the default.
func ParseCharacterSort(s string) (CharacterSort, error) {
	switch CharacterSort(s) {
	case CharacterSortName, CharacterSortMovie, CharacterSortLines:
		return CharacterSort(s), nil
	case "":
		return CharacterSortName, nil
	}
	return "", fmt.Errorf("unknown character sort %q", s)
}

// MovieSort selects the ordering of the movie listing.
type MovieSort string

const (
	MovieSortTitle  MovieSort = "movie_title"
	MovieSortYear   MovieSort = "year"
	MovieSortRating MovieSort = "rating"
)

// ParseMovieSort validates a raw query value. Empty means the default.
func ParseMovieSort(s string) (MovieSort, error) {
	switch MovieSort(s) {
	case MovieSortTitle, MovieSortYear, MovieSortRating:
		return MovieSort(s), nil
	case "":
		return MovieSortTitle, nil
	}
	return "", fmt.Errorf("unknown movie sort %q", s)
}
