package repository

import (
	"errors"

	"github.com/user/movielines/internal/model"
	"gorm.io/gorm"
)

// GetMovie looks up a movie by id.
func (s *DBStore) GetMovie(id int) (*model.Movie, error) {
	var movie model.Movie
	err := s.db.First(&movie, "movie_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Movies returns all movies in no guaranteed order.
func (s *DBStore) Movies() ([]model.Movie, error) {
	var movies []model.Movie
	if err := s.db.Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}
