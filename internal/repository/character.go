package repository

import (
	"errors"

	"github.com/user/movielines/internal/model"
	"gorm.io/gorm"
)

// GetCharacter looks up a character by id.
func (s *DBStore) GetCharacter(id int) (*model.Character, error) {
	var ch model.Character
	err := s.db.First(&ch, "character_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// Characters returns all characters in no guaranteed order.
func (s *DBStore) Characters() ([]model.Character, error) {
	var chars []model.Character
	if err := s.db.Find(&chars).Error; err != nil {
		return nil, err
	}
	return chars, nil
}

// CharactersOfMovie returns the characters belonging to one movie.
func (s *DBStore) CharactersOfMovie(movieID int) ([]model.Character, error) {
	var chars []model.Character
	if err := s.db.Where("movie_id = ?", movieID).Find(&chars).Error; err != nil {
		return nil, err
	}
	return chars, nil
}
