package repository

import (
	"errors"

	"github.com/user/movielines/internal/model"
	"gorm.io/gorm"
)

// GetLine looks up a line by id.
func (s *DBStore) GetLine(id int) (*model.Line, error) {
	var line model.Line
	err := s.db.First(&line, "line_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// LinesOfConversation returns the lines of one conversation.
func (s *DBStore) LinesOfConversation(conversationID int) ([]model.Line, error) {
	var lines []model.Line
	if err := s.db.Where("conversation_id = ?", conversationID).Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// LinesOfCharacter returns the lines spoken by one character.
func (s *DBStore) LinesOfCharacter(characterID int) ([]model.Line, error) {
	var lines []model.Line
	if err := s.db.Where("character_id = ?", characterID).Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// LinesOfMovie returns every line of one movie.
func (s *DBStore) LinesOfMovie(movieID int) ([]model.Line, error) {
	var lines []model.Line
	if err := s.db.Where("movie_id = ?", movieID).Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// MaxLineID returns the current maximum line id, 0 when the table is empty.
func (s *DBStore) MaxLineID() (int, error) {
	var max int
	err := s.db.Model(&model.Line{}).
		Select("COALESCE(MAX(line_id), 0)").
		Row().Scan(&max)
	if err != nil {
		return 0, err
	}
	return max, nil
}
