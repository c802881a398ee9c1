package repository

import (
	"errors"

	"github.com/user/movielines/internal/model"
	"gorm.io/gorm"
)

// GetConversation looks up a conversation by id.
func (s *DBStore) GetConversation(id int) (*model.Conversation, error) {
	var conv model.Conversation
	err := s.db.First(&conv, "conversation_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// ConversationsOfCharacter returns every conversation where the character is
// either endpoint.
func (s *DBStore) ConversationsOfCharacter(characterID int) ([]model.Conversation, error) {
	var convs []model.Conversation
	err := s.db.Where("character1_id = ? OR character2_id = ?", characterID, characterID).
		Find(&convs).Error
	if err != nil {
		return nil, err
	}
	return convs, nil
}

// MaxConversationID returns the current maximum conversation id, 0 when the
// table is empty.
func (s *DBStore) MaxConversationID() (int, error) {
	var max int
	err := s.db.Model(&model.Conversation{}).
		Select("COALESCE(MAX(conversation_id), 0)").
		Row().Scan(&max)
	if err != nil {
		return 0, err
	}
	return max, nil
}

// InsertConversation persists a conversation with its lines and bumps each
// speaker's num_lines counter, all inside one transaction.
func (s *DBStore) InsertConversation(conv *model.Conversation, lines []model.Line) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(conv).Error; err != nil {
			return err
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}

		perSpeaker := make(map[int]int)
		for _, l := range lines {
			perSpeaker[l.CharacterID]++
		}
		for charID, n := range perSpeaker {
			err := tx.Model(&model.Character{}).
				Where("character_id = ?", charID).
				UpdateColumn("num_lines", gorm.Expr("num_lines + ?", n)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
