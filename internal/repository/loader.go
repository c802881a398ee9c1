package repository

import (
	"github.com/user/movielines/internal/model"
)

// Bulk-load support for the one-shot corpus importer. These are deliberately
// not part of the Store interface; only bootstrap code touches them.

// Migrate creates the four corpus tables.
func (s *DBStore) Migrate() error {
	return s.db.AutoMigrate(
		&model.Movie{},
		&model.Character{},
		&model.Conversation{},
		&model.Line{},
	)
}

// BulkInsertMovies inserts movies in batches.
func (s *DBStore) BulkInsertMovies(movies []model.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	return s.db.CreateInBatches(movies, 500).Error
}

// BulkInsertCharacters inserts characters in batches.
func (s *DBStore) BulkInsertCharacters(chars []model.Character) error {
	if len(chars) == 0 {
		return nil
	}
	return s.db.CreateInBatches(chars, 500).Error
}

// BulkInsertConversations inserts conversations in batches.
func (s *DBStore) BulkInsertConversations(convs []model.Conversation) error {
	if len(convs) == 0 {
		return nil
	}
	return s.db.CreateInBatches(convs, 500).Error
}

// BulkInsertLines inserts lines in batches.
func (s *DBStore) BulkInsertLines(lines []model.Line) error {
	if len(lines) == 0 {
		return nil
	}
	return s.db.CreateInBatches(lines, 500).Error
}
