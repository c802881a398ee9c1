package model

// Movie is one film from the dialogue corpus. Movies are loaded once by the
// corpus importer and never mutated through the API.
type Movie struct {
	ID         int     `json:"movie_id" gorm:"primaryKey;column:movie_id"`
	Title      string  `json:"title" gorm:"column:title"`
	Year       int     `json:"year" gorm:"column:year"`
	IMDBRating float64 `json:"imdb_rating" gorm:"column:imdb_rating"`
	IMDBVotes  int     `json:"imdb_votes" gorm:"column:imdb_votes"`
}

func (Movie) TableName() string { return "movies" }

// Character is a speaking role in a movie. NumLines is a derived counter,
// computed at import time and incremented when new lines are inserted.
type Character struct {
	ID       int    `json:"character_id" gorm:"primaryKey;column:character_id"`
	Name     string `json:"name" gorm:"column:name"`
	MovieID  int    `json:"movie_id" gorm:"column:movie_id;index"`
	Gender   string `json:"gender" gorm:"column:gender"`
	NumLines int    `json:"num_lines" gorm:"column:num_lines"`
}

func (Character) TableName() string { return "characters" }

// Conversation is an exchange between two distinct characters of one movie.
type Conversation struct {
	ID           int `json:"conversation_id" gorm:"primaryKey;column:conversation_id"`
	Character1ID int `json:"character1_id" gorm:"column:character1_id;index"`
	Character2ID int `json:"character2_id" gorm:"column:character2_id;index"`
	MovieID      int `json:"movie_id" gorm:"column:movie_id;index"`
}

func (Conversation) TableName() string { return "conversations" }

// Line is a single utterance. MovieID duplicates the conversation's movie for
// lookup convenience; LineSort is the 1-based position within the conversation,
// fixed at creation time.
type Line struct {
	ID             int    `json:"line_id" gorm:"primaryKey;column:line_id"`
	CharacterID    int    `json:"character_id" gorm:"column:character_id;index"`
	MovieID        int    `json:"movie_id" gorm:"column:movie_id;index"`
	ConversationID int    `json:"conversation_id" gorm:"column:conversation_id;index"`
	LineSort       int    `json:"line_sort" gorm:"column:line_sort"`
	Text           string `json:"line_text" gorm:"column:line_text"`
}

func (Line) TableName() string { return "lines" }
