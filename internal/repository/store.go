package repository

import (
	"errors"

	"github.com/user/movielines/internal/model"
)

// ErrNotFound is returned by single-row lookups when the id does not exist.
// It is a normal control-flow outcome, not an exceptional condition; callers
// translate it per operation.
var ErrNotFound = errors.New("record not found")

// Store is the read/write contract over the four corpus tables. Bulk reads
// return rows in no guaranteed order; ordering is the caller's responsibility.
//
// InsertConversation is atomic: the conversation row, its line rows and the
// per-speaker num_lines increments all land together or not at all. The store
// does not serialize id allocation — callers that allocate ids via the Max*ID
// methods must hold their own writer lock around allocate+insert.
type Store interface {
	GetMovie(id int) (*model.Movie, error)
	GetCharacter(id int) (*model.Character, error)
	GetConversation(id int) (*model.Conversation, error)
	GetLine(id int) (*model.Line, error)

	Movies() ([]model.Movie, error)
	Characters() ([]model.Character, error)
	CharactersOfMovie(movieID int) ([]model.Character, error)
	ConversationsOfCharacter(characterID int) ([]model.Conversation, error)
	LinesOfConversation(conversationID int) ([]model.Line, error)
	LinesOfCharacter(characterID int) ([]model.Line, error)
	LinesOfMovie(movieID int) ([]model.Line, error)

	MaxConversationID() (int, error)
	MaxLineID() (int, error)
	InsertConversation(conv *model.Conversation, lines []model.Line) error
}
