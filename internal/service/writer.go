package service

import (
	"fmt"
	"sync"

	"github.com/user/movielines/internal/model"
	"github.com/user/movielines/internal/repository"
)

// Writer appends conversations to the corpus. The max-id-then-insert sequence
// is a read-modify-write, so the whole allocate+insert runs under mu; the
// database store additionally wraps the insert in one transaction. Reads are
// unaffected.
type Writer struct {
	mu     sync.Mutex
	store  repository.Store
	agg    *Aggregator
	lister *Lister
}

// NewWriter creates a writer. agg and lister may be nil; when set, their
// caches are flushed after every successful insert.
func NewWriter(store repository.Store, agg *Aggregator, lister *Lister) *Writer {
	return &Writer{
		store:  store,
		agg:    agg,
		lister: lister,
	}
}

// AddConversation validates and persists a new conversation with its lines,
// returning the fresh conversation id. All validation completes before any row
// is persisted; a rejected request leaves no partial state.
//
// Failure contract: unknown movie, unknown character, or a character from a
// different movie is a not-found error; identical endpoints or a line speaker
// outside the two endpoints is an invalid-argument error.
func (w *Writer) AddConversation(movieID int, req *model.NewConversation) (int, error) {
	if _, err := w.store.GetMovie(movieID); err != nil {
		return 0, fmt.Errorf("movie %d: %w", movieID, err)
	}

	c1, err := w.resolveCharacter(req.Character1ID, movieID)
	if err != nil {
		return 0, err
	}
	c2, err := w.resolveCharacter(req.Character2ID, movieID)
	if err != nil {
		return 0, err
	}
	if c1.ID == c2.ID {
		return 0, fmt.Errorf("conversation endpoints must be two distinct characters: %w", ErrInvalidArgument)
	}
	for i, l := range req.Lines {
		if l.CharacterID != c1.ID && l.CharacterID != c2.ID {
			return 0, fmt.Errorf("line %d: speaker %d is not a conversation endpoint: %w",
				i+1, l.CharacterID, ErrInvalidArgument)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	maxConvID, err := w.store.MaxConversationID()
	if err != nil {
		return 0, err
	}
	maxLineID, err := w.store.MaxLineID()
	if err != nil {
		return 0, err
	}

	conv := &model.Conversation{
		ID:           maxConvID + 1,
		Character1ID: c1.ID,
		Character2ID: c2.ID,
		MovieID:      movieID,
	}
	lines := make([]model.Line, len(req.Lines))
	for i, l := range req.Lines {
		maxLineID++
		lines[i] = model.Line{
			ID:             maxLineID,
			CharacterID:    l.CharacterID,
			MovieID:        movieID,
			ConversationID: conv.ID,
			LineSort:       i + 1,
			Text:           l.LineText,
		}
	}

	if err := w.store.InsertConversation(conv, lines); err != nil {
		return 0, err
	}

	if w.agg != nil {
		w.agg.FlushCache()
	}
	if w.lister != nil {
		w.lister.FlushCache()
	}
	return conv.ID, nil
}

func (w *Writer) resolveCharacter(id, movieID int) (*model.Character, error) {
	ch, err := w.store.GetCharacter(id)
	if err != nil {
		return nil, fmt.Errorf("character %d: %w", id, err)
	}
	if ch.MovieID != movieID {
		return nil, fmt.Errorf("character %d does not belong to movie %d: %w",
			id, movieID, repository.ErrNotFound)
	}
	return ch, nil
}
