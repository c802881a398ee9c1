package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/movielines/internal/model"
)

func seededMemStore() *MemStore {
	s := NewMemStore()
	s.PutMovie(model.Movie{ID: 1, Title: "First", Year: 1990})
	s.PutCharacter(model.Character{ID: 10, Name: "A", MovieID: 1, NumLines: 1})
	s.PutCharacter(model.Character{ID: 11, Name: "B", MovieID: 1})
	s.PutConversation(model.Conversation{ID: 100, Character1ID: 10, Character2ID: 11, MovieID: 1})
	s.PutLine(model.Line{ID: 1000, CharacterID: 10, MovieID: 1, ConversationID: 100, LineSort: 1, Text: "hey"})
	return s
}

func TestMemStoreLookups(t *testing.T) {
	s := seededMemStore()

	m, err := s.GetMovie(1)
	require.NoError(t, err)
	assert.Equal(t, "First", m.Title)

	_, err = s.GetMovie(2)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetCharacter(99)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetConversation(99)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetLine(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreCopiesOnRead(t *testing.T) {
	s := seededMemStore()

	ch, err := s.GetCharacter(10)
	require.NoError(t, err)
	ch.Name = "MUTATED"

	again, err := s.GetCharacter(10)
	require.NoError(t, err)
	assert.Equal(t, "A", again.Name)
}

func TestMemStoreBulkPredicates(t *testing.T) {
	s := seededMemStore()

	convs, err := s.ConversationsOfCharacter(11)
	require.NoError(t, err)
	assert.Len(t, convs, 1)

	lines, err := s.LinesOfMovie(1)
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	lines, err = s.LinesOfCharacter(11)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestMemStoreMaxIDs(t *testing.T) {
	s := NewMemStore()

	max, err := s.MaxConversationID()
	require.NoError(t, err)
	assert.Equal(t, 0, max)
	max, err = s.MaxLineID()
	require.NoError(t, err)
	assert.Equal(t, 0, max)

	s = seededMemStore()
	max, err = s.MaxConversationID()
	require.NoError(t, err)
	assert.Equal(t, 100, max)
	max, err = s.MaxLineID()
	require.NoError(t, err)
	assert.Equal(t, 1000, max)
}

func TestMemStoreInsertConversation(t *testing.T) {
	s := seededMemStore()

	conv := &model.Conversation{ID: 101, Character1ID: 10, Character2ID: 11, MovieID: 1}
	lines := []model.Line{
		{ID: 1001, CharacterID: 11, MovieID: 1, ConversationID: 101, LineSort: 1, Text: "one"},
		{ID: 1002, CharacterID: 10, MovieID: 1, ConversationID: 101, LineSort: 2, Text: "two"},
	}
	require.NoError(t, s.InsertConversation(conv, lines))

	got, err := s.GetConversation(101)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Character1ID)

	stored, err := s.LinesOfConversation(101)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	a, err := s.GetCharacter(10)
	require.NoError(t, err)
	assert.Equal(t, 2, a.NumLines)
	b, err := s.GetCharacter(11)
	require.NoError(t, err)
	assert.Equal(t, 1, b.NumLines)
}
