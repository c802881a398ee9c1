package service

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/movielines/internal/model"
	"github.com/user/movielines/internal/repository"
)

// newConversationBody builds a POST body between c1 and c2 with one line per
// listed speaker.
func newConversationBody(c1, c2 int, speakers ...int) *model.NewConversation {
	req := &model.NewConversation{
		Character1ID: c1,
		Character2ID: c2,
	}
	for i, s := range speakers {
		req.Lines = append(req.Lines, model.NewLine{
			CharacterID: s,
			LineText:    fmt.Sprintf("line %d", i+1),
		})
	}
	return req
}

func tableCounts(t *testing.T, store *repository.MemStore) (convs, lines int) {
	t.Helper()
	maxConv, err := store.MaxConversationID()
	require.NoError(t, err)
	maxLine, err := store.MaxLineID()
	require.NoError(t, err)
	return maxConv, maxLine
}

func TestAddConversation(t *testing.T) {
	store := newTestStore()
	w := NewWriter(store, nil, nil)

	prevConv, prevLine := tableCounts(t, store)
	kat, err := store.GetCharacter(208)
	require.NoError(t, err)
	patrick, err := store.GetCharacter(209)
	require.NoError(t, err)

	convID, err := w.AddConversation(13, newConversationBody(208, 209, 208, 209, 208))
	require.NoError(t, err)
	assert.Equal(t, prevConv+1, convID)

	conv, err := store.GetConversation(convID)
	require.NoError(t, err)
	assert.Equal(t, 208, conv.Character1ID)
	assert.Equal(t, 209, conv.Character2ID)
	assert.Equal(t, 13, conv.MovieID)

	lines, err := store.LinesOfConversation(convID)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Greater(t, l.ID, prevLine)
		assert.Equal(t, 13, l.MovieID)
		assert.Equal(t, convID, l.ConversationID)
	}

	// line_sort is the contiguous 1..N submission order.
	sorts := map[int]int{}
	for _, l := range lines {
		sorts[l.LineSort] = l.CharacterID
	}
	assert.Equal(t, map[int]int{1: 208, 2: 209, 3: 208}, sorts)

	// Speaker counters moved by their contributed lines.
	katAfter, err := store.GetCharacter(208)
	require.NoError(t, err)
	patrickAfter, err := store.GetCharacter(209)
	require.NoError(t, err)
	assert.Equal(t, kat.NumLines+2, katAfter.NumLines)
	assert.Equal(t, patrick.NumLines+1, patrickAfter.NumLines)
}

func TestAddConversationEmptyLines(t *testing.T) {
	store := newTestStore()
	w := NewWriter(store, nil, nil)

	convID, err := w.AddConversation(13, newConversationBody(208, 209))
	require.NoError(t, err)

	lines, err := store.LinesOfConversation(convID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestAddConversationUnknownMovie(t *testing.T) {
	store := newTestStore()
	w := NewWriter(store, nil, nil)

	_, err := w.AddConversation(99999, newConversationBody(208, 209))
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestAddConversationUnknownCharacter(t *testing.T) {
	store := newTestStore()
	w := NewWriter(store, nil, nil)

	_, err := w.AddConversation(13, newConversationBody(208, 99999))
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestAddConversationCharacterFromOtherMovie(t *testing.T) {
	store := newTestStore()
	w := NewWriter(store, nil, nil)

	// ALICE belongs to movie 14.
	_, err := w.AddConversation(13, newConversationBody(208, 301))
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestAddConversationIdenticalEndpoints(t *testing.T) {
	store := newTestStore()
	w := NewWriter(store, nil, nil)

	prevConv, prevLine := tableCounts(t, store)

	_, err := w.AddConversation(13, newConversationBody(208, 208, 208))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	conv, line := tableCounts(t, store)
	assert.Equal(t, prevConv, conv)
	assert.Equal(t, prevLine, line)
}

func TestAddConversationForeignSpeaker(t *testing.T) {
	store := newTestStore()
	w := NewWriter(store, nil, nil)

	prevConv, prevLine := tableCounts(t, store)
	kat, err := store.GetCharacter(208)
	require.NoError(t, err)

	// Last line spoken by BIANCA, who is not an endpoint. Nothing at all may
	// be persisted, including the earlier valid lines.
	_, err = w.AddConversation(13, newConversationBody(208, 209, 208, 209, 210))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	conv, line := tableCounts(t, store)
	assert.Equal(t, prevConv, conv)
	assert.Equal(t, prevLine, line)

	katAfter, err := store.GetCharacter(208)
	require.NoError(t, err)
	assert.Equal(t, kat.NumLines, katAfter.NumLines)
}

func TestAddConversationConcurrentIDsDistinct(t *testing.T) {
	store := newTestStore()
	w := NewWriter(store, nil, nil)

	prevConv, prevLine := tableCounts(t, store)

	const n = 16
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := w.AddConversation(13, newConversationBody(208, 209, 208, 209))
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "conversation id %d allocated twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	conv, line := tableCounts(t, store)
	assert.Equal(t, prevConv+n, conv)
	assert.Equal(t, prevLine+2*n, line)
}

func TestWriterFlushesCaches(t *testing.T) {
	store := newTestStore()
	agg := NewAggregator(store, time.Minute)
	lister := NewLister(store, 16, time.Minute)
	w := NewWriter(store, agg, lister)

	before, err := lister.ListCharacters("kat", model.CharacterSortLines, 50, 0)
	require.NoError(t, err)
	require.NotEmpty(t, before)
	katBefore := before[0].NumberOfLines

	_, err = w.AddConversation(13, newConversationBody(208, 209, 208, 208))
	require.NoError(t, err)

	after, err := lister.ListCharacters("kat", model.CharacterSortLines, 50, 0)
	require.NoError(t, err)
	require.NotEmpty(t, after)
	assert.Equal(t, katBefore+2, after[0].NumberOfLines)
}
