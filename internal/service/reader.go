package service

import (
	"fmt"
	"sort"

	"github.com/user/movielines/internal/model"
	"github.com/user/movielines/internal/repository"
)

// Reader shapes the simple line-centric read views: a single line with joined
// names, a conversation's ordered transcript, and a character's lines.
type Reader struct {
	store repository.Store
}

// NewReader creates a reader over the store.
func NewReader(store repository.Store) *Reader {
	return &Reader{store: store}
}

// LineDetail returns one line with its character and movie names joined in.
func (r *Reader) LineDetail(id int) (*model.LineDetail, error) {
	line, err := r.store.GetLine(id)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", id, err)
	}
	ch, err := r.store.GetCharacter(line.CharacterID)
	if err != nil {
		return nil, err
	}
	movie, err := r.store.GetMovie(line.MovieID)
	if err != nil {
		return nil, err
	}
	return &model.LineDetail{
		LineID:         line.ID,
		LineText:       line.Text,
		Character:      ch.Name,
		Movie:          movie.Title,
		ConversationID: line.ConversationID,
	}, nil
}

// ConversationLines returns a conversation's transcript ordered by line_sort
// ascending. An unknown conversation id, or one without any lines, is a
// not-found error.
func (r *Reader) ConversationLines(id int) ([]model.ConversationLine, error) {
	conv, err := r.store.GetConversation(id)
	if err != nil {
		return nil, fmt.Errorf("conversation %d: %w", id, err)
	}
	lines, err := r.store.LinesOfConversation(id)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("conversation %d has no lines: %w", id, repository.ErrNotFound)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].LineSort < lines[j].LineSort })

	movie, err := r.store.GetMovie(conv.MovieID)
	if err != nil {
		return nil, err
	}
	// Every line speaker is one of the two endpoints.
	names := make(map[int]string, 2)
	for _, charID := range []int{conv.Character1ID, conv.Character2ID} {
		ch, err := r.store.GetCharacter(charID)
		if err != nil {
			return nil, err
		}
		names[ch.ID] = ch.Name
	}

	out := make([]model.ConversationLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, model.ConversationLine{
			LineID:    l.ID,
			Character: names[l.CharacterID],
			Movie:     movie.Title,
			LineText:  l.Text,
		})
	}
	return out, nil
}

// CharacterLines returns every line spoken by a character, ascending by line
// id (chronological order in the corpus).
func (r *Reader) CharacterLines(id int) ([]model.CharacterLine, error) {
	ch, err := r.store.GetCharacter(id)
	if err != nil {
		return nil, fmt.Errorf("character %d: %w", id, err)
	}
	lines, err := r.store.LinesOfCharacter(id)
	if err != nil {
		return nil, err
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })

	titles := make(map[int]string)
	out := make([]model.CharacterLine, 0, len(lines))
	for _, l := range lines {
		title, ok := titles[l.MovieID]
		if !ok {
			movie, err := r.store.GetMovie(l.MovieID)
			if err != nil {
				return nil, err
			}
			title = movie.Title
			titles[l.MovieID] = title
		}
		out = append(out, model.CharacterLine{
			LineID:         l.ID,
			Character:      ch.Name,
			Movie:          title,
			ConversationID: l.ConversationID,
			LineText:       l.Text,
		})
	}
	return out, nil
}
