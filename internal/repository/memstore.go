package repository

import (
	"sync"

	"github.com/user/movielines/internal/model"
)

// MemStore is an in-memory Store over plain maps, used by tests and local
// experiments. Reads hand out copies so callers never alias store state.
type MemStore struct {
	mu            sync.RWMutex
	movies        map[int]model.Movie
	characters    map[int]model.Character
	conversations map[int]model.Conversation
	lines         map[int]model.Line
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		movies:        make(map[int]model.Movie),
		characters:    make(map[int]model.Character),
		conversations: make(map[int]model.Conversation),
		lines:         make(map[int]model.Line),
	}
}

// PutMovie seeds or replaces a movie row.
func (s *MemStore) PutMovie(m model.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies[m.ID] = m
}

// PutCharacter seeds or replaces a character row.
func (s *MemStore) PutCharacter(c model.Character) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.characters[c.ID] = c
}

// PutConversation seeds or replaces a conversation row.
func (s *MemStore) PutConversation(c model.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[c.ID] = c
}

// PutLine seeds or replaces a line row. The speaker's num_lines counter is
// not touched; seed counters explicitly via PutCharacter.
func (s *MemStore) PutLine(l model.Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines[l.ID] = l
}

func (s *MemStore) GetMovie(id int) (*model.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.movies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *MemStore) GetCharacter(id int) (*model.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.characters[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemStore) GetConversation(id int) (*model.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conversations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemStore) GetLine(id int) (*model.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lines[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &l, nil
}

func (s *MemStore) Movies() ([]model.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		out = append(out, m)
	}
	return out, nil
}

func (s *MemStore) Characters() ([]model.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Character, 0, len(s.characters))
	for _, c := range s.characters {
		out = append(out, c)
	}
	return out, nil
}

func (s *MemStore) CharactersOfMovie(movieID int) ([]model.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Character
	for _, c := range s.characters {
		if c.MovieID == movieID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemStore) ConversationsOfCharacter(characterID int) ([]model.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Conversation
	for _, c := range s.conversations {
		if c.Character1ID == characterID || c.Character2ID == characterID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemStore) LinesOfConversation(conversationID int) ([]model.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Line
	for _, l := range s.lines {
		if l.ConversationID == conversationID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *MemStore) LinesOfCharacter(characterID int) ([]model.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Line
	for _, l := range s.lines {
		if l.CharacterID == characterID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *MemStore) LinesOfMovie(movieID int) ([]model.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Line
	for _, l := range s.lines {
		if l.MovieID == movieID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *MemStore) MaxConversationID() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	max := 0
	for id := range s.conversations {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (s *MemStore) MaxLineID() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	max := 0
	for id := range s.lines {
		if id > max {
			max = id
		}
	}
	return max, nil
}

// InsertConversation applies the whole insert under one lock so readers never
// observe a conversation without its lines.
func (s *MemStore) InsertConversation(conv *model.Conversation, lines []model.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations[conv.ID] = *conv
	for _, l := range lines {
		s.lines[l.ID] = l
		ch := s.characters[l.CharacterID]
		ch.NumLines++
		s.characters[l.CharacterID] = ch
	}
	return nil
}
