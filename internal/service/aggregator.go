package service

import (
	"fmt"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/user/movielines/internal/model"
	"github.com/user/movielines/internal/repository"
	"golang.org/x/sync/singleflight"
)

// topCharacterLimit bounds the per-movie character ranking.
const topCharacterLimit = 5

// Aggregator computes the derived rankings: a character's conversation
// partners and a movie's top speaking characters. Assembled detail views are
// cached; concurrent misses on the same key collapse through singleflight.
type Aggregator struct {
	store   repository.Store
	details *gocache.Cache
	sf      singleflight.Group
}

// NewAggregator creates an aggregator with a detail-view cache of the given TTL.
func NewAggregator(store repository.Store, ttl time.Duration) *Aggregator {
	return &Aggregator{
		store:   store,
		details: gocache.New(ttl, 2*ttl),
	}
}

// FlushCache drops all cached detail views. The writer calls this after every
// successful insert so counters and rankings never go stale.
func (a *Aggregator) FlushCache() {
	a.details.Flush()
}

// CharacterDetail assembles the GET /characters/{id} view.
func (a *Aggregator) CharacterDetail(id int) (*model.CharacterDetail, error) {
	key := fmt.Sprintf("character:%d", id)
	if v, ok := a.details.Get(key); ok {
		return v.(*model.CharacterDetail), nil
	}

	v, err, _ := a.sf.Do(key, func() (interface{}, error) {
		detail, err := a.buildCharacterDetail(id)
		if err != nil {
			return nil, err
		}
		a.details.SetDefault(key, detail)
		return detail, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.CharacterDetail), nil
}

func (a *Aggregator) buildCharacterDetail(id int) (*model.CharacterDetail, error) {
	ch, err := a.store.GetCharacter(id)
	if err != nil {
		return nil, fmt.Errorf("character %d: %w", id, err)
	}
	movie, err := a.store.GetMovie(ch.MovieID)
	if err != nil {
		return nil, fmt.Errorf("movie %d of character %d: %w", ch.MovieID, id, err)
	}
	partners, err := a.TopPartners(ch)
	if err != nil {
		return nil, err
	}

	return &model.CharacterDetail{
		CharacterID:      ch.ID,
		Character:        ch.Name,
		Movie:            movie.Title,
		Gender:           model.NullableGender(ch.Gender),
		TopConversations: partners,
	}, nil
}

// TopPartners ranks the characters that share conversations with ch within
// its movie. The metric is conversation-level: every line of a shared
// conversation counts toward the partner's total, whoever spoke it. Ordering
// is total descending, then partner id ascending. A character with no
// conversations yields an empty list, never an error.
func (a *Aggregator) TopPartners(ch *model.Character) ([]model.TopPartner, error) {
	convs, err := a.store.ConversationsOfCharacter(ch.ID)
	if err != nil {
		return nil, err
	}
	movieLines, err := a.store.LinesOfMovie(ch.MovieID)
	if err != nil {
		return nil, err
	}
	linesPerConv := make(map[int]int)
	for _, l := range movieLines {
		linesPerConv[l.ConversationID]++
	}

	totals := make(map[int]int)
	for _, conv := range convs {
		if conv.MovieID != ch.MovieID {
			continue
		}
		other := conv.Character2ID
		if other == ch.ID {
			other = conv.Character1ID
		}
		totals[other] += linesPerConv[conv.ID]
	}

	peers, err := a.store.CharactersOfMovie(ch.MovieID)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]model.Character, len(peers))
	for _, p := range peers {
		byID[p.ID] = p
	}

	partners := make([]model.TopPartner, 0, len(totals))
	for id, total := range totals {
		p := byID[id]
		partners = append(partners, model.TopPartner{
			CharacterID:   id,
			Character:     p.Name,
			Gender:        model.NullableGender(p.Gender),
			LinesTogether: total,
		})
	}
	sort.Slice(partners, func(i, j int) bool {
		if partners[i].LinesTogether != partners[j].LinesTogether {
			return partners[i].LinesTogether > partners[j].LinesTogether
		}
		return partners[i].CharacterID < partners[j].CharacterID
	})
	return partners, nil
}

// MovieDetail assembles the GET /movies/{id} view.
func (a *Aggregator) MovieDetail(id int) (*model.MovieDetail, error) {
	key := fmt.Sprintf("movie:%d", id)
	if v, ok := a.details.Get(key); ok {
		return v.(*model.MovieDetail), nil
	}

	v, err, _ := a.sf.Do(key, func() (interface{}, error) {
		movie, err := a.store.GetMovie(id)
		if err != nil {
			return nil, fmt.Errorf("movie %d: %w", id, err)
		}
		top, err := a.TopCharacters(id)
		if err != nil {
			return nil, err
		}
		detail := &model.MovieDetail{
			MovieID:       movie.ID,
			Title:         movie.Title,
			TopCharacters: top,
		}
		a.details.SetDefault(key, detail)
		return detail, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.MovieDetail), nil
}

// TopCharacters ranks a movie's speaking characters by line count descending,
// id ascending on ties, truncated to the top 5. A movie with fewer than five
// speakers returns all of them.
func (a *Aggregator) TopCharacters(movieID int) ([]model.TopCharacter, error) {
	lines, err := a.store.LinesOfMovie(movieID)
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int)
	for _, l := range lines {
		counts[l.CharacterID]++
	}

	chars, err := a.store.CharactersOfMovie(movieID)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(chars))
	for _, c := range chars {
		names[c.ID] = c.Name
	}

	top := make([]model.TopCharacter, 0, len(counts))
	for id, n := range counts {
		top = append(top, model.TopCharacter{
			CharacterID: id,
			Character:   names[id],
			NumLines:    n,
		})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].NumLines != top[j].NumLines {
			return top[i].NumLines > top[j].NumLines
		}
		return top[i].CharacterID < top[j].CharacterID
	})
	if len(top) > topCharacterLimit {
		top = top[:topCharacterLimit]
	}
	return top, nil
}
