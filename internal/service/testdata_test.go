package service

import (
	"github.com/user/movielines/internal/model"
	"github.com/user/movielines/internal/repository"
)

// newTestStore seeds a MemStore with a small three-movie corpus.
//
// Movie 13: KAT(208,f,3 lines), PATRICK(209,m,2), BIANCA(210,f,2),
// CAMERON(211,m,0), one unnamed character (212). Conversations: 500 KAT-PATRICK
// (3 lines), 501 KAT-BIANCA (2), 502 PATRICK-BIANCA (1), 504 KAT-CAMERON
// (no lines), 505 BIANCA-CAMERON (1).
// Movie 14: ALICE(301), BOB(302), conversation 503 (2 lines).
// Movie 15: six speakers DANNY..IRIS (3/3/2/2/1/1 lines) plus a second KAT(407)
// with no lines, conversations 601-603.
func newTestStore() *repository.MemStore {
	s := repository.NewMemStore()

	s.PutMovie(model.Movie{ID: 13, Title: "10 Things I Hate About You", Year: 1999, IMDBRating: 7.2, IMDBVotes: 20000})
	s.PutMovie(model.Movie{ID: 14, Title: "The Big Lebowski", Year: 1998, IMDBRating: 8.1, IMDBVotes: 5000})
	s.PutMovie(model.Movie{ID: 15, Title: "Airplane!", Year: 1980, IMDBRating: 7.2, IMDBVotes: 30000})

	s.PutCharacter(model.Character{ID: 208, Name: "KAT", MovieID: 13, Gender: "f", NumLines: 3})
	s.PutCharacter(model.Character{ID: 209, Name: "PATRICK", MovieID: 13, Gender: "m", NumLines: 2})
	s.PutCharacter(model.Character{ID: 210, Name: "BIANCA", MovieID: 13, Gender: "f", NumLines: 2})
	s.PutCharacter(model.Character{ID: 211, Name: "CAMERON", MovieID: 13, Gender: "m", NumLines: 0})
	s.PutCharacter(model.Character{ID: 212, Name: "", MovieID: 13, Gender: "", NumLines: 0})
	s.PutCharacter(model.Character{ID: 301, Name: "ALICE", MovieID: 14, Gender: "f", NumLines: 1})
	s.PutCharacter(model.Character{ID: 302, Name: "BOB", MovieID: 14, Gender: "", NumLines: 1})
	s.PutCharacter(model.Character{ID: 401, Name: "DANNY", MovieID: 15, Gender: "m", NumLines: 3})
	s.PutCharacter(model.Character{ID: 402, Name: "ERIN", MovieID: 15, Gender: "f", NumLines: 3})
	s.PutCharacter(model.Character{ID: 403, Name: "FRANK", MovieID: 15, Gender: "m", NumLines: 2})
	s.PutCharacter(model.Character{ID: 404, Name: "GREG", MovieID: 15, Gender: "m", NumLines: 2})
	s.PutCharacter(model.Character{ID: 405, Name: "HOLLY", MovieID: 15, Gender: "f", NumLines: 1})
	s.PutCharacter(model.Character{ID: 406, Name: "IRIS", MovieID: 15, Gender: "f", NumLines: 1})
	s.PutCharacter(model.Character{ID: 407, Name: "KAT", MovieID: 15, Gender: "f", NumLines: 0})

	s.PutConversation(model.Conversation{ID: 500, Character1ID: 208, Character2ID: 209, MovieID: 13})
	s.PutConversation(model.Conversation{ID: 501, Character1ID: 208, Character2ID: 210, MovieID: 13})
	s.PutConversation(model.Conversation{ID: 502, Character1ID: 209, Character2ID: 210, MovieID: 13})
	s.PutConversation(model.Conversation{ID: 503, Character1ID: 301, Character2ID: 302, MovieID: 14})
	s.PutConversation(model.Conversation{ID: 504, Character1ID: 208, Character2ID: 211, MovieID: 13})
	s.PutConversation(model.Conversation{ID: 505, Character1ID: 210, Character2ID: 211, MovieID: 13})
	s.PutConversation(model.Conversation{ID: 601, Character1ID: 401, Character2ID: 402, MovieID: 15})
	s.PutConversation(model.Conversation{ID: 602, Character1ID: 403, Character2ID: 404, MovieID: 15})
	s.PutConversation(model.Conversation{ID: 603, Character1ID: 405, Character2ID: 406, MovieID: 15})

	s.PutLine(model.Line{ID: 9001, CharacterID: 208, MovieID: 13, ConversationID: 500, LineSort: 1, Text: "test"})
	s.PutLine(model.Line{ID: 9002, CharacterID: 209, MovieID: 13, ConversationID: 500, LineSort: 2, Text: "shut up"})
	s.PutLine(model.Line{ID: 9003, CharacterID: 208, MovieID: 13, ConversationID: 500, LineSort: 3, Text: "the hell you just say to me?"})
	s.PutLine(model.Line{ID: 9004, CharacterID: 210, MovieID: 13, ConversationID: 501, LineSort: 1, Text: "hi"})
	s.PutLine(model.Line{ID: 9005, CharacterID: 208, MovieID: 13, ConversationID: 501, LineSort: 2, Text: "hello"})
	s.PutLine(model.Line{ID: 9006, CharacterID: 209, MovieID: 13, ConversationID: 502, LineSort: 1, Text: "hm"})
	s.PutLine(model.Line{ID: 9007, CharacterID: 301, MovieID: 14, ConversationID: 503, LineSort: 1, Text: "where is it"})
	s.PutLine(model.Line{ID: 9008, CharacterID: 302, MovieID: 14, ConversationID: 503, LineSort: 2, Text: "no idea"})
	s.PutLine(model.Line{ID: 9009, CharacterID: 210, MovieID: 13, ConversationID: 505, LineSort: 1, Text: "later"})

	lineID := 9101
	sorts := make(map[int]int)
	seed := func(convID, charID, n int) {
		for i := 0; i < n; i++ {
			sorts[convID]++
			s.PutLine(model.Line{ID: lineID, CharacterID: charID, MovieID: 15, ConversationID: convID, LineSort: sorts[convID], Text: "x"})
			lineID++
		}
	}
	seed(601, 401, 3)
	seed(601, 402, 3)
	seed(602, 403, 2)
	seed(602, 404, 2)
	seed(603, 405, 1)
	seed(603, 406, 1)

	return s
}
