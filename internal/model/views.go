package model

// Response shapes returned by the API. Field names are part of the wire
// contract and must not change with the row structs above.

// TopPartner is one entry of a character's ranked conversation-partner list.
// The count is conversation-level: every line of a shared conversation counts,
// regardless of which endpoint spoke it.
type TopPartner struct {
	CharacterID   int     `json:"character_id"`
	Character     string  `json:"character"`
	Gender        *string `json:"gender"`
	LinesTogether int     `json:"number_of_lines_together"`
}

// CharacterDetail is the GET /characters/{id} response.
type CharacterDetail struct {
	CharacterID      int          `json:"character_id"`
	Character        string       `json:"character"`
	Movie            string       `json:"movie"`
	Gender           *string      `json:"gender"`
	TopConversations []TopPartner `json:"top_conversations"`
}

// CharacterListItem is one row of the GET /characters/ listing.
type CharacterListItem struct {
	CharacterID   int    `json:"character_id"`
	Character     string `json:"character"`
	Movie         string `json:"movie"`
	NumberOfLines int    `json:"number_of_lines"`
}

// CharacterLine is one row of GET /characters/{id}/lines.
type CharacterLine struct {
	LineID         int    `json:"line_id"`
	Character      string `json:"character"`
	Movie          string `json:"movie"`
	ConversationID int    `json:"conversation_id"`
	LineText       string `json:"line_text"`
}

// TopCharacter is one entry of a movie's top-5 speaking characters.
type TopCharacter struct {
	CharacterID int    `json:"character_id"`
	Character   string `json:"character"`
	NumLines    int    `json:"num_lines"`
}

// MovieDetail is the GET /movies/{id} response.
type MovieDetail struct {
	MovieID       int            `json:"movie_id"`
	Title         string         `json:"title"`
	TopCharacters []TopCharacter `json:"top_characters"`
}

// MovieListItem is one row of the GET /movies/ listing.
type MovieListItem struct {
	MovieID    int     `json:"movie_id"`
	MovieTitle string  `json:"movie_title"`
	Year       int     `json:"year"`
	IMDBRating float64 `json:"imdb_rating"`
	IMDBVotes  int     `json:"imdb_votes"`
}

// LineDetail is the GET /lines/{id} response.
type LineDetail struct {
	LineID         int    `json:"line_id"`
	LineText       string `json:"line_text"`
	Character      string `json:"character"`
	Movie          string `json:"movie"`
	ConversationID int    `json:"conversation_id"`
}

// ConversationLine is one row of GET /lines/conversations/{id}, ordered by
// line_sort ascending.
type ConversationLine struct {
	LineID    int    `json:"line_id"`
	Character string `json:"character"`
	Movie     string `json:"movie"`
	LineText  string `json:"line_text"`
}

// NewLine is one line of a POST conversation body.
type NewLine struct {
	CharacterID int    `json:"character_id" binding:"required"`
	LineText    string `json:"line_text"`
}

// NewConversation is the POST /movies/{movie_id}/conversations/ body.
type NewConversation struct {
	Character1ID int       `json:"character_1_id" binding:"required"`
	Character2ID int       `json:"character_2_id" binding:"required"`
	Lines        []NewLine `json:"lines" binding:"omitempty,dive"`
}

// NullableGender maps the empty-string gender of the corpus to JSON null.
func NullableGender(g string) *string {
	if g == "" {
		return nil
	}
	return &g
}
