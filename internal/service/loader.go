package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/user/movielines/internal/model"
	"github.com/user/movielines/internal/repository"
	"golang.org/x/sync/errgroup"
)

// CorpusLoader imports the dialogue corpus from its four CSV files. This is
// one-time bootstrap work invoked by cmd/loader, not by the request path.
type CorpusLoader struct {
	store *repository.DBStore
}

// NewCorpusLoader creates a loader writing through the database store.
func NewCorpusLoader(store *repository.DBStore) *CorpusLoader {
	return &CorpusLoader{store: store}
}

// Import migrates the schema, parses movies.csv, characters.csv,
// conversations.csv and lines.csv from dir (the four files in parallel) and
// bulk-inserts the rows in foreign-key order. Character num_lines counters
// are computed from the parsed lines.
func (cl *CorpusLoader) Import(dir string) error {
	if err := cl.store.Migrate(); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	var (
		movies []model.Movie
		chars  []model.Character
		convs  []model.Conversation
		lines  []model.Line
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		movies, err = parseMovies(filepath.Join(dir, "movies.csv"))
		return err
	})
	g.Go(func() (err error) {
		chars, err = parseCharacters(filepath.Join(dir, "characters.csv"))
		return err
	})
	g.Go(func() (err error) {
		convs, err = parseConversations(filepath.Join(dir, "conversations.csv"))
		return err
	})
	g.Go(func() (err error) {
		lines, err = parseLines(filepath.Join(dir, "lines.csv"))
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	perSpeaker := make(map[int]int)
	for _, l := range lines {
		perSpeaker[l.CharacterID]++
	}
	for i := range chars {
		chars[i].NumLines = perSpeaker[chars[i].ID]
	}

	if err := cl.store.BulkInsertMovies(movies); err != nil {
		return fmt.Errorf("insert movies: %w", err)
	}
	if err := cl.store.BulkInsertCharacters(chars); err != nil {
		return fmt.Errorf("insert characters: %w", err)
	}
	if err := cl.store.BulkInsertConversations(convs); err != nil {
		return fmt.Errorf("insert conversations: %w", err)
	}
	if err := cl.store.BulkInsertLines(lines); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	log.Printf("[CorpusLoader] imported %d movies, %d characters, %d conversations, %d lines",
		len(movies), len(chars), len(convs), len(lines))
	return nil
}

// csvRows reads a headered CSV file and yields each record as a column-name
// map with surrounding whitespace trimmed.
func csvRows(path string, fn func(row map[string]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("%s: read header: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		if err := fn(row); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func parseMovies(path string) ([]model.Movie, error) {
	var movies []model.Movie
	err := csvRows(path, func(row map[string]string) error {
		id, err := strconv.Atoi(row["movie_id"])
		if err != nil {
			return fmt.Errorf("bad movie_id %q", row["movie_id"])
		}
		rating, _ := strconv.ParseFloat(row["imdb_rating"], 64)
		movies = append(movies, model.Movie{
			ID:         id,
			Title:      row["title"],
			Year:       atoiOr(row["year"], 0),
			IMDBRating: rating,
			IMDBVotes:  atoiOr(row["imdb_votes"], 0),
		})
		return nil
	})
	return movies, err
}

func parseCharacters(path string) ([]model.Character, error) {
	var chars []model.Character
	err := csvRows(path, func(row map[string]string) error {
		id, err := strconv.Atoi(row["character_id"])
		if err != nil {
			return fmt.Errorf("bad character_id %q", row["character_id"])
		}
		chars = append(chars, model.Character{
			ID:      id,
			Name:    row["name"],
			MovieID: atoiOr(row["movie_id"], 0),
			Gender:  row["gender"],
		})
		return nil
	})
	return chars, err
}

func parseConversations(path string) ([]model.Conversation, error) {
	var convs []model.Conversation
	err := csvRows(path, func(row map[string]string) error {
		id, err := strconv.Atoi(row["conversation_id"])
		if err != nil {
			return fmt.Errorf("bad conversation_id %q", row["conversation_id"])
		}
		convs = append(convs, model.Conversation{
			ID:           id,
			Character1ID: atoiOr(row["character1_id"], 0),
			Character2ID: atoiOr(row["character2_id"], 0),
			MovieID:      atoiOr(row["movie_id"], 0),
		})
		return nil
	})
	return convs, err
}

func parseLines(path string) ([]model.Line, error) {
	var lines []model.Line
	err := csvRows(path, func(row map[string]string) error {
		id, err := strconv.Atoi(row["line_id"])
		if err != nil {
			return fmt.Errorf("bad line_id %q", row["line_id"])
		}
		lines = append(lines, model.Line{
			ID:             id,
			CharacterID:    atoiOr(row["character_id"], 0),
			MovieID:        atoiOr(row["movie_id"], 0),
			ConversationID: atoiOr(row["conversation_id"], 0),
			LineSort:       atoiOr(row["line_sort"], 0),
			Text:           row["line_text"],
		})
		return nil
	})
	return lines, err
}
