package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/game"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	PGN  Format = "pgn"
	JSON Format = "json"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (PGN, JSON, etc.).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(st game.State, tags Tags) error

	// Close releases any resources. For batch writers (like JSON), this
	// also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer for format.
func NewGameWriter(w io.Writer, format Format) (GameWriter, error) {
	switch format {
	case PGN:
		return NewPGNWriter(w, DefaultLineLength), nil
	case JSON:
		return NewJSONWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	w             io.Writer
	maxLineLength int
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, maxLineLength int) *PGNWriter {
	return &PGNWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(st game.State, tags Tags) error {
	return WritePGN(pw.w, st, tags, pw.maxLineLength)
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close.
type JSONWriter struct {
	w     io.Writer
	games []*JSONGame
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame buffers a game for JSON output.
func (jw *JSONWriter) WriteGame(st game.State, tags Tags) error {
	jw.games = append(jw.games, GameToJSON(st, tags))
	return nil
}

// Close writes all buffered games as a JSON array.
func (jw *JSONWriter) Close() error {
	out := &JSONOutput{Games: jw.games}
	if out.Games == nil {
		out.Games = []*JSONGame{}
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)
	jw.games = nil
	return err
}
