// Package output renders game records as PGN or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// DefaultLineLength is the movetext width used when none is given.
const DefaultLineLength = 80

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	return slices.Contains(SevenTagRoster, tag)
}

// Tags holds PGN tag pairs. Missing roster tags are written as "?".
type Tags map[string]string

// OutputWriter handles formatted output with line length control. The
// first write error is kept and returned by Err; later writes are dropped.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
			o.needsSpace = false
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first error met while writing.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// WritePGN writes st as one PGN game: the tag section, a blank line, the
// movetext ending in the result and a trailing blank line. The Result tag
// always follows the game status. Games that did not begin from the
// standard position carry SetUp and FEN tags.
func WritePGN(w io.Writer, st game.State, tags Tags, maxLineLength int) error {
	if err := writeTags(w, st, tags); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	ow := NewOutputWriter(w, maxLineLength)
	writeMoves(ow, st.History)
	ow.Write(st.Status.Result())
	ow.NewLine()
	ow.NewLine()
	return ow.Err()
}

// Movetext returns the moves of st in SAN with move numbers, without a
// result, e.g. "1. e4 e5 2. Nf3". Lines are wrapped at maxLineLength.
func Movetext(st game.State, maxLineLength int) string {
	var sb strings.Builder
	ow := NewOutputWriter(&sb, maxLineLength)
	writeMoves(ow, st.History)
	return sb.String()
}

func writeMoves(ow *OutputWriter, history []game.HistoryEntry) {
	for i, h := range history {
		switch {
		case h.Move.Piece.Colour == chess.White:
			ow.Write(fmt.Sprintf("%d.", h.MoveNumber))
		case i == 0:
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", h.MoveNumber))
		}
		ow.Write(h.SAN)
	}
}

// writeTags outputs the seven tag roster followed by any other tags in
// name order.
func writeTags(w io.Writer, st game.State, tags Tags) error {
	all := make(Tags, len(tags)+2)
	for k, v := range tags {
		all[k] = v
	}
	all["Result"] = st.Status.Result()
	if fen := st.StartFEN(); fen != engine.InitialFEN {
		all["SetUp"] = "1"
		all["FEN"] = fen
	}

	for _, tag := range SevenTagRoster {
		value := all[tag]
		if value == "" {
			value = "?"
		}
		if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value)); err != nil {
			return err
		}
	}

	extra := maps.Keys(all)
	slices.Sort(extra)
	for _, tag := range extra {
		if IsSevenTagRosterTag(tag) {
			continue
		}
		if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(all[tag])); err != nil {
			return err
		}
	}
	return nil
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
