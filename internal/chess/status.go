package chess

// StatusKind classifies a position.
type StatusKind int

const (
	InProgress StatusKind = iota
	Check
	Checkmate
	Stalemate
	Draw
)

// String returns the name of the status kind.
func (k StatusKind) String() string {
	names := []string{"InProgress", "Check", "Checkmate", "Stalemate", "Draw"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// DrawReason says which rule ended the game in a draw.
type DrawReason int

const (
	NoDraw DrawReason = iota
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
)

// String returns the name of the draw rule.
func (r DrawReason) String() string {
	switch r {
	case InsufficientMaterial:
		return "insufficient material"
	case FiftyMoveRule:
		return "fifty-move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	default:
		return ""
	}
}

// Status is the terminal-status of a position. Colour is the side in check
// for Check and the winner for Checkmate; it is unused otherwise.
type Status struct {
	Kind   StatusKind
	Colour Colour
	Reason DrawReason
}

// StatusInProgress is the status of an ordinary position.
var StatusInProgress = Status{Kind: InProgress}

// CheckStatus returns Check(colour).
func CheckStatus(colour Colour) Status {
	return Status{Kind: Check, Colour: colour}
}

// CheckmateStatus returns Checkmate(winner).
func CheckmateStatus(winner Colour) Status {
	return Status{Kind: Checkmate, Colour: winner}
}

// StalemateStatus returns Stalemate.
func StalemateStatus() Status {
	return Status{Kind: Stalemate}
}

// DrawStatus returns Draw for the given rule.
func DrawStatus(reason DrawReason) Status {
	return Status{Kind: Draw, Reason: reason}
}

// IsTerminal reports whether no further moves are accepted.
func (s Status) IsTerminal() bool {
	switch s.Kind {
	case Checkmate, Stalemate, Draw:
		return true
	default:
		return false
	}
}

// String returns e.g. "Check(White)", "Checkmate(Black)" or "Draw(fifty-move rule)".
func (s Status) String() string {
	switch s.Kind {
	case Check, Checkmate:
		return s.Kind.String() + "(" + s.Colour.String() + ")"
	case Draw:
		if s.Reason != NoDraw {
			return "Draw(" + s.Reason.String() + ")"
		}
	}
	return s.Kind.String()
}

// Result returns the PGN-style result string for a terminal status.
func (s Status) Result() string {
	switch s.Kind {
	case Checkmate:
		if s.Colour == White {
			return "1-0"
		}
		return "0-1"
	case Stalemate, Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}
