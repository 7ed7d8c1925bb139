package engine

import "github.com/lgbarn/fourplay-go/internal/chess"

// Highlight is one square to colour for a selected piece, with the pieces
// that attack it split by the selected piece's seat.
type Highlight struct {
	Square  *chess.Square
	Allies  []*chess.Piece
	Enemies []*chess.Piece
}

// Friendly reports whether allies are at least as many as enemies.
func (h Highlight) Friendly() bool {
	return len(h.Allies) >= len(h.Enemies)
}

// Highlights returns the squares to colour when sq is selected: the
// piece's move candidates, or its attack candidates when it has no moves.
// Attackers sharing the selected piece's seat are allies, the selected
// piece included. An empty square has no highlights.
func Highlights(sq *chess.Square) []Highlight {
	if sq == nil || sq.Piece == nil {
		return nil
	}
	selected := sq.Piece

	targets := selected.Moves
	if len(targets) == 0 {
		targets = selected.Attacks
	}

	out := make([]Highlight, 0, len(targets))
	for _, target := range targets {
		h := Highlight{Square: target}
		for _, attacker := range target.Attackers {
			if attacker.Seat == selected.Seat {
				h.Allies = append(h.Allies, attacker)
			} else {
				h.Enemies = append(h.Enemies, attacker)
			}
		}
		out = append(out, h)
	}
	return out
}

// HighlightsAt looks up a square by code and returns its highlights.
func HighlightsAt(board *chess.Board, code string) ([]Highlight, error) {
	sq, err := board.Square(code)
	if err != nil {
		return nil, err
	}
	return Highlights(sq), nil
}
