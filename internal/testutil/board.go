package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/fourplay-go/internal/chess"
)

// MustBoard builds a board from "square=code" placements, e.g. "h1=wR".
// It calls t.Fatal on any malformed placement.
func MustBoard(t *testing.T, placements ...string) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for _, pl := range placements {
		square, code, ok := strings.Cut(pl, "=")
		if !ok {
			t.Fatalf("placement %q: want square=code", pl)
		}
		if _, err := board.Place(square, code); err != nil {
			t.Fatalf("placement %q: %v", pl, err)
		}
	}
	return board
}

// MustSquare looks up a square by code, calling t.Fatal on error.
func MustSquare(t *testing.T, board *chess.Board, code string) *chess.Square {
	t.Helper()
	sq, err := board.Square(code)
	if err != nil {
		t.Fatalf("square %q: %v", code, err)
	}
	return sq
}

// Codes returns the algebraic codes of squares, preserving order.
func Codes(squares []*chess.Square) []string {
	out := make([]string, 0, len(squares))
	for _, sq := range squares {
		out = append(out, sq.Code())
	}
	return out
}

// Placements returns "code@square" for each piece, preserving order.
func Placements(pieces []*chess.Piece) []string {
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, p.Code+"@"+p.Square.Code())
	}
	return out
}
