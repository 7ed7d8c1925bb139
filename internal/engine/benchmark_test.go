package engine

import (
	"testing"

	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/testutil"
)

// benchBoards returns boards of increasing density.
func benchBoards(b *testing.B) map[string]*chess.Board {
	b.Helper()
	sparse := chess.NewBoard()
	for _, pl := range [][2]string{{"h1", "wR"}, {"g7", "gN"}, {"g14", "bQ"}, {"n7", "rK"}} {
		if _, err := sparse.Place(pl[0], pl[1]); err != nil {
			b.Fatal(err)
		}
	}
	return map[string]*chess.Board{
		"Empty":    chess.NewBoard(),
		"Sparse":   sparse,
		"Starting": chess.NewStartingBoard(),
	}
}

func BenchmarkAnalyze(b *testing.B) {
	for name, board := range benchBoards(b) {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := Analyze(board); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkHighlights(b *testing.B) {
	board := chess.NewStartingBoard()
	if err := Analyze(board); err != nil {
		b.Fatal(err)
	}
	sq, err := board.Square("g1")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Highlights(sq)
	}
}

func BenchmarkThreats(b *testing.B) {
	board := chess.NewStartingBoard()
	if err := Analyze(board); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Threats(board, chess.Red)
	}
}

func TestStartingBoardCandidates(t *testing.T) {
	board := chess.NewStartingBoard()
	testutil.AssertNoError(t, Analyze(board))

	// Every unmoved pawn steps one or two squares forward.
	for _, p := range board.Pieces() {
		if p.Role == chess.Pawn {
			testutil.AssertEqual(t, len(p.Moves), 2, p.String())
		}
	}
	edgePawn := testutil.MustSquare(t, board, "d2").Piece
	testutil.AssertEqual(t, testutil.Codes(edgePawn.Attacks), []string{"e3"})

	// A boxed-in queen highlights the neighbours it defends instead.
	g1 := testutil.MustSquare(t, board, "g1")
	testutil.AssertEqual(t, len(g1.Piece.Moves), 0)
	testutil.AssertEqual(t, len(Highlights(g1)), 5)

	knight := testutil.MustSquare(t, board, "e1").Piece
	testutil.AssertEqual(t, testutil.Codes(knight.Moves), []string{"f3", "d3"})
}
