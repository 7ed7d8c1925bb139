package hashing

import (
	"testing"

	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/testutil"
)

func TestZobristHashConsistency(t *testing.T) {
	// Two identically built boards must agree
	hash1 := GenerateZobristHash(chess.NewStartingBoard())
	hash2 := GenerateZobristHash(chess.NewStartingBoard())

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
	if GenerateZobristHash(chess.NewBoard()) != 0 {
		t.Error("Empty board should hash to zero")
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
	}{
		{"pawn advanced", []string{"e2=wP"}, []string{"e4=wP"}},
		{"seat changed", []string{"e2=wP"}, []string{"e2=gP"}},
		{"role changed", []string{"e2=wP"}, []string{"e2=wQ"}},
		{"captured", []string{"g7=bQ"}, []string{"g7=dQ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash1 := GenerateZobristHash(testutil.MustBoard(t, tt.a...))
			hash2 := GenerateZobristHash(testutil.MustBoard(t, tt.b...))
			if hash1 == hash2 {
				t.Error("Different positions produced the same hash")
			}
		})
	}
}

func TestHashIgnoresCandidates(t *testing.T) {
	board := testutil.MustBoard(t, "h1=wR")
	before := GenerateZobristHash(board)

	sq := testutil.MustSquare(t, board, "h2")
	sq.Movers = append(sq.Movers, board.Pieces()[0])

	if GenerateZobristHash(board) != before {
		t.Error("Candidate lists changed the hash")
	}
}

func TestWeakHashConsistency(t *testing.T) {
	hash1 := WeakHash(chess.NewStartingBoard())
	hash2 := WeakHash(chess.NewStartingBoard())

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different weak hashes: %x != %x", hash1, hash2)
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	board := chess.NewStartingBoard()

	if detector.CheckAndAdd(board) {
		t.Error("First position was marked as duplicate")
	}
	if !detector.CheckAndAdd(chess.NewStartingBoard()) {
		t.Error("Repeated position was not detected")
	}
	if detector.CheckAndAdd(testutil.MustBoard(t, "h1=wR")) {
		t.Error("New position was marked as duplicate")
	}
	if detector.CheckAndAdd(nil) {
		t.Error("nil board was marked as duplicate")
	}

	testutil.AssertEqual(t, detector.DuplicateCount(), 1)
	testutil.AssertEqual(t, detector.UniqueCount(), 2)

	detector.Reset()
	testutil.AssertEqual(t, detector.DuplicateCount(), 0)
	testutil.AssertEqual(t, detector.UniqueCount(), 0)
	if detector.CheckAndAdd(board) {
		t.Error("Position seen before Reset was still marked as duplicate")
	}
}

func TestDuplicateDetectorCapacity(t *testing.T) {
	detector := NewDuplicateDetector(true, 2)

	boards := []*chess.Board{
		testutil.MustBoard(t, "h1=wR"),
		testutil.MustBoard(t, "h2=wR"),
		testutil.MustBoard(t, "h3=wR"),
	}
	for _, b := range boards {
		detector.CheckAndAdd(b)
	}

	testutil.AssertTrue(t, detector.IsFull())
	testutil.AssertEqual(t, detector.UniqueCount(), 2)

	// Stored positions are still recognised, the overflow one is not
	testutil.AssertTrue(t, detector.CheckAndAdd(boards[0]))
	testutil.AssertFalse(t, detector.CheckAndAdd(boards[2]))
}

func TestSign(t *testing.T) {
	sig := Sign(chess.NewStartingBoard())
	testutil.AssertEqual(t, sig.Pieces, 64)
	testutil.AssertEqual(t, sig.Hash, GenerateZobristHash(chess.NewStartingBoard()))
}
