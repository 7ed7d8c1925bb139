package snapshot

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/lgbarn/fourplay-go/internal/chess"
	fperrors "github.com/lgbarn/fourplay-go/internal/errors"
	"github.com/lgbarn/fourplay-go/internal/testutil"
)

// boardText renders placements in the text format.
func boardText(t *testing.T, placements ...string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, testutil.MustBoard(t, placements...)); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	return buf.String()
}

// boardHTML renders a page with one cell element per square, rank 14 first.
func boardHTML(pieces map[string]string, skip string) string {
	var b strings.Builder
	b.WriteString(`<html><body><div id="four-player-username"> alice </div>`)
	b.WriteString(`<div class="player blue"><a class="player-avatar" href="/member/alice"></a></div>`)
	b.WriteString(`<div class="player red"><a class="player-avatar" href="/member/bob"></a></div>`)
	b.WriteString(`<div class="board-4pc">`)
	for row := chess.BoardSize - 1; row >= 0; row-- {
		b.WriteString(`<div class="row">`)
		for col := 0; col < chess.BoardSize; col++ {
			code := chess.Coord{Col: col, Row: row}.Code()
			if code == skip {
				continue
			}
			fmt.Fprintf(&b, `<div class="square" data-square="%s">`, code)
			if p, ok := pieces[code]; ok {
				fmt.Fprintf(&b, `<div class="piece-%s" data-piece="%s"></div>`, p, p)
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div></body></html>`)
	return b.String()
}

func TestReadText(t *testing.T) {
	input := "; opening position fragment\n" +
		boardText(t, "h1=wR", "e2=wP") +
		"\n\n" +
		boardText(t, "h1=wR", "e4=wP")

	snaps, err := ReadAll(strings.NewReader(input), "game.txt")
	testutil.AssertNoError(t, err)
	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots; want 2", len(snaps))
	}

	for i, s := range snaps {
		testutil.AssertEqual(t, s.Index, i+1)
		testutil.AssertEqual(t, s.Source, "game.txt")
		testutil.AssertNoError(t, s.Complete())
		testutil.AssertEqual(t, s.Occupied(), 2)
	}

	board, err := Build(snaps[1])
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, testutil.Placements(board.Pieces()), []string{"wR@h1", "wP@e4"})
}

func TestWriteText(t *testing.T) {
	lines := strings.Split(strings.TrimRight(boardText(t, "h1=wR", "g14=bK"), "\n"), "\n")
	if len(lines) != chess.BoardSize {
		t.Fatalf("got %d lines; want %d", len(lines), chess.BoardSize)
	}
	testutil.AssertEqual(t, lines[0], "# # # . . . bK . . . . # # #")
	testutil.AssertEqual(t, lines[13], "# # # . . . . wR . . . # # #")
	testutil.AssertEqual(t, lines[6], ". . . . . . . . . . . . . .")
}

func TestReadTextErrors(t *testing.T) {
	valid := strings.Split(strings.TrimRight(boardText(t), "\n"), "\n")

	replace := func(line int, text string) string {
		lines := append([]string{}, valid...)
		lines[line] = text
		return strings.Join(lines, "\n")
	}

	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"short rank", replace(3, ". . ."), 4},
		{"piece on corner", replace(0, "wR # # . . . . . . . . # # #"), 1},
		{"bad token", replace(5, strings.Replace(valid[5], ".", "xyz", 1)), 6},
		{"missing ranks", strings.Join(valid[:13], "\n"), 1},
		{"extra rank", strings.Join(append(append([]string{}, valid...), valid[5]), "\n"), 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadAll(strings.NewReader(tt.input), "bad.txt")
			testutil.AssertErrorIs(t, err, fperrors.ErrParseFailure)

			var pe *fperrors.ParseError
			if !fperrors.As(err, &pe) {
				t.Fatalf("error %v is not a ParseError", err)
			}
			testutil.AssertEqual(t, pe.Line, tt.line, "error line")
			testutil.AssertEqual(t, pe.File, "bad.txt")
		})
	}
}

func TestReadTextEmpty(t *testing.T) {
	snaps, err := ReadAll(strings.NewReader("; nothing\n\n\n"), "")
	testutil.AssertNoError(t, err)
	if len(snaps) != 0 {
		t.Errorf("got %d snapshots; want none", len(snaps))
	}
}

func TestComplete(t *testing.T) {
	full := FromBoard(testutil.MustBoard(t, "h1=wR"), 4, "feed")
	testutil.AssertNoError(t, full.Complete())
	testutil.AssertEqual(t, len(full.Cells), CellCount)

	torn := &Snapshot{Index: 4, Cells: full.Cells[:CellCount-14]}
	err := torn.Complete()
	testutil.AssertErrorIs(t, err, fperrors.ErrIncompleteSnapshot)
	testutil.AssertContains(t, err.Error(), "182 of 196 cells")

	repeated := &Snapshot{Cells: append(append([]Cell{}, full.Cells[1:]...), full.Cells[1])}
	testutil.AssertErrorIs(t, repeated.Complete(), fperrors.ErrIncompleteSnapshot)

	invalid := &Snapshot{Cells: append(append([]Cell{}, full.Cells[1:]...), Cell{Square: "o1"})}
	testutil.AssertErrorIs(t, invalid.Complete(), fperrors.ErrInvalidSquare)

	if _, err := Build(torn); err == nil {
		t.Error("Build() accepted a torn snapshot")
	}
}

func TestBuildUnrecognizedCode(t *testing.T) {
	s := FromBoard(testutil.MustBoard(t, "h1=wR"), 2, "game.txt")
	for i := range s.Cells {
		if s.Cells[i].Square == "g7" {
			s.Cells[i].Piece = "zQ"
		}
	}

	_, err := Build(s)
	testutil.AssertErrorIs(t, err, fperrors.ErrUnrecognizedCode)
	var se *fperrors.SnapshotError
	if !fperrors.As(err, &se) {
		t.Fatalf("error %v is not a SnapshotError", err)
	}
	testutil.AssertEqual(t, se.Square, "g7")
	testutil.AssertEqual(t, se.Code, "zQ")
	testutil.AssertEqual(t, se.Turn, 2)

	board, skipped, err := BuildSkipping(s)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(skipped), 1)
	testutil.AssertEqual(t, testutil.Placements(board.Pieces()), []string{"wR@h1"})
}

func TestBuildRejectsCornerPiece(t *testing.T) {
	s := FromBoard(chess.NewBoard(), 1, "")
	s.Cells[0].Piece = "wR" // a1

	_, _, err := BuildSkipping(s)
	testutil.AssertErrorIs(t, err, fperrors.ErrInaccessibleSquare)
}

func TestReadHTML(t *testing.T) {
	pieces := map[string]string{"h1": "wR", "b5": "gP", "g14": "bK", "n7": "rD"}

	page, err := ReadHTML(strings.NewReader(boardHTML(pieces, "")), "page.html")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, page.Username, "alice")
	testutil.AssertEqual(t, page.Seat, chess.Blue)
	testutil.AssertNoError(t, page.Snapshot.Complete())

	board, err := Build(page.Snapshot)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, testutil.Placements(board.Pieces()),
		[]string{"wR@h1", "gP@b5", "rD@n7", "bK@g14"})
	testutil.AssertEqual(t, testutil.MustSquare(t, board, "n7").Piece.Role, chess.Queen)
}

func TestReadHTMLTorn(t *testing.T) {
	page, err := ReadHTML(strings.NewReader(boardHTML(nil, "h7")), "page.html")
	testutil.AssertNoError(t, err)
	testutil.AssertErrorIs(t, page.Snapshot.Complete(), fperrors.ErrIncompleteSnapshot)
}

func TestSeatOf(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(boardHTML(nil, "")))
	testutil.AssertNoError(t, err)

	tests := []struct {
		username string
		want     chess.Seat
		found    bool
	}{
		{"alice", chess.Blue, true},
		{"bob", chess.Red, true},
		{"carol", chess.Dead, false},
		{"", chess.Dead, false},
	}
	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			seat, found := SeatOf(doc, tt.username)
			testutil.AssertEqual(t, seat, tt.want)
			testutil.AssertEqual(t, found, tt.found)
		})
	}
}
