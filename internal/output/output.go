// Package output provides turn output formatting as text dumps and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/config"
	"github.com/lgbarn/fourplay-go/internal/diff"
	"github.com/lgbarn/fourplay-go/internal/engine"
	"github.com/lgbarn/fourplay-go/internal/processing"
)

// Grid cell markers.
const (
	cornerCell   = "#"
	emptyCell    = "."
	friendlyCell = "+"
	hostileCell  = "!"
	cellWidth    = 3
)

// OutputTurn writes a turn as text in the configured layout.
func OutputTurn(turn *processing.Turn, cfg *config.Config) {
	WriteTurn(cfg.OutputFile, turn, cfg) //nolint:errcheck // written to the configured stream
}

// WriteTurn writes the turn header followed by the sections enabled in cfg.
func WriteTurn(w io.Writer, turn *processing.Turn, cfg *config.Config) error {
	ew := &errWriter{w: w}

	ew.printf("%s\n", turn.Header())
	if turn.Repeated {
		ew.printf("; repeats an earlier position\n")
	}
	if cfg.Output.ShowBoard {
		writeGrids(ew, turn.Board, turn.Diff)
	}
	if cfg.Output.ShowCandidates {
		writeCandidates(ew, turn.Board)
	}
	if cfg.Output.ShowThreats && cfg.Seat.Playing() {
		writeThreats(ew, turn.Board, cfg.Seat)
	}
	ew.printf("\n")
	return ew.err
}

// writeGrids prints the board beside the diff board, rank 14 first.
func writeGrids(ew *errWriter, board *chess.Board, d *diff.Diff) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		var left, right strings.Builder
		for col := 0; col < chess.BoardSize; col++ {
			sq := board.Squares[row][col]
			entry := d.Board[row][col]

			switch {
			case !sq.Accessible():
				left.WriteString(pad(cornerCell))
				right.WriteString(pad(cornerCell))
				continue
			case sq.Piece != nil:
				left.WriteString(pad(sq.Piece.Code))
			default:
				left.WriteString(pad(emptyCell))
			}

			if entry.Change == diff.None {
				right.WriteString(pad(emptyCell))
			} else {
				right.WriteString(pad(entry.Piece + entry.Change.Tag()))
			}
		}
		ew.printf("%2d %s | %s\n", row+1, strings.TrimRight(left.String(), " "), strings.TrimRight(right.String(), " "))
	}
	ew.printf("   %s\n", fileLabels())
}

// writeCandidates lists every live piece with its move and attack squares.
func writeCandidates(ew *errWriter, board *chess.Board) {
	for _, p := range board.Pieces() {
		if !p.Playing() {
			continue
		}
		ew.printf("%s@%s moves: %s; attacks: %s\n",
			p.Code, p.Square.Code(), squareList(p.Moves), squareList(p.Attacks))
	}
}

// writeThreats prints which attacked squares are friendly or hostile for
// seat, then the squares seat covers and the pieces boxed in diagonally.
func writeThreats(ew *errWriter, board *chess.Board, seat chess.Seat) {
	ew.printf("; threats for %s\n", seat)
	for row := chess.BoardSize - 1; row >= 0; row-- {
		var line strings.Builder
		for col := 0; col < chess.BoardSize; col++ {
			sq := board.Squares[row][col]
			line.WriteString(pad(threatCell(sq, seat)))
		}
		ew.printf("%2d %s\n", row+1, strings.TrimRight(line.String(), " "))
	}

	var covered, enclosed []*chess.Square
	board.Each(func(sq *chess.Square) {
		if !sq.Accessible() {
			return
		}
		if engine.Covered(sq, seat) {
			covered = append(covered, sq)
		}
		if sq.HasPiece() && engine.Enclosed(board, sq) {
			enclosed = append(enclosed, sq)
		}
	})
	ew.printf("; covered: %s\n", squareList(covered))
	ew.printf("; enclosed: %s\n", squareList(enclosed))
}

func threatCell(sq *chess.Square, seat chess.Seat) string {
	switch {
	case !sq.Accessible():
		return cornerCell
	case len(sq.Attackers) == 0:
		return emptyCell
	case engine.ThreatAt(sq, seat).Friendly():
		return friendlyCell
	}
	return hostileCell
}

// WriteHighlights writes the highlight list for a selected square.
func WriteHighlights(w io.Writer, code string, hs []engine.Highlight) error {
	ew := &errWriter{w: w}
	if len(hs) == 0 {
		ew.printf("%s: nothing to highlight\n", code)
		return ew.err
	}
	for _, h := range hs {
		verdict := "hostile"
		if h.Friendly() {
			verdict = "friendly"
		}
		ew.printf("%s -> %s %s (allies %d, enemies %d)\n",
			code, h.Square.Code(), verdict, len(h.Allies), len(h.Enemies))
	}
	return ew.err
}

func squareList(squares []*chess.Square) string {
	if len(squares) == 0 {
		return "-"
	}
	codes := make([]string, len(squares))
	for i, sq := range squares {
		codes[i] = sq.Code()
	}
	return strings.Join(codes, " ")
}

func fileLabels() string {
	var b strings.Builder
	for col := 0; col < chess.BoardSize; col++ {
		b.WriteString(pad(string(rune(chess.FileBase + col))))
	}
	return strings.TrimRight(b.String(), " ")
}

func pad(s string) string {
	if len(s) >= cellWidth {
		return s
	}
	return s + strings.Repeat(" ", cellWidth-len(s))
}

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
