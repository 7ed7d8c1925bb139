package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/errors"
)

// Tokens of the text format besides piece codes.
const (
	EmptyToken  = "."
	CornerToken = "#"
	CommentChar = ';'
)

// Reader reads text snapshots: 14 lines per snapshot, rank 14 first, each
// with 14 whitespace-separated tokens. Snapshots are separated by blank
// lines and lines starting with ';' are ignored.
type Reader struct {
	scanner *bufio.Scanner
	file    string
	line    int
	index   int
}

// NewReader creates a reader over r. file names the source in errors.
func NewReader(r io.Reader, file string) *Reader {
	return &Reader{scanner: bufio.NewScanner(r), file: file}
}

// Next reads the following snapshot.
// Returns nil, nil when the input is exhausted.
func (r *Reader) Next() (*Snapshot, error) {
	var rows [][]string
	start := 0

	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())

		if text == "" {
			if len(rows) > 0 {
				break
			}
			continue
		}
		if text[0] == CommentChar {
			continue
		}
		if len(rows) == chess.BoardSize {
			return nil, r.syntaxError("blank line", "rank data")
		}
		if len(rows) == 0 {
			start = r.line
		}

		fields := strings.Fields(text)
		if len(fields) != chess.BoardSize {
			return nil, r.syntaxError(fmt.Sprintf("%d cells", chess.BoardSize), fmt.Sprintf("%d", len(fields)))
		}
		rows = append(rows, fields)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, &errors.ParseError{Err: err, File: r.file, Line: r.line}
	}

	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows) != chess.BoardSize {
		return nil, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			File:     r.file,
			Line:     start,
			Expected: fmt.Sprintf("%d ranks", chess.BoardSize),
			Got:      fmt.Sprintf("%d", len(rows)),
		}
	}

	r.index++
	s := &Snapshot{Index: r.index, Source: r.file, Cells: make([]Cell, 0, CellCount)}
	for i, fields := range rows {
		row := chess.BoardSize - 1 - i
		for col, tok := range fields {
			c := chess.Coord{Col: col, Row: row}
			cell, expected := parseCell(c, tok)
			if expected != "" {
				return nil, &errors.ParseError{
					Err:      errors.ErrParseFailure,
					File:     r.file,
					Line:     start + i,
					Column:   col + 1,
					Expected: expected,
					Got:      tok,
				}
			}
			s.Cells = append(s.Cells, cell)
		}
	}
	return s, nil
}

// parseCell interprets one token, returning what was expected when the
// token does not fit its square. Piece codes are only checked for shape
// here; Build decides whether they are recognized.
func parseCell(c chess.Coord, tok string) (Cell, string) {
	cell := Cell{Square: c.Code()}
	switch {
	case !c.Accessible():
		if tok != CornerToken {
			return cell, CornerToken
		}
	case tok == EmptyToken:
	case len(tok) == 2:
		cell.Piece = tok
	default:
		return cell, "piece code or " + EmptyToken
	}
	return cell, ""
}

func (r *Reader) syntaxError(expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		File:     r.file,
		Line:     r.line,
		Expected: expected,
		Got:      got,
	}
}

// ReadAll reads every snapshot from r.
func ReadAll(r io.Reader, file string) ([]*Snapshot, error) {
	reader := NewReader(r, file)
	var out []*Snapshot
	for {
		s, err := reader.Next()
		if err != nil {
			return out, err
		}
		if s == nil {
			return out, nil
		}
		out = append(out, s)
	}
}

// Write formats a board in the text format.
func Write(w io.Writer, board *chess.Board) error {
	bw := bufio.NewWriter(w)
	for row := chess.BoardSize - 1; row >= 0; row-- {
		tokens := make([]string, 0, chess.BoardSize)
		for col := 0; col < chess.BoardSize; col++ {
			sq := board.Squares[row][col]
			switch {
			case !sq.Accessible():
				tokens = append(tokens, CornerToken)
			case sq.Piece == nil:
				tokens = append(tokens, EmptyToken)
			default:
				tokens = append(tokens, sq.Piece.Code)
			}
		}
		if _, err := fmt.Fprintln(bw, strings.Join(tokens, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}
