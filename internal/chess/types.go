// Package chess provides the board, seat and piece model for four-player chess.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fourplay-go/internal/errors"
)

// Constants for board dimensions.
const (
	BoardSize  = 14 // Width and height of the bounding grid
	CornerSize = 3  // Width of each blanked-out corner block

	// MaxRadius bounds every ray walk regardless of the radius iterator.
	MaxRadius = BoardSize

	FileBase = 'a'
)

// Seat represents one of the four playing positions or the inert
// placeholder used for captured material.
type Seat int

const (
	Dead Seat = iota
	Red
	Blue
	Yellow
	Green
)

// Seats lists the playing seats in turn order.
var Seats = []Seat{Red, Blue, Yellow, Green}

// String returns the display name of a seat.
func (s Seat) String() string {
	names := []string{"Dead", "Red", "Blue", "Yellow", "Green"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Turn returns the turn-order index: Red=1 through Green=4, Dead=0.
func (s Seat) Turn() int {
	return int(s)
}

// Playing reports whether the seat is a live player.
func (s Seat) Playing() bool {
	return s >= Red && s <= Green
}

// Char returns the identity-code character for the seat.
func (s Seat) Char() byte {
	chars := []byte{'d', 'w', 'g', 'b', 'r'}
	if s >= 0 && int(s) < len(chars) {
		return chars[s]
	}
	return '?'
}

// SeatFromChar maps an identity-code character to its seat.
func SeatFromChar(c byte) (Seat, bool) {
	switch c {
	case 'w':
		return Red, true
	case 'g':
		return Blue, true
	case 'b':
		return Yellow, true
	case 'r':
		return Green, true
	case 'd':
		return Dead, true
	}
	return Dead, false
}

// ParseSeat parses a seat display name, case-insensitively.
func ParseSeat(name string) (Seat, error) {
	for _, s := range append([]Seat{Dead}, Seats...) {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return Dead, fmt.Errorf("seat %q: %w", name, errors.ErrUnrecognizedCode)
}

// Role represents a chess piece type.
type Role int

const (
	NoRole Role = iota
	Rook
	Pawn
	King
	Queen
	Bishop
	Knight
)

// String returns the name of a role.
func (r Role) String() string {
	names := []string{"None", "Rook", "Pawn", "King", "Queen", "Bishop", "Knight"}
	if r >= 0 && int(r) < len(names) {
		return names[r]
	}
	return "Unknown"
}

// Letter returns the identity-code letter of a role.
func (r Role) Letter() byte {
	letters := []byte{'?', 'R', 'P', 'K', 'Q', 'B', 'N'}
	if r >= 0 && int(r) < len(letters) {
		return letters[r]
	}
	return '?'
}

// RoleFromChar maps an identity-code letter to its role.
// 'D' is the host page's letter for a promoted queen.
func RoleFromChar(c byte) (Role, bool) {
	switch c {
	case 'R':
		return Rook, true
	case 'P':
		return Pawn, true
	case 'K':
		return King, true
	case 'Q', 'D':
		return Queen, true
	case 'B':
		return Bishop, true
	case 'N':
		return Knight, true
	}
	return NoRole, false
}

// ParseCode splits a two-character piece identity code into seat and role.
func ParseCode(code string) (Seat, Role, error) {
	if len(code) != 2 {
		return Dead, NoRole, fmt.Errorf("code %q: %w", code, errors.ErrUnrecognizedCode)
	}
	seat, ok := SeatFromChar(code[0])
	if !ok {
		return Dead, NoRole, fmt.Errorf("seat %q in %q: %w", code[0], code, errors.ErrUnrecognizedCode)
	}
	role, ok := RoleFromChar(code[1])
	if !ok {
		return Dead, NoRole, fmt.Errorf("role %q in %q: %w", code[1], code, errors.ErrUnrecognizedCode)
	}
	return seat, role, nil
}

// MakeCode builds the identity code for a seat and role.
func MakeCode(seat Seat, role Role) string {
	return string([]byte{seat.Char(), role.Letter()})
}
