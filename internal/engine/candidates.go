// Package engine generates move and attack candidates for four-player chess
// and derives highlighting and threat classification from them.
package engine

import (
	"fmt"

	"github.com/lgbarn/fourplay-go/internal/chess"
)

// rayKind selects how a blocked target is treated.
type rayKind int

const (
	moveRay   rayKind = iota // Records empty targets only
	attackRay                // Records the first occupied target as well
)

// ray is one vector of a group being walked, with its blocked flag.
type ray struct {
	vector chess.Vector
	active bool
}

// Analyze populates every square's mover/attacker lists and every live
// piece's move/attack candidates. Squares are visited in row-major order,
// so the resulting lists are deterministic. Previous candidates are
// discarded first.
func Analyze(board *chess.Board) error {
	board.ResetCandidates()
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := board.Squares[row][col]
			if !sq.Accessible() || sq.Piece == nil || !sq.Piece.Playing() {
				continue
			}
			if err := AnalyzePiece(board, sq.Piece); err != nil {
				return err
			}
		}
	}
	return nil
}

// AnalyzePiece casts the move group and then the attack group of one
// piece. It does not skip captured pieces: rotating one is a contract
// violation and its error is returned.
func AnalyzePiece(board *chess.Board, p *chess.Piece) error {
	if err := cast(board, p, p.MoveRays(), moveRay); err != nil {
		return err
	}
	return cast(board, p, p.AttackRays(), attackRay)
}

// cast walks every vector of a group outwards together, one radius at a
// time. A ray stops at the board edge, at a corner block, or at the first
// occupied square. The group's radius iterator is rewound on every return.
func cast(board *chess.Board, p *chess.Piece, group chess.Rays, kind rayKind) error {
	if group.Empty() {
		return nil
	}
	defer group.Radius.Reset()

	rays := make([]ray, len(group.Vectors))
	for i, v := range group.Vectors {
		rays[i] = ray{vector: v, active: true}
	}
	remaining := len(rays)

	for remaining > 0 {
		radius, done := group.Radius.Next()
		if done || radius > chess.MaxRadius {
			return nil
		}

		for i := range rays {
			r := &rays[i]
			if !r.active {
				continue
			}

			c, err := p.Seat.Rotate(p.Square.Coord, r.vector, radius)
			if err != nil {
				return fmt.Errorf("casting %v: %w", p, err)
			}

			target := board.At(c)
			if target == nil || !target.Accessible() {
				r.active = false
				remaining--
				continue
			}

			switch kind {
			case moveRay:
				if target.HasPiece() {
					r.active = false
					remaining--
					continue
				}
				p.Moves = append(p.Moves, target)
				target.Movers = append(target.Movers, p)
			case attackRay:
				p.Attacks = append(p.Attacks, target)
				target.Attackers = append(target.Attackers, p)
				if target.HasPiece() {
					r.active = false
					remaining--
				}
			}
		}
	}
	return nil
}
