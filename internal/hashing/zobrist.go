package hashing

import "github.com/lgbarn/fourplay-go/internal/chess"

const (
	seatCount = 5 // Dead plus the four playing seats
	roleCount = 7 // NoRole plus the six roles
)

// zobristTable holds one random key per (square, seat, role).
var zobristTable [chess.BoardSize * chess.BoardSize][seatCount][roleCount]uint64

func init() {
	// splitmix64 with a fixed seed keeps hashes stable across runs.
	state := uint64(0x4f3c_9a21_d6b8_1e57)
	next := func() uint64 {
		state += 0x9e3779b97f4a7c15
		z := state
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		return z ^ (z >> 31)
	}
	for sq := range zobristTable {
		for seat := range zobristTable[sq] {
			for role := range zobristTable[sq][seat] {
				zobristTable[sq][seat][role] = next()
			}
		}
	}
}

// GenerateZobristHash hashes the piece placement of a board. Candidate
// lists do not contribute.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	board.Each(func(sq *chess.Square) {
		if p := sq.Piece; p != nil {
			hash ^= zobristTable[sq.Row*chess.BoardSize+sq.Col][p.Seat][p.Role]
		}
	})
	return hash
}

// WeakHash is a cheap positional checksum used to confirm Zobrist matches.
func WeakHash(board *chess.Board) uint32 {
	var sum uint32
	board.Each(func(sq *chess.Square) {
		if p := sq.Piece; p != nil {
			index := uint32(sq.Row*chess.BoardSize + sq.Col + 1)
			sum += index * uint32(int(p.Seat)*roleCount+int(p.Role))
		}
	})
	return sum
}
