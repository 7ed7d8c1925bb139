package chess

// startingRoles lists the roles placed on a fresh board.
var startingRoles = []Role{Rook, Knight, Bishop, Queen, King, Pawn}

// NewStartingBoard returns a board with all four seats on their home squares.
func NewStartingBoard() *Board {
	b := NewBoard()
	for _, seat := range Seats {
		for _, role := range startingRoles {
			code := MakeCode(seat, role)
			for _, local := range role.home(seat) {
				c, _ := seat.Orient(local)
				sq := b.At(c)
				sq.Piece, _ = NewPiece(code, sq)
			}
		}
	}
	return b
}
