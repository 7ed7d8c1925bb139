package chess

// Vector encodes one ray direction in a piece's local frame as a pair of
// functions of the radius.
type Vector struct {
	DX func(radius int) int
	DY func(radius int) int
}

// Step returns a vector with a constant offset that ignores the radius.
func Step(dx, dy int) Vector {
	return Vector{
		DX: func(int) int { return dx },
		DY: func(int) int { return dy },
	}
}

// Slide returns a vector that scales linearly with the radius.
func Slide(dx, dy int) Vector {
	return Vector{
		DX: func(r int) int { return dx * r },
		DY: func(r int) int { return dy * r },
	}
}

// At evaluates the vector at the given radius.
func (v Vector) At(radius int) (dx, dy int) {
	return v.DX(radius), v.DY(radius)
}

// Rays is a vector group together with the radius iterator that walks it.
type Rays struct {
	Vectors []Vector
	Radius  *Radius
}

// Empty reports whether the group has no vectors.
func (r Rays) Empty() bool {
	return len(r.Vectors) == 0
}
