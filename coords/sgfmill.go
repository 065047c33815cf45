package coords

import "fmt"

// FromSgfmill converts a bottom-left-origin (row, col) pair to the
// canonical top-left-origin form. The column is unchanged and the row is
// flipped: row' = size - 1 - row, a self-inverse transform. Pass maps to
// Pass with no transformation.
// Returns ErrOutOfRange if a non-Pass pair lies off the board.
// Complexity: O(1).
func (cc Codec) FromSgfmill(c Coord) (Coord, error) {
	return cc.flipRow(c)
}

// ToSgfmill converts a canonical coordinate to the bottom-left-origin
// sgfmill form. The transform is identical to FromSgfmill (the row flip is
// its own inverse); Pass maps to Pass.
// Returns ErrOutOfRange if a non-Pass coordinate lies off the board.
// Complexity: O(1).
func (cc Codec) ToSgfmill(c Coord) (Coord, error) {
	return cc.flipRow(c)
}

// flipRow mirrors the row across the horizontal board axis.
func (cc Codec) flipRow(c Coord) (Coord, error) {
	if c.IsPass() {
		return Pass, nil
	}
	if !cc.onBoard(c) {
		return Pass, fmt.Errorf("%w: (%d,%d) not on a %d×%d board", ErrOutOfRange, c.Row, c.Col, cc.size, cc.size)
	}

	return Coord{Row: cc.size - 1 - c.Row, Col: c.Col}, nil
}
