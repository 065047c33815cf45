package coords

import "fmt"

// FromFlat converts a flat index back to a coordinate.
// Indices [0, size²) map row-major (row = flat/size, col = flat%size);
// the index size² itself decodes to Pass.
// Returns ErrOutOfRange if flat < 0 or flat > size².
// Complexity: O(1).
func (cc Codec) FromFlat(flat int) (Coord, error) {
	if flat < 0 || flat > cc.size*cc.size {
		return Pass, fmt.Errorf("%w: flat index %d not in [0, %d]", ErrOutOfRange, flat, cc.size*cc.size)
	}
	if flat == cc.size*cc.size {
		return Pass, nil
	}

	return Coord{Row: flat / cc.size, Col: flat % cc.size}, nil
}

// ToFlat converts a coordinate to its row-major flat index
// (flat = row*size + col); Pass encodes to size². The flat form indexes
// policy vectors of length size²+1, whose final slot is the pass move.
// Returns ErrOutOfRange if a non-Pass coordinate lies off the board.
// Complexity: O(1).
func (cc Codec) ToFlat(c Coord) (int, error) {
	if c.IsPass() {
		return cc.size * cc.size, nil
	}
	if !cc.onBoard(c) {
		return 0, fmt.Errorf("%w: (%d,%d) not on a %d×%d board", ErrOutOfRange, c.Row, c.Col, cc.size, cc.size)
	}

	return c.Row*cc.size + c.Col, nil
}
