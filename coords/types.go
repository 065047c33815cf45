// Package coords defines the coordinate and codec types plus the
// constant alphabets shared by every notation.
package coords

// sgfColumns is the 52-symbol SGF alphabet: lowercase a-z, then uppercase
// A-Z. Index i encodes column or row i, supporting boards up to 52 per side.
const sgfColumns = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// kgsColumns is the 25-symbol KGS column alphabet. The letter I is skipped
// due to its similarity with lowercase l.
const kgsColumns = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// MaxBoardSize is the largest side length any notation here can express;
// it equals the length of the SGF alphabet.
const MaxBoardSize = len(sgfColumns)

// kgsPass is the KGS literal for the pass move (compared case-insensitively
// on input, emitted lowercase on output).
const kgsPass = "pass"

// Coord is a point on the board as (Row, Col), both zero-indexed from the
// top-left corner, or the distinguished value Pass. The same pair shape is
// reused for the bottom-left-origin sgfmill form; only the row origin
// differs (see FromSgfmill/ToSgfmill).
type Coord struct {
	Row, Col int
}

// Pass is the "no stone placed" move. It is shared by every notation:
// flat index size², SGF "", KGS "pass", and the sgfmill absent value all
// decode to Pass, and Pass encodes back to each of them.
var Pass = Coord{Row: -1, Col: -1}

// IsPass reports whether c is the pass move.
// Complexity: O(1).
func (c Coord) IsPass() bool {
	return c == Pass
}

// Codec converts between the canonical coordinate form and the flat, SGF,
// KGS, and sgfmill notations for one fixed board size. It is an immutable
// value once built: concurrent conversions on shared or distinct codecs
// need no synchronization.
type Codec struct {
	size int
}

// New constructs a Codec for a size×size board.
// Returns ErrBoardSize unless 1 ≤ size ≤ MaxBoardSize (52); sizes above 25
// remain constructible because the SGF alphabet supports them, though KGS
// encoding of columns past the 25th letter fails with ErrOutOfRange.
// Complexity: O(1).
func New(size int) (Codec, error) {
	if size < 1 || size > MaxBoardSize {
		return Codec{}, ErrBoardSize
	}

	return Codec{size: size}, nil
}

// Size returns the board side length the codec was built for.
// Complexity: O(1).
func (cc Codec) Size() int {
	return cc.size
}

// onBoard reports whether c is a non-Pass coordinate inside the board.
// Complexity: O(1).
func (cc Codec) onBoard(c Coord) bool {
	return c.Row >= 0 && c.Row < cc.size && c.Col >= 0 && c.Col < cc.size
}
