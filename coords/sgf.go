package coords

import (
	"fmt"
	"strings"
)

// FromSGF converts an SGF token to a coordinate. The empty string decodes
// to Pass; otherwise the token must be exactly two alphabet letters in
// (column, row) order — the reverse of the canonical (row, column).
// Returns ErrInvalidFormat for a wrong-length token or a character outside
// the 52-symbol alphabet, and ErrOutOfRange when the decoded point lies
// off the board for this codec's size.
// Complexity: O(1).
func (cc Codec) FromSGF(token string) (Coord, error) {
	if token == "" {
		return Pass, nil
	}
	if len(token) != 2 {
		return Pass, fmt.Errorf("%w: sgf token %q must be exactly two letters", ErrInvalidFormat, token)
	}
	col := strings.IndexByte(sgfColumns, token[0])
	row := strings.IndexByte(sgfColumns, token[1])
	if col < 0 || row < 0 {
		return Pass, fmt.Errorf("%w: sgf token %q contains a letter outside a-zA-Z", ErrInvalidFormat, token)
	}
	c := Coord{Row: row, Col: col}
	if !cc.onBoard(c) {
		return Pass, fmt.Errorf("%w: sgf token %q decodes to (%d,%d) on a %d×%d board", ErrOutOfRange, token, row, col, cc.size, cc.size)
	}

	return c, nil
}

// ToSGF converts a coordinate to its SGF token: column letter then row
// letter from the 52-symbol alphabet; Pass encodes to the empty string.
// Returns ErrOutOfRange if a non-Pass coordinate lies off the board.
// Complexity: O(1).
func (cc Codec) ToSGF(c Coord) (string, error) {
	if c.IsPass() {
		return "", nil
	}
	if !cc.onBoard(c) {
		return "", fmt.Errorf("%w: (%d,%d) not on a %d×%d board", ErrOutOfRange, c.Row, c.Col, cc.size, cc.size)
	}

	return string([]byte{sgfColumns[c.Col], sgfColumns[c.Row]}), nil
}
