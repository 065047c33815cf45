package coords

import (
	"fmt"
	"strconv"
	"strings"
)

// FromKGS converts a KGS token to a coordinate. The literal "pass" (any
// case) decodes to Pass. Otherwise the token is upper-cased; its first
// character is looked up in the 25-letter column alphabet (I is reserved
// and rejected), and the remainder must be a 1-based row number counted
// from the bottom edge, so canonical row = size - rowFromBottom.
// Returns ErrInvalidFormat for a missing/reserved/unknown column letter or
// a non-numeric row, and ErrOutOfRange for a row outside [1, size] or a
// column letter beyond the board.
// Complexity: O(len(token)).
func (cc Codec) FromKGS(token string) (Coord, error) {
	if strings.EqualFold(token, kgsPass) {
		return Pass, nil
	}
	if token == "" {
		return Pass, fmt.Errorf("%w: empty kgs token", ErrInvalidFormat)
	}
	up := strings.ToUpper(token)
	col := strings.IndexByte(kgsColumns, up[0])
	if col < 0 {
		return Pass, fmt.Errorf("%w: kgs token %q has no valid column letter (I is reserved)", ErrInvalidFormat, token)
	}
	rowFromBottom, err := strconv.ParseUint(up[1:], 10, 64)
	if err != nil {
		return Pass, fmt.Errorf("%w: kgs token %q has a non-numeric row", ErrInvalidFormat, token)
	}
	if rowFromBottom < 1 || rowFromBottom > uint64(cc.size) {
		return Pass, fmt.Errorf("%w: kgs row %d not in [1, %d]", ErrOutOfRange, rowFromBottom, cc.size)
	}
	if col >= cc.size {
		return Pass, fmt.Errorf("%w: kgs column %q beyond a %d×%d board", ErrOutOfRange, up[:1], cc.size, cc.size)
	}

	return Coord{Row: cc.size - int(rowFromBottom), Col: col}, nil
}

// ToKGS converts a coordinate to its KGS token: upper-case column letter
// (skipping I) followed by the 1-based row counted from the bottom edge;
// Pass encodes to "pass".
// Returns ErrOutOfRange if a non-Pass coordinate lies off the board or its
// column has no letter in the 25-symbol alphabet (boards larger than 25).
// Complexity: O(1).
func (cc Codec) ToKGS(c Coord) (string, error) {
	if c.IsPass() {
		return kgsPass, nil
	}
	if !cc.onBoard(c) {
		return "", fmt.Errorf("%w: (%d,%d) not on a %d×%d board", ErrOutOfRange, c.Row, c.Col, cc.size, cc.size)
	}
	if c.Col >= len(kgsColumns) {
		return "", fmt.Errorf("%w: column %d has no kgs letter", ErrOutOfRange, c.Col)
	}

	return string(kgsColumns[c.Col]) + strconv.Itoa(cc.size-c.Row), nil
}
