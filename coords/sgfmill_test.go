package coords_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yesArjan/goboard/coords"
)

// TestSgfmill_RowFlip19 pins the documented 19×19 correspondence: the
// canonical upper-left corner is sgfmill's (18, 0).
func TestSgfmill_RowFlip19(t *testing.T) {
	cc := codec19(t)

	sc, err := cc.ToSgfmill(coords.Coord{Row: 0, Col: 0})
	assert.NoError(t, err)
	assert.Equal(t, coords.Coord{Row: 18, Col: 0}, sc)

	c, err := cc.FromSgfmill(coords.Coord{Row: 18, Col: 0})
	assert.NoError(t, err)
	assert.Equal(t, coords.Coord{Row: 0, Col: 0}, c)
}

// TestSgfmill_SelfInverse verifies that applying the transform twice is
// the identity on every point of a 5×5 board.
func TestSgfmill_SelfInverse(t *testing.T) {
	cc, err := coords.New(5)
	assert.NoError(t, err)

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			c := coords.Coord{Row: row, Col: col}
			once, err := cc.ToSgfmill(c)
			assert.NoError(t, err)
			twice, err := cc.ToSgfmill(once)
			assert.NoError(t, err)
			assert.Equal(t, c, twice, "double flip of (%d,%d) must be the identity", row, col)
		}
	}
}

// TestSgfmill_Pass maps the shared sentinel through unchanged in both
// directions.
func TestSgfmill_Pass(t *testing.T) {
	cc := codec19(t)

	sc, err := cc.ToSgfmill(coords.Pass)
	assert.NoError(t, err)
	assert.True(t, sc.IsPass())

	c, err := cc.FromSgfmill(coords.Pass)
	assert.NoError(t, err)
	assert.True(t, c.IsPass())
}

// TestSgfmill_OffBoard rejects pairs outside the board in both directions.
func TestSgfmill_OffBoard(t *testing.T) {
	cc := codec19(t)

	_, err := cc.ToSgfmill(coords.Coord{Row: 19, Col: 3})
	assert.ErrorIs(t, err, coords.ErrOutOfRange)

	_, err = cc.FromSgfmill(coords.Coord{Row: 3, Col: -2})
	assert.ErrorIs(t, err, coords.ErrOutOfRange)
}
