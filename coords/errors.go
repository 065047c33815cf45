package coords

import "errors"

// Sentinel errors for codec construction and conversions.
var (
	// ErrBoardSize indicates a board size outside [1, MaxBoardSize].
	ErrBoardSize = errors.New("coords: board size must be between 1 and 52")
	// ErrInvalidFormat indicates a token that does not match the notation's
	// grammar: wrong length, a character outside the alphabet, a non-numeric
	// KGS row, or the reserved KGS letter I.
	ErrInvalidFormat = errors.New("coords: token does not match notation grammar")
	// ErrOutOfRange indicates a syntactically valid input that denotes a
	// point off the board, or a flat index outside [0, size²].
	ErrOutOfRange = errors.New("coords: coordinate out of board range")
)
