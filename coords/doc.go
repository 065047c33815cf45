// Package coords converts positions on a square Go board between the
// canonical (row, column) form and four external notations, losslessly
// and for any fixed board size from 1 to 52.
//
// What:
//
//   - Codec binds one board size into an immutable value; every conversion
//     is a pure method on it.
//   - Canonical: Coord{Row, Col}, zero-indexed from the top-left, or Pass.
//   - Flat: row-major integer in [0, size²], where size² itself is Pass —
//     the index space of policy/legal-move vectors of length size²+1.
//   - SGF: two letters from a 52-symbol alphabet (a-z then A-Z), ordered
//     (column, row); "" is Pass.
//   - KGS: column letter from A-Z skipping I, then a 1-based row counted
//     from the bottom edge; "pass" is Pass.
//   - sgfmill: (row, col) with bottom-left origin; Pass is shared.
//
// Why:
//
//   - Training pipelines consume flat indices as policy targets.
//   - Game records store SGF tokens; servers and humans speak KGS tokens.
//   - Third-party board libraries exchange the bottom-left-origin pair.
//
// For a 19×19 board the notations correspond as:
//
//	Notation    upper-left   upper-right   pass
//	---------------------------------------------
//	canonical   (0, 0)       (0, 18)       Pass
//	flat        0            18            361
//	SGF         "aa"         "sa"          ""
//	KGS         "A19"        "T19"         "pass"
//	sgfmill     (18, 0)      (18, 18)      Pass
//
// Every conversion pair is a bijection between {Pass} ∪ [0,size)² and the
// notation's legal value set, so round-tripping through any notation is
// the identity.
//
// Complexity:
//
//   - Every conversion: O(1) time (O(len(token)) for KGS parsing), zero
//     allocations beyond the returned token.
//
// Errors:
//
//   - ErrBoardSize: New given a size outside [1, 52].
//   - ErrInvalidFormat: token violates the notation's grammar.
//   - ErrOutOfRange: syntactically valid input off the board, or a flat
//     index outside [0, size²].
//
// The codec never logs and never clamps; every failure returns one of the
// sentinel errors, wrapped with context for errors.Is.
package coords
