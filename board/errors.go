package board

import "errors"

// ErrMalformedInput is returned (wrapped with more detail via fmt.Errorf's
// %w) when FromFEN is given a string that does not parse: an unrecognized
// character, a rank with the wrong number of squares, an invalid
// side-to-move letter, an over-long castling field, or a non-numeric
// halfmove/fullmove field.
var ErrMalformedInput = errors.New("board: malformed input")
