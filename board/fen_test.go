package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFENStartingPosition(t *testing.T) {
	p, err := FromFEN(StartingFEN)
	require.NoError(t, err)
	assert.Equal(t, White, p.Color)
	assert.Equal(t, uint16(0), p.Halfmoves)
	assert.Equal(t, uint16(1), p.Fullmoves)
	assert.Equal(t, E1, p.King[Ours])
	assert.Equal(t, E8, p.King[Theirs])
	assert.Equal(t, 8, p.PieceBitboard(Ours, Pawn).CountBits())
	assert.Equal(t, 8, p.PieceBitboard(Theirs, Pawn).CountBits())
	assert.True(t, p.HasCastling(Ours, Kingside))
	assert.True(t, p.HasCastling(Ours, Queenside))
	assert.True(t, p.HasCastling(Theirs, Kingside))
	assert.True(t, p.HasCastling(Theirs, Queenside))
	assert.Equal(t, InvalidSquare, p.EnPassant(Ours))
}

func TestFromFENBlackToMoveRotatesPlacement(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, Black, p.Color)
	assert.Equal(t, 8, p.PieceBitboard(Ours, Pawn).CountBits())
	assert.Equal(t, 8, p.PieceBitboard(Theirs, Pawn).CountBits())
	assert.True(t, p.King[Ours].Valid())
	assert.True(t, p.King[Theirs].Valid())

	// Rotating back recovers the pre-rotation (White-to-move) placement.
	white, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, white, p.Rotate())
}

func TestFromFENEnPassantField(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	d6, _ := SquareFromString("d6")
	assert.Equal(t, d6, p.EnPassant(Ours))
}

func TestFromFENRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",            // too few fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",                    // rank missing
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",          // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkqKQkq - 0 1",      // over-long castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",          // non-numeric halfmove
	}
	for _, fen := range cases {
		_, err := FromFEN(fen)
		assert.ErrorIs(t, err, ErrMalformedInput, "fen: %q", fen)
	}
}

func TestFromFENRoundTripsCastlingRights(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
	require.NoError(t, err)
	assert.True(t, p.HasCastling(Ours, Kingside))
	assert.False(t, p.HasCastling(Ours, Queenside))
	assert.False(t, p.HasCastling(Theirs, Kingside))
	assert.True(t, p.HasCastling(Theirs, Queenside))
}
