package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRaysNorthFromA1(t *testing.T) {
	assert.Equal(t, 7, Rays[DirN][A1].CountBits())
	a4, _ := SquareFromString("a4")
	assert.True(t, Rays[DirN][A1].Has(a4))
	assert.False(t, Rays[DirN][A1].Has(A1))
}

func TestRaysEdgeSquaresAreEmpty(t *testing.T) {
	assert.Equal(t, Bitboard(0), Rays[DirE][H1])
	assert.Equal(t, Bitboard(0), Rays[DirN][A8])
	assert.Equal(t, Bitboard(0), Rays[DirW][A1])
	assert.Equal(t, Bitboard(0), Rays[DirS][A1])
}

func TestRaysDiagonalLength(t *testing.T) {
	assert.Equal(t, 7, Rays[DirNE][A1].CountBits())
	assert.True(t, Rays[DirNE][A1].Has(H8))
}
