package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sidechess.dev/engine/board"
)

func TestNodesDepthZeroIsOne(t *testing.T) {
	var p board.Position
	p.Init()
	assert.Equal(t, 1, Nodes(p, 0))
}

func TestNodesStartingPositionDepthOne(t *testing.T) {
	var p board.Position
	p.Init()
	assert.Equal(t, 20, Nodes(p, 1))
}

func TestNodesStartingPositionDepthTwo(t *testing.T) {
	// Shallow enough that no pseudo-legal reply exposes its own king, so the
	// pseudo-legal count still matches the well-known legal perft(2)=400.
	var p board.Position
	p.Init()
	assert.Equal(t, 400, Nodes(p, 2))
}

func TestDivideSumsToNodes(t *testing.T) {
	var p board.Position
	p.Init()

	counts := Divide(p, 3)
	sum := 0
	for _, n := range counts {
		sum += n
	}
	assert.Equal(t, Nodes(p, 3), sum)
	assert.Len(t, counts, 20)
}

func TestNodesKiwipeteDepthOne(t *testing.T) {
	// Chessprogramming.org's "kiwipete" position, a standard perft torture
	// test exercising castling, promotions and en-passant simultaneously.
	p, err := board.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, 48, Nodes(p, 1))
}
