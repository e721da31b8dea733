package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/zurichess/corechess/engine"
)

const (
	startFEN     = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	enPassantFEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2pP/R2Q1RK1 w kq - 0 1"
)

func countNodesAtDepth(t *testing.T, fen string, depth int) uint64 {
	t.Helper()
	pos, err := engine.PositionFromFEN(fen)
	require.NoError(t, err)
	return Perft(pos, depth).Nodes
}

func TestPerftStartPosition(t *testing.T) {
	expected := []uint64{1, 20, 400, 8902, 197281, 4865609}
	for depth, want := range expected {
		if depth == 0 {
			continue
		}
		if testing.Short() && want > 1000000 {
			continue
		}
		got := countNodesAtDepth(t, startFEN, depth)
		assert.Equal(t, want, got, "start position depth %d", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	expected := []uint64{1, 48, 2039, 97862, 4085603}
	for depth, want := range expected {
		if depth == 0 {
			continue
		}
		if testing.Short() && want > 1000000 {
			continue
		}
		got := countNodesAtDepth(t, kiwipeteFEN, depth)
		assert.Equal(t, want, got, "kiwipete depth %d", depth)
	}
}

func TestPerftEnPassantPosition(t *testing.T) {
	expected := []uint64{1, 6, 264}
	for depth, want := range expected {
		if depth == 0 {
			continue
		}
		got := countNodesAtDepth(t, enPassantFEN, depth)
		assert.Equal(t, want, got, "en passant position depth %d", depth)
	}
}

func TestPerftKiwipeteCountsCastlesAndCaptures(t *testing.T) {
	pos, err := engine.PositionFromFEN(kiwipeteFEN)
	require.NoError(t, err)
	c := Perft(pos, 1)
	assert.Equal(t, uint64(48), c.Nodes)
	assert.Equal(t, uint64(8), c.Captures)
	assert.Equal(t, uint64(2), c.Castles)
	assert.Equal(t, uint64(0), c.Promotions)
}

func BenchmarkPerftStartPosition(b *testing.B) {
	pos, _ := engine.PositionFromFEN(startFEN)
	for i := 0; i < b.N; i++ {
		Perft(pos, 4)
	}
}

func BenchmarkPerftKiwipete(b *testing.B) {
	pos, _ := engine.PositionFromFEN(kiwipeteFEN)
	for i := 0; i < b.N; i++ {
		Perft(pos, 3)
	}
}
