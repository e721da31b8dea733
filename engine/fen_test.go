package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartPositionFEN(t *testing.T) {
	pos := StartPosition()
	assert.Equal(t, startFEN, pos.FEN())
	require.NoError(t, pos.Verify())
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		startFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		pos, err := PositionFromFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, pos.FEN())
		assert.Equal(t, ZobristKey(pos), pos.Zobrist)
	}
}

func TestFENRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", // missing field
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",        // only 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
	}
	for _, fen := range bad {
		_, err := PositionFromFEN(fen)
		assert.Error(t, err, fen)
	}
}

func TestEnpassantFENRoundTrip(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"
	pos, err := PositionFromFEN(fen)
	require.NoError(t, err)
	assert.Equal(t, fen, pos.FEN())
	sq, _ := SquareFromString("d6")
	assert.Equal(t, sq, pos.Enpassant)
}
