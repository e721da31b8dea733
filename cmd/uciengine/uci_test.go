package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/zurichess/corechess/config"
	"bitbucket.org/zurichess/corechess/engine"
)

func TestPositionStartposWithMoves(t *testing.T) {
	u := newUCI(config.Config{})
	require.NoError(t, u.execute("position startpos moves e2e4 e7e5"))
	assert.Equal(t, engine.White, u.engine.Position().SideToMove)
	assert.Equal(t, 2, u.engine.Position().FullmoveNumber)
}

func TestPositionFEN(t *testing.T) {
	u := newUCI(config.Config{})
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	require.NoError(t, u.execute("position fen "+fen))
	assert.Equal(t, fen, u.engine.Position().FEN())
}

func TestPositionRejectsUnknownSubcommand(t *testing.T) {
	u := newUCI(config.Config{})
	assert.Error(t, u.execute("position bogus"))
}

func TestGoDepthOverridesSearchDepth(t *testing.T) {
	u := newUCI(config.Config{})
	require.NoError(t, u.execute("go depth 1"))
	u.waitIdle()
	assert.Equal(t, 1, u.engine.MaxDepth())
}

func TestComputeTimeControlPrefersMovetime(t *testing.T) {
	u := newUCI(config.Config{})
	tc := u.computeTimeControl(time.Hour, time.Hour, 0, 0, 50*time.Millisecond, false)
	assert.False(t, tc.Stopped())
	time.Sleep(60 * time.Millisecond)
	assert.True(t, tc.ShouldStop(0), "the 50ms movetime budget applies even though the clocks allow more")
}

func TestQuitReturnsErrQuit(t *testing.T) {
	u := newUCI(config.Config{})
	assert.ErrorIs(t, u.execute("quit"), errQuit)
}
