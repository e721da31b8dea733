package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashTablePutGetRoundTrip(t *testing.T) {
	ht := NewHashTable(1)
	key := uint64(0x1234567890abcdef)
	m := NewMove(SquareA1, RankFile(1, 0), ColorFigure(White, Pawn), NoPiece, NoFigure, Normal)

	_, _, _, _, ok := ht.Get(key)
	assert.False(t, ok)

	ht.Put(key, m, 150, 4, ExactBound)
	gotMove, gotScore, gotDepth, gotBound, ok := ht.Get(key)
	assert.True(t, ok)
	assert.Equal(t, m, gotMove)
	assert.Equal(t, int32(150), gotScore)
	assert.Equal(t, int8(4), gotDepth)
	assert.Equal(t, ExactBound, gotBound)
}

func TestHashTableRejectsLockCollision(t *testing.T) {
	ht := NewHashTable(1)
	index := uint64(7)
	keyA := index
	keyB := index | (uint64(1) << 40) // same low bits, different lock

	ht.Put(keyA, NullMove, 1, 5, ExactBound)
	_, _, _, _, ok := ht.Get(keyB)
	assert.False(t, ok, "a different lock at the same index must not be returned as a hit")
}

func TestHashTableKeepsDeeperEntry(t *testing.T) {
	ht := NewHashTable(1)
	key := uint64(99)
	deepMove := NewMove(SquareA1, RankFile(2, 0), ColorFigure(White, Pawn), NoPiece, NoFigure, Normal)

	ht.Put(key, deepMove, 200, 10, ExactBound)
	ht.Put(key, NullMove, -200, 2, UpperBound)

	gotMove, gotScore, gotDepth, _, ok := ht.Get(key)
	assert.True(t, ok)
	assert.Equal(t, deepMove, gotMove, "a shallower non-exact store must not overwrite a deeper entry")
	assert.Equal(t, int32(200), gotScore)
	assert.Equal(t, int8(10), gotDepth)
}

func TestHashTableClear(t *testing.T) {
	ht := NewHashTable(1)
	ht.Put(1, NullMove, 10, 3, ExactBound)
	ht.Clear()
	_, _, _, _, ok := ht.Get(1)
	assert.False(t, ok)
}
