package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnightAttacksCorners(t *testing.T) {
	assert.Equal(t,
		RankFile(1, 2).Bitboard()|RankFile(2, 1).Bitboard(),
		KnightAttacks(SquareA1))
}

func TestKingAttacksCenter(t *testing.T) {
	e4 := RankFile(3, 4)
	assert.Equal(t, int32(8), KingAttacks(e4).Popcnt())
}

// TestMagicAttacksMatchReference checks the magic-bitboard rook and bishop
// tables against the brute-force ray-casting they were built from, across
// random occupancies, for every square.
func TestMagicAttacksMatchReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
		for i := 0; i < 64; i++ {
			occ := Bitboard(rnd.Uint64())
			assert.Equal(t, slidingAttack(sq, rookDeltas, occ), RookAttacks(sq, occ),
				"rook attacks from %s", sq)
			assert.Equal(t, slidingAttack(sq, bishopDeltas, occ), BishopAttacks(sq, occ),
				"bishop attacks from %s", sq)
		}
	}
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	sq := RankFile(3, 3)
	occ := Bitboard(0)
	assert.Equal(t, RookAttacks(sq, occ)|BishopAttacks(sq, occ), QueenAttacks(sq, occ))
}
