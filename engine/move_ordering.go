// move_ordering.go ranks moves before they reach the search, following
// spec §4.7: the transposition table's move first, then captures by
// MVV-LVA, then killer moves, then everything else by history score.
//
// Grounded on the scoring tiers and Shellsort pass of
// _examples/easychessanimations-zurichess/engine/move_ordering.go,
// simplified to a single score-then-sort pass per node instead of the
// teacher's staged move-generation state machine.

package engine

const maxKillerPly = 128

// mvvLvaValue ranks figures for "most valuable victim, least valuable
// attacker" capture ordering. Index is Figure; NoFigure's zero entry is
// never read for a capture.
var mvvLvaValue = [FigureArraySize]int32{0, 100, 320, 330, 500, 900, 20000}

const (
	scoreTT      = 1 << 30
	scoreCapture = 1 << 20
	scoreKiller  = 1 << 10
	scorePromo   = 1 << 15
)

// KillerTable remembers up to two quiet moves per ply that caused a beta
// cutoff, tried early at that ply in sibling nodes before falling back to
// history ordering.
type KillerTable struct {
	killers [maxKillerPly][2]Move
}

// Add records m as the primary killer at ply, bumping the previous primary
// killer down to secondary unless m is already the primary killer.
func (kt *KillerTable) Add(ply int, m Move) {
	if ply >= maxKillerPly || m.IsCapture() {
		return
	}
	slot := &kt.killers[ply]
	if slot[0] == m {
		return
	}
	slot[1] = slot[0]
	slot[0] = m
}

func (kt *KillerTable) isKiller(ply int, m Move) bool {
	if ply >= maxKillerPly {
		return false
	}
	slot := &kt.killers[ply]
	return slot[0] == m || slot[1] == m
}

// HistoryTable scores quiet moves, indexed by moving piece and destination
// square, that have historically produced beta cutoffs, aged by halving
// whenever it would overflow a search-friendly range.
type HistoryTable struct {
	score [PieceArraySize][SquareArraySize]int32
}

// Add rewards a quiet move that caused a beta cutoff at depth.
func (ht *HistoryTable) Add(pi Piece, to Square, depth int8) {
	bonus := int32(depth) * int32(depth)
	s := &ht.score[pi][to]
	*s += bonus
	if *s > 1<<24 {
		for p := range ht.score {
			for sq := range ht.score[p] {
				ht.score[p][sq] /= 2
			}
		}
	}
}

func (ht *HistoryTable) get(pi Piece, to Square) int32 { return ht.score[pi][to] }

// OrderMoves scores and sorts moves in place, highest priority first:
// the transposition-table move, then captures/promotions by MVV-LVA and
// promotion value, then killers for this ply, then quiet moves by history.
func OrderMoves(moves []Move, ttMove Move, ply int, kt *KillerTable, ht *HistoryTable) {
	scores := make([]int32, len(moves))
	for i, m := range moves {
		scores[i] = moveScore(m, ttMove, ply, kt, ht)
	}
	// Insertion sort: move counts per node are small (a few dozen at most),
	// and this keeps equal-score moves in generation order.
	for i := 1; i < len(moves); i++ {
		mv, sc := moves[i], scores[i]
		j := i - 1
		for j >= 0 && scores[j] < sc {
			moves[j+1] = moves[j]
			scores[j+1] = scores[j]
			j--
		}
		moves[j+1] = mv
		scores[j+1] = sc
	}
}

func moveScore(m Move, ttMove Move, ply int, kt *KillerTable, ht *HistoryTable) int32 {
	if m == ttMove {
		return scoreTT
	}
	if m.IsCapture() {
		victim := m.Capture().Figure()
		if m.Flag() == EnPassant {
			victim = Pawn
		}
		attacker := m.Piece().Figure()
		return scoreCapture + mvvLvaValue[victim]*16 - mvvLvaValue[attacker]
	}
	if promo := m.Promotion(); promo != NoFigure {
		return scorePromo + mvvLvaValue[promo]
	}
	if kt != nil && kt.isKiller(ply, m) {
		return scoreKiller
	}
	if ht != nil {
		return min(ht.get(m.Piece(), m.To()), scoreKiller-1)
	}
	return 0
}
