// search.go implements iterative deepening over a fail-soft negamax search
// with alpha-beta pruning, quiescence search, transposition-table probing
// and storing with mate-distance adjustment, and the move-ordering and
// time-cutoff machinery of spec §4.8.
//
// Grounded on the search loop shape of
// _examples/easychessanimations-zurichess/engine/engine.go
// (searchTree/searchQuiescence/Play), trimmed to the pruning techniques
// spec.md actually asks for: no null-move pruning, late-move reductions,
// aspiration windows or futility pruning, which that engine's own
// searchTree additionally implements but which SPEC_FULL.md's search
// section does not name.

package engine

const (
	// Inf is larger than any real evaluation or mate score, used as the
	// initial alpha-beta window.
	Inf = int32(1 << 20)

	// MateValue is the score of delivering mate on the current ply. Scores
	// within MateThreshold of it represent a forced mate rather than a
	// material evaluation.
	MateValue     = int32(29000)
	MateThreshold = MateValue - 512

	maxSearchPly = 128
)

// Options configures an Engine.
type Options struct {
	HashSizeMB int
	MaxDepth   int
}

// DefaultOptions holds the values NewEngine uses for any zero field of its
// Options, which is what a zero-value config.Config resolves to.
var DefaultOptions = Options{HashSizeMB: DefaultHashTableSizeMB, MaxDepth: 64}

// Searcher runs iterative-deepening search over a Position. It keeps its
// history table across calls to Search and resets its killer table at the
// start of each. The transposition table belongs to the caller; since
// Engine.Play builds a new Searcher per call, the table is the only
// ordering state carried from one "go" command to the next.
type Searcher struct {
	pos     *Position
	tt      *HashTable
	killers *KillerTable
	history *HistoryTable
	logger  Logger

	tc    *TimeControl
	nodes uint64

	pvTable  [maxSearchPly][maxSearchPly]Move
	pvLength [maxSearchPly]int
}

// NewSearcher returns a Searcher over pos, sharing tt across games unless
// the caller clears it (Engine.NewGame does, via HashTable.Clear).
func NewSearcher(pos *Position, tt *HashTable, logger Logger) *Searcher {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Searcher{
		pos:     pos,
		tt:      tt,
		killers: &KillerTable{},
		history: &HistoryTable{},
		logger:  logger,
	}
}

// Search runs iterative deepening up to maxDepth plies or until tc signals
// a stop, and returns the principal variation found at the deepest
// completed iteration. It returns an empty slice if the position has no
// legal moves.
func (s *Searcher) Search(maxDepth int, tc *TimeControl) []Move {
	if !s.pos.HasLegalMove() {
		return nil
	}
	s.tc = tc
	s.killers = &KillerTable{}

	var best []Move
	s.logger.BeginSearch()
	defer s.logger.EndSearch()

	for depth := 1; depth <= maxDepth; depth++ {
		s.nodes = 0
		for i := range s.pvLength {
			s.pvLength[i] = 0
		}
		score := s.negamax(depth, 0, -Inf, Inf)
		if tc.Stopped() && depth > 1 {
			break
		}

		pv := s.currentPV()
		if len(pv) > 0 {
			best = pv
		}
		s.logger.PrintPV(SearchStats{
			Depth:   depth,
			Score:   score, // relative to the side to move at the root, per UCI convention
			Nodes:   s.nodes,
			Elapsed: tc.Elapsed(),
			PV:      pv,
		})
		if tc.Stopped() {
			break
		}
		if score > MateThreshold || score < -MateThreshold {
			break
		}
	}
	return best
}

func (s *Searcher) currentPV() []Move {
	n := s.pvLength[0]
	pv := make([]Move, n)
	copy(pv, s.pvTable[0][:n])
	return pv
}

// negamax searches pos to depth plies from ply, returning a score relative
// to the side to move. It is fail-soft: the returned value may lie outside
// [alpha, beta] rather than being clamped to it.
func (s *Searcher) negamax(depth, ply int, alpha, beta int32) int32 {
	s.pvLength[ply] = ply
	pos := s.pos

	if ply > 0 && (pos.HalfmoveClock >= 100 || pos.IsThreeFoldRepetition()) {
		return 0
	}

	alphaOrig := alpha
	var ttMove Move
	if move, score, ttDepth, bound, ok := s.tt.Get(pos.Zobrist); ok {
		ttMove = move
		if int(ttDepth) >= depth && ply > 0 {
			adjusted := adjustMateScoreFromTT(score, ply)
			switch bound {
			case ExactBound:
				return adjusted
			case LowerBound:
				if adjusted > alpha {
					alpha = adjusted
				}
			case UpperBound:
				if adjusted < beta {
					beta = adjusted
				}
			}
			if alpha >= beta {
				return adjusted
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(ply, alpha, beta)
	}

	moves := pos.PseudoLegalMoves()
	OrderMoves(moves, ttMove, ply, s.killers, s.history)

	us := pos.SideToMove
	best := -Inf
	var bestMove Move
	legalCount := 0

	for _, m := range moves {
		pos.DoMove(m)
		if pos.IsChecked(us) {
			pos.UndoMove()
			continue
		}
		legalCount++
		s.nodes++

		score := -s.negamax(depth-1, ply+1, -beta, -alpha)
		pos.UndoMove()

		if s.tc.ShouldStop(s.nodes) {
			return best
		}

		if score > best {
			best = score
			bestMove = m
			s.pvTable[ply][ply] = m
			copy(s.pvTable[ply][ply+1:], s.pvTable[ply+1][ply+1:s.pvLength[ply+1]])
			s.pvLength[ply] = s.pvLength[ply+1]
			if s.pvLength[ply] <= ply {
				s.pvLength[ply] = ply + 1
			}
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if m.IsQuiet() {
				s.killers.Add(ply, m)
				s.history.Add(m.Piece(), m.To(), int8(depth))
			}
			break
		}
	}

	if legalCount == 0 {
		if pos.IsChecked(us) {
			return -MateValue + int32(ply)
		}
		return 0
	}

	bound := ExactBound
	switch {
	case best <= alphaOrig:
		bound = UpperBound
	case best >= beta:
		bound = LowerBound
	}
	s.tt.Put(pos.Zobrist, bestMove, adjustMateScoreForTT(best, ply), int8(depth), bound)

	return best
}

// quiescence extends the search along captures and promotions only, to
// avoid misjudging a position in the middle of a tactical exchange (spec
// §4.8's quiescence requirement).
func (s *Searcher) quiescence(ply int, alpha, beta int32) int32 {
	s.nodes++
	pos := s.pos
	standPat := Evaluate(pos) * pos.SideToMove.Multiplier()

	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}
	if ply >= maxSearchPly-1 {
		return standPat
	}

	us := pos.SideToMove
	moves := pos.PseudoLegalMoves()
	tactical := moves[:0]
	for _, m := range moves {
		if !m.IsQuiet() {
			tactical = append(tactical, m)
		}
	}
	OrderMoves(tactical, NullMove, ply, nil, nil)

	best := standPat
	for _, m := range tactical {
		pos.DoMove(m)
		if pos.IsChecked(us) {
			pos.UndoMove()
			continue
		}
		score := -s.quiescence(ply+1, -beta, -alpha)
		pos.UndoMove()

		if s.tc.ShouldStop(s.nodes) {
			return best
		}
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// adjustMateScoreForTT converts a mate score counted from the root into one
// counted from the current node (plies from this node to mate), so
// that storing and retrieving it at a different ply still reports the
// correct distance to mate (spec §4.6's mate-distance adjustment).
func adjustMateScoreForTT(score int32, ply int) int32 {
	switch {
	case score > MateThreshold:
		return score + int32(ply)
	case score < -MateThreshold:
		return score - int32(ply)
	default:
		return score
	}
}

func adjustMateScoreFromTT(score int32, ply int) int32 {
	switch {
	case score > MateThreshold:
		return score - int32(ply)
	case score < -MateThreshold:
		return score + int32(ply)
	default:
		return score
	}
}
