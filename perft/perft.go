// Package perft counts leaf nodes of the legal move tree to a fixed depth,
// the standard technique for regression-testing a move generator: known
// positions have published leaf counts at each depth, and any divergence
// pinpoints a move generation bug long before it would show up as a bad
// search result.
//
// Grounded on _examples/easychessanimations-zurichess/perft/perft.go's
// counters/perft split, adapted to this module's Position/Move API and
// exposed as a library rather than a flag-driven binary.
package perft

import "bitbucket.org/zurichess/corechess/engine"

// Counters tallies the leaf nodes reached at the target depth, broken down
// by the move type that led to each leaf.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
}

// Add accumulates ot into co.
func (co *Counters) Add(ot Counters) {
	co.Nodes += ot.Nodes
	co.Captures += ot.Captures
	co.EnPassant += ot.EnPassant
	co.Castles += ot.Castles
	co.Promotions += ot.Promotions
}

// Perft walks the legal move tree rooted at pos to depth plies and returns
// leaf counters. depth 0 counts pos itself as a single leaf.
func Perft(pos *engine.Position, depth int) Counters {
	if depth == 0 {
		return Counters{Nodes: 1}
	}

	var r Counters
	us := pos.SideToMove
	for _, m := range pos.PseudoLegalMoves() {
		pos.DoMove(m)
		if pos.IsChecked(us) {
			pos.UndoMove()
			continue
		}

		if depth == 1 {
			if m.IsCapture() {
				r.Captures++
			}
			switch m.Flag() {
			case engine.EnPassant:
				r.EnPassant++
			case engine.CastleKingside, engine.CastleQueenside:
				r.Castles++
			}
			if m.IsPromotion() {
				r.Promotions++
			}
		}

		r.Add(Perft(pos, depth-1))
		pos.UndoMove()
	}
	return r
}
