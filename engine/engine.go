// engine.go wires Position, Searcher and the transposition table behind the
// external interface spec §6 names, the contract cmd/uciengine consumes.
//
// Grounded on the top-level Engine struct of
// _examples/easychessanimations-zurichess/engine/engine.go (NewEngine,
// SetPosition, Play), trimmed to this package's simpler Searcher instead of
// that file's monolithic search-and-bookkeeping struct.

package engine

// Engine is the entry point the UCI driver holds onto for the whole game:
// one Position, one transposition table that survives across moves within
// a game, and one Logger.
type Engine struct {
	pos    *Position
	tt     *HashTable
	opts   Options
	logger Logger
}

// NewEngine returns an Engine over pos (StartPosition() if nil) configured
// by opts, reporting through log (NopLogger{} if nil).
func NewEngine(pos *Position, log Logger, opts Options) *Engine {
	if pos == nil {
		pos = StartPosition()
	}
	if log == nil {
		log = NopLogger{}
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultOptions.MaxDepth
	}
	if opts.HashSizeMB <= 0 {
		opts.HashSizeMB = DefaultOptions.HashSizeMB
	}
	return &Engine{
		pos:    pos,
		tt:     NewHashTable(opts.HashSizeMB),
		opts:   opts,
		logger: log,
	}
}

// Position exposes the engine's current position for inspection, e.g. by a
// UCI driver printing a board diagram.
func (e *Engine) Position() *Position { return e.pos }

// SetMaxDepth overrides the depth iterative deepening searches to on the
// next Play call, e.g. to honor a UCI "go depth N" request. depth <= 0 is
// ignored.
func (e *Engine) SetMaxDepth(depth int) {
	if depth > 0 {
		e.opts.MaxDepth = depth
	}
}

// MaxDepth reports the depth Play will search to, the value SetMaxDepth
// or the constructor's Options last set.
func (e *Engine) MaxDepth() int { return e.opts.MaxDepth }

// SetStartPosition resets the engine to the standard starting position.
func (e *Engine) SetStartPosition() { e.pos = StartPosition() }

// SetFromFEN replaces the engine's position with the one fen describes.
func (e *Engine) SetFromFEN(fen string) error {
	pos, err := PositionFromFEN(fen)
	if err != nil {
		e.logger.Warn("bad FEN %q: %v", fen, err)
		return err
	}
	e.pos = pos
	return nil
}

// ApplyUCIMove parses s as a UCI move against the current position, checks
// it is legal, and plays it.
func (e *Engine) ApplyUCIMove(s string) error {
	m, err := ParseUCIMove(e.pos, s)
	if err != nil {
		e.logger.Warn("bad move %q: %v", s, err)
		return err
	}
	legal := false
	for _, lm := range e.pos.LegalMoves() {
		if lm == m {
			m = lm // recover the fully-populated legal move (capture/flag bits)
			legal = true
			break
		}
	}
	if !legal {
		e.logger.Warn("illegal move %q in position %s", s, e.pos.FEN())
		return ErrIllegalMove
	}
	e.pos.DoMove(m)
	return nil
}

// NewGame clears engine state that must not leak across games: the
// transposition table and the position's repetition history.
func (e *Engine) NewGame() {
	e.tt.Clear()
	e.pos.History = e.pos.History[:0]
}

// Play searches the current position under tc and returns the best line
// found. The first move of the returned PV, if any, is the move to report
// as "bestmove"; the search never returns a move outside
// e.pos.LegalMoves(), since every candidate is generated, made and
// check-tested by Searcher.negamax before it can become the result.
func (e *Engine) Play(tc *TimeControl) []Move {
	if tc == nil {
		tc = NewTimeControl()
	}
	s := NewSearcher(e.pos, e.tt, e.logger)
	pv := s.Search(e.opts.MaxDepth, tc)

	if len(pv) == 0 {
		return nil
	}
	// Defense in depth against a move-ordering or TT bug producing a move
	// that is no longer legal by the time the search returns: re-validate
	// against a fresh legality pass before handing it to the driver.
	for _, lm := range e.pos.LegalMoves() {
		if lm == pv[0] {
			return pv
		}
	}
	e.logger.Warn("search returned illegal bestmove %s in position %s", pv[0].UCI(), e.pos.FEN())
	if legal := e.pos.LegalMoves(); len(legal) > 0 {
		return legal[:1]
	}
	return nil
}
