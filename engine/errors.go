// errors.go defines the typed error values of spec §7. Each is a sentinel
// error value that callers can branch on with errors.Is. ErrFenParse and
// ErrInvariantViolation are wrapped with fmt.Errorf("%w: ...") at the call
// site to add a specific message; ErrIllegalMove is returned as is.

package engine

import "errors"

var (
	// ErrFenParse is returned when a FEN string is malformed.
	ErrFenParse = errors.New("fen parse error")

	// ErrIllegalMove is returned when a move is not legal in the current
	// position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvariantViolation is returned by Position.Verify when a
	// structural invariant of the position does not hold.
	ErrInvariantViolation = errors.New("position invariant violation")

	// ErrNoLegalMoves names the case of a position with no legal moves for
	// the side to move (checkmate or stalemate). No function in this
	// package returns it: Searcher.Search and Engine.Play report that case
	// with an empty PV.
	ErrNoLegalMoves = errors.New("no legal moves")
)
