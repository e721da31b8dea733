// moves.go defines Move, a packed value type describing a single ply
// (spec §3's "Move is a packed value type carrying from/to/piece/capture/
// promotion/flag; the null move is the zero value").
//
// The teacher engine carries two incompatible Move representations across
// its own files (an older exported-struct form in moves.go and a newer
// packed form threaded through position.go's generators). Rather than
// perpetuate that inconsistency, this type unifies on one packed layout
// used everywhere in this package, in the same packed-uint idiom the
// teacher uses for Piece.

package engine

import "fmt"

// MoveFlag distinguishes moves that need special make/unmake handling from
// ordinary quiet moves and captures.
type MoveFlag uint8

const (
	Normal MoveFlag = iota
	EnPassant
	CastleKingside
	CastleQueenside
	DoublePawnPush
)

// Move packs a single ply into one machine word:
//
//	bits 0-5:   From square
//	bits 6-11:  To square
//	bits 12-16: moving Piece
//	bits 17-21: captured Piece (NoPiece if none)
//	bits 22-24: promotion Figure (NoFigure if none)
//	bits 25-27: MoveFlag
//
// The zero Move is the null move: From == To == SquareA1, which no real
// move ever produces since a piece cannot move to its own square.
type Move uint32

const (
	moveFromShift     = 0
	moveToShift       = 6
	movePieceShift    = 12
	moveCaptureShift  = 17
	movePromoShift    = 22
	moveFlagShift     = 25
	moveSquareMask    = 0x3f
	movePieceMask     = 0x1f
	movePromoMask     = 0x7
	moveFlagMask      = 0x7
)

// NullMove is the zero Move, used as a sentinel in the TT and PV table.
const NullMove Move = 0

// NewMove packs a move. cap is NoPiece for a non-capture; promo is NoFigure
// unless this is a pawn promotion.
func NewMove(from, to Square, pi, cap Piece, promo Figure, flag MoveFlag) Move {
	return Move(uint32(from)&moveSquareMask<<moveFromShift |
		uint32(to)&moveSquareMask<<moveToShift |
		uint32(pi)&movePieceMask<<movePieceShift |
		uint32(cap)&movePieceMask<<moveCaptureShift |
		uint32(promo)&movePromoMask<<movePromoShift |
		uint32(flag)&moveFlagMask<<moveFlagShift)
}

func (m Move) From() Square      { return Square(m >> moveFromShift & moveSquareMask) }
func (m Move) To() Square        { return Square(m >> moveToShift & moveSquareMask) }
func (m Move) Piece() Piece      { return Piece(m >> movePieceShift & movePieceMask) }
func (m Move) Capture() Piece    { return Piece(m >> moveCaptureShift & movePieceMask) }
func (m Move) Promotion() Figure { return Figure(m >> movePromoShift & movePromoMask) }
func (m Move) Flag() MoveFlag    { return MoveFlag(m >> moveFlagShift & moveFlagMask) }

// IsCapture reports whether m captures a piece, including en passant.
func (m Move) IsCapture() bool { return m.Capture() != NoPiece || m.Flag() == EnPassant }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion() != NoFigure }

// IsQuiet reports whether m is neither a capture nor a promotion, the set
// of moves quiescence search ignores.
func (m Move) IsQuiet() bool { return !m.IsCapture() && !m.IsPromotion() }

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool { return m.Flag() == CastleKingside || m.Flag() == CastleQueenside }

var promoSymbol = map[Figure]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}

// UCI returns m in the long algebraic form the UCI protocol uses, e.g.
// "e2e4" or "e7e8q".
func (m Move) UCI() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if promo := m.Promotion(); promo != NoFigure {
		s += string(promoSymbol[promo])
	}
	return s
}

func (m Move) String() string { return m.UCI() }

var symbolToPromo = map[byte]Figure{'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen}

// ParseUCIMove resolves a UCI move string against pos, filling in the
// moving piece, any captured piece, and the flag (double push, en passant,
// castling) by inspecting the position. It does not check legality; callers
// must confirm the result is a member of pos.LegalMoves() before playing it.
func ParseUCIMove(pos *Position, s string) (Move, error) {
	if s == "0000" {
		return NullMove, nil
	}
	if len(s) != 4 && len(s) != 5 {
		return NullMove, fmt.Errorf("malformed UCI move %q", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("malformed UCI move %q: %v", s, err)
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("malformed UCI move %q: %v", s, err)
	}
	pi := pos.PieceAt(from)
	if pi == NoPiece {
		return NullMove, fmt.Errorf("no piece on %s", from)
	}
	promo := NoFigure
	if len(s) == 5 {
		var ok bool
		promo, ok = symbolToPromo[s[4]]
		if !ok {
			return NullMove, fmt.Errorf("malformed promotion in %q", s)
		}
	}

	cap := pos.PieceAt(to)
	flag := Normal
	switch {
	case pi.Figure() == Pawn && to == pos.Enpassant && cap == NoPiece && from.File() != to.File():
		flag = EnPassant
		cap = ColorFigure(pos.SideToMove.Opposite(), Pawn)
	case pi.Figure() == Pawn && abs(int(to)-int(from)) == 16:
		flag = DoublePawnPush
	case pi.Figure() == King && from.File() == 4 && to.File() == 6:
		flag = CastleKingside
	case pi.Figure() == King && from.File() == 4 && to.File() == 2:
		flag = CastleQueenside
	}
	return NewMove(from, to, pi, cap, promo, flag), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
