// fen.go implements Forsyth-Edwards Notation encoding and decoding (spec
// §4.3), the six-field textual position format: piece placement, side to
// move, castling rights, en-passant target, halfmove clock, fullmove
// number.

package engine

import (
	"fmt"
	"strconv"
	"strings"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// PositionFromFEN parses a FEN string into a new Position.
func PositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: want 6 fields, got %d", ErrFenParse, len(fields))
	}

	pos := &Position{Enpassant: SquareNone}

	if err := parsePlacement(pos, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("%w: bad side to move %q", ErrFenParse, fields[1])
	}

	rights, err := parseCastlingRights(fields[2])
	if err != nil {
		return nil, err
	}
	pos.Rights = rights

	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: bad en-passant square %q", ErrFenParse, fields[3])
		}
		pos.Enpassant = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("%w: bad halfmove clock %q", ErrFenParse, fields[4])
	}
	pos.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("%w: bad fullmove number %q", ErrFenParse, fields[5])
	}
	pos.FullmoveNumber = fullmove

	pos.Zobrist = ZobristKey(pos)
	return pos, nil
}

func parsePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: want 8 ranks, got %d", ErrFenParse, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			fig, ok := symbolToFigure[byte(ch)]
			if !ok {
				return fmt.Errorf("%w: bad piece symbol %q", ErrFenParse, ch)
			}
			if file > 7 {
				return fmt.Errorf("%w: rank %d overflows the board", ErrFenParse, rank+1)
			}
			col := White
			if ch >= 'a' && ch <= 'z' {
				col = Black
			}
			pos.put(RankFile(rank, file), ColorFigure(col, fig))
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d files, want 8", ErrFenParse, rank+1, file)
		}
	}
	return nil
}

func parseCastlingRights(s string) (Castle, error) {
	if s == "-" {
		return NoCastle, nil
	}
	var rights Castle
	for _, ch := range s {
		switch ch {
		case 'K':
			rights |= WhiteOO
		case 'Q':
			rights |= WhiteOOO
		case 'k':
			rights |= BlackOO
		case 'q':
			rights |= BlackOOO
		default:
			return NoCastle, fmt.Errorf("%w: bad castling rights %q", ErrFenParse, s)
		}
	}
	return rights, nil
}

// FEN formats pos in Forsyth-Edwards Notation.
func (pos *Position) FEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			pi := pos.PieceAt(RankFile(r, f))
			if pi == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pi.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != 0 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if pos.SideToMove == Black {
		side = "b"
	}

	ep := "-"
	if pos.Enpassant != SquareNone {
		ep = pos.Enpassant.String()
	}

	return fmt.Sprintf("%s %s %s %s %d %d",
		sb.String(), side, pos.Rights.String(), ep, pos.HalfmoveClock, pos.FullmoveNumber)
}
