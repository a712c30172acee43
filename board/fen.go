package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartingFEN is the standard chess starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN parses the six whitespace-separated fields of Forsyth-Edwards
// Notation into a Position (spec §4.2, §6). Piece placement is always
// parsed with White as Ours (its native side); if the side to move is
// Black, the parsed position is rotated afterwards so the mover is always
// Ours, and Color is set to Black.
//
// Returns an error wrapping ErrMalformedInput on any unrecognized
// character, wrong rank length, invalid side-to-move letter, over-long
// castling field, or non-numeric halfmove/fullmove field. No partial
// Position is returned on error.
func FromFEN(s string) (Position, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return Position{}, fmt.Errorf("%w: expected 6 fields, got %d", ErrMalformedInput, len(fields))
	}

	var p Position
	p.Clear()

	if err := parsePlacement(&p, fields[0]); err != nil {
		return Position{}, err
	}

	var sideToMove Color
	switch fields[1] {
	case "w":
		sideToMove = White
	case "b":
		sideToMove = Black
	default:
		return Position{}, fmt.Errorf("%w: bad side to move %q", ErrMalformedInput, fields[1])
	}

	if err := parseCastling(&p, fields[2]); err != nil {
		return Position{}, err
	}

	epTarget := InvalidSquare
	if fields[3] != "-" {
		sq, ok := SquareFromString(fields[3])
		if !ok {
			return Position{}, fmt.Errorf("%w: bad en passant target %q", ErrMalformedInput, fields[3])
		}
		epTarget = sq
	}

	half, err := parseUint16(fields[4])
	if err != nil {
		return Position{}, fmt.Errorf("%w: bad halfmove clock: %v", ErrMalformedInput, err)
	}
	full, err := parseUint16(fields[5])
	if err != nil {
		return Position{}, fmt.Errorf("%w: bad fullmove number: %v", ErrMalformedInput, err)
	}
	p.Halfmoves = half
	p.Fullmoves = full

	if epTarget.Valid() {
		side := Ours
		if sideToMove == Black {
			side = Theirs
		}
		p.SetEnPassant(side, epTarget)
	}

	p.Color = White
	if sideToMove == Black {
		p = p.Rotate()
	}
	return p, nil
}

// parsePlacement reads the first FEN field, scanning rank 8 down to rank 1
// and file a up to file h within each rank.
func parsePlacement(p *Position, field string) error {
	rank, file := 7, 0
	for i := 0; i < len(field); i++ {
		ch := field[i]
		switch {
		case ch == '/':
			if file != 8 {
				return fmt.Errorf("%w: rank %d has %d squares, want 8", ErrMalformedInput, rank+1, file)
			}
			rank--
			file = 0
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
			if file > 8 {
				return fmt.Errorf("%w: rank %d overflows past file h", ErrMalformedInput, rank+1)
			}
		default:
			if file >= 8 || rank < 0 {
				return fmt.Errorf("%w: piece placement overflows the board", ErrMalformedInput)
			}
			kind, ok := kindFromLetter(ch)
			if !ok {
				return fmt.Errorf("%w: unrecognized piece letter %q", ErrMalformedInput, ch)
			}
			side := Theirs
			if ch >= 'A' && ch <= 'Z' {
				side = Ours
			}
			sq := CalculateSquare(rank, file)
			if kind == King {
				p.SetKing(side, sq)
				p.Whose[side] = p.Whose[side].Set(sq)
			} else {
				p.Pieces[kind] = p.Pieces[kind].Set(sq)
				p.Whose[side] = p.Whose[side].Set(sq)
			}
			file++
		}
	}
	if rank != 0 || file != 8 {
		return fmt.Errorf("%w: piece placement does not cover all 8 ranks", ErrMalformedInput)
	}
	return nil
}

func kindFromLetter(ch byte) (PieceKind, bool) {
	switch ch | 0x20 { // fold to lowercase
	case 'p':
		return Pawn, true
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'r':
		return Rook, true
	case 'q':
		return Queen, true
	case 'k':
		return King, true
	}
	return PieceNone, false
}

func parseCastling(p *Position, field string) error {
	if field == "-" {
		return nil
	}
	if len(field) > 4 {
		return fmt.Errorf("%w: castling field %q too long", ErrMalformedInput, field)
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			p.SetCastling(Ours, Kingside, true)
		case 'Q':
			p.SetCastling(Ours, Queenside, true)
		case 'k':
			p.SetCastling(Theirs, Kingside, true)
		case 'q':
			p.SetCastling(Theirs, Queenside, true)
		default:
			return fmt.Errorf("%w: unrecognized castling letter %q", ErrMalformedInput, field[i])
		}
	}
	return nil
}

func parseUint16(field string) (uint16, error) {
	v, err := strconv.ParseUint(field, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
