package board

// MoveFlag is the 4-bit move-kind tag described in spec §3: bit 3 marks a
// promotion, bit 2 marks a capture, and the low 2 bits either select a
// variant (quiet/double-push/castle-kingside/castle-queenside when bit 3 is
// clear) or a promotion piece (Knight/Bishop/Rook/Queen when bit 3 is set).
type MoveFlag uint8

const (
	FlagQuiet           MoveFlag = 0b0000
	FlagDoublePawnPush  MoveFlag = 0b0001
	FlagCastleKingside  MoveFlag = 0b0010
	FlagCastleQueenside MoveFlag = 0b0011
	FlagCapture         MoveFlag = 0b0100
	FlagEnPassant       MoveFlag = 0b0101

	flagPromotionBit MoveFlag = 0b1000
	flagCaptureBit   MoveFlag = 0b0100
	flagPromoMask    MoveFlag = 0b0011
)

// PromotionFlag builds the flags for a promotion to the given piece kind
// (Knight, Bishop, Rook, or Queen), optionally combined with a capture.
func PromotionFlag(promoted PieceKind, capture bool) MoveFlag {
	f := flagPromotionBit | MoveFlag(promoted-Knight)
	if capture {
		f |= flagCaptureBit
	}
	return f
}

// IsPromotion reports whether f marks a promotion.
func (f MoveFlag) IsPromotion() bool { return f&flagPromotionBit != 0 }

// IsCapture reports whether f marks a capture, including en-passant and
// promotion-captures.
func (f MoveFlag) IsCapture() bool { return f&flagCaptureBit != 0 }

// IsEnPassant reports whether f is exactly the en-passant capture flag.
func (f MoveFlag) IsEnPassant() bool { return f == FlagEnPassant }

// IsCastle reports whether f marks castling, either side.
func (f MoveFlag) IsCastle() bool {
	return f == FlagCastleKingside || f == FlagCastleQueenside
}

// PromotionPiece decodes the promoted piece kind from a promotion flag:
// the low two bits plus Knight, per spec §3.
//
// Precondition: f.IsPromotion().
func (f MoveFlag) PromotionPiece() PieceKind {
	return Knight + PieceKind(f&flagPromoMask)
}

// Move is (piece-kind, from-square, to-square, flags): the full
// description of one pseudo-legal move, per spec §3.
type Move struct {
	Piece PieceKind
	From  Square
	To    Square
	Flags MoveFlag
}

// NullMove is the all-zeroes sentinel returned by MoveList.Pop on an empty
// list: Piece Pawn, From/To a1, Flags quiet. It is never itself a legal
// move to emit from the generator (From == To never occurs otherwise).
var NullMove = Move{Piece: Pawn, From: A1, To: A1, Flags: FlagQuiet}

// IsNull reports whether m is the NullMove sentinel.
func (m Move) IsNull() bool { return m == NullMove }
