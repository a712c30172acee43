/*
position.go defines Position, the compact side-relative board encoding
described in spec §3, and the construction/mutation/rotation operations of
§4.2. Two sides are tracked, Ours and Theirs, relative to whichever player
is about to move; absolute Color only matters at the edges (FEN parsing,
hashing, printing).
*/

package board

// pawnMask restricts pieces[Pawn] to the squares real pawns can occupy
// (ranks 2-7). Ranks 1 and 8 are repurposed to store the en-passant flag.
const pawnMask Bitboard = 0x00FFFFFFFFFFFF00

// epMaskOurs and epMaskTheirs are the overflow bytes that hold the
// en-passant flag: rank 8 for Ours, rank 1 for Theirs (spec §3).
const (
	epMaskOurs   Bitboard = 0xFF00000000000000
	epMaskTheirs Bitboard = 0x00000000000000FF
)

// Position is the central entity: two side occupancy sets, five piece-type
// sets (kings are tracked as square indices instead), a castling nibble, an
// en-passant flag folded into pieces[Pawn], move counters, and the absolute
// color to move.
type Position struct {
	Whose     [2]Bitboard
	Pieces    [numPieceBitboards]Bitboard
	King      [2]Square
	Castling  uint8
	Halfmoves uint16
	Fullmoves uint16
	Color     Color
}

// Clear zeros all bit-sets, sets both king squares to InvalidSquare,
// castling to none, and color to White.
func (p *Position) Clear() {
	*p = Position{
		King:  [2]Square{InvalidSquare, InvalidSquare},
		Color: White,
	}
}

// Init resets p to the standard starting position.
func (p *Position) Init() {
	pos, err := FromFEN(StartingFEN)
	if err != nil {
		// StartingFEN is a compile-time constant known to parse; a failure
		// here means FromFEN itself is broken.
		panic("board: StartingFEN failed to parse: " + err.Error())
	}
	*p = pos
}

// PieceBitboard returns the bit-set of the given side's pieces of the given
// kind. For King it returns the singleton bitboard of that side's king
// square. Pawn is masked to the real pawn ranks first: Pieces[Pawn] also
// carries the en-passant marker on rank 1/8, which would otherwise be
// mistaken for a pawn whenever that marker happens to land on a square the
// same side already occupies with some other piece (its own king or rook
// left on the back rank, say).
func (p *Position) PieceBitboard(side Side, kind PieceKind) Bitboard {
	if kind == King {
		return p.King[side].ToBitboard()
	}
	bb := p.Pieces[kind]
	if kind == Pawn {
		bb &= pawnMask
	}
	return bb & p.Whose[side]
}

// TogglePiece flips the membership of sq in both whose[side] and, unless
// kind is King, pieces[kind], via XOR. ApplyMove does not call it; it XORs
// the bit-sets directly.
func (p *Position) TogglePiece(side Side, kind PieceKind, sq Square) {
	bb := sq.ToBitboard()
	p.Whose[side] ^= bb
	if kind != King {
		p.Pieces[kind] ^= bb
	}
}

// KingSquare returns the given side's king square.
func (p *Position) KingSquare(side Side) Square { return p.King[side] }

// SetKing updates king[side] only. Per the Open Question resolved in
// DESIGN.md, it does not touch whose[side]; callers that move a king are
// responsible for toggling the occupancy bit themselves (see apply.go).
func (p *Position) SetKing(side Side, sq Square) {
	p.King[side] = sq
}

// HasCastling reports whether the given (side, right) castling flag is set.
func (p *Position) HasCastling(side Side, right CastlingRight) bool {
	return p.Castling&castlingMasks[side][right] != 0
}

// SetCastling sets or clears the given (side, right) castling flag.
func (p *Position) SetCastling(side Side, right CastlingRight, allowed bool) {
	if allowed {
		p.Castling |= castlingMasks[side][right]
	} else {
		p.Castling &^= castlingMasks[side][right]
	}
}

// SetEnPassant records target (the mid-board square a capturing pawn would
// move to) as side's pending en-passant opportunity, by setting a bit at
// the same file on the overflow rank (rank 8 for Ours, rank 1 for Theirs).
func (p *Position) SetEnPassant(side Side, target Square) {
	file := target.File()
	var marker Square
	if side == Ours {
		marker = CalculateSquare(7, file)
	} else {
		marker = CalculateSquare(0, file)
	}
	p.Pieces[Pawn] = p.Pieces[Pawn].Set(marker)
}

// EnPassant returns side's pending en-passant capture target (the
// mid-board square), or InvalidSquare if none is set. Ours' target, when
// present, is always on rank 6 (the rank Ours' pawns capture onto);
// Theirs' target is always on rank 3 — the two ranks are mirror images
// under Position.Rotate, so a flag recorded by one side's double push is
// found correctly by the opponent's generator after rotation.
func (p *Position) EnPassant(side Side) Square {
	mask := epMaskTheirs
	midRank := 2
	if side == Ours {
		mask = epMaskOurs
		midRank = 5
	}
	bb := p.Pieces[Pawn] & mask
	if bb == 0 {
		return InvalidSquare
	}
	return CalculateSquare(midRank, bb.ToSquare().File())
}

// ResetEnPassant clears both sides' en-passant flags.
func (p *Position) ResetEnPassant() {
	p.Pieces[Pawn] &^= epMaskOurs | epMaskTheirs
}

// PieceKindAt returns the kind of the piece occupying sq and true, or
// PieceNone and false if sq is empty. Checked in pawn..queen order first,
// then against both king squares. Pieces[Pawn] is masked to the real pawn
// ranks first, so an en-passant marker on rank 1 or 8 is never mistaken
// for a pawn.
func (p *Position) PieceKindAt(sq Square) (PieceKind, bool) {
	bb := sq.ToBitboard()
	if p.Pieces[Pawn]&pawnMask&bb != 0 {
		return Pawn, true
	}
	for k := Knight; k <= Queen; k++ {
		if p.Pieces[k]&bb != 0 {
			return k, true
		}
	}
	if p.King[Ours] == sq || p.King[Theirs] == sq {
		return King, true
	}
	return PieceNone, false
}

// Occupied returns the union of both sides' occupancy.
func (p *Position) Occupied() Bitboard {
	return p.Whose[Ours] | p.Whose[Theirs]
}

// Rotate returns the position with perspective swapped: Ours becomes
// Theirs and vice versa, every bit-set is reversed end-to-end (the board's
// 180° rotation), and absolute color is toggled. This is the structural
// pivot (spec §4.2) that lets the generator always operate as if it were
// Ours' turn on the low-rank side.
func (p Position) Rotate() Position {
	var r Position

	r.Whose[Ours] = p.Whose[Theirs].Rotate()
	r.Whose[Theirs] = p.Whose[Ours].Rotate()
	for k := Pawn; k <= Queen; k++ {
		r.Pieces[k] = p.Pieces[k].Rotate()
	}
	r.King[Ours] = p.King[Theirs].ToBitboard().Rotate().ToSquare()
	r.King[Theirs] = p.King[Ours].ToBitboard().Rotate().ToSquare()

	oursBits := p.Castling & 0b1100
	theirsBits := p.Castling & 0b0011
	r.Castling = (oursBits >> 2) | (theirsBits << 2)

	r.Halfmoves = p.Halfmoves
	r.Fullmoves = p.Fullmoves
	r.Color = p.Color.Opposite()
	return r
}
