package board

// ApplyMove mutates p in place to reflect playing m (spec §4.4). It does
// not rotate p; the caller is responsible for calling p.Rotate() to hand
// the move to the opponent. ApplyMove is total over pseudo-legal moves;
// behavior on an illegal move is undefined.
func ApplyMove(p *Position, m Move) {
	fromBB := m.From.ToBitboard()
	toBB := m.To.ToBitboard()

	p.ResetEnPassant()

	switch {
	case m.Flags.IsEnPassant():
		captured := CalculateSquare(m.To.Rank()-1, m.To.File())
		capturedBB := captured.ToBitboard()
		p.Whose[Theirs] ^= capturedBB
		p.Pieces[Pawn] ^= capturedBB
	case m.Flags.IsCapture():
		p.Whose[Theirs] ^= toBB
		if kind, ok := p.PieceKindAt(m.To); ok {
			if kind == King {
				p.King[Theirs] = InvalidSquare
			} else {
				p.Pieces[kind] ^= toBB
			}
		}
	}

	p.Whose[Ours] ^= fromBB | toBB

	switch {
	case m.Piece == King:
		p.SetKing(Ours, m.To)
	case m.Flags.IsPromotion():
		p.Pieces[Pawn] ^= fromBB
		p.Pieces[m.Flags.PromotionPiece()] ^= toBB
	default:
		p.Pieces[m.Piece] ^= fromBB | toBB
	}

	if m.Flags.IsCastle() {
		applyCastleRookHop(p, m.Flags)
	}
	updateCastlingRights(p, m)

	if m.Flags == FlagDoublePawnPush {
		// Stored under Theirs, not Ours: ApplyMove never rotates, so Ours
		// here is still the pusher. Rotation swaps Ours<->Theirs and
		// mirrors rank 1<->rank 8, so a Theirs-role marker (rank 1)
		// reappears at rank 8 for the opponent after rotation, readable
		// via their own EnPassant(Ours) — exactly what generatePawnMoves
		// queries. Matches FromFEN's side-to-move-Black branch, which
		// stores the same way before its own rotation.
		mid := CalculateSquare(m.From.Rank()+1, m.From.File())
		p.SetEnPassant(Theirs, mid)
	}

	if m.Piece == Pawn || m.Flags.IsCapture() {
		p.Halfmoves = 0
	} else {
		p.Halfmoves++
	}
	if p.Color == Black {
		p.Fullmoves++
	}
}

// applyCastleRookHop moves the rook side of a castling move: h1->f1
// kingside, a1->d1 queenside, both on the mover's rank 1 (spec §4.4).
func applyCastleRookHop(p *Position, flags MoveFlag) {
	from, to := A1, D1
	if flags == FlagCastleKingside {
		from, to = H1, F1
	}
	bb := from.ToBitboard() | to.ToBitboard()
	p.Whose[Ours] ^= bb
	p.Pieces[Rook] ^= bb
}

// updateCastlingRights clears whichever castling rights m invalidates: a
// king move clears both of the mover's rights, a rook leaving its home
// corner clears that right, and a capture landing on the opponent's rook
// corner clears the opponent's corresponding right (spec §4.4).
func updateCastlingRights(p *Position, m Move) {
	if m.Piece == King {
		p.SetCastling(Ours, Kingside, false)
		p.SetCastling(Ours, Queenside, false)
	}
	if m.Piece == Rook {
		switch m.From {
		case A1:
			p.SetCastling(Ours, Queenside, false)
		case H1:
			p.SetCastling(Ours, Kingside, false)
		}
	}
	if m.Flags.IsCapture() {
		switch m.To {
		case A8:
			p.SetCastling(Theirs, Queenside, false)
		case H8:
			p.SetCastling(Theirs, Kingside, false)
		}
	}
}
