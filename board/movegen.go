package board

// castleKingsideMask and castleQueensideMask are the squares that must be
// empty for castling, anchored to the mover's rank 1 (spec §4.5, §9):
// {f1, g1} and {c1, d1} respectively. Valid only because rotation always
// keeps the mover on the low-rank side — these must never be widened after
// rotation.
const (
	castleKingsideMask  Bitboard = 0x60
	castleQueensideMask Bitboard = 0x0C
)

// GenerateMoves populates and returns a MoveList with every pseudo-legal
// move available to Ours in p. p must be in canonical form (mover = Ours);
// the returned moves may leave Ours' king in check — legality filtering is
// the check package's responsibility (spec §4.5).
func GenerateMoves(p *Position) *MoveList {
	list := NewMoveList()
	occupied := p.Occupied()

	generatePawnMoves(p, list, occupied)
	generateKnightMoves(p, list)
	generateSlidingMoves(p, list, Bishop, bishopDirs, occupied)
	generateSlidingMoves(p, list, Rook, rookDirs, occupied)
	generateSlidingMoves(p, list, Queen, queenDirs, occupied)
	generateKingMoves(p, list, occupied)

	return list
}

func generatePawnMoves(p *Position, list *MoveList, occupied Bitboard) {
	pawns := p.PieceBitboard(Ours, Pawn) & pawnMask
	epTarget := p.EnPassant(Ours)

	for {
		from := IterFirst(&pawns)
		if from == InvalidSquare {
			break
		}

		captures := PawnAttacks[from] & p.Whose[Theirs]
		for {
			to := IterFirst(&captures)
			if to == InvalidSquare {
				break
			}
			emitPawnDestination(list, from, to, true)
		}

		if epTarget.Valid() && PawnAttacks[from].Has(epTarget) {
			list.Append(Move{Piece: Pawn, From: from, To: epTarget, Flags: FlagEnPassant})
		}

		singleTo := CalculateSquare(from.Rank()+1, from.File())
		if !occupied.Has(singleTo) {
			emitPawnDestination(list, from, singleTo, false)
			if from.Rank() == 1 {
				doubleTo := CalculateSquare(from.Rank()+2, from.File())
				if !occupied.Has(doubleTo) {
					list.Append(Move{Piece: Pawn, From: from, To: doubleTo, Flags: FlagDoublePawnPush})
				}
			}
		}
	}
}

// emitPawnDestination appends either a plain move or, when to lands on
// rank 8, all four promotion variants.
func emitPawnDestination(list *MoveList, from, to Square, capture bool) {
	if to.Rank() == 7 {
		for _, promo := range [4]PieceKind{Knight, Bishop, Rook, Queen} {
			list.Append(Move{Piece: Pawn, From: from, To: to, Flags: PromotionFlag(promo, capture)})
		}
		return
	}
	flags := FlagQuiet
	if capture {
		flags = FlagCapture
	}
	list.Append(Move{Piece: Pawn, From: from, To: to, Flags: flags})
}

func generateKnightMoves(p *Position, list *MoveList) {
	knights := p.PieceBitboard(Ours, Knight)
	for {
		from := IterFirst(&knights)
		if from == InvalidSquare {
			break
		}
		emitSimpleMoves(list, Knight, from, KnightAttacks[from]&^p.Whose[Ours], p.Whose[Theirs])
	}
}

func generateSlidingMoves(p *Position, list *MoveList, kind PieceKind, dirs []int, occupied Bitboard) {
	pieces := p.PieceBitboard(Ours, kind)
	for {
		from := IterFirst(&pieces)
		if from == InvalidSquare {
			break
		}
		attacks := SlidingAttacks(from, dirs, occupied, p.Whose[Ours])
		emitSimpleMoves(list, kind, from, attacks, p.Whose[Theirs])
	}
}

func generateKingMoves(p *Position, list *MoveList, occupied Bitboard) {
	from := p.King[Ours]
	emitSimpleMoves(list, King, from, KingAttacks[from]&^p.Whose[Ours], p.Whose[Theirs])

	if p.HasCastling(Ours, Kingside) && occupied&castleKingsideMask == 0 {
		list.Append(Move{Piece: King, From: from, To: G1, Flags: FlagCastleKingside})
	}
	if p.HasCastling(Ours, Queenside) && occupied&castleQueensideMask == 0 {
		list.Append(Move{Piece: King, From: from, To: C1, Flags: FlagCastleQueenside})
	}
}

// emitSimpleMoves partitions a destination set into captures (against
// enemies) and quiet moves, and appends each as a move of the given kind
// from the given origin.
func emitSimpleMoves(list *MoveList, kind PieceKind, from Square, destinations, enemies Bitboard) {
	for {
		to := IterFirst(&destinations)
		if to == InvalidSquare {
			break
		}
		flags := FlagQuiet
		if enemies.Has(to) {
			flags = FlagCapture
		}
		list.Append(Move{Piece: kind, From: from, To: to, Flags: flags})
	}
}
