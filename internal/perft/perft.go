/*
Package perft implements the classic performance-test node counter used to
cross-check a move generator against known node counts at each depth. It
walks board.GenerateMoves' pseudo-legal tree — not a legal one, since board
has no dependency on check — which is why it lives under internal/: the
counts it produces only match the well-known perft results once diffed
against a legal-move walk, making it a debugging aid for board's own test
suite rather than a public correctness oracle. See
https://www.chessprogramming.org/Perft_Results.

Each ply is walked by copy-make-restore: copy the position, apply a
pseudo-legal move, recurse, then move on to the next sibling. The
side-relative Position needs an explicit Rotate between plies so depth N+1
always sees Ours as whoever is about to move.
*/
package perft

import "sidechess.dev/engine/board"

// Nodes walks the pseudo-legal move tree rooted at p to the given depth and
// returns the number of leaf positions reached. depth 0 counts the root
// itself as one node; depth 1 counts p's immediate pseudo-legal moves.
func Nodes(p board.Position, depth int) int {
	if depth == 0 {
		return 1
	}

	list := board.GenerateMoves(&p)
	if depth == 1 {
		return list.Len()
	}

	nodes := 0
	for _, m := range list.Slice() {
		next := p
		board.ApplyMove(&next, m)
		nodes += Nodes(next.Rotate(), depth-1)
	}
	return nodes
}

// Divide mirrors the standard "perft divide" debugging aid: it returns the
// node count contributed by each of p's immediate pseudo-legal moves,
// keyed by the move itself, so a mismatch against a reference engine's
// divide output can be narrowed down to a single branch. Callers that want
// to print a key in long algebraic notation can render it with
// notation.UCI.
func Divide(p board.Position, depth int) map[board.Move]int {
	counts := make(map[board.Move]int)
	if depth < 1 {
		return counts
	}

	list := board.GenerateMoves(&p)
	for _, m := range list.Slice() {
		next := p
		board.ApplyMove(&next, m)
		counts[m] = Nodes(next.Rotate(), depth-1)
	}
	return counts
}
