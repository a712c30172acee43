package board

// Ray direction indices, matching the eight compass directions of spec
// §4.5. Generated rather than hand-transcribed: each entry of Rays is the
// infinite ray from a square in one direction, stopping at the board edge
// and excluding the origin.
const (
	DirN = iota
	DirE
	DirS
	DirW
	DirNE
	DirSE
	DirSW
	DirNW
)

// Rays[d][s] is the set of squares along direction d from square s,
// excluding s itself.
var Rays [8][64]Bitboard

var rayDeltas = [8][2]int{
	DirN:  {1, 0},
	DirE:  {0, 1},
	DirS:  {-1, 0},
	DirW:  {0, -1},
	DirNE: {1, 1},
	DirSE: {-1, 1},
	DirSW: {-1, -1},
	DirNW: {1, -1},
}

func init() {
	for d := 0; d < 8; d++ {
		dr, df := rayDeltas[d][0], rayDeltas[d][1]
		for sq := 0; sq < 64; sq++ {
			r, f := Square(sq).Rank()+dr, Square(sq).File()+df
			var bb Bitboard
			for r >= 0 && r < 8 && f >= 0 && f < 8 {
				bb = bb.Set(CalculateSquare(r, f))
				r += dr
				f += df
			}
			Rays[d][sq] = bb
		}
	}
}

// bitscanForwardDirs are the ray directions whose nearest blocker is found
// via BSF (the blocker with the lowest square index); the rest use BSR.
// Matches spec §4.5's sliding-piece resolution.
var bitscanForwardDirs = [8]bool{
	DirN: true, DirE: true, DirNE: true, DirNW: true,
}
