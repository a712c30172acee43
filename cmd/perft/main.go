// Command perft walks the engine's pseudo-legal move tree to a given depth
// and reports the leaf node count, for cross-checking move generation
// against known perft results. See
// https://www.chessprogramming.org/Perft_Results
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"sidechess.dev/engine/board"
	"sidechess.dev/engine/internal/perft"
	"sidechess.dev/engine/notation"
)

func main() {
	depth := flag.Int("depth", 4, "perft depth")
	fen := flag.String("fen", board.StartingFEN, "starting position, in FEN")
	verbose := flag.Bool("verbose", false, "print a per-move node count (perft divide)")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	memprofile := flag.String("memprofile", "", "file to write a memory profile to")

	flag.Parse()

	p, err := board.FromFEN(*fen)
	if err != nil {
		log.Fatalf("parse FEN: %v", err)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		defer pprof.WriteHeapProfile(f)
	}

	if *verbose {
		log.Printf("root position:\n%s\n\n\t%s\n", notation.Board(p), notation.FEN(p))
	}

	start := time.Now()
	var nodes int
	if *verbose {
		divided := perft.Divide(p, *depth)
		for m, n := range divided {
			log.Printf("%s %d", notation.UCI(m), n)
			nodes += n
		}
	} else {
		nodes = perft.Nodes(p, *depth)
	}
	elapsed := time.Since(start)

	log.Printf("depth %d: %d nodes", *depth, nodes)
	log.Printf("elapsed: %s", elapsed)
}
