package ucs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsearch/graphproblem"
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/ucs"
)

// BenchmarkUCS_Grid runs UCS corner to corner on an N×N grid with random weights.
func BenchmarkUCS_Grid(b *testing.B) {
	const N = 40
	rng := rand.New(rand.NewSource(1))
	g := graphproblem.New()
	id := func(r, c int) string { return fmt.Sprintf("%d_%d", r, c) }
	for r := 0; r < N; r++ {
		for c := 0; c < N; c++ {
			if c+1 < N {
				_ = g.AddUndirected(id(r, c), id(r, c+1), 1+rng.Float64()*9)
			}
			if r+1 < N {
				_ = g.AddUndirected(id(r, c), id(r+1, c), 1+rng.Float64()*9)
			}
		}
	}
	_ = g.SetStart(id(0, 0))
	_ = g.AddGoal(id(N-1, N-1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ucs.UCS[string, string](g)
	}
}

// BenchmarkUCS_Puzzle solves a fixed 10-move scramble.
func BenchmarkUCS_Puzzle(b *testing.B) {
	p := puzzle.NewProblem(puzzle.Scramble(rand.New(rand.NewSource(42)), 10))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ucs.UCS[puzzle.State, puzzle.Move](p)
	}
}
