package dfs_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
	"github.com/katalvlaran/lvsearch/graphproblem"
	"github.com/katalvlaran/lvsearch/puzzle"
)

var errBoom = errors.New("boom")

// line is the chain 0→1→…→n with a fixed step cost; goal is n.
// Successors fails at state failAt when failAt > 0.
type line struct {
	n      int
	step   float64
	failAt int
}

func (l line) Start() int        { return 0 }
func (l line) IsGoal(s int) bool { return s == l.n }
func (l line) Successors(s int) ([]core.Successor[int, int], error) {
	if l.failAt > 0 && s == l.failAt {
		return nil, errBoom
	}
	if s >= l.n {
		return nil, nil
	}
	return []core.Successor[int, int]{{State: s + 1, Action: s + 1, Cost: l.step}}, nil
}
func (l line) CostOfActions(a []int) (float64, error) { return float64(len(a)) * l.step, nil }

func buildGraph(t *testing.T, start, goal string, edges ...graphproblem.Edge) *graphproblem.Graph {
	t.Helper()
	g := graphproblem.New()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}
	require.NoError(t, g.AddVertex(goal))
	require.NoError(t, g.SetStart(start))
	require.NoError(t, g.AddGoal(goal))

	return g
}

func TestDFS_InvalidInput(t *testing.T) {
	_, err := dfs.DFS[int, int](nil)
	assert.ErrorIs(t, err, core.ErrNilProblem)

	_, err = dfs.DFS[int, int](line{n: 3, step: 1}, core.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, core.ErrOptionViolation)
}

func TestDFS_StartIsGoal(t *testing.T) {
	res, err := dfs.DFS[int, int](line{n: 0, step: 1})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, core.Solved, res.Outcome)
	assert.NotNil(t, res.Actions)
	assert.Empty(t, res.Actions)
	assert.Zero(t, res.Expanded)
}

func TestDFS_LastPushedFirst(t *testing.T) {
	// Successors of A are pushed in order B, C; C is popped first.
	g := buildGraph(t, "A", "D",
		graphproblem.Edge{From: "A", To: "B", Weight: 1},
		graphproblem.Edge{From: "A", To: "C", Weight: 4},
		graphproblem.Edge{From: "B", To: "C", Weight: 1},
		graphproblem.Edge{From: "B", To: "D", Weight: 5},
		graphproblem.Edge{From: "C", To: "D", Weight: 1},
	)
	res, err := dfs.DFS[string, string](g)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"C", "D"}, res.Actions)
	assert.Equal(t, 5.0, res.Cost)
	assert.Equal(t, 2, res.Expanded)
	assert.Equal(t, 2, res.MaxFrontier)
}

func TestDFS_RepeatedSuccessorAborts(t *testing.T) {
	// B is pushed from A, then generated again from C: the search gives up
	// although D is reachable through B.
	g := buildGraph(t, "A", "D",
		graphproblem.Edge{From: "A", To: "B", Weight: 1},
		graphproblem.Edge{From: "A", To: "C", Weight: 1},
		graphproblem.Edge{From: "C", To: "B", Weight: 1},
		graphproblem.Edge{From: "B", To: "D", Weight: 1},
	)
	res, err := dfs.DFS[string, string](g)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, core.CycleAborted, res.Outcome)
	assert.Nil(t, res.Actions)
	assert.Equal(t, 2, res.Expanded)
}

func TestDFS_ExhaustedReturnsEmptyActions(t *testing.T) {
	g := buildGraph(t, "A", "Z", graphproblem.Edge{From: "A", To: "B", Weight: 1})
	res, err := dfs.DFS[string, string](g)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, core.Exhausted, res.Outcome)
	assert.NotNil(t, res.Actions)
	assert.Empty(t, res.Actions)
	assert.Equal(t, 2, res.Expanded)
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS[int, int](line{n: 5, step: 1, failAt: 2})
	assert.ErrorIs(t, err, errBoom)

	_, err = dfs.DFS[int, int](line{n: 5, step: 0})
	assert.ErrorIs(t, err, core.ErrNonPositiveStepCost)

	hookErr := errors.New("stop")
	_, err = dfs.DFS[int, int](line{n: 5, step: 1},
		core.WithOnExpand(func(ev core.Event) error {
			if ev.Depth == 2 {
				return hookErr
			}
			return nil
		}))
	assert.ErrorIs(t, err, hookErr)
}

func TestDFS_MaxExpansions(t *testing.T) {
	res, err := dfs.DFS[int, int](line{n: 10, step: 1}, core.WithMaxExpansions(3))
	assert.ErrorIs(t, err, core.ErrExpansionLimit)
	require.NotNil(t, res)
	assert.Equal(t, core.LimitReached, res.Outcome)
	assert.Equal(t, 3, res.Expanded)
	assert.Equal(t, []int{1, 2, 3}, res.Actions)
}

func TestDFS_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := dfs.DFS[int, int](line{n: 10, step: 1}, core.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.False(t, res.Found)
	assert.Zero(t, res.Expanded)
}

func TestDFS_PuzzleOneMove(t *testing.T) {
	s := puzzle.MustState([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15})
	res, err := dfs.DFS[puzzle.State, puzzle.Move](puzzle.NewProblem(s))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []puzzle.Move{puzzle.Right}, res.Actions)
}

func TestDFS_PuzzleTerminatesAndNeverBeatsBFS(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		start := puzzle.Scramble(rand.New(rand.NewSource(seed)), 6)
		p := puzzle.NewProblem(start)

		res, err := dfs.DFS[puzzle.State, puzzle.Move](p)
		require.NoError(t, err)
		if !res.Found {
			assert.Equal(t, core.CycleAborted, res.Outcome, "seed %d", seed)
			continue
		}
		end, err := puzzle.Apply(start, res.Actions)
		require.NoError(t, err)
		assert.True(t, end.IsGoal())

		short, err := bfs.BFS[puzzle.State, puzzle.Move](p)
		require.NoError(t, err)
		assert.LessOrEqual(t, short.Len(), res.Len(), "seed %d", seed)
	}
}
