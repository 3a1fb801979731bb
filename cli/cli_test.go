package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/cli"
	"github.com/katalvlaran/lvsearch/puzzle"
)

const oneMove = "1,2,3,4/5,6,7,8/9,10,11,12/13,14,_,15"

// execute runs the root command and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSolve_TilesJSON(t *testing.T) {
	for _, algo := range cli.Algorithms {
		t.Run(algo, func(t *testing.T) {
			out, _, err := execute(t, "solve", "--tiles", oneMove, "--algorithm", algo, "--output", "json")
			require.NoError(t, err)

			var rep cli.Report
			require.NoError(t, json.Unmarshal([]byte(out), &rep))
			assert.True(t, rep.Found)
			assert.Equal(t, "solved", rep.Outcome)
			assert.Equal(t, []string{"right"}, rep.Actions)
			assert.Equal(t, algo, rep.Algorithm)
			if algo == "astar" {
				assert.Equal(t, "h3", rep.Heuristic)
			} else {
				assert.Empty(t, rep.Heuristic)
			}
		})
	}
}

func TestSolve_TextOutputAndLogs(t *testing.T) {
	out, logs, err := execute(t, "solve", "--preset", "0", "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "outcome:      solved")
	assert.Contains(t, out, "length:       0")
	assert.Contains(t, logs, `"msg":"search finished"`)
}

func TestSolve_Unsolvable(t *testing.T) {
	_, _, err := execute(t, "solve", "--preset", "1")
	assert.ErrorIs(t, err, cli.ErrUnsolvable)

	out, _, err := execute(t, "solve", "--preset", "1", "--force",
		"--algorithm", "bfs", "--max-expansions", "50", "--output", "json")
	require.NoError(t, err)
	var rep cli.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.False(t, rep.Found)
	assert.Equal(t, "limit-reached", rep.Outcome)
	assert.Equal(t, 50, rep.Expanded)
	assert.NotEmpty(t, rep.Error)
}

func TestSolve_Timeout(t *testing.T) {
	out, _, err := execute(t, "solve", "--preset", "3", "--algorithm", "bfs",
		"--timeout", "1ns", "--output", "json")
	require.NoError(t, err)
	var rep cli.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "timeout", rep.Outcome)
	assert.False(t, rep.Found)
}

func TestSolve_Scramble(t *testing.T) {
	out, _, err := execute(t, "solve", "--scramble", "10", "--seed", "4", "--output", "yaml")
	require.NoError(t, err)
	var rep cli.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	require.True(t, rep.Found)

	moves := make([]puzzle.Move, 0, len(rep.Actions))
	for _, a := range rep.Actions {
		m, err := puzzle.ParseMove(a)
		require.NoError(t, err)
		moves = append(moves, m)
	}
	start := puzzle.Scramble(newRand(4), 10)
	end, err := puzzle.Apply(start, moves)
	require.NoError(t, err)
	assert.True(t, end.IsGoal())
}

func TestSolve_Graph(t *testing.T) {
	path := writeFile(t, "roads.yaml", `
start: A
goals: [D]
edges:
  - {from: A, to: B, weight: 1}
  - {from: A, to: C, weight: 4}
  - {from: B, to: C, weight: 1}
  - {from: C, to: D, weight: 1}
`)
	out, _, err := execute(t, "solve", "--graph", path, "--algorithm", "ucs", "--output", "yaml")
	require.NoError(t, err)
	var rep cli.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, []string{"B", "C", "D"}, rep.Actions)
	assert.Equal(t, 3.0, rep.Cost)

	out, _, err = execute(t, "solve", "--graph", path, "--output", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "astar", rep.Algorithm)
	assert.Equal(t, "null", rep.Heuristic)
	assert.Equal(t, 3.0, rep.Cost)
}

func TestSolve_InputErrors(t *testing.T) {
	_, _, err := execute(t, "solve")
	assert.ErrorIs(t, err, cli.ErrSource)

	_, _, err = execute(t, "solve", "--preset", "2", "--tiles", oneMove)
	assert.ErrorIs(t, err, cli.ErrSource)

	_, _, err = execute(t, "solve", "--preset", "2", "--graph", "x.yaml")
	assert.ErrorIs(t, err, cli.ErrSource)

	_, _, err = execute(t, "solve", "--preset", "0", "--algorithm", "greedy")
	assert.ErrorIs(t, err, cli.ErrUnknownAlgorithm)

	_, _, err = execute(t, "solve", "--preset", "0", "--heuristic", "h7")
	assert.ErrorIs(t, err, puzzle.ErrUnknownHeuristic)

	_, _, err = execute(t, "solve", "--preset", "0", "--output", "xml")
	assert.ErrorIs(t, err, cli.ErrUnknownFormat)

	_, _, err = execute(t, "solve", "--preset", "9")
	assert.ErrorIs(t, err, puzzle.ErrPresetIndex)

	_, _, err = execute(t, "solve", "--tiles", "1,2,3")
	assert.ErrorIs(t, err, puzzle.ErrInvalidState)

	_, _, err = execute(t, "solve", "--preset", "0", "--log-format", "xml")
	assert.ErrorIs(t, err, cli.ErrUnknownFormat)
}

func TestInspect_JSON(t *testing.T) {
	out, _, err := execute(t, "inspect", "--tiles", "1 2 3 4 5 6 7 8 9 10 11 12 13 15 0 14", "--output", "json")
	require.NoError(t, err)

	var in cli.Inspection
	require.NoError(t, json.Unmarshal([]byte(out), &in))
	assert.False(t, in.Goal)
	assert.False(t, in.Solvable)
	assert.Equal(t, 3, in.BlankRow)
	assert.Equal(t, 2, in.BlankCol)
	assert.Equal(t, []string{"up", "left", "right"}, in.LegalMoves)
	assert.Equal(t, map[string]float64{"h1": 2, "h2": 3, "h3": 3, "h4": 2}, in.Heuristics)
}

func TestInspect_Text(t *testing.T) {
	out, _, err := execute(t, "inspect", "--preset", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "goal:        true")
	assert.Contains(t, out, "legal moves: [up left]")
	assert.Contains(t, out, "h3:          0")
}

func TestCompare_ConfigMetricsAndOrder(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "compare.prom")
	cfg := writeFile(t, "lvsearch.yaml", `
log:
  level: warn
compare:
  algorithms: [bfs, ucs, astar]
  heuristics: [h1, h3]
  jobs: 2
  max_expansions: 10000
  timeout: 10s
  puzzles:
    - {name: two-right, tiles: "1,2,3,4/5,6,7,8/9,10,11,12/13,_,14,15"}
    - {name: down-right, tiles: "1,2,3,4/5,6,7,8/9,10,_,12/13,14,11,15"}
`)
	out, _, err := execute(t, "--config", cfg, "compare", "--metrics-file", metrics, "--output", "json")
	require.NoError(t, err)

	var reports []cli.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 8)
	wantRuns := []string{"bfs", "ucs", "astar", "astar"}
	for i, r := range reports {
		wantProblem := "two-right"
		if i >= 4 {
			wantProblem = "down-right"
		}
		assert.Equal(t, wantProblem, r.Problem)
		assert.Equal(t, wantRuns[i%4], r.Algorithm)
		assert.True(t, r.Found)
		assert.Equal(t, 2, r.Length)
	}
	assert.Equal(t, "h1", reports[2].Heuristic)
	assert.Equal(t, "h3", reports[3].Heuristic)

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `lvsearch_runs_total{algorithm="bfs",outcome="solved"} 2`)
	assert.Contains(t, string(prom), `lvsearch_solution_length{algorithm="astar/h3",problem="down-right"} 2`)
}

func TestCompare_PresetsTable(t *testing.T) {
	out, _, err := execute(t, "compare", "--algorithms", "dfs,astar", "--heuristics", "h3",
		"--max-expansions", "2000", "--jobs", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "PROBLEM")
	assert.Contains(t, out, "preset 0")
	assert.Contains(t, out, "astar/h3")
	// unsolvable presets are skipped
	assert.NotContains(t, out, "preset 1 ")
	assert.NotContains(t, out, "preset 5")
}

func TestCompare_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "compare", "--jobs", "0")
	assert.ErrorIs(t, err, cli.ErrInvalidConfig)

	_, _, err = execute(t, "compare", "--algorithms", "bfs,magic")
	assert.ErrorIs(t, err, cli.ErrUnknownAlgorithm)
}
