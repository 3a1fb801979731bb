package puzzle

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvsearch/core"
)

// tileTerm scores one tile at (row,col) whose goal cell is (gr,gc).
type tileTerm func(row, col, gr, gc int) float64

// sumTiles adds term over every tile 1..15; the blank is skipped.
func sumTiles(s State, term tileTerm) float64 {
	total := 0.0
	for i, v := range s.cells {
		if v == Blank {
			continue
		}
		row, col := coordinate(i)
		gr, gc := goalCell(int(v))
		total += term(row, col, gr, gc)
	}

	return total
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// MisplacedTiles (h1) counts tiles that are not on their goal cell.
func MisplacedTiles(s State) float64 {
	return sumTiles(s, func(row, col, gr, gc int) float64 {
		if row != gr || col != gc {
			return 1
		}
		return 0
	})
}

// Euclidean (h2) sums each tile's straight-line distance to its goal cell.
func Euclidean(s State) float64 {
	return sumTiles(s, func(row, col, gr, gc int) float64 {
		dr, dc := float64(row-gr), float64(col-gc)
		return math.Sqrt(dr*dr + dc*dc)
	})
}

// Manhattan (h3) sums |Δrow| + |Δcol| over all tiles.
func Manhattan(s State) float64 {
	return sumTiles(s, func(row, col, gr, gc int) float64 {
		return float64(absInt(row-gr) + absInt(col-gc))
	})
}

// OutOfRowColumn (h4) counts tiles outside their goal row plus tiles outside
// their goal column.
func OutOfRowColumn(s State) float64 {
	return sumTiles(s, func(row, col, gr, gc int) float64 {
		n := 0.0
		if row != gr {
			n++
		}
		if col != gc {
			n++
		}
		return n
	})
}

// heuristics maps accepted names to heuristic functions.
var heuristics = map[string]core.Heuristic[State]{
	"null":      func(State) float64 { return 0 },
	"h1":        MisplacedTiles,
	"misplaced": MisplacedTiles,
	"h2":        Euclidean,
	"euclidean": Euclidean,
	"h3":        Manhattan,
	"manhattan": Manhattan,
	"h4":        OutOfRowColumn,
	"rowcol":    OutOfRowColumn,
}

// HeuristicByName returns the heuristic registered under name
// ("null", "h1".."h4", or "misplaced", "euclidean", "manhattan", "rowcol").
func HeuristicByName(name string) (core.Heuristic[State], error) {
	h, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}

	return h, nil
}

// HeuristicNames lists every registered name in sorted order.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for n := range heuristics {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
