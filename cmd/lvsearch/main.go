// Command lvsearch solves fifteen-puzzle boards and YAML graphs with
// depth-first, breadth-first, uniform-cost and A* search.
package main

import (
	"os"

	"github.com/katalvlaran/lvsearch/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
