// Package cli implements the lvsearch command line: cobra commands that run
// the search algorithms on fifteen-puzzle boards and YAML graphs.
//
// Commands:
//
//	lvsearch solve    --preset 3 --algorithm astar --heuristic h3
//	lvsearch solve    --graph roads.yaml --algorithm ucs --output json
//	lvsearch compare  --jobs 4 --max-expansions 200000 --metrics-file runs.prom
//	lvsearch inspect  --tiles 1,2,3,4/5,6,7,8/9,10,11,12/13,14,_,15
//
// Settings come from DefaultConfig, then an optional YAML file (--config),
// then command flags; a flag wins only when it is set explicitly.
//
// Logs go to stderr through log/slog. With --log-format auto the text
// handler is used on a terminal and the JSON handler otherwise. Search
// progress is logged at debug level through the core.WithOnExpand hook.
//
// Hitting --max-expansions or --timeout is not a command failure: the
// partial result is reported with its outcome ("limit-reached" or
// "timeout"). Invalid input and errors raised by a problem are.
package cli
