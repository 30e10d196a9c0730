// meta/meta.go
package meta

// DEPTH defines the search depth of minimax and alpha-beta when none is given.
const DEPTH = 6

// EVALUATOR defines the evaluation function used when none is given.
const EVALUATOR = "weighted"

// GO_ROUTINES defines the number of goroutines for MCTS.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 150

// BLACK and WHITE define the strategies of a single game run from the command line.
const BLACK = "random"
const WHITE = "alphabeta:depth=6,eval=weighted"

// OUTPUT_DIR defines where experiment results are written.
const OUTPUT_DIR = "results"
