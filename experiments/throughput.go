package experiments

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/meta"
	"time"
)

// ThroughputConfig pits MCTS agents with the same time budget and a growing
// number of goroutines against themselves, for the same playing strength and
// similar game length. Episodes per move show how well the search scales.
func ThroughputConfig(duration time.Duration, games int) Config {
	agents := []metrics.AgentConfig{}
	matchUps := [][]int{}
	for i, goroutines := range []int{1, 2, 4, 8, 16, 32} {
		id := i + 1
		agents = append(agents, metrics.AgentConfig{
			ID:       id,
			Strategy: fmt.Sprintf("mcts:goroutines=%d,duration=%v", goroutines, duration),
		})
		matchUps = append(matchUps, []int{id, id})
	}

	return Config{
		Name:            "throughput",
		OutputDir:       meta.OUTPUT_DIR,
		GamesPerMatchup: games,
		Agents:          agents,
		MatchUps:        matchUps,
	}
}

// DepthConfig pairs alpha-beta searchers of increasing depth against a
// depth 1 baseline.
func DepthConfig(maxDepth int, games int) Config {
	baseline := metrics.AgentConfig{ID: 0, Strategy: "alphabeta:depth=1,eval=" + meta.EVALUATOR}
	agents := []metrics.AgentConfig{baseline}
	matchUps := [][]int{}
	for depth := 2; depth <= maxDepth; depth++ {
		agents = append(agents, metrics.AgentConfig{
			ID:       depth,
			Strategy: fmt.Sprintf("alphabeta:depth=%d,eval=%s", depth, meta.EVALUATOR),
		})
		matchUps = append(matchUps, []int{baseline.ID, depth})
	}

	return Config{
		Name:            "depth",
		OutputDir:       meta.OUTPUT_DIR,
		GamesPerMatchup: games,
		Agents:          agents,
		MatchUps:        matchUps,
	}
}
