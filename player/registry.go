package player

import (
	"os"
	"othello/game"
	"othello/meta"
	"othello/searcher"
	"othello/utils"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// constructor builds a strategy from its parameters. It pops the parameters
// it understands; whatever is left is reported as unknown.
type constructor func(params map[string]string) (searcher.Strategy, error)

var constructors = map[string]constructor{
	"random":    newRandom,
	"greedy":    newGreedy,
	"human":     newHuman,
	"minimax":   newMinimax,
	"alphabeta": newAlphaBeta,
	"mcts":      newMCTS,
}

// Names lists the registered strategies.
func Names() []string {
	return utils.SortedKeys(constructors)
}

// New creates a strategy given the configuration string: the strategy name,
// optionally followed by a colon and a comma-separated list of key=value
// parameters, e.g. "alphabeta:depth=6,eval=weighted" or "random:seed=7".
func New(config string) (searcher.Strategy, error) {
	name := config
	if split := strings.Index(config, ":"); split != -1 {
		name = config[:split]
		config = config[split+1:]
	} else {
		config = ""
	}
	newStrategy, ok := constructors[name]
	if !ok {
		return nil, errors.Errorf("unknown strategy %q", name)
	}

	params := splitConfigString(config)
	strategy, err := newStrategy(params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create strategy %q", name)
	}
	if len(params) > 0 {
		return nil, errors.Errorf("unknown parameters %v for strategy %q", utils.SortedKeys(params), name)
	}
	return strategy, nil
}

func splitConfigString(config string) map[string]string {
	params := make(map[string]string)
	for _, part := range strings.Split(config, ",") {
		if part == "" {
			continue
		}
		subParts := strings.SplitN(part, "=", 2)
		if len(subParts) == 1 {
			params[subParts[0]] = ""
		} else {
			params[subParts[0]] = subParts[1]
		}
	}
	return params
}

func popInt(params map[string]string, key string, defaultValue int) (int, error) {
	value, exists := params[key]
	delete(params, key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
	}
	return parsed, nil
}

func popDuration(params map[string]string, key string) (time.Duration, error) {
	value, exists := params[key]
	delete(params, key)
	if !exists || value == "" {
		return 0, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse configuration %s=%q to duration", key, value)
	}
	return parsed, nil
}

func popEvaluator(params map[string]string) (game.Evaluate, error) {
	name, exists := params["eval"]
	delete(params, "eval")
	if !exists || name == "" {
		name = meta.EVALUATOR
	}
	evaluate, ok := game.EvaluatorByName(name)
	if !ok {
		return nil, errors.Errorf("unknown evaluator %q", name)
	}
	return evaluate, nil
}

func popDepth(params map[string]string) (int, error) {
	depth, err := popInt(params, "depth", meta.DEPTH)
	if err != nil {
		return 0, err
	}
	if depth < 1 {
		return 0, errors.Errorf("depth must be positive, got %d", depth)
	}
	return depth, nil
}

func newRandom(params map[string]string) (searcher.Strategy, error) {
	seed, err := popInt(params, "seed", 0)
	if err != nil {
		return nil, err
	}
	return NewRandom(uint64(seed)), nil
}

func newGreedy(map[string]string) (searcher.Strategy, error) {
	return Greedy{}, nil
}

func newHuman(map[string]string) (searcher.Strategy, error) {
	return NewHuman(os.Stdin, os.Stdout), nil
}

func newMinimax(params map[string]string) (searcher.Strategy, error) {
	depth, err := popDepth(params)
	if err != nil {
		return nil, err
	}
	evaluate, err := popEvaluator(params)
	if err != nil {
		return nil, err
	}
	goroutines, err := popInt(params, "goroutines", 1)
	if err != nil {
		return nil, err
	}
	return searcher.NewMinimax(depth, evaluate, searcher.WithGoroutines(goroutines), searcher.WithMetrics()), nil
}

func newAlphaBeta(params map[string]string) (searcher.Strategy, error) {
	depth, err := popDepth(params)
	if err != nil {
		return nil, err
	}
	evaluate, err := popEvaluator(params)
	if err != nil {
		return nil, err
	}
	return searcher.NewAlphaBeta(depth, evaluate, searcher.WithMetrics()), nil
}

func newMCTS(params map[string]string) (searcher.Strategy, error) {
	goroutines, err := popInt(params, "goroutines", meta.GO_ROUTINES)
	if err != nil {
		return nil, err
	}
	episodes, err := popInt(params, "episodes", 0)
	if err != nil {
		return nil, err
	}
	duration, err := popDuration(params, "duration")
	if err != nil {
		return nil, err
	}
	cutoff, err := popInt(params, "cutoff", 0)
	if err != nil {
		return nil, err
	}
	evaluate, err := popEvaluator(params)
	if err != nil {
		return nil, err
	}
	if episodes <= 0 && duration <= 0 {
		episodes = meta.EPISODES
	}

	return searcher.NewMCTS(goroutines,
		searcher.WithEpisodes(episodes),
		searcher.WithDuration(duration),
		searcher.WithCutoff(cutoff),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithMetrics(),
	), nil
}
