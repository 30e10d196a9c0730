package main

import (
	"flag"
	"fmt"
	"os"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/meta"
	"othello/player"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	black := flag.String("black", meta.BLACK, "Black's strategy, e.g. "+meta.WHITE+" ("+strings.Join(player.Names(), ", ")+")")
	white := flag.String("white", meta.WHITE, "White's strategy")
	games := flag.Int("games", 1, "Number of games to play")
	config := flag.String("config", "", "YAML tournament file; overrides -black and -white")
	experiment := flag.String("experiment", "", "Built-in tournament: throughput or depth")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *logLevel)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	switch {
	case *config != "":
		cfg, err := experiments.LoadConfig(*config)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment")
		}
		runExperiment(cfg)
	case *experiment == "throughput":
		runExperiment(experiments.ThroughputConfig(10*time.Millisecond, *games))
	case *experiment == "depth":
		runExperiment(experiments.DepthConfig(meta.DEPTH, *games))
	case *experiment != "":
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	default:
		runGames(*black, *white, *games)
	}
}

func runExperiment(cfg experiments.Config) {
	report, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", cfg.Name)
	}
	log.Info().Msgf("results stored in %s", report.Dir)
}

func runGames(blackConfig, whiteConfig string, games int) {
	for i := 0; i < games; i++ {
		black, err := player.New(blackConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid black strategy")
		}
		white, err := player.New(whiteConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid white strategy")
		}

		log.Info().Msgf("game %d of %d: %s (black) vs %s (white)", i+1, games, blackConfig, whiteConfig)
		result, err := engine.LocalEngine(black, white).Run()
		if err != nil {
			log.Fatal().Err(err).Msgf("game %d aborted", i+1)
		}

		fmt.Print(result.Board.String())
		if result.Winner == game.Empty {
			log.Info().Msg("the game is a tie")
		} else {
			log.Info().Msgf("%s wins by %d", result.Winner, abs(result.Score))
		}
		log.Info().Msgf("the mean move time for black was %v", result.MeanMoveTime(game.Black))
		log.Info().Msgf("the mean move time for white was %v", result.MeanMoveTime(game.White))
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
