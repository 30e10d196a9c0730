package experiments

import (
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/player"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Report summarises a finished tournament.
type Report struct {
	Dir         string // Where the CSV files were written
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
	Wins        map[int]int // Games won per agent id
	Draws       int
}

// Run plays every matchup of cfg and writes agent configs, game records and
// move records as CSV files under cfg.OutputDir.
func Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	report := &Report{Wins: map[int]int{}}
	count := 0

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range cfg.MatchUps {
		config1 := cfg.agent(matchup[0])
		config2 := cfg.agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.MatchUps), config1, config2)

		for i := 0; i < cfg.GamesPerMatchup; i++ {
			// Alternate colours so both agents start equally often
			black, white := config1, config2
			if i%2 == 1 {
				black, white = config2, config1
			}

			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(cfg.MatchUps), i+1, cfg.GamesPerMatchup)

			result, err := runGame(black, white)
			if err != nil {
				return nil, errors.WithMessagef(err, "matchup %d game %d", mi+1, i+1)
			}
			count++
			report.GameRecords = append(report.GameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: result.GameMetric,
			})
			for _, mm := range result.MoveMetrics {
				report.MoveRecords = append(report.MoveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch result.Winner {
			case game.Black:
				report.Wins[black.ID]++
			case game.White:
				report.Wins[white.ID]++
			default:
				report.Draws++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s (score %d)", mi+1, len(cfg.MatchUps), i+1, result.Winner, result.Score)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(cfg.MatchUps))
	}

	log.Info().Msgf("completed %s experiment, wins: %v, draws: %d", cfg.Name, report.Wins, report.Draws)

	dir, err := write(cfg, report)
	if err != nil {
		return nil, err
	}
	report.Dir = dir
	return report, nil
}

// runGame builds fresh strategies for a single game and plays it.
func runGame(black, white metrics.AgentConfig) (engine.Result, error) {
	blackStrategy, err := player.New(black.Strategy)
	if err != nil {
		return engine.Result{}, err
	}
	whiteStrategy, err := player.New(white.Strategy)
	if err != nil {
		return engine.Result{}, err
	}

	return engine.LocalEngine(blackStrategy, whiteStrategy).Run()
}

func write(cfg Config, report *Report) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return "", errors.WithMessage(err, "failed to create experiment writer")
	}

	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return "", errors.WithMessage(err, "failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(report.GameRecords); err != nil {
		return "", errors.WithMessage(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(report.MoveRecords); err != nil {
		return "", errors.WithMessage(err, "failed to write move records")
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
