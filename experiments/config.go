package experiments

import (
	"os"
	"othello/experiments/metrics"
	"othello/meta"
	"othello/player"
	"othello/utils"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes a tournament. Each matchup is a pair of agent ids; the two
// agents swap colours from one game to the next.
type Config struct {
	Name            string                `yaml:"name"`
	OutputDir       string                `yaml:"output_dir"`
	GamesPerMatchup int                   `yaml:"games_per_matchup"`
	Agents          []metrics.AgentConfig `yaml:"agents"`
	MatchUps        [][]int               `yaml:"matchups"`
}

// LoadConfig reads a tournament from a YAML file, e.g.
//
//	name: depth
//	games_per_matchup: 10
//	agents:
//	  - id: 1
//	    strategy: alphabeta:depth=2
//	  - id: 2
//	    strategy: alphabeta:depth=4
//	matchups:
//	  - [1, 2]
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read experiment config %q", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse experiment config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.WithMessagef(err, "invalid experiment config %q", path)
	}
	return cfg, nil
}

// Validate fills in defaults and checks that every matchup refers to known
// agents with buildable strategies.
func (c *Config) Validate() error {
	if c.Name == "" {
		c.Name = "tournament"
	}
	if c.OutputDir == "" {
		c.OutputDir = meta.OUTPUT_DIR
	}
	if c.GamesPerMatchup <= 0 {
		c.GamesPerMatchup = 1
	}
	if len(c.Agents) == 0 {
		return errors.New("no agents")
	}
	if len(c.MatchUps) == 0 {
		return errors.New("no matchups")
	}

	ids := make([]int, 0, len(c.Agents))
	for _, agent := range c.Agents {
		if utils.FindIndex(ids, agent.ID) != -1 {
			return errors.Errorf("duplicate agent id %d", agent.ID)
		}
		if _, err := player.New(agent.Strategy); err != nil {
			return errors.WithMessagef(err, "agent %d", agent.ID)
		}
		ids = append(ids, agent.ID)
	}

	for i, matchup := range c.MatchUps {
		if len(matchup) != 2 {
			return errors.Errorf("matchup %d needs two agents, got %d", i+1, len(matchup))
		}
		for _, id := range matchup {
			if utils.FindIndex(ids, id) == -1 {
				return errors.Errorf("matchup %d refers to unknown agent %d", i+1, id)
			}
		}
	}
	return nil
}

func (c *Config) agent(id int) metrics.AgentConfig {
	ids := make([]int, len(c.Agents))
	for i, agent := range c.Agents {
		ids[i] = agent.ID
	}
	return c.Agents[utils.FindIndex(ids, id)]
}
