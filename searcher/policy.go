package searcher

import (
	"math"
	"othello/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for the winner
const Loss = -Win // Reward for the loser, also applied as virtual loss
const Draw = 0.0  // Reward for both players on a tie

// uct ranks the children of a node that has been visited parentVisits times:
// rewards/visits + sqrt(c² ln(parentVisits) / visits). Rewards of a child are
// those of the player whose move led to it.
type uct struct {
	exploration float64 // c² ln(parentVisits)
}

func newUCT(cSquared float64, parentVisits float64) uct {
	if parentVisits == 0 {
		panic("parent of an expanded child has no visits")
	}
	return uct{exploration: cSquared * math.Log(parentVisits)}
}

func (u uct) value(rewards, visits float64) float64 {
	if visits == 0 {
		panic("cannot rank an unvisited child")
	}
	return rewards/visits + math.Sqrt(u.exploration/visits)
}

// reward scores a finished playout for player.
func reward(player, winner game.Player) float64 {
	switch winner {
	case game.Empty:
		return Draw
	case player:
		return Win
	}
	return Loss
}
