package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration     time.Duration
	Nodes        int // Positions visited by minimax or alpha-beta
	Episodes     int // MCTS simulations
	FullPlayouts int // MCTS rollouts that reached the end of the game
}

type MoveMetric struct {
	Step   int
	Player string
	Square int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "Nobody" on a tie
	Score          int    // Black's disc differential
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers counters for a single search. Add* methods may be called
// from several goroutines.
type Collector interface {
	Start()
	AddNode()
	AddEpisode()
	AddFullPlayout()
	Complete() SearchMetric
}

type collector struct {
	startTime    time.Time
	nodes        atomic.Int64
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters and the clock.
func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:     time.Since(m.startTime),
		Nodes:        int(m.nodes.Load()),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddFullPlayout()        {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
