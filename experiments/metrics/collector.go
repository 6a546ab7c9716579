package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines   int
	Duration     time.Duration
	Episodes     int
	Cutoff       int
	FullPlayouts int // rollouts that reached a finished game
	Cutoffs      int // rollouts stopped by the ply cap or the deadline
	TreeSize     int
	MaxDepth     int
}

type MoveMetric struct {
	Step   int
	Player int // Player index, 0 or 1
	Action string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int    // Player index
	Winner         string // "" when the turn cap was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates statistics of a single search. Implementations are
// safe for use by concurrent search workers.
type Collector interface {
	Start(goroutines, cutoff int)
	AddEpisode()
	AddFullPlayout()
	AddCutoff()
	AddNodes(n int)
	ObserveDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	cutoff       int
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
	cutoffs      atomic.Int32
	nodes        atomic.Int32
	maxDepth     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, cutoff int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.cutoff = cutoff
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.cutoffs.Store(0)
	m.nodes.Store(0)
	m.maxDepth.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int32(n))
}

func (m *collector) ObserveDepth(depth int) {
	for {
		current := m.maxDepth.Load()
		if int32(depth) <= current || m.maxDepth.CompareAndSwap(current, int32(depth)) {
			return
		}
	}
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		Cutoff:       m.cutoff,
		FullPlayouts: int(m.fullPlayouts.Load()),
		Cutoffs:      int(m.cutoffs.Load()),
		TreeSize:     int(m.nodes.Load()),
		MaxDepth:     int(m.maxDepth.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, cutoff int) {}
func (m *dummyCollector) AddEpisode()                  {}
func (m *dummyCollector) AddFullPlayout()              {}
func (m *dummyCollector) AddCutoff()                   {}
func (m *dummyCollector) AddNodes(n int)               {}
func (m *dummyCollector) ObserveDepth(depth int)       {}
func (m *dummyCollector) Complete() SearchMetric       { return SearchMetric{} }
