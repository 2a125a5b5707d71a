package metrics

import (
	"sync/atomic"
	"time"

	"wolfhunt/game"
)

type SearchMetric struct {
	Role      game.Role
	MaxDepth  int
	TimeLimit time.Duration
	Duration  time.Duration
	Depth     int // Deepest iteration that contributed to the result
	Nodes     int
	Cutoffs   int
	TimedOut  bool
}

type MoveMetric struct {
	Step   int
	Player game.Role
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Role
	Winner         game.Role // NoRole on a draw
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Stalls         int
}

type Collector interface {
	Start(role game.Role, maxDepth int, timeLimit time.Duration)
	AddNode()
	AddCutoff()
	SetDepth(depth int)
	SetTimedOut(value bool)
	Complete() SearchMetric
}

type collector struct {
	role      game.Role
	maxDepth  int
	timeLimit time.Duration
	startTime time.Time
	depth     atomic.Int32
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	timedOut  atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(role game.Role, maxDepth int, timeLimit time.Duration) {
	m.startTime = time.Now()
	m.role = role
	m.maxDepth = maxDepth
	m.timeLimit = timeLimit
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) SetTimedOut(value bool) {
	m.timedOut.Store(value)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Role:      m.role,
		MaxDepth:  m.maxDepth,
		TimeLimit: m.timeLimit,
		Duration:  time.Since(m.startTime),
		Depth:     int(m.depth.Load()),
		Nodes:     int(m.nodes.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
		TimedOut:  m.timedOut.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(role game.Role, maxDepth int, timeLimit time.Duration) {}
func (m *dummyCollector) AddNode()                                                    {}
func (m *dummyCollector) AddCutoff()                                                  {}
func (m *dummyCollector) SetDepth(depth int)                                          {}
func (m *dummyCollector) SetTimedOut(value bool)                                      {}
func (m *dummyCollector) Complete() SearchMetric                                      { return SearchMetric{} }
