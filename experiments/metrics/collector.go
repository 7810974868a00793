package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric counts the work of one solve.
type SearchMetric struct {
	Keying    string
	StartTime time.Time
	Duration  time.Duration
	Nodes     int // states visited, terminal ones included
	Terminals int
	Hits      int // table lookups answered from memory
	Misses    int // table lookups followed by an expansion
}

type Collector interface {
	Start(keying string)
	AddNode()
	AddTerminal()
	AddHit()
	AddMiss()
	Complete() SearchMetric
}

type collector struct {
	keying    string
	startTime time.Time
	nodes     atomic.Int64
	terminals atomic.Int64
	hits      atomic.Int64
	misses    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters; a collector is reused across solves.
func (m *collector) Start(keying string) {
	m.keying = keying
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.terminals.Store(0)
	m.hits.Store(0)
	m.misses.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddHit() {
	m.hits.Add(1)
}

func (m *collector) AddMiss() {
	m.misses.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Keying:    m.keying,
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Terminals: int(m.terminals.Load()),
		Hits:      int(m.hits.Load()),
		Misses:    int(m.misses.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(keying string)    {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddTerminal()           {}
func (m *dummyCollector) AddHit()                {}
func (m *dummyCollector) AddMiss()               {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
