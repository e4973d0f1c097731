package metrics

import (
	"sort"

	"github.com/san-kum/dotfield/internal/field"
)

// Metric accumulates a scalar over observed frames.
type Metric interface {
	Name() string
	Observe(s field.Snapshot)
	Value() float64
	Reset()
}

// Set fans frames out to several metrics. It is a field.Observer.
type Set struct {
	metrics []Metric
}

func NewSet(ms ...Metric) *Set {
	return &Set{metrics: ms}
}

// Default returns the metrics shown by the live view and the CLI.
func Default() *Set {
	return NewSet(NewConnectionCount(), NewPeakConnections(), NewNeighborRatio(), NewMeanSpeed())
}

func (s *Set) Add(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Set) OnFrame(snap field.Snapshot) {
	for _, m := range s.metrics {
		m.Observe(snap)
	}
}

func (s *Set) Reset() {
	for _, m := range s.metrics {
		m.Reset()
	}
}

func (s *Set) Get(name string) (Metric, bool) {
	for _, m := range s.metrics {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

func (s *Set) Summary() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Names lists metric names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.metrics))
	for _, m := range s.metrics {
		names = append(names, m.Name())
	}
	sort.Strings(names)
	return names
}
