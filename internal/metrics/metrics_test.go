package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/dotfield/internal/field"
)

func snapshot(conns int, dots ...field.Dot) field.Snapshot {
	return field.Snapshot{
		Dots:        dots,
		Connections: make([]field.Connection, conns),
	}
}

func TestConnectionCount(t *testing.T) {
	m := NewConnectionCount()
	if m.Value() != 0 {
		t.Errorf("expected 0 before observing, got %f", m.Value())
	}

	m.Observe(snapshot(2))
	m.Observe(snapshot(4))
	if m.Value() != 3 {
		t.Errorf("expected mean 3, got %f", m.Value())
	}
	if m.Last() != 4 {
		t.Errorf("expected last 4, got %d", m.Last())
	}

	m.Reset()
	if m.Value() != 0 || m.Last() != 0 {
		t.Error("reset did not clear state")
	}
}

func TestPeakConnections(t *testing.T) {
	m := NewPeakConnections()
	for _, n := range []int{1, 7, 3} {
		m.Observe(snapshot(n))
	}
	if m.Value() != 7 {
		t.Errorf("expected peak 7, got %f", m.Value())
	}
}

func TestNeighborRatio(t *testing.T) {
	tests := []struct {
		name string
		dots []field.Dot
		want float64
	}{
		{"all connected", []field.Dot{{HasNeighbors: true}, {HasNeighbors: true}}, 1},
		{"none connected", []field.Dot{{}, {}, {}}, 0},
		{"quarter", []field.Dot{{HasNeighbors: true}, {}, {}, {}}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewNeighborRatio()
			m.Observe(snapshot(0, tt.dots...))
			if math.Abs(m.Value()-tt.want) > 1e-12 {
				t.Errorf("Value() = %f, want %f", m.Value(), tt.want)
			}
			if math.Abs(m.Last()-tt.want) > 1e-12 {
				t.Errorf("Last() = %f, want %f", m.Last(), tt.want)
			}
		})
	}

	m := NewNeighborRatio()
	m.Observe(snapshot(0))
	if m.Value() != 0 {
		t.Error("empty frames must be skipped")
	}
}

func TestMeanSpeedInvariantUnderStep(t *testing.T) {
	f := field.New(field.WithSeed(11))
	if err := f.Reset(4, 4, 400, 400); err != nil {
		t.Fatal(err)
	}

	first := NewMeanSpeed()
	first.Observe(f.Snapshot())

	later := NewMeanSpeed()
	for i := 0; i < 250; i++ {
		f.Step()
	}
	later.Observe(f.Snapshot())

	if math.Abs(first.Value()-later.Value()) > 1e-9 {
		t.Errorf("mean speed drifted: %f -> %f", first.Value(), later.Value())
	}
}

func TestSetAsObserver(t *testing.T) {
	set := Default()
	f := field.New(field.WithSeed(4), field.WithObserver(set))
	if err := f.Reset(5, 5, 1000, 1000); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		f.Step()
	}

	summary := set.Summary()
	for _, name := range []string{"connections", "peak_connections", "neighbor_ratio", "mean_speed"} {
		if _, ok := summary[name]; !ok {
			t.Errorf("metric %s missing from summary", name)
		}
	}
	if summary["neighbor_ratio"] != 1 {
		t.Errorf("5x5 lattice in 1000x1000 keeps every dot linked early, got %f", summary["neighbor_ratio"])
	}

	m, ok := set.Get("connections")
	if !ok {
		t.Fatal("connections metric not found")
	}
	if m.(*ConnectionCount).Last() != len(f.Connections()) {
		t.Error("last connection count does not match field")
	}

	set.Reset()
	if set.Summary()["connections"] != 0 {
		t.Error("reset did not propagate")
	}

	if got := set.Names(); len(got) != 4 || got[0] != "connections" {
		t.Errorf("unexpected names %v", got)
	}
}
