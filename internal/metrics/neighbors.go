package metrics

import "github.com/san-kum/dotfield/internal/field"

// NeighborRatio is the mean fraction of dots that have at least one
// neighbor. Frames without dots are skipped.
type NeighborRatio struct {
	name    string
	samples int
	sum     float64
	last    float64
}

func NewNeighborRatio() *NeighborRatio {
	return &NeighborRatio{name: "neighbor_ratio"}
}

func (n *NeighborRatio) Name() string { return n.name }

func (n *NeighborRatio) Observe(s field.Snapshot) {
	if len(s.Dots) == 0 {
		return
	}
	n.last = float64(s.Neighbors()) / float64(len(s.Dots))
	n.sum += n.last
	n.samples++
}

func (n *NeighborRatio) Value() float64 {
	if n.samples == 0 {
		return 0
	}
	return n.sum / float64(n.samples)
}

func (n *NeighborRatio) Last() float64 { return n.last }

func (n *NeighborRatio) Reset() {
	n.samples = 0
	n.sum = 0
	n.last = 0
}
