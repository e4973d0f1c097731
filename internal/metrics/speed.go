package metrics

import "github.com/san-kum/dotfield/internal/field"

// MeanSpeed averages |v| over all dots and frames. Reflection only flips
// signs, so for a fixed dot set it stays constant; drift means a bug.
type MeanSpeed struct {
	name    string
	samples int
	total   float64
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) Observe(s field.Snapshot) {
	for _, d := range s.Dots {
		m.total += d.Speed()
		m.samples++
	}
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.samples = 0
	m.total = 0
}
