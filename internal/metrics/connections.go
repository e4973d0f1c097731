package metrics

import "github.com/san-kum/dotfield/internal/field"

// ConnectionCount is the mean number of connections per frame.
type ConnectionCount struct {
	name    string
	samples int
	total   int
	last    int
}

func NewConnectionCount() *ConnectionCount {
	return &ConnectionCount{name: "connections"}
}

func (c *ConnectionCount) Name() string { return c.name }

func (c *ConnectionCount) Observe(s field.Snapshot) {
	c.last = len(s.Connections)
	c.total += c.last
	c.samples++
}

func (c *ConnectionCount) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.total) / float64(c.samples)
}

// Last is the connection count of the most recent frame.
func (c *ConnectionCount) Last() int { return c.last }

func (c *ConnectionCount) Reset() {
	c.samples = 0
	c.total = 0
	c.last = 0
}

type PeakConnections struct {
	name string
	peak int
}

func NewPeakConnections() *PeakConnections {
	return &PeakConnections{name: "peak_connections"}
}

func (p *PeakConnections) Name() string { return p.name }

func (p *PeakConnections) Observe(s field.Snapshot) {
	if n := len(s.Connections); n > p.peak {
		p.peak = n
	}
}

func (p *PeakConnections) Value() float64 { return float64(p.peak) }

func (p *PeakConnections) Reset() { p.peak = 0 }
