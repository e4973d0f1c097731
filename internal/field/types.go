package field

import (
	"math"

	"github.com/san-kum/dotfield/internal/canvas"
)

const (
	DefaultProximityThreshold = 300.0
	DefaultDotRadius          = 5.0
	DefaultBaseSpeed          = 2.0
)

// Paint used by Draw.
const (
	ConnectionStroke  canvas.Color = "#999"
	ConnectionWidth                = 1.0
	ConnectionOpacity              = 0.6
	NeighborFill      canvas.Color = "#0070f3"
	LoneFill          canvas.Color = "#ff4040"
)

type Dot struct {
	X, Y         float64
	VX, VY       float64
	Radius       float64
	HasNeighbors bool
}

func (d Dot) Speed() float64 {
	return math.Hypot(d.VX, d.VY)
}

// Distance between dot centers.
func Distance(a, b Dot) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Connection joins dots A and B (A < B) at their positions for one frame.
type Connection struct {
	A, B           int
	X1, Y1, X2, Y2 float64
}

type Params struct {
	ProximityThreshold float64
	DotRadius          float64
	BaseSpeed          float64
}

func DefaultParams() Params {
	return Params{
		ProximityThreshold: DefaultProximityThreshold,
		DotRadius:          DefaultDotRadius,
		BaseSpeed:          DefaultBaseSpeed,
	}
}

// Observer is notified after every completed frame.
type Observer interface {
	OnFrame(s Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(s Snapshot)

func (f ObserverFunc) OnFrame(s Snapshot) { f(s) }

// Snapshot is an immutable copy of one frame.
type Snapshot struct {
	Frame       uint64
	Generation  uint64
	Width       float64
	Height      float64
	Dots        []Dot
	Connections []Connection
}

// Neighbors counts dots flagged as having a neighbor.
func (s Snapshot) Neighbors() int {
	n := 0
	for _, d := range s.Dots {
		if d.HasNeighbors {
			n++
		}
	}
	return n
}

// Draw paints connections first, then dots, so dots sit on top.
func (s Snapshot) Draw(surf *canvas.Surface) {
	drawInto(surf, s.Dots, s.Connections)
}

func drawInto(surf *canvas.Surface, dots []Dot, conns []Connection) {
	for _, c := range conns {
		surf.Line(canvas.Line{
			X1: c.X1, Y1: c.Y1, X2: c.X2, Y2: c.Y2,
			Stroke:        ConnectionStroke,
			StrokeWidth:   ConnectionWidth,
			StrokeOpacity: ConnectionOpacity,
		})
	}
	for _, d := range dots {
		fill := LoneFill
		if d.HasNeighbors {
			fill = NeighborFill
		}
		surf.Circle(canvas.Circle{CX: d.X, CY: d.Y, R: d.Radius, Fill: fill})
	}
}
