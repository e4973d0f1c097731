package field

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/dotfield/internal/canvas"
)

// Grid is the regular placement of dots inside the canvas.
type Grid struct {
	Rows, Cols     int
	Gap            float64
	StartX, StartY float64
}

// Layout centers a rows x cols grid in a w x h canvas. Cells are 2*Gap wide
// and the first dot sits Gap inside the footprint's corner.
func Layout(rows, cols int, w, h float64) Grid {
	gap := math.Min(w, h) / float64(max(rows, cols)) / 2
	gridW := float64(cols) * gap * 2
	gridH := float64(rows) * gap * 2
	return Grid{
		Rows:   rows,
		Cols:   cols,
		Gap:    gap,
		StartX: (w-gridW)/2 + gap,
		StartY: (h-gridH)/2 + gap,
	}
}

func (g Grid) Position(row, col int) (float64, float64) {
	return g.StartX + float64(col)*g.Gap*2, g.StartY + float64(row)*g.Gap*2
}

type Field struct {
	params    Params
	rng       *rand.Rand
	observers []Observer

	rows, cols    int
	width, height float64
	configured    bool

	dots        []Dot
	connections []Connection
	neighbors   []bool
	frame       uint64
	generation  uint64
}

type Option func(*Field)

func WithParams(p Params) Option {
	return func(f *Field) { f.params = p }
}

func WithRand(rng *rand.Rand) Option {
	return func(f *Field) { f.rng = rng }
}

// WithSeed seeds the velocity generator. Zero keeps the time-based default.
func WithSeed(seed int64) Option {
	return func(f *Field) {
		if seed != 0 {
			f.rng = rand.New(rand.NewSource(seed))
		}
	}
}

func WithObserver(o Observer) Option {
	return func(f *Field) { f.observers = append(f.observers, o) }
}

func New(opts ...Option) *Field {
	f := &Field{
		params:      DefaultParams(),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		dots:        make([]Dot, 0),
		connections: make([]Connection, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Field) AddObserver(o Observer) { f.observers = append(f.observers, o) }

func validate(rows, cols int, w, h float64) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidCanvas, w, h)
	}
	return nil
}

// Reset discards every dot and lays out a fresh rows x cols grid with random
// velocities. On invalid input the current set is left untouched.
func (f *Field) Reset(rows, cols int, w, h float64) error {
	if err := validate(rows, cols, w, h); err != nil {
		return err
	}

	grid := Layout(rows, cols, w, h)
	dots := make([]Dot, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := grid.Position(row, col)
			dots = append(dots, Dot{
				X:      x,
				Y:      y,
				VX:     (f.rng.Float64()*2 - 1) * f.params.BaseSpeed,
				VY:     (f.rng.Float64()*2 - 1) * f.params.BaseSpeed,
				Radius: f.params.DotRadius,
			})
		}
	}

	f.rows, f.cols = rows, cols
	f.width, f.height = w, h
	f.configured = true
	f.dots = dots
	f.connections = f.connections[:0]
	f.neighbors = make([]bool, len(dots))
	f.frame = 0
	f.generation++
	return nil
}

// Configure resets only when the grid shape or canvas size differs from the
// current configuration. It reports whether a reset took place.
func (f *Field) Configure(rows, cols int, w, h float64) (bool, error) {
	if f.configured && rows == f.rows && cols == f.cols && w == f.width && h == f.height {
		return false, nil
	}
	if err := f.Reset(rows, cols, w, h); err != nil {
		return false, err
	}
	return true, nil
}

// Step advances the field by one frame.
func (f *Field) Step() {
	for i := range f.dots {
		d := &f.dots[i]
		d.X += d.VX
		d.Y += d.VY
		d.X, d.VX = reflect(d.X, d.VX, d.Radius, f.width)
		d.Y, d.VY = reflect(d.Y, d.VY, d.Radius, f.height)
	}

	f.updateConnections()
	f.frame++

	if len(f.observers) > 0 {
		snap := f.Snapshot()
		for _, o := range f.observers {
			o.OnFrame(snap)
		}
	}
}

// reflect bounces a coordinate off [0, size]. Touching an edge counts.
func reflect(pos, vel, r, size float64) (float64, float64) {
	low := pos-r <= 0
	if low || pos+r >= size {
		vel = -vel
		if low {
			pos = r
		} else {
			pos = size - r
		}
	}
	return pos, vel
}

func (f *Field) updateConnections() {
	conns := f.connections[:0]
	for i := range f.neighbors {
		f.neighbors[i] = false
	}

	threshold := f.params.ProximityThreshold
	for i := 0; i < len(f.dots); i++ {
		for j := i + 1; j < len(f.dots); j++ {
			a, b := f.dots[i], f.dots[j]
			if Distance(a, b) < threshold {
				conns = append(conns, Connection{
					A: i, B: j,
					X1: a.X, Y1: a.Y,
					X2: b.X, Y2: b.Y,
				})
				f.neighbors[i] = true
				f.neighbors[j] = true
			}
		}
	}

	for i := range f.dots {
		f.dots[i].HasNeighbors = f.neighbors[i]
	}
	f.connections = conns
}

func (f *Field) Dots() []Dot {
	out := make([]Dot, len(f.dots))
	copy(out, f.dots)
	return out
}

func (f *Field) Connections() []Connection {
	out := make([]Connection, len(f.connections))
	copy(out, f.connections)
	return out
}

func (f *Field) Snapshot() Snapshot {
	return Snapshot{
		Frame:       f.frame,
		Generation:  f.generation,
		Width:       f.width,
		Height:      f.height,
		Dots:        f.Dots(),
		Connections: f.Connections(),
	}
}

func (f *Field) Frame() uint64      { return f.frame }
func (f *Field) Generation() uint64 { return f.generation }
func (f *Field) Params() Params     { return f.params }
func (f *Field) Len() int           { return len(f.dots) }

func (f *Field) Size() (float64, float64) { return f.width, f.height }
func (f *Field) Grid() (int, int)         { return f.rows, f.cols }

// Draw renders the current frame without copying state.
func (f *Field) Draw(s *canvas.Surface) {
	drawInto(s, f.dots, f.connections)
}
