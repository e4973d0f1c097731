package viz

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dotfield/internal/canvas"
	"github.com/san-kum/dotfield/internal/field"
	"github.com/san-kum/dotfield/internal/metrics"
)

const (
	defaultCols     = 60
	defaultRows     = 24
	historyCapacity = 120
	minCanvasCols   = 10
	minCanvasRows   = 5
)

// TickMsg is one display frame for the field generation it was issued for.
type TickMsg struct {
	Time       time.Time
	Generation uint64
}

// ConfigureMsg changes the grid shape or canvas size. Unchanged values are a
// no-op; anything else regenerates the field.
type ConfigureMsg struct {
	Rows, Cols    int
	Width, Height float64
	Background    canvas.Color
}

type Options struct {
	FPS   int
	Theme string
}

// Model contains the field, render buffers and UI context.
type Model struct {
	field   *field.Field
	frame   canvas.Frame
	fps     int
	theme   Theme
	styles  styles
	metrics *metrics.Set
	conns   *metrics.ConnectionCount
	ratio   *metrics.NeighborRatio
	speed   *metrics.MeanSpeed

	canvas   *Canvas
	surface  *canvas.Surface
	viewport canvas.Viewport
	history  []float64
	quitting bool
	err      error
}

// NewModel wraps an already reset field. frame should have the field's
// logical size.
func NewModel(f *field.Field, frame canvas.Frame, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	theme := GetTheme(opts.Theme)

	conns := metrics.NewConnectionCount()
	ratio := metrics.NewNeighborRatio()
	speed := metrics.NewMeanSpeed()
	set := metrics.NewSet(conns, ratio, speed, metrics.NewPeakConnections())
	f.AddObserver(set)

	m := Model{
		field:   f,
		frame:   frame,
		fps:     opts.FPS,
		theme:   theme,
		styles:  newStyles(theme),
		metrics: set,
		conns:   conns,
		ratio:   ratio,
		speed:   speed,
		canvas:  NewCanvas(defaultCols, defaultRows),
		surface: canvas.NewSurface(),
		history: make([]float64, 0, historyCapacity),
	}
	m.fit()
	return m
}

func (m Model) tick() tea.Cmd {
	gen := m.field.Generation()
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Generation: gen}
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update steps the field on ticks and handles teardown and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		cols := max(minCanvasCols, msg.Width-statsWidth-6)
		rows := max(minCanvasRows, msg.Height-4)
		m.canvas.Resize(cols, rows)
		m.fit()
	case ConfigureMsg:
		return m.configure(msg)
	case TickMsg:
		if m.quitting || msg.Generation != m.field.Generation() {
			return m, nil
		}
		m.field.Step()
		m.record()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) configure(msg ConfigureMsg) (tea.Model, tea.Cmd) {
	changed, err := m.field.Configure(msg.Rows, msg.Cols, msg.Width, msg.Height)
	if err != nil {
		log.Printf("viz: configure rejected: %v", err)
		m.err = err
		return m, nil
	}
	m.err = nil
	if msg.Background != "" {
		m.frame.Background = msg.Background
	}
	if !changed {
		return m, nil
	}

	log.Printf("viz: regenerated %dx%d field on %gx%g canvas", msg.Rows, msg.Cols, msg.Width, msg.Height)
	m.frame.Width, m.frame.Height = msg.Width, msg.Height
	m.metrics.Reset()
	m.history = m.history[:0]
	m.fit()
	// ticks already queued carry the old generation and will be dropped
	return m, m.tick()
}

func (m *Model) record() {
	m.history = append(m.history, float64(m.conns.Last()))
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) fit() {
	pw, ph := m.canvas.PixelSize()
	m.viewport = m.frame.Viewport(float64(pw), float64(ph))
}

// draw projects the composed frame onto the Braille canvas.
func (m *Model) draw() {
	m.canvas.Clear()
	m.frame.ComposeInto(m.surface, m.field)

	for _, p := range m.surface.Primitives() {
		switch p := p.(type) {
		case canvas.Line:
			x0, y0 := m.viewport.Project(p.X1, p.Y1)
			x1, y1 := m.viewport.Project(p.X2, p.Y2)
			m.canvas.DrawLine(round(x0), round(y0), round(x1), round(y1), LayerLink)
		case canvas.Circle:
			x, y := m.viewport.Project(p.CX, p.CY)
			layer := LayerLone
			if p.Fill == field.NeighborFill {
				layer = LayerNeighbor
			}
			m.canvas.DrawCircle(round(x), round(y), round(m.viewport.Length(p.R)), layer)
		}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

// View renders the canvas beside the stats panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	canvasView := m.styles.canvas.Render(m.canvas.Render(m.theme.LayerStyles()))

	st := m.styles
	rows, cols := m.field.Grid()
	w, h := m.field.Size()

	var s strings.Builder
	s.WriteString(st.header.Render("DOTFIELD") + "\n")
	s.WriteString(st.label.Render("Frame") + st.value.Render(fmt.Sprintf("%d", m.field.Frame())) + "\n")
	s.WriteString(st.label.Render("Grid") + st.value.Render(fmt.Sprintf("%dx%d", rows, cols)) + "\n")
	s.WriteString(st.label.Render("Canvas") + st.value.Render(fmt.Sprintf("%gx%g", w, h)) + "\n")
	s.WriteString(st.label.Render("Dots") + st.value.Render(fmt.Sprintf("%d", m.field.Len())) + "\n")
	s.WriteString(st.label.Render("Connections") + st.value.Render(fmt.Sprintf("%d", m.conns.Last())) + "\n")
	s.WriteString(st.label.Render("Linked") + st.value.Render(fmt.Sprintf("%.0f%%", m.ratio.Last()*100)) + "\n")
	s.WriteString(st.label.Render("Mean speed") + st.value.Render(fmt.Sprintf("%.2f", m.speed.Value())) + "\n")
	s.WriteString(st.label.Render("FPS") + st.value.Render(fmt.Sprintf("%d", m.fps)) + "\n")
	if m.err != nil {
		s.WriteString(lipgloss.NewStyle().Foreground(m.theme.Lone).Render(m.err.Error()) + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(5),
			asciigraph.Width(statsWidth-12),
			asciigraph.Caption("connections"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}
	s.WriteString(st.help.Render("q: quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.stats.Render(s.String()))
}

// NewProgram builds the full-screen program for m.
func NewProgram(m Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

// Run shows the field until the user quits.
func Run(f *field.Field, frame canvas.Frame, opts Options) error {
	_, err := NewProgram(NewModel(f, frame, opts)).Run()
	return err
}
