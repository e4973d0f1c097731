package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/dotfield/internal/canvas"
	"github.com/san-kum/dotfield/internal/field"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	f := field.New(field.WithSeed(8))
	if err := f.Reset(5, 5, 1000, 1000); err != nil {
		t.Fatal(err)
	}
	return NewModel(f, canvas.New(1000, 1000, "#111111"), Options{FPS: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelTickSteps(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Fatal("Init must schedule the first frame")
	}

	m, cmd := update(t, m, TickMsg{Time: time.Now(), Generation: m.field.Generation()})
	if m.field.Frame() != 1 {
		t.Errorf("expected frame 1, got %d", m.field.Frame())
	}
	if cmd == nil {
		t.Error("a tick must schedule the next one")
	}
	if len(m.history) != 1 {
		t.Errorf("expected one history sample, got %d", len(m.history))
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	m := newTestModel(t)
	stale := TickMsg{Time: time.Now(), Generation: m.field.Generation()}

	m, cmd := update(t, m, ConfigureMsg{Rows: 3, Cols: 3, Width: 1000, Height: 1000})
	if cmd == nil {
		t.Fatal("regeneration must start a fresh tick chain")
	}
	if m.field.Len() != 9 {
		t.Fatalf("expected 9 dots, got %d", m.field.Len())
	}

	m, cmd = update(t, m, stale)
	if cmd != nil {
		t.Error("stale tick must not reschedule")
	}
	if m.field.Frame() != 0 {
		t.Error("stale tick must not step the new field")
	}
}

func TestModelConfigureUnchanged(t *testing.T) {
	m := newTestModel(t)
	gen := m.field.Generation()

	m, cmd := update(t, m, ConfigureMsg{Rows: 5, Cols: 5, Width: 1000, Height: 1000})
	if cmd != nil {
		t.Error("unchanged configuration must not start a second tick chain")
	}
	if m.field.Generation() != gen {
		t.Error("unchanged configuration must not regenerate")
	}
}

func TestModelConfigureInvalid(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, ConfigureMsg{Rows: 0, Cols: 5, Width: 1000, Height: 1000})
	if m.err == nil {
		t.Fatal("expected configure error")
	}
	if m.field.Len() != 25 {
		t.Error("invalid configuration must keep the current field")
	}
	if !strings.Contains(m.View(), "grid") {
		t.Error("error should be shown in the panel")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	m, cmd = update(t, m, TickMsg{Time: time.Now(), Generation: m.field.Generation()})
	if cmd != nil || m.field.Frame() != 0 {
		t.Error("no frames may run after teardown")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.canvas.Width != 120-statsWidth-6 || m.canvas.Height != 36 {
		t.Errorf("unexpected canvas size %dx%d", m.canvas.Width, m.canvas.Height)
	}
	pw, ph := m.canvas.PixelSize()
	want := float64(min(pw, ph)) / 1000
	if m.viewport.Scale != want {
		t.Errorf("expected scale %f, got %f", want, m.viewport.Scale)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 5, Height: 3})
	if m.canvas.Width != minCanvasCols || m.canvas.Height != minCanvasRows {
		t.Errorf("canvas must not shrink below minimum, got %dx%d", m.canvas.Width, m.canvas.Height)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg{Time: time.Now(), Generation: m.field.Generation()})
	}

	view := m.View()
	for _, want := range []string{"DOTFIELD", "Connections", "5x5", "q: quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	painted := false
	for _, row := range m.canvas.Grid {
		for _, r := range row {
			if r != blank {
				painted = true
			}
		}
	}
	if !painted {
		t.Error("dots were not drawn onto the canvas")
	}
}
