package viz

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected U+2801, got %U", c.Grid[0][0])
	}
	if !c.IsSet(0, 0) {
		t.Error("pixel should be set")
	}

	c.Set(3, 3)
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected U+2880, got %U", c.Grid[0][1])
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != blank || c.IsSet(0, 0) {
		t.Error("pixel should be cleared")
	}

	// out of range is ignored
	c.Set(-1, 0)
	c.Set(100, 100)
	c.Unset(-5, 2)
}

func TestCanvasLayers(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Paint(0, 0, LayerNeighbor)
	c.Paint(1, 1, LayerLink)
	if c.Layers[0][0] != LayerNeighbor {
		t.Errorf("higher layer must win, got %d", c.Layers[0][0])
	}

	c.Clear()
	if c.Layers[0][0] != LayerNone || c.Grid[0][0] != blank {
		t.Error("clear must reset layers and pixels")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(5, 2)
	c.DrawLine(0, 0, 9, 7, LayerLink)

	if !c.IsSet(0, 0) || !c.IsSet(9, 7) {
		t.Error("line endpoints must be set")
	}
	if c.Layers[0][0] != LayerLink {
		t.Error("line must raise cell layer")
	}
}

func TestCanvasDrawCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawCircle(10, 10, 3, LayerLone)

	for _, p := range [][2]int{{10, 10}, {13, 10}, {7, 10}, {10, 13}, {10, 7}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("pixel %v should be inside the disc", p)
		}
	}
	if c.IsSet(13, 13) {
		t.Error("corner pixel lies outside the disc")
	}

	c.Clear()
	c.DrawCircle(4, 4, 0, LayerLone)
	if !c.IsSet(4, 4) {
		t.Error("zero radius should still paint one pixel")
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Set(0, 0)
	c.Resize(8, 2)

	w, h := c.PixelSize()
	if w != 16 || h != 8 {
		t.Errorf("expected 16x8 sub-pixels, got %dx%d", w, h)
	}
	if c.IsSet(0, 0) {
		t.Error("resize must clear")
	}

	c.Resize(0, -1)
	if c.Width != 1 || c.Height != 1 {
		t.Errorf("resize must clamp to 1x1, got %dx%d", c.Width, c.Height)
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvas(4, 1)
	c.Paint(0, 0, LayerNeighbor)
	c.Paint(2, 0, LayerNeighbor)

	plain := c.Render(nil)
	if plain != c.String() {
		t.Errorf("render without styles should equal String()\n%q\n%q", plain, c.String())
	}

	styled := c.Render(map[Layer]lipgloss.Style{LayerNeighbor: lipgloss.NewStyle()})
	if strings.Count(styled, "\n") != 1 {
		t.Errorf("expected one row, got %q", styled)
	}
}
