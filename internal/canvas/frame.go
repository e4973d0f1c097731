package canvas

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	DefaultWidth  = 100.0
	DefaultHeight = 100.0
)

// Frame is a fixed logical drawing area with an optional background fill.
// Width and Height are not validated; non-positive values give degenerate
// output.
type Frame struct {
	Width      float64
	Height     float64
	Background Color
}

func New(width, height float64, bg Color) Frame {
	return Frame{Width: width, Height: height, Background: bg}
}

func DefaultFrame() Frame {
	return New(DefaultWidth, DefaultHeight, Transparent)
}

// Filled reports whether the frame paints a background rectangle.
func (f Frame) Filled() bool {
	return f.Background != Transparent && f.Background != ""
}

// Compose paints the background (if any) and then every content item in
// order onto a fresh surface.
func (f Frame) Compose(content ...Drawable) *Surface {
	s := NewSurface()
	f.ComposeInto(s, content...)
	return s
}

// ComposeInto is Compose over a caller-owned surface, which is reset first.
func (f Frame) ComposeInto(s *Surface, content ...Drawable) {
	s.Reset()
	if f.Filled() {
		s.Rect(Rect{W: f.Width, H: f.Height, Fill: f.Background})
	}
	for _, c := range content {
		if c != nil {
			c.Draw(s)
		}
	}
}

// SVG returns the composed content as a standalone SVG element that scales
// to its container.
func (f Frame) SVG(content ...Drawable) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="100%%" height="100%%" viewBox="0 0 %s %s" preserveAspectRatio="xMidYMid meet" style="display:block" fill="none">`,
		num(f.Width), num(f.Height))
	sb.WriteByte('\n')

	for _, p := range f.Compose(content...).prims {
		p.svg(&sb)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func (f Frame) WriteSVG(w io.Writer, content ...Drawable) error {
	_, err := io.WriteString(w, f.SVG(content...))
	return err
}

// Viewport maps logical coordinates into a display area.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Viewport computes the "meet" fit of the frame into a display area of the
// given size: uniform scale, overflow split evenly on both sides.
func (f Frame) Viewport(displayW, displayH float64) Viewport {
	if f.Width <= 0 || f.Height <= 0 || displayW <= 0 || displayH <= 0 {
		return Viewport{}
	}
	scale := math.Min(displayW/f.Width, displayH/f.Height)
	return Viewport{
		Scale:   scale,
		OffsetX: (displayW - f.Width*scale) / 2,
		OffsetY: (displayH - f.Height*scale) / 2,
	}
}

func (v Viewport) Project(x, y float64) (float64, float64) {
	return v.OffsetX + x*v.Scale, v.OffsetY + y*v.Scale
}

func (v Viewport) Length(d float64) float64 {
	return d * v.Scale
}
