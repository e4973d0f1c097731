package canvas

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// Color is any SVG paint value ("#ff4040", "red", ...).
type Color string

// Transparent is the sentinel background meaning "no fill".
const Transparent Color = "transparent"

// Primitive is a single drawing instruction.
type Primitive interface {
	svg(b *strings.Builder)
}

type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         Color
	StrokeWidth    float64
	StrokeOpacity  float64
}

type Circle struct {
	CX, CY, R float64
	Fill      Color
}

type Rect struct {
	X, Y, W, H float64
	Fill       Color
}

func (l Line) svg(b *strings.Builder) {
	fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-opacity="%s"/>`,
		num(l.X1), num(l.Y1), num(l.X2), num(l.Y2), l.Stroke.attr(), num(l.StrokeWidth), num(l.StrokeOpacity))
	b.WriteByte('\n')
}

func (c Circle) svg(b *strings.Builder) {
	fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`, num(c.CX), num(c.CY), num(c.R), c.Fill.attr())
	b.WriteByte('\n')
}

func (r Rect) svg(b *strings.Builder) {
	if r.X == 0 && r.Y == 0 {
		fmt.Fprintf(b, `<rect width="%s" height="%s" fill="%s"/>`, num(r.W), num(r.H), r.Fill.attr())
	} else {
		fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`, num(r.X), num(r.Y), num(r.W), num(r.H), r.Fill.attr())
	}
	b.WriteByte('\n')
}

// attr escapes c for use inside a double-quoted attribute.
func (c Color) attr() string {
	return html.EscapeString(string(c))
}

// num formats with the shortest representation so integral values stay clean.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Surface is an ordered list of primitives; later primitives paint over
// earlier ones.
type Surface struct {
	prims []Primitive
}

func NewSurface() *Surface {
	return &Surface{prims: make([]Primitive, 0, 64)}
}

func (s *Surface) Add(p Primitive) { s.prims = append(s.prims, p) }

func (s *Surface) Line(l Line) { s.Add(l) }

func (s *Surface) Circle(c Circle) { s.Add(c) }

func (s *Surface) Rect(r Rect) { s.Add(r) }

// Primitives returns the painted primitives in paint order.
func (s *Surface) Primitives() []Primitive {
	out := make([]Primitive, len(s.prims))
	copy(out, s.prims)
	return out
}

func (s *Surface) Len() int { return len(s.prims) }

// Reset empties the surface, keeping its capacity.
func (s *Surface) Reset() { s.prims = s.prims[:0] }

// Drawable is nested content of a Frame.
type Drawable interface {
	Draw(s *Surface)
}

// DrawFunc adapts a plain function to Drawable.
type DrawFunc func(s *Surface)

func (f DrawFunc) Draw(s *Surface) { f(s) }
