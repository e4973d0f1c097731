package export

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/san-kum/dotfield/internal/canvas"
)

// Raster paints composed surfaces into images of a fixed pixel size,
// fitting the frame with its aspect-preserving viewport.
type Raster struct {
	Width, Height int
	// Dither diffuses quantization error when reducing to a palette.
	Dither bool

	frame      canvas.Frame
	viewport   canvas.Viewport
	background color.Color
}

func NewRaster(frame canvas.Frame, width, height int) *Raster {
	var bg color.Color
	if c, ok := frame.Background.RGBA(); ok && frame.Filled() {
		bg = c
	}
	return &Raster{
		Width:      width,
		Height:     height,
		frame:      frame,
		viewport:   frame.Viewport(float64(width), float64(height)),
		background: bg,
	}
}

// SizeFor picks pixel dimensions whose longer side is longest and whose
// aspect ratio matches the frame.
func SizeFor(frame canvas.Frame, longest int) (int, int) {
	if frame.Width <= 0 || frame.Height <= 0 || longest <= 0 {
		return longest, longest
	}
	if frame.Width >= frame.Height {
		return longest, max(1, int(math.Round(float64(longest)*frame.Height/frame.Width)))
	}
	return max(1, int(math.Round(float64(longest)*frame.Width/frame.Height))), longest
}

func setColor(dc *gg.Context, c canvas.Color, opacity float64) bool {
	rgba, ok := c.RGBA()
	if !ok || rgba.A == 0 {
		return false
	}
	dc.SetRGBA(float64(rgba.R)/255, float64(rgba.G)/255, float64(rgba.B)/255, opacity)
	return true
}

// Paint draws s with full alpha compositing. Overlapping translucent
// strokes accumulate as they do in the SVG.
func (r *Raster) Paint(s *canvas.Surface) *image.RGBA {
	dc := gg.NewContext(r.Width, r.Height)
	if r.background != nil {
		dc.SetColor(r.background)
		dc.Clear()
	}

	vp := r.viewport
	for _, p := range s.Primitives() {
		switch p := p.(type) {
		case canvas.Rect:
			// the frame background is already cleared in
			if p.X == 0 && p.Y == 0 && p.W == r.frame.Width && p.H == r.frame.Height && p.Fill == r.frame.Background {
				continue
			}
			if setColor(dc, p.Fill, 1) {
				x, y := vp.Project(p.X, p.Y)
				dc.DrawRectangle(x, y, vp.Length(p.W), vp.Length(p.H))
				dc.Fill()
			}
		case canvas.Line:
			if setColor(dc, p.Stroke, p.StrokeOpacity) {
				x1, y1 := vp.Project(p.X1, p.Y1)
				x2, y2 := vp.Project(p.X2, p.Y2)
				dc.SetLineWidth(math.Max(1, vp.Length(p.StrokeWidth)))
				dc.DrawLine(x1, y1, x2, y2)
				dc.Stroke()
			}
		case canvas.Circle:
			if setColor(dc, p.Fill, 1) {
				x, y := vp.Project(p.CX, p.CY)
				dc.DrawCircle(x, y, math.Max(0.5, vp.Length(p.R)))
				dc.Fill()
			}
		}
	}
	return dc.Image().(*image.RGBA)
}

// Render paints s and reduces it to a palette of the 256 most frequent
// colors. Index 0 is always the background, fully transparent when the
// frame has no fill.
func (r *Raster) Render(s *canvas.Surface) *image.Paletted {
	src := r.Paint(s)
	bounds := src.Bounds()

	first := color.Color(color.RGBA{})
	if r.background != nil {
		first = r.background
	}
	img := image.NewPaletted(bounds, paletteOf(src, first))
	if r.Dither {
		draw.FloydSteinberg.Draw(img, bounds, src, bounds.Min)
	} else {
		draw.Draw(img, bounds, src, bounds.Min, draw.Src)
	}
	return img
}

// paletteOf ranks the colors of img by pixel count, ties broken by value so
// the result is stable.
func paletteOf(img *image.RGBA, first color.Color) color.Palette {
	counts := make(map[color.RGBA]int)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		c := color.RGBA{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
		counts[c]++
	}

	ranked := make([]color.RGBA, 0, len(counts))
	for c := range counts {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return packRGBA(a) < packRGBA(b)
	})

	seed := color.RGBAModel.Convert(first).(color.RGBA)
	pal := color.Palette{seed}
	for _, c := range ranked {
		if len(pal) == 256 {
			break
		}
		if c != seed {
			pal = append(pal, c)
		}
	}
	return pal
}

func packRGBA(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}
