package export

import (
	"context"
	"fmt"
	"image"
	"image/gif"
	"io"
	"log"
	"math"
	"os"

	"github.com/san-kum/dotfield/internal/canvas"
	"github.com/san-kum/dotfield/internal/field"
)

const (
	DefaultGIFFrames = 120
	DefaultGIFSize   = 400
	DefaultGIFFPS    = 30
)

type GIFOptions struct {
	Frames int // frames to record
	Size   int // longer side in pixels
	FPS    int
}

func (o GIFOptions) withDefaults() GIFOptions {
	if o.Frames <= 0 {
		o.Frames = DefaultGIFFrames
	}
	if o.Size <= 0 {
		o.Size = DefaultGIFSize
	}
	if o.FPS <= 0 {
		o.FPS = DefaultGIFFPS
	}
	return o
}

// Delay is the per-frame delay in hundredths of a second. Most viewers
// clamp anything below 2.
func (o GIFOptions) Delay() int {
	return max(2, int(math.Round(100/float64(o.withDefaults().FPS))))
}

// RecordGIF steps f opts.Frames times and encodes every frame as an animated
// GIF. ctx is checked between frames.
func RecordGIF(ctx context.Context, w io.Writer, frame canvas.Frame, f *field.Field, opts GIFOptions) error {
	opts = opts.withDefaults()
	pw, ph := SizeFor(frame, opts.Size)
	raster := NewRaster(frame, pw, ph)
	surface := canvas.NewSurface()
	delay := opts.Delay()

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, opts.Frames),
		Delay:     make([]int, 0, opts.Frames),
		LoopCount: 0,
	}
	for i := 0; i < opts.Frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f.Step()
		frame.ComposeInto(surface, f)
		anim.Image = append(anim.Image, raster.Render(surface))
		anim.Delay = append(anim.Delay, delay)
	}

	log.Printf("export: encoding %d frames at %dx%d", len(anim.Image), pw, ph)
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

func SaveGIF(ctx context.Context, path string, frame canvas.Frame, f *field.Field, opts GIFOptions) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RecordGIF(ctx, out, frame, f, opts); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
