package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/dotfield/internal/config"
	"github.com/san-kum/dotfield/internal/metrics"
)

type benchOptions struct {
	fields int
	frames int
}

type benchResult struct {
	dots    int
	frames  uint64
	elapsed time.Duration
	summary map[string]float64
}

// benchField steps one private field; fields share nothing.
func benchField(ctx context.Context, cfg *config.Config, frames int) (benchResult, error) {
	f, err := newField(cfg)
	if err != nil {
		return benchResult{}, err
	}
	set := metrics.Default()
	f.AddObserver(set)

	start := time.Now()
	for i := 0; i < frames; i++ {
		if i%100 == 0 {
			if err := ctx.Err(); err != nil {
				return benchResult{}, err
			}
		}
		f.Step()
	}
	return benchResult{
		dots:    f.Len(),
		frames:  f.Frame(),
		elapsed: time.Since(start),
		summary: set.Summary(),
	}, nil
}

func runBench(cmd *cobra.Command, opts *options, bench benchOptions) error {
	cfg, err := opts.resolve(cmd.Flags())
	if err != nil {
		return err
	}
	if bench.fields < 1 || bench.frames < 1 {
		return fmt.Errorf("bench needs at least one field and one frame, got %d fields x %d frames", bench.fields, bench.frames)
	}

	results := make([]benchResult, bench.fields)
	g, ctx := errgroup.WithContext(cmd.Context())
	start := time.Now()
	for i := range results {
		i := i // per-iteration copy; go.mod targets go 1.21 loop semantics
		fieldCfg := *cfg
		if cfg.Seed != 0 {
			fieldCfg.Seed = cfg.Seed + int64(i)
		}
		g.Go(func() error {
			r, err := benchField(ctx, &fieldCfg, bench.frames)
			if err != nil {
				return fmt.Errorf("field %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	wall := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %d fields of %dx%d on %gx%g\n\n", bench.fields, cfg.Rows, cfg.Columns, cfg.Width, cfg.Height)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tDOTS\tFRAMES\tTIME\tFRAMES/SEC\tMEAN LINKS\tPEAK LINKS")
	var total uint64
	for i, r := range results {
		total += r.frames
		fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\t%.1f\t%.0f\n",
			i, r.dots, r.frames, r.elapsed.Round(time.Microsecond), float64(r.frames)/r.elapsed.Seconds(),
			r.summary["connections"], r.summary["peak_connections"])
	}
	fmt.Fprintf(w, "all\t\t%d\t%v\t%.0f\t\t\n", total, wall.Round(time.Microsecond), float64(total)/wall.Seconds())
	return w.Flush()
}
