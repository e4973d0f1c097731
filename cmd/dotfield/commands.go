package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/dotfield/internal/canvas"
	"github.com/san-kum/dotfield/internal/export"
	"github.com/san-kum/dotfield/internal/loop"
	"github.com/san-kum/dotfield/internal/viz"
)

func runLive(cmd *cobra.Command, opts *options, theme string) error {
	cfg, err := opts.resolve(cmd.Flags())
	if err != nil {
		return err
	}
	f, err := newField(cfg)
	if err != nil {
		return err
	}

	program := viz.NewProgram(viz.NewModel(f, frameFor(cfg), viz.Options{FPS: cfg.FPS, Theme: theme}))

	// SIGHUP re-reads the config and reshapes the running field
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-hup:
				next, err := opts.resolve(cmd.Flags())
				if err != nil {
					log.Printf("reload: %v", err)
					continue
				}
				program.Send(viz.ConfigureMsg{
					Rows:       next.Rows,
					Cols:       next.Columns,
					Width:      next.Width,
					Height:     next.Height,
					Background: canvas.Color(next.Background),
				})
			case <-done:
				return
			}
		}
	}()

	_, err = program.Run()
	return err
}

func runSnapshot(cmd *cobra.Command, opts *options, frames int, args []string) error {
	cfg, err := opts.resolve(cmd.Flags())
	if err != nil {
		return err
	}
	f, err := newField(cfg)
	if err != nil {
		return err
	}
	for i := 0; i < frames; i++ {
		f.Step()
	}

	frame := frameFor(cfg)
	if len(args) == 0 {
		return export.WriteSVG(cmd.OutOrStdout(), frame, f)
	}
	if err := export.SaveSVG(args[0], frame, f); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote frame %d to %s\n", f.Frame(), args[0])
	return nil
}

func runGIF(cmd *cobra.Command, opts *options, gifOpts export.GIFOptions, args []string) error {
	cfg, err := opts.resolve(cmd.Flags())
	if err != nil {
		return err
	}
	f, err := newField(cfg)
	if err != nil {
		return err
	}

	path := "dotfield.gif"
	if len(args) > 0 {
		path = args[0]
	}
	// GIF delays are in hundredths of a second
	gifOpts.FPS = min(cfg.FPS, 50)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	if err := export.SaveGIF(ctx, path, frameFor(cfg), f, gifOpts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "saved %s (%d frames, %v)\n", path, f.Frame(), time.Since(start).Round(time.Millisecond))
	return nil
}

// runWatch animates the field on the frame loop and rewrites the SVG file
// after every step, for viewers that reload on change.
func runWatch(cmd *cobra.Command, opts *options, frames int, args []string) error {
	cfg, err := opts.resolve(cmd.Flags())
	if err != nil {
		return err
	}
	f, err := newField(cfg)
	if err != nil {
		return err
	}

	path := "dotfield.svg"
	if len(args) > 0 {
		path = args[0]
	}
	frame := frameFor(cfg)
	if err := export.SaveSVG(path, frame, f); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var writeErr error
	anim := loop.New(f, loop.NewTimerScheduler(cfg.FPS),
		loop.WithFrameLimit(uint64(max(frames, 0))),
		loop.WithFrameHook(func(time.Time) {
			if err := export.SaveSVG(path, frame, f); err != nil {
				writeErr = err
				cancel()
			}
		}))

	fmt.Fprintf(cmd.ErrOrStderr(), "writing %s at %d fps, ctrl+c to stop\n", path, cfg.FPS)
	err = anim.Run(ctx)
	// Run has stopped the animator, so no hook is still writing
	if writeErr != nil {
		return writeErr
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "stopped after %d frames\n", anim.Frames())
	return nil
}
