package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/san-kum/dotfield/internal/canvas"
	"github.com/san-kum/dotfield/internal/config"
	"github.com/san-kum/dotfield/internal/export"
	"github.com/san-kum/dotfield/internal/field"
	"github.com/san-kum/dotfield/internal/viz"
)

// options holds the flags shared by every command.
type options struct {
	configFile string
	preset     string
	rows       int
	cols       int
	width      float64
	height     float64
	background string
	seed       int64
	fps        int
	debug      bool
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.configFile, "config", "", "config file path (yaml)")
	fs.StringVar(&o.preset, "preset", "", "start from a named preset")
	fs.IntVar(&o.rows, "rows", config.DefaultRows, "grid rows")
	fs.IntVar(&o.cols, "cols", config.DefaultColumns, "grid columns")
	fs.Float64Var(&o.width, "width", config.DefaultWidth, "logical canvas width")
	fs.Float64Var(&o.height, "height", config.DefaultHeight, "logical canvas height")
	fs.StringVar(&o.background, "bg", config.DefaultBackground, `background color, or "transparent"`)
	fs.Int64Var(&o.seed, "seed", 0, "random seed (0 = time-based)")
	fs.IntVar(&o.fps, "fps", config.DefaultFPS, "frames per second")
	fs.BoolVar(&o.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
}

// resolve layers defaults, preset, config file and explicitly set flags, in
// that order.
func (o *options) resolve(fs *pflag.FlagSet) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if o.preset != "" {
		p, err := config.GetPreset(o.preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if o.configFile != "" {
		if err := config.LoadInto(o.configFile, cfg); err != nil {
			return nil, err
		}
	}

	if fs.Changed("rows") {
		cfg.Rows = o.rows
	}
	if fs.Changed("cols") {
		cfg.Columns = o.cols
	}
	if fs.Changed("width") {
		cfg.Width = o.width
	}
	if fs.Changed("height") {
		cfg.Height = o.height
	}
	if fs.Changed("bg") {
		cfg.Background = o.background
	}
	if fs.Changed("seed") {
		cfg.Seed = o.seed
	}
	if fs.Changed("fps") {
		cfg.FPS = o.fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newField(cfg *config.Config) (*field.Field, error) {
	f := field.New(field.WithParams(cfg.FieldParams()), field.WithSeed(cfg.Seed))
	if err := f.Reset(cfg.Rows, cfg.Columns, cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	return f, nil
}

func frameFor(cfg *config.Config) canvas.Frame {
	return canvas.New(cfg.Width, cfg.Height, canvas.Color(cfg.Background))
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	var logFile *os.File

	rootCmd := &cobra.Command{
		Use:           "dotfield",
		Short:         "bouncing dots that link up when they get close",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile = setupLogging(opts.debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
	}
	opts.register(rootCmd.PersistentFlags())

	var theme string
	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the field in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, opts, theme)
		},
	}
	liveCmd.Flags().StringVar(&theme, "theme", "classic", fmt.Sprintf("color theme %v", viz.ThemeNames()))
	rootCmd.RunE = liveCmd.RunE
	rootCmd.Flags().AddFlagSet(liveCmd.Flags())

	var snapshotFrames int
	snapshotCmd := &cobra.Command{
		Use:   "snapshot [file]",
		Short: "step the field and write one SVG frame",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, opts, snapshotFrames, args)
		},
	}
	snapshotCmd.Flags().IntVar(&snapshotFrames, "frames", 60, "frames to step before writing")

	var gifOpts export.GIFOptions
	gifCmd := &cobra.Command{
		Use:   "gif [file]",
		Short: "record an animated GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGIF(cmd, opts, gifOpts, args)
		},
	}
	gifCmd.Flags().IntVar(&gifOpts.Frames, "frames", export.DefaultGIFFrames, "frames to record")
	gifCmd.Flags().IntVar(&gifOpts.Size, "size", export.DefaultGIFSize, "longer side in pixels")

	var watchFrames int
	watchCmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "keep rewriting an SVG file once per frame",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, watchFrames, args)
		},
	}
	watchCmd.Flags().IntVar(&watchFrames, "frames", 0, "stop after this many frames (0 = until interrupted)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPresets(cmd)
		},
	}

	var bench benchOptions
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "step independent fields in parallel and report throughput",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts, bench)
		},
	}
	benchCmd.Flags().IntVar(&bench.fields, "fields", 4, "independent fields")
	benchCmd.Flags().IntVar(&bench.frames, "frames", 1000, "frames per field")

	rootCmd.AddCommand(liveCmd, snapshotCmd, gifCmd, watchCmd, presetsCmd, benchCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func listPresets(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGRID\tCANVAS\tBACKGROUND\tTHRESHOLD")
	for _, name := range config.ListPresets() {
		p, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%gx%g\t%s\t%g\n",
			name, p.Rows, p.Columns, p.Width, p.Height, p.Background, p.Physics.ProximityThreshold)
	}
	return w.Flush()
}
