package main

import (
	"TriDiff/internal/compare"
	"TriDiff/internal/config"
	"TriDiff/internal/logging"
	"TriDiff/internal/metrics"
	"TriDiff/internal/progress"
	"TriDiff/internal/render"
	"TriDiff/internal/source"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	decimal   bool
	chunkSize int64
	progress  bool
	stats     bool
	logLevel  string
	config    string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "ddd file1 file2 file3 [vfrom [vto]]",
		Short: "Three-way byte comparison of equal-length binary files",
		Long: `ddd compares three equal-length files byte by byte.

Offsets where some but not all files agree are reported as signal; offsets
where every file holds a different value are reported as noise. Giving both
vfrom and vto restricts signal to offsets where file1 holds vfrom and file2
holds vto, and hides noise.`,
		Args:          cobra.RangeArgs(3, 5),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, f, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.BoolVarP(&f.decimal, "decimal", "d", false, "format output values as decimal instead of hex")
	fl.Int64Var(&f.chunkSize, "chunk-size", 0, "compare in chunks of this many bytes per file (0 reads files whole)")
	fl.BoolVar(&f.progress, "progress", false, "show a progress bar on stderr")
	fl.BoolVar(&f.stats, "stats", false, "print run statistics on stderr")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug/info/warn/error/disabled")
	fl.StringVarP(&f.config, "config", "c", "", "optional YAML config file with defaults")

	return cmd
}

func parseValue(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("argument %s: invalid int value: %q", name, raw)
	}
	return v, nil
}

func runCompare(cmd *cobra.Command, args []string, f rootFlags, stdout, stderr io.Writer) error {
	var from, to *int
	if len(args) > 3 {
		v, err := parseValue("vfrom", args[3])
		if err != nil {
			return err
		}
		from = &v
	}
	if len(args) > 4 {
		v, err := parseValue("vto", args[4])
		if err != nil {
			return err
		}
		to = &v
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	changed := cmd.Flags().Changed
	if changed("decimal") {
		cfg.Decimal = f.decimal
	}
	if changed("chunk-size") {
		cfg.ChunkSize = f.chunkSize
	}
	if changed("progress") {
		cfg.Progress = f.progress
	}
	if changed("stats") {
		cfg.Stats = f.stats
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.Init("ddd", level, stderr)
	if cfg.Source() != "" {
		log.Debug().Str("path", cfg.Source()).Msg("loaded config")
	}

	paths := args[:3]
	stats := &metrics.Stats{}
	stats.Start()

	var bar *progress.Bar
	if cfg.Progress {
		total, err := totalBytes(paths)
		if err != nil {
			return &runError{err: err}
		}
		bar, err = progress.New(total, stderr, func() (offsets, signal, noise, bytesRead int64) {
			snap := stats.Snapshot()
			return snap.Offsets, snap.Signal, snap.Noise, snap.BytesRead
		})
		if err != nil {
			return &runError{err: err}
		}
	}

	res, err := compare.Files(paths, compare.Options{ChunkSize: cfg.ChunkSize}, stats, bar)
	bar.Close()
	stats.Stop()
	if err != nil {
		return &runError{err: err}
	}

	opts := render.Options{
		Decimal: cfg.Decimal,
		Filter:  render.NewFilter(from, to),
	}
	if err := render.Write(stdout, res.Signal, res.Noise, opts); err != nil {
		return &runError{err: err}
	}

	if cfg.Stats {
		metrics.Print(stderr, stats)
	}
	return nil
}

// totalBytes sizes the progress bar. A length mismatch surfaces here before
// the bar is drawn.
func totalBytes(paths []string) (int64, error) {
	sizes, err := source.Sizes(paths)
	if err != nil {
		return 0, err
	}
	size, err := source.CheckEqual(sizes)
	if err != nil {
		return 0, err
	}
	return size * int64(len(paths)), nil
}
