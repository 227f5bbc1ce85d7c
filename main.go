package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/oliverbestmann/thomson-sphere/export"
	"github.com/oliverbestmann/thomson-sphere/metrics"
	"github.com/oliverbestmann/thomson-sphere/relax"
	"github.com/oliverbestmann/thomson-sphere/sphere"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const progressEvery = 50

func main() {
	os.Exit(runMain(os.Args[1:]))
}

// runMain returns the exit code. Deferred cleanups run before main exits.
func runMain(args []string) int {
	fs := flag.NewFlagSet("sphere", flag.ContinueOnError)

	opts, err := parseFlags(fs, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger := newLogger(opts.Verbose)
	defer func() { _ = logger.Sync() }()

	if opts.Profile != "" {
		defer ProfileStart(opts.Profile)()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, opts); err != nil {
		logger.Error("sphere failed", zap.Error(err))
		return 1
	}

	return 0
}

func newLogger(verbose bool) *zap.Logger {
	var logger *zap.Logger
	var err error

	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}

	if err != nil {
		return zap.NewNop()
	}

	return logger
}

func run(ctx context.Context, logger *zap.Logger, opts Options) error {
	hullOpts := []sphere.Option{
		sphere.WithStrategy(opts.Strategy),
		sphere.WithLogger(logger),
	}

	builder, err := sphere.NewBuilder(8, hullOpts...)
	if err != nil {
		return err
	}

	mesh, err := builder.Build(opts.Sphere)
	if err != nil {
		return errors.Wrap(err, "build sphere")
	}

	logger.Info("sphere built",
		zap.Int("points", len(mesh.Points)),
		zap.Int("triangles", len(mesh.Triangles)),
		zap.Stringer("hull", opts.Strategy))

	if opts.Relaxing() {
		mesh, err = relaxMesh(ctx, logger, mesh, opts.Relax, hullOpts)
		if err != nil {
			return err
		}
	}

	if err := mesh.Validate(); err != nil {
		logger.Warn("mesh has gaps", zap.Error(err), zap.Int("degenerate", mesh.Degenerate))
	}

	logSummary(logger, metrics.Summarize(mesh))

	// an interrupt ends the relaxation, the relaxed mesh is still written
	writeCtx := context.WithoutCancel(ctx)

	if opts.ObjPath != "" {
		if err := writeOBJ(writeCtx, logger, opts.ObjPath, mesh); err != nil {
			return err
		}
	}

	if opts.JSONPath != "" {
		buffers := export.NewBuffers(mesh, opts.Mode)
		if err := writeFile(opts.JSONPath, func(w io.Writer) error { return export.WriteJSON(w, buffers) }); err != nil {
			return err
		}
	}

	return nil
}

func relaxMesh(ctx context.Context, logger *zap.Logger, mesh *sphere.Mesh, cfg relax.Config, hullOpts []sphere.Option) (*sphere.Mesh, error) {
	sim, err := relax.NewSimulation(mesh, cfg, logger, hullOpts...)
	if err != nil {
		return nil, err
	}

	runner := relax.NewRunner(sim, logger)
	runner.OnTick = progressLogger(logger, cfg.MaxTicks)

	if err := runner.Start(ctx, cfg.Interval); err != nil {
		return nil, err
	}

	select {
	case <-runner.Done():
	case <-ctx.Done():
		runner.Stop()
	}

	return runner.Mesh(), nil
}

// progressLogger logs every tenth of the planned ticks. Without a tick limit
// it logs every progressEvery ticks.
func progressLogger(logger *zap.Logger, total int) func(relax.TickResult) {
	if total <= 0 {
		return func(result relax.TickResult) {
			if result.Tick%progressEvery != 0 && !result.Converged {
				return
			}

			logger.Info(fmt.Sprintf("relaxing: tick %d", result.Tick),
				zap.Float64("displacement", result.MaxDisplacement),
				zap.Float64("strength", result.Strength))
		}
	}

	step := max(1, total/10)

	return func(result relax.TickResult) {
		if result.Tick%step != 0 && result.Tick != total {
			return
		}

		logger.Info(fmt.Sprintf("relaxing: %d%%", result.Tick*100/total),
			zap.Float64("displacement", result.MaxDisplacement),
			zap.Float64("strength", result.Strength))
	}
}

// writeOBJ streams the mesh into the file and a checksum at the same time.
// The lattice is deterministic, the checksum identifies a mesh across runs.
func writeOBJ(ctx context.Context, logger *zap.Logger, path string, mesh *sphere.Mesh) error {
	fp, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create obj file")
	}

	defer fp.Close()

	hash := sha256.New()

	src := export.Pipe(func(w io.Writer) error { return export.WriteOBJ(w, mesh) })
	if err := export.Fanout(ctx, src, fp, hash); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	logger.Info("obj written",
		zap.String("path", path),
		zap.String("sha256", hex.EncodeToString(hash.Sum(nil))))

	return errors.Wrap(fp.Close(), "close obj file")
}

func writeFile(path string, write func(w io.Writer) error) error {
	fp, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	defer fp.Close()

	if err := write(fp); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	return errors.Wrapf(fp.Close(), "close %s", path)
}

func logSummary(logger *zap.Logger, summary metrics.Summary) {
	logger.Info("mesh summary",
		zap.Int("points", summary.Points),
		zap.Int("triangles", summary.Triangles),
		zap.Int("edges", summary.Edges),
		zap.Int("degenerate", summary.Degenerate),
		zap.Float64("area_mean", summary.Area.Mean),
		zap.Float64("area_stddev", summary.Area.StdDev),
		zap.Float64("quality_mean", summary.Quality.Mean),
		zap.Float64("quality_min", summary.Quality.Min),
		zap.Float64("degree_min", summary.Degree.Min),
		zap.Float64("degree_max", summary.Degree.Max),
		zap.Float64("coverage", summary.Coverage),
		zap.Float64("min_distance", summary.MinDistance),
		zap.Float64("energy", summary.Energy))
}
