package main

import (
	"flag"
	"strconv"
	"strings"
	"time"

	"github.com/oliverbestmann/thomson-sphere/geom"
	"github.com/oliverbestmann/thomson-sphere/metrics"
	"github.com/oliverbestmann/thomson-sphere/relax"
	"github.com/oliverbestmann/thomson-sphere/sphere"
	"github.com/pkg/errors"
)

// Options is everything the command line configures.
type Options struct {
	Sphere   sphere.Config
	Relax    relax.Config
	Strategy sphere.Strategy
	Mode     metrics.Mode

	ObjPath  string
	JSONPath string

	// Forever relaxes until interrupted when neither a tick limit nor an
	// epsilon ends the relaxation.
	Forever bool

	Profile string
	Verbose bool
}

// Relaxing reports whether the mesh is relaxed before it is written. Without
// a tick limit the relaxation ends on convergence or on interrupt.
func (o Options) Relaxing() bool {
	return o.Relax.MaxTicks > 0 || o.Relax.Epsilon > 0 || o.Forever
}

func parseFlags(fs *flag.FlagSet, args []string) (Options, error) {
	defaults := relax.DefaultConfig()

	var opts Options
	var center, strategy, mode string
	var intervalMs int
	var anneal, warmup time.Duration

	fs.IntVar(&opts.Sphere.N, "n", 50, "Number of points on the sphere.")
	fs.Float64Var(&opts.Sphere.Radius, "radius", 1, "Radius of the sphere.")
	fs.StringVar(&center, "center", "0,0,0", "Center of the sphere as x,y,z.")
	fs.Float64Var(&opts.Sphere.Jitter, "jitter", 0, "Noise displacement of the initial lattice (0 keeps the plain lattice).")
	fs.Uint64Var(&opts.Sphere.Seed, "seed", 1, "Seed for the jitter noise.")

	fs.Float64Var(&opts.Relax.Strength, "strength", defaults.Strength, "Repulsion strength.")
	fs.IntVar(&intervalMs, "interval-ms", int(defaults.Interval/time.Millisecond), "Milliseconds between relaxation ticks.")
	fs.IntVar(&opts.Relax.MaxTicks, "ticks", 0, "Stop the relaxation after this many ticks (0 means no limit).")
	fs.BoolVar(&opts.Forever, "forever", false, "Relax until interrupted.")
	fs.BoolVar(&opts.Relax.Neighbours, "neighbours", false, "Only repel points that share an edge.")
	fs.Float64Var(&opts.Relax.Epsilon, "epsilon", 0, "Relax until no point moves further than this in a tick.")
	fs.DurationVar(&anneal, "anneal", 0, "Ease the strength towards -final-strength over this much ticked time.")
	fs.DurationVar(&warmup, "warmup", 0, "Hold the initial strength this long before annealing.")
	fs.Float64Var(&opts.Relax.FinalStrength, "final-strength", 0, "Strength at the end of the annealing.")

	fs.StringVar(&strategy, "hull", sphere.BruteForce.String(), "Hull algorithm: brute, parallel or quickhull.")
	fs.StringVar(&mode, "mode", metrics.AreaQuality.String(), "Colouring metric: area or connectivity.")
	fs.StringVar(&opts.ObjPath, "obj", "", "Write the mesh as Wavefront OBJ to this file.")
	fs.StringVar(&opts.JSONPath, "json", "", "Write the render buffers as JSON to this file.")

	fs.StringVar(&opts.Profile, "profile", "", "Write a CPU profile into this directory.")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Log every tick.")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	var err error

	if opts.Sphere.Center, err = parseVec(center); err != nil {
		return opts, errors.Wrap(err, "parse -center")
	}

	if opts.Strategy, err = sphere.ParseStrategy(strategy); err != nil {
		return opts, err
	}

	if opts.Mode, err = metrics.ParseMode(mode); err != nil {
		return opts, err
	}

	opts.Relax.Interval = time.Duration(intervalMs) * time.Millisecond
	opts.Relax.Anneal = anneal
	opts.Relax.Warmup = warmup

	if err := opts.Sphere.Validate(); err != nil {
		return opts, err
	}

	if err := opts.Relax.Validate(); err != nil {
		return opts, err
	}

	return opts, nil
}

func parseVec(value string) (geom.Vec3, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return geom.Vec3{}, errors.Errorf("expected x,y,z, got %q", value)
	}

	var coords [3]float64
	for idx, part := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geom.Vec3{}, errors.Wrapf(err, "coordinate %d", idx)
		}

		coords[idx] = c
	}

	return geom.V3(coords[0], coords[1], coords[2]), nil
}
