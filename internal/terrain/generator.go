package terrain

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"mapgen/internal/core"
)

// Stage names a step of the generation pipeline.
type Stage int

const (
	StageWalkers Stage = iota
	StageCleanup
	StageHydrology
	StageElevation
	StageMoisture
	StageBeaches
	StageBiomes
)

var stageNames = [...]string{
	StageWalkers:   "walkers",
	StageCleanup:   "cleanup",
	StageHydrology: "hydrology",
	StageElevation: "elevation",
	StageMoisture:  "moisture",
	StageBeaches:   "beaches",
	StageBiomes:    "biomes",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "stage(" + strconv.Itoa(int(s)) + ")"
	}
	return stageNames[s]
}

// Stages lists the pipeline stages in execution order.
func Stages() []Stage {
	return []Stage{StageWalkers, StageCleanup, StageHydrology, StageElevation, StageMoisture, StageBeaches, StageBiomes}
}

// Option customises a Generator.
type Option func(*Generator)

// WithLogger routes debug output to l. Nothing is logged unless
// Config.Debug is set.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithStageObserver registers fn to receive a copy of the map after every
// pipeline stage.
func WithStageObserver(fn func(Stage, *Map)) Option {
	return func(g *Generator) { g.observer = fn }
}

// Generator runs the terrain pipeline once.
type Generator struct {
	cfg      Config
	log      *log.Logger
	observer func(Stage, *Map)
	grid     *Grid
	used     bool
}

// New validates cfg and returns a Generator ready to run.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg: cfg,
		log: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config { return g.cfg }

// Generate runs the whole pipeline and returns the finished map. It may only
// be called once per Generator.
func (g *Generator) Generate(ctx context.Context) (*Map, error) {
	if g.used {
		return nil, ErrAlreadyGenerated
	}
	g.used = true
	g.grid = NewGrid(g.cfg.MapSize)

	start := time.Now()
	if err := g.growLand(ctx); err != nil {
		return nil, err
	}
	g.finish(StageWalkers, start, "%d raw land cells", count(g.grid, Placeholder))

	start = time.Now()
	stragglers := removeStragglers(g.grid)
	flipped := thin(g.grid)
	g.finish(StageCleanup, start, "%d stragglers removed, %d cells thinned", stragglers, flipped)

	start = time.Now()
	salt, fresh, solo := classifyWater(g.grid)
	g.finish(StageHydrology, start, "%d salt water, %d fresh water, %d solo void cells", salt, fresh, solo)

	start = time.Now()
	n, err := g.measure(ctx, SaltWater, assignElevation)
	if err != nil {
		return nil, err
	}
	g.finish(StageElevation, start, "%d cells banded", n)

	start = time.Now()
	n, err = g.measure(ctx, FreshWater, assignMoisture)
	if err != nil {
		return nil, err
	}
	g.finish(StageMoisture, start, "%d cells banded", n)

	start = time.Now()
	n = markBeaches(g.grid)
	g.finish(StageBeaches, start, "%d beach cells", n)

	start = time.Now()
	n = assignBiomes(g.grid)
	g.finish(StageBiomes, start, "%d cells classified", n)

	return newMap(g.cfg.Seed, g.grid), nil
}

// growLand runs every walker in turn. Each walker seeds its own RNG from the
// base seed with its index appended.
func (g *Generator) growLand(ctx context.Context) error {
	size := g.grid.Len()
	for i := 0; i < g.cfg.Walkers; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		rng := core.NewRNG(g.cfg.Seed + strconv.Itoa(i))
		w := NewWalker(rng, g.cfg.Steps, StartPosition(rng, size))
		w.Run(g.grid, Landmass{})
	}
	return nil
}

// measure bands raw land by distance to ref. A map without any ref cell is
// an error in strict mode and skipped otherwise.
func (g *Generator) measure(ctx context.Context, ref Kind, assign func(*Grid, []featureDistance)) (int, error) {
	if count(g.grid, ref) == 0 {
		if g.cfg.Strict {
			return 0, fmt.Errorf("%w: no %s cells", ErrInsufficientGeography, ref)
		}
		g.debugf("no %s cells, skipping", ref)
		return 0, nil
	}
	found, err := distances(ctx, g.grid, Placeholder, ref, g.cfg.Workers)
	if err != nil {
		return 0, err
	}
	assign(g.grid, found)
	return len(found), nil
}

func (g *Generator) finish(stage Stage, start time.Time, format string, args ...any) {
	if g.cfg.Debug {
		g.log.Printf("%s: %s (%s)", stage, fmt.Sprintf(format, args...), time.Since(start).Round(time.Microsecond))
	}
	if g.observer != nil {
		g.observer(stage, newMap(g.cfg.Seed, g.grid.Clone()))
	}
}

func (g *Generator) debugf(format string, args ...any) {
	if g.cfg.Debug {
		g.log.Printf(format, args...)
	}
}
