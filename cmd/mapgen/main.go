package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"mapgen/internal/core"
	"mapgen/internal/render"
	"mapgen/internal/store"
	"mapgen/internal/terrain"
)

type options struct {
	cfg    terrain.Config
	out    string
	text   string
	relief float64
	dsn    string
}

func parseFlags(args []string, output io.Writer) (options, error) {
	opts := options{cfg: terrain.DefaultConfig(), out: "map.png"}
	fs := flag.NewFlagSet("mapgen", flag.ContinueOnError)
	fs.SetOutput(output)
	opts.cfg.Bind(fs)
	fs.StringVar(&opts.out, "out", opts.out, "image path; format follows the extension (.png, .bmp, .tif)")
	fs.StringVar(&opts.text, "text", opts.text, "text dump path, empty to skip")
	fs.Float64Var(&opts.relief, "relief", opts.relief, "relief shading strength, 0..1")
	fs.StringVar(&opts.dsn, "dsn", os.Getenv("MAPGEN_DB_DSN"), "postgres DSN to persist the map to")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.relief < 0 || opts.relief > 1 {
		return opts, fmt.Errorf("relief %v outside 0..1", opts.relief)
	}
	return opts, nil
}

func main() {
	logger := log.New(os.Stderr, "mapgen: ", log.LstdFlags)
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(ctx context.Context, opts options, logger *log.Logger) error {
	cfg := opts.cfg
	if cfg.Seed == "" {
		cfg.Seed = core.RandomSeed(32)
	}
	logger.Printf("seed %s, %dx%d, %d walkers x %d steps", cfg.Seed, cfg.MapSize, cfg.MapSize, cfg.Walkers, cfg.Steps)

	gen, err := terrain.New(cfg, terrain.WithLogger(logger))
	if err != nil {
		return err
	}
	m, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if opts.out != "" {
		if err := writeImage(opts.out, m, cfg, opts.relief); err != nil {
			return err
		}
		logger.Printf("wrote %s", opts.out)
	}
	if opts.text != "" {
		if err := writeText(opts.text, m); err != nil {
			return err
		}
		logger.Printf("wrote %s", opts.text)
	}
	if opts.dsn != "" {
		id, err := persist(ctx, opts.dsn, cfg, m)
		if err != nil {
			return err
		}
		logger.Printf("stored map %s", id)
	}
	return nil
}

func writeImage(path string, m *terrain.Map, cfg terrain.Config, relief float64) error {
	format, err := render.FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	ro := render.OptionsFor(cfg)
	ro.Relief = relief
	if err := render.Encode(f, render.Image(m, ro), format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return f.Close()
}

func writeText(path string, m *terrain.Map) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create text: %w", err)
	}
	if err := render.WriteText(f, m); err != nil {
		f.Close()
		return fmt.Errorf("write text: %w", err)
	}
	return f.Close()
}

func persist(ctx context.Context, dsn string, cfg terrain.Config, m *terrain.Map) (string, error) {
	db, err := store.OpenPostgres(dsn)
	if err != nil {
		return "", fmt.Errorf("open postgres: %w", err)
	}
	s := store.NewGormStore(db)
	if err := s.AutoMigrate(ctx); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	id := store.MapID(cfg)
	if err := s.Save(ctx, store.NewRecord(id, cfg, m)); err != nil {
		return "", fmt.Errorf("save map: %w", err)
	}
	return id, nil
}
