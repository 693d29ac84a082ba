package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"mapgen/internal/terrain"
)

type seedResult struct {
	seed      string
	landRatio float64
	fresh     int
	beaches   int
	err       error
}

func (r seedResult) String() string {
	if r.err != nil {
		return fmt.Sprintf("%s failed: %v", r.seed, r.err)
	}
	return fmt.Sprintf("%s land=%.3f fresh=%d beach=%d", r.seed, r.landRatio, r.fresh, r.beaches)
}

func main() {
	count := flag.Int("count", 64, "number of seeds to generate")
	prefix := flag.String("prefix", "sweep", "seed prefix; seeds are prefix-0, prefix-1, ...")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "results to list at the end")
	base := terrain.DefaultConfig()
	flag.IntVar(&base.MapSize, "size", base.MapSize, "map edge length in cells")
	flag.IntVar(&base.Walkers, "walkers", base.Walkers, "number of landmass walkers")
	flag.IntVar(&base.Steps, "steps", base.Steps, "steps per walker")
	flag.BoolVar(&base.Strict, "strict", base.Strict, "count maps without salt or fresh water as failures")
	flag.Parse()

	seeds := seedNames(*prefix, *count)
	fmt.Printf("Sweeping %d seeds (%d workers, %dx%d, %d walkers x %d steps)\n",
		len(seeds), *workers, base.MapSize, base.MapSize, base.Walkers, base.Steps)

	start := time.Now()
	all := sweep(context.Background(), base, seeds, *workers)
	elapsed := time.Since(start)

	var ok []seedResult
	failures := 0
	for _, res := range all {
		fmt.Println(res)
		if res.err != nil {
			failures++
			continue
		}
		ok = append(ok, res)
	}
	rank(ok)

	fmt.Printf("\nTop %d by land ratio (elapsed %s, %d failures):\n", min(*top, len(ok)), elapsed.Round(time.Millisecond), failures)
	for i := 0; i < len(ok) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, ok[i])
	}
}

func seedNames(prefix string, count int) []string {
	seeds := make([]string, 0, max(count, 0))
	for i := 0; i < count; i++ {
		seeds = append(seeds, fmt.Sprintf("%s-%d", prefix, i))
	}
	return seeds
}

// sweep generates every seed with at most workers in flight and returns the
// results in seed order.
func sweep(ctx context.Context, base terrain.Config, seeds []string, workers int) []seedResult {
	results := make([]seedResult, len(seeds))
	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	for i, seed := range seeds {
		g.Go(func() error {
			results[i] = runSeed(ctx, base, seed)
			return nil
		})
	}
	g.Wait()
	return results
}

func runSeed(ctx context.Context, base terrain.Config, seed string) seedResult {
	cfg := base
	cfg.Seed = seed
	cfg.Workers = 1
	res := seedResult{seed: seed}
	gen, err := terrain.New(cfg)
	if err != nil {
		res.err = err
		return res
	}
	m, err := gen.Generate(ctx)
	if err != nil {
		res.err = err
		return res
	}
	kinds := m.Kinds()
	total := m.Size() * m.Size()
	land := 0
	for k, n := range kinds {
		if !k.Water() && k != terrain.Void {
			land += n
		}
	}
	res.landRatio = float64(land) / float64(total)
	res.fresh = kinds[terrain.FreshWater]
	res.beaches = kinds[terrain.Beach]
	return res
}

// rank orders results by land ratio, most land first, breaking ties by seed.
func rank(results []seedResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].landRatio != results[j].landRatio {
			return results[i].landRatio > results[j].landRatio
		}
		return results[i].seed < results[j].seed
	})
}
