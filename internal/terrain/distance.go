package terrain

import (
	"context"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"mapgen/internal/core"
)

// featureDistance is the distance from one target cell to its reference.
type featureDistance struct {
	index    int
	distance float64
	found    bool
}

// nearest searches square rings of growing radius around origin for a cell of
// kind ref. Only the first ring holding a match is considered; within it the
// farthest match by Euclidean distance wins, the earliest scanned on ties.
func nearest(g *Grid, origin core.Position, ref Kind) (float64, bool) {
	size := g.Len()
	for r := 1; ; r++ {
		x0, y0 := origin.X-r, origin.Y-r
		x1, y1 := origin.X+r, origin.Y+r
		if x0 < 0 && y0 < 0 && x1 >= size && y1 >= size {
			return 0, false
		}

		best, found := 0.0, false
		visit := func(x, y int) {
			if !g.InBounds(x, y) || g.Cells()[g.Index(x, y)].Kind != ref {
				return
			}
			d := math.Hypot(float64(x-origin.X), float64(y-origin.Y))
			if !found || d > best {
				best, found = d, true
			}
		}

		for x := x0; x <= x1; x++ {
			visit(x, y0)
		}
		for y := y0 + 1; y < y1; y++ {
			visit(x0, y)
			visit(x1, y)
		}
		for x := x0; x <= x1; x++ {
			visit(x, y1)
		}
		if found {
			return best, true
		}
	}
}

// distances measures every target cell against the nearest reference cell
// and returns the matches sorted by descending distance. With workers > 1 the
// searches are split across an errgroup; the grid is only read.
func distances(ctx context.Context, g *Grid, target, ref Kind, workers int) ([]featureDistance, error) {
	var targets []int
	for idx, c := range g.Cells() {
		if c.Kind == target {
			targets = append(targets, idx)
		}
	}
	out := make([]featureDistance, len(targets))

	measure := func(i int) {
		x, y := g.Coordinate(targets[i])
		d, ok := nearest(g, core.Position{X: x, Y: y}, ref)
		out[i] = featureDistance{index: targets[i], distance: d, found: ok}
	}

	if workers <= 1 || len(targets) < 2 {
		for i := range targets {
			if i%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}
			measure(i)
		}
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(workers)
		chunk := (len(targets) + workers - 1) / workers
		for lo := 0; lo < len(targets); lo += chunk {
			lo, hi := lo, min(lo+chunk, len(targets))
			eg.Go(func() error {
				for i := lo; i < hi; i++ {
					if err := egCtx.Err(); err != nil {
						return err
					}
					measure(i)
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	matched := out[:0]
	for _, fd := range out {
		if fd.found {
			matched = append(matched, fd)
		}
	}
	slices.SortStableFunc(matched, func(a, b featureDistance) int {
		switch {
		case a.distance > b.distance:
			return -1
		case a.distance < b.distance:
			return 1
		}
		return 0
	})
	return matched, nil
}

// assignElevation bands salt water distances into 1..MaxElevation.
func assignElevation(g *Grid, found []featureDistance) {
	if len(found) == 0 {
		return
	}
	per := found[0].distance / MaxElevation
	cells := g.Cells()
	for _, fd := range found {
		c := &cells[fd.index]
		c.DistanceFromSaltWater = uint32(fd.distance)
		c.Elevation = clampBand(int(math.Floor(fd.distance/per)), MaxElevation)
	}
}

// assignMoisture bands fresh water distances into 1..MaxMoisture, the closest
// cells being the wettest.
func assignMoisture(g *Grid, found []featureDistance) {
	if len(found) == 0 {
		return
	}
	per := found[0].distance / MaxMoisture
	cells := g.Cells()
	for _, fd := range found {
		c := &cells[fd.index]
		c.DistanceFromFreshWater = uint32(fd.distance)
		c.Moisture = clampBand(MaxMoisture-int(math.Ceil(fd.distance/per))+1, MaxMoisture)
	}
}
