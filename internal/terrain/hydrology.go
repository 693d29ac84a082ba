package terrain

import (
	"github.com/zyedidia/generic/mapset"

	"mapgen/internal/core"
)

// settled collects every cell that is no longer void. Flood fills never
// overwrite these.
func settled(g *Grid) mapset.Set[core.Position] {
	set := mapset.New[core.Position]()
	size := g.Len()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := core.Position{X: x, Y: y}
			if c := g.Ptr(p); c.Kind != Void {
				set.Put(p)
			}
		}
	}
	return set
}

// floodFill marks every cell 4-connected to start and not in ignore with kind,
// breadth first. It returns the number of cells written.
func floodFill(g *Grid, kind Kind, start core.Position, ignore mapset.Set[core.Position]) int {
	if !g.Valid(start) {
		return 0
	}
	visited := make([]bool, len(g.Cells()))
	ignore.Each(func(p core.Position) {
		if g.Valid(p) {
			visited[g.Index(p.X, p.Y)] = true
		}
	})
	first := g.Index(start.X, start.Y)
	if visited[first] {
		return 0
	}

	cells := g.Cells()
	queue := []int{first}
	visited[first] = true
	for qi := 0; qi < len(queue); qi++ {
		idx := queue[qi]
		cells[idx].Kind = kind
		x, y := g.Coordinate(idx)
		for _, d := range core.StandardDirections() {
			nx, ny := x+d.X, y+d.Y
			if !g.InBounds(nx, ny) {
				continue
			}
			n := g.Index(nx, ny)
			if visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return len(queue)
}

// findReplace turns every cell of kind find into replace. With ignoreSolo,
// cells without a same-kind 8-neighbour are left alone. Neighbour checks see
// the grid as it was before any replacement.
func findReplace(g *Grid, find, replace Kind, ignoreSolo bool) int {
	size := g.Len()
	var hits []int
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := core.Position{X: x, Y: y}
			if g.Ptr(p).Kind != find {
				continue
			}
			if ignoreSolo && countNeighbours(g, p, find, true) == 0 {
				continue
			}
			hits = append(hits, g.Index(x, y))
		}
	}
	cells := g.Cells()
	for _, idx := range hits {
		cells[idx].Kind = replace
	}
	return len(hits)
}

// classifyWater floods open water from the corner as salt water, turns
// enclosed void pockets into fresh water and leaves isolated void cells as
// raw land.
func classifyWater(g *Grid) (salt, fresh, solo int) {
	salt = floodFill(g, SaltWater, core.Position{}, settled(g))
	fresh = findReplace(g, Void, FreshWater, true)
	solo = findReplace(g, Void, Placeholder, false)
	return salt, fresh, solo
}
