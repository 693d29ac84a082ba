package terrain

import "mapgen/internal/core"

// Cell is the per-position record mutated by every pipeline stage.
type Cell struct {
	Kind                   Kind
	DistanceFromSaltWater  uint32
	DistanceFromFreshWater uint32
	Elevation              int
	Moisture               int
}

// NewCell returns an untouched cell.
func NewCell() Cell {
	return Cell{Kind: Void, Elevation: 1}
}

// Grid is the square cell buffer a generation run works on.
type Grid = core.Grid[Cell]

// NewGrid allocates a size*size grid of untouched cells.
func NewGrid(size int) *Grid {
	return core.NewGrid(size, NewCell())
}

// kindAt returns the kind at p and false when p lies outside g.
func kindAt(g *Grid, p core.Position) (Kind, bool) {
	c := g.Ptr(p)
	if c == nil {
		return Void, false
	}
	return c.Kind, true
}

// neighbours appends the positions around p whose kind is k.
func neighbours(dst []core.Position, g *Grid, p core.Position, k Kind, diagonal bool) []core.Position {
	for _, d := range core.Neighbourhood(diagonal) {
		n := p.Add(d)
		if kind, ok := kindAt(g, n); ok && kind == k {
			dst = append(dst, n)
		}
	}
	return dst
}

// countNeighbours counts the positions around p whose kind is k.
func countNeighbours(g *Grid, p core.Position, k Kind, diagonal bool) int {
	n := 0
	for _, d := range core.Neighbourhood(diagonal) {
		if kind, ok := kindAt(g, p.Add(d)); ok && kind == k {
			n++
		}
	}
	return n
}

// count returns how many cells of g have kind k.
func count(g *Grid, k Kind) int {
	n := 0
	for _, c := range g.Cells() {
		if c.Kind == k {
			n++
		}
	}
	return n
}
