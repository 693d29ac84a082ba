package terrain

import "mapgen/internal/core"

// removeStragglers reverts raw land with at most two raw-land neighbours
// (8-connected) to void. Cells are updated in place in row-major order.
func removeStragglers(g *Grid) int {
	size := g.Len()
	removed := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := core.Position{X: x, Y: y}
			c := g.Ptr(p)
			if c.Kind != Placeholder {
				continue
			}
			if countNeighbours(g, p, Placeholder, true) <= 2 {
				c.Kind = Void
				removed++
			}
		}
	}
	return removed
}

// thin voids the rim and flips every cell with fewer than two same-kind
// 4-neighbours, following each flip into the neighbour it leaves behind.
func thin(g *Grid) int {
	size := g.Len()
	flipped := 0
	var stack, found []core.Position
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			stack = append(stack[:0], core.Position{X: x, Y: y})
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				c := g.Ptr(p)
				if g.OnRim(p) {
					c.Kind = Void
					continue
				}
				found = neighbours(found[:0], g, p, c.Kind, false)
				if len(found) > 1 {
					continue
				}
				c.Kind = flipKind(c.Kind)
				flipped++
				stack = append(stack, found...)
			}
		}
	}
	return flipped
}

func flipKind(k Kind) Kind {
	switch k {
	case Void, FreshWater:
		return Placeholder
	default:
		return Void
	}
}
