package terrain

import "mapgen/internal/core"

const (
	footprintRadius   = 4
	footprintInterval = 10
	footprintRun      = 4
)

// Landmass grows raw land along a walk.
type Landmass struct{}

// OnStep marks the cell under the walker and periodically stamps a footprint.
func (Landmass) OnStep(g *Grid, pos core.Position, stepsRemaining, consecutive int) bool {
	if !g.Valid(pos) {
		return false
	}
	if stepsRemaining%footprintInterval == 0 || consecutive >= footprintRun {
		stampFootprint(g, pos)
	}
	g.Ptr(pos).Kind = Placeholder
	return true
}

// OnLastStep always leaves a footprint where the walk ends.
func (Landmass) OnLastStep(g *Grid, pos core.Position) {
	stampFootprint(g, pos)
}

// stampFootprint marks a square of half-width footprintRadius around centre,
// minus its four corner cells.
func stampFootprint(g *Grid, centre core.Position) {
	for dy := -footprintRadius; dy <= footprintRadius; dy++ {
		for dx := -footprintRadius; dx <= footprintRadius; dx++ {
			if abs(dx) == footprintRadius && abs(dy) == footprintRadius {
				continue
			}
			if c := g.Ptr(core.Position{X: centre.X + dx, Y: centre.Y + dy}); c != nil {
				c.Kind = Placeholder
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
