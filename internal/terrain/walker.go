package terrain

import "mapgen/internal/core"

// Effect is applied by a Walker to the cells it visits.
type Effect interface {
	// OnStep is called after every move. stepsRemaining counts the current
	// step, so the first call sees the full step budget and the last sees 1.
	// Returning false ends the walk.
	OnStep(g *Grid, pos core.Position, stepsRemaining, consecutive int) bool
	// OnLastStep is called once when the step budget is used up.
	OnLastStep(g *Grid, pos core.Position)
}

// Walker performs one bounded, direction-persistent random walk.
type Walker struct {
	rng   *core.RNG
	steps int
	start core.Position
}

// NewWalker returns a walker that takes steps moves from start.
func NewWalker(rng *core.RNG, steps int, start core.Position) *Walker {
	return &Walker{rng: rng, steps: steps, start: start}
}

// StartPosition picks a start near the centre of a size*size grid: the
// centre plus up to size/4 on each axis, kept off the rim when possible.
func StartPosition(rng *core.RNG, size int) core.Position {
	centre := size / 2
	spread := size / 4
	p := core.Position{
		X: centre + rng.IntN(2*spread+1) - spread,
		Y: centre + rng.IntN(2*spread+1) - spread,
	}
	if size >= 3 {
		p.X = min(max(p.X, 1), size-2)
		p.Y = min(max(p.Y, 1), size-2)
	}
	return p
}

// Run walks across g applying effect and returns the number of steps taken.
func (w *Walker) Run(g *Grid, effect Effect) int {
	size := g.Len()
	pos := w.start
	current := core.PickDirection(w.rng)
	consecutive := 0
	taken := 0

	for remaining := w.steps; remaining > 0; {
		next := w.turn(current)

		pos = pos.Add(next)
		if pos.X <= 0 || pos.X >= size-1 {
			pos.X -= 2 * next.X
		}
		if pos.Y <= 0 || pos.Y >= size-1 {
			pos.Y -= 2 * next.Y
		}

		if next != current {
			consecutive = 0
			current = next
		} else {
			consecutive++
		}

		proceed := effect.OnStep(g, pos, remaining, consecutive)
		remaining--
		taken++
		if remaining == 0 {
			effect.OnLastStep(g, pos)
		}
		if !proceed {
			break
		}
	}
	return taken
}

// turn keeps the current direction or, on a coin flip, picks a new one that
// never reverses it.
func (w *Walker) turn(current core.Direction) core.Direction {
	if w.rng.IntN(2) == 1 {
		return core.PickDirection(w.rng, current.Opposite())
	}
	return current
}
