package core

// Position is a signed grid coordinate. It may sit outside the grid while
// being computed; check it with Grid.Valid before indexing.
type Position struct {
	X int
	Y int
}

// Add returns p moved by d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is a unit move vector.
type Direction struct {
	X int
	Y int
}

var (
	North     = Direction{X: 0, Y: -1}
	South     = Direction{X: 0, Y: 1}
	East      = Direction{X: 1, Y: 0}
	West      = Direction{X: -1, Y: 0}
	NorthWest = Direction{X: -1, Y: -1}
	NorthEast = Direction{X: 1, Y: -1}
	SouthEast = Direction{X: 1, Y: 1}
	SouthWest = Direction{X: -1, Y: 1}
)

var (
	standardDirections = [...]Direction{North, South, East, West}
	extendedDirections = [...]Direction{North, South, East, West, NorthWest, NorthEast, SouthEast, SouthWest}
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// StandardDirections returns the four cardinal directions (N, S, E, W).
func StandardDirections() []Direction {
	out := standardDirections
	return out[:]
}

// ExtendedDirections returns the cardinal directions followed by the four
// diagonals (NW, NE, SE, SW).
func ExtendedDirections() []Direction {
	out := extendedDirections
	return out[:]
}

// Neighbourhood selects the standard (4) or extended (8) direction set.
func Neighbourhood(diagonal bool) []Direction {
	if diagonal {
		return ExtendedDirections()
	}
	return StandardDirections()
}

// PickDirection draws uniformly from the standard directions, skipping any
// listed in exclude. When everything is excluded it falls back to the full set.
func PickDirection(rng *RNG, exclude ...Direction) Direction {
	candidates := make([]Direction, 0, len(standardDirections))
	for _, d := range standardDirections {
		skip := false
		for _, ex := range exclude {
			if d == ex {
				skip = true
				break
			}
		}
		if !skip {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, standardDirections[:]...)
	}
	return candidates[rng.IntN(len(candidates))]
}
