package terrain

import (
	"fmt"
	"image/color"

	"mapgen/internal/core"
)

// Map is a read-only view of a generated grid.
type Map struct {
	seed string
	grid *Grid
}

func newMap(seed string, grid *Grid) *Map {
	return &Map{seed: seed, grid: grid}
}

// CellView is everything a renderer needs to know about one cell.
type CellView struct {
	Kind      Kind
	Name      string
	Symbol    string
	Elevation int
	Moisture  int

	DistanceFromSaltWater  uint32
	DistanceFromFreshWater uint32

	Colour          color.RGBA
	ElevationColour color.RGBA
	MoistureColour  color.RGBA
}

func viewOf(c Cell) CellView {
	return CellView{
		Kind:                   c.Kind,
		Name:                   c.Kind.Name(),
		Symbol:                 c.Kind.Symbol(),
		Elevation:              c.Elevation,
		Moisture:               c.Moisture,
		DistanceFromSaltWater:  c.DistanceFromSaltWater,
		DistanceFromFreshWater: c.DistanceFromFreshWater,
		Colour:                 c.Kind.Colour(),
		ElevationColour:        ElevationColour(c.Kind, c.Elevation),
		MoistureColour:         MoistureColour(c.Kind, c.Moisture),
	}
}

// Seed returns the seed the map was generated from.
func (m *Map) Seed() string { return m.seed }

// Size returns the side length of the map.
func (m *Map) Size() int { return m.grid.Len() }

// At returns the cell at column x, row y.
func (m *Map) At(x, y int) (CellView, bool) {
	c, ok := m.grid.At(core.Position{X: x, Y: y})
	if !ok {
		return CellView{}, false
	}
	return viewOf(c), true
}

// Each visits every cell row by row.
func (m *Map) Each(fn func(x, y int, c CellView)) {
	for idx, c := range m.grid.Cells() {
		x, y := m.grid.Coordinate(idx)
		fn(x, y, viewOf(c))
	}
}

// Kinds counts the cells of each kind present on the map.
func (m *Map) Kinds() map[Kind]int {
	out := make(map[Kind]int)
	for _, c := range m.grid.Cells() {
		out[c.Kind]++
	}
	return out
}

// Snapshot is a serialisable copy of a map, row-major.
type Snapshot struct {
	Seed          string   `json:"seed"`
	Size          int      `json:"size"`
	Kinds         []Kind   `json:"kinds"`
	Elevation     []uint8  `json:"elevation"`
	Moisture      []uint8  `json:"moisture"`
	SaltDistance  []uint32 `json:"salt_distance"`
	FreshDistance []uint32 `json:"fresh_distance"`
}

// Snapshot copies the map into a Snapshot.
func (m *Map) Snapshot() Snapshot {
	cells := m.grid.Cells()
	s := Snapshot{
		Seed:          m.seed,
		Size:          m.grid.Len(),
		Kinds:         make([]Kind, len(cells)),
		Elevation:     make([]uint8, len(cells)),
		Moisture:      make([]uint8, len(cells)),
		SaltDistance:  make([]uint32, len(cells)),
		FreshDistance: make([]uint32, len(cells)),
	}
	for i, c := range cells {
		s.Kinds[i] = c.Kind
		s.Elevation[i] = uint8(c.Elevation)
		s.Moisture[i] = uint8(c.Moisture)
		s.SaltDistance[i] = c.DistanceFromSaltWater
		s.FreshDistance[i] = c.DistanceFromFreshWater
	}
	return s
}

// Restore rebuilds a Map from a snapshot.
func Restore(s Snapshot) (*Map, error) {
	if s.Size < 1 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidSnapshot, s.Size)
	}
	n := s.Size * s.Size
	if len(s.Kinds) != n || len(s.Elevation) != n || len(s.Moisture) != n ||
		len(s.SaltDistance) != n || len(s.FreshDistance) != n {
		return nil, fmt.Errorf("%w: expected %d cells per layer", ErrInvalidSnapshot, n)
	}
	grid := NewGrid(s.Size)
	cells := grid.Cells()
	for i := range cells {
		k, e, m := s.Kinds[i], int(s.Elevation[i]), int(s.Moisture[i])
		if !k.Valid() {
			return nil, fmt.Errorf("%w: cell %d has unknown kind %d", ErrInvalidSnapshot, i, k)
		}
		if e < 1 || e > MaxElevation {
			return nil, fmt.Errorf("%w: cell %d elevation %d out of range", ErrInvalidSnapshot, i, e)
		}
		if m > MaxMoisture {
			return nil, fmt.Errorf("%w: cell %d moisture %d out of range", ErrInvalidSnapshot, i, m)
		}
		cells[i] = Cell{
			Kind:                   k,
			Elevation:              e,
			Moisture:               m,
			DistanceFromSaltWater:  s.SaltDistance[i],
			DistanceFromFreshWater: s.FreshDistance[i],
		}
	}
	return newMap(s.Seed, grid), nil
}
