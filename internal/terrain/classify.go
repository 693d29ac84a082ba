package terrain

import "mapgen/internal/core"

// markBeaches turns low, dry raw land touching salt water into beach.
func markBeaches(g *Grid) int {
	size := g.Len()
	n := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := core.Position{X: x, Y: y}
			c := g.Ptr(p)
			if c.Kind != Placeholder || c.Elevation != 1 || c.Moisture > 2 {
				continue
			}
			if countNeighbours(g, p, SaltWater, true) > 0 {
				c.Kind = Beach
				c.Moisture = clampBand(c.Moisture, MaxMoisture)
				n++
			}
		}
	}
	return n
}

// assignBiomes classifies every remaining raw land cell with the Whittaker
// table. Bands are clamped and written back.
func assignBiomes(g *Grid) int {
	n := 0
	cells := g.Cells()
	for i := range cells {
		c := &cells[i]
		if c.Kind != Placeholder {
			continue
		}
		c.Elevation = clampBand(c.Elevation, MaxElevation)
		c.Moisture = clampBand(c.Moisture, MaxMoisture)
		c.Kind = Whittaker(c.Elevation, c.Moisture)
		n++
	}
	return n
}
