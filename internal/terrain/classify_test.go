package terrain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mapgen/internal/core"
)

func TestMarkBeaches(t *testing.T) {
	g := gridFromRows(
		"~~~~~",
		"~###~",
		"~###~",
		"~###~",
		"~~~~~",
	)
	cells := g.Cells()
	for i := range cells {
		cells[i].Moisture = 3
	}
	set := func(x, y, e, m int) {
		c := g.Ptr(core.Position{X: x, Y: y})
		c.Elevation, c.Moisture = e, m
	}
	set(1, 1, 1, 2) // coastal, dry, low
	set(2, 2, 1, 0) // dry but inland
	set(3, 1, 2, 1) // coastal but high
	set(1, 3, 1, 3) // coastal but wet

	require.Equal(t, 1, markBeaches(g))
	require.Equal(t, Beach, kindAtXY(g, 1, 1))
	require.Equal(t, Placeholder, kindAtXY(g, 2, 2))
	require.Equal(t, Placeholder, kindAtXY(g, 3, 1))
	require.Equal(t, Placeholder, kindAtXY(g, 1, 3))
}

func TestAssignBiomes(t *testing.T) {
	g := gridFromRows(
		"~~~",
		"~##",
		"~#=",
	)
	set := func(x, y, e, m int) {
		c := g.Ptr(core.Position{X: x, Y: y})
		c.Elevation, c.Moisture = e, m
	}
	set(1, 1, 2, 3)
	set(2, 1, 1, 0)
	set(1, 2, 7, 9)

	require.Equal(t, 3, assignBiomes(g))
	require.Equal(t, Grassland, kindAtXY(g, 1, 1))
	require.Equal(t, SubtropicalDesert, kindAtXY(g, 2, 1))
	require.Equal(t, Snow, kindAtXY(g, 1, 2))
	require.Equal(t, FreshWater, kindAtXY(g, 2, 2))

	c := g.Ptr(core.Position{X: 2, Y: 1})
	require.Equal(t, 1, c.Moisture, "classified cells keep clamped bands")
	c = g.Ptr(core.Position{X: 1, Y: 2})
	require.Equal(t, MaxElevation, c.Elevation)
	require.Equal(t, MaxMoisture, c.Moisture)
}
