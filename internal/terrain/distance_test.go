package terrain

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"mapgen/internal/core"
)

func TestNearestFarthestInFirstRing(t *testing.T) {
	g := gridFromRows(
		"#######",
		"#######",
		"#######",
		"####~~#",
		"####~##",
		"#######",
		"#######",
	)
	// Ring 1 around (3,3) holds (4,3) at 1 and (4,4) at sqrt(2); the
	// farther one wins. (5,3) sits in ring 2 and is never reached.
	d, ok := nearest(g, core.Position{X: 3, Y: 3}, SaltWater)
	require.True(t, ok)
	require.InDelta(t, math.Sqrt2, d, 1e-9)
}

func TestNearestAcrossGrid(t *testing.T) {
	g := gridFromRows(
		"#####",
		"#####",
		"#####",
		"#####",
		"####=",
	)
	d, ok := nearest(g, core.Position{}, FreshWater)
	require.True(t, ok)
	require.InDelta(t, math.Sqrt(32), d, 1e-9)

	_, ok = nearest(g, core.Position{}, SaltWater)
	require.False(t, ok)
}

func TestNearestUsesEuclideanDistance(t *testing.T) {
	g := gridFromRows(
		"#######",
		"#######",
		"#######",
		"#######",
		"#######",
		"#~#####",
		"#######",
	)
	d, ok := nearest(g, core.Position{X: 3, Y: 3}, SaltWater)
	require.True(t, ok)
	require.InDelta(t, math.Hypot(2, 2), d, 1e-9)
}

func testWaterGrid() *Grid {
	g := NewGrid(40)
	cells := g.Cells()
	for i := range cells {
		x, y := g.Coordinate(i)
		switch {
		case g.OnRim(core.Position{X: x, Y: y}):
			cells[i].Kind = SaltWater
		case (x*7+y*13)%37 == 0:
			cells[i].Kind = FreshWater
		default:
			cells[i].Kind = Placeholder
		}
	}
	return g
}

func TestDistancesSortedDescending(t *testing.T) {
	g := testWaterGrid()
	found, err := distances(context.Background(), g, Placeholder, SaltWater, 1)
	require.NoError(t, err)
	require.Equal(t, count(g, Placeholder), len(found))
	for i := 1; i < len(found); i++ {
		require.GreaterOrEqual(t, found[i-1].distance, found[i].distance)
	}
	// The centre cells first see the rim at radius 19 and pick a corner.
	require.InDelta(t, 19*math.Sqrt2, found[0].distance, 1e-9)
}

func TestDistancesWorkerParity(t *testing.T) {
	g := testWaterGrid()
	for _, ref := range []Kind{SaltWater, FreshWater} {
		serial, err := distances(context.Background(), g, Placeholder, ref, 1)
		require.NoError(t, err)
		parallel, err := distances(context.Background(), g, Placeholder, ref, 4)
		require.NoError(t, err)
		require.Equal(t, serial, parallel)
	}
}

func TestDistancesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := distances(ctx, testWaterGrid(), Placeholder, SaltWater, 4)
	require.ErrorIs(t, err, context.Canceled)
	_, err = distances(ctx, testWaterGrid(), Placeholder, SaltWater, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAssignElevation(t *testing.T) {
	g := NewGrid(2)
	assignElevation(g, []featureDistance{
		{index: 0, distance: 8, found: true},
		{index: 1, distance: 6, found: true},
		{index: 2, distance: 2.5, found: true},
		{index: 3, distance: 1, found: true},
	})
	cells := g.Cells()
	require.Equal(t, 4, cells[0].Elevation)
	require.Equal(t, 3, cells[1].Elevation)
	require.Equal(t, 1, cells[2].Elevation)
	require.Equal(t, 1, cells[3].Elevation, "bands never drop below 1")
	require.Equal(t, uint32(2), cells[2].DistanceFromSaltWater)
}

func TestAssignMoisture(t *testing.T) {
	g := NewGrid(2)
	assignMoisture(g, []featureDistance{
		{index: 0, distance: 8, found: true},
		{index: 1, distance: 6, found: true},
		{index: 2, distance: 2, found: true},
		{index: 3, distance: 1, found: true},
	})
	cells := g.Cells()
	require.Equal(t, 1, cells[0].Moisture)
	require.Equal(t, 2, cells[1].Moisture)
	require.Equal(t, 5, cells[2].Moisture)
	require.Equal(t, 6, cells[3].Moisture)
	require.Equal(t, uint32(8), cells[0].DistanceFromFreshWater)
}

func TestAssignEmpty(t *testing.T) {
	g := NewGrid(2)
	assignElevation(g, nil)
	assignMoisture(g, nil)
	for _, c := range g.Cells() {
		require.Equal(t, NewCell(), c)
	}
}
