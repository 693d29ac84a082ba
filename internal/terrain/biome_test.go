package terrain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhittakerTotal(t *testing.T) {
	for e := 1; e <= MaxElevation; e++ {
		for m := 1; m <= MaxMoisture; m++ {
			k := Whittaker(e, m)
			require.Truef(t, k.Terminal(), "(%d,%d) -> %s", e, m, k)
			require.NotEqual(t, Beach, k)
			require.False(t, k.Water(), "table must only hold land biomes")
		}
	}
}

func TestWhittakerLookups(t *testing.T) {
	require.Equal(t, Grassland, Whittaker(2, 3))
	require.Equal(t, SubtropicalDesert, Whittaker(1, 1))
	require.Equal(t, TropicalRainForest, Whittaker(1, 6))
	require.Equal(t, Scorched, Whittaker(4, 1))
	require.Equal(t, Snow, Whittaker(4, 6))
}

func TestWhittakerClamps(t *testing.T) {
	require.Equal(t, Whittaker(1, 1), Whittaker(0, 0))
	require.Equal(t, Whittaker(4, 6), Whittaker(9, 12))
	require.Equal(t, Whittaker(1, 6), Whittaker(-3, 7))
}

func TestKindTables(t *testing.T) {
	names := map[string]bool{}
	symbols := map[string]bool{}
	for _, k := range Kinds() {
		require.NotEmpty(t, k.Name())
		require.False(t, names[k.Name()], "duplicate name %q", k.Name())
		names[k.Name()] = true

		if k == Void {
			require.Empty(t, k.Symbol())
			continue
		}
		require.Len(t, k.Symbol(), 1, "symbol of %s", k)
		require.False(t, symbols[k.Symbol()], "duplicate symbol %q", k.Symbol())
		symbols[k.Symbol()] = true
		require.Equal(t, uint8(0xff), k.Colour().A)

		back, ok := KindByName(k.Name())
		require.True(t, ok)
		require.Equal(t, k, back)
	}
	require.Len(t, Kinds(), 18)
	require.False(t, Kind(200).Valid())
	_, ok := KindByName("Lava")
	require.False(t, ok)
}

func TestLayerColours(t *testing.T) {
	require.Equal(t, SaltWater.Colour(), ElevationColour(SaltWater, 3))
	require.Equal(t, rgb(0, 0, 0), ElevationColour(Grassland, 1))
	require.Equal(t, rgb(255, 255, 255), ElevationColour(Snow, 4))
	require.Equal(t, rgb(199, 0, 57), ElevationColour(Grassland, 0))

	require.Equal(t, rgb(199, 0, 57), MoistureColour(SaltWater, 6))
	require.Equal(t, rgb(0, 11, 213), MoistureColour(Taiga, 6))
	require.Equal(t, rgb(0, 0, 0), MoistureColour(FreshWater, 0))
}
