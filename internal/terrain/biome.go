package terrain

import "image/color"

// Kind identifies what occupies a cell.
type Kind uint8

const (
	// Void is an untouched cell.
	Void Kind = iota
	// Placeholder is raw grown land awaiting classification.
	Placeholder
	FreshWater
	SaltWater
	Beach
	Taiga
	SubtropicalDesert
	Grassland
	TropicalSeasonalForest
	TropicalRainForest
	TemperateDesert
	TemperateDeciduousForest
	TemperateRainForest
	Shrubland
	Scorched
	Bare
	Tundra
	Snow

	kindCount
)

type kindInfo struct {
	name   string
	symbol string
	colour color.RGBA
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xff} }

var kindTable = [kindCount]kindInfo{
	Void:                     {"Void", "", rgb(255, 0, 0)},
	Placeholder:              {"Placeholder", " ", rgb(0, 0, 0)},
	FreshWater:               {"Fresh Water", "=", rgb(41, 95, 255)},
	SaltWater:                {"Salt Water", "~", rgb(0, 5, 206)},
	Beach:                    {"Beach", "B", rgb(255, 195, 0)},
	Taiga:                    {"Taiga", "1", rgb(203, 212, 187)},
	SubtropicalDesert:        {"SubtropicalDesert", "2", rgb(233, 220, 198)},
	Grassland:                {"Grassland", "3", rgb(196, 211, 170)},
	TropicalSeasonalForest:   {"TropicalSeasonalForest", "4", rgb(169, 204, 163)},
	TropicalRainForest:       {"TropicalRainForest", "5", rgb(156, 187, 169)},
	TemperateDesert:          {"TemperateDesert", "6", rgb(228, 232, 202)},
	TemperateDeciduousForest: {"TemperateDeciduousForest", "7", rgb(180, 200, 169)},
	TemperateRainForest:      {"TemperateRainForest", "8", rgb(163, 196, 168)},
	Shrubland:                {"Shrubland", "9", rgb(195, 204, 186)},
	Scorched:                 {"Scorched", "0", rgb(153, 153, 153)},
	Bare:                     {"Bare", ".", rgb(187, 187, 187)},
	Tundra:                   {"Tundra", "t", rgb(221, 221, 186)},
	Snow:                     {"Snow", "s", rgb(255, 255, 255)},
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k < kindCount }

// Name returns the display name of k.
func (k Kind) Name() string {
	if !k.Valid() {
		return "Unknown"
	}
	return kindTable[k].name
}

func (k Kind) String() string { return k.Name() }

// Symbol returns the single character used in text dumps. Void is empty.
func (k Kind) Symbol() string {
	if !k.Valid() {
		return "?"
	}
	return kindTable[k].symbol
}

// Colour returns the biome palette entry for k.
func (k Kind) Colour() color.RGBA {
	if !k.Valid() {
		return kindTable[Void].colour
	}
	return kindTable[k].colour
}

// Water reports whether k is salt or fresh water.
func (k Kind) Water() bool { return k == SaltWater || k == FreshWater }

// Terminal reports whether k may remain in a finished map.
func (k Kind) Terminal() bool { return k.Valid() && k != Void && k != Placeholder }

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Void; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// KindByName looks a kind up by its display name.
func KindByName(name string) (Kind, bool) {
	for k := Void; k < kindCount; k++ {
		if kindTable[k].name == name {
			return k, true
		}
	}
	return Void, false
}

const (
	MaxElevation = 4
	MaxMoisture  = 6
)

// whittaker is indexed [elevation-1][moisture-1].
var whittaker = [MaxElevation][MaxMoisture]Kind{
	{SubtropicalDesert, Grassland, TropicalSeasonalForest, TropicalSeasonalForest, TropicalRainForest, TropicalRainForest},
	{TemperateDesert, Grassland, Grassland, TemperateDeciduousForest, TemperateDeciduousForest, TemperateRainForest},
	{TemperateDesert, TemperateDesert, Shrubland, Shrubland, Taiga, Taiga},
	{Scorched, Bare, Tundra, Snow, Snow, Snow},
}

// Whittaker returns the biome for an elevation and moisture band. Both bands
// are clamped into range first, so every input has an answer.
func Whittaker(elevation, moisture int) Kind {
	e := clampBand(elevation, MaxElevation)
	m := clampBand(moisture, MaxMoisture)
	return whittaker[e-1][m-1]
}

func clampBand(v, hi int) int {
	if v < 1 {
		return 1
	}
	if v > hi {
		return hi
	}
	return v
}

var elevationPalette = [MaxElevation + 1]color.RGBA{
	1: rgb(0, 0, 0),
	2: rgb(89, 89, 89),
	3: rgb(184, 184, 184),
	4: rgb(255, 255, 255),
}

var moisturePalette = [MaxMoisture + 1]color.RGBA{
	1: rgb(224, 224, 224),
	2: rgb(112, 112, 112),
	3: rgb(234, 242, 255),
	4: rgb(125, 174, 254),
	5: rgb(16, 106, 255),
	6: rgb(0, 11, 213),
}

var (
	outOfBandElevation = rgb(199, 0, 57)
	outOfBandMoisture  = rgb(0, 0, 0)
	seaMoisture        = rgb(199, 0, 57)
)

// ElevationColour returns the elevation layer colour for a cell.
func ElevationColour(k Kind, elevation int) color.RGBA {
	if k == SaltWater {
		return k.Colour()
	}
	if elevation < 1 || elevation > MaxElevation {
		return outOfBandElevation
	}
	return elevationPalette[elevation]
}

// MoistureColour returns the moisture layer colour for a cell.
func MoistureColour(k Kind, moisture int) color.RGBA {
	if k == SaltWater {
		return seaMoisture
	}
	if moisture < 1 || moisture > MaxMoisture {
		return outOfBandMoisture
	}
	return moisturePalette[moisture]
}
