package ui

import (
	"fmt"
	"image/color"
	"math"

	"mapgen/internal/terrain"
)

// CellAt converts a screen position into map coordinates for a map of the
// given size drawn at scale.
func CellAt(px, py, scale, size int) (x, y int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= size || y >= size {
		return 0, 0, false
	}
	return x, y, true
}

// KindMask marks every cell of kind k with full intensity.
func KindMask(m *terrain.Map, k terrain.Kind) []float32 {
	size := m.Size()
	mask := make([]float32, size*size)
	m.Each(func(x, y int, c terrain.CellView) {
		if c.Kind == k {
			mask[y*size+x] = 1
		}
	})
	return mask
}

// SaltDistanceMask scales each land cell's salt water distance into 0..1,
// brightest nearest the coast.
func SaltDistanceMask(m *terrain.Map) []float32 {
	size := m.Size()
	mask := make([]float32, size*size)
	var farthest uint32
	m.Each(func(_, _ int, c terrain.CellView) {
		if c.DistanceFromSaltWater > farthest {
			farthest = c.DistanceFromSaltWater
		}
	})
	if farthest == 0 {
		return mask
	}
	m.Each(func(x, y int, c terrain.CellView) {
		if c.Kind.Water() || c.Kind == terrain.Void {
			return
		}
		mask[y*size+x] = 1 - float32(c.DistanceFromSaltWater)/float32(farthest)
	})
	return mask
}

// fillMaskRGBA tints buf with mask intensities. Zero cells stay transparent.
func fillMaskRGBA(buf []byte, mask []float32, tint color.RGBA) {
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	for i := range mask {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		intensity := clamp01(float64(mask[i]))
		if intensity == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		alpha := uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
		glow := glowBase + glowRange*math.Sqrt(intensity)
		buf[base+0] = scaleColorComponent(tint.R, glow)
		buf[base+1] = scaleColorComponent(tint.G, glow)
		buf[base+2] = scaleColorComponent(tint.B, glow)
		buf[base+3] = alpha
	}
}

// InspectLines describes the cell at (x, y) for the HUD.
func InspectLines(m *terrain.Map, x, y int) []string {
	c, ok := m.At(x, y)
	if !ok {
		return nil
	}
	return []string{
		fmt.Sprintf("Cell %d,%d", x, y),
		c.Name,
		fmt.Sprintf("Elevation %d  Moisture %d", c.Elevation, c.Moisture),
		fmt.Sprintf("Salt %d  Fresh %d", c.DistanceFromSaltWater, c.DistanceFromFreshWater),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
