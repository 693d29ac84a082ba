package render

import (
	"image"

	"github.com/aquilax/go-perlin"

	"mapgen/internal/core"
	"mapgen/internal/terrain"
)

const reliefFrequency = 0.08

// newNoise seeds a perlin generator from the map seed so shading is stable
// for a given map.
func newNoise(seed string) *perlin.Perlin {
	a, _ := core.HashSeed(seed)
	return perlin.NewPerlin(2, 2, 3, int64(a))
}

// shade darkens and lightens land pixels of a one-pixel-per-cell image.
// Water keeps its flat colour.
func shade(img *image.RGBA, m *terrain.Map, strength float64) {
	if strength > 1 {
		strength = 1
	}
	noise := newNoise(m.Seed())
	size := m.Size()
	pix := img.Pix
	m.Each(func(x, y int, c terrain.CellView) {
		if c.Kind.Water() {
			return
		}
		n := noise.Noise2D(float64(x)*reliefFrequency, float64(y)*reliefFrequency)
		f := 1 + strength*n*0.5
		base := (y*size + x) * 4
		for i := 0; i < 3; i++ {
			pix[base+i] = scaleChannel(pix[base+i], f)
		}
	})
}

func scaleChannel(v uint8, f float64) uint8 {
	s := float64(v) * f
	switch {
	case s < 0:
		return 0
	case s > 255:
		return 255
	}
	return uint8(s)
}
