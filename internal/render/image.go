package render

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"mapgen/internal/terrain"
)

// Options controls how a map is turned into an image.
type Options struct {
	// Scale is the pixel edge length of one cell.
	Scale int
	// Debug stacks the moisture and elevation layers under the biome layer.
	Debug bool
	// Relief shades land cells with noise, 0 disables it and 1 is strongest.
	Relief float64
}

// OptionsFor derives rendering options from a generation config.
func OptionsFor(cfg terrain.Config) Options {
	return Options{Scale: cfg.DrawScale, Debug: cfg.Debug}
}

// Panels lists the layers an image holds, top to bottom.
func (o Options) Panels() []Layer {
	if o.Debug {
		return []Layer{LayerBiome, LayerMoisture, LayerElevation}
	}
	return []Layer{LayerBiome}
}

// Image renders m as Size*Scale pixels wide and one Size*Scale panel per
// layer tall.
func Image(m *terrain.Map, opts Options) *image.RGBA {
	scale := max(opts.Scale, 1)
	side := m.Size() * scale
	panels := opts.Panels()
	out := image.NewRGBA(image.Rect(0, 0, side, side*len(panels)))

	for i, l := range panels {
		src := LayerImage(m, l)
		if l == LayerBiome && opts.Relief > 0 {
			shade(src, m, opts.Relief)
		}
		dst := image.Rect(0, i*side, side, (i+1)*side)
		if scale == 1 {
			draw.Draw(out, dst, src, image.Point{}, draw.Src)
			continue
		}
		xdraw.NearestNeighbor.Scale(out, dst, src, src.Bounds(), xdraw.Src, nil)
	}
	return out
}
