package render

import (
	"image"
	"image/color"

	"mapgen/internal/terrain"
)

// Layer selects which per-cell colour a renderer paints.
type Layer int

const (
	LayerBiome Layer = iota
	LayerMoisture
	LayerElevation
)

var layerNames = [...]string{
	LayerBiome:     "biome",
	LayerMoisture:  "moisture",
	LayerElevation: "elevation",
}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return "unknown"
	}
	return layerNames[l]
}

// Colour picks the colour of c on layer l.
func (l Layer) Colour(c terrain.CellView) color.RGBA {
	switch l {
	case LayerMoisture:
		return c.MoistureColour
	case LayerElevation:
		return c.ElevationColour
	default:
		return c.Colour
	}
}

// fillLayerRGBA writes one RGBA pixel per cell of m into buf, row-major.
func fillLayerRGBA(buf []byte, m *terrain.Map, l Layer) {
	size := m.Size()
	m.Each(func(x, y int, c terrain.CellView) {
		col := l.Colour(c)
		base := (y*size + x) * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	})
}

// LayerImage returns m painted on layer l at one pixel per cell.
func LayerImage(m *terrain.Map, l Layer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Size(), m.Size()))
	fillLayerRGBA(img.Pix, m, l)
	return img
}

// FillLayer repaints img, which must be Size x Size, with layer l of m.
func FillLayer(img *image.RGBA, m *terrain.Map, l Layer) {
	if img.Bounds().Dx() != m.Size() || img.Bounds().Dy() != m.Size() {
		return
	}
	fillLayerRGBA(img.Pix, m, l)
}
