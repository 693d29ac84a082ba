//go:build ebiten

package ui

import (
	"image/color"

	"mapgen/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the hover cursor and optional masks on top of the map.
type Overlay struct {
	scale        int
	showKind     bool
	showDistance bool

	hoverX, hoverY int
	hovering       bool

	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image
}

// NewOverlay constructs an overlay for a map drawn at scale.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the cursor over m and toggles masks: H highlights every
// cell of the hovered kind, D shades land by distance from salt water.
func (o *Overlay) Update(m *terrain.Map) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showKind = !o.showKind
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showDistance = !o.showDistance
	}
	o.hovering = false
	if m == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	o.hoverX, o.hoverY, o.hovering = CellAt(mx, my, o.scale, m.Size())
}

// Hovered returns the cell under the cursor.
func (o *Overlay) Hovered() (x, y int, ok bool) {
	return o.hoverX, o.hoverY, o.hovering
}

// Draw renders the enabled masks and the hover box onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, m *terrain.Map) {
	if m == nil {
		return
	}
	if o.showDistance {
		o.drawMask(screen, m.Size(), SaltDistanceMask(m), color.RGBA{R: 255, G: 220, B: 120})
	}
	if o.showKind && o.hovering {
		if c, ok := m.At(o.hoverX, o.hoverY); ok {
			o.drawMask(screen, m.Size(), KindMask(m, c.Kind), color.RGBA{R: 255, G: 60, B: 200})
		}
	}
	if o.hovering {
		o.drawBox(screen, o.hoverX*o.scale, o.hoverY*o.scale, o.scale, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, size int, mask []float32, tint color.RGBA) {
	total := size * size
	if total == 0 || len(mask) != total {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size {
		o.maskImg = ebiten.NewImage(size, size)
		o.maskBuf = make([]byte, 4*total)
	}
	fillMaskRGBA(o.maskBuf, mask, tint)
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawBox(screen *ebiten.Image, x, y, side int, col color.RGBA) {
	thickness := 1
	if side >= 6 {
		thickness = 2
	}
	o.drawRect(screen, x, y, side, thickness, col)
	o.drawRect(screen, x, y+side-thickness, side, thickness, col)
	o.drawRect(screen, x, y, thickness, side, col)
	o.drawRect(screen, x+side-thickness, y, thickness, side, col)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h int, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
