//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"mapgen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColour     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColour     = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColour     = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	infoColour      = color.RGBA{R: 190, G: 190, B: 200, A: 255}

	buttonFace         = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonGlyph        = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonFaceDisabled = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonGlyphMuted   = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD renders the parameter panel to the right of the map view.
type HUD struct {
	source any
	setter core.IntParameterSetter
	title  string
	info   []string
	rows   []controlRow

	width   int
	offsetX int
	panel   *ebiten.Image
	pixel   *ebiten.Image
}

// controlRow is one adjustable parameter with its - and + buttons.
type controlRow struct {
	control core.ParameterControl
	value   int
	known   bool

	top     int
	buttons [2]image.Rectangle
}

var buttonSteps = [2]struct {
	label     string
	direction int
}{{"-", -1}, {"+", 1}}

// NewHUD constructs a HUD for source, which may provide parameters, controls
// and an integer setter.
func NewHUD(source any, title string, width int) *HUD {
	if title == "" {
		title = "Controls"
	}
	h := &HUD{source: source, title: title, width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if setter, ok := source.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	if provider, ok := source.(core.ParameterControlsProvider); ok {
		for i, ctrl := range provider.ParameterControls() {
			h.rows = append(h.rows, h.newRow(i, ctrl))
		}
	}
	return h
}

func (h *HUD) newRow(i int, ctrl core.ParameterControl) controlRow {
	top := controlsTop + i*lineHeight
	y := top + (lineHeight-buttonSize)/2
	plus := image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
	minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
	return controlRow{control: ctrl, top: top, buttons: [2]image.Rectangle{minus, plus}}
}

// SetInfo replaces the status lines shown below the controls.
func (h *HUD) SetInfo(lines []string) {
	if h == nil {
		return
	}
	h.info = append(h.info[:0], lines...)
}

// Update reads current values from the source and applies button clicks.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	provider, ok := h.source.(core.ParameterProvider)
	if !ok {
		return
	}
	snapshot := provider.Parameters()
	for i := range h.rows {
		h.rows[i].refresh(snapshot)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		h.click(image.Pt(mx-h.offsetX, my))
	}
}

func (r *controlRow) refresh(snapshot core.ParameterSnapshot) {
	r.known = false
	if r.control.Type != core.ParamTypeInt {
		return
	}
	param, ok := snapshot.Lookup(r.control.Key)
	if !ok {
		return
	}
	v, err := strconv.Atoi(param.Value)
	if err != nil {
		return
	}
	r.value, r.known = v, true
}

func (h *HUD) click(p image.Point) {
	if h.setter == nil || p.X < 0 {
		return
	}
	for i := range h.rows {
		row := &h.rows[i]
		if !row.known {
			continue
		}
		for b, step := range buttonSteps {
			if !p.In(row.buttons[b]) {
				continue
			}
			target, ok := adjustedValue(row.control, row.value, step.direction)
			if ok && h.setter.SetIntParameter(row.control.Key, target) {
				row.value = target
			}
			return
		}
	}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColour)
	if len(h.rows) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, panelPadding+headerBaseline+infoSpacing, mutedColour)
	}
	for i := range h.rows {
		h.drawRow(&h.rows[i])
	}
	y := controlsTop + len(h.rows)*lineHeight + infoSpacing/2
	for _, line := range h.info {
		text.Draw(h.panel, line, face, panelPadding, y, infoColour)
		y += infoLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRow(row *controlRow) {
	face := basicfont.Face7x13
	baseline := row.top + labelBaseline
	text.Draw(h.panel, row.control.Label, face, panelPadding, baseline, labelColour)

	value, colour := "--", mutedColour
	if row.known {
		value, colour = strconv.Itoa(row.value), labelColour
	}
	width := text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, row.buttons[0].Min.X-buttonGap-width, baseline, colour)

	for b, step := range buttonSteps {
		_, movable := adjustedValue(row.control, row.value, step.direction)
		h.drawButton(row.buttons[b], step.label, row.known && h.setter != nil && movable)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	fill, glyph := buttonFace, buttonGlyph
	if !enabled {
		fill, glyph = buttonFaceDisabled, buttonGlyphMuted
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(fill)
	h.panel.DrawImage(h.pixel, op)

	bounds := text.BoundString(basicfont.Face7x13, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()+bounds.Dy())/2
	text.Draw(h.panel, label, basicfont.Face7x13, x, y, glyph)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	infoLineHeight = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
