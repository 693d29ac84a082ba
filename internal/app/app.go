//go:build ebiten

package app

import (
	"context"
	"image"
	"log"

	"mapgen/internal/core"
	"mapgen/internal/render"
	"mapgen/internal/terrain"
	"mapgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

type result struct {
	cfg    terrain.Config
	frames []Frame
	err    error
}

// Game adapts the terrain generator to the ebiten.Game interface. Each
// generation runs in the background and its stage snapshots are played back
// one per tick.
type Game struct {
	cfg    terrain.Config
	logger *log.Logger

	playback Playback
	ticker   *core.Ticker
	layer    render.Layer
	dirty    bool

	canvas *image.RGBA
	img    *ebiten.Image

	hud     *ui.HUD
	overlay *ui.Overlay

	cancel  context.CancelFunc
	results chan result
}

// New constructs a Game and starts generating the first map.
func New(cfg terrain.Config, tps int, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		cfg:     cfg,
		logger:  logger,
		ticker:  core.NewTicker(tps),
		overlay: ui.NewOverlay(cfg.DrawScale),
		results: make(chan result, 1),
	}
	g.hud = ui.NewHUD(g, "Map Controls", hudWidth)
	g.Regenerate(cfg.Seed)
	return g
}

// Parameters exposes the current configuration to the HUD.
func (g *Game) Parameters() core.ParameterSnapshot { return terrain.Parameters(g.cfg) }

// ParameterControls lists the HUD knobs.
func (g *Game) ParameterControls() []core.ParameterControl { return terrain.ParameterControls() }

// SetIntParameter applies a HUD adjustment and regenerates.
func (g *Game) SetIntParameter(key string, value int) bool {
	if !terrain.SetIntParameter(&g.cfg, key, value) {
		return false
	}
	g.Regenerate(g.cfg.Seed)
	return true
}

// Regenerate cancels any run in flight and starts a new one for seed.
func (g *Game) Regenerate(seed string) {
	if g.cancel != nil {
		g.cancel()
	}
	g.cfg.Seed = seed
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	cfg := g.cfg
	go func() {
		frames, err := Capture(ctx, cfg, g.logger)
		if ctx.Err() != nil {
			return
		}
		select {
		case <-g.results:
		default:
		}
		g.results <- result{cfg: cfg, frames: frames, err: err}
	}()
}

// Update handles input and advances stage playback.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.cancel != nil {
			g.cancel()
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.playback.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.playback.Next() {
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Regenerate(g.cfg.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Regenerate(core.RandomSeed(32))
	}
	for key, layer := range map[ebiten.Key]render.Layer{
		ebiten.KeyDigit1: render.LayerBiome,
		ebiten.KeyDigit2: render.LayerMoisture,
		ebiten.KeyDigit3: render.LayerElevation,
	} {
		if inpututil.IsKeyJustPressed(key) && g.layer != layer {
			g.layer = layer
			g.dirty = true
		}
	}

	select {
	case res := <-g.results:
		g.receive(res)
	default:
	}

	if g.playback.Tick(g.ticker.Due()) {
		g.dirty = true
	}

	frame, _ := g.playback.Current()
	g.overlay.Update(frame.Map)
	info := StatusLines(g.cfg, &g.playback, g.layer)
	if x, y, ok := g.overlay.Hovered(); ok && frame.Map != nil {
		info = append(info, "")
		info = append(info, ui.InspectLines(frame.Map, x, y)...)
	}
	g.hud.SetInfo(info)
	g.hud.Update(g.mapWidth())
	return nil
}

func (g *Game) receive(res result) {
	if res.err != nil {
		g.logger.Printf("generate %q: %v", res.cfg.Seed, res.err)
		return
	}
	g.playback.Load(res.frames)
	g.ticker.Reset()
	size := res.cfg.MapSize
	if g.canvas == nil || g.canvas.Bounds().Dx() != size {
		g.canvas = image.NewRGBA(image.Rect(0, 0, size, size))
		g.img = ebiten.NewImage(size, size)
		w, h := g.Layout(0, 0)
		ebiten.SetWindowSize(w, h)
	}
	g.dirty = true
}

// Draw renders the current frame, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	frame, ok := g.playback.Current()
	if ok && g.img != nil {
		if g.dirty {
			render.FillLayer(g.canvas, frame.Map, g.layer)
			g.img.WritePixels(g.canvas.Pix)
			g.dirty = false
		}
		op := &ebiten.DrawImageOptions{}
		scale := float64(g.cfg.DrawScale)
		op.GeoM.Scale(scale, scale)
		screen.DrawImage(g.img, op)
		g.overlay.Draw(screen, frame.Map)
	}
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.mapWidth(), h)
}

// Layout returns the logical screen size: the map plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.mapWidth()
	return side + hudWidth, max(side, 480)
}

func (g *Game) mapWidth() int {
	size := g.cfg.MapSize
	if frame, ok := g.playback.Current(); ok {
		size = frame.Map.Size()
	}
	return size * g.cfg.DrawScale
}
