package app

import (
	"context"
	"fmt"
	"log"

	"mapgen/internal/render"
	"mapgen/internal/terrain"
)

// Frame is the map as it stood when a generation stage finished.
type Frame struct {
	Stage terrain.Stage
	Map   *terrain.Map
}

// Capture runs a full generation and returns one frame per stage, in order.
func Capture(ctx context.Context, cfg terrain.Config, logger *log.Logger) ([]Frame, error) {
	var frames []Frame
	gen, err := terrain.New(cfg,
		terrain.WithLogger(logger),
		terrain.WithStageObserver(func(stage terrain.Stage, m *terrain.Map) {
			frames = append(frames, Frame{Stage: stage, Map: m})
		}),
	)
	if err != nil {
		return nil, err
	}
	if _, err := gen.Generate(ctx); err != nil {
		return nil, err
	}
	return frames, nil
}

// Playback steps through captured frames.
type Playback struct {
	frames  []Frame
	current int
	paused  bool
}

// Load replaces the frames and rewinds to the first one.
func (p *Playback) Load(frames []Frame) {
	p.frames = frames
	p.current = 0
}

// TogglePause flips the paused state.
func (p *Playback) TogglePause() { p.paused = !p.paused }

// Paused reports whether automatic advancing is suspended.
func (p *Playback) Paused() bool { return p.paused }

// Tick advances one frame when due and not paused. It reports whether the
// current frame changed.
func (p *Playback) Tick(due bool) bool {
	if p.paused || !due {
		return false
	}
	return p.Next()
}

// Next advances one frame regardless of pause. It stops on the last frame.
func (p *Playback) Next() bool {
	if p.current+1 >= len(p.frames) {
		return false
	}
	p.current++
	return true
}

// Current returns the frame on display.
func (p *Playback) Current() (Frame, bool) {
	if len(p.frames) == 0 {
		return Frame{}, false
	}
	return p.frames[p.current], true
}

// Position returns the 1-based index of the current frame and the total.
func (p *Playback) Position() (int, int) {
	if len(p.frames) == 0 {
		return 0, 0
	}
	return p.current + 1, len(p.frames)
}

// StatusLines summarises the viewer state for the HUD.
func StatusLines(cfg terrain.Config, p *Playback, layer render.Layer) []string {
	lines := []string{"Seed " + cfg.Seed}
	if frame, ok := p.Current(); ok {
		at, total := p.Position()
		lines = append(lines, fmt.Sprintf("Stage %s (%d/%d)", frame.Stage, at, total))
	} else {
		lines = append(lines, "Generating...")
	}
	state := "playing"
	if p.Paused() {
		state = "paused"
	}
	lines = append(lines, fmt.Sprintf("Layer %s, %s", layer, state))
	return lines
}
