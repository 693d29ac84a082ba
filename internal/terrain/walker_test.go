package terrain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mapgen/internal/core"
)

type recordingEffect struct {
	positions []core.Position
	remaining []int
	last      []core.Position
	stopAfter int
}

func (r *recordingEffect) OnStep(_ *Grid, pos core.Position, stepsRemaining, _ int) bool {
	r.positions = append(r.positions, pos)
	r.remaining = append(r.remaining, stepsRemaining)
	return r.stopAfter == 0 || len(r.positions) < r.stopAfter
}

func (r *recordingEffect) OnLastStep(_ *Grid, pos core.Position) {
	r.last = append(r.last, pos)
}

func TestWalkerNeverReverses(t *testing.T) {
	w := NewWalker(core.NewRNG("reverse"), 0, core.Position{})
	for _, d := range core.StandardDirections() {
		for i := 0; i < 500; i++ {
			require.NotEqual(t, d.Opposite(), w.turn(d))
		}
	}
}

func TestWalkerRunsFullBudget(t *testing.T) {
	g := NewGrid(10)
	eff := &recordingEffect{}
	w := NewWalker(core.NewRNG("budget"), 25, core.Position{X: 5, Y: 5})

	require.Equal(t, 25, w.Run(g, eff))
	require.Len(t, eff.positions, 25)
	require.Equal(t, 25, eff.remaining[0])
	require.Equal(t, 1, eff.remaining[24])
	require.Len(t, eff.last, 1)
	require.Equal(t, eff.positions[24], eff.last[0])
}

func TestWalkerStopsEarly(t *testing.T) {
	g := NewGrid(10)
	eff := &recordingEffect{stopAfter: 3}
	w := NewWalker(core.NewRNG("early"), 25, core.Position{X: 5, Y: 5})

	require.Equal(t, 3, w.Run(g, eff))
	require.Empty(t, eff.last, "finish hook only fires when the budget is spent")
}

func TestWalkerStaysOffRim(t *testing.T) {
	g := NewGrid(10)
	eff := &recordingEffect{}
	rng := core.NewRNG("bounce")
	NewWalker(rng, 2000, StartPosition(rng, 10)).Run(g, eff)

	for _, p := range eff.positions {
		require.True(t, g.Valid(p), "position %v escaped the grid", p)
		require.False(t, g.OnRim(p), "position %v reached the rim", p)
	}
}

func TestWalkerMovesOneCell(t *testing.T) {
	g := NewGrid(20)
	eff := &recordingEffect{}
	prev := core.Position{X: 10, Y: 10}
	NewWalker(core.NewRNG("unit"), 200, prev).Run(g, eff)

	for _, p := range eff.positions {
		dx, dy := abs(p.X-prev.X), abs(p.Y-prev.Y)
		require.True(t, dx+dy == 1, "moved from %v to %v", prev, p)
		prev = p
	}
}

func TestWalkerDeterministic(t *testing.T) {
	run := func() []core.Position {
		eff := &recordingEffect{}
		rng := core.NewRNG("same")
		NewWalker(rng, 100, StartPosition(rng, 30)).Run(NewGrid(30), eff)
		return eff.positions
	}
	require.Equal(t, run(), run())
}

func TestStartPosition(t *testing.T) {
	rng := core.NewRNG("start")
	for i := 0; i < 200; i++ {
		p := StartPosition(rng, 40)
		require.GreaterOrEqual(t, p.X, 10)
		require.LessOrEqual(t, p.X, 30)
		require.GreaterOrEqual(t, p.Y, 10)
		require.LessOrEqual(t, p.Y, 30)
	}
	require.Equal(t, core.Position{X: 1, Y: 1}, StartPosition(rng, 3))
	require.Equal(t, core.Position{}, StartPosition(rng, 1))
}
