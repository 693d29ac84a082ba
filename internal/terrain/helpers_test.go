package terrain

import "mapgen/internal/core"

// gridFromRows builds a grid from rows of symbols: '.' void, '#' raw land,
// '~' salt water, '=' fresh water.
func gridFromRows(rows ...string) *Grid {
	g := NewGrid(len(rows))
	for y, row := range rows {
		for x, ch := range row {
			k := Void
			switch ch {
			case '#':
				k = Placeholder
			case '~':
				k = SaltWater
			case '=':
				k = FreshWater
			}
			g.Ptr(core.Position{X: x, Y: y}).Kind = k
		}
	}
	return g
}

func kindAtXY(g *Grid, x, y int) Kind {
	k, _ := kindAt(g, core.Position{X: x, Y: y})
	return k
}
