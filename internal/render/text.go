package render

import (
	"bufio"
	"io"
	"strconv"

	"mapgen/internal/terrain"
)

// WriteText dumps the elevation, moisture and symbol grids of m, one line per
// row, framed by the seed.
func WriteText(w io.Writer, m *terrain.Map) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("Seed: " + m.Seed())

	sections := []struct {
		title string
		cell  func(terrain.CellView) string
	}{
		{"Elevation", func(c terrain.CellView) string { return strconv.Itoa(c.Elevation) }},
		{"moisture", func(c terrain.CellView) string { return strconv.Itoa(c.Moisture) }},
		{"symbols", func(c terrain.CellView) string { return c.Symbol }},
	}
	size := m.Size()
	for _, s := range sections {
		bw.WriteString("\n\n" + s.title + ":\n")
		m.Each(func(x, _ int, c terrain.CellView) {
			bw.WriteString(s.cell(c))
			if x == size-1 {
				bw.WriteByte('\n')
			}
		})
	}

	bw.WriteString("\n\nSeed: " + m.Seed())
	return bw.Flush()
}
