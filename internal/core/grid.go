package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Grid stores a square 2D buffer of cells in row-major order.
type Grid[T any] struct {
	size int
	data []T
}

// NewGrid allocates a size*size grid with every cell set to fill.
func NewGrid[T any](size int, fill T) *Grid[T] {
	if size <= 0 {
		size = 1
	}
	data := make([]T, size*size)
	for i := range data {
		data[i] = fill
	}
	return &Grid[T]{size: size, data: data}
}

// Len returns the side length.
func (g *Grid[T]) Len() int { return g.size }

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.size, H: g.size} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.size + x }

// Coordinate converts a row-major index back to (x, y).
func (g *Grid[T]) Coordinate(idx int) (x, y int) {
	return idx % g.size, idx / g.size
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Valid reports whether p lies within the grid.
func (g *Grid[T]) Valid(p Position) bool { return g.InBounds(p.X, p.Y) }

// OnRim reports whether p lies on the outermost row or column.
func (g *Grid[T]) OnRim(p Position) bool {
	last := g.size - 1
	return p.X == 0 || p.Y == 0 || p.X == last || p.Y == last
}

// At returns the cell at p. Out-of-range positions yield the zero value and false.
func (g *Grid[T]) At(p Position) (T, bool) {
	if !g.Valid(p) {
		var zero T
		return zero, false
	}
	return g.data[g.Index(p.X, p.Y)], true
}

// Ptr returns a pointer to the cell at p, or nil when p is out of range.
func (g *Grid[T]) Ptr(p Position) *T {
	if !g.Valid(p) {
		return nil
	}
	return &g.data[g.Index(p.X, p.Y)]
}

// Set writes v at p and reports whether p was in range.
func (g *Grid[T]) Set(p Position, v T) bool {
	if !g.Valid(p) {
		return false
	}
	g.data[g.Index(p.X, p.Y)] = v
	return true
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{size: g.size, data: data}
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}
