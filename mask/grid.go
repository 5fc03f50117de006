package mask

// NewGrid allocates an all-background grid of the given shape.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H).
func NewGrid(shape Shape) (*Grid, error) {
	if shape.Width <= 0 || shape.Height <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		Width:  shape.Width,
		Height: shape.Height,
		Cells:  make([]int, shape.Width*shape.Height),
	}, nil
}

// From2D constructs a Grid from a non-empty, rectangular [row][col] slice.
// It deep-copies the input.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]int, 0, w*h)
	for _, row := range values {
		cells = append(cells, row...)
	}
	return &Grid{Width: w, Height: h, Cells: cells}, nil
}

// Shape returns the grid dimensions.
func (g *Grid) Shape() Shape {
	return Shape{Width: g.Width, Height: g.Height}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the label at column x, row y. It panics if (x,y) is out of bounds.
func (g *Grid) At(x, y int) int {
	return g.Cells[g.index(x, y)]
}

// Set writes v at column x, row y. It panics if (x,y) is out of bounds.
func (g *Grid) Set(x, y, v int) {
	g.Cells[g.index(x, y)] = v
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Binary returns a new grid holding 1 where g is positive and 0 elsewhere.
// Per-atom identity is discarded; this is the training target form.
// Complexity: O(W×H).
func (g *Grid) Binary() *Grid {
	out := &Grid{Width: g.Width, Height: g.Height, Cells: make([]int, len(g.Cells))}
	for i, v := range g.Cells {
		if v > 0 {
			out.Cells[i] = 1
		}
	}
	return out
}

// Foreground counts cells with a non-zero label.
func (g *Grid) Foreground() int {
	n := 0
	for _, v := range g.Cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// To2D returns a [row][col] copy of the grid, the inverse of From2D.
func (g *Grid) To2D() [][]int {
	out := make([][]int, g.Height)
	for y := range out {
		out[y] = make([]int, g.Width)
		copy(out[y], g.Cells[y*g.Width:(y+1)*g.Width])
	}
	return out
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// neighborOffsets returns the (dx,dy) steps for the given connectivity.
func neighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}
