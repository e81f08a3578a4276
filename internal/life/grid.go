package life

import (
	"hash/fnv"
	"iter"
	"strings"
)

// DefaultMargin is the dead border FromPattern leaves on each side when no
// explicit size is requested.
const DefaultMargin = 5

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Grid is a fixed-size toroidal board. Cells are stored row-major; next is
// the back buffer Advance writes into before the two are swapped.
type Grid struct {
	width, height int
	generation    int
	cells         []Cell
	next          []Cell
}

// New returns a grid of dead cells at generation 0.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	n := width * height
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, n),
		next:   make([]Cell, n),
	}, nil
}

func (g *Grid) Width() int      { return g.width }
func (g *Grid) Height() int     { return g.height }
func (g *Grid) Generation() int { return g.generation }

// index wraps (x, y) onto the torus and returns the slice offset.
func (g *Grid) index(x, y int) int {
	return wrap(y, g.height)*g.width + wrap(x, g.width)
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Cell returns a copy of the cell at (x, y). Coordinates wrap.
func (g *Grid) Cell(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// IsAlive reports whether the cell at (x, y) is alive. Coordinates wrap.
func (g *Grid) IsAlive(x, y int) bool {
	return g.cells[g.index(x, y)].alive
}

// SetCell overwrites the cell at (x, y). Coordinates wrap.
func (g *Grid) SetCell(x, y int, alive bool) {
	g.cells[g.index(x, y)].SetAlive(alive)
}

// ToggleCell flips the cell at (x, y) and returns its new state.
func (g *Grid) ToggleCell(x, y int) bool {
	return g.cells[g.index(x, y)].Toggle()
}

// CountLiveNeighbors counts the live cells among the eight wrapped
// neighbours of (x, y). The result is always in [0, 8].
func (g *Grid) CountLiveNeighbors(x, y int) int {
	return g.countIn(g.cells, wrap(x, g.width), wrap(y, g.height))
}

// countIn expects x and y already wrapped.
func (g *Grid) countIn(cells []Cell, x, y int) int {
	w, h := g.width, g.height
	count := 0
	for dy := -1; dy <= 1; dy++ {
		row := wrap(y+dy, h) * w
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if cells[row+wrap(x+dx, w)].alive {
				count++
			}
		}
	}
	return count
}

// Advance moves every cell to the next generation. All next states are
// computed from the current buffer before any of them is published.
func (g *Grid) Advance() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := y*g.width + x
			g.next[i].alive = g.cells[i].NextState(g.countIn(g.cells, x, y))
		}
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	clear(g.cells)
	g.generation = 0
}

// LiveCells yields the coordinates of live cells in row-major order. Each
// range over the returned sequence rescans the grid as it is at that time.
func (g *Grid) LiveCells() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < g.height; y++ {
			row := g.cells[y*g.width : (y+1)*g.width]
			for x, c := range row {
				if c.alive && !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.alive {
			n++
		}
	}
	return n
}

// Fingerprint hashes the current cell states. Equal configurations on
// grids of the same size hash equally; the generation is not included.
func (g *Grid) Fingerprint() uint64 {
	h := fnv.New64a()
	buf := make([]byte, (len(g.cells)+7)/8)
	for i, c := range g.cells {
		if c.alive {
			buf[i/8] |= 1 << (i % 8)
		}
	}
	h.Write(buf)
	return h.Sum64()
}

func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range g.cells[y*g.width : (y+1)*g.width] {
			b.WriteString(c.String())
		}
	}
	return b.String()
}
