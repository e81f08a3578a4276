package life

// Cell is a single grid position. The zero value is a dead cell.
type Cell struct {
	alive bool
}

func (c Cell) IsAlive() bool { return c.alive }

func (c *Cell) SetAlive(alive bool) { c.alive = alive }

// Toggle flips the cell and returns its new state.
func (c *Cell) Toggle() bool {
	c.alive = !c.alive
	return c.alive
}

// NextState applies B3/S23 to the cell's current state.
func (c Cell) NextState(liveNeighbors int) bool {
	if c.alive {
		return liveNeighbors == 2 || liveNeighbors == 3
	}
	return liveNeighbors == 3
}

func (c Cell) String() string {
	if c.alive {
		return "■"
	}
	return "□"
}
