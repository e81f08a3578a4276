// Package patterns supplies named starting configurations for a life.Grid.
//
// Every builder returns a freshly allocated rectangular [][]bool indexed
// [y][x], so callers may mutate the result freely.
package patterns

import "math/rand/v2"

// DefaultProbability is the chance a cell starts alive in Random.
const DefaultProbability = 0.3

// fromPoints builds a w x h pattern with the given (x, y) cells alive.
func fromPoints(w, h int, points [][2]int) [][]bool {
	p := empty(w, h)
	for _, pt := range points {
		p[pt[1]][pt[0]] = true
	}
	return p
}

func empty(w, h int) [][]bool {
	p := make([][]bool, h)
	for y := range p {
		p[y] = make([]bool, w)
	}
	return p
}

// Glider moves one cell diagonally (down and right) every four generations.
func Glider() [][]bool {
	return [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
}

// Blinker is a period-2 oscillator.
func Blinker() [][]bool {
	return [][]bool{
		{false, false, false},
		{true, true, true},
		{false, false, false},
	}
}

// Block is the 2x2 still life.
func Block() [][]bool {
	return [][]bool{
		{true, true},
		{true, true},
	}
}

// Beacon is a period-2 oscillator made of two diagonal blocks.
func Beacon() [][]bool {
	return [][]bool{
		{true, true, false, false},
		{true, true, false, false},
		{false, false, true, true},
		{false, false, true, true},
	}
}

// Pulsar is the 17x17 period-3 oscillator, including a one-cell border.
func Pulsar() [][]bool {
	var points [][2]int
	for _, a := range []int{2, 7, 9, 14} {
		for _, b := range []int{4, 5, 6, 10, 11, 12} {
			points = append(points, [2]int{a, b}, [2]int{b, a})
		}
	}
	return fromPoints(17, 17, points)
}

// GosperGliderGun is 36 cells wide and 9 tall and emits a glider every 30
// generations.
func GosperGliderGun() [][]bool {
	return fromPoints(36, 9, [][2]int{
		// left block
		{0, 4}, {1, 4}, {0, 5}, {1, 5},
		// left ship
		{10, 4}, {10, 5}, {10, 6},
		{11, 3}, {11, 7},
		{12, 2}, {12, 8},
		{13, 2}, {13, 8},
		{14, 5},
		{15, 3}, {15, 7},
		{16, 4}, {16, 5}, {16, 6},
		{17, 5},
		// right ship
		{20, 2}, {20, 3}, {20, 4},
		{21, 2}, {21, 3}, {21, 4},
		{22, 1}, {22, 5},
		{24, 0}, {24, 1}, {24, 5}, {24, 6},
		// right block
		{34, 2}, {34, 3},
		{35, 2}, {35, 3},
	})
}

// Random fills a width x height pattern where each cell is independently
// alive with the given probability. A nil rng uses the global source.
func Random(width, height int, probability float64, rng *rand.Rand) [][]bool {
	if width <= 0 || height <= 0 {
		return nil
	}
	next := rand.Float64
	if rng != nil {
		next = rng.Float64
	}
	p := empty(width, height)
	for y := range p {
		for x := range p[y] {
			p[y][x] = next() < probability
		}
	}
	return p
}
