package life_test

import (
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/conway/internal/life"
)

var (
	block = [][]bool{
		{true, true},
		{true, true},
	}
	blinker = [][]bool{
		{false, false, false},
		{true, true, true},
		{false, false, false},
	}
	glider = [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
)

func live(g *life.Grid) []life.Point {
	return slices.Collect(g.LiveCells())
}

func shift(points []life.Point, dx, dy, w, h int) []life.Point {
	out := make([]life.Point, len(points))
	for i, p := range points {
		out[i] = life.Point{X: (p.X + dx) % w, Y: (p.Y + dy) % h}
	}
	slices.SortFunc(out, func(a, b life.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

var _ = Describe("Grid", func() {
	Describe("still lifes", func() {
		It("keeps a block unchanged for many generations", func() {
			g, err := life.FromPattern(block)
			Expect(err).NotTo(HaveOccurred())
			start := live(g)
			Expect(start).To(HaveLen(4))

			for range 25 {
				g.Advance()
				Expect(live(g)).To(Equal(start))
			}
			Expect(g.Generation()).To(Equal(25))
		})
	})

	Describe("oscillators", func() {
		It("returns a blinker to its start after two generations", func() {
			g, err := life.FromPattern(blinker)
			Expect(err).NotTo(HaveOccurred())
			start := live(g)

			g.Advance()
			Expect(live(g)).NotTo(Equal(start))
			g.Advance()
			Expect(live(g)).To(Equal(start))
		})
	})

	Describe("spaceships", func() {
		It("translates a glider by (+1,+1) every four generations", func() {
			g, err := life.FromPattern(glider, life.WithSize(16, 16))
			Expect(err).NotTo(HaveOccurred())
			start := live(g)

			for period := 1; period <= 3; period++ {
				for range 4 {
					g.Advance()
				}
				Expect(live(g)).To(Equal(shift(start, period, period, 16, 16)))
			}
		})

		It("reappears on the opposite side after crossing an edge", func() {
			g, err := life.FromPattern(glider, life.WithSize(10, 10))
			Expect(err).NotTo(HaveOccurred())
			start := live(g)

			for range 4 * 6 {
				g.Advance()
			}
			Expect(live(g)).To(Equal(shift(start, 6, 6, 10, 10)))
		})
	})

	Describe("coordinates", func() {
		var g *life.Grid

		BeforeEach(func() {
			var err error
			g, err = life.New(6, 4)
			Expect(err).NotTo(HaveOccurred())
			g.SetCell(0, 0, true)
			g.SetCell(5, 0, true)
		})

		It("wraps x at width", func() {
			Expect(g.Cell(6, 0)).To(Equal(g.Cell(0, 0)))
		})

		It("wraps negative x to the last column", func() {
			Expect(g.Cell(-1, 0)).To(Equal(g.Cell(5, 0)))
			Expect(g.IsAlive(-1, 0)).To(BeTrue())
		})

		It("never counts the cell itself", func() {
			Expect(g.CountLiveNeighbors(0, 0)).To(Equal(1))
			Expect(g.CountLiveNeighbors(5, 0)).To(Equal(1))
		})
	})

	Describe("generation counter", func() {
		It("counts advances and resets on clear", func() {
			g, err := life.New(8, 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Generation()).To(BeZero())

			for range 7 {
				g.Advance()
			}
			Expect(g.Generation()).To(Equal(7))

			g.Clear()
			Expect(g.Generation()).To(BeZero())
			g.Clear()
			Expect(g.Generation()).To(BeZero())
			Expect(live(g)).To(BeEmpty())
		})
	})

	Describe("construction", func() {
		DescribeTable("rejects invalid input",
			func(pattern [][]bool, want error) {
				g, err := life.FromPattern(pattern)
				Expect(err).To(MatchError(want))
				Expect(g).To(BeNil())
			},
			Entry("no rows", [][]bool{}, life.ErrEmptyPattern),
			Entry("empty row", [][]bool{{}}, life.ErrEmptyPattern),
			Entry("jagged rows", [][]bool{{true}, {true, true}}, life.ErrJaggedPattern),
		)
	})
})
