package life

import (
	"errors"
	"slices"
	"testing"
)

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := New(w, h)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	return g
}

func liveSet(g *Grid) []Point {
	return slices.Collect(g.LiveCells())
}

func TestNew_InvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -1, 5},
		{"negative height", 5, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.w, tt.h)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("expected ErrInvalidSize, got %v", err)
			}
			if g != nil {
				t.Error("expected nil grid")
			}
		})
	}
}

func TestNew_AllDead(t *testing.T) {
	g := mustGrid(t, 7, 4)
	if g.Width() != 7 || g.Height() != 4 {
		t.Errorf("size = %dx%d, want 7x4", g.Width(), g.Height())
	}
	if g.Generation() != 0 {
		t.Errorf("generation = %d, want 0", g.Generation())
	}
	if g.Population() != 0 {
		t.Errorf("population = %d, want 0", g.Population())
	}
}

func TestGrid_Wraparound(t *testing.T) {
	g := mustGrid(t, 5, 4)
	g.SetCell(0, 0, true)
	g.SetCell(4, 0, true)

	if g.IsAlive(5, 0) != g.IsAlive(0, 0) {
		t.Error("(width, 0) should address (0, 0)")
	}
	if g.IsAlive(-1, 0) != g.IsAlive(4, 0) || !g.IsAlive(-1, 0) {
		t.Error("(-1, 0) should address (width-1, 0)")
	}
	if !g.Cell(10, 8).IsAlive() {
		t.Error("(2*width, 2*height) should address (0, 0)")
	}
	if g.IsAlive(1, -4) {
		t.Error("(1, -height) should address dead (1, 0)")
	}

	g.SetCell(-6, -1, true)
	if !g.IsAlive(4, 3) {
		t.Error("SetCell(-6, -1) should set (4, 3)")
	}
	if g.ToggleCell(9, 7) {
		t.Error("ToggleCell(9, 7) should kill (4, 3)")
	}
	if g.IsAlive(4, 3) {
		t.Error("(4, 3) should be dead after toggle")
	}
}

func TestGrid_CountLiveNeighbors(t *testing.T) {
	g := mustGrid(t, 5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			g.SetCell(x, y, true)
		}
	}
	if n := g.CountLiveNeighbors(2, 2); n != 8 {
		t.Errorf("interior count = %d, want 8", n)
	}
	if n := g.CountLiveNeighbors(0, 0); n != 8 {
		t.Errorf("corner count = %d, want 8", n)
	}

	g.Clear()
	g.SetCell(0, 0, true)
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{4, 4, 1},
		{1, 1, 1},
		{4, 0, 1},
		{2, 2, 0},
	}
	for _, tt := range tests {
		if got := g.CountLiveNeighbors(tt.x, tt.y); got != tt.want {
			t.Errorf("count(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

// On fields narrower than three cells several offsets wrap to the same
// position and each is counted.
func TestGrid_CountLiveNeighborsTinyTorus(t *testing.T) {
	single := mustGrid(t, 1, 1)
	single.SetCell(0, 0, true)
	if n := single.CountLiveNeighbors(0, 0); n != 8 {
		t.Errorf("1x1 count = %d, want 8", n)
	}

	small := mustGrid(t, 2, 2)
	small.SetCell(0, 0, true)
	if n := small.CountLiveNeighbors(1, 1); n != 4 {
		t.Errorf("2x2 diagonal count = %d, want 4", n)
	}
	if n := small.CountLiveNeighbors(1, 0); n != 2 {
		t.Errorf("2x2 side count = %d, want 2", n)
	}
}

func TestGrid_GenerationCounter(t *testing.T) {
	g := mustGrid(t, 6, 6)
	for k := 1; k <= 5; k++ {
		g.Advance()
		if g.Generation() != k {
			t.Fatalf("after %d advances generation = %d", k, g.Generation())
		}
	}
	g.Clear()
	if g.Generation() != 0 {
		t.Errorf("clear should reset generation, got %d", g.Generation())
	}
}

func TestGrid_ClearIdempotent(t *testing.T) {
	g, err := FromPattern([][]bool{{true, true}, {true, false}})
	if err != nil {
		t.Fatal(err)
	}
	g.Advance()
	g.Clear()
	once := g.String()
	g.Clear()
	if g.String() != once || g.Generation() != 0 || g.Population() != 0 {
		t.Error("second clear changed state")
	}
}

// referenceAdvance computes the next generation from an explicit snapshot.
func referenceAdvance(g *Grid) map[Point]bool {
	snap, _ := New(g.Width(), g.Height())
	for p := range g.LiveCells() {
		snap.SetCell(p.X, p.Y, true)
	}
	next := make(map[Point]bool)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if snap.Cell(x, y).NextState(snap.CountLiveNeighbors(x, y)) {
				next[Point{x, y}] = true
			}
		}
	}
	return next
}

// naiveAdvance mutates in place left to right, which is wrong on purpose.
func naiveAdvance(g *Grid) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			g.SetCell(x, y, g.Cell(x, y).NextState(g.CountLiveNeighbors(x, y)))
		}
	}
}

func TestGrid_AdvanceIsSynchronous(t *testing.T) {
	pattern := [][]bool{
		{false, false, false},
		{true, true, true},
		{false, false, false},
	}
	g, err := FromPattern(pattern, WithSize(6, 6))
	if err != nil {
		t.Fatal(err)
	}
	g.SetCell(0, 0, true)
	g.SetCell(5, 5, true)

	want := referenceAdvance(g)

	naive, _ := FromPattern(pattern, WithSize(6, 6))
	naive.SetCell(0, 0, true)
	naive.SetCell(5, 5, true)
	naiveAdvance(naive)

	g.Advance()
	got := make(map[Point]bool)
	for p := range g.LiveCells() {
		got[p] = true
	}

	if len(got) != len(want) {
		t.Fatalf("got %d live cells, want %d", len(got), len(want))
	}
	for p := range want {
		if !got[p] {
			t.Errorf("expected %v alive", p)
		}
	}
	if slices.Equal(liveSet(naive), liveSet(g)) {
		t.Error("in-place update should diverge from synchronous update for this input")
	}
}

func TestGrid_BlinkerPeriod(t *testing.T) {
	g, err := FromPattern([][]bool{
		{false, false, false},
		{true, true, true},
		{false, false, false},
	})
	if err != nil {
		t.Fatal(err)
	}
	start := liveSet(g)
	g.Advance()
	mid := liveSet(g)
	if slices.Equal(start, mid) {
		t.Fatal("blinker should change after one generation")
	}
	wantMid := []Point{{6, 5}, {6, 6}, {6, 7}}
	if !slices.Equal(mid, wantMid) {
		t.Errorf("generation 1 = %v, want %v", mid, wantMid)
	}
	g.Advance()
	if !slices.Equal(start, liveSet(g)) {
		t.Errorf("generation 2 = %v, want %v", liveSet(g), start)
	}
}

func TestGrid_GliderWrapsAroundTorus(t *testing.T) {
	g, err := FromPattern([][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}, WithSize(8, 8))
	if err != nil {
		t.Fatal(err)
	}
	start := liveSet(g)
	// 8 periods move the glider 8 cells diagonally, once around the torus.
	for range 32 {
		g.Advance()
	}
	if !slices.Equal(start, liveSet(g)) {
		t.Errorf("glider did not return after crossing edges:\n%s", g)
	}
}

func TestGrid_LiveCellsRowMajorAndRestartable(t *testing.T) {
	g := mustGrid(t, 4, 3)
	g.SetCell(3, 0, true)
	g.SetCell(0, 2, true)
	g.SetCell(1, 0, true)

	want := []Point{{1, 0}, {3, 0}, {0, 2}}
	seq := g.LiveCells()
	if got := slices.Collect(seq); !slices.Equal(got, want) {
		t.Errorf("live cells = %v, want %v", got, want)
	}

	for p := range seq {
		if p != (Point{1, 0}) {
			t.Errorf("first point = %v", p)
		}
		break
	}

	g.SetCell(2, 1, true)
	want = []Point{{1, 0}, {3, 0}, {2, 1}, {0, 2}}
	if got := slices.Collect(seq); !slices.Equal(got, want) {
		t.Errorf("rescan = %v, want %v", got, want)
	}
}

func TestGrid_Fingerprint(t *testing.T) {
	g, err := FromPattern([][]bool{{true, true, true}}, WithSize(5, 5))
	if err != nil {
		t.Fatal(err)
	}
	f0 := g.Fingerprint()
	g.Advance()
	f1 := g.Fingerprint()
	g.Advance()
	if f0 == f1 {
		t.Error("blinker phases should hash differently")
	}
	if g.Fingerprint() != f0 {
		t.Error("blinker should hash equal after its period")
	}
}

func TestGrid_String(t *testing.T) {
	g := mustGrid(t, 3, 2)
	g.SetCell(1, 0, true)
	g.SetCell(2, 1, true)
	want := "□■□\n□□■"
	if g.String() != want {
		t.Errorf("String() = %q, want %q", g.String(), want)
	}
}
