package life

import (
	"errors"
	"slices"
	"testing"
)

func TestFromPattern_DefaultSizeAndCentering(t *testing.T) {
	g, err := FromPattern([][]bool{
		{true, false, false},
		{false, false, true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 13 || g.Height() != 12 {
		t.Errorf("size = %dx%d, want 13x12", g.Width(), g.Height())
	}
	want := []Point{{5, 5}, {7, 6}}
	if got := slices.Collect(g.LiveCells()); !slices.Equal(got, want) {
		t.Errorf("live cells = %v, want %v", got, want)
	}
	if g.Generation() != 0 {
		t.Errorf("generation = %d", g.Generation())
	}
}

func TestFromPattern_ExplicitSize(t *testing.T) {
	block := [][]bool{{true, true}, {true, true}}
	tests := []struct {
		name  string
		opts  []Option
		w, h  int
		first Point
	}{
		{"both", []Option{WithSize(30, 20)}, 30, 20, Point{14, 9}},
		{"width only", []Option{WithWidth(7)}, 7, 12, Point{2, 5}},
		{"height only", []Option{WithHeight(3)}, 12, 3, Point{5, 0}},
		{"exact", []Option{WithSize(2, 2)}, 2, 2, Point{0, 0}},
		{"odd remainder", []Option{WithSize(5, 5)}, 5, 5, Point{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromPattern(block, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if g.Width() != tt.w || g.Height() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", g.Width(), g.Height(), tt.w, tt.h)
			}
			cells := slices.Collect(g.LiveCells())
			if len(cells) != 4 || cells[0] != tt.first {
				t.Errorf("live cells = %v, want 4 starting at %v", cells, tt.first)
			}
		})
	}
}

func TestFromPattern_LargerThanFieldWraps(t *testing.T) {
	g, err := FromPattern([][]bool{{true, false, false, true}}, WithSize(3, 1))
	if err != nil {
		t.Fatal(err)
	}
	// offset floor((3-4)/2) = -1: columns -1 and 2 wrap to 2 and 2.
	want := []Point{{2, 0}}
	if got := slices.Collect(g.LiveCells()); !slices.Equal(got, want) {
		t.Errorf("live cells = %v, want %v", got, want)
	}
}

func TestFromPattern_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern [][]bool
		opts    []Option
		want    error
	}{
		{"nil", nil, nil, ErrEmptyPattern},
		{"no rows", [][]bool{}, nil, ErrEmptyPattern},
		{"empty row", [][]bool{{}}, nil, ErrEmptyPattern},
		{"jagged", [][]bool{{true, false}, {true}}, nil, ErrJaggedPattern},
		{"zero width", [][]bool{{true}}, []Option{WithWidth(0)}, ErrInvalidSize},
		{"negative height", [][]bool{{true}}, []Option{WithHeight(-2)}, ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromPattern(tt.pattern, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if g != nil {
				t.Error("expected nil grid")
			}
		})
	}
}

func TestFromPattern_JaggedReportsRow(t *testing.T) {
	_, err := FromPattern([][]bool{{true, true}, {true, true}, {true}})
	var perr *PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PatternError, got %T", err)
	}
	if perr.Row != 2 || perr.Width != 1 || perr.Want != 2 {
		t.Errorf("pattern error = %+v", perr)
	}
	if perr.Error() != "life: pattern rows have different widths: row 2 has width 1, want 2" {
		t.Errorf("message = %q", perr.Error())
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{6, 2, 3},
		{-1, 2, -1},
		{-4, 2, -2},
		{-5, 2, -3},
		{0, 2, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
