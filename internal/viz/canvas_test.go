package viz

import (
	"testing"

	"github.com/san-kum/conway/internal/life"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	if c.Grid[0][0] != brailleBlank+0x1 {
		t.Errorf("cell 0 = %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != brailleBlank+0x80 {
		t.Errorf("cell 1 = %U", c.Grid[0][1])
	}
	if !c.IsSet(0, 0) || c.IsSet(1, 0) || c.IsSet(-1, 0) {
		t.Error("IsSet disagrees with Set")
	}
}

func TestCanvasPlot(t *testing.T) {
	g, _ := life.New(5, 5)
	g.SetCell(0, 0, true)
	g.SetCell(4, 4, true)

	c := CanvasFor(g)
	if c.Width != 3 || c.Height != 2 {
		t.Fatalf("canvas size %dx%d, want 3x2", c.Width, c.Height)
	}
	c.Plot(g)
	if !c.IsSet(0, 0) || !c.IsSet(4, 4) || c.IsSet(2, 2) {
		t.Error("plot should mark exactly the live cells")
	}

	g.Clear()
	c.Plot(g)
	for _, row := range c.Grid {
		for _, r := range row {
			if r != brailleBlank {
				t.Fatal("plot of an empty grid should be blank")
			}
		}
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("missing").Name != DefaultTheme.Name {
		t.Error("unknown theme should fall back to the default")
	}
	seen := map[string]bool{}
	th := DefaultTheme
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(ThemeNames()) || th.Name != DefaultTheme.Name {
		t.Error("NextTheme should cycle through every theme")
	}
}

func TestHexHelpers(t *testing.T) {
	r, g, b := parseHex("#ff8000")
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("parseHex = %d %d %d", r, g, b)
	}
	if hexColor(300, 16, -5) != "#ff1000" {
		t.Errorf("hexColor = %s", hexColor(300, 16, -5))
	}
}
