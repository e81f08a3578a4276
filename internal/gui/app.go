package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/conway/internal/life"
	"github.com/san-kum/conway/internal/sim"
)

// Theme Colors
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColGrid    = rl.NewColor(40, 40, 40, 255)
	ColCell    = rl.NewColor(0, 255, 0, 255)
	ColText    = rl.NewColor(200, 200, 200, 255)
	ColTextDim = rl.NewColor(90, 90, 90, 255)
)

const (
	textArea = 40
	fontSize = 16
	title    = "Conway's Game of Life"
)

// Window draws a grid in a native window. It implements sim.Renderer:
// closing the window (ESC, Q or the close button) ends the run with
// sim.ErrStopped, and while paused Render keeps drawing and accepting
// clicks without returning, so the grid does not advance.
type Window struct {
	cellSize int32
	fps      int32
	paused   bool
	open     bool
}

func NewWindow(cellSize, fps int) *Window {
	if cellSize <= 0 {
		cellSize = 20
	}
	if fps <= 0 {
		fps = 5
	}
	return &Window{cellSize: int32(cellSize), fps: int32(fps)}
}

// Open creates the window sized for g. It must be called from the
// goroutine that later calls Render.
func (w *Window) Open(g *life.Grid) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(g.Width())*w.cellSize, int32(g.Height())*w.cellSize+textArea, title)
	rl.SetTargetFPS(w.fps)
	w.open = true
}

func (w *Window) Close() {
	if w.open {
		rl.CloseWindow()
		w.open = false
	}
}

func (w *Window) Render(g *life.Grid) error {
	if !w.open {
		return fmt.Errorf("gui: render before Open")
	}
	for {
		if rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ) {
			return sim.ErrStopped
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			w.paused = !w.paused
		}
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			pos := rl.GetMousePosition()
			if x, y, ok := w.cellAt(g, pos.X, pos.Y); ok {
				g.ToggleCell(x, y)
			}
		}

		w.draw(g)

		if !w.paused {
			return nil
		}
	}
}

func (w *Window) cellAt(g *life.Grid, px, py float32) (x, y int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = int(px)/int(w.cellSize), int(py)/int(w.cellSize)
	if x >= g.Width() || y >= g.Height() {
		return 0, 0, false
	}
	return x, y, true
}

func (w *Window) draw(g *life.Grid) {
	width := int32(g.Width()) * w.cellSize
	height := int32(g.Height()) * w.cellSize

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	for x := int32(0); x < width; x += w.cellSize {
		rl.DrawLine(x, 0, x, height, ColGrid)
	}
	for y := int32(0); y < height; y += w.cellSize {
		rl.DrawLine(0, y, width, y, ColGrid)
	}

	for p := range g.LiveCells() {
		rl.DrawRectangle(int32(p.X)*w.cellSize+1, int32(p.Y)*w.cellSize+1, w.cellSize-1, w.cellSize-1, ColCell)
	}

	rl.DrawText(fmt.Sprintf("Generation: %d", g.Generation()), 10, height+5, fontSize, ColText)
	rl.DrawText(fmt.Sprintf("Live cells: %d", g.Population()), 10, height+22, fontSize, ColText)
	if w.paused {
		rl.DrawText("PAUSED", width-70, height+5, fontSize, ColTextDim)
	}

	rl.EndDrawing()
}
