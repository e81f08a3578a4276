package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/conway/internal/life"
	"github.com/san-kum/conway/internal/viz"
)

const (
	background = "#0a0a0a"
	gridLine   = "#282828"
	cellFill   = "#00ff00"
)

func header(sb *strings.Builder, width, height float64) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}

// GridToSVG draws g with one square per cell, separated by grid lines.
func GridToSVG(g *life.Grid, cellSize float64) string {
	if g == nil {
		return ""
	}
	if cellSize <= 0 {
		cellSize = 10
	}

	width := float64(g.Width()) * cellSize
	height := float64(g.Height()) * cellSize

	var sb strings.Builder
	header(&sb, width, height)

	fmt.Fprintf(&sb, "<g stroke=\"%s\" stroke-width=\"1\">\n", gridLine)
	for x := 0; x <= g.Width(); x++ {
		fx := float64(x) * cellSize
		fmt.Fprintf(&sb, "<line x1=\"%.1f\" y1=\"0\" x2=\"%.1f\" y2=\"%.1f\"/>\n", fx, fx, height)
	}
	for y := 0; y <= g.Height(); y++ {
		fy := float64(y) * cellSize
		fmt.Fprintf(&sb, "<line x1=\"0\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\"/>\n", fy, width, fy)
	}
	sb.WriteString("</g>\n")

	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", cellFill)
	for p := range g.LiveCells() {
		fmt.Fprintf(&sb, "<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\"/>\n",
			float64(p.X)*cellSize+1, float64(p.Y)*cellSize+1, cellSize-1, cellSize-1)
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	header(&sb, width, height)
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", cellFill)

	dotRadius := scale * 0.4

	for y := 0; y < canvas.Height*4; y++ {
		for x := 0; x < canvas.Width*2; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// PopulationToSVG plots a population series as a line chart.
func PopulationToSVG(population []int, width, height int, strokeColor string) string {
	if len(population) < 2 {
		return ""
	}

	minY, maxY := population[0], population[0]
	for _, p := range population {
		minY = min(minY, p)
		maxY = max(maxY, p)
	}

	rangeX := float64(len(population) - 1)
	lo, hi := float64(minY), float64(maxY)
	rangeY := hi - lo
	if rangeY == 0 {
		rangeY = 1
	}
	lo -= rangeY * 0.1
	hi += rangeY * 0.1
	rangeY = hi - lo

	var sb strings.Builder
	header(&sb, float64(width), float64(height))
	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor)

	for i, p := range population {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (float64(p)-lo)/rangeY*float64(height)

		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
