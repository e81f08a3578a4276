package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/conway/internal/life"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"

	aliveGlyph = "■"
	deadGlyph  = " "
)

// LiveRenderer prints each generation to a terminal: a two line header
// followed by the grid inside an ASCII border.
type LiveRenderer struct {
	out io.Writer
	buf strings.Builder
}

// NewLiveRenderer writes to out, or to stdout when out is nil.
func NewLiveRenderer(out io.Writer) *LiveRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &LiveRenderer{out: out}
}

func (r *LiveRenderer) Render(g *life.Grid) error {
	r.buf.Reset()
	r.buf.WriteString(clearScreen)
	writeFrame(&r.buf, g)
	_, err := io.WriteString(r.out, r.buf.String())
	return err
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }

// Frame returns the text of one frame without terminal control codes.
func Frame(g *life.Grid) string {
	var b strings.Builder
	writeFrame(&b, g)
	return b.String()
}

func writeFrame(b *strings.Builder, g *life.Grid) {
	fmt.Fprintf(b, "Generation: %d\n", g.Generation())
	fmt.Fprintf(b, "Live cells: %d\n", g.Population())

	border := "+" + strings.Repeat("-", g.Width()) + "+\n"
	b.WriteString(border)
	for y := range g.Height() {
		b.WriteByte('|')
		for x := range g.Width() {
			if g.IsAlive(x, y) {
				b.WriteString(aliveGlyph)
			} else {
				b.WriteString(deadGlyph)
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
}
