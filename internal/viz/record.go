package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/san-kum/conway/internal/life"
)

// Recorder collects one GIF frame per captured generation.
type Recorder struct {
	scale  int
	delay  int
	frames []*image.Paletted
}

// NewRecorder draws each cell as a scale x scale block and plays frames
// back at fps.
func NewRecorder(scale, fps int) *Recorder {
	if scale <= 0 {
		scale = 4
	}
	delay := 20
	if fps > 0 {
		delay = max(2, 100/fps)
	}
	return &Recorder{scale: scale, delay: delay}
}

var gifPalette = color.Palette{color.Black, color.White}

func (r *Recorder) Capture(g *life.Grid) {
	img := image.NewPaletted(image.Rect(0, 0, g.Width()*r.scale, g.Height()*r.scale), gifPalette)
	for p := range g.LiveCells() {
		for dy := range r.scale {
			for dx := range r.scale {
				img.SetColorIndex(p.X*r.scale+dx, p.Y*r.scale+dy, 1)
			}
		}
	}
	r.frames = append(r.frames, img)
}

func (r *Recorder) Len() int { return len(r.frames) }

// Save writes the captured frames as a looping animation.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("save %s: no frames captured", path)
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
