package patterns

import "github.com/san-kum/conway/internal/life"

// Field size used when neither the caller nor the entry names one.
const (
	DefaultWidth  = 30
	DefaultHeight = 20
)

// Size resolves the field size for e. Non-positive width or height fall
// back to the entry's preferred size, then to DefaultWidth x DefaultHeight.
func (e Entry) Size(width, height int) (int, int) {
	if width <= 0 {
		width = DefaultWidth
		if e.Width > 0 {
			width = e.Width
		}
	}
	if height <= 0 {
		height = DefaultHeight
		if e.Height > 0 {
			height = e.Height
		}
	}
	return width, height
}

// Grid builds e and centers it in a field sized by Size.
func (e Entry) Grid(width, height int, opts RandomOptions) (*life.Grid, error) {
	w, h := e.Size(width, height)
	return life.FromPattern(e.Build(w, h, opts), life.WithSize(w, h))
}

// NewGrid looks up name and builds its grid.
func NewGrid(name string, width, height int, opts RandomOptions) (*life.Grid, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.Grid(width, height, opts)
}
