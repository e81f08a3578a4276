package life

// Option adjusts how FromPattern sizes the grid.
type Option func(*patternOptions)

type patternOptions struct {
	width, height int
}

// WithWidth sets the grid width instead of pattern width + 2*DefaultMargin.
func WithWidth(w int) Option {
	return func(o *patternOptions) { o.width = w }
}

// WithHeight sets the grid height instead of pattern height + 2*DefaultMargin.
func WithHeight(h int) Option {
	return func(o *patternOptions) { o.height = h }
}

// WithSize sets both grid dimensions.
func WithSize(w, h int) Option {
	return func(o *patternOptions) {
		WithWidth(w)(o)
		WithHeight(h)(o)
	}
}

// FromPattern builds a grid with pattern centered in a field of dead cells.
//
// The pattern must be a non-empty rectangle: a pattern with no rows or an
// empty first row fails with ErrEmptyPattern, and rows of differing widths
// fail with a *PatternError wrapping ErrJaggedPattern. Jagged input is never
// padded. A pattern larger than the requested field wraps around the torus.
func FromPattern(pattern [][]bool, opts ...Option) (*Grid, error) {
	ph := len(pattern)
	if ph == 0 || len(pattern[0]) == 0 {
		return nil, ErrEmptyPattern
	}
	pw := len(pattern[0])
	for i, row := range pattern {
		if len(row) != pw {
			return nil, &PatternError{Row: i, Width: len(row), Want: pw, Wrapped: ErrJaggedPattern}
		}
	}

	o := patternOptions{width: pw + 2*DefaultMargin, height: ph + 2*DefaultMargin}
	for _, opt := range opts {
		opt(&o)
	}

	g, err := New(o.width, o.height)
	if err != nil {
		return nil, err
	}

	startX := floorDiv(o.width-pw, 2)
	startY := floorDiv(o.height-ph, 2)
	for y, row := range pattern {
		for x, alive := range row {
			if alive {
				g.SetCell(startX+x, startY+y, true)
			}
		}
	}
	return g, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
