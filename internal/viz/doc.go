// Package viz provides the interactive terminal view of a Life grid.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: the running grid, its cursor and side panel
//   - [Canvas]: Braille-based pixel canvas for a compact view of large grids
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space      - Pause/Resume
//	N          - Advance one generation
//	R          - Reset to the starting pattern
//	C          - Clear the grid
//	Arrows/hjkl - Move the cursor
//	Enter/X    - Toggle the cell under the cursor
//	+/-        - Change speed
//	T          - Cycle color themes
//	B          - Toggle the Braille view
//	G          - Toggle GIF recording
//	?          - Show help overlay
//	Q          - Quit
//
// # Recording
//
// Pressing G starts capturing one image per generation; pressing it again
// writes the animation to conway.gif in the current directory.
package viz
