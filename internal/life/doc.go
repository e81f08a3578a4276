// Package life implements the Game of Life core: the binary [Cell] and the
// toroidal [Grid] that owns every cell and advances them synchronously.
//
//   - [Cell]: one bit of state plus the birth/survival rule
//   - [Grid]: fixed-size torus, wraparound addressing, generation counter
//   - [FromPattern]: seeds a grid with a boolean pattern centered in a field
//
// # Example
//
//	g, _ := life.FromPattern(patterns.Glider())
//	for range 4 {
//		g.Advance()
//	}
//	for p := range g.LiveCells() {
//		fmt.Println(p.X, p.Y)
//	}
//
// # Thread Safety
//
// A Grid is NOT safe for concurrent use. Renderers reading the grid and the
// loop calling Advance must be serialized by the caller.
package life
