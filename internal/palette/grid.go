package palette

import "math"

// TileSize is the width and height of one palette cell in SVG units.
const TileSize = 100

// Cell is one colored tile of the palette grid.
type Cell struct {
	X, Y int
	Fill string
}

// SideLength returns the number of cells per side of the square grid:
// the smallest integer whose square holds n colors.
//
//	SideLength(1)  // 1
//	SideLength(3)  // 2
//	SideLength(9)  // 3
//	SideLength(10) // 4
func SideLength(n int) int {
	if n <= 0 {
		return 0
	}
	side := int(math.Sqrt(float64(n)))
	for side*side < n {
		side++
	}
	for side > 1 && (side-1)*(side-1) >= n {
		side--
	}
	return side
}

// Layout assigns colors row-major to the cells of the grid.
// The cell at column c and row r is positioned at (c*TileSize, r*TileSize).
func Layout(hexes []string) []Cell {
	side := SideLength(len(hexes))
	cells := make([]Cell, len(hexes))
	for i, hex := range hexes {
		cells[i] = Cell{
			X:    (i % side) * TileSize,
			Y:    (i / side) * TileSize,
			Fill: hex,
		}
	}
	return cells
}

// CanvasSize returns the width (and height) of the palette canvas.
func CanvasSize(n int) int {
	return SideLength(n) * TileSize
}
