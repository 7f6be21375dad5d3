package match3

import (
	"fmt"
	"math"
)

// Coord is a grid coordinate. X grows to the right, Y grows upward:
// row 0 is the bottom of the board.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Vec2 is a point in world space.
type Vec2 struct {
	X float64
	Y float64
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// floorDiv maps a world offset onto a cell index.
func floorDiv(offset, size float64) int {
	return int(math.Floor(offset / size))
}
