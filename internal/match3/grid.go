package match3

import "fmt"

// Slot is an optional grid occupant. The zero value is an empty slot.
type Slot[T any] struct {
	Value   T
	Present bool
}

// Some returns an occupied slot holding v.
func Some[T any](v T) Slot[T] {
	return Slot[T]{Value: v, Present: true}
}

// None returns an empty slot.
func None[T any]() Slot[T] {
	return Slot[T]{}
}

// Grid is a fixed-size 2D store mapping in-range coordinates to optional
// occupants, anchored in world space at origin with square cells of cellSize.
// Cells are stored in row-major order: index = y*width + x.
// Grid knows nothing about tokens or matching.
type Grid[T any] struct {
	width    int
	height   int
	cellSize float64
	origin   Vec2
	cells    []Slot[T]
}

// NewGrid creates a grid with every cell empty.
func NewGrid[T any](width, height int, cellSize float64, origin Vec2) (*Grid[T], error) {
	if width <= 0 || height <= 0 || cellSize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cell size %g", ErrInvalidDimensions, width, height, cellSize)
	}
	return &Grid[T]{
		width:    width,
		height:   height,
		cellSize: cellSize,
		origin:   origin,
		cells:    make([]Slot[T], width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// CellSize returns the world-space edge length of one cell.
func (g *Grid[T]) CellSize() float64 { return g.cellSize }

// Origin returns the world-space anchor of cell (0,0)'s lower-left corner.
func (g *Grid[T]) Origin() Vec2 { return g.origin }

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

func (g *Grid[T]) index(c Coord) int {
	return c.Y*g.width + c.X
}

func (g *Grid[T]) rangeError(c Coord) error {
	return fmt.Errorf("%w: %s outside %dx%d", ErrOutOfRange, c, g.width, g.height)
}

// Get returns the slot at c, or an ErrOutOfRange error.
func (g *Grid[T]) Get(c Coord) (Slot[T], error) {
	if !g.InBounds(c) {
		return Slot[T]{}, g.rangeError(c)
	}
	return g.cells[g.index(c)], nil
}

// Set overwrites the slot at c, or returns an ErrOutOfRange error.
func (g *Grid[T]) Set(c Coord, s Slot[T]) error {
	if !g.InBounds(c) {
		return g.rangeError(c)
	}
	g.cells[g.index(c)] = s
	return nil
}

// WorldToGrid maps a world point to the cell containing it.
// The result is not bounds checked.
func (g *Grid[T]) WorldToGrid(p Vec2) Coord {
	return Coord{
		X: floorDiv(p.X-g.origin.X, g.cellSize),
		Y: floorDiv(p.Y-g.origin.Y, g.cellSize),
	}
}

// GridToWorldCenter returns the world-space center of cell c.
func (g *Grid[T]) GridToWorldCenter(c Coord) Vec2 {
	return Vec2{
		X: g.origin.X + (float64(c.X)+0.5)*g.cellSize,
		Y: g.origin.Y + (float64(c.Y)+0.5)*g.cellSize,
	}
}
