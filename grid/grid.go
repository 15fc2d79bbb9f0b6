// Package grid provides a generic rectangular 2D grid plus analysis
// helpers for integer grids: connected components of cells above a
// threshold, and conversion into a core.Graph.
//
// Cells are addressed as (x, y) with x growing rightwards and y downwards;
// storage is row-major. Neighborhoods come in two flavors: Conn4
// (orthogonal) and Conn8 (including diagonals).
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")

	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets4 and offsets8 list neighbor deltas in clockwise order from north.
var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor deltas for the connectivity, in a fixed
// clockwise order starting at north. The returned slice must not be
// mutated.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}

// Coord is a grid coordinate.
type Coord struct {
	X, Y int
}

// Grid is a rectangular 2D grid of T. The zero value is empty; construct
// with New or FromRows. Grid is not safe for concurrent mutation.
type Grid[T any] struct {
	width, height int
	cells         [][]T // cells[y][x]
}

// New returns a width×height grid of zero values.
// Returns ErrEmptyGrid when either dimension is non-positive.
// Complexity: O(W×H).
func New[T any](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]T, height)
	for y := range cells {
		cells[y] = make([]T, width)
	}

	return &Grid[T]{width: width, height: height, cells: cells}, nil
}

// FromRows builds a grid from rows[y][x], deep-copying the input.
// Returns ErrEmptyGrid for empty input, ErrNonRectangular when row lengths
// differ.
// Complexity: O(W×H).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	cells := make([][]T, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = make([]T, w)
		copy(cells[y], row)
	}

	return &Grid[T]{width: w, height: len(rows), cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether (x, y) lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the value at (x, y), or ErrOutOfBounds.
func (g *Grid[T]) Get(x, y int) (T, error) {
	if !g.InBounds(x, y) {
		var zero T

		return zero, ErrOutOfBounds
	}

	return g.cells[y][x], nil
}

// Set stores value at (x, y) and returns the previous value.
func (g *Grid[T]) Set(x, y int, value T) (T, error) {
	if !g.InBounds(x, y) {
		var zero T

		return zero, ErrOutOfBounds
	}
	prev := g.cells[y][x]
	g.cells[y][x] = value

	return prev, nil
}

// Fill assigns value to every cell.
// Complexity: O(W×H).
func (g *Grid[T]) Fill(value T) {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = value
		}
	}
}

// Rows returns a deep copy of the grid contents as rows[y][x].
// Complexity: O(W×H).
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for y := range rows {
		rows[y] = make([]T, g.width)
		copy(rows[y], g.cells[y])
	}

	return rows
}

// Neighbors returns the in-bounds neighbor coordinates of (x, y) for the
// given connectivity, in the fixed clockwise offset order.
// Returns ErrOutOfBounds if (x, y) itself is outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Neighbors(x, y int, conn Connectivity) ([]Coord, error) {
	if !g.InBounds(x, y) {
		return nil, ErrOutOfBounds
	}
	offsets := conn.Offsets()
	coords := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			coords = append(coords, Coord{X: nx, Y: ny})
		}
	}

	return coords, nil
}

// index maps (x, y) to a row-major cell index.
func (g *Grid[T]) index(x, y int) int { return y*g.width + x }

// coordinate maps a row-major cell index back to (x, y).
func (g *Grid[T]) coordinate(i int) (int, int) { return i % g.width, i / g.width }
