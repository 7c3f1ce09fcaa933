package chess

import "strings"

// Shape is the occupancy grid of a piece, indexed [row][column].
type Shape [][]bool

// ParseShape builds a Shape from rows where '#' or '1' marks an occupied cell.
func ParseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for r, row := range rows {
		s[r] = make([]bool, len(row))
		for c, ch := range row {
			s[r][c] = ch == '#' || ch == '1'
		}
	}
	return s
}

func (s Shape) Rows() int { return len(s) }

func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Valid reports whether s is a non-empty rectangle whose every row and
// column holds at least one occupied cell.
func (s Shape) Valid() bool {
	rows, cols := s.Rows(), s.Cols()
	if rows == 0 || cols == 0 {
		return false
	}

	colUsed := make([]bool, cols)
	for _, row := range s {
		if len(row) != cols {
			return false
		}
		rowUsed := false
		for c, filled := range row {
			if filled {
				rowUsed = true
				colUsed[c] = true
			}
		}
		if !rowUsed {
			return false
		}
	}

	for _, used := range colUsed {
		if !used {
			return false
		}
	}
	return true
}

// Rotate returns s turned a quarter clockwise.
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()
	rotated := make(Shape, cols)
	for c := range cols {
		rotated[c] = make([]bool, rows)
	}

	for r := range rows {
		for c := range cols {
			rotated[c][rows-1-r] = s[r][c]
		}
	}
	return rotated
}

// Reflect returns s mirrored left to right.
func (s Shape) Reflect() Shape {
	reflected := make(Shape, len(s))
	for r, row := range s {
		n := len(row)
		reflected[r] = make([]bool, n)
		for c, filled := range row {
			reflected[r][n-1-c] = filled
		}
	}
	return reflected
}

// Transform reflects s first when flipped, then applies rotation quarter
// turns clockwise.
func (s Shape) Transform(rotation int, flipped bool) Shape {
	shape := s.clone()
	if flipped {
		shape = shape.Reflect()
	}

	for range ((rotation % 4) + 4) % 4 {
		shape = shape.Rotate()
	}
	return shape
}

func (s Shape) clone() Shape {
	c := make(Shape, len(s))
	for r, row := range s {
		c[r] = append([]bool(nil), row...)
	}
	return c
}

func (s Shape) Equal(o Shape) bool {
	if s.Rows() != o.Rows() || s.Cols() != o.Cols() {
		return false
	}

	for r := range s {
		if len(s[r]) != len(o[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// Key is a content key, two shapes share a key iff they are Equal.
func (s Shape) Key() string {
	return s.String()
}

func (s Shape) String() string {
	var builder strings.Builder
	for r, row := range s {
		if r > 0 {
			builder.WriteByte('/')
		}
		for _, filled := range row {
			if filled {
				builder.WriteByte('#')
			} else {
				builder.WriteByte('.')
			}
		}
	}
	return builder.String()
}

// Cells returns the occupied cells as offsets, X is the column and Y the row.
func (s Shape) Cells() (cells []Coordinate) {
	for r, row := range s {
		for c, filled := range row {
			if filled {
				cells = append(cells, Coordinate{X: c, Y: r})
			}
		}
	}
	return
}

func (s Shape) Size() (size int) {
	for _, row := range s {
		for _, filled := range row {
			if filled {
				size++
			}
		}
	}
	return
}

// Orientation is one distinct rotation/reflection variant of a shape.
type Orientation struct {
	Shape    Shape
	Rotation int
	Flipped  bool
}

// Orientations lists the distinct variants of s, unflipped rotations first,
// deduplicated by grid content.
func Orientations(s Shape) (orientations []Orientation) {
	seen := make(map[string]struct{}, 8)
	for _, flipped := range [...]bool{false, true} {
		for rotation := range 4 {
			shape := s.Transform(rotation, flipped)
			key := shape.Key()
			if _, c := seen[key]; c {
				continue
			}
			seen[key] = struct{}{}
			orientations = append(orientations, Orientation{
				Shape:    shape,
				Rotation: rotation,
				Flipped:  flipped,
			})
		}
	}
	return
}
