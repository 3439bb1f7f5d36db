// Package wire models orthogonal wires laid out on an integer grid. A wire is
// described by a list of directional moves (e.g. "R75,D30,R83") and traced
// into the full ordered sequence of grid points it occupies, starting at the
// origin. The crossing package consumes these traces to find where two wires
// intersect.
package wire

// Point is a position on the integer grid. It is a plain value type:
// two Points are equal when their coordinates are equal, and Points are
// usable as map keys.
type Point struct {
	X, Y int
}

// Origin is the shared starting point of every wire.
var Origin = Point{X: 0, Y: 0}

// Add returns the point shifted by the given offset.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// ManhattanDistance returns the Manhattan distance from the origin:
// the sum of the absolute values of both coordinates.
//
// Note this is a metric, not an ordering: Points deliberately have no
// intrinsic order. Callers that want "closest to origin" pass this as the
// key of a min-search (see crossing.Closest).
func (p Point) ManhattanDistance() int {
	return abs(p.X) + abs(p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four axis-aligned movement directions.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Delta returns the unit offset for one step in the direction.
// Up increases Y and Right increases X.
func (d Direction) Delta() Point {
	switch d {
	case DirectionUp:
		return Point{X: 0, Y: 1}
	case DirectionDown:
		return Point{X: 0, Y: -1}
	case DirectionLeft:
		return Point{X: -1, Y: 0}
	case DirectionRight:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// String returns the single-letter form used in move tokens.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "U"
	case DirectionDown:
		return "D"
	case DirectionLeft:
		return "L"
	case DirectionRight:
		return "R"
	}
	return "?"
}

// Move is a single instruction of a wire layout: a direction and the number
// of grid steps to travel. Distance is always at least 1; zero-length moves
// are rejected at parse time.
type Move struct {
	Direction Direction
	Distance  int
}

// Delta returns the total offset the move applies to a position.
func (m Move) Delta() Point {
	step := m.Direction.Delta()
	return Point{X: step.X * m.Distance, Y: step.Y * m.Distance}
}

// PointSet is an unordered set of grid points. Iteration order is not
// specified and must not be relied upon.
type PointSet map[Point]struct{}

// Insert adds a point to the set.
func (s PointSet) Insert(p Point) {
	s[p] = struct{}{}
}

// Contains reports whether the point is in the set.
func (s PointSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

// Points returns the set's contents as a slice, in unspecified order.
func (s PointSet) Points() []Point {
	points := make([]Point, 0, len(s))
	for p := range s {
		points = append(points, p)
	}
	return points
}
