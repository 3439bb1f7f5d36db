package wire

import "fmt"

// Wire is the full ordered sequence of grid points a wire occupies, starting
// at the origin and listing every intermediate point of every segment. A wire
// that crosses itself lists the shared point once per visit. Wires are built
// once by Trace and not mutated afterwards.
type Wire []Point

// Trace expands a wire's move list into the complete point sequence it
// occupies. The origin is the first element; every move then contributes its
// intermediate points followed by its endpoint, so a move of distance N
// contributes exactly N points.
func Trace(moves []Move) Wire {
	path := make(Wire, 0, traceLen(moves))
	path = append(path, Origin)

	current := Origin
	for _, move := range moves {
		next := current.Add(move.Delta())
		path = append(path, pointsBetween(current, next)...)
		path = append(path, next)
		current = next
	}

	return path
}

func traceLen(moves []Move) int {
	n := 1
	for _, move := range moves {
		n += move.Distance
	}
	return n
}

// pointsBetween returns every grid point strictly between two points that
// share an axis, in walking order. Adjacent or equal points yield nothing.
//
// The endpoints come from axis-aligned moves, so differing on both axes can
// only mean a bug in Trace itself; that violation panics rather than
// returning an error.
func pointsBetween(first, second Point) []Point {
	step := Point{X: sign(second.X - first.X), Y: sign(second.Y - first.Y)}
	if step.X != 0 && step.Y != 0 {
		panic(fmt.Sprintf("segment endpoints %v and %v do not share an axis", first, second))
	}

	// Adjacent endpoints have nothing between them.
	if abs(second.X-first.X) <= 1 && abs(second.Y-first.Y) <= 1 {
		return nil
	}

	var points []Point
	for current := first.Add(step); current != second; current = current.Add(step) {
		points = append(points, current)
	}
	return points
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// StepIndex maps each point of the wire to the index of its first occurrence,
// which equals the number of grid steps traveled from the origin before first
// reaching it. Self-crossing wires keep the earliest index.
func (w Wire) StepIndex() map[Point]int {
	index := make(map[Point]int, len(w))
	for i, p := range w {
		if _, seen := index[p]; !seen {
			index[p] = i
		}
	}
	return index
}

// Corners compresses the wire to its polyline corners: the origin, every
// point where the walking direction changes, and the final point. Useful for
// drawing the wire as a handful of straight segments instead of thousands of
// unit steps.
func (w Wire) Corners() []Point {
	if len(w) <= 2 {
		return append([]Point(nil), w...)
	}

	corners := []Point{w[0]}
	for i := 1; i < len(w)-1; i++ {
		prev, cur, next := w[i-1], w[i], w[i+1]
		if (cur.X-prev.X != next.X-cur.X) || (cur.Y-prev.Y != next.Y-cur.Y) {
			corners = append(corners, cur)
		}
	}
	return append(corners, w[len(w)-1])
}
