// Package crossing finds the points where two traced wires cross and scores
// them under the two metrics of interest: Manhattan distance from the origin,
// and combined wire length to first reach the crossing.
package crossing

import "chosenoffset.com/crosswire/wire"

// Intersections returns the set of distinct grid points occupied by both
// wires. The origin is removed: both wires start there, so it is never a
// meaningful crossing. The result is unordered and recomputed per call.
func Intersections(a, b wire.Wire) wire.PointSet {
	occupied := make(wire.PointSet, len(a))
	for _, p := range a {
		occupied.Insert(p)
	}

	shared := make(wire.PointSet)
	for _, p := range b {
		if occupied.Contains(p) {
			shared.Insert(p)
		}
	}

	delete(shared, wire.Origin)
	return shared
}

// Closest returns the crossing with the smallest Manhattan distance from the
// origin. The second return value is false when the wires never cross. When
// several crossings share the minimum distance, any one of them may be
// returned.
func Closest(a, b wire.Wire) (wire.Point, bool) {
	var best wire.Point
	found := false

	for p := range Intersections(a, b) {
		if !found || p.ManhattanDistance() < best.ManhattanDistance() {
			best = p
			found = true
		}
	}

	return best, found
}

// FewestSteps returns the smallest combined number of grid steps both wires
// travel to first reach a common crossing. The second return value is false
// when the wires never cross.
func FewestSteps(a, b wire.Wire) (int, bool) {
	crossings := Intersections(a, b)
	if len(crossings) == 0 {
		return 0, false
	}

	stepsA := a.StepIndex()
	stepsB := b.StepIndex()

	best := 0
	found := false
	for p := range crossings {
		combined := stepsA[p] + stepsB[p]
		if !found || combined < best {
			best = combined
			found = true
		}
	}

	return best, found
}
