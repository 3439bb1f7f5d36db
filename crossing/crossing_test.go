package crossing

import (
	"testing"

	"chosenoffset.com/crosswire/wire"
)

func traceWire(t *testing.T, line string) wire.Wire {
	t.Helper()
	moves, err := wire.ParseMoves(line)
	if err != nil {
		t.Fatalf("ParseMoves(%q) failed: %v", line, err)
	}
	return wire.Trace(moves)
}

func TestIntersectionsExcludesOrigin(t *testing.T) {
	// Both wires pass through the origin and cross at (1, 1).
	a := traceWire(t, "R1,U1")
	b := traceWire(t, "U1,R1")

	crossings := Intersections(a, b)
	if crossings.Contains(wire.Origin) {
		t.Error("Intersections contains the origin")
	}
	if !crossings.Contains(wire.Point{X: 1, Y: 1}) {
		t.Errorf("Expected crossing at (1,1), got %v", crossings.Points())
	}
}

func TestClosestAndFewestStepsScenarios(t *testing.T) {
	cases := []struct {
		wireA, wireB string
		distance     int
		steps        int
	}{
		{
			"R8,U5,L5,D3",
			"U7,R6,D4,L4",
			6, 30,
		},
		{
			"R75,D30,R83,U83,L12,D49,R71,U7,L72",
			"U62,R66,U55,R34,D71,R55,D58,R83",
			159, 610,
		},
		{
			"R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51",
			"U98,R91,D20,R16,D67,R40,U7,R15,U6,R7",
			135, 410,
		},
	}

	for _, c := range cases {
		a := traceWire(t, c.wireA)
		b := traceWire(t, c.wireB)

		p, ok := Closest(a, b)
		if !ok {
			t.Fatalf("Closest found no crossing for %q / %q", c.wireA, c.wireB)
		}
		if got := p.ManhattanDistance(); got != c.distance {
			t.Errorf("Closest distance for %q / %q = %d, want %d", c.wireA, c.wireB, got, c.distance)
		}

		steps, ok := FewestSteps(a, b)
		if !ok {
			t.Fatalf("FewestSteps found no crossing for %q / %q", c.wireA, c.wireB)
		}
		if steps != c.steps {
			t.Errorf("FewestSteps for %q / %q = %d, want %d", c.wireA, c.wireB, steps, c.steps)
		}
	}
}

func TestNoIntersection(t *testing.T) {
	// Parallel wires never meet beyond the shared origin.
	a := traceWire(t, "U5")
	b := traceWire(t, "R5")

	if crossings := Intersections(a, b); len(crossings) != 0 {
		t.Errorf("Expected no crossings, got %v", crossings.Points())
	}
	if _, ok := Closest(a, b); ok {
		t.Error("Closest reported a crossing for non-crossing wires")
	}
	if _, ok := FewestSteps(a, b); ok {
		t.Error("FewestSteps reported a crossing for non-crossing wires")
	}
}

func TestFewestStepsUsesFirstVisit(t *testing.T) {
	// Wire A loops back over (1, 0) at step 5; the count must use step 1.
	a := traceWire(t, "R2,U1,L1,D1")
	b := traceWire(t, "D1,R1,U1")

	steps, ok := FewestSteps(a, b)
	if !ok {
		t.Fatal("FewestSteps found no crossing")
	}
	if steps != 4 {
		t.Errorf("FewestSteps = %d, want 4 (1 step on wire A, 3 on wire B)", steps)
	}
}
