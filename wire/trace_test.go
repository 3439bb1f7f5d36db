package wire

import "testing"

func mustParseMoves(t *testing.T, line string) []Move {
	t.Helper()
	moves, err := ParseMoves(line)
	if err != nil {
		t.Fatalf("ParseMoves(%q) failed: %v", line, err)
	}
	return moves
}

func TestTraceRoundTrip(t *testing.T) {
	path := Trace(mustParseMoves(t, "R2,U2,L3,D1"))

	want := Wire{
		{0, 0},
		{1, 0}, {2, 0},
		{2, 1}, {2, 2},
		{1, 2}, {0, 2}, {-1, 2},
		{-1, 1},
	}

	if len(path) != len(want) {
		t.Fatalf("Expected %d points, got %d: %v", len(want), len(path), path)
	}
	for i, p := range path {
		if p != want[i] {
			t.Errorf("Point %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestTraceStartsAtOrigin(t *testing.T) {
	for _, line := range []string{"U1", "D5,L5", "R75,D30,R83,U83,L12,D49,R71,U7,L72"} {
		path := Trace(mustParseMoves(t, line))
		if path[0] != Origin {
			t.Errorf("Trace(%q) starts at %v, want origin", line, path[0])
		}
	}
}

func TestTraceMoveContributesDistancePoints(t *testing.T) {
	// A move of distance N adds N points: N-1 intermediates plus the endpoint.
	cases := []struct {
		line string
		want int
	}{
		{"U1", 2},
		{"D1", 2},
		{"R10", 11},
		{"R10,U5", 16},
	}

	for _, c := range cases {
		path := Trace(mustParseMoves(t, c.line))
		if len(path) != c.want {
			t.Errorf("Trace(%q) has %d points, want %d", c.line, len(path), c.want)
		}
	}
}

func TestTraceIsConnectedAxisAlignedWalk(t *testing.T) {
	path := Trace(mustParseMoves(t, "R8,U5,L5,D3"))

	for i := 1; i < len(path); i++ {
		dx := abs(path[i].X - path[i-1].X)
		dy := abs(path[i].Y - path[i-1].Y)
		if dx+dy != 1 {
			t.Errorf("Points %d and %d are not adjacent: %v -> %v", i-1, i, path[i-1], path[i])
		}
	}
}

func TestPointsBetween(t *testing.T) {
	cases := []struct {
		first, second Point
		want          []Point
	}{
		{Point{0, 0}, Point{1, 0}, nil},
		{Point{0, 0}, Point{2, 0}, []Point{{1, 0}}},
		{Point{-1, 0}, Point{1, 0}, []Point{{0, 0}}},
		{Point{-1, 0}, Point{-2, 0}, nil},
		{Point{-1, 0}, Point{-3, 0}, []Point{{-2, 0}}},
		{Point{1, 1}, Point{1, 1}, nil},
		{Point{5, 6}, Point{5, 10}, []Point{{5, 7}, {5, 8}, {5, 9}}},
	}

	for _, c := range cases {
		got := pointsBetween(c.first, c.second)
		if len(got) != len(c.want) {
			t.Errorf("pointsBetween(%v, %v) = %v, want %v", c.first, c.second, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("pointsBetween(%v, %v)[%d] = %v, want %v", c.first, c.second, i, got[i], c.want[i])
			}
		}
	}
}

func TestPointsBetweenPanicsOffAxis(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("pointsBetween did not panic for endpoints off a shared axis")
		}
	}()
	pointsBetween(Point{0, 1}, Point{1, 2})
}

func TestStepIndexUsesFirstOccurrence(t *testing.T) {
	// The wire crosses its own tail at (1, 0), first visited at step 1.
	path := Trace(mustParseMoves(t, "R2,U1,L1,D1"))

	index := path.StepIndex()
	if got := index[Point{1, 0}]; got != 1 {
		t.Errorf("StepIndex[(1,0)] = %d, want 1 (first visit)", got)
	}
	if got := index[Origin]; got != 0 {
		t.Errorf("StepIndex[origin] = %d, want 0", got)
	}
}

func TestCorners(t *testing.T) {
	path := Trace(mustParseMoves(t, "R2,U2,L3,D1"))

	want := []Point{{0, 0}, {2, 0}, {2, 2}, {-1, 2}, {-1, 1}}
	got := path.Corners()

	if len(got) != len(want) {
		t.Fatalf("Corners() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Corner %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestManhattanDistance(t *testing.T) {
	cases := []struct {
		p    Point
		want int
	}{
		{Point{0, 0}, 0},
		{Point{3, 3}, 6},
		{Point{-3, 3}, 6},
		{Point{5, -2}, 7},
	}

	for _, c := range cases {
		if got := c.p.ManhattanDistance(); got != c.want {
			t.Errorf("%v.ManhattanDistance() = %d, want %d", c.p, got, c.want)
		}
	}
}
