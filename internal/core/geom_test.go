package core

import "testing"

func TestPointIn(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Point{0, 0}, true},
		{"last cell", Point{GridSize - 1, GridSize - 1}, true},
		{"left of grid", Point{-1, 5}, false},
		{"above grid", Point{5, -1}, false},
		{"right edge (exclusive)", Point{GridSize, 5}, false},
		{"bottom edge (exclusive)", Point{5, GridSize}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.In(GridSize); got != tc.expected {
				t.Errorf("In(%d) for %v = %v, expected %v", GridSize, tc.p, got, tc.expected)
			}
		})
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Point
	}{
		{DirUp, Point{0, -1}},
		{DirDown, Point{0, 1}},
		{DirLeft, Point{-1, 0}},
		{DirRight, Point{1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Delta(); got != tc.expected {
				t.Errorf("Delta() = %v, expected %v", got, tc.expected)
			}
			// Opposite directions cancel out
			back := tc.dir.Opposite().Delta()
			if sum := tc.expected.Add(back); sum != (Point{}) {
				t.Errorf("Delta + Opposite().Delta = %v, expected origin", sum)
			}
		})
	}
}

func TestGestureDirection(t *testing.T) {
	tests := []struct {
		g      Gesture
		dir    Direction
		wantOK bool
	}{
		{GestureUp, DirUp, true},
		{GestureDown, DirDown, true},
		{GestureLeft, DirLeft, true},
		{GestureRight, DirRight, true},
		{GestureNone, DirRight, false},
	}

	for _, tc := range tests {
		t.Run(tc.g.String(), func(t *testing.T) {
			dir, ok := tc.g.Direction()
			if ok != tc.wantOK {
				t.Fatalf("Direction() ok = %v, expected %v", ok, tc.wantOK)
			}
			if ok && dir != tc.dir {
				t.Errorf("Direction() = %v, expected %v", dir, tc.dir)
			}
		})
	}
}
