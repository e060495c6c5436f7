package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"touching right edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"touching top edge", NewBox(0, 0, 10, 10), NewBox(0, 10, 10, 10), false},
		{"fractional overlap", NewBox(0, 0, 10, 10), NewBox(9.5, 9.5, 1, 1), true},
		{"contained", NewBox(0, 0, 20, 20), NewBox(5, 5, 1, 1), true},
		{"negative space", NewBox(-30, -30, 10, 10), NewBox(-25, -22, 3, 3), true},
		{"disjoint", NewBox(0, 0, 10, 10), NewBox(0, -11, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(-35, 400, 100, 12.5)
	if b.Right() != 65 {
		t.Errorf("Right() = %v, expected 65", b.Right())
	}
	if b.Top() != 412.5 {
		t.Errorf("Top() = %v, expected 412.5", b.Top())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (25, 25)", r.Right(), r.Bottom())
	}
}

func TestIntHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"clamp inside", Clamp(5, 1, 23), 5},
		{"clamp below", Clamp(-3, 1, 23), 1},
		{"clamp above", Clamp(40, 1, 23), 23},
		{"clamp at bounds", Clamp(23, 1, 23), 23},
		{"min", Min(3, -2), -2},
		{"max", Max(3, -2), 3},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, expected %d", tt.name, tt.got, tt.want)
		}
	}
}
