package game

import "testing"

func TestMove_DeltaAndOpposite(t *testing.T) {
	for _, m := range AllMoves {
		d := m.Delta()
		od := m.Opposite().Delta()
		if d.X+od.X != 0 || d.Y+od.Y != 0 {
			t.Fatalf("%s and %s are not opposite", m, m.Opposite())
		}
		if (Point{}).Manhattan(d) != 1 {
			t.Fatalf("%s delta %v is not a unit step", m, d)
		}
	}
	if NoMove.Opposite() != NoMove {
		t.Fatalf("NoMove opposite should be NoMove")
	}
	if NoMove.Delta() != (Point{}) {
		t.Fatalf("NoMove delta should be zero")
	}
}

func TestParseMove(t *testing.T) {
	for _, m := range AllMoves {
		got, err := ParseMove(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMove(%q)=%v,%v", m.String(), got, err)
		}
	}
	if _, err := ParseMove("north"); err == nil {
		t.Fatalf("expected error for unknown move")
	}
	if NoMove.String() != "none" {
		t.Fatalf("NoMove string=%q", NoMove.String())
	}
}

func TestMoveBetween(t *testing.T) {
	from := Point{X: 2, Y: 2}
	for _, m := range AllMoves {
		if got := MoveBetween(from, from.Add(m.Delta())); got != m {
			t.Fatalf("MoveBetween for %s got %s", m, got)
		}
	}
	if got := MoveBetween(from, Point{X: 4, Y: 2}); got != NoMove {
		t.Fatalf("non-adjacent got %s", got)
	}
	if got := MoveBetween(from, from); got != NoMove {
		t.Fatalf("same point got %s", got)
	}
}
