package geometry

import "testing"

func TestNewPoint(t *testing.T) {
	p := NewPoint(1, 2)
	if p.X != 1 || p.Y != 2 {
		t.Errorf("NewPoint(1, 2) = %v; want (1, 2)", p)
	}
}

func TestPoint_String(t *testing.T) {
	p := Point{3, 5}
	want := "(3, 5)"
	if got := p.String(); got != want {
		t.Errorf("Point.String() = %q; want %q", got, want)
	}
}

func TestOffset_String(t *testing.T) {
	o := Offset{-1, 1}
	want := "[-1, +1]"
	if got := o.String(); got != want {
		t.Errorf("Offset.String() = %q; want %q", got, want)
	}
}

func TestPoint_Arithmetic(t *testing.T) {
	p := Point{2, 3}

	t.Run("Add", func(t *testing.T) {
		want := Point{1, 4}
		if got := p.Add(Offset{-1, 1}); got != want {
			t.Errorf("%v.Add([-1, +1]) = %v; want %v", p, got, want)
		}
	})

	t.Run("AddZero", func(t *testing.T) {
		if got := p.Add(Offset{}); got != p {
			t.Errorf("%v.Add(zero) = %v; want %v", p, got, p)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		other := Point{5, 1}
		want := Offset{-3, 2}
		if got := p.Sub(other); got != want {
			t.Errorf("%v.Sub(%v) = %v; want %v", p, other, got, want)
		}
		// Sub then Add must round-trip back onto p.
		if got := other.Add(p.Sub(other)); got != p {
			t.Errorf("round trip = %v; want %v", got, p)
		}
	})
}

func TestPoint_Distances(t *testing.T) {
	tests := []struct {
		name          string
		a, b          Point
		wantChebyshev int
		wantManhattan int
	}{
		{"Same cell", Point{2, 2}, Point{2, 2}, 0, 0},
		{"Axial neighbor", Point{0, 0}, Point{1, 0}, 1, 1},
		{"Diagonal neighbor", Point{0, 0}, Point{1, 1}, 1, 2},
		{"Knight-ish", Point{0, 0}, Point{2, 1}, 2, 3},
		{"Negative coordinates", Point{-2, -3}, Point{1, 1}, 4, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ChebyshevDistanceTo(tt.b); got != tt.wantChebyshev {
				t.Errorf("ChebyshevDistanceTo = %d; want %d", got, tt.wantChebyshev)
			}
			if got := tt.a.ManhattanDistanceTo(tt.b); got != tt.wantManhattan {
				t.Errorf("ManhattanDistanceTo = %d; want %d", got, tt.wantManhattan)
			}
			// Both distances are symmetric.
			if got := tt.b.ChebyshevDistanceTo(tt.a); got != tt.wantChebyshev {
				t.Errorf("ChebyshevDistanceTo reversed = %d; want %d", got, tt.wantChebyshev)
			}
		})
	}
}
