package forces

import "testing"

func TestPolynomialEval(t *testing.T) {
	p := Polynomial{C0: -50, C1: 10, C2: -2}
	tests := []struct {
		x, want float64
	}{
		{0, -50},
		{1, -42},
		{5, -50},
	}
	for _, tt := range tests {
		if got := p.Eval(tt.x); got != tt.want {
			t.Errorf("Eval(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestPolynomialDerivative(t *testing.T) {
	got := Polynomial{C0: 3, C1: 4, C2: 5}.Derivative()
	want := Polynomial{C0: 4, C1: 10}
	if got != want {
		t.Errorf("Derivative() = %+v, want %+v", got, want)
	}
	if got := want.Derivative().Derivative(); got != (Polynomial{}) {
		t.Errorf("second derivative of linear = %+v, want zero", got)
	}
}

func TestPolynomialAdd(t *testing.T) {
	got := Polynomial{C0: 1, C1: 2}.Add(Polynomial{C1: -2, C2: 0.5})
	want := Polynomial{C0: 1, C2: 0.5}
	if got != want {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
}

func TestPolynomialExtremum(t *testing.T) {
	if x, ok := (Polynomial{C1: 30, C2: -5}).Extremum(); !ok || x != 3 {
		t.Errorf("Extremum() = %v, %v, want 3, true", x, ok)
	}
	if _, ok := (Polynomial{C0: 1, C1: 2}).Extremum(); ok {
		t.Error("linear polynomial should have no extremum")
	}
}

func TestPolynomialString(t *testing.T) {
	tests := []struct {
		p    Polynomial
		want string
	}{
		{Polynomial{}, "0"},
		{Polynomial{C0: -50, C1: 10}, "10x - 50"},
		{Polynomial{C0: 1.5, C1: -1, C2: -5}, "-5x^2 - x + 1.5"},
		{Polynomial{C2: 1}, "x^2"},
		{Polynomial{C0: -7}, "-7"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestPolynomialDegree(t *testing.T) {
	if d := (Polynomial{C0: 1}).Degree(); d != 0 {
		t.Errorf("Degree() = %d, want 0", d)
	}
	if d := (Polynomial{C1: 1}).Degree(); d != 1 {
		t.Errorf("Degree() = %d, want 1", d)
	}
	if d := (Polynomial{C2: -1}).Degree(); d != 2 {
		t.Errorf("Degree() = %d, want 2", d)
	}
}
