// Package forces computes bending moment and shear force distributions
// along a solved beam.
package forces

import (
	"math"
	"strconv"
	"strings"
)

// Polynomial is C0 + C1·x + C2·x² in the local coordinate of a segment.
type Polynomial struct {
	C0 float64
	C1 float64
	C2 float64
}

// Eval returns the value at x.
func (p Polynomial) Eval(x float64) float64 {
	return p.C0 + x*(p.C1+x*p.C2)
}

// Derivative differentiates term by term.
func (p Polynomial) Derivative() Polynomial {
	return Polynomial{C0: p.C1, C1: 2 * p.C2}
}

// Add returns the coefficient-wise sum.
func (p Polynomial) Add(o Polynomial) Polynomial {
	return Polynomial{C0: p.C0 + o.C0, C1: p.C1 + o.C1, C2: p.C2 + o.C2}
}

// Degree is the highest power with a non-zero coefficient, or 0.
func (p Polynomial) Degree() int {
	switch {
	case p.C2 != 0:
		return 2
	case p.C1 != 0:
		return 1
	default:
		return 0
	}
}

// Extremum returns the stationary point of a quadratic.
func (p Polynomial) Extremum() (float64, bool) {
	if p.C2 == 0 {
		return 0, false
	}
	return -p.C1 / (2 * p.C2), true
}

func (p Polynomial) String() string {
	var sb strings.Builder
	terms := []struct {
		coef   float64
		suffix string
	}{
		{p.C2, "x^2"},
		{p.C1, "x"},
		{p.C0, ""},
	}
	for _, t := range terms {
		if t.coef == 0 {
			continue
		}
		v := t.coef
		switch {
		case sb.Len() == 0 && v < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && v < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		v = math.Abs(v)
		if v != 1 || t.suffix == "" {
			sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		sb.WriteString(t.suffix)
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}
