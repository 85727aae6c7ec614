package statics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

type component int

const (
	componentHorizontal component = iota
	componentVertical
	componentMoment
)

// unknown is one reaction component in the equilibrium system.
type unknown struct {
	support   *beam.Support
	component component
}

// system collects the equilibrium rows of a beam with any support layout.
type system struct {
	unknowns []unknown
	rows     [][]float64
	rhs      []float64
}

func newSystem(supports []*beam.Support) *system {
	s := &system{}
	for _, sp := range supports {
		if sp.RestrainsHorizontal() {
			s.unknowns = append(s.unknowns, unknown{sp, componentHorizontal})
		}
		if sp.RestrainsVertical() {
			s.unknowns = append(s.unknowns, unknown{sp, componentVertical})
		}
		if sp.RestrainsMoment() {
			s.unknowns = append(s.unknowns, unknown{sp, componentMoment})
		}
	}
	return s
}

// part is the free body an equation is written for: the whole beam, or
// everything strictly left of a release.
type part struct {
	limit   float64
	bounded bool
}

var wholeBeam = part{}

func leftOf(x float64) part { return part{limit: x, bounded: true} }

func (p part) contains(x float64) bool {
	return !p.bounded || x < p.limit
}

// clip trims a distributed load to the free body.
func (p part) clip(d *beam.DistributedLoad) *beam.DistributedLoad {
	if !p.bounded {
		return d
	}
	return d.Clip(d.Start, p.limit)
}

// addForceRow adds ΣFx = 0 (horizontal) or ΣFy = 0 (vertical) over the selected part.
func (s *system) addForceRow(b *beam.Beam, horizontal bool, body part) {
	row := make([]float64, len(s.unknowns))
	for i, u := range s.unknowns {
		if !body.contains(u.support.X()) {
			continue
		}
		if horizontal && u.component == componentHorizontal {
			row[i] = 1
		}
		if !horizontal && u.component == componentVertical {
			row[i] = 1
		}
	}

	var load float64
	for _, p := range b.PointLoads() {
		if !body.contains(p.X()) {
			continue
		}
		if horizontal {
			load += p.Horizontal()
		} else {
			load += p.Vertical()
		}
	}
	if !horizontal {
		for _, d := range b.DistributedLoads() {
			if c := body.clip(d); c != nil {
				load += c.TotalForce()
			}
		}
	}

	s.rows = append(s.rows, row)
	s.rhs = append(s.rhs, -load)
}

// addMomentRow adds ΣM = 0 about x = pivot over the selected part, clockwise positive.
// An upward force F at x turns clockwise about the pivot by F·(pivot − x).
func (s *system) addMomentRow(b *beam.Beam, pivot float64, body part) {
	row := make([]float64, len(s.unknowns))
	for i, u := range s.unknowns {
		x := u.support.X()
		if !body.contains(x) {
			continue
		}
		switch u.component {
		case componentVertical:
			row[i] = pivot - x
		case componentMoment:
			row[i] = 1
		}
	}

	var load float64
	for _, p := range b.PointLoads() {
		if body.contains(p.X()) {
			load += p.Vertical() * (pivot - p.X())
		}
	}
	for _, d := range b.DistributedLoads() {
		if c := body.clip(d); c != nil {
			load += c.TotalForce() * (pivot - (c.Start + c.Centroid()))
		}
	}
	for _, m := range b.PointMoments() {
		if body.contains(m.X()) {
			load += m.Magnitude
		}
	}

	s.rows = append(s.rows, row)
	s.rhs = append(s.rhs, -load)
}

func (s *system) solve() ([]float64, error) {
	n := len(s.unknowns)
	if len(s.rows) != n {
		if len(s.rows) > n {
			return nil, fmt.Errorf("%w: %d unknowns for %d equations", ErrStaticallyUnstable, n, len(s.rows))
		}
		return nil, fmt.Errorf("%w: %d unknowns for %d equations", ErrStaticallyIndeterminate, n, len(s.rows))
	}

	a := mat.NewDense(n, n, nil)
	for i, row := range s.rows {
		a.SetRow(i, row)
	}
	rhs := mat.NewVecDense(n, append([]float64(nil), s.rhs...))

	var x mat.VecDense
	if err := x.SolveVec(a, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeometricallyUnstable, err)
	}
	out := x.RawVector().Data
	if floats.HasNaN(out) {
		return nil, fmt.Errorf("%w: equilibrium system has no unique solution", ErrGeometricallyUnstable)
	}
	return out, nil
}

// solveGeneral assembles global equilibrium plus one condition per released
// component and solves it as a linear system.
func solveGeneral(b *beam.Beam) (*Reactions, error) {
	sys := newSystem(b.Supports())
	if len(sys.unknowns) == 0 {
		return nil, fmt.Errorf("%w: beam has no supports", ErrGeometricallyUnstable)
	}

	origin := b.Head().X()
	sys.addForceRow(b, true, wholeBeam)
	sys.addForceRow(b, false, wholeBeam)
	sys.addMomentRow(b, origin, wholeBeam)

	for _, r := range b.Releases() {
		left := leftOf(r.X())
		sys.addMomentRow(b, r.X(), left)
		if r.ReleaseEquations() > 1 {
			sys.addForceRow(b, true, left)
		}
	}

	values, err := sys.solve()
	if err != nil {
		return nil, err
	}

	out := NewReactions()
	for i, u := range sys.unknowns {
		var rx Reaction
		switch u.component {
		case componentHorizontal:
			rx.Horizontal = values[i]
		case componentVertical:
			rx.Vertical = values[i]
		case componentMoment:
			rx.Moment = values[i]
		}
		out.Accumulate(u.support, rx)
	}
	return out, nil
}
