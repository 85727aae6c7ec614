package statics

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// EndMoments are the bending moments at the three supports of a two-span beam.
// Sagging is positive.
type EndMoments struct {
	Ma float64
	Mb float64
	Mc float64
}

// SpanProperties describes one span of the three-moment equation.
// AreaMoment is the first moment of the free bending diagram, taken about
// the left support for the first span and about the right support for the second.
type SpanProperties struct {
	Lower      float64
	Upper      float64
	Length     float64
	AreaMoment float64
}

// ThreeMomentSolver reduces a two-span continuous beam to two simply
// supported beams loaded by their end moments.
type ThreeMomentSolver struct {
	beam *beam.Beam
	opts options
}

// NewThreeMomentSolver creates a solver for b. The beam is never modified.
func NewThreeMomentSolver(b *beam.Beam, opts ...Option) *ThreeMomentSolver {
	return &ThreeMomentSolver{beam: b, opts: buildOptions(opts)}
}

// supports returns A, B and C with their node indices.
func (s *ThreeMomentSolver) supports() ([3]*beam.Support, [3]int, error) {
	var sup [3]*beam.Support
	var idx [3]int

	if n := len(s.beam.Releases()); n > 0 {
		return sup, idx, fmt.Errorf("%w: %d internal releases", ErrNotContinuous, n)
	}
	found := s.beam.Supports()
	if len(found) != 3 {
		return sup, idx, fmt.Errorf("%w: %d supports, need 3", ErrNotContinuous, len(found))
	}
	for i, sp := range found {
		if sp.RestrainsMoment() {
			return sup, idx, fmt.Errorf("%w: %s at x=%.3f", ErrNotContinuous, sp.Kind, sp.X())
		}
		if !sp.RestrainsVertical() {
			return sup, idx, fmt.Errorf("%w: support at x=%.3f does not restrain vertical movement", ErrNotContinuous, sp.X())
		}
		sup[i] = sp
		idx[i] = s.beam.IndexOf(sp)
	}
	return sup, idx, nil
}

// Moments solves the three-moment equation for the interior moment.
func (s *ThreeMomentSolver) Moments() (EndMoments, [2]SpanProperties, error) {
	var spans [2]SpanProperties
	sup, _, err := s.supports()
	if err != nil {
		return EndMoments{}, spans, err
	}

	xa, xb, xc := sup[0].X(), sup[1].X(), sup[2].X()
	l1, l2 := xb-xa, xc-xb
	spans[0] = SpanProperties{Lower: xa, Upper: xb, Length: l1}
	spans[1] = SpanProperties{Lower: xb, Upper: xc, Length: l2}

	var m EndMoments

	for _, p := range s.beam.PointLoads() {
		x, v := p.X(), p.Vertical()
		switch {
		case x < xa:
			m.Ma += v * (xa - x)
		case x < xb:
			spans[0].AreaMoment += pointLoadAreaMoment(v, x-xa, l1)
		case x <= xc:
			spans[1].AreaMoment += pointLoadAreaMoment(v, xc-x, l2)
		default:
			m.Mc += v * (x - xc)
		}
	}

	for _, pm := range s.beam.PointMoments() {
		x, c := pm.X(), pm.Magnitude
		switch {
		case x < xa:
			m.Ma += c
		case x < xb:
			a := x - xa
			spans[0].AreaMoment += c * (l1*l1 - 3*a*a) / 6
		case x <= xc:
			eta := xc - x
			spans[1].AreaMoment -= c * (l2*l2 - 3*eta*eta) / 6
		default:
			m.Mc -= c
		}
	}

	for _, d := range s.beam.DistributedLoads() {
		if over := d.Clip(d.Start, xa); over != nil {
			m.Ma += over.TotalForce() * (xa - (over.Start + over.Centroid()))
		}
		if in := d.Clip(xa, xb); in != nil {
			spans[0].AreaMoment += distributedAreaMoment(d.Magnitude, in.Start-xa, in.End()-xa, l1)
		}
		if in := d.Clip(xb, xc); in != nil {
			spans[1].AreaMoment += distributedAreaMoment(d.Magnitude, xc-in.End(), xc-in.Start, l2)
		}
		if over := d.Clip(xc, d.End()); over != nil {
			m.Mc += over.TotalForce() * (over.Start + over.Centroid() - xc)
		}
	}

	m.Mb = (-(m.Ma*l1 + m.Mc*l2) - 6*(spans[0].AreaMoment/l1+spans[1].AreaMoment/l2)) / (2 * (l1 + l2))

	s.opts.logger.Debug("three-moment end moments",
		"ma", m.Ma, "mb", m.Mb, "mc", m.Mc,
		"am1", spans[0].AreaMoment, "am2", spans[1].AreaMoment)
	return m, spans, nil
}

// pointLoadAreaMoment is the first moment of the triangular free diagram of a
// point load about the end at distance a from the load.
func pointLoadAreaMoment(v, a, length float64) float64 {
	b := length - a
	peak := -v * a * b / length
	a1 := peak * a / 2
	a2 := peak * b / 2
	return a1*2*a/3 + a2*(a+b/3)
}

// distributedAreaMoment integrates the point-load result over a uniform load
// occupying [from, to], both measured from the reference end.
func distributedAreaMoment(w, from, to, length float64) float64 {
	g := func(t float64) float64 {
		return length*length*t*t/2 - t*t*t*t/4
	}
	return -w / 6 * (g(to) - g(from))
}

// SubBeams splits the beam at the interior support. The interior node is
// copied into both halves; its point load and moment stay with the right half.
// Overhangs are kept with the adjacent half.
func (s *ThreeMomentSolver) SubBeams() ([2]*beam.Beam, error) {
	var subs [2]*beam.Beam
	_, idx, err := s.supports()
	if err != nil {
		return subs, err
	}

	left := s.beam.Slice(0, idx[1]+1)
	right := s.beam.Slice(idx[1], s.beam.Len())

	mid := left.Tail()
	mid.PointLoad = nil
	mid.PointMoment = nil

	xb := mid.X()
	for _, n := range left.Nodes() {
		n.DistributedLoad = nil
	}
	for _, n := range right.Nodes() {
		n.DistributedLoad = nil
	}
	for _, d := range s.beam.DistributedLoads() {
		if part := d.Clip(d.Start, xb); part != nil {
			if err := attachDistributed(left, part); err != nil {
				return subs, err
			}
		}
		if part := d.Clip(xb, d.End()); part != nil {
			if err := attachDistributed(right, part); err != nil {
				return subs, err
			}
		}
	}

	subs[0], subs[1] = left, right
	return subs, nil
}

// attachDistributed places d on the node at its start coordinate. Two loads
// of the same extent on one node are merged.
func attachDistributed(b *beam.Beam, d *beam.DistributedLoad) error {
	for _, n := range b.Nodes() {
		if n.X() != d.Start {
			continue
		}
		if cur := n.DistributedLoad; cur != nil {
			if math.Abs(cur.Length-d.Length) > 1e-9 {
				return &beam.ValidationError{
					Field:   "distributed load",
					Message: fmt.Sprintf("node %s already carries a load of a different length", n.Name),
				}
			}
			cur.Magnitude += d.Magnitude
			return nil
		}
		c := *d
		n.DistributedLoad = &c
		return nil
	}
	return &beam.ValidationError{
		Field:   "distributed load",
		Message: fmt.Sprintf("no node at x=%.3f", d.Start),
	}
}

// Solve returns the two simply supported halves with the end moments applied
// as couples and the overhangs folded onto the outer supports.
func (s *ThreeMomentSolver) Solve() ([2]*beam.Beam, error) {
	subs, err := s.SubBeams()
	if err != nil {
		return subs, err
	}
	m, _, err := s.Moments()
	if err != nil {
		return subs, err
	}

	left, right := subs[0], subs[1]
	if err := foldLeftOverhang(left); err != nil {
		return subs, err
	}
	if err := foldRightOverhang(right); err != nil {
		return subs, err
	}

	addCouple(left.Head(), m.Ma)
	addCouple(left.Tail(), -m.Mb)
	addCouple(right.Head(), m.Mb)
	addCouple(right.Tail(), -m.Mc)

	s.opts.logger.Debug("three-moment sub-beams",
		"left", left.String(), "right", right.String())
	return subs, nil
}

// foldLeftOverhang removes the nodes ahead of the first support and moves
// their force resultant onto it.
func foldLeftOverhang(b *beam.Beam) error {
	supports := b.Supports()
	if len(supports) == 0 {
		return fmt.Errorf("%w: no support in the left span", ErrNotContinuous)
	}
	xa := supports[0].X()

	var resultant *beam.PointLoad
	var carried []*beam.DistributedLoad
	for b.Head().X() < xa {
		n, err := b.RemoveFirstNode()
		if err != nil {
			return err
		}
		resultant = beam.CombinePointLoads(resultant, n.PointLoad)
		if d := n.DistributedLoad; d != nil {
			if over := d.Clip(d.Start, xa); over != nil {
				resultant = beam.CombinePointLoads(resultant, beam.NewPointLoad(over.TotalForce()))
			}
			if in := d.Clip(xa, d.End()); in != nil {
				carried = append(carried, in)
			}
		}
	}

	transfer(b.Head(), resultant)
	for _, d := range carried {
		if err := attachDistributed(b, d); err != nil {
			return err
		}
	}
	return nil
}

// foldRightOverhang removes the nodes past the last support and moves their
// force resultant onto it.
func foldRightOverhang(b *beam.Beam) error {
	supports := b.Supports()
	if len(supports) == 0 {
		return fmt.Errorf("%w: no support in the right span", ErrNotContinuous)
	}
	xc := supports[len(supports)-1].X()

	var resultant *beam.PointLoad
	for b.Tail().X() > xc {
		n, err := b.RemoveLastNode()
		if err != nil {
			return err
		}
		resultant = beam.CombinePointLoads(resultant, n.PointLoad)
		if d := n.DistributedLoad; d != nil {
			resultant = beam.CombinePointLoads(resultant, beam.NewPointLoad(d.TotalForce()))
		}
	}
	// Loads that start inside the span and run past the last support.
	for _, n := range b.Nodes() {
		d := n.DistributedLoad
		if d == nil || d.End() <= xc {
			continue
		}
		over := d.Clip(xc, d.End())
		resultant = beam.CombinePointLoads(resultant, beam.NewPointLoad(over.TotalForce()))
		d.Length = xc - d.Start
	}

	transfer(b.Tail(), resultant)
	return nil
}

func transfer(n *beam.Node, p *beam.PointLoad) {
	if p == nil {
		return
	}
	combined := beam.CombinePointLoads(n.PointLoad, p)
	combined.Position = n.Position
	n.PointLoad = combined
}

func addCouple(n *beam.Node, magnitude float64) {
	if magnitude == 0 {
		return
	}
	if n.PointMoment != nil {
		magnitude += n.PointMoment.Magnitude
	}
	n.PointMoment = &beam.PointMoment{Magnitude: magnitude, Position: n.Position}
}
