package forces

import (
	"errors"
	"log/slog"
	"math"
	"sort"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/logging"
	"github.com/alexiusacademia/gobeam/internal/statics"
)

// ErrNotSolved is returned when results are read before they are calculated.
var ErrNotSolved = errors.New("bending and shear have not been calculated")

// Segment is one piece of a distribution. Bounds are measured from the first node.
type Segment struct {
	GlobalLower  float64
	GlobalUpper  float64
	ValueAtLower float64
	ValueAtUpper float64
	Expression   Polynomial
}

// Length of the segment.
func (s Segment) Length() float64 { return s.GlobalUpper - s.GlobalLower }

// At evaluates the segment at a global coordinate.
func (s Segment) At(x float64) float64 {
	return s.Expression.Eval(x - s.GlobalLower)
}

// Calculator builds the bending moment and shear force expressions of a solved beam.
type Calculator struct {
	beam      *beam.Beam
	reactions *statics.Reactions
	logger    *slog.Logger

	solved  bool
	bending []Segment
	shear   []Segment
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCalculator creates a calculator for b loaded by the given support reactions.
func NewCalculator(b *beam.Beam, reactions *statics.Reactions, opts ...Option) *Calculator {
	c := &Calculator{beam: b, reactions: reactions, logger: logging.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CalculateBending solves the beam if needed and returns the bending segments.
func (c *Calculator) CalculateBending() ([]Segment, error) {
	if err := c.solve(); err != nil {
		return nil, err
	}
	return c.bending, nil
}

// CalculateShear solves the beam if needed and returns the shear segments.
func (c *Calculator) CalculateShear() ([]Segment, error) {
	if err := c.solve(); err != nil {
		return nil, err
	}
	return c.shear, nil
}

// BendingEquations returns the cached bending segments.
func (c *Calculator) BendingEquations() ([]Segment, error) {
	if !c.solved {
		return nil, ErrNotSolved
	}
	return c.bending, nil
}

// ShearEquations returns the cached shear segments.
func (c *Calculator) ShearEquations() ([]Segment, error) {
	if !c.solved {
		return nil, ErrNotSolved
	}
	return c.shear, nil
}

// coincident is the distance under which two coordinates are the same point.
const coincident = 1e-9

// pointForce is a vertical force at a coordinate.
type pointForce struct {
	x, v float64
}

// contributions holds every load already passed while walking the beam.
type contributions struct {
	forces      []pointForce
	couples     float64
	distributed []*beam.DistributedLoad
}

// at adds the loads and reaction carried by n.
func (a *contributions) at(n *beam.Node, reactions *statics.Reactions) {
	x := n.X()
	if p := n.PointLoad; p != nil {
		a.forces = append(a.forces, pointForce{x: x, v: p.Vertical()})
	}
	if m := n.PointMoment; m != nil {
		a.couples += m.Magnitude
	}
	if d := n.DistributedLoad; d != nil {
		a.distributed = append(a.distributed, d)
	}
	if s := n.Support; s != nil && !s.Internal && reactions != nil {
		if r, ok := reactions.For(s); ok {
			a.forces = append(a.forces, pointForce{x: x, v: r.Vertical})
			a.couples += r.Moment
		}
	}
}

// moment is the sagging moment over [x0, x1], written in the local coordinate.
func (a *contributions) moment(x0, x1 float64) Polynomial {
	p := Polynomial{C0: a.couples}
	for _, f := range a.forces {
		p = p.Add(Polynomial{C0: f.v * (x0 - f.x), C1: f.v})
	}
	for _, d := range a.distributed {
		w := d.Magnitude
		if d.End() > x1-coincident {
			u := x0 - d.Start
			p = p.Add(Polynomial{C0: w * u * u / 2, C1: w * u, C2: w / 2})
			continue
		}
		f := d.TotalForce()
		p = p.Add(Polynomial{C0: f * (x0 - d.Start - d.Centroid()), C1: f})
	}
	return p
}

// breakpoints are the node coordinates plus distributed load ends that fall between nodes.
func (c *Calculator) breakpoints() []float64 {
	var xs []float64
	for _, n := range c.beam.Nodes() {
		xs = append(xs, n.X())
	}
	head, tail := c.beam.Head().X(), c.beam.Tail().X()
	for _, d := range c.beam.DistributedLoads() {
		e := d.End()
		if e <= head+coincident || e >= tail-coincident {
			continue
		}
		dup := false
		for _, x := range xs {
			if math.Abs(x-e) < coincident {
				dup = true
				break
			}
		}
		if !dup {
			xs = append(xs, e)
		}
	}
	sort.Float64s(xs)
	return xs
}

func (c *Calculator) solve() error {
	if c.solved {
		return nil
	}
	if c.beam.IsEmpty() {
		return beam.ErrEmptyBeam
	}

	nodes := c.beam.Nodes()
	origin := nodes[0].X()
	xs := c.breakpoints()

	var acc contributions
	next := 0
	bending := make([]Segment, 0, len(xs))
	shear := make([]Segment, 0, len(xs))
	for i := 0; i+1 < len(xs); i++ {
		x0, x1 := xs[i], xs[i+1]
		for next < len(nodes) && nodes[next].X() <= x0 {
			acc.at(nodes[next], c.reactions)
			next++
		}

		m := acc.moment(x0, x1)
		v := m.Derivative()
		length := x1 - x0
		lower, upper := x0-origin, x1-origin

		bending = append(bending, Segment{
			GlobalLower:  lower,
			GlobalUpper:  upper,
			ValueAtLower: m.Eval(0),
			ValueAtUpper: m.Eval(length),
			Expression:   m,
		})
		shear = append(shear, Segment{
			GlobalLower:  lower,
			GlobalUpper:  upper,
			ValueAtLower: v.Eval(0),
			ValueAtUpper: v.Eval(length),
			Expression:   v,
		})
	}

	c.bending, c.shear = bending, shear
	c.solved = true
	c.logger.Debug("bending and shear calculated",
		"beam", c.beam.Name, "segments", len(bending))
	return nil
}

// Extreme is the location and value of the largest absolute value.
type Extreme struct {
	X     float64 `json:"x"`
	Value float64 `json:"value"`
}

// MaxAbs scans the segment ends and interior stationary points.
func MaxAbs(segments []Segment) (Extreme, bool) {
	var best Extreme
	found := false
	consider := func(x, v float64) {
		if !found || math.Abs(v) > math.Abs(best.Value) {
			best = Extreme{X: x, Value: v}
			found = true
		}
	}

	for _, s := range segments {
		consider(s.GlobalLower, s.ValueAtLower)
		consider(s.GlobalUpper, s.ValueAtUpper)
		if x, ok := s.Expression.Extremum(); ok && x > 0 && x < s.Length() {
			consider(s.GlobalLower+x, s.Expression.Eval(x))
		}
	}
	return best, found
}
