package statics

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Mode is the equilibrium strategy picked by the determinate solver
type Mode string

const (
	ModeFixedEnd    Mode = "fixed-end"
	ModeHingeRoller Mode = "hinge-roller"
	ModeGeneral     Mode = "general"
)

// DeterminateSolver resolves the reactions of a statically determinate beam.
type DeterminateSolver struct {
	beam *beam.Beam
	opts options
}

// NewDeterminateSolver creates a solver for b. The beam is never modified.
func NewDeterminateSolver(b *beam.Beam, opts ...Option) *DeterminateSolver {
	return &DeterminateSolver{beam: b, opts: buildOptions(opts)}
}

// CheckDeterminate returns the error that keeps b from being solved by equilibrium alone.
func CheckDeterminate(b *beam.Beam) error {
	switch b.Classify() {
	case beam.Unstable:
		return fmt.Errorf("%w: %d reactions for %d equations",
			ErrStaticallyUnstable, b.TotalSupportReactions(), 3+b.ReleaseEquations())
	case beam.Indeterminate:
		return fmt.Errorf("%w: degree %d", ErrStaticallyIndeterminate, b.DegreeOfIndeterminacy())
	}
	if !b.IsGeometricallyStable() {
		return fmt.Errorf("%w: supports do not restrain every rigid body motion", ErrGeometricallyUnstable)
	}
	return nil
}

// Mode returns the strategy Solve will use.
func (s *DeterminateSolver) Mode() Mode {
	n := len(s.beam.Supports())
	switch {
	case len(s.beam.Releases()) > 0:
		return ModeGeneral
	case n == 1:
		return ModeFixedEnd
	case n == 2:
		return ModeHingeRoller
	default:
		return ModeGeneral
	}
}

// Solve computes the support reactions.
func (s *DeterminateSolver) Solve() (*Reactions, error) {
	if s.opts.checkDeterminacy {
		if err := CheckDeterminate(s.beam); err != nil {
			return nil, err
		}
	}

	supports := s.beam.Supports()
	if len(supports) == 0 {
		return nil, fmt.Errorf("%w: beam has no supports", ErrGeometricallyUnstable)
	}

	mode := s.Mode()
	s.opts.logger.Debug("solving determinate beam",
		"beam", s.beam.Name,
		"mode", string(mode),
		"supports", len(supports),
		"releases", len(s.beam.Releases()),
	)

	switch mode {
	case ModeFixedEnd:
		return s.fixedEnd(supports[0])
	case ModeHingeRoller:
		return s.hingeRoller(supports[0], supports[1]), nil
	default:
		return solveGeneral(s.beam)
	}
}

// contribution is the share of one load class in a hinge-roller solution.
type contribution struct {
	va, vb, h float64
}

func (c contribution) plus(o contribution) contribution {
	return contribution{va: c.va + o.va, vb: c.vb + o.vb, h: c.h + o.h}
}

// pointLoadReactions takes moments of every point load about support A.
func (s *DeterminateSolver) pointLoadReactions(xa, xb float64) contribution {
	var sumV, sumH, sumM float64
	for _, p := range s.beam.PointLoads() {
		fy := -p.Vertical()
		fx := -p.Horizontal()

		sumV += fy
		sumH += fx
		sumM += fy * (p.X() - xa)
	}

	vb := sumM / (xb - xa)
	return contribution{va: sumV - vb, vb: vb, h: sumH}
}

// distributedLoadReactions replaces each load by its resultant at the centroid.
func (s *DeterminateSolver) distributedLoadReactions(xa, xb float64) contribution {
	var sumV, sumM float64
	for _, d := range s.beam.DistributedLoads() {
		total := -d.TotalForce()
		arm := d.Centroid() + (d.Start - xa)

		sumV += total
		sumM += total * arm
	}

	vb := sumM / (xb - xa)
	return contribution{va: sumV - vb, vb: vb}
}

// pointMomentReactions balances the applied couples with a vertical force pair.
func (s *DeterminateSolver) pointMomentReactions(xa, xb float64) contribution {
	var sumM float64
	for _, m := range s.beam.PointMoments() {
		sumM += m.Magnitude
	}

	vb := sumM / (xb - xa)
	return contribution{va: -vb, vb: vb}
}

func (s *DeterminateSolver) hingeRoller(a, b *beam.Support) *Reactions {
	xa, xb := a.X(), b.X()

	total := s.pointLoadReactions(xa, xb).
		plus(s.distributedLoadReactions(xa, xb)).
		plus(s.pointMomentReactions(xa, xb))

	out := NewReactions()
	ra := Reaction{Vertical: total.va}
	rb := Reaction{Vertical: total.vb}

	// Only one support is assumed to carry the horizontal reaction.
	if !a.RestrainsHorizontal() && b.RestrainsHorizontal() {
		rb.Horizontal = total.h
	} else {
		ra.Horizontal = total.h
	}

	out.Set(a, ra)
	out.Set(b, rb)

	s.opts.logger.Debug("hinge-roller reactions",
		"va", total.va, "vb", total.vb, "h", total.h)
	return out
}

func (s *DeterminateSolver) fixedEnd(support *beam.Support) (*Reactions, error) {
	if !support.RestrainsMoment() {
		return nil, fmt.Errorf("%w: a single %s cannot restrain rotation", ErrGeometricallyUnstable, support.Kind)
	}
	xs := support.X()

	var vertical, horizontal, moment float64
	for _, p := range s.beam.PointLoads() {
		vertical -= p.Vertical()
		horizontal -= p.Horizontal()
		moment += p.Vertical() * (p.X() - xs)
	}
	for _, d := range s.beam.DistributedLoads() {
		vertical -= d.TotalForce()
		moment += d.TotalForce() * (d.Centroid() + (d.Start - xs))
	}
	for _, m := range s.beam.PointMoments() {
		moment -= m.Magnitude
	}

	out := NewReactions()
	out.Set(support, Reaction{Vertical: vertical, Horizontal: horizontal, Moment: moment})

	s.opts.logger.Debug("fixed-end reactions",
		"v", vertical, "h", horizontal, "m", moment)
	return out, nil
}
