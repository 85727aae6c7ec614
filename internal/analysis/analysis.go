// Package analysis runs the full pipeline on a beam: classification,
// reactions and internal force distributions.
package analysis

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/forces"
	"github.com/alexiusacademia/gobeam/internal/logging"
	"github.com/alexiusacademia/gobeam/internal/statics"
)

// Method is the way the reactions were obtained
type Method string

const (
	Equilibrium Method = "equilibrium"
	ThreeMoment Method = "three-moment"
)

// Summary is the static classification of a beam
type Summary struct {
	Reactions        int
	ReleaseEquations int
	Degree           int
	Classification   beam.Classification
	Stable           bool
}

// Classify summarizes the determinacy of b.
func Classify(b *beam.Beam) Summary {
	return Summary{
		Reactions:        b.TotalSupportReactions(),
		ReleaseEquations: b.ReleaseEquations(),
		Degree:           b.DegreeOfIndeterminacy(),
		Classification:   b.Classify(),
		Stable:           b.IsGeometricallyStable(),
	}
}

// Result holds everything computed for one beam
type Result struct {
	Beam       *beam.Beam
	Summary    Summary
	Method     Method
	Mode       statics.Mode // set for Equilibrium
	Reactions  *statics.Reactions
	Continuous *statics.ContinuousResult // set for ThreeMoment

	Bending   []forces.Segment
	Shear     []forces.Segment
	MaxMoment forces.Extreme
	MaxShear  forces.Extreme
}

// Option configures Run
type Option func(*runner)

type runner struct {
	logger *slog.Logger
}

// WithLogger passes a logger down to the solvers.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// Solve computes the reactions only.
func Solve(b *beam.Beam, opts ...Option) (*Result, error) {
	r := &runner{logger: logging.Discard()}
	for _, opt := range opts {
		opt(r)
	}
	return r.reactions(b)
}

// Run computes reactions, bending and shear.
func Run(b *beam.Beam, opts ...Option) (*Result, error) {
	r := &runner{logger: logging.Discard()}
	for _, opt := range opts {
		opt(r)
	}

	res, err := r.reactions(b)
	if err != nil {
		return nil, err
	}

	calc := forces.NewCalculator(b, res.Reactions, forces.WithLogger(r.logger))
	if res.Bending, err = calc.CalculateBending(); err != nil {
		return nil, err
	}
	if res.Shear, err = calc.CalculateShear(); err != nil {
		return nil, err
	}
	res.MaxMoment, _ = forces.MaxAbs(res.Bending)
	res.MaxShear, _ = forces.MaxAbs(res.Shear)
	return res, nil
}

func (r *runner) reactions(b *beam.Beam) (*Result, error) {
	if b.IsEmpty() {
		return nil, beam.ErrEmptyBeam
	}
	res := &Result{Beam: b, Summary: Classify(b)}
	log := r.logger.With("beam", b.Name)

	checkErr := statics.CheckDeterminate(b)
	if checkErr == nil {
		solver := statics.NewDeterminateSolver(b, statics.WithLogger(r.logger))
		reactions, err := solver.Solve()
		if err != nil {
			return nil, err
		}
		res.Method, res.Mode, res.Reactions = Equilibrium, solver.Mode(), reactions
		log.Info("beam solved", "method", res.Method, "mode", res.Mode)
		return res, nil
	}

	if !errors.Is(checkErr, statics.ErrStaticallyIndeterminate) {
		return nil, checkErr
	}
	cont, err := statics.SolveContinuous(b, statics.WithLogger(r.logger))
	if errors.Is(err, statics.ErrNotContinuous) {
		return nil, fmt.Errorf("%w (%v)", checkErr, err)
	}
	if err != nil {
		return nil, err
	}

	res.Method, res.Continuous, res.Reactions = ThreeMoment, cont, cont.Reactions
	log.Info("beam solved", "method", res.Method, "mb", cont.Moments.Mb)
	return res, nil
}
