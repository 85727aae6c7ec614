package statics

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// ContinuousResult is the outcome of solving a two-span continuous beam.
type ContinuousResult struct {
	Moments      EndMoments
	Spans        [2]SpanProperties
	SubBeams     [2]*beam.Beam
	SubReactions [2]*Reactions
	Reactions    *Reactions
}

// SolveContinuous runs the three-moment solver, solves both halves by
// equilibrium and sums the reactions per support.
func SolveContinuous(b *beam.Beam, opts ...Option) (*ContinuousResult, error) {
	o := buildOptions(opts)
	tm := NewThreeMomentSolver(b, WithLogger(o.logger))

	moments, spans, err := tm.Moments()
	if err != nil {
		return nil, err
	}
	subs, err := tm.Solve()
	if err != nil {
		return nil, err
	}

	res := &ContinuousResult{Moments: moments, Spans: spans, SubBeams: subs}
	total := NewReactions()
	for i, sub := range subs {
		r, err := NewDeterminateSolver(sub, WithoutDeterminacyCheck(), WithLogger(o.logger)).Solve()
		if err != nil {
			return nil, fmt.Errorf("span %d: %w", i+1, err)
		}
		res.SubReactions[i] = r
		total.Add(r)
	}

	reactions, err := assignHorizontal(b, total)
	if err != nil {
		return nil, err
	}
	res.Reactions = reactions

	o.logger.Debug("continuous beam solved",
		"beam", b.Name, "mb", moments.Mb, "supports", reactions.Len())
	return res, nil
}

// assignHorizontal moves the whole horizontal reaction to the first support
// of b that restrains horizontal movement.
func assignHorizontal(b *beam.Beam, r *Reactions) (*Reactions, error) {
	var target *beam.Support
	for _, s := range b.Supports() {
		if s.RestrainsHorizontal() {
			target = s
			break
		}
	}

	h := r.Sum().Horizontal
	if target == nil {
		if math.Abs(h) > 1e-9 {
			return nil, fmt.Errorf("%w: no support restrains the horizontal load %.3f", ErrGeometricallyUnstable, h)
		}
		return r, nil
	}

	out := NewReactions()
	for _, e := range r.Entries() {
		rx := e.Reaction
		rx.Horizontal = 0
		out.Set(e.Support, rx)
	}
	out.Accumulate(target, Reaction{Horizontal: h})
	return out, nil
}
