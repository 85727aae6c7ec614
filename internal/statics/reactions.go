package statics

import (
	"sort"

	"github.com/google/uuid"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Reaction holds the resolved components of one support.
// Forces are positive upward / to the right, moments positive clockwise.
type Reaction struct {
	Vertical   float64
	Horizontal float64
	Moment     float64
}

// Plus returns the component-wise sum.
func (r Reaction) Plus(o Reaction) Reaction {
	return Reaction{
		Vertical:   r.Vertical + o.Vertical,
		Horizontal: r.Horizontal + o.Horizontal,
		Moment:     r.Moment + o.Moment,
	}
}

// Entry pairs a support with its reaction.
type Entry struct {
	Support  *beam.Support
	Reaction Reaction
}

// Reactions is the solver output, keyed by support identity.
type Reactions struct {
	values   map[uuid.UUID]Reaction
	supports map[uuid.UUID]*beam.Support
}

// NewReactions creates an empty result.
func NewReactions() *Reactions {
	return &Reactions{
		values:   make(map[uuid.UUID]Reaction),
		supports: make(map[uuid.UUID]*beam.Support),
	}
}

// Set stores the reaction of s, replacing any previous value.
func (r *Reactions) Set(s *beam.Support, rx Reaction) {
	r.values[s.ID] = rx
	r.supports[s.ID] = s
}

// Accumulate adds rx to the reaction already stored for s.
func (r *Reactions) Accumulate(s *beam.Support, rx Reaction) {
	r.Set(s, r.values[s.ID].Plus(rx))
}

// Add merges other into r, summing reactions of shared supports.
func (r *Reactions) Add(other *Reactions) {
	for id, rx := range other.values {
		r.Accumulate(other.supports[id], rx)
	}
}

// For returns the reaction of s.
func (r *Reactions) For(s *beam.Support) (Reaction, bool) {
	rx, ok := r.values[s.ID]
	return rx, ok
}

// Len returns the number of supports with a reaction.
func (r *Reactions) Len() int { return len(r.values) }

// Sum returns the resultant of all reactions (moments are summed without transfer).
func (r *Reactions) Sum() Reaction {
	var total Reaction
	for _, rx := range r.values {
		total = total.Plus(rx)
	}
	return total
}

// Entries returns the reactions ordered by support coordinate.
func (r *Reactions) Entries() []Entry {
	out := make([]Entry, 0, len(r.values))
	for id, rx := range r.values {
		out = append(out, Entry{Support: r.supports[id], Reaction: rx})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Support.X() < out[j].Support.X()
	})
	return out
}
