package beam

// Classification is the static classification of a beam
type Classification int

const (
	Unstable Classification = iota
	Determinate
	Indeterminate
)

func (c Classification) String() string {
	switch c {
	case Determinate:
		return "determinate"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unstable"
	}
}

// equilibriumEquations is the number of equations of a planar rigid body.
const equilibriumEquations = 3

// TotalSupportReactions is the sum of the restraint counts of the external supports.
func (b *Beam) TotalSupportReactions() int {
	r := 0
	for _, s := range b.Supports() {
		r += s.RestraintCount()
	}
	return r
}

// ReleaseEquations counts +1 per internal hinge and +2 per internal roller.
func (b *Beam) ReleaseEquations() int {
	n := 0
	for _, s := range b.Releases() {
		n += s.ReleaseEquations()
	}
	return n
}

// DegreeOfIndeterminacy is the reaction count in excess of the available equations.
// Negative values mean the beam is a mechanism.
func (b *Beam) DegreeOfIndeterminacy() int {
	return b.TotalSupportReactions() - (equilibriumEquations + b.ReleaseEquations())
}

// Classify compares the reaction count to 3 + release equations.
func (b *Beam) Classify() Classification {
	switch d := b.DegreeOfIndeterminacy(); {
	case d < 0:
		return Unstable
	case d == 0:
		return Determinate
	default:
		return Indeterminate
	}
}

// IsGeometricallyStable rejects support layouts that balance the count
// but still form a mechanism, such as rollers only.
func (b *Beam) IsGeometricallyStable() bool {
	if b.DegreeOfIndeterminacy() != 0 {
		return false
	}

	vertical, horizontal := 0, 0
	fixed := false
	for _, s := range b.Supports() {
		if s.RestrainsVertical() {
			vertical++
		}
		if s.RestrainsHorizontal() {
			horizontal++
		}
		if s.RestrainsMoment() {
			fixed = true
		}
	}

	if horizontal == 0 || vertical == 0 {
		return false
	}
	// A single vertical support only works when it also holds rotation.
	if vertical == 1 && !fixed {
		return false
	}
	return true
}
