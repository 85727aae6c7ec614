package beam

import (
	"fmt"

	"github.com/google/uuid"
)

// SupportKind identifies the support variant
type SupportKind int

const (
	Fixed SupportKind = iota + 1
	Hinge
	Roller
)

func (k SupportKind) String() string {
	switch k {
	case Fixed:
		return "Fixed"
	case Hinge:
		return "Hinge"
	case Roller:
		return "Roller"
	default:
		return fmt.Sprintf("SupportKind(%d)", int(k))
	}
}

// Direction is the direction a roller restrains
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Support represents a Fixed, Hinge or Roller support.
//
// Internal supports are release markers (internal hinge or internal roller)
// that break moment/shear continuity but provide no external reaction.
type Support struct {
	ID        uuid.UUID
	Kind      SupportKind
	Direction Direction // restrained direction, Roller only
	Internal  bool
	Position  Position
}

// NewFixed creates a fixed support (horizontal, vertical and moment restraint)
func NewFixed() *Support {
	return &Support{ID: uuid.New(), Kind: Fixed}
}

// NewHinge creates a pinned support (horizontal and vertical restraint)
func NewHinge() *Support {
	return &Support{ID: uuid.New(), Kind: Hinge}
}

// NewRoller creates a roller restraining a single direction
func NewRoller(d Direction) *Support {
	return &Support{ID: uuid.New(), Kind: Roller, Direction: d}
}

// NewInternalHinge creates a moment release marker (one release equation)
func NewInternalHinge() *Support {
	return &Support{ID: uuid.New(), Kind: Hinge, Internal: true}
}

// NewInternalRoller creates a moment and shear release marker (two release equations)
func NewInternalRoller() *Support {
	return &Support{ID: uuid.New(), Kind: Roller, Internal: true}
}

// NewSupport builds a support from its restraint flags.
// rx, ry and rm are the horizontal, vertical and rotational restraints.
// A single translational restraint is a roller whatever rm says.
func NewSupport(rx, ry, rm bool) (*Support, error) {
	switch {
	case rx && ry && rm:
		return NewFixed(), nil
	case rx && ry:
		return NewHinge(), nil
	case rx:
		return NewRoller(Horizontal), nil
	case ry:
		return NewRoller(Vertical), nil
	}
	return nil, &ValidationError{
		Field:   "support",
		Message: fmt.Sprintf("no support restrains rx=%t ry=%t rm=%t", rx, ry, rm),
	}
}

// RestraintCount is the number of reaction components the support provides.
func (s *Support) RestraintCount() int {
	switch s.Kind {
	case Fixed:
		return 3
	case Hinge:
		return 2
	default:
		return 1
	}
}

// ReleaseEquations is the number of extra equilibrium conditions of an internal marker.
func (s *Support) ReleaseEquations() int {
	if !s.Internal {
		return 0
	}
	if s.Kind == Roller {
		return 2
	}
	return 1
}

// RestrainsVertical reports whether the support provides a vertical reaction.
func (s *Support) RestrainsVertical() bool {
	switch s.Kind {
	case Fixed, Hinge:
		return true
	default:
		return s.Direction == Vertical
	}
}

// RestrainsHorizontal reports whether the support provides a horizontal reaction.
func (s *Support) RestrainsHorizontal() bool {
	switch s.Kind {
	case Fixed, Hinge:
		return true
	default:
		return s.Direction == Horizontal
	}
}

// RestrainsMoment reports whether the support provides a moment reaction.
func (s *Support) RestrainsMoment() bool {
	return s.Kind == Fixed
}

// X is the support coordinate.
func (s *Support) X() float64 { return s.Position.X }

func (s *Support) String() string {
	name := s.Kind.String()
	if s.Internal {
		name = "Internal" + name
	}
	if s.Kind == Roller && !s.Internal {
		return fmt.Sprintf("%s(%s, at=%s)", name, s.Direction, s.Position)
	}
	return fmt.Sprintf("%s(at=%s)", name, s.Position)
}
