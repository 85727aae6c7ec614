package beam

import (
	"fmt"
	"math"
)

// Position is a coordinate along the beam. Both components are non-negative.
type Position struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

func (p Position) validate() error {
	if p.X < 0 {
		return &ValidationError{Field: "x", Message: fmt.Sprintf("cannot be negative (%.3f)", p.X)}
	}
	if p.Y < 0 {
		return &ValidationError{Field: "y", Message: fmt.Sprintf("cannot be negative (%.3f)", p.Y)}
	}
	return nil
}

// DefaultAngle is the inclination of a purely vertical point load (degrees).
const DefaultAngle = 90.0

// horizontalTolerance clamps round-off in cos(90°) to an exact zero.
const horizontalTolerance = 0.001

// PointLoad represents a concentrated force.
// Negative magnitudes act downward.
type PointLoad struct {
	Magnitude float64  // force
	Angle     float64  // inclination from the beam axis (degrees)
	Position  Position // overwritten with the node coordinate on attachment
}

// NewPointLoad creates a vertical point load.
func NewPointLoad(magnitude float64) *PointLoad {
	return &PointLoad{Magnitude: magnitude, Angle: DefaultAngle}
}

// NewInclinedPointLoad creates a point load inclined at angle degrees.
func NewInclinedPointLoad(magnitude, angle float64) *PointLoad {
	return &PointLoad{Magnitude: magnitude, Angle: angle}
}

func (p *PointLoad) radians() float64 {
	return p.Angle / 180 * math.Pi
}

// Horizontal returns the component along the beam axis.
func (p *PointLoad) Horizontal() float64 {
	h := p.Magnitude * math.Cos(p.radians())
	if math.Abs(h) < horizontalTolerance {
		return 0
	}
	return h
}

// Vertical returns the component normal to the beam axis.
func (p *PointLoad) Vertical() float64 {
	return p.Magnitude * math.Sin(p.radians())
}

// X is the load coordinate.
func (p *PointLoad) X() float64 { return p.Position.X }

func (p *PointLoad) String() string {
	return fmt.Sprintf("PointLoad(magnitude=%.3f, angle=%.1f, at=%s)", p.Magnitude, p.Angle, p.Position)
}

// pointLoadFromComponents rebuilds a load from its horizontal and vertical parts.
func pointLoadFromComponents(h, v float64) *PointLoad {
	// Keep a vertical load expressed as a signed magnitude at 90°.
	if h == 0 {
		return &PointLoad{Magnitude: v, Angle: DefaultAngle}
	}
	return &PointLoad{Magnitude: math.Hypot(h, v), Angle: math.Atan2(v, h) * 180 / math.Pi}
}

// CombinePointLoads returns a single load with the summed components of a and b.
// Either argument may be nil.
func CombinePointLoads(a, b *PointLoad) *PointLoad {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		c := *b
		return &c
	case b == nil:
		c := *a
		return &c
	}
	return pointLoadFromComponents(a.Horizontal()+b.Horizontal(), a.Vertical()+b.Vertical())
}

// DistributedLoad represents a uniformly distributed load starting at its node.
type DistributedLoad struct {
	Magnitude float64 // force per unit length, negative downward
	Length    float64
	Start     float64 // pinned to the node X on attachment
}

// NewDistributedLoad creates a uniform load of the given intensity and length.
func NewDistributedLoad(magnitude, length float64) *DistributedLoad {
	return &DistributedLoad{Magnitude: magnitude, Length: length}
}

// Centroid is the distance from Start to the resultant.
func (d *DistributedLoad) Centroid() float64 {
	return d.Length / 2
}

// TotalForce is the resultant of the load.
func (d *DistributedLoad) TotalForce() float64 {
	return d.Magnitude * d.Length
}

// End is the coordinate where the load stops.
func (d *DistributedLoad) End() float64 {
	return d.Start + d.Length
}

// Clip returns the portion of the load inside [lower, upper], or nil when they do not overlap.
func (d *DistributedLoad) Clip(lower, upper float64) *DistributedLoad {
	start := math.Max(d.Start, lower)
	end := math.Min(d.End(), upper)
	if end <= start {
		return nil
	}
	return &DistributedLoad{Magnitude: d.Magnitude, Length: end - start, Start: start}
}

func (d *DistributedLoad) String() string {
	return fmt.Sprintf("DistributedLoad(magnitude=%.3f, length=%.3f, start=%.3f)", d.Magnitude, d.Length, d.Start)
}

// PointMoment represents an applied couple.
// Positive is clockwise, negative is counter-clockwise.
type PointMoment struct {
	Magnitude float64
	Position  Position
}

// NewPointMoment creates an applied couple.
func NewPointMoment(magnitude float64) *PointMoment {
	return &PointMoment{Magnitude: magnitude}
}

// X is the moment coordinate.
func (m *PointMoment) X() float64 { return m.Position.X }

func (m *PointMoment) String() string {
	return fmt.Sprintf("PointMoment(magnitude=%.3f, at=%s)", m.Magnitude, m.Position)
}
