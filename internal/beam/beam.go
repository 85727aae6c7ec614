package beam

import (
	"fmt"
)

// Default material and section constants
const (
	DefaultModulusOfElasticity   = 20e-07
	DefaultThermalExpansionAlpha = 1.2e-05
	DefaultMomentOfInertia       = 1.000e-04
	DefaultCrossSectionalArea    = 1.000e-02
)

// Material holds the material and geometric constants of a beam
type Material struct {
	E     float64 // modulus of elasticity
	Alpha float64 // thermal expansion coefficient
	I     float64 // moment of inertia
	Area  float64 // cross-sectional area
}

// DefaultMaterial returns the engineering defaults.
func DefaultMaterial() Material {
	return Material{
		E:     DefaultModulusOfElasticity,
		Alpha: DefaultThermalExpansionAlpha,
		I:     DefaultMomentOfInertia,
		Area:  DefaultCrossSectionalArea,
	}
}

// Node is a point of the beam that may carry one load of each kind and one support.
type Node struct {
	Name            string
	Position        Position
	PointLoad       *PointLoad
	DistributedLoad *DistributedLoad
	PointMoment     *PointMoment
	Support         *Support
}

// X is the node coordinate.
func (n *Node) X() float64 { return n.Position.X }

func (n *Node) String() string {
	return fmt.Sprintf("Node(name=%s, x=%.3f, y=%.3f)", n.Name, n.Position.X, n.Position.Y)
}

// attach pins every attached item to the node coordinate.
func (n *Node) attach() {
	if n.PointLoad != nil {
		n.PointLoad.Position = n.Position
	}
	if n.DistributedLoad != nil {
		n.DistributedLoad.Start = n.Position.X
	}
	if n.PointMoment != nil {
		n.PointMoment.Position = n.Position
	}
	if n.Support != nil {
		n.Support.Position = n.Position
	}
}

func (n *Node) clone() *Node {
	c := &Node{Name: n.Name, Position: n.Position}
	if n.PointLoad != nil {
		pl := *n.PointLoad
		c.PointLoad = &pl
	}
	if n.DistributedLoad != nil {
		dl := *n.DistributedLoad
		c.DistributedLoad = &dl
	}
	if n.PointMoment != nil {
		pm := *n.PointMoment
		c.PointMoment = &pm
	}
	// Supports keep their identity so results of partial solves can be summed.
	c.Support = n.Support
	return c
}

// NodeOption attaches an item to a node.
type NodeOption func(*Node)

// WithPointLoad attaches a point load.
func WithPointLoad(p *PointLoad) NodeOption {
	return func(n *Node) { n.PointLoad = p }
}

// WithDistributedLoad attaches a distributed load starting at the node.
func WithDistributedLoad(d *DistributedLoad) NodeOption {
	return func(n *Node) { n.DistributedLoad = d }
}

// WithPointMoment attaches an applied couple.
func WithPointMoment(m *PointMoment) NodeOption {
	return func(n *Node) { n.PointMoment = m }
}

// WithSupport attaches a support or an internal release marker.
func WithSupport(s *Support) NodeOption {
	return func(n *Node) { n.Support = s }
}

// Beam is an ordered sequence of nodes with strictly increasing X.
type Beam struct {
	Name     string
	Material Material
	nodes    []*Node
}

// Option configures a Beam.
type Option func(*Beam)

// WithName sets a descriptive name.
func WithName(name string) Option {
	return func(b *Beam) { b.Name = name }
}

// WithMaterial overrides the default material constants. Zero fields keep their defaults.
func WithMaterial(m Material) Option {
	return func(b *Beam) {
		if m.E != 0 {
			b.Material.E = m.E
		}
		if m.Alpha != 0 {
			b.Material.Alpha = m.Alpha
		}
		if m.I != 0 {
			b.Material.I = m.I
		}
		if m.Area != 0 {
			b.Material.Area = m.Area
		}
	}
}

// New creates an empty beam.
func New(opts ...Option) *Beam {
	b := &Beam{Material: DefaultMaterial()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AppendNode adds a node after the current tail.
func (b *Beam) AppendNode(name string, x, y float64, opts ...NodeOption) error {
	pos := Position{X: x, Y: y}
	if err := pos.validate(); err != nil {
		return fmt.Errorf("node %q: %w", name, err)
	}
	if tail := b.Tail(); tail != nil && x <= tail.X() {
		return fmt.Errorf("node %q: %w", name, &ValidationError{
			Field:   "x",
			Message: fmt.Sprintf("%.3f must be greater than the previous node (%s at %.3f)", x, tail.Name, tail.X()),
		})
	}

	n := &Node{Name: name, Position: pos}
	for _, opt := range opts {
		opt(n)
	}
	if n.DistributedLoad != nil && n.DistributedLoad.Length <= 0 {
		return fmt.Errorf("node %q: %w", name, &ValidationError{
			Field:   "distributed load length",
			Message: fmt.Sprintf("must be positive (%.3f)", n.DistributedLoad.Length),
		})
	}
	n.attach()

	b.nodes = append(b.nodes, n)
	return nil
}

// RemoveFirstNode detaches and returns the head node.
func (b *Beam) RemoveFirstNode() (*Node, error) {
	if len(b.nodes) == 0 {
		return nil, ErrEmptyBeam
	}
	n := b.nodes[0]
	b.nodes = b.nodes[1:]
	return n, nil
}

// RemoveLastNode detaches and returns the tail node.
func (b *Beam) RemoveLastNode() (*Node, error) {
	if len(b.nodes) == 0 {
		return nil, ErrEmptyBeam
	}
	last := len(b.nodes) - 1
	n := b.nodes[last]
	b.nodes = b.nodes[:last]
	return n, nil
}

// Len returns the number of nodes.
func (b *Beam) Len() int { return len(b.nodes) }

// IsEmpty reports whether the beam has no nodes.
func (b *Beam) IsEmpty() bool { return len(b.nodes) == 0 }

// Node returns the i-th node.
func (b *Beam) Node(i int) *Node { return b.nodes[i] }

// Nodes returns the nodes in traversal order. The slice must not be modified.
func (b *Beam) Nodes() []*Node { return b.nodes }

// Head returns the first node, or nil.
func (b *Beam) Head() *Node {
	if len(b.nodes) == 0 {
		return nil
	}
	return b.nodes[0]
}

// Tail returns the last node, or nil.
func (b *Beam) Tail() *Node {
	if len(b.nodes) == 0 {
		return nil
	}
	return b.nodes[len(b.nodes)-1]
}

// Length is the distance between the first and last node.
func (b *Beam) Length() float64 {
	if len(b.nodes) < 2 {
		return 0
	}
	return b.Tail().X() - b.Head().X()
}

// Slice returns a new beam holding deep copies of nodes[from:to].
func (b *Beam) Slice(from, to int) *Beam {
	sub := &Beam{Name: b.Name, Material: b.Material}
	sub.nodes = make([]*Node, 0, to-from)
	for _, n := range b.nodes[from:to] {
		sub.nodes = append(sub.nodes, n.clone())
	}
	return sub
}

// Clone returns a deep copy. Supports keep their identity.
func (b *Beam) Clone() *Beam {
	return b.Slice(0, len(b.nodes))
}

func (b *Beam) String() string {
	return fmt.Sprintf("Beam(name=%s, nodes=%d, length=%.3f)", b.Name, len(b.nodes), b.Length())
}

// Supports returns the external supports in ascending X.
func (b *Beam) Supports() []*Support {
	var out []*Support
	for _, n := range b.nodes {
		if n.Support != nil && !n.Support.Internal {
			out = append(out, n.Support)
		}
	}
	return out
}

// Releases returns the internal release markers in ascending X.
func (b *Beam) Releases() []*Support {
	var out []*Support
	for _, n := range b.nodes {
		if n.Support != nil && n.Support.Internal {
			out = append(out, n.Support)
		}
	}
	return out
}

// PointLoads returns the attached point loads in ascending X.
func (b *Beam) PointLoads() []*PointLoad {
	var out []*PointLoad
	for _, n := range b.nodes {
		if n.PointLoad != nil {
			out = append(out, n.PointLoad)
		}
	}
	return out
}

// DistributedLoads returns the attached distributed loads in ascending start.
func (b *Beam) DistributedLoads() []*DistributedLoad {
	var out []*DistributedLoad
	for _, n := range b.nodes {
		if n.DistributedLoad != nil {
			out = append(out, n.DistributedLoad)
		}
	}
	return out
}

// PointMoments returns the attached couples in ascending X.
func (b *Beam) PointMoments() []*PointMoment {
	var out []*PointMoment
	for _, n := range b.nodes {
		if n.PointMoment != nil {
			out = append(out, n.PointMoment)
		}
	}
	return out
}

// IndexOf returns the index of the node holding s, or -1.
func (b *Beam) IndexOf(s *Support) int {
	for i, n := range b.nodes {
		if n.Support == s {
			return i
		}
	}
	return -1
}
