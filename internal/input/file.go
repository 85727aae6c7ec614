// Package input reads beam definitions from JSON, YAML, TOML and xlsx files.
package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Format identifies a beam definition encoding
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
	XLSX Format = "xlsx"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".xlsx":
		return XLSX, nil
	}
	return "", fmt.Errorf("unsupported beam file %q (use .json, .yaml, .toml or .xlsx)", path)
}

// File is a beam definition as written on disk
type File struct {
	Name     string        `json:"name" yaml:"name" toml:"name"`
	Material *MaterialSpec `json:"material,omitempty" yaml:"material,omitempty" toml:"material,omitempty"`
	Nodes    []NodeSpec    `json:"nodes" yaml:"nodes" toml:"nodes"`
}

// MaterialSpec overrides material constants; zero fields keep the defaults
type MaterialSpec struct {
	E     float64 `json:"e,omitempty" yaml:"e,omitempty" toml:"e,omitempty"`
	Alpha float64 `json:"alpha,omitempty" yaml:"alpha,omitempty" toml:"alpha,omitempty"`
	I     float64 `json:"i,omitempty" yaml:"i,omitempty" toml:"i,omitempty"`
	Area  float64 `json:"area,omitempty" yaml:"area,omitempty" toml:"area,omitempty"`
}

// NodeSpec is one node with its optional attachments
type NodeSpec struct {
	Name            string               `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	X               float64              `json:"x" yaml:"x" toml:"x"`
	Y               float64              `json:"y,omitempty" yaml:"y,omitempty" toml:"y,omitempty"`
	Support         *SupportSpec         `json:"support,omitempty" yaml:"support,omitempty" toml:"support,omitempty"`
	PointLoad       *PointLoadSpec       `json:"pointLoad,omitempty" yaml:"pointLoad,omitempty" toml:"pointLoad,omitempty"`
	DistributedLoad *DistributedLoadSpec `json:"distributedLoad,omitempty" yaml:"distributedLoad,omitempty" toml:"distributedLoad,omitempty"`
	PointMoment     *PointMomentSpec     `json:"pointMoment,omitempty" yaml:"pointMoment,omitempty" toml:"pointMoment,omitempty"`
}

// SupportSpec describes a support by its restraints, or an internal release.
// Internal is "hinge" or "roller"; restraint flags are ignored for releases.
type SupportSpec struct {
	RX       bool   `json:"rx,omitempty" yaml:"rx,omitempty" toml:"rx,omitempty"`
	RY       bool   `json:"ry,omitempty" yaml:"ry,omitempty" toml:"ry,omitempty"`
	RM       bool   `json:"rm,omitempty" yaml:"rm,omitempty" toml:"rm,omitempty"`
	Internal string `json:"internal,omitempty" yaml:"internal,omitempty" toml:"internal,omitempty"`
}

// PointLoadSpec is a concentrated force; Angle defaults to 90 degrees
type PointLoadSpec struct {
	Magnitude float64  `json:"magnitude" yaml:"magnitude" toml:"magnitude"`
	Angle     *float64 `json:"angle,omitempty" yaml:"angle,omitempty" toml:"angle,omitempty"`
}

// DistributedLoadSpec is a uniform load starting at the node
type DistributedLoadSpec struct {
	Magnitude float64 `json:"magnitude" yaml:"magnitude" toml:"magnitude"`
	Length    float64 `json:"length" yaml:"length" toml:"length"`
}

// PointMomentSpec is an applied couple, clockwise positive
type PointMomentSpec struct {
	Magnitude float64 `json:"magnitude" yaml:"magnitude" toml:"magnitude"`
}

// Decode reads a text-encoded beam definition. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*File, error) {
	var f File
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	case XLSX:
		return ReadSpreadsheet(r)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Encode writes f in the given format.
func Encode(w io.Writer, f *File, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(f)
	case XLSX:
		return WriteSpreadsheet(w, f)
	}
	return fmt.Errorf("unsupported format %q", format)
}

// Example is a two-span beam with every kind of attachment, used as a
// starting template.
func Example() *File {
	angle := 60.0
	return &File{
		Name: "example",
		Nodes: []NodeSpec{
			{Name: "A", X: 0, Support: &SupportSpec{RX: true, RY: true}, DistributedLoad: &DistributedLoadSpec{Magnitude: -10, Length: 4}},
			{Name: "P", X: 2, PointLoad: &PointLoadSpec{Magnitude: -20, Angle: &angle}},
			{Name: "B", X: 4, Support: &SupportSpec{RY: true}},
			{Name: "M", X: 6, PointMoment: &PointMomentSpec{Magnitude: 5}},
			{Name: "C", X: 8, Support: &SupportSpec{RY: true}},
		},
	}
}

// LoadFile reads and validates a beam definition, choosing the format by extension.
func LoadFile(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(data), format)
}

// Load reads path and builds the beam. defaults supplies material constants
// the file leaves out.
func Load(path string, defaults beam.Material) (*beam.Beam, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return f.Build(defaults)
}

// Validate checks the definition before any beam is built
func (f *File) Validate() error {
	if len(f.Nodes) == 0 {
		return &beam.ValidationError{Field: "nodes", Message: "beam must have at least one node"}
	}
	for i, n := range f.Nodes {
		if s := n.Support; s != nil {
			switch s.Internal {
			case "", "hinge", "roller":
			default:
				return &beam.ValidationError{
					Field:   fmt.Sprintf("nodes[%d].support.internal", i),
					Message: fmt.Sprintf("must be hinge or roller, got %q", s.Internal),
				}
			}
		}
		if d := n.DistributedLoad; d != nil && d.Length <= 0 {
			return &beam.ValidationError{
				Field:   fmt.Sprintf("nodes[%d].distributedLoad.length", i),
				Message: fmt.Sprintf("must be positive (%.3f)", d.Length),
			}
		}
	}
	return nil
}

func (s *SupportSpec) build() (*beam.Support, error) {
	switch s.Internal {
	case "hinge":
		return beam.NewInternalHinge(), nil
	case "roller":
		return beam.NewInternalRoller(), nil
	}
	return beam.NewSupport(s.RX, s.RY, s.RM)
}

// Build creates the beam described by f.
func (f *File) Build(defaults beam.Material) (*beam.Beam, error) {
	opts := []beam.Option{beam.WithName(f.Name), beam.WithMaterial(defaults)}
	if m := f.Material; m != nil {
		opts = append(opts, beam.WithMaterial(beam.Material{E: m.E, Alpha: m.Alpha, I: m.I, Area: m.Area}))
	}
	b := beam.New(opts...)

	for i, n := range f.Nodes {
		name := n.Name
		if name == "" {
			name = fmt.Sprintf("N%d", i+1)
		}

		var nodeOpts []beam.NodeOption
		if s := n.Support; s != nil {
			support, err := s.build()
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", name, err)
			}
			nodeOpts = append(nodeOpts, beam.WithSupport(support))
		}
		if p := n.PointLoad; p != nil {
			load := beam.NewPointLoad(p.Magnitude)
			if p.Angle != nil {
				load = beam.NewInclinedPointLoad(p.Magnitude, *p.Angle)
			}
			nodeOpts = append(nodeOpts, beam.WithPointLoad(load))
		}
		if d := n.DistributedLoad; d != nil {
			nodeOpts = append(nodeOpts, beam.WithDistributedLoad(beam.NewDistributedLoad(d.Magnitude, d.Length)))
		}
		if m := n.PointMoment; m != nil {
			nodeOpts = append(nodeOpts, beam.WithPointMoment(beam.NewPointMoment(m.Magnitude)))
		}

		if err := b.AppendNode(name, n.X, n.Y, nodeOpts...); err != nil {
			return nil, err
		}
	}
	return b, nil
}
