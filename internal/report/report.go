// Package report renders analysis results as text tables, JSON and PDF.
package report

import (
	"encoding/json"
	"io"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/forces"
	"github.com/alexiusacademia/gobeam/internal/statics"
)

// ReactionRow is one support reaction in presentation order.
type ReactionRow struct {
	Node       string  `json:"node"`
	Support    string  `json:"support"`
	X          float64 `json:"x"`
	Vertical   float64 `json:"vertical"`
	Horizontal float64 `json:"horizontal"`
	Moment     float64 `json:"moment"`
}

// SegmentRow is one piece of a bending or shear distribution.
type SegmentRow struct {
	From       float64 `json:"from"`
	To         float64 `json:"to"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Expression string  `json:"expression"`
}

// Document is the serializable form of an analysis result.
type Document struct {
	Name             string          `json:"name"`
	Length           float64         `json:"length"`
	Reactions        int             `json:"reactionCount"`
	ReleaseEquations int             `json:"releaseEquations"`
	Degree           int             `json:"degreeOfIndeterminacy"`
	Classification   string          `json:"classification"`
	Stable           bool            `json:"geometricallyStable"`
	Method           string          `json:"method,omitempty"`
	Mode             string          `json:"mode,omitempty"`
	EndMoments       *EndMoments     `json:"endMoments,omitempty"`
	Supports         []ReactionRow   `json:"reactions,omitempty"`
	Bending          []SegmentRow    `json:"bending,omitempty"`
	Shear            []SegmentRow    `json:"shear,omitempty"`
	MaxMoment        *forces.Extreme `json:"maxMoment,omitempty"`
	MaxShear         *forces.Extreme `json:"maxShear,omitempty"`
}

// EndMoments are the three-moment results.
type EndMoments struct {
	Ma float64 `json:"ma"`
	Mb float64 `json:"mb"`
	Mc float64 `json:"mc"`
}

// NewDocument flattens res. Bending and shear are included only when computed.
func NewDocument(res *analysis.Result) *Document {
	b := res.Beam
	s := res.Summary
	doc := &Document{
		Name:             b.Name,
		Length:           b.Length(),
		Reactions:        s.Reactions,
		ReleaseEquations: s.ReleaseEquations,
		Degree:           s.Degree,
		Classification:   s.Classification.String(),
		Stable:           s.Stable,
		Method:           string(res.Method),
		Mode:             string(res.Mode),
	}
	if c := res.Continuous; c != nil {
		doc.EndMoments = &EndMoments{Ma: c.Moments.Ma, Mb: c.Moments.Mb, Mc: c.Moments.Mc}
	}
	if res.Reactions != nil {
		doc.Supports = reactionRows(b, res.Reactions)
	}
	if res.Bending != nil {
		doc.Bending = segmentRows(res.Bending)
		m := res.MaxMoment
		doc.MaxMoment = &m
	}
	if res.Shear != nil {
		doc.Shear = segmentRows(res.Shear)
		v := res.MaxShear
		doc.MaxShear = &v
	}
	return doc
}

func reactionRows(b *beam.Beam, r *statics.Reactions) []ReactionRow {
	entries := r.Entries()
	rows := make([]ReactionRow, 0, len(entries))
	for _, e := range entries {
		name := ""
		if i := b.IndexOf(e.Support); i >= 0 {
			name = b.Node(i).Name
		}
		rows = append(rows, ReactionRow{
			Node:       name,
			Support:    supportLabel(e.Support),
			X:          e.Support.X(),
			Vertical:   e.Reaction.Vertical,
			Horizontal: e.Reaction.Horizontal,
			Moment:     e.Reaction.Moment,
		})
	}
	return rows
}

func segmentRows(segments []forces.Segment) []SegmentRow {
	rows := make([]SegmentRow, 0, len(segments))
	for _, s := range segments {
		rows = append(rows, SegmentRow{
			From:       s.GlobalLower,
			To:         s.GlobalUpper,
			Start:      s.ValueAtLower,
			End:        s.ValueAtUpper,
			Expression: s.Expression.String(),
		})
	}
	return rows
}

func supportLabel(s *beam.Support) string {
	if s.Kind == beam.Roller && !s.Internal {
		return s.Kind.String() + " (" + s.Direction.String() + ")"
	}
	return s.Kind.String()
}

// WriteJSON writes the document as indented JSON.
func WriteJSON(w io.Writer, res *analysis.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(res))
}
