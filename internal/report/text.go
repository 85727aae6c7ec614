package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/analysis"
)

const (
	banner = "═══════════════════════════════════════════════════════════════"
	rule   = "───────────────────────────────────────────────────────────────"
)

// DefaultPrecision is the number of decimals used when none is configured.
const DefaultPrecision = 3

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, title+":")
	fmt.Fprintln(w, rule)
}

// WriteBanner prints the boxed title used at the top of every text report.
func WriteBanner(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "     %s\n", strings.ToUpper(title))
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)
}

// WriteClassification prints the determinacy summary of the beam.
func WriteClassification(w io.Writer, res *analysis.Result, precision int) {
	b, s := res.Beam, res.Summary

	heading(w, "BEAM")
	t := newTable(w)
	if b.Name != "" {
		fmt.Fprintf(t, "  Name:\t%s\n", b.Name)
	}
	fmt.Fprintf(t, "  Nodes:\t%d\n", b.Len())
	fmt.Fprintf(t, "  Length:\t%.*f\n", precision, b.Length())
	fmt.Fprintf(t, "  Supports:\t%d\n", len(b.Supports()))
	fmt.Fprintf(t, "  Internal releases:\t%d\n", len(b.Releases()))
	t.Flush()
	fmt.Fprintln(w)

	heading(w, "CLASSIFICATION")
	t = newTable(w)
	fmt.Fprintf(t, "  Support reactions (r):\t%d\n", s.Reactions)
	fmt.Fprintf(t, "  Release equations (c):\t%d\n", s.ReleaseEquations)
	fmt.Fprintf(t, "  Degree of indeterminacy:\t%d\n", s.Degree)
	fmt.Fprintf(t, "  Classification:\t%s\n", s.Classification)
	stable := "yes ✓"
	if !s.Stable {
		stable = "no ⚠"
	}
	fmt.Fprintf(t, "  Geometrically stable:\t%s\n", stable)
	t.Flush()
	fmt.Fprintln(w)
}

// WriteReactions prints the solution method and one row per support.
func WriteReactions(w io.Writer, res *analysis.Result, precision int) {
	heading(w, "METHOD")
	t := newTable(w)
	fmt.Fprintf(t, "  Method:\t%s\n", res.Method)
	if res.Mode != "" {
		fmt.Fprintf(t, "  Mode:\t%s\n", res.Mode)
	}
	if c := res.Continuous; c != nil {
		fmt.Fprintf(t, "  Ma:\t%.*f\n", precision, c.Moments.Ma)
		fmt.Fprintf(t, "  Mb:\t%.*f\n", precision, c.Moments.Mb)
		fmt.Fprintf(t, "  Mc:\t%.*f\n", precision, c.Moments.Mc)
	}
	t.Flush()
	fmt.Fprintln(w)

	if res.Reactions == nil {
		return
	}
	heading(w, "SUPPORT REACTIONS")
	t = newTable(w)
	fmt.Fprintln(t, "  Node\tSupport\tx\tVertical\tHorizontal\tMoment")
	for _, r := range reactionRows(res.Beam, res.Reactions) {
		fmt.Fprintf(t, "  %s\t%s\t%.*f\t%.*f\t%.*f\t%.*f\n",
			r.Node, r.Support,
			precision, r.X,
			precision, r.Vertical,
			precision, r.Horizontal,
			precision, r.Moment)
	}
	t.Flush()
	fmt.Fprintln(w)
}

// WriteForces prints the piecewise bending and shear equations. Either part
// can be left out.
func WriteForces(w io.Writer, res *analysis.Result, precision int, bending, shear bool) {
	if bending && res.Bending != nil {
		heading(w, "BENDING MOMENT")
		writeSegments(w, segmentRows(res.Bending), precision, "M(x)")
		fmt.Fprintf(w, "  Maximum |M| = %.*f at x = %.*f\n\n",
			precision, res.MaxMoment.Value, precision, res.MaxMoment.X)
	}
	if shear && res.Shear != nil {
		heading(w, "SHEAR FORCE")
		writeSegments(w, segmentRows(res.Shear), precision, "V(x)")
		fmt.Fprintf(w, "  Maximum |V| = %.*f at x = %.*f\n\n",
			precision, res.MaxShear.Value, precision, res.MaxShear.X)
	}
}

func writeSegments(w io.Writer, rows []SegmentRow, precision int, label string) {
	t := newTable(w)
	fmt.Fprintf(t, "  From\tTo\tStart\tEnd\t%s\n", label)
	for _, r := range rows {
		fmt.Fprintf(t, "  %.*f\t%.*f\t%.*f\t%.*f\t%s\n",
			precision, r.From,
			precision, r.To,
			precision, r.Start,
			precision, r.End,
			r.Expression)
	}
	t.Flush()
}

// WriteText prints the full report: classification, reactions and, when
// present, both force distributions.
func WriteText(w io.Writer, res *analysis.Result, precision int) {
	title := "Beam Analysis"
	if res.Beam.Name != "" {
		title += " - " + res.Beam.Name
	}
	WriteBanner(w, title)
	WriteClassification(w, res, precision)
	WriteReactions(w, res, precision)
	WriteForces(w, res, precision, true, true)
}
