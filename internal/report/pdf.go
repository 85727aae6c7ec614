package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobeam/internal/analysis"
)

// PDFOptions controls the PDF report header.
type PDFOptions struct {
	Title     string
	Author    string
	Precision int
	Date      time.Time // zero means now
}

// column widths in mm, A4 portrait leaves 190 between margins
var (
	reactionColumns = []float64{25, 40, 25, 33, 33, 34}
	segmentColumns  = []float64{22, 22, 28, 28, 90}
)

const (
	reactionAlign = "LLRRRR"
	segmentAlign  = "RRRRL"
)

// WritePDF renders res as an A4 report.
func WritePDF(w io.Writer, res *analysis.Result, opts PDFOptions) error {
	if opts.Title == "" {
		opts.Title = "Beam Analysis Report"
	}
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}
	p := opts.Precision
	doc := NewDocument(res)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(opts.Title, false)
	if opts.Author != "" {
		pdf.SetAuthor(opts.Author, false)
	}
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, opts.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if doc.Name != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Beam: %s", doc.Name))
		pdf.Ln(6)
	}
	if opts.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", opts.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", opts.Date.Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Classification")
	pdf.MultiCell(0, 6, fmt.Sprintf(
		"Length %.*f, %d support reactions, %d release equations.\nDegree of indeterminacy %d: %s, geometrically stable: %t.",
		p, doc.Length, doc.Reactions, doc.ReleaseEquations, doc.Degree, doc.Classification, doc.Stable,
	), "", "L", false)
	pdf.Ln(4)

	section(pdf, "Reactions")
	method := "Method: " + doc.Method
	if doc.Mode != "" {
		method += " (" + doc.Mode + ")"
	}
	pdf.Cell(0, 6, method)
	pdf.Ln(6)
	if m := doc.EndMoments; m != nil {
		pdf.Cell(0, 6, fmt.Sprintf("End moments: Ma = %.*f, Mb = %.*f, Mc = %.*f", p, m.Ma, p, m.Mb, p, m.Mc))
		pdf.Ln(6)
	}
	pdf.Ln(2)
	tableRow(pdf, reactionColumns, reactionAlign, true, "Node", "Support", "x", "Vertical", "Horizontal", "Moment")
	for _, r := range doc.Supports {
		tableRow(pdf, reactionColumns, reactionAlign, false,
			r.Node, r.Support, num(p, r.X), num(p, r.Vertical), num(p, r.Horizontal), num(p, r.Moment))
	}
	pdf.Ln(6)

	if doc.Bending != nil {
		section(pdf, "Bending Moment")
		segmentTable(pdf, doc.Bending, p, "M(x)")
		extreme(pdf, "|M|", doc.MaxMoment.Value, doc.MaxMoment.X, p)
	}
	if doc.Shear != nil {
		section(pdf, "Shear Force")
		segmentTable(pdf, doc.Shear, p, "V(x)")
		extreme(pdf, "|V|", doc.MaxShear.Value, doc.MaxShear.X, p)
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
}

func tableRow(pdf *gofpdf.Fpdf, widths []float64, align string, header bool, cells ...string) {
	if header {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
	} else {
		pdf.SetFont("Helvetica", "", 10)
	}
	for i, c := range cells {
		pdf.CellFormat(widths[i], 7, c, "1", 0, align[i:i+1], header, 0, "")
	}
	pdf.Ln(-1)
}

func segmentTable(pdf *gofpdf.Fpdf, rows []SegmentRow, p int, label string) {
	tableRow(pdf, segmentColumns, segmentAlign, true, "From", "To", "Start", "End", label)
	for _, r := range rows {
		tableRow(pdf, segmentColumns, segmentAlign, false, num(p, r.From), num(p, r.To), num(p, r.Start), num(p, r.End), r.Expression)
	}
}

func extreme(pdf *gofpdf.Fpdf, label string, value, x float64, p int) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Maximum %s = %.*f at x = %.*f", label, p, value, p, x))
	pdf.Ln(12)
}

func num(precision int, v float64) string {
	return fmt.Sprintf("%.*f", precision, v)
}
