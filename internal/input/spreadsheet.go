package input

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// SpreadsheetHeader is the expected first row of the node sheet.
var SpreadsheetHeader = []string{
	"name", "x", "y", "rx", "ry", "rm", "internal",
	"load", "angle", "udl", "udl_length", "moment",
}

const (
	colName = iota
	colX
	colY
	colRX
	colRY
	colRM
	colInternal
	colLoad
	colAngle
	colUDL
	colUDLLength
	colMoment
)

// ReadSpreadsheet reads one node per row from the first sheet of an xlsx
// workbook. The sheet name becomes the beam name and the header row is skipped.
func ReadSpreadsheet(r io.Reader) (*File, error) {
	xl, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer xl.Close()

	sheet := xl.GetSheetName(0)
	rows, err := xl.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no node rows", sheet)
	}

	f := &File{Name: sheet}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		n, err := parseNodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", sheet, i+1, err)
		}
		f.Nodes = append(f.Nodes, n)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func parseNodeRow(row []string) (NodeSpec, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	if cell(colX) == "" {
		return NodeSpec{}, &beam.ValidationError{Field: "x", Message: "is required"}
	}
	x, err := toFloat("x", cell(colX))
	if err != nil {
		return NodeSpec{}, err
	}
	n := NodeSpec{Name: cell(colName), X: x}
	if s := cell(colY); s != "" {
		if n.Y, err = toFloat("y", s); err != nil {
			return NodeSpec{}, err
		}
	}

	rx, ry, rm := toBool(cell(colRX)), toBool(cell(colRY)), toBool(cell(colRM))
	internal := strings.ToLower(cell(colInternal))
	if rx || ry || rm || internal != "" {
		n.Support = &SupportSpec{RX: rx, RY: ry, RM: rm, Internal: internal}
	}

	if s := cell(colLoad); s != "" {
		m, err := toFloat("load", s)
		if err != nil {
			return NodeSpec{}, err
		}
		n.PointLoad = &PointLoadSpec{Magnitude: m}
		if a := cell(colAngle); a != "" {
			angle, err := toFloat("angle", a)
			if err != nil {
				return NodeSpec{}, err
			}
			n.PointLoad.Angle = &angle
		}
	}

	if s := cell(colUDL); s != "" {
		w, err := toFloat("udl", s)
		if err != nil {
			return NodeSpec{}, err
		}
		length, err := toFloat("udl_length", cell(colUDLLength))
		if err != nil {
			return NodeSpec{}, err
		}
		n.DistributedLoad = &DistributedLoadSpec{Magnitude: w, Length: length}
	}

	if s := cell(colMoment); s != "" {
		m, err := toFloat("moment", s)
		if err != nil {
			return NodeSpec{}, err
		}
		n.PointMoment = &PointMomentSpec{Magnitude: m}
	}
	return n, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// toFloat parses a whole cell; trailing units or text are rejected.
func toFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &beam.ValidationError{Field: field, Message: fmt.Sprintf("%q is not a number", s)}
	}
	return v, nil
}

func toBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "x", "y", "yes", "true":
		return true
	}
	return false
}

// WriteSpreadsheet writes f in the layout ReadSpreadsheet expects.
func WriteSpreadsheet(w io.Writer, f *File) error {
	xl := excelize.NewFile()
	defer xl.Close()

	sheet := f.Name
	if sheet == "" {
		sheet = "Beam"
	}
	if err := xl.SetSheetName(xl.GetSheetName(0), sheet); err != nil {
		return err
	}

	header := make([]interface{}, len(SpreadsheetHeader))
	for i, h := range SpreadsheetHeader {
		header[i] = h
	}
	if err := xl.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, n := range f.Nodes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := nodeRow(n)
		if err := xl.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	_, err := xl.WriteTo(w)
	return err
}

func nodeRow(n NodeSpec) []interface{} {
	row := make([]interface{}, len(SpreadsheetHeader))
	for i := range row {
		row[i] = ""
	}
	row[colName] = n.Name
	row[colX] = n.X
	row[colY] = n.Y
	if s := n.Support; s != nil {
		row[colRX] = flag(s.RX)
		row[colRY] = flag(s.RY)
		row[colRM] = flag(s.RM)
		row[colInternal] = s.Internal
	}
	if p := n.PointLoad; p != nil {
		row[colLoad] = p.Magnitude
		if p.Angle != nil {
			row[colAngle] = *p.Angle
		}
	}
	if d := n.DistributedLoad; d != nil {
		row[colUDL] = d.Magnitude
		row[colUDLLength] = d.Length
	}
	if m := n.PointMoment; m != nil {
		row[colMoment] = m.Magnitude
	}
	return row
}

func flag(b bool) string {
	if b {
		return "x"
	}
	return ""
}
