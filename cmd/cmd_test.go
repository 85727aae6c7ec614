package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	beamFile, outputFormat, precision = "", "", -1
	bendingOnly, shearOnly = false, false
	reportOutput, reportTitle, reportAuthor = "", "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", t.TempDir(), "--quiet"))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTemplate(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if _, err := execute(t, "template", "-o", path); err != nil {
		t.Fatalf("template error = %v", err)
	}
	return path
}

func TestClassifyCommand(t *testing.T) {
	path := writeTemplate(t, "beam.yaml")

	out, err := execute(t, "classify", "-f", path)
	if err != nil {
		t.Fatalf("classify error = %v", err)
	}
	for _, want := range []string{"CLASSIFICATION:", "indeterminate", "Degree of indeterminacy:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSolveCommandJSON(t *testing.T) {
	path := writeTemplate(t, "beam.json")

	out, err := execute(t, "solve", "-f", path, "--format", "json")
	if err != nil {
		t.Fatalf("solve error = %v", err)
	}
	var doc struct {
		Method    string `json:"method"`
		Reactions []struct {
			Node string `json:"node"`
		} `json:"reactions"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if doc.Method != "three-moment" || len(doc.Reactions) != 3 {
		t.Errorf("method = %s with %d reactions, want three-moment with 3", doc.Method, len(doc.Reactions))
	}
}

func TestForcesBendingOnly(t *testing.T) {
	path := writeTemplate(t, "beam.toml")

	out, err := execute(t, "forces", "-f", path, "--bending-only", "-p", "2")
	if err != nil {
		t.Fatalf("forces error = %v", err)
	}
	if !strings.Contains(out, "BENDING MOMENT:") || strings.Contains(out, "SHEAR FORCE:") {
		t.Errorf("want bending only:\n%s", out)
	}
}

func TestAnalyzeCommand(t *testing.T) {
	path := writeTemplate(t, "beam.json")

	out, err := execute(t, "analyze", "-f", path)
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	for _, want := range []string{
		"BEAM ANALYSIS - EXAMPLE",
		"CLASSIFICATION:",
		"three-moment",
		"SUPPORT REACTIONS:",
		"BENDING MOMENT:",
		"SHEAR FORCE:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReportCommand(t *testing.T) {
	path := writeTemplate(t, "beam.xlsx")
	pdf := filepath.Join(t.TempDir(), "out.pdf")

	if _, err := execute(t, "report", "-f", path, "-o", pdf); err != nil {
		t.Fatalf("report error = %v", err)
	}
	data, err := os.ReadFile(pdf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("report is not a PDF")
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing file flag", []string{"solve"}},
		{"missing file", []string{"solve", "-f", "does-not-exist.json"}},
		{"unsupported extension", []string{"classify", "-f", "beam.csv"}},
		{"bad format", []string{"solve", "-f", "beam.json", "--format", "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("Execute() error = nil")
			}
		})
	}
}
