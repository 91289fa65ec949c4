package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wellchat/internal/report"
)

func exportReport() *report.Report {
	return &report.Report{
		ExtractedParameters: report.Parameters{
			{Name: "well_name", Value: "A-12"},
		},
		NodalAnalysis: report.NodalOutcome{
			Status: report.StatusSuccess,
			Results: &report.NodalResults{
				OperatingPoint: report.OperatingPoint{
					FlowRate:           120.5,
					WellheadPressure:   18.2,
					BottomholePressure: 195.7,
					ReservoirPressure:  240,
				},
				PressureAnalysis: report.PressureAnalysis{
					HydrostaticDrop: 160.3,
					FrictionDrop:    17.2,
					TotalDrop:       177.5,
				},
				FlowCharacteristics: report.FlowCharacteristics{
					ReynoldsNumber: 54230,
					FlowRegime:     "Turbulent",
					FrictionFactor: 0.021,
					Velocity:       1.8,
				},
				Productivity: report.Productivity{
					ProductivityIndex:     2.72,
					MaxFlowRate:           301.2,
					CurrentUtilizationPct: 40,
				},
			},
		},
		Summary: "Operating well below potential.",
	}
}

func TestMarkdownSections(t *testing.T) {
	md := Markdown(exportReport())

	wants := []string{
		"# Well Analysis Report",
		"### Extracted Parameters",
		"### Detailed Nodal Analysis",
		"### Production Optimization Recommendations",
		"### Production Limitation Analysis",
		"### Document Summary",
		"Operating well below potential.",
	}
	for _, want := range wants {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownSkipsFailedAnalysisSections(t *testing.T) {
	rep := exportReport()
	rep.NodalAnalysis = report.NodalOutcome{
		Status:  report.StatusFailure,
		Message: "no nodal inputs",
	}

	md := Markdown(rep)
	if strings.Contains(md, "Optimization Recommendations") {
		t.Errorf("optimization section present for failed analysis:\n%s", md)
	}
	if !strings.Contains(md, "no nodal inputs") {
		t.Errorf("failure message missing:\n%s", md)
	}
}

func TestHTML(t *testing.T) {
	html, err := HTML(exportReport())
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<!doctype html>") {
		t.Error("missing document shell")
	}
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Well Analysis Report") {
		t.Error("missing rendered title")
	}
	if !strings.Contains(got, "120.5") {
		t.Error("missing report data")
	}
}

func TestWriteInfersFormat(t *testing.T) {
	dir := t.TempDir()
	rep := exportReport()

	tests := []struct {
		file string
		want string
	}{
		{"report.json", `"extracted_parameters"`},
		{"report.md", "# Well Analysis Report"},
		{"report.html", "<!doctype html>"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := Write(rep, path, ""); err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error: %v", err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("%s missing %q", tt.file, tt.want)
			}
		})
	}
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	err := Write(exportReport(), filepath.Join(dir, "report.xlsx"), "")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	rep := exportReport()

	data, err := JSON(rep)
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	decoded, err := report.Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if decoded.Summary != rep.Summary {
		t.Errorf("summary changed: %q", decoded.Summary)
	}
	if !decoded.NodalAnalysis.Succeeded() {
		t.Error("nodal outcome changed")
	}
}
