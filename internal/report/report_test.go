package report

import (
	"encoding/json"
	"reflect"
	"testing"
)

func sampleReport() *Report {
	return &Report{
		ExtractedParameters: Parameters{
			{Name: "well_name", Value: "A-12"},
			{Name: "operation", Value: "ESP completion"},
			{Name: "packer_depth_m", Value: json.Number("2450.5")},
			{Name: "duration", Value: ""},
		},
		NodalAnalysis: NodalOutcome{
			Status: StatusSuccess,
			Results: &NodalResults{
				OperatingPoint: OperatingPoint{
					FlowRate:           120.5,
					WellheadPressure:   18.2,
					BottomholePressure: 195.7,
					ReservoirPressure:  240,
				},
				PressureAnalysis: PressureAnalysis{
					HydrostaticDrop: 160.3,
					FrictionDrop:    17.2,
					TotalDrop:       177.5,
				},
				FlowCharacteristics: FlowCharacteristics{
					ReynoldsNumber: 54230,
					FlowRegime:     "Turbulent",
					FrictionFactor: 0.021,
					Velocity:       1.8,
				},
				Productivity: Productivity{
					ProductivityIndex:     2.72,
					MaxFlowRate:           301.2,
					CurrentUtilizationPct: 40,
				},
			},
		},
		Summary: "Well A-12 operates at 40% of its potential.",
	}
}

func TestReportRoundTrip(t *testing.T) {
	original := sampleReport()

	data, err := original.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	decoded, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	// Floats come back as json.Number inside Parameters; normalize
	// the original the same way for comparison
	if !reflect.DeepEqual(decoded.NodalAnalysis, original.NodalAnalysis) {
		t.Errorf("nodal results changed across round-trip:\ngot  %+v\nwant %+v",
			decoded.NodalAnalysis, original.NodalAnalysis)
	}
	if decoded.Summary != original.Summary {
		t.Errorf("summary changed: got %q, want %q", decoded.Summary, original.Summary)
	}
	if !reflect.DeepEqual(decoded.ExtractedParameters, original.ExtractedParameters) {
		t.Errorf("parameters changed across round-trip:\ngot  %+v\nwant %+v",
			decoded.ExtractedParameters, original.ExtractedParameters)
	}
}

func TestParametersPreserveOrder(t *testing.T) {
	input := []byte(`{"zeta": "1", "alpha": "2", "mid_field": "3", "beta": "4"}`)

	var ps Parameters
	if err := json.Unmarshal(input, &ps); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	wantOrder := []string{"zeta", "alpha", "mid_field", "beta"}
	if len(ps) != len(wantOrder) {
		t.Fatalf("got %d parameters, want %d", len(ps), len(wantOrder))
	}
	for i, name := range wantOrder {
		if ps[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i, ps[i].Name, name)
		}
	}

	// And the order survives marshaling
	out, err := json.Marshal(ps)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"zeta":"1","alpha":"2","mid_field":"3","beta":"4"}`
	if string(out) != want {
		t.Errorf("marshaled order changed:\ngot  %s\nwant %s", out, want)
	}
}

func TestParameterHasValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"non-empty string", "A-12", true},
		{"empty string", "", false},
		{"nil", nil, false},
		{"nonzero number", json.Number("42"), true},
		{"zero number", json.Number("0"), false},
		{"nonzero float", 3.5, true},
		{"zero float", 0.0, false},
		{"true", true, true},
		{"false", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parameter{Name: "x", Value: tt.value}
			if got := p.HasValue(); got != tt.want {
				t.Errorf("HasValue(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParameterDisplayValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string passes through", "2450.5 m", "2450.5 m"},
		{"number keeps precision", json.Number("2450.50"), "2450.50"},
		{"float", 18.2, "18.2"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parameter{Name: "x", Value: tt.value}
			if got := p.DisplayValue(); got != tt.want {
				t.Errorf("DisplayValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestNodalOutcomeSucceeded(t *testing.T) {
	failure := NodalOutcome{Status: StatusFailure, Message: "missing tubing size"}
	if failure.Succeeded() {
		t.Error("failure outcome reported success")
	}

	// A success tag without results is not usable
	empty := NodalOutcome{Status: StatusSuccess}
	if empty.Succeeded() {
		t.Error("success without results reported usable")
	}

	ok := sampleReport().NodalAnalysis
	if !ok.Succeeded() {
		t.Error("valid success outcome reported failure")
	}
}

func TestFailureRoundTrip(t *testing.T) {
	original := &Report{
		ExtractedParameters: Parameters{{Name: "well_name", Value: "B-7"}},
		NodalAnalysis: NodalOutcome{
			Status:  StatusFailure,
			Message: "could not determine tubing diameter",
		},
		Summary: "Analysis incomplete.",
	}

	data, err := original.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	decoded, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("failure report changed across round-trip:\ngot  %+v\nwant %+v",
			decoded, original)
	}
}
