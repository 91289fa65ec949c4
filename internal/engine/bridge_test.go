package engine

import (
	"strings"
	"testing"
)

func TestDecodeEnvelope(t *testing.T) {
	output := []byte(`{
		"success": true,
		"report": {
			"extracted_parameters": {"well_name": "A-12"},
			"nodal_analysis_results": {
				"status": "success",
				"results": {
					"operating_point": {"flow_rate": 120.5, "wellhead_pressure": 18.2, "bottomhole_pressure": 195.7, "reservoir_pressure": 240},
					"pressure_analysis": {"hydrostatic_drop": 160.3, "friction_drop": 17.2, "total_drop": 177.5},
					"flow_characteristics": {"reynolds_number": 54230, "flow_regime": "Turbulent", "friction_factor": 0.021, "velocity": 1.8},
					"productivity": {"productivity_index": 2.72, "max_flow_rate": 301.2, "current_utilization_pct": 40}
				}
			},
			"summary": "ok"
		}
	}`)

	rep, err := decodeEnvelope(output)
	if err != nil {
		t.Fatalf("decodeEnvelope() error: %v", err)
	}
	if !rep.NodalAnalysis.Succeeded() {
		t.Error("expected successful nodal outcome")
	}
	if rep.NodalAnalysis.Results.OperatingPoint.FlowRate != 120.5 {
		t.Errorf("flow rate = %v, want 120.5", rep.NodalAnalysis.Results.OperatingPoint.FlowRate)
	}
	if name, _ := rep.ExtractedParameters.Get("well_name"); name != "A-12" {
		t.Errorf("well_name = %v, want A-12", name)
	}
}

func TestDecodeEnvelopeFailure(t *testing.T) {
	output := []byte(`{"success": false, "error": "document has no tables"}`)

	_, err := decodeEnvelope(output)
	if err == nil {
		t.Fatal("expected error for failed envelope")
	}
	if !strings.Contains(err.Error(), "document has no tables") {
		t.Errorf("error should carry the pipeline message, got: %v", err)
	}
}

func TestDecodeEnvelopeGarbage(t *testing.T) {
	_, err := decodeEnvelope([]byte("Traceback (most recent call last):"))
	if err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}

// A nodal failure inside a successful envelope is a valid report, not
// an engine error: the message surfaces through the chat instead
func TestDecodeEnvelopeNodalFailure(t *testing.T) {
	output := []byte(`{
		"success": true,
		"report": {
			"extracted_parameters": {"well_name": "B-7"},
			"nodal_analysis_results": {"status": "failure", "message": "missing tubing size"},
			"summary": ""
		}
	}`)

	rep, err := decodeEnvelope(output)
	if err != nil {
		t.Fatalf("decodeEnvelope() error: %v", err)
	}
	if rep.NodalAnalysis.Succeeded() {
		t.Error("expected failed nodal outcome")
	}
	if rep.NodalAnalysis.Message != "missing tubing size" {
		t.Errorf("message = %q", rep.NodalAnalysis.Message)
	}
}
