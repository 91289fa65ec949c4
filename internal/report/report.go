package report

import (
	"encoding/json"
	"fmt"
)

// NodalStatus tags the outcome of the engine's nodal analysis
type NodalStatus string

const (
	StatusSuccess NodalStatus = "success"
	StatusFailure NodalStatus = "failure"
)

// Report is the analysis result produced by the external engine.
// It is immutable once built; a new analysis replaces it wholesale.
type Report struct {
	ExtractedParameters Parameters   `json:"extracted_parameters"`
	NodalAnalysis       NodalOutcome `json:"nodal_analysis_results"`
	Summary             string       `json:"summary"`
}

// NodalOutcome is a tagged variant: success carries Results,
// failure carries Message
type NodalOutcome struct {
	Status  NodalStatus   `json:"status"`
	Results *NodalResults `json:"results,omitempty"`
	Message string        `json:"message,omitempty"`
}

// Succeeded reports whether nodal results are present and usable
func (o NodalOutcome) Succeeded() bool {
	return o.Status == StatusSuccess && o.Results != nil
}

// NodalResults holds the four sub-records of a successful analysis
type NodalResults struct {
	OperatingPoint      OperatingPoint      `json:"operating_point"`
	PressureAnalysis    PressureAnalysis    `json:"pressure_analysis"`
	FlowCharacteristics FlowCharacteristics `json:"flow_characteristics"`
	Productivity        Productivity        `json:"productivity"`
}

// OperatingPoint is the computed well operating point (m³/h, bar)
type OperatingPoint struct {
	FlowRate           float64 `json:"flow_rate"`
	WellheadPressure   float64 `json:"wellhead_pressure"`
	BottomholePressure float64 `json:"bottomhole_pressure"`
	ReservoirPressure  float64 `json:"reservoir_pressure"`
}

// PressureAnalysis breaks the total pressure drop into components (bar).
// TotalDrop is nominally hydrostatic + friction, but consumers must not
// rely on that and must guard TotalDrop == 0.
type PressureAnalysis struct {
	HydrostaticDrop float64 `json:"hydrostatic_drop"`
	FrictionDrop    float64 `json:"friction_drop"`
	TotalDrop       float64 `json:"total_drop"`
}

// FlowCharacteristics describes the flow inside the tubing
type FlowCharacteristics struct {
	ReynoldsNumber float64 `json:"reynolds_number"`
	FlowRegime     string  `json:"flow_regime"`
	FrictionFactor float64 `json:"friction_factor"`
	Velocity       float64 `json:"velocity"`
}

// Productivity relates current production to maximum potential.
// CurrentUtilizationPct is not clamped; upstream may produce values
// above 100 and they are carried as-is.
type Productivity struct {
	ProductivityIndex     float64 `json:"productivity_index"`
	MaxFlowRate           float64 `json:"max_flow_rate"`
	CurrentUtilizationPct float64 `json:"current_utilization_pct"`
}

// Parse decodes a report from its JSON interchange form
func Parse(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &r, nil
}

// Marshal encodes the report to its JSON interchange form, indented
// for human inspection. Parse(Marshal(r)) yields a report equal to r.
func (r *Report) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}
