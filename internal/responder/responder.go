package responder

import (
	"fmt"
	"strings"

	"wellchat/internal/intent"
	"wellchat/internal/report"
)

// Generate produces the assistant's markdown reply for a classified
// intent. It is total: any intent and any well-formed report yield a
// message, never an error. The raw utterance is echoed back by the
// two fallback responses.
func Generate(it intent.Intent, rep *report.Report, utterance string) string {
	switch it {
	case intent.HelpGettingStarted:
		return helpGettingStarted
	case intent.ExplainExtraction:
		return explainExtraction
	case intent.ExplainNodalAnalysis:
		return explainNodalAnalysis
	case intent.NeedsUpload:
		return fmt.Sprintf(needsUploadFmt, utterance)
	case intent.ShowParameters:
		return showParameters(rep)
	case intent.ShowNodalDetails:
		return showNodalDetails(rep)
	case intent.ShowSummary:
		return "### Document Summary\n\n" + rep.Summary
	case intent.OptimizationAdvice:
		if !rep.NodalAnalysis.Succeeded() {
			return needAnalysisForAdvice
		}
		return optimizationAdvice(rep.NodalAnalysis.Results)
	case intent.LimitationAnalysis:
		if !rep.NodalAnalysis.Succeeded() {
			return needAnalysisForLimits
		}
		return limitationAnalysis(rep.NodalAnalysis.Results)
	default:
		return fmt.Sprintf(fallbackMenuFmt, utterance)
	}
}

func showParameters(rep *report.Report) string {
	var b strings.Builder
	b.WriteString("### Extracted Parameters\n\n")
	for _, p := range rep.ExtractedParameters {
		if !p.HasValue() {
			continue
		}
		fmt.Fprintf(&b, "- **%s:** %s\n", report.Label(p.Name), p.DisplayValue())
	}
	return b.String()
}

func showNodalDetails(rep *report.Report) string {
	nodal := rep.NodalAnalysis
	if !nodal.Succeeded() {
		return fmt.Sprintf("Warning: nodal analysis was incomplete: %s", nodal.Message)
	}

	res := nodal.Results
	op := res.OperatingPoint
	pa := res.PressureAnalysis
	fc := res.FlowCharacteristics
	prod := res.Productivity

	var b strings.Builder
	b.WriteString("### Detailed Nodal Analysis\n\n")

	b.WriteString("**Operating Point:**\n")
	fmt.Fprintf(&b, "- Flow Rate: %s m³/h\n", report.Num(op.FlowRate))
	fmt.Fprintf(&b, "- Wellhead Pressure: %s bar\n", report.Num(op.WellheadPressure))
	fmt.Fprintf(&b, "- Bottomhole Pressure: %s bar\n", report.Num(op.BottomholePressure))
	fmt.Fprintf(&b, "- Reservoir Pressure: %s bar\n\n", report.Num(op.ReservoirPressure))

	b.WriteString("**Pressure Analysis:**\n")
	fmt.Fprintf(&b, "- Hydrostatic Drop: %s bar\n", report.Num(pa.HydrostaticDrop))
	fmt.Fprintf(&b, "- Friction Drop: %s bar\n", report.Num(pa.FrictionDrop))
	fmt.Fprintf(&b, "- Total Drop: %s bar\n\n", report.Num(pa.TotalDrop))

	b.WriteString("**Flow Characteristics:**\n")
	fmt.Fprintf(&b, "- Reynolds Number: %s\n", report.Num(fc.ReynoldsNumber))
	fmt.Fprintf(&b, "- Flow Regime: %s\n", fc.FlowRegime)
	fmt.Fprintf(&b, "- Friction Factor: %s\n", report.Num(fc.FrictionFactor))
	fmt.Fprintf(&b, "- Velocity: %s m/s\n\n", report.Num(fc.Velocity))

	b.WriteString("**Productivity:**\n")
	fmt.Fprintf(&b, "- Productivity Index: %s m³/h/bar\n", report.Num(prod.ProductivityIndex))
	fmt.Fprintf(&b, "- Maximum Flow: %s m³/h\n", report.Num(prod.MaxFlowRate))
	fmt.Fprintf(&b, "- Current Utilization: %s%%\n", report.Num(prod.CurrentUtilizationPct))

	return b.String()
}

func optimizationAdvice(res *report.NodalResults) string {
	utilization := res.Productivity.CurrentUtilizationPct

	var b strings.Builder
	b.WriteString("### Production Optimization Recommendations\n\n")
	fmt.Fprintf(&b, "**Current Status:** Operating at %s%% of maximum potential\n\n",
		report.Num(utilization))

	switch {
	case utilization < 50:
		gain := res.Productivity.MaxFlowRate - res.OperatingPoint.FlowRate
		b.WriteString("**High optimization potential!**\n\n")
		b.WriteString("**Recommendations:**\n")
		b.WriteString("1. **Increase ESP frequency** - Could boost production significantly\n")
		b.WriteString("2. **Reduce wellhead backpressure** - Check surface facilities\n")
		b.WriteString("3. **Review choke settings** - May be restricting flow\n")
		fmt.Fprintf(&b, "4. **Potential gain:** Up to %s m³/h\n", report.Num1(gain))
	case utilization < 75:
		b.WriteString("**Moderate optimization potential**\n\n")
		b.WriteString("**Recommendations:**\n")
		b.WriteString("1. **Fine-tune ESP settings** - Gradual frequency increase\n")
		b.WriteString("2. **Monitor reservoir pressure** - Ensure adequate drive\n")
		b.WriteString("3. **Optimize artificial lift** - Balance power vs production\n")
	default:
		b.WriteString("**Well is operating efficiently!**\n\n")
		b.WriteString("Current utilization is good. Focus on:\n")
		b.WriteString("1. **Maintain current settings** - Don't over-produce\n")
		b.WriteString("2. **Monitor for decline** - Track performance over time\n")
		b.WriteString("3. **Prevent equipment damage** - Operating near capacity\n")
	}

	return b.String()
}

func limitationAnalysis(res *report.NodalResults) string {
	pa := res.PressureAnalysis
	fc := res.FlowCharacteristics

	// Guard the zero total drop: both shares are defined as 0.0
	hydrostaticPct, frictionPct := 0.0, 0.0
	if pa.TotalDrop != 0 {
		hydrostaticPct = pa.HydrostaticDrop / pa.TotalDrop * 100
		frictionPct = pa.FrictionDrop / pa.TotalDrop * 100
	}

	var b strings.Builder
	b.WriteString("### Production Limitation Analysis\n\n")

	b.WriteString("**Pressure Drop Breakdown:**\n")
	fmt.Fprintf(&b, "- Hydrostatic: %s%% (%s bar)\n", report.Num1(hydrostaticPct), report.Num(pa.HydrostaticDrop))
	fmt.Fprintf(&b, "- Friction: %s%% (%s bar)\n\n", report.Num1(frictionPct), report.Num(pa.FrictionDrop))

	b.WriteString("**Main Limiting Factors:**\n\n")

	if frictionPct > 10 {
		b.WriteString("**High friction losses** - Consider:\n")
		b.WriteString("- Larger tubing diameter\n")
		b.WriteString("- Scale/wax treatment\n")
		b.WriteString("- Flow regime optimization\n\n")
	}

	b.WriteString("- **Hydrostatic head** - Natural limitation due to well depth\n")
	b.WriteString("- **Wellhead pressure** - Surface equipment backpressure\n")
	fmt.Fprintf(&b, "- **Flow regime** - Currently %s\n\n", strings.ToLower(fc.FlowRegime))

	b.WriteString("*The friction losses indicate tubing efficiency. Lower is better!*")

	return b.String()
}

// AnalysisComplete builds the assistant message appended after a
// successful engine run
func AnalysisComplete(rep *report.Report) string {
	var b strings.Builder
	b.WriteString("**Analysis Complete!**\n\n")

	if name, ok := rep.ExtractedParameters.Get("well_name"); ok {
		if p := (report.Parameter{Name: "well_name", Value: name}); p.HasValue() {
			fmt.Fprintf(&b, "**Well:** %s\n\n", p.DisplayValue())
		}
	}

	if rep.NodalAnalysis.Succeeded() {
		res := rep.NodalAnalysis.Results
		b.WriteString("### Nodal Analysis Results\n\n")
		fmt.Fprintf(&b, "- **Flow Rate:** %s m³/h\n", report.Num(res.OperatingPoint.FlowRate))
		fmt.Fprintf(&b, "- **Wellhead Pressure:** %s bar\n", report.Num(res.OperatingPoint.WellheadPressure))
		fmt.Fprintf(&b, "- **Bottomhole Pressure:** %s bar\n", report.Num(res.OperatingPoint.BottomholePressure))
		fmt.Fprintf(&b, "- **Max Flow Potential:** %s m³/h\n", report.Num(res.Productivity.MaxFlowRate))
		fmt.Fprintf(&b, "- **Current Utilization:** %s%%\n\n", report.Num(res.Productivity.CurrentUtilizationPct))
	}

	if rep.Summary != "" {
		fmt.Fprintf(&b, "### Summary\n\n%s\n\n", rep.Summary)
	}

	b.WriteString("*Ask me questions about the results or request specific details!*")

	return b.String()
}
