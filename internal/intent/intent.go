package intent

// Intent is the discrete response category a user utterance maps to
type Intent int

const (
	// Intents available before a report is loaded
	HelpGettingStarted Intent = iota
	ExplainExtraction
	ExplainNodalAnalysis
	NeedsUpload

	// Intents available once a report is loaded
	ShowParameters
	ShowNodalDetails
	ShowSummary
	OptimizationAdvice
	LimitationAnalysis
	FallbackMenu
)

func (i Intent) String() string {
	switch i {
	case HelpGettingStarted:
		return "help_getting_started"
	case ExplainExtraction:
		return "explain_extraction"
	case ExplainNodalAnalysis:
		return "explain_nodal_analysis"
	case NeedsUpload:
		return "needs_upload"
	case ShowParameters:
		return "show_parameters"
	case ShowNodalDetails:
		return "show_nodal_details"
	case ShowSummary:
		return "show_summary"
	case OptimizationAdvice:
		return "optimization_advice"
	case LimitationAnalysis:
		return "limitation_analysis"
	case FallbackMenu:
		return "fallback_menu"
	default:
		return "unknown"
	}
}
