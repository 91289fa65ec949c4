package intent

import "strings"

// rule maps a keyword set to an intent. Matching is case-insensitive
// and substring-based: a keyword anywhere in the utterance counts.
type rule struct {
	keywords []string
	intent   Intent
}

// The two rule lists are evaluated top to bottom, first match wins.
// The ordering is the tie-break contract: an utterance matching two
// sets resolves to the earlier one. Do not reorder.
var noReportRules = []rule{
	{[]string{"upload", "how", "start"}, HelpGettingStarted},
	{[]string{"extract", "parameter"}, ExplainExtraction},
	{[]string{"nodal", "analysis", "calculate"}, ExplainNodalAnalysis},
}

var reportRules = []rule{
	{[]string{"parameter", "extract", "data"}, ShowParameters},
	{[]string{"nodal", "pressure", "flow"}, ShowNodalDetails},
	{[]string{"summary", "overview"}, ShowSummary},
	{[]string{"increase", "optimize", "improve"}, OptimizationAdvice},
	{[]string{"limit", "bottleneck", "problem"}, LimitationAnalysis},
}

// Classify maps an utterance to an intent. It is total: unmatched
// text falls through to NeedsUpload or FallbackMenu depending on
// whether a report is loaded.
func Classify(utterance string, reportPresent bool) Intent {
	lower := strings.ToLower(utterance)

	rules, fallback := noReportRules, NeedsUpload
	if reportPresent {
		rules, fallback = reportRules, FallbackMenu
	}

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.intent
			}
		}
	}
	return fallback
}
