package engine

import (
	"context"

	"wellchat/internal/report"
)

// Engine is the external analysis boundary: document in, report out.
// The core never retries and never inspects failures beyond rendering
// them as a single user-facing message.
type Engine interface {
	Analyze(ctx context.Context, documentPath string, wordLimit int) (*report.Report, error)
}
