// Package narrative renders the executive summary of an assessment. The
// deterministic renderer is the contract; the generative renderer is an
// optional alternate that must fall back to it on any failure.
package narrative

import (
	"context"

	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/dataset"
	"github.com/stresslens/stresslens/pkg/metrics"
	"github.com/stresslens/stresslens/pkg/scoring"
)

// Input carries everything a renderer may reference. All fields are
// upstream pipeline outputs; renderers never recompute scores.
type Input struct {
	EmployeeName string
	Stress       classifier.Assessment
	Burnout      scoring.BurnoutAssessment
	Phishing     scoring.PhishingAssessment
	Metrics      metrics.Record
	SimilarCases []dataset.SimilarCase
}

// Renderer produces the narrative summary for an assessment. Render never
// fails: implementations that can fail internally recover by delegating to
// the deterministic renderer.
type Renderer interface {
	Render(ctx context.Context, in Input) string
}
