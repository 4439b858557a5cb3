// Package report defines output rendering for completed assessments.
// Implementations handle different output targets: terminal and JSON.
package report

import (
	"encoding/json"
	"io"

	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/dataset"
	"github.com/stresslens/stresslens/pkg/metrics"
	"github.com/stresslens/stresslens/pkg/scoring"
)

// Report is the renderable view of one completed assessment.
type Report struct {
	AssessmentID string                     `json:"assessment_id"`
	EmployeeName string                     `json:"employee_name"`
	Stress       classifier.Assessment      `json:"stress"`
	Burnout      scoring.BurnoutAssessment  `json:"burnout"`
	Phishing     scoring.PhishingAssessment `json:"phishing"`
	SimilarCases []dataset.SimilarCase      `json:"similar_cases,omitempty"`
	Explanation  string                     `json:"explanation"`
	Inputs       metrics.Record             `json:"inputs"`
}

// Renderer produces formatted output from a Report.
type Renderer interface {
	Render(w io.Writer, rep *Report) error
}

// JSONRenderer marshals a Report to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
