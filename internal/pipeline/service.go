// Package pipeline runs the assessment chain: stress classification,
// burnout scoring, phishing risk scoring, case similarity search, and
// narrative rendering. The trained model and the corpus are loaded once at
// startup and threaded through every call as read-only handles.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/dataset"
	"github.com/stresslens/stresslens/pkg/metrics"
	"github.com/stresslens/stresslens/pkg/narrative"
	"github.com/stresslens/stresslens/pkg/scoring"
)

// Result is the complete output of one assessment.
type Result struct {
	AssessmentID string                     `json:"assessment_id"`
	EmployeeName string                     `json:"employee_name"`
	Stress       classifier.Assessment      `json:"stress"`
	Burnout      scoring.BurnoutAssessment  `json:"burnout"`
	Phishing     scoring.PhishingAssessment `json:"phishing"`
	SimilarCases []dataset.SimilarCase      `json:"similar_cases,omitempty"`
	Explanation  string                     `json:"explanation"`
	Inputs       metrics.Record             `json:"inputs"`
}

// Service runs the assessment pipeline. All fields are immutable after
// construction; concurrent Assess calls are safe.
type Service struct {
	clf      *classifier.Classifier
	corpus   []dataset.HistoricalCase
	renderer narrative.Renderer
	topN     int
	logger   *zap.Logger
}

// NewService wires up the pipeline. A nil renderer defaults to the
// deterministic one; a nil logger defaults to a no-op logger.
func NewService(clf *classifier.Classifier, corpus []dataset.HistoricalCase, renderer narrative.Renderer, topN int, logger *zap.Logger) *Service {
	if renderer == nil {
		renderer = narrative.NewDeterministic()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if topN <= 0 {
		topN = 3
	}
	return &Service{
		clf:      clf,
		corpus:   corpus,
		renderer: renderer,
		topN:     topN,
		logger:   logger,
	}
}

// CorpusStats summarizes the loaded corpus.
func (s *Service) CorpusStats() dataset.Stats {
	return dataset.ComputeStats(s.corpus)
}

// Assess runs the full pipeline for one metrics record. Each stage depends
// only on the record plus the outputs of strictly earlier stages.
func (s *Service) Assess(ctx context.Context, employeeName string, rec metrics.Record) (*Result, error) {
	start := time.Now()

	stress, err := s.clf.Predict(rec)
	if err != nil {
		return nil, fmt.Errorf("stress prediction: %w", err)
	}

	burnout := scoring.ScoreBurnout(rec, stress.Category)
	phishing := scoring.ScorePhishing(rec, stress.Category, burnout.TotalScore)
	similar := dataset.FindSimilar(rec, s.corpus, s.topN)

	explanation := s.renderer.Render(ctx, narrative.Input{
		EmployeeName: employeeName,
		Stress:       stress,
		Burnout:      burnout,
		Phishing:     phishing,
		Metrics:      rec,
		SimilarCases: similar,
	})

	result := &Result{
		AssessmentID: uuid.NewString(),
		EmployeeName: employeeName,
		Stress:       stress,
		Burnout:      burnout,
		Phishing:     phishing,
		SimilarCases: similar,
		Explanation:  explanation,
		Inputs:       rec,
	}

	s.logger.Info("assessment completed",
		zap.String("assessment_id", result.AssessmentID),
		zap.String("stress_level", string(stress.Category)),
		zap.Float64("burnout_score", burnout.TotalScore),
		zap.Float64("vulnerability_index", phishing.VulnerabilityIndex),
		zap.Int("similar_cases", len(similar)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}
