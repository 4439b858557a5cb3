package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stresslens/stresslens/internal/pipeline"
	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/dataset"
	"github.com/stresslens/stresslens/pkg/metrics"
)

func newTestService(t *testing.T) *pipeline.Service {
	t.Helper()
	samples := classifier.GenerateSamples(300, 5)
	forest, err := classifier.Train(samples, classifier.TrainOptions{Trees: 15, MaxDepth: 8, MinLeafSize: 2, Seed: 5})
	if err != nil {
		t.Fatalf("Train() error: %v", err)
	}
	corpus := dataset.Generate(40, 5)
	return pipeline.NewService(classifier.New(forest), corpus, nil, 3, nil)
}

func TestAssess_FullPipeline(t *testing.T) {
	svc := newTestService(t)
	rec := metrics.Record{
		WorkHoursPerWeek: 58,
		SleepHoursPerDay: 5.5,
		MeetingsPerWeek:  24,
		EmailsPerDay:     140,
		DeadlinePressure: 8,
		TaskComplexity:   7,
		TeamSupport:      3,
		WorkLifeBalance:  2,
	}

	got, err := svc.Assess(context.Background(), "Alex Chen", rec)
	if err != nil {
		t.Fatalf("Assess() error: %v", err)
	}

	if got.AssessmentID == "" {
		t.Error("missing assessment ID")
	}
	if got.EmployeeName != "Alex Chen" {
		t.Errorf("EmployeeName = %q", got.EmployeeName)
	}
	if got.Stress.Category == "" {
		t.Error("missing stress category")
	}
	if got.Burnout.TotalScore < 0 || got.Burnout.TotalScore > 100 {
		t.Errorf("burnout = %v out of range", got.Burnout.TotalScore)
	}
	if got.Phishing.VulnerabilityIndex < 0 || got.Phishing.VulnerabilityIndex > 100 {
		t.Errorf("vulnerability = %v out of range", got.Phishing.VulnerabilityIndex)
	}
	if len(got.SimilarCases) != 3 {
		t.Errorf("got %d similar cases, want 3", len(got.SimilarCases))
	}
	if !strings.Contains(got.Explanation, "Alex Chen") {
		t.Errorf("explanation missing employee name:\n%s", got.Explanation)
	}
	if got.Inputs != rec {
		t.Errorf("Inputs = %+v, want echoed record", got.Inputs)
	}
}

func TestAssess_StagesAgree(t *testing.T) {
	svc := newTestService(t)
	rec := metrics.Record{
		WorkHoursPerWeek: 45, SleepHoursPerDay: 7, MeetingsPerWeek: 12, EmailsPerDay: 70,
		DeadlinePressure: 4, TaskComplexity: 4, TeamSupport: 6, WorkLifeBalance: 6,
	}

	got, err := svc.Assess(context.Background(), "Riley Poe", rec)
	if err != nil {
		t.Fatalf("Assess() error: %v", err)
	}

	// The phishing stress contribution must reflect the classifier's
	// category, not a recomputed one.
	stressScore := map[classifier.Category]float64{
		classifier.CategoryLow: 20, classifier.CategoryMedium: 45,
		classifier.CategoryHigh: 70, classifier.CategoryCritical: 95,
	}[got.Stress.Category]
	want := stressScore * 0.25
	if got.Phishing.RiskFactors.StressContribution != want {
		t.Errorf("StressContribution = %v, want %v for category %s",
			got.Phishing.RiskFactors.StressContribution, want, got.Stress.Category)
	}
}

func TestAssess_NoCorpus(t *testing.T) {
	samples := classifier.GenerateSamples(200, 3)
	forest, err := classifier.Train(samples, classifier.TrainOptions{Trees: 10, MaxDepth: 6, MinLeafSize: 2, Seed: 3})
	if err != nil {
		t.Fatalf("Train() error: %v", err)
	}
	svc := pipeline.NewService(classifier.New(forest), nil, nil, 3, nil)

	got, err := svc.Assess(context.Background(), "Dana", metrics.Record{WorkHoursPerWeek: 40, SleepHoursPerDay: 8})
	if err != nil {
		t.Fatalf("Assess() error: %v", err)
	}
	if len(got.SimilarCases) != 0 {
		t.Errorf("got %d similar cases with no corpus", len(got.SimilarCases))
	}
	if got.Explanation == "" {
		t.Error("explanation should still render without a corpus")
	}
}

func TestAssess_NoModel(t *testing.T) {
	svc := pipeline.NewService(nil, nil, nil, 3, nil)

	_, err := svc.Assess(context.Background(), "Kim", metrics.Record{})
	if !errors.Is(err, classifier.ErrModelUnavailable) {
		t.Errorf("error = %v, want ErrModelUnavailable", err)
	}
}

func TestAssess_UniqueIDs(t *testing.T) {
	svc := newTestService(t)
	rec := metrics.Record{WorkHoursPerWeek: 50, SleepHoursPerDay: 6, MeetingsPerWeek: 15, EmailsPerDay: 90, DeadlinePressure: 6, TaskComplexity: 5, TeamSupport: 5, WorkLifeBalance: 4}

	a, err := svc.Assess(context.Background(), "Ira", rec)
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.Assess(context.Background(), "Ira", rec)
	if err != nil {
		t.Fatal(err)
	}
	if a.AssessmentID == b.AssessmentID {
		t.Error("assessment IDs repeated across calls")
	}
	if a.Burnout.TotalScore != b.Burnout.TotalScore {
		t.Error("scores differ for identical input")
	}
}
