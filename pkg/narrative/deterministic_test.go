package narrative_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/dataset"
	"github.com/stresslens/stresslens/pkg/metrics"
	"github.com/stresslens/stresslens/pkg/narrative"
	"github.com/stresslens/stresslens/pkg/scoring"
)

func sampleInput() narrative.Input {
	return narrative.Input{
		EmployeeName: "Jordan Blake",
		Stress: classifier.Assessment{
			Category:   classifier.CategoryHigh,
			Confidence: 0.82,
		},
		Burnout: scoring.BurnoutAssessment{
			TotalScore: 68,
			Level:      "High Risk",
			Color:      "orange",
		},
		Phishing: scoring.PhishingAssessment{
			VulnerabilityIndex:       61.5,
			RiskLevel:                "High Vulnerability",
			AttackSuccessProbability: 42.68,
		},
		Metrics: metrics.Record{
			WorkHoursPerWeek: 56,
			SleepHoursPerDay: 5.5,
			MeetingsPerWeek:  24,
			EmailsPerDay:     130,
			DeadlinePressure: 8,
			TaskComplexity:   7,
			TeamSupport:      3,
			WorkLifeBalance:  3,
		},
	}
}

func TestDeterministic_MiddleTierOpening(t *testing.T) {
	// Burnout 68 with High stress lands in the proactive middle tier, not
	// the immediate-attention one.
	got := narrative.NewDeterministic().Render(context.Background(), sampleInput())

	if !strings.Contains(got, "Jordan Blake shows **high stress levels**") {
		t.Errorf("missing middle-tier opening; got:\n%s", got)
	}
	if !strings.Contains(got, "burnout score of **68/100** (High Risk)") {
		t.Errorf("missing burnout score clause; got:\n%s", got)
	}
	if strings.Contains(got, "immediate attention") {
		t.Errorf("middle-tier input rendered the critical opening:\n%s", got)
	}
}

func TestDeterministic_CriticalTierOpening(t *testing.T) {
	in := sampleInput()
	in.Burnout.TotalScore = 74
	in.Burnout.Level = "Critical Risk"

	got := narrative.NewDeterministic().Render(context.Background(), in)
	if !strings.Contains(got, "requires immediate attention") {
		t.Errorf("burnout >= 70 must render the critical opening; got:\n%s", got)
	}
}

func TestDeterministic_CriticalCategoryOverridesScore(t *testing.T) {
	in := sampleInput()
	in.Burnout.TotalScore = 40
	in.Burnout.Level = "Moderate Risk"
	in.Stress.Category = classifier.CategoryCritical

	got := narrative.NewDeterministic().Render(context.Background(), in)
	if !strings.Contains(got, "requires immediate attention") {
		t.Errorf("critical stress category must render the critical opening; got:\n%s", got)
	}
}

func TestDeterministic_Factors(t *testing.T) {
	got := narrative.NewDeterministic().Render(context.Background(), sampleInput())

	for _, want := range []string{
		"working **56 hours/week**",
		"only **5.5 hours of sleep**",
		"**24 meetings/week**",
		"**130 emails/day**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("narrative missing factor %q; got:\n%s", want, got)
		}
	}
}

func TestDeterministic_NoFactorsWhenHealthy(t *testing.T) {
	in := sampleInput()
	in.Stress.Category = classifier.CategoryLow
	in.Burnout = scoring.BurnoutAssessment{TotalScore: 18, Level: "Low Risk", Color: "green"}
	in.Phishing = scoring.PhishingAssessment{VulnerabilityIndex: 12, RiskLevel: "Low Vulnerability", AttackSuccessProbability: 20.4}
	in.Metrics = metrics.Record{WorkHoursPerWeek: 40, SleepHoursPerDay: 8, MeetingsPerWeek: 8, EmailsPerDay: 40, TeamSupport: 8, WorkLifeBalance: 8}

	got := narrative.NewDeterministic().Render(context.Background(), in)
	if !strings.Contains(got, "Work metrics are within normal ranges.") {
		t.Errorf("healthy metrics should render the no-factors sentence; got:\n%s", got)
	}
	if !strings.Contains(got, "Continue **monitoring** these metrics monthly") {
		t.Errorf("healthy input should render default recommendations; got:\n%s", got)
	}
}

func TestDeterministic_SecurityTiers(t *testing.T) {
	tests := []struct {
		index float64
		want  string
	}{
		{75, "urgent security awareness training"},
		{55, "security awareness refresher"},
		{20, "good security awareness"},
	}
	for _, tt := range tests {
		in := sampleInput()
		in.Phishing.VulnerabilityIndex = tt.index
		got := narrative.NewDeterministic().Render(context.Background(), in)
		if !strings.Contains(got, tt.want) {
			t.Errorf("index %v: narrative missing %q; got:\n%s", tt.index, tt.want, got)
		}
	}
}

func TestDeterministic_SimilarCaseLines(t *testing.T) {
	in := sampleInput()
	in.SimilarCases = []dataset.SimilarCase{
		{
			Case: dataset.HistoricalCase{
				EmployeeID:   "EMP0007",
				StressLevel:  classifier.CategoryHigh,
				BurnoutScore: 71.5,
				Outcome:      "Intervention: Workload reduced, improved after 3 months",
			},
			Similarity: 0.93,
		},
	}

	got := narrative.NewDeterministic().Render(context.Background(), in)
	if !strings.Contains(got, "**Comparable Historical Cases:**") {
		t.Errorf("missing similar-cases heading; got:\n%s", got)
	}
	if !strings.Contains(got, "Similarity 93%: Stress: High, Burnout: 71.5/100, Outcome: Intervention: Workload reduced, improved after 3 months") {
		t.Errorf("missing similar-case line; got:\n%s", got)
	}
}

func TestDeterministic_Deterministic(t *testing.T) {
	r := narrative.NewDeterministic()
	in := sampleInput()
	if r.Render(context.Background(), in) != r.Render(context.Background(), in) {
		t.Error("Render is not deterministic for identical input")
	}
}
