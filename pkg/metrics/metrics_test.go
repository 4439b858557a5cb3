package metrics_test

import (
	"errors"
	"testing"

	"github.com/stresslens/stresslens/pkg/metrics"
)

func fullFieldMap() map[string]any {
	return map[string]any{
		"work_hours_per_week": 52.5,
		"sleep_hours_per_day": 6.0,
		"meetings_per_week":   18,
		"emails_per_day":      95,
		"deadline_pressure":   7,
		"task_complexity":     6,
		"team_support":        4,
		"work_life_balance":   3,
	}
}

func TestFromMap(t *testing.T) {
	got, err := metrics.FromMap(fullFieldMap())
	if err != nil {
		t.Fatalf("FromMap() error: %v", err)
	}

	want := metrics.Record{
		WorkHoursPerWeek: 52.5,
		SleepHoursPerDay: 6,
		MeetingsPerWeek:  18,
		EmailsPerDay:     95,
		DeadlinePressure: 7,
		TaskComplexity:   6,
		TeamSupport:      4,
		WorkLifeBalance:  3,
	}
	if got != want {
		t.Errorf("FromMap() = %+v, want %+v", got, want)
	}
}

func TestFromMap_MissingField(t *testing.T) {
	fields := fullFieldMap()
	delete(fields, "team_support")

	_, err := metrics.FromMap(fields)
	if !errors.Is(err, metrics.ErrInvalidMetrics) {
		t.Errorf("error = %v, want ErrInvalidMetrics", err)
	}
}

func TestFromMap_NonNumericField(t *testing.T) {
	fields := fullFieldMap()
	fields["emails_per_day"] = "lots"

	_, err := metrics.FromMap(fields)
	if !errors.Is(err, metrics.ErrInvalidMetrics) {
		t.Errorf("error = %v, want ErrInvalidMetrics", err)
	}
}

func TestFromMap_OutOfRangePassesThrough(t *testing.T) {
	fields := fullFieldMap()
	fields["work_hours_per_week"] = 200.0
	fields["team_support"] = -5

	got, err := metrics.FromMap(fields)
	if err != nil {
		t.Fatalf("FromMap() error: %v", err)
	}
	if got.WorkHoursPerWeek != 200 || got.TeamSupport != -5 {
		t.Errorf("out-of-range values altered: %+v", got)
	}
}

func TestFeatures_MatchesFeatureNameOrder(t *testing.T) {
	rec := metrics.Record{
		WorkHoursPerWeek: 1, SleepHoursPerDay: 2, MeetingsPerWeek: 3, EmailsPerDay: 4,
		DeadlinePressure: 5, TaskComplexity: 6, TeamSupport: 7, WorkLifeBalance: 8,
	}

	got := rec.Features()
	if len(metrics.FeatureNames) != metrics.NumFeatures {
		t.Fatalf("FeatureNames has %d entries, want %d", len(metrics.FeatureNames), metrics.NumFeatures)
	}
	for i, want := range []float64{1, 2, 3, 4, 5, 6, 7, 8} {
		if got[i] != want {
			t.Errorf("feature %q = %v, want %v", metrics.FeatureNames[i], got[i], want)
		}
	}
}
