// Package metrics defines the normalized workload-metrics record that feeds
// every stage of the assessment pipeline.
package metrics

import (
	"errors"
	"fmt"
)

// ErrInvalidMetrics reports a request whose metrics are missing or
// non-numeric. Values outside the declared ranges are not invalid; the
// scoring formulas clamp them instead.
var ErrInvalidMetrics = errors.New("invalid metrics")

// FeatureNames lists the eight metric features in the fixed order the
// classifier was trained with. Do not reorder.
var FeatureNames = []string{
	"work_hours_per_week",
	"sleep_hours_per_day",
	"meetings_per_week",
	"emails_per_day",
	"deadline_pressure",
	"task_complexity",
	"team_support",
	"work_life_balance",
}

// NumFeatures is the size of the feature vector.
const NumFeatures = 8

// Record is one employee's workload metrics for a single assessment.
// Immutable once built; created per request and never shared.
type Record struct {
	WorkHoursPerWeek float64 `json:"work_hours_per_week" yaml:"work_hours_per_week"`
	SleepHoursPerDay float64 `json:"sleep_hours_per_day" yaml:"sleep_hours_per_day"`
	MeetingsPerWeek  int     `json:"meetings_per_week" yaml:"meetings_per_week"`
	EmailsPerDay     int     `json:"emails_per_day" yaml:"emails_per_day"`
	DeadlinePressure int     `json:"deadline_pressure" yaml:"deadline_pressure"`
	TaskComplexity   int     `json:"task_complexity" yaml:"task_complexity"`
	TeamSupport      int     `json:"team_support" yaml:"team_support"`
	WorkLifeBalance  int     `json:"work_life_balance" yaml:"work_life_balance"`
}

// Features returns the record as a feature vector in FeatureNames order.
func (r Record) Features() [NumFeatures]float64 {
	return [NumFeatures]float64{
		r.WorkHoursPerWeek,
		r.SleepHoursPerDay,
		float64(r.MeetingsPerWeek),
		float64(r.EmailsPerDay),
		float64(r.DeadlinePressure),
		float64(r.TaskComplexity),
		float64(r.TeamSupport),
		float64(r.WorkLifeBalance),
	}
}

// FromMap builds a Record from a loosely typed field map. Every field in
// FeatureNames must be present and numeric; anything else is rejected with
// ErrInvalidMetrics. Out-of-range values pass through untouched.
func FromMap(fields map[string]any) (Record, error) {
	vals := make(map[string]float64, NumFeatures)
	for _, name := range FeatureNames {
		raw, ok := fields[name]
		if !ok {
			return Record{}, fmt.Errorf("%w: missing field %q", ErrInvalidMetrics, name)
		}
		v, ok := toFloat(raw)
		if !ok {
			return Record{}, fmt.Errorf("%w: field %q is not numeric", ErrInvalidMetrics, name)
		}
		vals[name] = v
	}
	return Record{
		WorkHoursPerWeek: vals["work_hours_per_week"],
		SleepHoursPerDay: vals["sleep_hours_per_day"],
		MeetingsPerWeek:  int(vals["meetings_per_week"]),
		EmailsPerDay:     int(vals["emails_per_day"]),
		DeadlinePressure: int(vals["deadline_pressure"]),
		TaskComplexity:   int(vals["task_complexity"]),
		TeamSupport:      int(vals["team_support"]),
		WorkLifeBalance:  int(vals["work_life_balance"]),
	}, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
