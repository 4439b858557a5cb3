// Package dataset models the historical case corpus and the similarity
// search over it. The corpus is loaded once at startup and treated as
// read-only for the process lifetime.
package dataset

import (
	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/metrics"
)

// HistoricalCase is one recorded employee case: the workload metrics plus
// the stress level, burnout score, and outcome observed at the time.
// Immutable; the similarity index never mutates the corpus.
type HistoricalCase struct {
	metrics.Record `yaml:",inline"`

	EmployeeID   string              `json:"employee_id,omitempty"`
	StressLevel  classifier.Category `json:"stress_level"`
	BurnoutScore float64             `json:"burnout_score"`
	Outcome      string              `json:"outcome"`
}

// SimilarCase pairs a historical case with its similarity to the record
// under assessment. Similarity 1 means identical on all compared fields.
type SimilarCase struct {
	Case       HistoricalCase `json:"case"`
	Similarity float64        `json:"similarity_score"`
}

// Stats summarizes a corpus for the dataset-info surfaces.
type Stats struct {
	TotalCases    int                         `json:"total_cases"`
	StressCounts  map[classifier.Category]int `json:"stress_counts"`
	AvgBurnout    float64                     `json:"avg_burnout"`
	HighRiskCount int                         `json:"high_risk_count"` // burnout > 70
}

// ComputeStats walks the corpus once and aggregates its summary statistics.
func ComputeStats(corpus []HistoricalCase) Stats {
	stats := Stats{
		TotalCases:   len(corpus),
		StressCounts: make(map[classifier.Category]int),
	}
	if len(corpus) == 0 {
		return stats
	}
	var sum float64
	for _, c := range corpus {
		stats.StressCounts[c.StressLevel]++
		sum += c.BurnoutScore
		if c.BurnoutScore > 70 {
			stats.HighRiskCount++
		}
	}
	stats.AvgBurnout = sum / float64(len(corpus))
	return stats
}
