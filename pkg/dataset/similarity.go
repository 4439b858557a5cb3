package dataset

import (
	"math"
	"sort"

	"github.com/stresslens/stresslens/pkg/metrics"
)

// comparableFields are the six numeric fields the similarity metric
// compares. The ordinal support/balance fields are deliberately excluded.
var comparableFields = []func(metrics.Record) float64{
	func(r metrics.Record) float64 { return r.WorkHoursPerWeek },
	func(r metrics.Record) float64 { return r.SleepHoursPerDay },
	func(r metrics.Record) float64 { return float64(r.MeetingsPerWeek) },
	func(r metrics.Record) float64 { return float64(r.EmailsPerDay) },
	func(r metrics.Record) float64 { return float64(r.DeadlinePressure) },
	func(r metrics.Record) float64 { return float64(r.TaskComplexity) },
}

// Similarity computes the normalized relative-difference similarity between
// two records: the mean over the comparable fields of 1 - |a-b|/max(a,b,1).
// The max(...,1) guard keeps the ratio defined when both values are zero.
func Similarity(a, b metrics.Record) float64 {
	var sum float64
	var count int
	for _, field := range comparableFields {
		av, bv := field(a), field(b)
		denom := math.Max(math.Max(av, bv), 1)
		sum += 1 - math.Abs(av-bv)/denom
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// FindSimilar returns the up-to-n most similar historical cases, sorted by
// similarity strictly descending with corpus order preserved among ties.
// An empty corpus yields an empty result, not an error.
//
// The scan is O(len(corpus)) per call, which is fine for the small
// in-memory corpora this serves. A large corpus would want an indexed
// nearest-neighbor structure instead.
func FindSimilar(rec metrics.Record, corpus []HistoricalCase, n int) []SimilarCase {
	if n <= 0 || len(corpus) == 0 {
		return nil
	}

	results := make([]SimilarCase, 0, len(corpus))
	for _, c := range corpus {
		results = append(results, SimilarCase{
			Case:       c,
			Similarity: Similarity(rec, c.Record),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > n {
		results = results[:n]
	}
	return results
}
