package classifier

import (
	"math/rand"

	"github.com/stresslens/stresslens/pkg/metrics"
)

// LabelRecord derives the stress category for a metrics record using the
// linear labeling rule the model is trained against.
func LabelRecord(r metrics.Record) Category {
	score := (r.WorkHoursPerWeek-40)*0.5 +
		(8-r.SleepHoursPerDay)*5 +
		float64(r.MeetingsPerWeek)*0.3 +
		float64(r.EmailsPerDay)*0.05 +
		float64(r.DeadlinePressure)*3 +
		float64(r.TaskComplexity)*2 -
		float64(r.TeamSupport)*2 -
		float64(r.WorkLifeBalance)*2

	switch {
	case score <= 20:
		return CategoryLow
	case score <= 40:
		return CategoryMedium
	case score <= 60:
		return CategoryHigh
	default:
		return CategoryCritical
	}
}

// GenerateSamples produces n synthetic labeled training samples. The feature
// distributions and the labeling rule match the offline training corpus;
// generation is deterministic for a fixed seed.
func GenerateSamples(n int, seed int64) []Sample {
	rng := rand.New(rand.NewSource(seed))
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		rec := metrics.Record{
			WorkHoursPerWeek: rng.NormFloat64()*10 + 45,
			SleepHoursPerDay: rng.NormFloat64()*1.5 + 7,
			MeetingsPerWeek:  rng.Intn(25) + 5,
			EmailsPerDay:     rng.Intn(130) + 20,
			DeadlinePressure: rng.Intn(10) + 1,
			TaskComplexity:   rng.Intn(10) + 1,
			TeamSupport:      rng.Intn(10) + 1,
			WorkLifeBalance:  rng.Intn(10) + 1,
		}
		samples = append(samples, Sample{
			Features: rec.Features(),
			Label:    LabelRecord(rec),
		})
	}
	return samples
}
