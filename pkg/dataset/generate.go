package dataset

import (
	"fmt"
	"math/rand"

	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/metrics"
)

// Generate produces n synthetic historical cases for demos and tests.
// Deterministic for a fixed seed. The stress labels follow the same rule
// the classifier is trained against; the recorded burnout score uses a
// simplified historical formula rather than the live scorer, matching how
// the corpus was originally collected.
func Generate(n int, seed int64) []HistoricalCase {
	rng := rand.New(rand.NewSource(seed))
	cases := make([]HistoricalCase, 0, n)

	for i := 0; i < n; i++ {
		rec := metrics.Record{
			WorkHoursPerWeek: clampRange(rng.NormFloat64()*10+45, 20, 80),
			SleepHoursPerDay: clampRange(rng.NormFloat64()*1.5+7, 3, 12),
			MeetingsPerWeek:  rng.Intn(30) + 5,
			EmailsPerDay:     rng.Intn(180) + 20,
			DeadlinePressure: rng.Intn(10) + 1,
			TaskComplexity:   rng.Intn(10) + 1,
			TeamSupport:      rng.Intn(10) + 1,
			WorkLifeBalance:  rng.Intn(10) + 1,
		}

		burnout := clampRange(
			(rec.WorkHoursPerWeek-40)*0.8+
				(8-rec.SleepHoursPerDay)*6+
				float64(rec.DeadlinePressure)*4+
				float64(10-rec.TeamSupport)*3+
				float64(10-rec.WorkLifeBalance)*3,
			0, 100)

		cases = append(cases, HistoricalCase{
			Record:       rec,
			EmployeeID:   fmt.Sprintf("EMP%04d", i+1),
			StressLevel:  classifier.LabelRecord(rec),
			BurnoutScore: burnout,
			Outcome:      outcomeFor(burnout),
		})
	}
	return cases
}

func outcomeFor(burnout float64) string {
	switch {
	case burnout > 70:
		return "Intervention: Workload reduced, improved after 3 months"
	case burnout > 50:
		return "Monitoring: Regular check-ins scheduled"
	default:
		return "Healthy: Continuing normal work pattern"
	}
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
