package scoring

import (
	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/metrics"
)

// burnoutWeights are the fixed dimension weights of the composite burnout
// score. They sum to 1.0.
var burnoutWeights = map[string]float64{
	"emotional_exhaustion":    0.35,
	"depersonalization":       0.25,
	"personal_accomplishment": 0.20,
	"work_overload":           0.20,
}

// burnoutStressScore maps a stress category to its scalar contribution.
var burnoutStressScore = map[classifier.Category]float64{
	classifier.CategoryLow:      25,
	classifier.CategoryMedium:   50,
	classifier.CategoryHigh:     75,
	classifier.CategoryCritical: 100,
}

// ScoreBurnout computes the composite burnout assessment for a metrics
// record and an upstream stress category. It is deterministic and total:
// extreme inputs are clamped by each sub-formula, never rejected.
//
// The clamp placement inside each sub-formula is a regression target.
// Some formulas clamp intermediate factors, others only the final sum;
// do not normalize them.
func ScoreBurnout(rec metrics.Record, category classifier.Category) BurnoutAssessment {
	stressScore, ok := burnoutStressScore[category]
	if !ok {
		stressScore = burnoutStressScore[classifier.CategoryMedium]
	}

	ee := emotionalExhaustion(rec, stressScore)
	dp := depersonalization(rec)
	pa := personalAccomplishment(rec)
	wo := workOverload(rec)

	total := ee*burnoutWeights["emotional_exhaustion"] +
		dp*burnoutWeights["depersonalization"] +
		pa*burnoutWeights["personal_accomplishment"] +
		wo*burnoutWeights["work_overload"]

	level, color := burnoutLevel(total)

	return BurnoutAssessment{
		TotalScore: round2(total),
		Level:      level,
		Color:      color,
		Components: BurnoutComponents{
			EmotionalExhaustion:    round2(ee),
			Depersonalization:      round2(dp),
			PersonalAccomplishment: round2(pa),
			WorkOverload:           round2(wo),
		},
		Weights: burnoutWeights,
	}
}

// emotionalExhaustion combines overwork, sleep deprivation, and the stress
// scalar. 40 h/week is the work baseline; 7.5 h/day the sleep baseline.
func emotionalExhaustion(rec metrics.Record, stressScore float64) float64 {
	workFactor := clamp100((rec.WorkHoursPerWeek - 40) * 5)
	sleepFactor := clamp100((7.5 - rec.SleepHoursPerDay) * 15)
	return clamp100(workFactor*0.4 + sleepFactor*0.3 + stressScore*0.3)
}

// depersonalization rises with low support, poor work-life balance, and
// meeting fatigue.
func depersonalization(rec metrics.Record) float64 {
	supportFactor := float64(10-rec.TeamSupport) * 10
	balanceFactor := float64(10-rec.WorkLifeBalance) * 10
	meetingFactor := clamp100(float64(rec.MeetingsPerWeek-10) * 3)
	return clamp100(supportFactor*0.4 + balanceFactor*0.4 + meetingFactor*0.2)
}

// personalAccomplishment measures reduced sense of accomplishment: high
// complexity under high pressure, with a synergistic cross term.
func personalAccomplishment(rec metrics.Record) float64 {
	complexityFactor := float64(rec.TaskComplexity) * 5
	pressureFactor := float64(rec.DeadlinePressure) * 5
	synergy := float64(rec.TaskComplexity*rec.DeadlinePressure) * 0.5
	return clamp100(complexityFactor*0.3 + pressureFactor*0.4 + synergy*0.3)
}

// workOverload combines hours, email volume, and meeting load.
func workOverload(rec metrics.Record) float64 {
	hoursFactor := clamp100((rec.WorkHoursPerWeek - 40) * 3)
	emailFactor := clamp100(float64(rec.EmailsPerDay-50) * 0.5)
	meetingFactor := clamp100(float64(rec.MeetingsPerWeek-10) * 4)
	return clamp100(hoursFactor*0.5 + emailFactor*0.25 + meetingFactor*0.25)
}

// burnoutLevel maps a total score to its risk level and display color.
func burnoutLevel(total float64) (level, color string) {
	switch {
	case total < 30:
		return "Low Risk", "green"
	case total < 50:
		return "Moderate Risk", "yellow"
	case total < 70:
		return "High Risk", "orange"
	default:
		return "Critical Risk", "red"
	}
}
