package scoring

import (
	"math"

	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/metrics"
)

// phishingWeights are the fixed factor weights of the vulnerability index.
var phishingWeights = map[string]float64{
	"stress_level":    0.25,
	"burnout_score":   0.30,
	"cognitive_load":  0.25,
	"awareness_level": 0.20,
}

// phishingStressScore maps a stress category to its scalar contribution.
// Note the scale differs from the burnout mapping.
var phishingStressScore = map[classifier.Category]float64{
	classifier.CategoryLow:      20,
	classifier.CategoryMedium:   45,
	classifier.CategoryHigh:     70,
	classifier.CategoryCritical: 95,
}

// Baseline phishing click rate and its stress multiplier ceiling. A fully
// vulnerable employee is modeled as 4x as susceptible as the baseline,
// capped at 95%.
const (
	baselineClickRate = 15.0
	maxSuccessPercent = 95.0
)

// ScorePhishing computes the phishing vulnerability assessment. It runs
// strictly after the stress classifier and the burnout scorer: the category
// and burnout total are upstream outputs, not recomputed here.
func ScorePhishing(rec metrics.Record, category classifier.Category, burnoutTotal float64) PhishingAssessment {
	stressScore, ok := phishingStressScore[category]
	if !ok {
		stressScore = 50
	}

	cognitive := cognitiveLoad(rec)
	awareness := awarenessVulnerability(rec)

	index := stressScore*phishingWeights["stress_level"] +
		burnoutTotal*phishingWeights["burnout_score"] +
		cognitive*phishingWeights["cognitive_load"] +
		awareness*phishingWeights["awareness_level"]

	level, color, recommendation := phishingRisk(index)

	successProbability := math.Min(maxSuccessPercent, baselineClickRate*(1+index/100*3))

	return PhishingAssessment{
		VulnerabilityIndex:       round2(index),
		RiskLevel:                level,
		Color:                    color,
		AttackSuccessProbability: round2(successProbability),
		Recommendation:           recommendation,
		RiskFactors: PhishingFactors{
			StressContribution:     round2(stressScore * phishingWeights["stress_level"]),
			BurnoutContribution:    round2(burnoutTotal * phishingWeights["burnout_score"]),
			CognitiveLoad:          round2(cognitive),
			AwarenessVulnerability: round2(awareness),
		},
		FactorWeights: phishingWeights,
	}
}

// cognitiveLoad estimates error-proneness from email overload, meeting
// fatigue, and task complexity.
func cognitiveLoad(rec metrics.Record) float64 {
	emailFactor := clamp100(float64(rec.EmailsPerDay-30) * 0.7)
	meetingFactor := clamp100(float64(rec.MeetingsPerWeek-5) * 3)
	complexityFactor := float64(rec.TaskComplexity) * 10
	return clamp100(emailFactor*0.4 + meetingFactor*0.3 + complexityFactor*0.3)
}

// awarenessVulnerability estimates reduced security mindfulness from
// overwork, sleep deprivation, and poor work-life balance.
func awarenessVulnerability(rec metrics.Record) float64 {
	overworkFactor := clamp100((rec.WorkHoursPerWeek - 40) * 2)
	sleepFactor := clamp100((7.5 - rec.SleepHoursPerDay) * 12)
	balanceFactor := float64(10-rec.WorkLifeBalance) * 10
	return clamp100(overworkFactor*0.35 + sleepFactor*0.35 + balanceFactor*0.30)
}

// phishingRisk maps a vulnerability index to its level, color, and
// recommended action.
func phishingRisk(index float64) (level, color, recommendation string) {
	switch {
	case index < 30:
		return "Low Vulnerability", "green", "Maintain current security practices"
	case index < 50:
		return "Moderate Vulnerability", "yellow", "Schedule security awareness refresher"
	case index < 70:
		return "High Vulnerability", "orange", "Immediate security training required"
	default:
		return "Critical Vulnerability", "red", "Urgent intervention needed - high phishing risk"
	}
}
