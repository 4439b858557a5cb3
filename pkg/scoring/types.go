// Package scoring implements the deterministic composite-scoring engines:
// the burnout score and the phishing vulnerability index. Both are pure
// functions of a metrics record plus upstream pipeline outputs, and both
// produce explainable, component-level breakdowns.
package scoring

import "math"

// BurnoutComponents holds the four bounded burnout sub-scores, each in
// [0,100] with higher meaning worse.
type BurnoutComponents struct {
	EmotionalExhaustion    float64 `json:"emotional_exhaustion"`
	Depersonalization      float64 `json:"depersonalization"`
	PersonalAccomplishment float64 `json:"personal_accomplishment"`
	WorkOverload           float64 `json:"work_overload"`
}

// BurnoutAssessment is the complete output of the burnout scorer.
// Immutable once computed.
type BurnoutAssessment struct {
	TotalScore float64            `json:"total_score"`
	Level      string             `json:"level"`
	Color      string             `json:"color"`
	Components BurnoutComponents  `json:"components"`
	Weights    map[string]float64 `json:"weights"`
}

// PhishingFactors breaks the vulnerability index into its weighted inputs.
// Stress and burnout entries are already weighted contributions; cognitive
// load and awareness vulnerability are the raw sub-scores.
type PhishingFactors struct {
	StressContribution     float64 `json:"stress_contribution"`
	BurnoutContribution    float64 `json:"burnout_contribution"`
	CognitiveLoad          float64 `json:"cognitive_load"`
	AwarenessVulnerability float64 `json:"awareness_vulnerability"`
}

// PhishingAssessment is the complete output of the phishing risk scorer.
// Immutable once computed.
type PhishingAssessment struct {
	VulnerabilityIndex       float64            `json:"vulnerability_index"`
	RiskLevel                string             `json:"risk_level"`
	Color                    string             `json:"color"`
	AttackSuccessProbability float64            `json:"attack_success_probability"`
	Recommendation           string             `json:"recommendation"`
	RiskFactors              PhishingFactors    `json:"risk_factors"`
	FactorWeights            map[string]float64 `json:"factor_weights"`
}

// clamp100 bounds a value to [0,100]. Negative intermediates floor at 0.
func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// round2 rounds to two decimals for stable, display-ready scores.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
