package narrative

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/stresslens/stresslens/pkg/classifier"
)

// Deterministic is the rule-based renderer. Its branch thresholds are
// literal copies of the scorer thresholds so the narrative never
// contradicts the numbers it describes.
type Deterministic struct{}

// NewDeterministic returns the rule-based renderer.
func NewDeterministic() *Deterministic {
	return &Deterministic{}
}

// Render assembles the summary: opening, contributing factors, security
// clause, recommendations, and similar-case lines, always in that order.
func (d *Deterministic) Render(_ context.Context, in Input) string {
	var b strings.Builder

	b.WriteString(d.opening(in))
	b.WriteString(" ")
	b.WriteString(d.factors(in))
	b.WriteString("\n\n")
	b.WriteString(d.security(in))
	b.WriteString("\n\n")
	b.WriteString(d.recommendations(in))

	if lines := d.similarCases(in); lines != "" {
		b.WriteString("\n\n")
		b.WriteString(lines)
	}

	return b.String()
}

func (d *Deterministic) opening(in Input) string {
	name := in.EmployeeName
	stress := strings.ToLower(string(in.Stress.Category))
	score := num(in.Burnout.TotalScore)
	level := in.Burnout.Level

	switch {
	case in.Burnout.TotalScore >= 70 || in.Stress.Category == classifier.CategoryCritical:
		return fmt.Sprintf("%s is currently experiencing **%s stress levels** with a burnout score of **%s/100** (%s). This situation requires immediate attention.",
			name, stress, score, level)
	case in.Burnout.TotalScore >= 50 || in.Stress.Category == classifier.CategoryHigh:
		return fmt.Sprintf("%s shows **%s stress levels** and a burnout score of **%s/100** (%s), indicating elevated risk that should be addressed proactively.",
			name, stress, score, level)
	default:
		return fmt.Sprintf("%s currently maintains **%s stress levels** with a burnout score of **%s/100** (%s), showing relatively healthy work patterns.",
			name, stress, score, level)
	}
}

func (d *Deterministic) factors(in Input) string {
	m := in.Metrics
	var factors []string

	if m.WorkHoursPerWeek > 50 {
		factors = append(factors, fmt.Sprintf("working **%s hours/week** (above recommended levels)", num(m.WorkHoursPerWeek)))
	}
	if m.SleepHoursPerDay < 6.5 {
		factors = append(factors, fmt.Sprintf("averaging only **%s hours of sleep** (below optimal)", num(m.SleepHoursPerDay)))
	}
	if m.MeetingsPerWeek > 20 {
		factors = append(factors, fmt.Sprintf("attending **%d meetings/week** (high meeting load)", m.MeetingsPerWeek))
	}
	if m.EmailsPerDay > 100 {
		factors = append(factors, fmt.Sprintf("processing **%d emails/day** (significant communication overhead)", m.EmailsPerDay))
	}

	if len(factors) == 0 {
		return "Work metrics are within normal ranges."
	}
	return fmt.Sprintf("Key contributing factors include %s.", strings.Join(factors, ", "))
}

func (d *Deterministic) security(in Input) string {
	idx := in.Phishing.VulnerabilityIndex
	s := fmt.Sprintf("From a security perspective, the **Phishing Vulnerability Index** stands at **%s/100** (%s), with an estimated **%s%% attack success probability**. ",
		num(idx), in.Phishing.RiskLevel, num(in.Phishing.AttackSuccessProbability))

	switch {
	case idx >= 70:
		s += "This elevated vulnerability requires urgent security awareness training and workload management."
	case idx >= 50:
		s += "This moderate vulnerability suggests scheduling a security awareness refresher while addressing workload concerns."
	default:
		s += "This relatively low vulnerability indicates good security awareness, though continuous monitoring is recommended."
	}
	return s
}

func (d *Deterministic) recommendations(in Input) string {
	m := in.Metrics
	var recs []string

	switch {
	case in.Burnout.TotalScore >= 70:
		recs = append(recs,
			"**Immediate workload review** and potential redistribution",
			"Schedule **wellness consultation** within 48 hours")
	case in.Burnout.TotalScore >= 50:
		recs = append(recs,
			"**Schedule a check-in** to discuss workload and support needs",
			"Consider **flexible work arrangements** if feasible")
	}

	if m.SleepHoursPerDay < 6.5 {
		recs = append(recs, "Encourage **better sleep hygiene** and time management")
	}
	if m.MeetingsPerWeek > 20 {
		recs = append(recs, "**Audit meeting necessity** and reduce where possible")
	}
	if in.Phishing.VulnerabilityIndex >= 50 {
		recs = append(recs,
			"Provide **targeted security awareness training**",
			"Implement **email filtering** and additional safeguards")
	}

	if len(recs) == 0 {
		recs = append(recs,
			"Continue **monitoring** these metrics monthly",
			"Maintain current **support structures**")
	}

	var b strings.Builder
	b.WriteString("**Recommended Actions:**")
	for _, r := range recs {
		b.WriteString("\n- ")
		b.WriteString(r)
	}
	return b.String()
}

func (d *Deterministic) similarCases(in Input) string {
	if len(in.SimilarCases) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("**Comparable Historical Cases:**")
	for _, sc := range in.SimilarCases {
		b.WriteString(fmt.Sprintf("\n- Similarity %.0f%%: Stress: %s, Burnout: %s/100, Outcome: %s",
			sc.Similarity*100, sc.Case.StressLevel, num(sc.Case.BurnoutScore), sc.Case.Outcome))
	}
	return b.String()
}

// num formats a score without trailing zeros ("68", "89.25").
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
