package narrative

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

const systemPrompt = "You are an expert HR consultant specializing in employee wellbeing and security risk assessment."

// completeFunc abstracts the model call so tests can inject failures.
type completeFunc func(ctx context.Context, system, user string) (string, error)

// Generative renders the narrative with a hosted model. Any failure
// (timeout, quota, malformed response) recovers locally through the
// deterministic renderer; callers never see a generative error.
type Generative struct {
	model    string
	timeout  time.Duration
	complete completeFunc
	fallback *Deterministic
}

// NewGenerative builds an Anthropic-backed renderer. The model and timeout
// fall back to sensible defaults when zero.
func NewGenerative(apiKey, model string, timeout time.Duration) *Generative {
	if model == "" {
		model = defaultAnthropicModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &Generative{
		model:    model,
		timeout:  timeout,
		fallback: NewDeterministic(),
		complete: func(ctx context.Context, system, user string) (string, error) {
			message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
				Model:     anthropic.Model(model),
				MaxTokens: 1024,
				System: []anthropic.TextBlockParam{
					{Text: system},
				},
				Messages: []anthropic.MessageParam{
					anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
				},
			})
			if err != nil {
				return "", fmt.Errorf("anthropic: %w", err)
			}
			for _, block := range message.Content {
				if block.Type == "text" {
					return block.Text, nil
				}
			}
			return "", fmt.Errorf("no text content in response")
		},
	}
}

// Render calls the model and falls back to the deterministic renderer on
// any failure. The fallback is mandatory, not best-effort.
func (g *Generative) Render(ctx context.Context, in Input) string {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.complete(callCtx, systemPrompt, buildPrompt(in))
	if err != nil || strings.TrimSpace(text) == "" {
		log.Printf("narrative generative render failed, using deterministic fallback: %v", err)
		return g.fallback.Render(ctx, in)
	}
	return text
}

// buildPrompt lays out the assessment for the model. The prompt carries the
// already-computed numbers; the model writes prose, it does not score.
func buildPrompt(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "As an executive HR consultant, provide a professional summary for %s.\n\n", in.EmployeeName)
	fmt.Fprintf(&b, "Analysis Results:\n")
	fmt.Fprintf(&b, "- Stress Level: %s (Confidence: %.1f%%)\n", in.Stress.Category, in.Stress.Confidence*100)
	fmt.Fprintf(&b, "- Burnout Score: %s/100 (%s)\n", num(in.Burnout.TotalScore), in.Burnout.Level)
	fmt.Fprintf(&b, "- Phishing Vulnerability: %s/100 (%s)\n", num(in.Phishing.VulnerabilityIndex), in.Phishing.RiskLevel)
	fmt.Fprintf(&b, "- Attack Success Probability: %s%%\n\n", num(in.Phishing.AttackSuccessProbability))

	fmt.Fprintf(&b, "Component Breakdown:\n")
	fmt.Fprintf(&b, "- Emotional Exhaustion: %s/100\n", num(in.Burnout.Components.EmotionalExhaustion))
	fmt.Fprintf(&b, "- Depersonalization: %s/100\n", num(in.Burnout.Components.Depersonalization))
	fmt.Fprintf(&b, "- Work Overload: %s/100\n\n", num(in.Burnout.Components.WorkOverload))

	fmt.Fprintf(&b, "Key Metrics:\n")
	fmt.Fprintf(&b, "- Work Hours/Week: %s\n", num(in.Metrics.WorkHoursPerWeek))
	fmt.Fprintf(&b, "- Sleep Hours/Day: %s\n", num(in.Metrics.SleepHoursPerDay))
	fmt.Fprintf(&b, "- Meetings/Week: %d\n", in.Metrics.MeetingsPerWeek)
	fmt.Fprintf(&b, "- Emails/Day: %d\n", in.Metrics.EmailsPerDay)

	if len(in.SimilarCases) > 0 {
		fmt.Fprintf(&b, "\nSimilar Historical Cases:\n")
		for i, sc := range in.SimilarCases {
			fmt.Fprintf(&b, "- Case %d (Similarity: %.0f%%): Stress: %s, Burnout: %s/100, Outcome: %s\n",
				i+1, sc.Similarity*100, sc.Case.StressLevel, num(sc.Case.BurnoutScore), sc.Case.Outcome)
		}
	}

	b.WriteString("\nProvide a 2-3 paragraph executive summary that:\n")
	b.WriteString("1. Summarizes the employee's current state\n")
	b.WriteString("2. Identifies key risk factors\n")
	b.WriteString("3. Provides actionable recommendations\n")
	b.WriteString("Be professional, empathetic, and data-driven.")

	return b.String()
}
