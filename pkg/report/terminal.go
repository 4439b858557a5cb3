package report

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// TerminalRenderer renders a Report as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// riskColor maps the scorer's display color names to ANSI codes. Orange
// renders as yellow; basic terminals have no orange.
func riskColor(name string) string {
	if noColor() {
		return ""
	}
	switch name {
	case "green":
		return colorGreen
	case "yellow", "orange":
		return colorYellow
	case "red":
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, rep *Report) error {
	// Header
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("StressLens: %s — Stress %s (%.1f%% confidence)",
			rep.EmployeeName, colored(string(rep.Stress.Category), riskColor(rep.Burnout.Color)),
			rep.Stress.Confidence*100)))

	// Scores
	fmt.Fprintf(w, "Burnout: %s %v/100\n",
		colored(rep.Burnout.Level, riskColor(rep.Burnout.Color)), rep.Burnout.TotalScore)
	fmt.Fprintf(w, "  %s\n", dim(fmt.Sprintf("exhaustion %v / depersonalization %v / accomplishment %v / overload %v",
		rep.Burnout.Components.EmotionalExhaustion, rep.Burnout.Components.Depersonalization,
		rep.Burnout.Components.PersonalAccomplishment, rep.Burnout.Components.WorkOverload)))
	fmt.Fprintf(w, "Phishing: %s %v/100, attack success %v%%\n",
		colored(rep.Phishing.RiskLevel, riskColor(rep.Phishing.Color)),
		rep.Phishing.VulnerabilityIndex, rep.Phishing.AttackSuccessProbability)
	fmt.Fprintf(w, "  %s\n\n", dim(rep.Phishing.Recommendation))

	// Similar cases
	if len(rep.SimilarCases) > 0 {
		fmt.Fprintln(w, "Similar cases:")
		for _, sc := range rep.SimilarCases {
			fmt.Fprintf(w, "  %s %s — %.0f%% similar, %s\n",
				colored("●", colorYellow), bold(string(sc.Case.StressLevel)),
				sc.Similarity*100, sc.Case.Outcome)
		}
		fmt.Fprintln(w)
	}

	// Narrative
	if rep.Explanation != "" {
		fmt.Fprintln(w, "Summary:")
		for _, para := range strings.Split(rep.Explanation, "\n") {
			if strings.TrimSpace(para) == "" {
				fmt.Fprintln(w)
				continue
			}
			for _, line := range wrapText(para, 76) {
				fmt.Fprintf(w, "  %s\n", line)
			}
		}
	}

	return nil
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
