package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/dataset"
)

// csvHeader is the column order the writer emits. The reader is
// header-driven and accepts any column order.
var csvHeader = []string{
	"employee_id",
	"work_hours_per_week",
	"sleep_hours_per_day",
	"meetings_per_week",
	"emails_per_day",
	"deadline_pressure",
	"task_complexity",
	"team_support",
	"work_life_balance",
	"stress_level",
	"burnout_score",
	"outcome",
}

// LoadCSV reads a corpus from a CSV file with a header row.
func LoadCSV(path string) ([]dataset.HistoricalCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}

	cases := make([]dataset.HistoricalCase, 0, len(rows)-1)
	for line, row := range rows[1:] {
		c, err := caseFromRow(col, row)
		if err != nil {
			return nil, fmt.Errorf("dataset csv line %d: %w", line+2, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// SaveCSV writes a corpus as CSV with a header row.
func SaveCSV(path string, cases []dataset.HistoricalCase) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range cases {
		row := []string{
			c.EmployeeID,
			formatFloat(c.WorkHoursPerWeek),
			formatFloat(c.SleepHoursPerDay),
			strconv.Itoa(c.MeetingsPerWeek),
			strconv.Itoa(c.EmailsPerDay),
			strconv.Itoa(c.DeadlinePressure),
			strconv.Itoa(c.TaskComplexity),
			strconv.Itoa(c.TeamSupport),
			strconv.Itoa(c.WorkLifeBalance),
			string(c.StressLevel),
			formatFloat(c.BurnoutScore),
			c.Outcome,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func caseFromRow(col map[string]int, row []string) (dataset.HistoricalCase, error) {
	var c dataset.HistoricalCase
	var err error

	get := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	c.EmployeeID = get("employee_id")
	c.Outcome = get("outcome")
	c.StressLevel = classifier.Category(get("stress_level"))

	if c.WorkHoursPerWeek, err = parseFloat(get("work_hours_per_week")); err != nil {
		return c, err
	}
	if c.SleepHoursPerDay, err = parseFloat(get("sleep_hours_per_day")); err != nil {
		return c, err
	}
	if c.BurnoutScore, err = parseFloat(get("burnout_score")); err != nil {
		return c, err
	}
	if c.MeetingsPerWeek, err = parseInt(get("meetings_per_week")); err != nil {
		return c, err
	}
	if c.EmailsPerDay, err = parseInt(get("emails_per_day")); err != nil {
		return c, err
	}
	if c.DeadlinePressure, err = parseInt(get("deadline_pressure")); err != nil {
		return c, err
	}
	if c.TaskComplexity, err = parseInt(get("task_complexity")); err != nil {
		return c, err
	}
	if c.TeamSupport, err = parseInt(get("team_support")); err != nil {
		return c, err
	}
	if c.WorkLifeBalance, err = parseInt(get("work_life_balance")); err != nil {
		return c, err
	}
	return c, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", s, err)
	}
	return v, nil
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	// Some exports write integer columns with a decimal point.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", s, err)
	}
	return int(v), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
