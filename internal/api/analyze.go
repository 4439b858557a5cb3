package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/stresslens/stresslens/internal/pipeline"
	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/metrics"
)

// analyzeRequest uses pointer fields so missing metrics are distinguishable
// from zero values. Non-numeric values fail JSON decoding.
type analyzeRequest struct {
	EmployeeName     string   `json:"employee_name"`
	WorkHoursPerWeek *float64 `json:"work_hours_per_week"`
	SleepHoursPerDay *float64 `json:"sleep_hours_per_day"`
	MeetingsPerWeek  *int     `json:"meetings_per_week"`
	EmailsPerDay     *int     `json:"emails_per_day"`
	DeadlinePressure *int     `json:"deadline_pressure"`
	TaskComplexity   *int     `json:"task_complexity"`
	TeamSupport      *int     `json:"team_support"`
	WorkLifeBalance  *int     `json:"work_life_balance"`
}

func (r *analyzeRequest) record() (metrics.Record, error) {
	missing := func(name string) (metrics.Record, error) {
		return metrics.Record{}, fmt.Errorf("%w: missing field %q", metrics.ErrInvalidMetrics, name)
	}
	switch {
	case r.WorkHoursPerWeek == nil:
		return missing("work_hours_per_week")
	case r.SleepHoursPerDay == nil:
		return missing("sleep_hours_per_day")
	case r.MeetingsPerWeek == nil:
		return missing("meetings_per_week")
	case r.EmailsPerDay == nil:
		return missing("emails_per_day")
	case r.DeadlinePressure == nil:
		return missing("deadline_pressure")
	case r.TaskComplexity == nil:
		return missing("task_complexity")
	case r.TeamSupport == nil:
		return missing("team_support")
	case r.WorkLifeBalance == nil:
		return missing("work_life_balance")
	}
	return metrics.Record{
		WorkHoursPerWeek: *r.WorkHoursPerWeek,
		SleepHoursPerDay: *r.SleepHoursPerDay,
		MeetingsPerWeek:  *r.MeetingsPerWeek,
		EmailsPerDay:     *r.EmailsPerDay,
		DeadlinePressure: *r.DeadlinePressure,
		TaskComplexity:   *r.TaskComplexity,
		TeamSupport:      *r.TeamSupport,
		WorkLifeBalance:  *r.WorkLifeBalance,
	}, nil
}

type analyzeResponse struct {
	Success bool `json:"success"`
	*pipeline.Result
}

// handleAnalyze runs the full assessment pipeline for one request.
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	rec, err := req.record()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	name := req.EmployeeName
	if name == "" {
		name = "Employee"
	}

	result, err := h.svc.Assess(r.Context(), name, rec)
	if err != nil {
		if errors.Is(err, classifier.ErrModelUnavailable) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
		} else {
			h.logger.Error("assessment failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.metrics.AssessmentsTotal.WithLabelValues(string(result.Stress.Category)).Inc()
	h.metrics.AnalyzeDuration.Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, analyzeResponse{Success: true, Result: result})
}
