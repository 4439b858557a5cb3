package dataset_test

import (
	"testing"

	"github.com/stresslens/stresslens/pkg/dataset"
	"github.com/stresslens/stresslens/pkg/metrics"
)

func record(hours, sleep float64, meetings, emails, pressure, complexity int) metrics.Record {
	return metrics.Record{
		WorkHoursPerWeek: hours,
		SleepHoursPerDay: sleep,
		MeetingsPerWeek:  meetings,
		EmailsPerDay:     emails,
		DeadlinePressure: pressure,
		TaskComplexity:   complexity,
		TeamSupport:      5,
		WorkLifeBalance:  5,
	}
}

func TestSimilarity_SelfIsExactlyOne(t *testing.T) {
	recs := []metrics.Record{
		record(45, 7, 12, 80, 5, 4),
		record(0, 0, 0, 0, 0, 0),
		record(80, 3.5, 35, 250, 10, 10),
	}
	for _, r := range recs {
		if got := dataset.Similarity(r, r); got != 1.0 {
			t.Errorf("Similarity(r, r) = %v, want exactly 1.0", got)
		}
	}
}

func TestSimilarity_SymmetricAndBounded(t *testing.T) {
	a := record(45, 7, 12, 80, 5, 4)
	b := record(60, 5, 25, 160, 9, 8)

	ab := dataset.Similarity(a, b)
	ba := dataset.Similarity(b, a)
	if ab != ba {
		t.Errorf("Similarity not symmetric: %v vs %v", ab, ba)
	}
	if ab < 0 || ab > 1 {
		t.Errorf("Similarity = %v out of [0,1]", ab)
	}
}

func TestSimilarity_IgnoresSupportAndBalance(t *testing.T) {
	a := record(45, 7, 12, 80, 5, 4)
	b := a
	b.TeamSupport = 1
	b.WorkLifeBalance = 10

	if got := dataset.Similarity(a, b); got != 1.0 {
		t.Errorf("Similarity = %v, want 1.0 when only support/balance differ", got)
	}
}

func TestFindSimilar_Ordering(t *testing.T) {
	target := record(50, 6, 15, 100, 6, 5)
	corpus := []dataset.HistoricalCase{
		{EmployeeID: "far", Record: record(20, 10, 2, 5, 1, 1)},
		{EmployeeID: "exact", Record: record(50, 6, 15, 100, 6, 5)},
		{EmployeeID: "close", Record: record(52, 6.2, 16, 95, 6, 5)},
	}

	got := dataset.FindSimilar(target, corpus, 3)
	if len(got) != 3 {
		t.Fatalf("got %d cases, want 3", len(got))
	}
	if got[0].Case.EmployeeID != "exact" {
		t.Errorf("top case = %q, want exact match first", got[0].Case.EmployeeID)
	}
	if got[1].Case.EmployeeID != "close" {
		t.Errorf("second case = %q, want close", got[1].Case.EmployeeID)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Similarity > got[i-1].Similarity {
			t.Errorf("similarity increased at %d: %v > %v", i, got[i].Similarity, got[i-1].Similarity)
		}
	}
	if got[0].Similarity != 1.0 {
		t.Errorf("exact match similarity = %v, want 1.0", got[0].Similarity)
	}
}

func TestFindSimilar_CountCappedByCorpus(t *testing.T) {
	target := record(50, 6, 15, 100, 6, 5)
	corpus := []dataset.HistoricalCase{
		{EmployeeID: "a", Record: record(40, 7, 10, 60, 3, 3)},
		{EmployeeID: "b", Record: record(55, 6, 20, 120, 7, 6)},
	}

	if got := dataset.FindSimilar(target, corpus, 5); len(got) != 2 {
		t.Errorf("got %d cases, want 2 (corpus size)", len(got))
	}
	if got := dataset.FindSimilar(target, corpus, 1); len(got) != 1 {
		t.Errorf("got %d cases, want 1", len(got))
	}
}

func TestFindSimilar_EmptyCorpusAndZeroN(t *testing.T) {
	target := record(50, 6, 15, 100, 6, 5)

	if got := dataset.FindSimilar(target, nil, 3); len(got) != 0 {
		t.Errorf("empty corpus returned %d cases", len(got))
	}
	corpus := []dataset.HistoricalCase{{EmployeeID: "a", Record: record(40, 7, 10, 60, 3, 3)}}
	if got := dataset.FindSimilar(target, corpus, 0); len(got) != 0 {
		t.Errorf("n=0 returned %d cases", len(got))
	}
}

func TestFindSimilar_TiesKeepCorpusOrder(t *testing.T) {
	target := record(50, 6, 15, 100, 6, 5)
	tied := record(50, 6, 15, 100, 6, 5)
	corpus := []dataset.HistoricalCase{
		{EmployeeID: "first", Record: tied},
		{EmployeeID: "second", Record: tied},
		{EmployeeID: "third", Record: tied},
	}

	got := dataset.FindSimilar(target, corpus, 3)
	for i, want := range []string{"first", "second", "third"} {
		if got[i].Case.EmployeeID != want {
			t.Errorf("position %d = %q, want %q", i, got[i].Case.EmployeeID, want)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := dataset.Generate(50, 9)
	b := dataset.Generate(50, 9)

	if len(a) != 50 {
		t.Fatalf("got %d cases, want 50", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("case %d differs across identical seeds", i)
		}
	}
	for _, c := range a {
		if c.EmployeeID == "" {
			t.Error("generated case missing employee ID")
		}
		if c.BurnoutScore < 0 || c.BurnoutScore > 100 {
			t.Errorf("burnout score %v out of range", c.BurnoutScore)
		}
		if c.Outcome == "" {
			t.Error("generated case missing outcome")
		}
	}
}

func TestComputeStats(t *testing.T) {
	cases := dataset.Generate(200, 42)
	stats := dataset.ComputeStats(cases)

	if stats.TotalCases != 200 {
		t.Errorf("TotalCases = %d, want 200", stats.TotalCases)
	}
	counted := 0
	for _, n := range stats.StressCounts {
		counted += n
	}
	if counted != 200 {
		t.Errorf("stress counts sum to %d, want 200", counted)
	}
	if stats.AvgBurnout < 0 || stats.AvgBurnout > 100 {
		t.Errorf("AvgBurnout = %v out of range", stats.AvgBurnout)
	}
	if stats.HighRiskCount > stats.TotalCases {
		t.Errorf("HighRiskCount = %d exceeds total %d", stats.HighRiskCount, stats.TotalCases)
	}
}
