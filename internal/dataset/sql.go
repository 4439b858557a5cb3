package dataset

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/dataset"
)

const selectCases = `
	SELECT employee_id, work_hours_per_week, sleep_hours_per_day,
	       meetings_per_week, emails_per_day, deadline_pressure,
	       task_complexity, team_support, work_life_balance,
	       stress_level, burnout_score, outcome
	FROM historical_cases
	ORDER BY id ASC`

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS historical_cases (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id         TEXT DEFAULT '',
		work_hours_per_week REAL NOT NULL,
		sleep_hours_per_day REAL NOT NULL,
		meetings_per_week   INTEGER NOT NULL,
		emails_per_day      INTEGER NOT NULL,
		deadline_pressure   INTEGER NOT NULL,
		task_complexity     INTEGER NOT NULL,
		team_support        INTEGER NOT NULL,
		work_life_balance   INTEGER NOT NULL,
		stress_level        TEXT NOT NULL,
		burnout_score       REAL NOT NULL,
		outcome             TEXT DEFAULT ''
	);`

// LoadSQLite reads the corpus from an embedded SQLite database, creating
// the schema if the file is new.
func LoadSQLite(ctx context.Context, path string) ([]dataset.HistoricalCase, error) {
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return queryCases(ctx, db)
}

// OpenSQLite opens (and if needed initializes) a SQLite corpus database.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return db, nil
}

// LoadPostgres reads the corpus from Postgres, running pending migrations
// first.
func LoadPostgres(ctx context.Context, dsn string) ([]dataset.HistoricalCase, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return queryCases(ctx, db)
}

func queryCases(ctx context.Context, db *sql.DB) ([]dataset.HistoricalCase, error) {
	rows, err := db.QueryContext(ctx, selectCases)
	if err != nil {
		return nil, fmt.Errorf("query historical cases: %w", err)
	}
	defer rows.Close()

	var cases []dataset.HistoricalCase
	for rows.Next() {
		var c dataset.HistoricalCase
		var level string
		if err := rows.Scan(
			&c.EmployeeID, &c.WorkHoursPerWeek, &c.SleepHoursPerDay,
			&c.MeetingsPerWeek, &c.EmailsPerDay, &c.DeadlinePressure,
			&c.TaskComplexity, &c.TeamSupport, &c.WorkLifeBalance,
			&level, &c.BurnoutScore, &c.Outcome,
		); err != nil {
			return nil, fmt.Errorf("scan historical case: %w", err)
		}
		c.StressLevel = classifier.Category(level)
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate historical cases: %w", err)
	}
	return cases, nil
}

// InsertCases appends cases to an open corpus database. The placeholder
// style is SQLite's; Postgres writes go through the migration-managed
// schema and the same column order.
func InsertCases(ctx context.Context, db *sql.DB, cases []dataset.HistoricalCase) error {
	stmt, err := db.PrepareContext(ctx, `
		INSERT INTO historical_cases (
			employee_id, work_hours_per_week, sleep_hours_per_day,
			meetings_per_week, emails_per_day, deadline_pressure,
			task_complexity, team_support, work_life_balance,
			stress_level, burnout_score, outcome
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cases {
		if _, err := stmt.ExecContext(ctx,
			c.EmployeeID, c.WorkHoursPerWeek, c.SleepHoursPerDay,
			c.MeetingsPerWeek, c.EmailsPerDay, c.DeadlinePressure,
			c.TaskComplexity, c.TeamSupport, c.WorkLifeBalance,
			string(c.StressLevel), c.BurnoutScore, c.Outcome,
		); err != nil {
			return fmt.Errorf("insert historical case: %w", err)
		}
	}
	return nil
}
