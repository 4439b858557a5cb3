// Package dataset loads the historical case corpus from its configured
// store: CSV/JSON files, an embedded SQLite database, or Postgres. The core
// pipeline only ever sees the loaded, in-memory corpus.
package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/stresslens/stresslens/pkg/config"
	"github.com/stresslens/stresslens/pkg/dataset"
)

// Load reads the corpus from the configured source. An empty source yields
// an empty corpus: the similarity search degrades gracefully, so a missing
// dataset is a configuration choice, not an error.
func Load(ctx context.Context, cfg config.DatasetConfig) ([]dataset.HistoricalCase, error) {
	source := strings.TrimSpace(cfg.Source)
	if source == "" {
		return nil, nil
	}

	if strings.HasPrefix(source, "postgres://") || strings.HasPrefix(source, "postgresql://") {
		return LoadPostgres(ctx, source)
	}

	switch filepath.Ext(source) {
	case ".csv":
		return LoadCSV(source)
	case ".json":
		return LoadJSON(source)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, source)
	default:
		return nil, fmt.Errorf("unsupported dataset source %q", source)
	}
}
