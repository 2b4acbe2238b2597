package store

import (
	"context"
	"os"
)

// Stats holds journal statistics.
type Stats struct {
	DBPath        string        `json:"db_path"`
	DBSizeBytes   int64         `json:"db_size_bytes"`
	TotalRecords  int           `json:"total_records"`
	ActiveRecords int           `json:"active_records"`
	Sources       []SourceStats `json:"sources"`
}

// SourceStats holds per-source counts.
type SourceStats struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// Stats returns journal statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&st.TotalRecords); err != nil {
		return st, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE deleted_at IS NULL`).Scan(&st.ActiveRecords); err != nil {
		return st, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT source, COUNT(*) AS cnt
		FROM records WHERE deleted_at IS NULL
		GROUP BY source ORDER BY cnt DESC`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var src SourceStats
		if err := rows.Scan(&src.Source, &src.Count); err != nil {
			return st, err
		}
		st.Sources = append(st.Sources, src)
	}
	return st, rows.Err()
}
