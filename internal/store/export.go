package store

import (
	"context"
	"strings"

	"github.com/rcliao/czas/internal/model"
)

// ExportAll returns all live records, optionally filtered by source, oldest first.
func (s *SQLiteStore) ExportAll(ctx context.Context, source string) ([]model.Record, error) {
	where := []string{"deleted_at IS NULL"}
	args := []interface{}{}

	if source != "" {
		where = append(where, "source = ?")
		args = append(args, source)
	}

	query := `SELECT id, input, text, style, source, created_at, deleted_at
	          FROM records WHERE ` + strings.Join(where, " AND ") + ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Import appends records from an export as new records with source "import".
// Records with empty text are skipped.
func (s *SQLiteStore) Import(ctx context.Context, records []model.Record) (int, error) {
	imported := 0
	for _, r := range records {
		if strings.TrimSpace(r.Text) == "" {
			continue
		}
		_, err := s.Put(ctx, PutParams{
			Input:  r.Input,
			Text:   r.Text,
			Style:  r.Style,
			Source: model.SourceImport,
		})
		if err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
