package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/rcliao/czas/internal/model"
)

// SearchParams holds parameters for searching the journal.
type SearchParams struct {
	Query  string
	Source string
	Limit  int
}

// likeEscaper makes LIKE treat %, _ and the escape character literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search finds live records whose text or input contains the query.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]model.Record, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	query := "%" + likeEscaper.Replace(p.Query) + "%"

	where := []string{"deleted_at IS NULL", `(text LIKE ? ESCAPE '\' OR input LIKE ? ESCAPE '\')`}
	args := []interface{}{query, query}

	if p.Source != "" {
		where = append(where, "source = ?")
		args = append(args, p.Source)
	}

	sql := fmt.Sprintf(`
		SELECT id, input, text, style, source, created_at, deleted_at
		FROM records
		WHERE %s
		ORDER BY id DESC
		LIMIT ?`, strings.Join(where, " AND "))
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
