package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/czas/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// newID returns a ULID; ids created in the same millisecond still sort in
// creation order.
func (s *SQLiteStore) newID(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id          TEXT PRIMARY KEY,
		input       TEXT NOT NULL,
		text        TEXT NOT NULL,
		style       TEXT NOT NULL DEFAULT 'plain',
		source      TEXT NOT NULL DEFAULT 'say',
		created_at  TEXT NOT NULL,
		deleted_at  TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_records_created ON records(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_records_source ON records(source);
	CREATE INDEX IF NOT EXISTS idx_records_deleted ON records(deleted_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (*model.Record, error) {
	if strings.TrimSpace(p.Text) == "" {
		return nil, fmt.Errorf("text is required")
	}

	now := time.Now().UTC()
	id := s.newID(now)

	style := p.Style
	if style == "" {
		style = "plain"
	}
	source := p.Source
	if source == "" {
		source = model.SourceSay
	}
	if !model.ValidSources[source] {
		return nil, fmt.Errorf("invalid source %q", source)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (id, input, text, style, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, p.Input, p.Text, style, source, now.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}

	return &model.Record{
		ID:        id,
		Input:     p.Input,
		Text:      p.Text,
		Style:     style,
		Source:    source,
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, p GetParams) (*model.Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, input, text, style, source, created_at, deleted_at
		 FROM records WHERE id = ? AND deleted_at IS NULL`, p.ID)

	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Record, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"deleted_at IS NULL"}
	var args []interface{}

	if p.Source != "" {
		where = append(where, "source = ?")
		args = append(args, p.Source)
	}
	if p.Style != "" {
		where = append(where, "style = ?")
		args = append(args, p.Style)
	}

	query := fmt.Sprintf(`
		SELECT id, input, text, style, source, created_at, deleted_at
		FROM records
		WHERE %s
		ORDER BY id DESC
		LIMIT ?`, strings.Join(where, " AND "))
	args = append(args, limit)

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

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) error {
	var res sql.Result
	var err error
	if p.Hard {
		res, err = s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, p.ID)
	} else {
		now := time.Now().UTC().Format(time.RFC3339Nano)
		res, err = s.db.ExecContext(ctx,
			`UPDATE records SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, now, p.ID)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (model.Record, error) {
	var r model.Record
	var createdAt string
	var deletedAt sql.NullString

	err := row.Scan(&r.ID, &r.Input, &r.Text, &r.Style, &r.Source, &createdAt, &deletedAt)
	if err != nil {
		return r, err
	}

	r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	if deletedAt.Valid {
		t, _ := time.Parse(time.RFC3339Nano, deletedAt.String)
		r.DeletedAt = &t
	}
	return r, nil
}
