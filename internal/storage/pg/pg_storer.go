package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Storer keeps content records as jsonb rows in content_records.
// Update locks the row with SELECT ... FOR UPDATE for the duration of fn.
type Storer struct {
	db *pgxpool.Pool
}

var _ storage.Repository = (*Storer)(nil)

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	return &Storer{db: pool.conn}, nil
}

func prepare(rec content.Record, now time.Time) (content.Record, error) {
	schema, ok := content.SchemaFor(rec.Kind)
	if !ok {
		return content.Record{}, fmt.Errorf("unknown content kind %q", rec.Kind)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}
	rec.Fields = schema.Normalize(rec.Fields)
	return rec, nil
}

func (s *Storer) Create(ctx context.Context, rec content.Record) (string, error) {
	rec, err := prepare(rec, time.Now())
	if err != nil {
		return "", err
	}
	fieldsJSON, metricsJSON, err := encodeRecord(rec)
	if err != nil {
		return "", err
	}

	cmd := `
        INSERT INTO content_records (id, kind, fields, metrics, featured, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id;
    `
	var id string
	err = s.db.QueryRow(
		ctx,
		cmd,
		rec.ID,
		string(rec.Kind),
		fieldsJSON,
		metricsJSON,
		rec.Featured,
		rec.CreatedAt,
		rec.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert record: %w", err)
	}

	return id, nil
}

func (s *Storer) CreateBulk(ctx context.Context, recs []content.Record) error {
	rows := make([][]interface{}, len(recs))
	now := time.Now()

	for i, r := range recs {
		rec, err := prepare(r, now)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		fieldsJSON, metricsJSON, err := encodeRecord(rec)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}

		rows[i] = []interface{}{
			rec.ID,
			string(rec.Kind),
			fieldsJSON,
			metricsJSON,
			rec.Featured,
			rec.CreatedAt,
			rec.UpdatedAt,
		}
	}

	copied, err := s.db.CopyFrom(
		ctx,
		pgx.Identifier{"content_records"},
		[]string{"id", "kind", "fields", "metrics", "featured", "created_at", "updated_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert records: %w", err)
	}

	slog.Info("Bulk insert completed", "inserted", copied, "total", len(recs))
	return nil
}

func (s *Storer) Get(ctx context.Context, kind content.Kind, id string) (content.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM content_records WHERE kind = $1 AND id = $2`

	rec, err := scanRecord(s.db.QueryRow(ctx, query, string(kind), id))
	if errors.Is(err, pgx.ErrNoRows) {
		return content.Record{}, storage.ErrNotFound
	}
	if err != nil {
		return content.Record{}, fmt.Errorf("failed to get record: %w", err)
	}
	return rec, nil
}

func (s *Storer) All(ctx context.Context, kind content.Kind) ([]content.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM content_records WHERE kind = $1 ORDER BY seq`

	rows, err := s.db.Query(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := make([]content.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

func (s *Storer) Count(ctx context.Context, kind content.Kind) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM content_records WHERE kind = $1`, string(kind)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

func (s *Storer) Update(ctx context.Context, kind content.Kind, id string, fn storage.UpdateFunc) (content.Record, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return content.Record{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `SELECT ` + recordColumns + ` FROM content_records WHERE kind = $1 AND id = $2 FOR UPDATE`
	rec, err := scanRecord(tx.QueryRow(ctx, query, string(kind), id))
	if errors.Is(err, pgx.ErrNoRows) {
		return content.Record{}, storage.ErrNotFound
	}
	if err != nil {
		return content.Record{}, fmt.Errorf("failed to lock record: %w", err)
	}

	if err := fn(&rec); err != nil {
		return content.Record{}, err
	}
	rec.ID, rec.Kind = id, kind

	fieldsJSON, metricsJSON, err := encodeRecord(rec)
	if err != nil {
		return content.Record{}, err
	}

	cmd := `
        UPDATE content_records
        SET fields = $3, metrics = $4, featured = $5, updated_at = $6
        WHERE kind = $1 AND id = $2
    `
	if _, err := tx.Exec(ctx, cmd, string(kind), id, fieldsJSON, metricsJSON, rec.Featured, rec.UpdatedAt); err != nil {
		return content.Record{}, fmt.Errorf("failed to update record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return content.Record{}, fmt.Errorf("failed to commit update: %w", err)
	}
	return rec, nil
}

func (s *Storer) ClearAll(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, "TRUNCATE TABLE content_records"); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}
