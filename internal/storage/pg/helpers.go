package pg

import (
	"encoding/json"
	"fmt"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/jackc/pgx/v5"
)

const recordColumns = "id, kind, fields, metrics, featured, created_at, updated_at"

func scanRecord(row pgx.Row) (content.Record, error) {
	var rec content.Record
	var kind string
	var fieldsJSON, metricsJSON []byte

	if err := row.Scan(
		&rec.ID,
		&kind,
		&fieldsJSON,
		&metricsJSON,
		&rec.Featured,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return content.Record{}, err
	}
	rec.Kind = content.Kind(kind)

	if err := json.Unmarshal(fieldsJSON, &rec.Fields); err != nil {
		return content.Record{}, fmt.Errorf("failed to unmarshal fields: %w", err)
	}
	if err := json.Unmarshal(metricsJSON, &rec.Metrics); err != nil {
		return content.Record{}, fmt.Errorf("failed to unmarshal metrics: %w", err)
	}

	if schema, ok := content.SchemaFor(rec.Kind); ok {
		rec.Fields = schema.Normalize(rec.Fields)
	}
	return rec, nil
}

func encodeRecord(rec content.Record) (fieldsJSON, metricsJSON []byte, err error) {
	fieldsJSON, err = json.Marshal(rec.Fields)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal fields: %w", err)
	}
	metricsJSON, err = json.Marshal(rec.Metrics)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal metrics: %w", err)
	}
	return fieldsJSON, metricsJSON, nil
}
