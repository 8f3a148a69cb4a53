package es

import (
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// Document is the stored shape of a content record. Fields and metrics are
// kept as opaque objects; only the bookkeeping keys are indexed.
type Document struct {
	ID        string                   `json:"id"`
	Kind      string                   `json:"kind"`
	Seq       int64                    `json:"seq"`
	Fields    map[string]content.Value `json:"fields"`
	Metrics   content.Metrics          `json:"metrics"`
	Featured  bool                     `json:"featured"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

func docID(kind content.Kind, id string) string {
	return string(kind) + ":" + id
}

func toDocument(rec content.Record, seq int64) Document {
	return Document{
		ID:        rec.ID,
		Kind:      string(rec.Kind),
		Seq:       seq,
		Fields:    rec.Fields,
		Metrics:   rec.Metrics,
		Featured:  rec.Featured,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func (d Document) toRecord() content.Record {
	fields := d.Fields
	if fields == nil {
		fields = map[string]content.Value{}
	}
	return content.Record{
		ID:        d.ID,
		Kind:      content.Kind(d.Kind),
		Fields:    fields,
		Metrics:   d.Metrics,
		Featured:  d.Featured,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func indexMappings() *types.TypeMapping {
	disabled := false
	opaque := func() types.Property {
		p := types.NewObjectProperty()
		p.Enabled = &disabled
		return p
	}

	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"kind":       types.NewKeywordProperty(),
			"seq":        types.NewLongNumberProperty(),
			"fields":     opaque(),
			"metrics":    opaque(),
			"featured":   types.NewBooleanProperty(),
			"created_at": types.NewDateProperty(),
			"updated_at": types.NewDateProperty(),
		},
	}
}
