package es

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/optype"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

const (
	maxUpdateAttempts = 20
	// All pages through a kind with search_after on seq
	defaultAllPageSize = 1000
)

// Storer keeps content records in one Elasticsearch index. Updates use
// optimistic concurrency on _seq_no/_primary_term and retry on conflict.
type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
	config    ClientConfig
	seq       atomic.Int64
	pageSize  int
}

var _ storage.Repository = (*Storer)(nil)

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)

	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	storer := &Storer{
		client:    client,
		indexName: config.IndexName,
		config:    config,
		pageSize:  defaultAllPageSize,
	}
	storer.seq.Store(time.Now().UnixNano())

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
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

func hasStatus(err error, status int) bool {
	var esErr *types.ElasticsearchError
	return errors.As(err, &esErr) && esErr.Status == status
}

func (e *Storer) Create(ctx context.Context, rec content.Record) (string, error) {
	rec, err := prepare(rec, time.Now())
	if err != nil {
		return "", err
	}
	doc := toDocument(rec, e.seq.Add(1))

	res, err := e.client.Index(e.indexName).
		Id(docID(rec.Kind, rec.ID)).
		OpType(optype.Create).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if hasStatus(err, http.StatusConflict) {
		return "", fmt.Errorf("%s %q already exists", rec.Kind, rec.ID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to index document: %w", err)
	}

	slog.Debug("document indexed successfully", "id", rec.ID, "index", e.indexName, "result", res.Result)
	return rec.ID, nil
}

type bulkItem struct {
	id   string
	body []byte
}

// CreateBulk validates and encodes the whole batch before indexing. Items
// that were created before another item failed are deleted again, so a
// failed call leaves the index as it found it.
func (e *Storer) CreateBulk(ctx context.Context, recs []content.Record) error {
	if len(recs) == 0 {
		return nil
	}

	now := time.Now()
	items := make([]bulkItem, 0, len(recs))
	seen := make(map[string]struct{}, len(recs))
	for i, r := range recs {
		rec, err := prepare(r, now)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		id := docID(rec.Kind, rec.ID)
		if _, dup := seen[id]; dup {
			return fmt.Errorf("record %d: %s %q repeated in batch", i, rec.Kind, rec.ID)
		}
		seen[id] = struct{}{}

		docBytes, err := json.Marshal(toDocument(rec, e.seq.Add(1)))
		if err != nil {
			return fmt.Errorf("record %d: failed to marshal document: %w", i, err)
		}
		items = append(items, bulkItem{id: id, body: docBytes})
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    1,
		FlushBytes:    5e+6, // 5MB
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var (
		mu      sync.Mutex
		created []string
		failed  atomic.Int64
	)

	for _, item := range items {
		err = bi.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "create",
				DocumentID: item.id,
				Body:       bytes.NewReader(item.body),
				OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
					mu.Lock()
					created = append(created, item.DocumentID)
					mu.Unlock()
				},
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					failed.Add(1)
					if err != nil {
						slog.Error("bulk index error", "error", err, "id", item.DocumentID)
					} else {
						slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
					}
				},
			},
		)
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", item.id)
			break
		}
	}

	if err := bi.Close(ctx); err != nil {
		failed.Add(1)
		slog.Error("failed to close bulk indexer", "error", err)
	}
	if err := e.refresh(ctx); err != nil {
		return err
	}

	slog.Info("Bulk indexing completed",
		"successful", len(created),
		"failed", failed.Load(),
		"total", len(recs),
		"index", e.indexName)

	if n := failed.Load(); n > 0 {
		if err := e.deleteDocs(ctx, created); err != nil {
			return fmt.Errorf("failed to index %d out of %d records, rollback failed: %w", n, len(recs), err)
		}
		return fmt.Errorf("failed to index %d out of %d records", n, len(recs))
	}
	return nil
}

func (e *Storer) deleteDocs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := e.client.DeleteByQuery(e.indexName).
		Query(&types.Query{Ids: &types.IdsQuery{Values: ids}}).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete documents: %w", err)
	}
	slog.Warn("Rolled back partially indexed batch", "deleted", len(ids), "index", e.indexName)
	return e.refresh(ctx)
}

type versioned struct {
	doc         Document
	seqNo       int64
	primaryTerm int64
}

func (e *Storer) get(ctx context.Context, kind content.Kind, id string) (versioned, error) {
	res, err := e.client.Get(e.indexName, docID(kind, id)).Do(ctx)
	if hasStatus(err, http.StatusNotFound) {
		return versioned{}, storage.ErrNotFound
	}
	if err != nil {
		return versioned{}, fmt.Errorf("failed to get document: %w", err)
	}
	if !res.Found {
		return versioned{}, storage.ErrNotFound
	}

	var v versioned
	if err := json.Unmarshal(res.Source_, &v.doc); err != nil {
		return versioned{}, fmt.Errorf("failed to decode document %s: %w", res.Id_, err)
	}
	if res.SeqNo_ != nil {
		v.seqNo = *res.SeqNo_
	}
	if res.PrimaryTerm_ != nil {
		v.primaryTerm = *res.PrimaryTerm_
	}
	return v, nil
}

func (e *Storer) Get(ctx context.Context, kind content.Kind, id string) (content.Record, error) {
	v, err := e.get(ctx, kind, id)
	if err != nil {
		return content.Record{}, err
	}
	return v.doc.toRecord(), nil
}

func kindQuery(kind content.Kind) *types.Query {
	return &types.Query{
		Term: map[string]types.TermQuery{
			"kind": {Value: string(kind)},
		},
	}
}

func (e *Storer) All(ctx context.Context, kind content.Kind) ([]content.Record, error) {
	asc := sortorder.Asc
	records := make([]content.Record, 0)
	var after *int64

	for {
		req := e.client.Search().
			Index(e.indexName).
			Query(kindQuery(kind)).
			Size(e.pageSize).
			Sort(&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"seq": {Order: &asc},
				},
			})
		if after != nil {
			req = req.SearchAfter(types.FieldValue(*after))
		}

		res, err := req.Do(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to execute search: %w", err)
		}

		for _, hit := range res.Hits.Hits {
			var doc Document
			if err := json.Unmarshal(hit.Source_, &doc); err != nil {
				slog.Error("Failed to unmarshal document", "error", err)
				return nil, fmt.Errorf("failed to decode document: %w", err)
			}
			records = append(records, doc.toRecord())
			seq := doc.Seq
			after = &seq
		}

		if len(res.Hits.Hits) < e.pageSize {
			return records, nil
		}
	}
}

func (e *Storer) Count(ctx context.Context, kind content.Kind) (int, error) {
	res, err := e.client.Count().Index(e.indexName).Query(kindQuery(kind)).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return int(res.Count), nil
}

func (e *Storer) Update(ctx context.Context, kind content.Kind, id string, fn storage.UpdateFunc) (content.Record, error) {
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		v, err := e.get(ctx, kind, id)
		if err != nil {
			return content.Record{}, err
		}

		rec := v.doc.toRecord()
		if err := fn(&rec); err != nil {
			return content.Record{}, err
		}
		rec.ID, rec.Kind = id, kind

		_, err = e.client.Index(e.indexName).
			Id(docID(kind, id)).
			Document(toDocument(rec, v.doc.Seq)).
			IfSeqNo(strconv.FormatInt(v.seqNo, 10)).
			IfPrimaryTerm(strconv.FormatInt(v.primaryTerm, 10)).
			Refresh(refresh.True).
			Do(ctx)
		if hasStatus(err, http.StatusConflict) {
			slog.Debug("Update conflict, retrying", "kind", kind, "id", id, "attempt", attempt)
			select {
			case <-ctx.Done():
				return content.Record{}, ctx.Err()
			case <-time.After(time.Duration(attempt) * 5 * time.Millisecond):
			}
			continue
		}
		if err != nil {
			return content.Record{}, fmt.Errorf("failed to update document: %w", err)
		}
		return rec, nil
	}
	return content.Record{}, fmt.Errorf("update of %s %q gave up after %d conflicts", kind, id, maxUpdateAttempts)
}

func (e *Storer) ClearAll(ctx context.Context) error {
	_, err := e.client.DeleteByQuery(e.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}
	return e.refresh(ctx)
}

func (e *Storer) refresh(ctx context.Context) error {
	if _, err := e.client.Indices.Refresh().Index(e.indexName).Do(ctx); err != nil {
		return fmt.Errorf("failed to refresh index: %w", err)
	}
	return nil
}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	existsRes, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(indexMappings()).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created", "index", e.indexName)
	return nil
}
