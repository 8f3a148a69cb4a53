package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    storage.Type
		wantErr bool
	}{
		{name: "defaults to in-memory", env: map[string]string{"STORAGE_TYPE": ""}, want: storage.InMem},
		{name: "pg", env: map[string]string{"STORAGE_TYPE": "pg", "PG_CONNECTION_STRING": "postgres://x"}, want: storage.PG},
		{name: "pg without connection string", env: map[string]string{"STORAGE_TYPE": "pg", "PG_CONNECTION_STRING": ""}, wantErr: true},
		{name: "es", env: map[string]string{"STORAGE_TYPE": "es", "ES_ADDRESSES": "http://a:9200, http://b:9200"}, want: storage.ES},
		{name: "es without addresses", env: map[string]string{"STORAGE_TYPE": "es", "ES_ADDRESSES": ""}, wantErr: true},
		{name: "unknown", env: map[string]string{"STORAGE_TYPE": "mongo"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadEnv()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Type)
		})
	}
}

func TestLoadEnv_ESDefaults(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "es")
	t.Setenv("ES_ADDRESSES", "http://a:9200, http://b:9200,")
	t.Setenv("ES_INDEX_NAME", "")

	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.Es.Addresses)
	assert.Equal(t, "content_records", cfg.Es.IndexName)
}

func TestNewRepository_InMem(t *testing.T) {
	ctx := context.Background()
	backend, err := NewRepository(ctx, &StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	defer backend.Close()

	assert.True(t, backend.Health.Healthy(ctx))
	count, err := backend.Repository.Count(ctx, "faq")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNewRepository_Unsupported(t *testing.T) {
	_, err := NewRepository(context.Background(), &StorageConfig{Type: "mongo"})
	assert.ErrorContains(t, err, "unsupported storer type: mongo")
}
