//go:build integration

package pg

import (
	"context"
	"os"
	"testing"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage"
	"github.com/DjordjeVuckovic/sanctuary-hub/internal/storage/storagetest"
	pkgtesting "github.com/DjordjeVuckovic/sanctuary-hub/pkg/testing"
	"github.com/testcontainers/testcontainers-go"
)

var (
	testCtx  context.Context
	testPool *ConnectionPool
)

func TestMain(m *testing.M) {
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.DefaultPGConfig)
	if err != nil {
		panic(err)
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		_ = testcontainers.TerminateContainer(pg.Container)
		panic(err)
	}

	code := m.Run()

	testPool.Close()
	_ = testcontainers.TerminateContainer(pg.Container)
	os.Exit(code)
}

func truncateTable(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE content_records")
	if err != nil {
		t.Fatalf("failed to truncate table: %v", err)
	}
}

func TestStorer_Contract(t *testing.T) {
	storagetest.RunContract(t, func(t *testing.T) storage.Repository {
		truncateTable(t)
		s, err := NewStorer(testPool)
		if err != nil {
			t.Fatalf("failed to create storer: %v", err)
		}
		return s
	})
}

func TestHealthChecker(t *testing.T) {
	if !NewHealthChecker(testPool).Healthy(testCtx) {
		t.Fatal("expected healthy pool")
	}
	if NewHealthChecker(nil).Healthy(testCtx) {
		t.Fatal("expected nil pool to be unhealthy")
	}
}
