package sqlite_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneuniverse/onboard/internal/domain/entity"
	"github.com/oneuniverse/onboard/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "audit.db"))

	assert.False(t, lazy.IsInitialized())
	require.NoError(t, lazy.Close(), "closing an unopened database is a no-op")
}

func TestLazyDB_ConcurrentAccessReturnsSameConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "audit.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan any, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			if err != nil {
				results <- err
				return
			}
			results <- db
		}()
	}
	wg.Wait()
	close(results)

	var first any
	for r := range results {
		_, isErr := r.(error)
		require.False(t, isErr, "unexpected error: %v", r)
		if first == nil {
			first = r
			continue
		}
		assert.Same(t, first, r)
	}
	assert.True(t, lazy.IsInitialized())
}

func TestLazyDB_InvalidPathFails(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())

	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}

func TestLazyConsentAuditRepository_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "audit.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyConsentAuditRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Record(ctx, entity.ConsentRecordsFromResult(sampleResult("neg-lazy"), 5)))
	assert.True(t, lazy.IsInitialized())

	got, err := repo.ListByNegotiation(ctx, "neg-lazy")
	require.NoError(t, err)
	assert.Len(t, got, 4)
}
