package eventdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventrec.dev/internal/appconf"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewClient_InvalidConfigHandling(t *testing.T) {
	client, err := NewClient(Config{
		DBPath: "/tmp/invalid_test_db.sqlite",
		Env:    appconf.Test,
	})
	assert.Nil(t, client)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTestConfig)
	assert.Contains(t, err.Error(), "test database must use in-memory storage")
}

func TestNewClient_ValidConfig(t *testing.T) {
	client := newTestClient(t)

	assert.NotNil(t, client.DB)
	assert.NotNil(t, client.Queries)
}

func TestMemoryDatabaseConnectionPool(t *testing.T) {
	client := newTestClient(t)

	assert.Equal(t, 1, client.DB.Stats().MaxOpenConnections,
		":memory: databases should use MaxOpenConns=1")
}

func TestFileDatabaseConnectionPool(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "eventrec.db")

	client, err := NewClient(NewConfig(dbPath, appconf.Development, false))
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.Equal(t, 25, client.DB.Stats().MaxOpenConnections)

	var journalMode string
	require.NoError(t, client.DB.QueryRow("PRAGMA journal_mode").Scan(&journalMode))
	assert.Equal(t, "wal", journalMode)
}

func TestPragmasApplied(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	var cacheSize int
	require.NoError(t, client.DB.QueryRowContext(ctx, "PRAGMA cache_size").Scan(&cacheSize))
	assert.Equal(t, -64000, cacheSize)

	var tempStore int
	require.NoError(t, client.DB.QueryRowContext(ctx, "PRAGMA temp_store").Scan(&tempStore))
	assert.Equal(t, 2, tempStore, "temp store should be MEMORY")
}

func TestSchemaIsReappliedSafely(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "eventrec.db")

	first, err := NewClient(NewConfig(dbPath, appconf.Development, false))
	require.NoError(t, err)
	_, err = first.Queries.SaveEvent(context.Background(), SaveEventParams{UserID: "u1", EventID: "1", CreatedAt: 1})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewClient(NewConfig(dbPath, appconf.Development, false))
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	saved, err := second.Queries.ListSavedEvents(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestTableCounts(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	counts, err := client.TableCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"event_interactions": 0, "saved_events": 0}, counts)

	_, err = client.Queries.CreateInteraction(ctx, CreateInteractionParams{
		UserID: "u1", EventID: "1", InteractionType: "INTERESTED", CreatedAt: 1,
	})
	require.NoError(t, err)

	counts, err = client.TableCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts["event_interactions"])
}
