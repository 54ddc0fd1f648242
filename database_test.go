package recollect

import (
	"context"
	"testing"

	"github.com/poiesic/recollect/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	db, err := NewDatabase(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	require.NotNil(t, db.ContentRepository())
	require.NotNil(t, db.Provider())
}

func TestDatabaseInMemory(t *testing.T) {
	db, err := NewDatabase("", WithInMemoryStorage())
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	record, err := db.ContentRepository().Upsert(ctx, "alice", "post-1", core.RecordUpsert{
		MediaType: core.MediaTypeImage,
	})
	require.NoError(t, err)
	assert.Equal(t, "post-1", record.ExternalPostId)

	found, err := db.ContentRepository().FindByOwnerAndExternalID(ctx, "alice", "post-1")
	require.NoError(t, err)
	assert.Equal(t, record.Id, found.Id)
}

func TestDatabaseBuildsPipeline(t *testing.T) {
	db, err := NewDatabase("", WithInMemoryStorage())
	require.NoError(t, err)
	defer db.Close()

	orch, err := db.NewOrchestrator()
	require.NoError(t, err)
	require.NotNil(t, orch)
}
