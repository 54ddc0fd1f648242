package badger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)

	assert.False(t, backend.IsClosed())

	err = backend.Close()
	require.NoError(t, err)

	assert.True(t, backend.IsClosed())
}

func TestOwnerIndexKeyOrdering(t *testing.T) {
	// Keys for the same owner must share the scan prefix
	prefix := makePartialOwnerIndexKey("alice")
	key := makeOwnerIndexKey("alice", 42)
	assert.Equal(t, prefix, key[:len(prefix)])

	// An owner whose name extends another's must not share it
	other := makeOwnerIndexKey("alice2", 42)
	assert.NotEqual(t, prefix, other[:len(prefix)])
}
