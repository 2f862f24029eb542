package series

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Add("Chelsea", 1, 1, 1, 4, 4))
	require.NoError(t, table.Add("Arsenal", 2, 1, 0, 6, 2))
	table.Sort()

	store, err := OpenStore(filepath.Join(t.TempDir(), "standings.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SaveTable(table))

	loaded, err := store.LoadTable()
	require.NoError(t, err)
	require.Equal(t, table.Len(), loaded.Len())

	// Stored order is table order at save time
	assert.Equal(t, slices.Collect(table.Names()), slices.Collect(loaded.Names()))

	team, err := loaded.Find("Arsenal")
	require.NoError(t, err)
	assert.Equal(t, 2, team.Wins)
	assert.Equal(t, 7, team.Points())
	assert.Equal(t, "6-2", team.GoalsString())
}

func TestStoreSaveIsWholeTableRewrite(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "standings.db"))
	require.NoError(t, err)
	defer store.Close()

	first := NewTable()
	require.NoError(t, first.Add("Arsenal"))
	require.NoError(t, first.Add("Chelsea"))
	require.NoError(t, store.SaveTable(first))

	second := NewTable()
	require.NoError(t, second.Add("Leeds", 1, 0, 0, 2, 0))
	require.NoError(t, store.SaveTable(second))

	loaded, err := store.LoadTable()
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
	assert.False(t, loaded.Contains("Arsenal"))
	assert.True(t, loaded.Contains("Leeds"))
}

func TestStoreLoadEmpty(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "standings.db"))
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.LoadTable()
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}
