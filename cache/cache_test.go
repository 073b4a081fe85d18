package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanyeors/solar-design-system/cache"
	"github.com/ivanyeors/solar-design-system/internal/mapfs"
	"github.com/ivanyeors/solar-design-system/token"
)

func TestStore_LoadMissingCacheIsNotAnError(t *testing.T) {
	store := cache.NewStore(mapfs.New(), "/cache")

	info, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, info.TokenCount)
}

func TestStore_SaveThenLoadRoundTrips(t *testing.T) {
	mfs := mapfs.New()
	store := cache.NewStore(mfs, "/cache")

	saved := cache.Info{
		LastRun:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TokenCount:  42,
		Files:       map[string]string{"/tokens/studio.json": "abc123"},
		OutputFiles: []string{"/out/_tokens.scss"},
	}
	require.NoError(t, store.Save(saved))
	require.True(t, mfs.Exists("/cache/token_cache.json"))

	loaded, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved, loaded)
}

func TestStore_ChangedWithoutPreviousRun(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/tokens/studio.json", `{"color":{}}`, 0o644)
	store := cache.NewStore(mfs, "/cache")

	changed, reason := store.Changed([]string{"/tokens/studio.json"})
	assert.True(t, changed)
	assert.Equal(t, "no previous run information found", reason)
}

func TestStore_ChangedDetectsModification(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/tokens/studio.json", `{"color":{}}`, 0o644)
	store := cache.NewStore(mfs, "/cache")

	hashes, err := store.Hashes([]string{"/tokens/studio.json"})
	require.NoError(t, err)
	require.NoError(t, store.Save(cache.Info{LastRun: time.Now(), Files: hashes}))

	changed, _ := store.Changed([]string{"/tokens/studio.json"})
	assert.False(t, changed, "unmodified input should not count as changed")

	require.NoError(t, mfs.WriteFile("/tokens/studio.json", []byte(`{"scale":{}}`), 0o644))
	changed, reason := store.Changed([]string{"/tokens/studio.json"})
	assert.True(t, changed)
	assert.Contains(t, reason, "has been modified")
}

func TestStore_ChangedDetectsFileSetChange(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/tokens/a.json", `{}`, 0o644)
	mfs.AddFile("/tokens/b.json", `{}`, 0o644)
	store := cache.NewStore(mfs, "/cache")

	hashes, err := store.Hashes([]string{"/tokens/a.json"})
	require.NoError(t, err)
	require.NoError(t, store.Save(cache.Info{LastRun: time.Now(), Files: hashes}))

	changed, reason := store.Changed([]string{"/tokens/a.json", "/tokens/b.json"})
	assert.True(t, changed)
	assert.Equal(t, "input file set changed since last run", reason)
}

func TestSnapshotRoundTrip(t *testing.T) {
	table := token.NewTable(token.Scope{Brand: "evydcore"})
	table.Put(&token.Token{
		Path:          []string{"comp", "button", "bg"},
		Type:          token.TypeColor,
		RawValue:      "{color.cerulean.500}",
		ResolvedValue: "#2D9CDB",
		State:         token.Resolved,
	})

	snap := cache.TableSnapshot(table)
	require.Len(t, snap, 1)
	assert.Equal(t, cache.Entry{Value: "#2D9CDB", Type: "color"}, snap["evydcore:comp.button.bg"])

	store := cache.NewStore(mapfs.New(), "/cache")
	require.NoError(t, store.SaveSnapshot(snap))

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestLoadSnapshotMissingReturnsNil(t *testing.T) {
	store := cache.NewStore(mapfs.New(), "/cache")

	snap, err := store.LoadSnapshot()
	require.NoError(t, err)
	assert.Nil(t, snap)
}
