package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gesnake/internal/core"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreEmpty(t *testing.T) {
	store := openStore(t)

	rounds, err := store.Rounds()
	require.NoError(t, err)
	assert.Empty(t, rounds)

	best, err := store.Best()
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	st, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	saved, err := store.SaveRound(Round{
		Score:     4,
		Length:    7,
		Ticks:     55,
		Reason:    core.ReasonWall,
		Gestures:  9,
		StartedAt: start,
		EndedAt:   start.Add(22 * time.Second),
	})
	require.NoError(t, err)
	_, err = uuid.Parse(saved.ID)
	require.NoError(t, err, "round id should be a uuid")

	_, err = store.SaveRound(Round{Score: 1, Length: 4, Reason: core.ReasonSelf, Gestures: 3})
	require.NoError(t, err)

	rounds, err := store.Rounds()
	require.NoError(t, err)
	require.Len(t, rounds, 2)

	// Oldest first
	first := rounds[0]
	assert.Equal(t, saved.ID, first.ID)
	assert.Equal(t, 4, first.Score)
	assert.Equal(t, 7, first.Length)
	assert.Equal(t, uint64(55), first.Ticks)
	assert.Equal(t, core.ReasonWall, first.Reason)
	assert.True(t, first.StartedAt.Equal(start))
	assert.Equal(t, 22*time.Second, first.Duration())

	assert.Equal(t, core.ReasonSelf, rounds[1].Reason)
	assert.NotEqual(t, rounds[0].ID, rounds[1].ID)
}

func TestStoreBestAndStats(t *testing.T) {
	store := openStore(t)

	for _, score := range []int{3, 10, 5} {
		_, err := store.SaveRound(Round{Score: score, Length: score + 3, Reason: core.ReasonWall, Gestures: 2})
		require.NoError(t, err)
	}

	best, err := store.Best()
	require.NoError(t, err)
	assert.Equal(t, 10, best)

	st, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, st.Rounds)
	assert.Equal(t, 10, st.Best)
	assert.InDelta(t, 6.0, st.Average, 1e-9)
	assert.Equal(t, 6, st.Gestures)
}

func TestStoreKeepsExplicitID(t *testing.T) {
	store := openStore(t)

	saved, err := store.SaveRound(Round{ID: "fixed", Score: 1, Reason: core.ReasonQuit})
	require.NoError(t, err)
	assert.Equal(t, "fixed", saved.ID)

	_, err = store.SaveRound(Round{ID: "fixed", Score: 2, Reason: core.ReasonQuit})
	assert.Error(t, err, "duplicate ids are rejected")
}

func TestStoresAreIsolated(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	_, err := a.SaveRound(Round{Score: 8, Reason: core.ReasonWall})
	require.NoError(t, err)

	rounds, err := b.Rounds()
	require.NoError(t, err)
	assert.Empty(t, rounds)
}
