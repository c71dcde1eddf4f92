package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

func testSession(pot int) *Session {
	return &Session{
		Stage: "setup",
		Players: []PlayerState{
			{Name: "You", Stack: 1200},
			{Name: "Bot 1", Stack: 800, IsActive: true, IsBot: true},
		},
		Pot:        pot,
		SmallBlind: 25,
		BigBlind:   50,
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()
	store := testStore(t)

	id, err := store.Save(ctx, testSession(100))
	require.NoError(t, err)
	a.Regexp(`^poker_\d{8}_\d{6}`, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	a.Equal(id, got.GameID)
	a.Equal(100, got.Pot)
	a.Equal("Players: 2 - You: $1200, Bot 1: $800", got.Summary)
	a.NotEmpty(got.SaveDate)
	a.Len(got.Players, 2)
	a.True(got.Players[1].IsBot)
}

func TestStore_Save_overwritesExistingID(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()
	store := testStore(t)

	sess := testSession(100)
	sess.GameID = "poker_test"
	_, err := store.Save(ctx, sess)
	require.NoError(t, err)

	sess.Pot = 250
	id, err := store.Save(ctx, sess)
	require.NoError(t, err)
	a.Equal("poker_test", id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	a.Equal(250, got.Pot)

	infos, err := store.List(ctx)
	require.NoError(t, err)
	a.Len(infos, 1)
}

func TestStore_List_newestFirst(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()
	store := testStore(t)

	for _, id := range []string{"poker_a", "poker_b", "poker_c"} {
		sess := testSession(0)
		sess.GameID = id
		_, err := store.Save(ctx, sess)
		require.NoError(t, err)
	}

	infos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	a.Equal("poker_c", infos[0].GameID)
	a.Equal("poker_a", infos[2].GameID)
	a.NotEmpty(infos[0].Summary)
}

func TestStore_List_empty(t *testing.T) {
	infos, err := testStore(t).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestStore_Delete(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()
	store := testStore(t)

	sess := testSession(0)
	sess.GameID = "poker_test"
	_, err := store.Save(ctx, sess)
	require.NoError(t, err)

	a.NoError(store.Delete(ctx, "poker_test"))

	_, err = store.Get(ctx, "poker_test")
	a.Equal(ErrSessionNotFound, err)

	a.Equal(ErrSessionNotFound, store.Delete(ctx, "poker_test"))
}
