package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaanHessen/lifecounter/internal/life"
)

func TestMemoryPreferences(t *testing.T) {
	m := NewMemory()
	assert.Equal(t, "20", m.String("starting_life", "20"))
	require.NoError(t, m.PersistString("starting_life", "40"))
	v, err := m.PersistedString("starting_life", "20")
	require.NoError(t, err)
	assert.Equal(t, "40", v)
}

func TestMemoryLatestGame(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_, err := m.LatestGame(ctx)
	assert.ErrorIs(t, err, ErrNoGame)

	a, b := life.New(20), life.New(20)
	a.SetLife(14)
	a.Commit()
	_, err = m.SaveGame(ctx, []*life.Model{a, b})
	require.NoError(t, err)

	a.SetLife(1)
	a.Commit()

	got, err := m.LatestGame(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 14, got[0].Life())
	assert.Equal(t, []int{14}, got[0].History())
	assert.Equal(t, 20, got[1].Life())
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestNewMigratorRequiresDSN(t *testing.T) {
	_, err := NewMigrator("")
	assert.Error(t, err)
}
