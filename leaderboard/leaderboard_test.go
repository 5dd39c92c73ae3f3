package leaderboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingFileIsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "board.json"))
	require.NoError(t, err)
	assert.Empty(t, s.Names())
	assert.Empty(t, s.Top(5))
}

func TestOpenMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err := Open(path)
	assert.Error(t, err)
}

func TestAddPersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Add("ada", 150))
	require.NoError(t, s.Add("grace", 90))

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ada", "grace"}, reopened.Names())

	top := reopened.Top(5)
	require.Len(t, top, 2)
	assert.Equal(t, "ada", top[0].Name)
	assert.Equal(t, 150, top[0].Score)
}

func TestTopOrdersByScoreDescending(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "board.json"))
	require.NoError(t, err)

	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.add("ada", 100, at))
	require.NoError(t, s.add("grace", 300, at))
	require.NoError(t, s.add("ada", 200, at))
	require.NoError(t, s.add("linus", 50, at))

	top := s.Top(3)
	require.Len(t, top, 3)
	assert.Equal(t, 300, top[0].Score)
	assert.Equal(t, 200, top[1].Score)
	assert.Equal(t, 100, top[2].Score)
	assert.Equal(t, "2026-08-30 12:00", top[0].Date)
}

func TestTopForSinglePlayer(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "board.json"))
	require.NoError(t, err)

	require.NoError(t, s.Add("ada", 100))
	require.NoError(t, s.Add("ada", 300))
	require.NoError(t, s.Add("grace", 999))

	top := s.TopFor("ada", 5)
	require.Len(t, top, 2)
	assert.Equal(t, 300, top[0].Score)
	assert.Equal(t, 100, top[1].Score)

	assert.Empty(t, s.TopFor("nobody", 5))
}
