package device

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Init_CreatesDurableID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.json")
	p := NewProvider(path, "linux", "1.0.0")

	require.NoError(t, p.Init())

	rec, err := p.Current()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rec.ID, DurablePrefix))
	assert.True(t, p.Durable())
	assert.FileExists(t, path)
}

func TestProvider_Init_ReusesPersistedID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.json")

	first := NewProvider(path, "linux", "1.0.0")
	require.NoError(t, first.Init())
	firstRec, err := first.Current()
	require.NoError(t, err)

	second := NewProvider(path, "linux", "1.0.1")
	require.NoError(t, second.Init())
	secondRec, err := second.Current()
	require.NoError(t, err)

	assert.Equal(t, firstRec.ID, secondRec.ID)
	assert.Equal(t, firstRec.CreatedAt, secondRec.CreatedAt)
}

func TestProvider_Init_EmptyPathFallsBackToSessionID(t *testing.T) {
	p := NewProvider("", "linux", "1.0.0")

	require.NoError(t, p.Init())

	rec, err := p.Current()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rec.ID, SessionPrefix))
	assert.False(t, p.Durable())
}

func TestProvider_Init_UnwritablePathFallsBackToSessionID(t *testing.T) {
	// A path under a file (not a directory) cannot be created.
	base := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(base, []byte("x"), 0o600))

	p := NewProvider(filepath.Join(base, "device.json"), "linux", "1.0.0")
	require.NoError(t, p.Init())

	rec, err := p.Current()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rec.ID, SessionPrefix))
	assert.False(t, p.Durable())
}

func TestProvider_Init_CorruptRecordFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	p := NewProvider(path, "linux", "1.0.0")

	assert.Error(t, p.Init())
}

func TestProvider_Current_RefreshesLastUsedAt(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "device.json"), "linux", "1.0.0")
	require.NoError(t, p.Init())

	first, err := p.Current()
	require.NoError(t, err)
	second, err := p.Current()
	require.NoError(t, err)

	assert.False(t, second.LastUsedAt.Before(first.LastUsedAt))
}

func TestProvider_Current_BeforeInit(t *testing.T) {
	p := NewProvider("", "linux", "1.0.0")

	_, err := p.Current()

	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestProvider_Reset_MintsNewID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.json")
	p := NewProvider(path, "linux", "1.0.0")
	require.NoError(t, p.Init())

	before, err := p.Current()
	require.NoError(t, err)

	require.NoError(t, p.Reset())

	after, err := p.Current()
	require.NoError(t, err)
	assert.NotEqual(t, before.ID, after.ID)
	assert.True(t, strings.HasPrefix(after.ID, DurablePrefix))
}
