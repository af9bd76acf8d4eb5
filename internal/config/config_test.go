package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `{
    "tg": {
        "token": "test-token",
        "owner": 42,
        "use_whitelist": true,
        "whitelist": {
            "alice": 100
        }
    },
    "db": "wats.db"
}`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		expectedError bool
	}{
		{
			name:          "valid config",
			content:       validConfig,
			expectedError: false,
		},
		{
			name:          "malformed json",
			content:       "{not json",
			expectedError: true,
		},
		{
			name:          "missing token",
			content:       `{"tg": {"owner": 42}, "db": "wats.db"}`,
			expectedError: true,
		},
		{
			name:          "missing owner",
			content:       `{"tg": {"token": "t"}, "db": "wats.db"}`,
			expectedError: true,
		},
		{
			name:          "missing db path",
			content:       `{"tg": {"token": "t", "owner": 42}}`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)

			store, err := Load(path)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "test-token", store.Token())
			assert.Equal(t, int64(42), store.Owner())
			assert.True(t, store.UseWhitelist())
			assert.Equal(t, "wats.db", store.DBPath())
			assert.Equal(t, map[string]int64{"alice": 100}, store.Whitelist())
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
}

func TestLoad_NilWhitelistInitialized(t *testing.T) {
	path := writeConfigFile(t, `{"tg": {"token": "t", "owner": 42}, "db": "wats.db"}`)

	store, err := Load(path)

	require.NoError(t, err)
	assert.NotNil(t, store.Whitelist())
	assert.Empty(t, store.Whitelist())
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := &Config{
		TG: TGConfig{
			Token:        "t",
			Owner:        42,
			UseWhitelist: true,
			Whitelist:    map[string]int64{"alice": 100},
		},
		DB: "wats.db",
	}

	data, err := Marshal(cfg)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *cfg, decoded)
}

func TestStore_AddWhitelistEntry(t *testing.T) {
	path := writeConfigFile(t, validConfig)
	store, err := Load(path)
	require.NoError(t, err)

	added, err := store.AddWhitelistEntry("bob", 200)
	assert.NoError(t, err)
	assert.True(t, added)

	// Second add with the same name must not mutate anything
	added, err = store.AddWhitelistEntry("bob", 999)
	assert.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, map[string]int64{"alice": 100, "bob": 200}, store.Whitelist())

	// Mutation must be visible after reloading the file
	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"alice": 100, "bob": 200}, reloaded.Whitelist())
}

func TestStore_RemoveWhitelistEntry(t *testing.T) {
	path := writeConfigFile(t, validConfig)
	store, err := Load(path)
	require.NoError(t, err)

	removed, err := store.RemoveWhitelistEntry("alice")
	assert.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.RemoveWhitelistEntry("alice")
	assert.NoError(t, err)
	assert.False(t, removed)

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Whitelist())
}

func TestStore_PersistFailureRollsBack(t *testing.T) {
	path := writeConfigFile(t, validConfig)
	store, err := Load(path)
	require.NoError(t, err)

	// Turn the config path into a directory so the rename fails
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))

	added, err := store.AddWhitelistEntry("bob", 200)
	assert.False(t, added)
	assert.ErrorIs(t, err, ErrPersist)

	// In-memory whitelist must be unchanged
	assert.Equal(t, map[string]int64{"alice": 100}, store.Whitelist())

	removed, err := store.RemoveWhitelistEntry("alice")
	assert.False(t, removed)
	assert.ErrorIs(t, err, ErrPersist)
	assert.Equal(t, map[string]int64{"alice": 100}, store.Whitelist())
}
