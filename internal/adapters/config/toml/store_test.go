package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/zksh/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "zksh", "config.toml")
	store, err := NewStore(viper.New(), path)
	require.NoError(t, err)
	return store, path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	store, _ := newTestStore(t)

	settings, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSaveThenLoad(t *testing.T) {
	store, path := newTestStore(t)

	want := domain.Settings{Hosts: "zk1:2181,zk2:2181", SessionTimeout: 12 * time.Second, LogLevel: "debug"}
	require.NoError(t, store.Save(context.Background(), want, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	reloaded, err := NewStore(viper.New(), path)
	require.NoError(t, err)
	got, err := reloaded.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveRefusesOverwriteWithoutForce(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.DefaultSettings(), false))

	err := store.Save(ctx, domain.Settings{Hosts: "other", SessionTimeout: time.Second}, false)
	require.ErrorIs(t, err, ErrConfigExists)

	require.NoError(t, store.Save(ctx, domain.Settings{Hosts: "other", SessionTimeout: time.Second}, true))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hosts = 'other'")
}

func TestLoadRejectsNewerSchema(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("version = 2\nhosts = 'zk1'\n"), 0o600))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config schema version 2")
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("session_timeout = 0\n"), 0o600))

	_, err := store.Load(context.Background())
	assert.ErrorContains(t, err, "session_timeout must be positive")
}

func TestLoadMalformedFile(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("hosts = [\n"), 0o600))

	_, err := store.Load(context.Background())
	assert.ErrorContains(t, err, "read config file")
}

func TestEnvironmentOverridesFile(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Save(context.Background(), domain.Settings{Hosts: "file:2181", SessionTimeout: 5 * time.Second, LogLevel: "warn"}, false))

	t.Setenv("ZKSH_HOSTS", "env:2181")

	reloaded, err := NewStore(viper.New(), path)
	require.NoError(t, err)
	got, err := reloaded.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "env:2181", got.Hosts)
}

func TestExplicitOverrideWins(t *testing.T) {
	cfg := viper.New()
	path := filepath.Join(t.TempDir(), "config.toml")
	store, err := NewStore(cfg, path)
	require.NoError(t, err)

	cfg.Set(KeyHosts, "flag:2181")

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "flag:2181", got.Hosts)
}

func TestEncode(t *testing.T) {
	data, err := Encode(domain.DefaultSettings())
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "session_timeout = 5")
	assert.Contains(t, string(data), "log_level = 'warn'")
}
