package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFlagFromArgs(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"dashboard"}, ""},
		{[]string{"--config", "/tmp/a.yaml", "dashboard"}, "/tmp/a.yaml"},
		{[]string{"dashboard", "-c", "b.yaml"}, "b.yaml"},
		{[]string{"--config=c.yaml"}, "c.yaml"},
		{[]string{"-c=d.yaml", "info"}, "d.yaml"},
		{[]string{"--", "--config", "e.yaml"}, ""},
		{[]string{"-c"}, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, configFlagFromArgs(tt.args), tt.args)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, loadDotEnv(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CLEVERCASH_TEST_DOTENV=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CLEVERCASH_TEST_DOTENV") })

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("CLEVERCASH_TEST_DOTENV"))
}

func TestCreateDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clevercash")

	require.NoError(t, createDefaultConfig(dir))
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "level: warn")
	assert.NotContains(t, string(data), "currency")

	// An existing file is left alone.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: debug\n"), 0o644))
	require.NoError(t, createDefaultConfig(dir))
	data, err = os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug")
}
