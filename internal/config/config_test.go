package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. (t.Chdir requires Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "transactions.csv", cfg.Store.File)
	assert.Equal(t, "categories.yaml", cfg.Categorizer.RulesFile)
	assert.Equal(t, 60, cfg.Pending.TTLSeconds)
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := `
log:
  level: debug
  format: json
store:
  file: data/tx.csv
pending:
  ttl_seconds: 120
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "data/tx.csv", cfg.Store.File)
	assert.Equal(t, 120, cfg.Pending.TTLSeconds)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("EXPENSE_LOG_LEVEL", "debug")
	t.Setenv("EXPENSE_STORE_FILE", "env.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "env.csv", cfg.Store.File)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults are valid", func(c *Config) {}, false},
		{"Bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"Bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"Empty store file", func(c *Config) { c.Store.File = "" }, true},
		{"Zero TTL", func(c *Config) { c.Pending.TTLSeconds = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &Config{}
			c.Log.Level = "info"
			c.Log.Format = "text"
			c.Store.File = "transactions.csv"
			c.Pending.TTLSeconds = 60
			tc.mutate(c)

			err := validate(c)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
