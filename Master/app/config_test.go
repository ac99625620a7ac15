package master

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 1000000, cfg.DatasetSize)
	require.Equal(t, 100000, cfg.ChunkSize)
	require.Equal(t, 9, cfg.Workers)
	require.Equal(t, 5*time.Second, cfg.HeartbeatTimeout)
	require.Equal(t, 10*time.Millisecond, cfg.PollInterval)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dataset_size: 500
chunk_size: 50
workers: 3
heartbeat_timeout: 250ms
listen: ":9000"
logging:
  level: debug
  format: json
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 500, cfg.DatasetSize)
	require.Equal(t, 50, cfg.ChunkSize)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, 250*time.Millisecond, cfg.HeartbeatTimeout)
	require.Equal(t, ":9000", cfg.Listen)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)

	// Untouched keys keep their defaults.
	require.Equal(t, DefaultPollInterval, cfg.PollInterval)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dataset", func(c *Config) { c.DatasetSize = 0 }},
		{"negative dataset", func(c *Config) { c.DatasetSize = -1 }},
		{"zero chunk", func(c *Config) { c.ChunkSize = 0 }},
		{"chunk larger than dataset", func(c *Config) { c.ChunkSize = c.DatasetSize + 1 }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"zero heartbeat", func(c *Config) { c.HeartbeatTimeout = 0 }},
		{"zero poll", func(c *Config) { c.PollInterval = 0 }},
		{"zero join timeout", func(c *Config) { c.JoinTimeout = 0 }},
		{"empty listen", func(c *Config) { c.Listen = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
}
