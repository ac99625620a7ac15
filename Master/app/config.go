package master

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"crunch/Common/logger"
)

// Reference run shape: one million elements in ten chunks, nine workers,
// five second heartbeat with a 10ms poll.
const (
	DefaultDatasetSize      = 1000000
	DefaultChunkSize        = 100000
	DefaultWorkers          = 9
	DefaultHeartbeatTimeout = 5 * time.Second
	DefaultPollInterval     = 10 * time.Millisecond
	DefaultJoinTimeout      = 60 * time.Second
	DefaultListen           = ":50051"
)

// Config holds every recognized startup parameter for the master.
type Config struct {
	DatasetSize      int           `yaml:"dataset_size"`
	ChunkSize        int           `yaml:"chunk_size"`
	Workers          int           `yaml:"workers"`
	HeartbeatTimeout time.Duration `yaml:"heartbeat_timeout"`
	PollInterval     time.Duration `yaml:"poll_interval"`
	JoinTimeout      time.Duration `yaml:"join_timeout"`
	Listen           string        `yaml:"listen"`
	Output           string        `yaml:"output"`
	Logging          logger.Config `yaml:"logging"`
}

// DefaultConfig returns the reference parameters.
func DefaultConfig() *Config {
	return &Config{
		DatasetSize:      DefaultDatasetSize,
		ChunkSize:        DefaultChunkSize,
		Workers:          DefaultWorkers,
		HeartbeatTimeout: DefaultHeartbeatTimeout,
		PollInterval:     DefaultPollInterval,
		JoinTimeout:      DefaultJoinTimeout,
		Listen:           DefaultListen,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults untouched.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate rejects invalid parameters before any dispatch begins.
func (c *Config) Validate() error {
	if c.DatasetSize <= 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("dataset_size %d must be positive", c.DatasetSize)}
	}
	if c.ChunkSize <= 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("chunk_size %d must be positive", c.ChunkSize)}
	}
	if c.ChunkSize > c.DatasetSize {
		return &ConfigurationError{Reason: fmt.Sprintf("chunk_size %d exceeds dataset_size %d", c.ChunkSize, c.DatasetSize)}
	}
	if c.Workers <= 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("workers %d must be positive", c.Workers)}
	}
	if c.HeartbeatTimeout <= 0 {
		return &ConfigurationError{Reason: "heartbeat_timeout must be positive"}
	}
	if c.PollInterval <= 0 {
		return &ConfigurationError{Reason: "poll_interval must be positive"}
	}
	if c.JoinTimeout <= 0 {
		return &ConfigurationError{Reason: "join_timeout must be positive"}
	}
	if c.Listen == "" {
		return &ConfigurationError{Reason: "listen address is required"}
	}
	return nil
}
