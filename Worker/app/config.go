package worker

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"crunch/Common/logger"
)

const (
	DefaultMasterAddr = "127.0.0.1:50051"
	DefaultThreads    = 4
)

// Config holds every recognized startup parameter for a worker.
type Config struct {
	MasterAddr string        `yaml:"master_addr"`
	Threads    int           `yaml:"threads"`
	Instance   string        `yaml:"instance"`
	Logging    logger.Config `yaml:"logging"`
}

// DefaultConfig names the instance after the host, falling back to a
// random suffix when the hostname is unavailable.
func DefaultConfig() *Config {
	instance := "worker-" + uuid.NewString()[:8]
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		instance = "worker-" + hostname
	}
	return &Config{
		MasterAddr: DefaultMasterAddr,
		Threads:    DefaultThreads,
		Instance:   instance,
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

func (c *Config) Validate() error {
	if c.MasterAddr == "" {
		return fmt.Errorf("master address is required")
	}
	if c.Threads <= 0 {
		return fmt.Errorf("threads %d must be positive", c.Threads)
	}
	if c.Instance == "" {
		return fmt.Errorf("instance name is required")
	}
	return nil
}
