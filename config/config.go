package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/chrissuu/elastisched/core/metrics"
)

// MQTTConfig configures the optional run-summary notifier. A zero Broker
// disables notification entirely.
type MQTTConfig struct {
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Topic    string `json:"topic"`
}

// Enabled reports whether a notifier should be constructed from this config.
func (c MQTTConfig) Enabled() bool { return c.Broker != "" }

// Config holds every parameter needed to run a scheduling search: the
// annealing parameters, the job source, and the observability sinks.
type Config struct {
	Granularity uint64         `json:"granularity"`
	InitialTemp float64        `json:"initial_temp"`
	FinalTemp   float64        `json:"final_temp"`
	NumIters    int            `json:"num_iters"`
	JobsFile    string         `json:"jobsFile"`
	Logging     LoggingConfig  `json:"logging"`
	Metrics     metrics.Config `json:"metrics"`
	MQTT        MQTTConfig     `json:"mqtt"`
}

// SetDefaults applies sane defaults to fields the caller left zero-valued.
func (c *Config) SetDefaults() {
	if c.Granularity == 0 {
		c.Granularity = 1
	}
	if c.InitialTemp == 0 {
		c.InitialTemp = 10.0
	}
	if c.FinalTemp == 0 {
		c.FinalTemp = 1e-4
	}
	if c.NumIters == 0 {
		c.NumIters = 1_000_000
	}
	c.Logging.SetDefaults()
}

// Validate checks mandatory fields across the config tree.
func (c Config) Validate() error {
	if c.JobsFile == "" {
		return fmt.Errorf("jobsFile is required")
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

// Load reads a YAML or JSON config file, applies ELASTISCHED_-prefixed
// environment overrides, and returns a validated Config.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides, e.g. ELASTISCHED_NUM_ITERS=500000.
	if err := k.Load(env.Provider("ELASTISCHED_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "elastisched_")
		return s
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
