package watchdog

import (
	"os"
	"time"

	"github.com/core-tools/hsu-memwatch/pkg/errors"
	"github.com/core-tools/hsu-memwatch/pkg/logging"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration file structure
type Config struct {
	Memwatch   MemwatchConfigOptions   `yaml:"memwatch"`
	Supervisor SupervisorConfigOptions `yaml:"supervisor"`
	Logging    logging.ZapConfig       `yaml:"logging,omitempty"`
}

// MemwatchConfigOptions represents the watchdog decision configuration
type MemwatchConfigOptions struct {
	// Name is an optional instance label used in report subjects
	Name string `yaml:"name,omitempty"`

	// Any is the catch-all byte threshold, required. A value of 0 means
	// "no limit" unless a program or group threshold overrides it.
	Any *ByteSize `yaml:"any"`

	// Programs maps "name" or "group:name" keys to byte thresholds
	Programs map[string]ByteSize `yaml:"program,omitempty"`

	// Groups maps group names to byte thresholds
	Groups map[string]ByteSize `yaml:"group,omitempty"`

	// Uptime is the minimum uptime before a process is restart-eligible.
	// Pointer to distinguish unset (defaulted to 60s) from an explicit 0.
	Uptime *time.Duration `yaml:"uptime,omitempty"`
}

// SupervisorConfigOptions represents the supervision service endpoint
type SupervisorConfigOptions struct {
	URL            string        `yaml:"url"`
	TickInterval   time.Duration `yaml:"tick_interval,omitempty"`
	RequestTimeout time.Duration `yaml:"request_timeout,omitempty"`
}

// LoadConfigFromFile loads watchdog configuration from a YAML file
func LoadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.NewIOError("failed to read configuration file", err).WithContext("filename", filename)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.NewValidationError("failed to parse YAML configuration", err).WithContext("filename", filename)
	}

	setConfigDefaults(&config)

	return &config, nil
}

// setConfigDefaults applies default values to configuration
func setConfigDefaults(config *Config) {
	if config.Memwatch.Uptime == nil {
		uptime := 60 * time.Second
		config.Memwatch.Uptime = &uptime
	}

	if config.Supervisor.TickInterval == 0 {
		config.Supervisor.TickInterval = 60 * time.Second
	}
	if config.Supervisor.RequestTimeout == 0 {
		config.Supervisor.RequestTimeout = 10 * time.Second
	}

	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Output == "" {
		config.Logging.Output = "stdout"
	}
}

// WatchdogOptions converts the configuration into watchdog options
func (c *Config) WatchdogOptions() WatchdogOptions {
	options := WatchdogOptions{
		Name: c.Memwatch.Name,
		Thresholds: ThresholdConfig{
			Programs: c.Memwatch.Programs,
			Groups:   c.Memwatch.Groups,
		},
	}
	if c.Memwatch.Any != nil {
		options.Thresholds.Any = *c.Memwatch.Any
	}
	if c.Memwatch.Uptime != nil {
		options.MinUptime = *c.Memwatch.Uptime
	}
	return options
}
