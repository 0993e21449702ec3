package config

import (
	"fmt"

	"github.com/SBOne-Kenobi/UTBotJava/api/schemas"
	"github.com/spf13/viper"
)

// Config holds the configuration of the mocking core: how decisions are
// logged and which policy and capabilities the engine is constructed with.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Mocking MockingConfig `mapstructure:"mocking" yaml:"mocking"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// MockingConfig selects the strategy variant and describes what the
// generated-test runtime supports.
type MockingConfig struct {
	// Strategy is one of the variant names in the mocking package.
	Strategy string `mapstructure:"strategy" yaml:"strategy"`
	// ExtraAlwaysMock supplements the default always-mock seed set.
	ExtraAlwaysMock []string `mapstructure:"extra_always_mock" yaml:"extra_always_mock"`
	// InstanceMockingAvailable mirrors whether an instance mocking
	// framework is on the generated test's classpath.
	InstanceMockingAvailable bool `mapstructure:"instance_mocking_available" yaml:"instance_mocking_available"`
	// StaticMockingConfigured mirrors whether static/constructor mocking
	// is configured for the generated test runtime.
	StaticMockingConfigured bool `mapstructure:"static_mocking_configured" yaml:"static_mocking_configured"`
	// AddressSpaceLimit caps the symbolic address allocator; 0 means
	// unlimited.
	AddressSpaceLimit uint64 `mapstructure:"address_space_limit" yaml:"address_space_limit"`
}

// Capabilities converts the configured flags into the engine's capability
// struct.
func (m MockingConfig) Capabilities() schemas.ApplicationCapabilities {
	return schemas.ApplicationCapabilities{
		InstanceMockingAvailable: m.InstanceMockingAvailable,
		StaticMockingConfigured:  m.StaticMockingConfigured,
	}
}

// knownStrategies mirrors the variant names registered in the mocking
// package. Kept here so config validation does not import the engine.
var knownStrategies = map[string]struct{}{
	"no-mocks":       {},
	"other-packages": {},
	"other-classes":  {},
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "utbot-mocker")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Mocking --
	v.SetDefault("mocking.strategy", "other-packages")
	v.SetDefault("mocking.extra_always_mock", []string{})
	v.SetDefault("mocking.instance_mocking_available", true)
	v.SetDefault("mocking.static_mocking_configured", false)
	v.SetDefault("mocking.address_space_limit", 0)
}

// NewDefaultConfig creates a configuration populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Cannot happen with defaults alone.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewConfigFromViper creates a configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if _, ok := knownStrategies[c.Mocking.Strategy]; !ok {
		return fmt.Errorf("mocking.strategy %q is not a known variant", c.Mocking.Strategy)
	}
	for _, seed := range c.Mocking.ExtraAlwaysMock {
		if seed == "" {
			return fmt.Errorf("mocking.extra_always_mock must not contain empty type names")
		}
	}
	return nil
}
