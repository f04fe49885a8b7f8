package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadConfig loads and parses the configuration file.
// Keys missing from the file keep the values of DefaultConfig.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses and validates a YAML document
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	config.Configurations = nil

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	for i := range config.Configurations {
		config.Configurations[i] = config.Configurations[i].WithDefaults()
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.RandomVariationMs < 0 {
		return fmt.Errorf("%w: randomVariationMs must not be negative", ErrInvalidConfig)
	}

	if config.RandomVariationMs > MaxVariationMs {
		return fmt.Errorf("%w: randomVariationMs must not exceed %d", ErrInvalidConfig, MaxVariationMs)
	}

	if config.SensorNoiseMs < 0 {
		return fmt.Errorf("%w: sensorNoiseMs must not be negative", ErrInvalidConfig)
	}

	if config.SensorNoiseMs > MaxDelayMs {
		return fmt.Errorf("%w: sensorNoiseMs must not exceed %d", ErrInvalidConfig, MaxDelayMs)
	}

	if len(config.Configurations) == 0 {
		return fmt.Errorf("%w: at least one configuration must be defined", ErrInvalidConfig)
	}

	for i, gear := range config.Configurations {
		if err := ValidateGear(gear); err != nil {
			if gear.Name == "" {
				return fmt.Errorf("configuration %d: %w", i, err)
			}
			return err
		}
	}

	return nil
}

// ValidateGear checks a single gear configuration
func ValidateGear(gear GearConfiguration) error {
	if gear.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}

	if gear.ActuatorSpeed <= 0 {
		return fmt.Errorf("%w: %s: actuatorSpeed must be greater than 0", ErrInvalidConfig, gear.Name)
	}

	if gear.ExtensionDistanceMm <= 0 {
		return fmt.Errorf("%w: %s: extensionDistanceMm must be greater than 0", ErrInvalidConfig, gear.Name)
	}

	if gear.PumpLatencyMs < 0 || gear.PumpLatencyMs > MaxDelayMs {
		return fmt.Errorf("%w: %s: pumpLatencyMs must be between 0 and %d", ErrInvalidConfig, gear.Name, MaxDelayMs)
	}

	if gear.LockTimeMs < 0 || gear.LockTimeMs > MaxDelayMs {
		return fmt.Errorf("%w: %s: lockTimeMs must be between 0 and %d", ErrInvalidConfig, gear.Name, MaxDelayMs)
	}

	if gear.RequirementTimeMs <= 0 {
		return fmt.Errorf("%w: %s: requirementTimeMs must be greater than 0", ErrInvalidConfig, gear.Name)
	}

	return nil
}
