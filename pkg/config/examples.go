package config

// ConfigA uses a hydraulic pump shared with other systems (slower)
var ConfigA = GearConfiguration{
	Name:                "Config A – Shared Pump",
	PumpLatencyMs:       300,
	ActuatorSpeed:       8.0,
	ExtensionDistanceMm: 700,
	LockTimeMs:          300,
	RequirementTimeMs:   DefaultRequirementTimeMs,
}

// ConfigB uses a pump dedicated to the landing gear (faster)
var ConfigB = GearConfiguration{
	Name:                "Config B – Dedicated Pump",
	PumpLatencyMs:       100,
	ActuatorSpeed:       12.0,
	ExtensionDistanceMm: 700,
	LockTimeMs:          300,
	RequirementTimeMs:   DefaultRequirementTimeMs,
}

// DefaultConfig returns the built-in example set with the default run parameters
func DefaultConfig() *Config {
	return &Config{
		Seed:              DefaultSeed,
		RandomVariationMs: DefaultRandomVariationMs,
		SensorNoiseMs:     DefaultSensorNoiseMs,
		Configurations:    []GearConfiguration{ConfigA, ConfigB},
	}
}
