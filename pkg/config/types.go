package config

const (
	// DefaultRequirementTimeMs is the lock deadline used when a configuration omits one
	DefaultRequirementTimeMs = 8000

	// DefaultSeed makes runs reproducible for teaching demonstrations
	DefaultSeed int64 = 42

	DefaultRandomVariationMs = 200
	DefaultSensorNoiseMs     = 50

	// MaxDelayMs bounds every single phase delay (about 37 hours).
	// Four saturated phases plus variance still fit in a 32-bit int.
	MaxDelayMs = 1 << 27

	// MaxVariationMs bounds the per-phase random variation
	MaxVariationMs = 1 << 27
)

// Config represents the entire configuration for the landing gear simulator
type Config struct {
	Seed              int64               `yaml:"seed"`
	RandomVariationMs int                 `yaml:"randomVariationMs"`
	SensorNoiseMs     int                 `yaml:"sensorNoiseMs"`
	Configurations    []GearConfiguration `yaml:"configurations"`
}

// GearConfiguration describes one landing gear hydraulic setup
type GearConfiguration struct {
	Name string `yaml:"name"`

	// Time for the hydraulic pump to spin up
	PumpLatencyMs int `yaml:"pumpLatencyMs"`

	// Extension speed in millimeters per 100 ms of actuator travel
	ActuatorSpeed float64 `yaml:"actuatorSpeed"`

	// How far the actuator must travel
	ExtensionDistanceMm int `yaml:"extensionDistanceMm"`

	// Time from the down sensor trigger to mechanical lock
	LockTimeMs int `yaml:"lockTimeMs"`

	// Deadline the total extension time is checked against
	RequirementTimeMs int `yaml:"requirementTimeMs"`
}

// WithDefaults returns a copy with the default deadline applied when none is set
func (g GearConfiguration) WithDefaults() GearConfiguration {
	if g.RequirementTimeMs == 0 {
		g.RequirementTimeMs = DefaultRequirementTimeMs
	}
	return g
}
