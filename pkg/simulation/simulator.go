package simulation

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sherine-k/landinggear/pkg/config"
)

// ErrInvalidConfiguration is returned when a run is requested with inputs
// that violate its preconditions. No timeline is produced.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// RandomSource supplies the perturbation draws. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Simulator runs landing gear extension sequences against a shared random source
type Simulator struct {
	rng    RandomSource
	logger *slog.Logger
}

// NewSimulator creates a new simulator. A nil logger falls back to slog.Default().
func NewSimulator(rng RandomSource, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Simulator{
		rng:    rng,
		logger: logger.With("component", "simulation"),
	}
}

// Simulate runs a single extension sequence
func Simulate(cfg config.GearConfiguration, rng RandomSource, randomVariationMs, sensorNoiseMs int) (SimulationResult, error) {
	return NewSimulator(rng, nil).Run(cfg, randomVariationMs, sensorNoiseMs)
}

// phase is one step of the extension sequence
type phase struct {
	name     PhaseName
	delay    func() int
	state    GearState
	describe func(delayMs int) string
}

// Run executes the extension sequence for cfg.
// Exactly three draws are taken from the random source, in pump, actuator, lock order.
func (s *Simulator) Run(cfg config.GearConfiguration, randomVariationMs, sensorNoiseMs int) (SimulationResult, error) {
	if err := checkRun(cfg, randomVariationMs, sensorNoiseMs); err != nil {
		return SimulationResult{}, err
	}

	state := GearStateUpLocked
	timeMs := 0
	timeline := []TimelineEvent{
		{TimestampMs: timeMs, Description: "Initial state: gear up and locked", State: state},
		// no time cost for the pilot moving the handle
		{TimestampMs: timeMs, Description: "Command issued: GEAR DOWN", State: state},
	}

	// mm per 100 ms to mm per ms
	speedMmPerMs := cfg.ActuatorSpeed / 100.0

	phases := []phase{
		{
			name: PhasePump,
			delay: func() int {
				return clamp(cfg.PumpLatencyMs + s.perturbation(randomVariationMs))
			},
			state: GearStateTransitioningDown,
			describe: func(d int) string {
				return fmt.Sprintf("Hydraulic pump ready after %d ms", d)
			},
		},
		{
			name: PhaseActuator,
			delay: func() int {
				ideal := saturate(float64(cfg.ExtensionDistanceMm) / speedMmPerMs)
				return clamp(ideal + s.perturbation(randomVariationMs))
			},
			state: GearStateTransitioningDown,
			describe: func(d int) string {
				return fmt.Sprintf("Actuator finished extending after %d ms", d)
			},
		},
		{
			name:  PhaseSensor,
			delay: func() int { return sensorNoiseMs },
			state: GearStateTransitioningDown,
			describe: func(d int) string {
				return fmt.Sprintf("Down-position sensor triggered (+%d ms noise)", d)
			},
		},
		{
			name: PhaseLock,
			delay: func() int {
				return clamp(cfg.LockTimeMs + s.perturbation(randomVariationMs))
			},
			state: GearStateDownLocked,
			describe: func(d int) string {
				return fmt.Sprintf("Gear locked DOWN after additional %d ms", d)
			},
		},
	}

	timings := make([]PhaseTiming, 0, len(phases))
	for _, p := range phases {
		d := p.delay()
		timeMs += d
		state = p.state
		timeline = append(timeline, TimelineEvent{TimestampMs: timeMs, Description: p.describe(d), State: state})
		timings = append(timings, PhaseTiming{Phase: p.name, DurationMs: d})
	}

	result := SimulationResult{
		Config:           cfg,
		Phases:           timings,
		TotalTimeMs:      timeMs,
		MeetsRequirement: timeMs <= cfg.RequirementTimeMs,
	}

	// The breach is flagged at the deadline, not at the later completion time.
	if !result.MeetsRequirement {
		failureAt := cfg.RequirementTimeMs
		result.FailureStateTime = &failureAt
		timeline = append(timeline, TimelineEvent{
			TimestampMs: failureAt,
			Description: fmt.Sprintf("Requirement breached (> %d ms). System would flag failure.", cfg.RequirementTimeMs),
			State:       GearStateFailureDetected,
		})
	}
	result.Timeline = timeline

	s.logger.Debug("extension simulated",
		"config", cfg.Name,
		"totalMs", result.TotalTimeMs,
		"requirementMs", cfg.RequirementTimeMs,
		"met", result.MeetsRequirement)

	return result, nil
}

// checkRun rejects inputs the engine cannot time. Bounding the delays and the
// variation keeps every sum below overflow and every Intn argument positive.
func checkRun(cfg config.GearConfiguration, randomVariationMs, sensorNoiseMs int) error {
	// also catches NaN
	if !(cfg.ActuatorSpeed > 0) {
		return fmt.Errorf("%w: %s: actuator speed must be positive", ErrInvalidConfiguration, cfg.Name)
	}
	if cfg.RequirementTimeMs <= 0 {
		return fmt.Errorf("%w: %s: requirement time must be positive", ErrInvalidConfiguration, cfg.Name)
	}
	if cfg.PumpLatencyMs < -config.MaxDelayMs || cfg.PumpLatencyMs > config.MaxDelayMs {
		return fmt.Errorf("%w: %s: pump latency out of range", ErrInvalidConfiguration, cfg.Name)
	}
	if cfg.LockTimeMs < -config.MaxDelayMs || cfg.LockTimeMs > config.MaxDelayMs {
		return fmt.Errorf("%w: %s: lock time out of range", ErrInvalidConfiguration, cfg.Name)
	}
	if randomVariationMs < 0 || randomVariationMs > config.MaxVariationMs {
		return fmt.Errorf("%w: random variation must be between 0 and %d", ErrInvalidConfiguration, config.MaxVariationMs)
	}
	if sensorNoiseMs < 0 || sensorNoiseMs > config.MaxDelayMs {
		return fmt.Errorf("%w: sensor noise must be between 0 and %d", ErrInvalidConfiguration, config.MaxDelayMs)
	}
	return nil
}

// saturate truncates toward zero and caps the result at MaxDelayMs either way.
// A nearly stalled actuator therefore reports the cap instead of wrapping around.
func saturate(ms float64) int {
	switch {
	case ms >= config.MaxDelayMs:
		return config.MaxDelayMs
	case ms <= -config.MaxDelayMs:
		return -config.MaxDelayMs
	}
	return int(ms)
}

// perturbation draws uniformly from the closed range [-v, +v]
func (s *Simulator) perturbation(v int) int {
	return s.rng.Intn(2*v+1) - v
}

// clamp prevents negative physical delays
func clamp(ms int) int {
	return max(ms, 0)
}
