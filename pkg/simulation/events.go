package simulation

import (
	"github.com/sherine-k/landinggear/pkg/config"
)

// GearState defines the landing gear phase at a point of the timeline
type GearState string

const (
	GearStateUpLocked          GearState = "UP_LOCKED"
	GearStateTransitioningDown GearState = "TRANSITIONING_DOWN"
	GearStateDownLocked        GearState = "DOWN_LOCKED"
	GearStateFailureDetected   GearState = "FAILURE_DETECTED"
)

// Valid reports whether s is one of the four known states
func (s GearState) Valid() bool {
	switch s {
	case GearStateUpLocked, GearStateTransitioningDown, GearStateDownLocked, GearStateFailureDetected:
		return true
	}
	return false
}

// PhaseName identifies a timed sub-system step of the extension sequence
type PhaseName string

const (
	PhasePump     PhaseName = "pump"
	PhaseActuator PhaseName = "actuator"
	PhaseSensor   PhaseName = "sensor"
	PhaseLock     PhaseName = "lock"
)

// TimelineEvent represents a point-in-time event in the simulation
type TimelineEvent struct {
	TimestampMs int       `yaml:"timestampMs"`
	Description string    `yaml:"description"`
	State       GearState `yaml:"state"`
}

// PhaseTiming is the actual delay a phase contributed after variance and clamping
type PhaseTiming struct {
	Phase      PhaseName `yaml:"phase"`
	DurationMs int       `yaml:"durationMs"`
}

// SimulationResult is the outcome of one extension run
type SimulationResult struct {
	Config           config.GearConfiguration `yaml:"config"`
	Timeline         []TimelineEvent          `yaml:"timeline"`
	Phases           []PhaseTiming            `yaml:"phases"`
	TotalTimeMs      int                      `yaml:"totalTimeMs"`
	MeetsRequirement bool                     `yaml:"meetsRequirement"`

	// Set to the requirement deadline when the run breached it
	FailureStateTime *int `yaml:"failureStateTime,omitempty"`
}

// FinalState returns the state of the last timeline event
func (r SimulationResult) FinalState() GearState {
	if len(r.Timeline) == 0 {
		return GearStateUpLocked
	}
	return r.Timeline[len(r.Timeline)-1].State
}

// MarginMs is the time left before the deadline; negative when breached
func (r SimulationResult) MarginMs() int {
	return r.Config.RequirementTimeMs - r.TotalTimeMs
}
