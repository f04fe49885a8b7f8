package chart

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/sherine-k/landinggear/pkg/config"
	"github.com/sherine-k/landinggear/pkg/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runZeroVariance(t *testing.T, gear config.GearConfiguration) simulation.SimulationResult {
	t.Helper()
	result, err := simulation.Simulate(gear, rand.New(rand.NewSource(1)), 0, 0)
	require.NoError(t, err)
	return result
}

func TestGenerateReport_Failing(t *testing.T) {
	report := NewGenerator().GenerateReport(runZeroVariance(t, config.ConfigA))

	assert.Contains(t, report, "Simulation for Config A – Shared Pump")
	assert.Contains(t, report, "[t =     0 ms]  UP_LOCKED           - Initial state: gear up and locked")
	assert.Contains(t, report, "[t =   300 ms]  TRANSITIONING_DOWN  - Hydraulic pump ready after 300 ms")
	assert.Contains(t, report, "[t =  9350 ms]  DOWN_LOCKED         - Gear locked DOWN after additional 300 ms")
	assert.Contains(t, report, "[t =  8000 ms]  FAILURE_DETECTED    - Requirement breached (> 8000 ms)")
	assert.Contains(t, report, "Total time to DOWN_LOCKED: 9350 ms (9.35 s)")
	assert.Contains(t, report, "Requirement: must lock within 8000 ms (8.00 s)")
	assert.Contains(t, report, "Requirement NOT MET")
	assert.NotContains(t, report, "Requirement MET\n")
}

func TestGenerateReport_TimelineOrder(t *testing.T) {
	result := runZeroVariance(t, config.ConfigA)
	report := NewGenerator().GenerateReport(result)

	last := -1
	for _, event := range result.Timeline {
		idx := strings.Index(report, event.Description)
		require.GreaterOrEqual(t, idx, 0, event.Description)
		assert.Greater(t, idx, last, "events are rendered in timeline order")
		last = idx
	}
	assert.Greater(t, strings.Index(report, "Summary:"), last)
}

func TestGenerateReport_Passing(t *testing.T) {
	report := NewGenerator().GenerateReport(runZeroVariance(t, config.ConfigB))

	assert.Contains(t, report, "Total time to DOWN_LOCKED: 6233 ms (6.23 s)")
	assert.Contains(t, report, "✅ Requirement MET")
	assert.NotContains(t, report, "FAILURE_DETECTED")
}

func TestGeneratePhaseChart(t *testing.T) {
	g := NewGenerator()
	out := g.GeneratePhaseChart(runZeroVariance(t, config.ConfigA))

	assert.Contains(t, out, "Phase Timing")
	for _, name := range []string{"pump", "actuator", "sensor", "lock"} {
		assert.Contains(t, out, name+" ")
	}
	assert.Contains(t, out, "9350ms", "axis ends at the larger of total and deadline")
	assert.Contains(t, out, "Requirement deadline (8000 ms)")

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), chartWidth, line)
	}
}

func TestGeneratePhaseChart_ScaleUsesDeadlineWhenFaster(t *testing.T) {
	out := NewGenerator().GeneratePhaseChart(runZeroVariance(t, config.ConfigB))
	assert.Contains(t, out, "8000ms")
}

func TestGeneratePhaseChart_Empty(t *testing.T) {
	assert.Equal(t, "No data to display", NewGenerator().GeneratePhaseChart(simulation.SimulationResult{}))
}

func TestGeneratePhaseChart_DeadlineOutsideAxis(t *testing.T) {
	result := simulation.SimulationResult{
		Config: config.GearConfiguration{Name: "odd", RequirementTimeMs: -100000},
		Phases: []simulation.PhaseTiming{
			{Phase: simulation.PhasePump, DurationMs: 100},
			{Phase: simulation.PhaseLock, DurationMs: 300},
		},
		TotalTimeMs: 400,
	}

	var out string
	require.NotPanics(t, func() { out = NewGenerator().GeneratePhaseChart(result) })
	assert.Contains(t, out, "pump ")
	assert.Contains(t, out, "400ms")
}

func TestGenerateComparison(t *testing.T) {
	results := []simulation.SimulationResult{
		runZeroVariance(t, config.ConfigA),
		runZeroVariance(t, config.ConfigB),
	}
	out := NewGenerator().GenerateComparison(results)

	assert.Contains(t, out, "Configuration Comparison")
	assert.Regexp(t, `Config A – Shared Pump\s+9350ms\s+-1350ms\s+FAIL`, out)
	assert.Regexp(t, `Config B – Dedicated Pump\s+6233ms\s+\+1767ms\s+PASS`, out)

	assert.Contains(t, NewGenerator().GenerateComparison(nil), "No simulations run")
}

func TestGenerateYAML(t *testing.T) {
	results := []simulation.SimulationResult{runZeroVariance(t, config.ConfigA)}
	out, err := NewGenerator().GenerateYAML(results)
	require.NoError(t, err)

	var decoded struct {
		Results []simulation.SimulationResult `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Results, 1)
	assert.Equal(t, 9350, decoded.Results[0].TotalTimeMs)
	require.NotNil(t, decoded.Results[0].FailureStateTime)
	assert.Equal(t, 8000, *decoded.Results[0].FailureStateTime)
	assert.Contains(t, out, "state: FAILURE_DETECTED")
}

func TestProgressBar_Render(t *testing.T) {
	bar := NewProgressBar()
	bar.Length = 10

	assert.Equal(t, "\rExtending Landing Gear:  |----------| 0.0% Landing Gear Extended", bar.Render(0, 100))
	assert.Equal(t, "\rExtending Landing Gear:  |#####-----| 50.0% Landing Gear Extended", bar.Render(50, 100))
	assert.Equal(t, "\rExtending Landing Gear:  |##########| 100.0% Landing Gear Extended", bar.Render(100, 100))
	assert.Equal(t, bar.Render(100, 100), bar.Render(150, 100), "iteration is capped at total")
}

func TestProgressBar_Play(t *testing.T) {
	bar := NewProgressBar()
	var slept []time.Duration
	bar.Sleep = func(d time.Duration) { slept = append(slept, d) }

	var buf bytes.Buffer
	bar.Play(&buf, 9350)

	require.Len(t, slept, progressSteps+1)
	assert.Equal(t, 93500*time.Microsecond, slept[0])
	assert.Contains(t, buf.String(), "Starting extension of landing gear:")
	assert.Contains(t, buf.String(), "100.0% Landing Gear Extended")
	assert.Contains(t, buf.String(), "Time taken to execute:")
}

func TestProgressBar_DoesNotAffectResult(t *testing.T) {
	result := runZeroVariance(t, config.ConfigB)
	before := result

	bar := NewProgressBar()
	bar.Sleep = func(time.Duration) {}
	bar.Play(&bytes.Buffer{}, result.TotalTimeMs)

	assert.Equal(t, before, result)
}
