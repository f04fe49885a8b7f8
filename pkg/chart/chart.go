package chart

import (
	"fmt"
	"strings"

	"github.com/sherine-k/landinggear/pkg/simulation"
	"gopkg.in/yaml.v3"
)

const (
	chartWidth = 70
	labelWidth = 10
)

// Generator renders simulation results as text
type Generator struct {
	width int
}

// NewGenerator creates a new chart generator
func NewGenerator() *Generator {
	return &Generator{
		width: chartWidth,
	}
}

// GenerateReport renders the timeline of a run followed by its requirement summary
func (g *Generator) GenerateReport(result simulation.SimulationResult) string {
	var sb strings.Builder
	cfg := result.Config

	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Simulation for %s\n", cfg.Name))
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n")

	for _, event := range result.Timeline {
		sb.WriteString(fmt.Sprintf("[t = %5d ms]  %-18s  - %s\n", event.TimestampMs, event.State, event.Description))
	}

	sb.WriteString("\nSummary:\n")
	sb.WriteString(fmt.Sprintf("  Total time to %s: %d ms (%s s)\n",
		simulation.GearStateDownLocked, result.TotalTimeMs, seconds(result.TotalTimeMs)))
	sb.WriteString(fmt.Sprintf("  Requirement: must lock within %d ms (%s s)\n",
		cfg.RequirementTimeMs, seconds(cfg.RequirementTimeMs)))

	if result.MeetsRequirement {
		sb.WriteString("  ✅ Requirement MET\n")
	} else {
		sb.WriteString("  ❌ Requirement NOT MET – configuration would be flagged for review\n")
	}
	sb.WriteString("\n")

	return sb.String()
}

// GeneratePhaseChart draws one horizontal bar per phase on a shared time axis
// with the requirement deadline marked.
func (g *Generator) GeneratePhaseChart(result simulation.SimulationResult) string {
	if len(result.Phases) == 0 {
		return "No data to display"
	}

	var sb strings.Builder
	plotWidth := g.width - labelWidth - 2
	deadline := result.Config.RequirementTimeMs
	scale := max(result.TotalTimeMs, deadline, 1)

	column := func(ms int) int {
		col := int(float64(ms) / float64(scale) * float64(plotWidth))
		return min(max(col, 0), plotWidth)
	}
	deadlineCol := min(column(deadline), plotWidth-1)

	sb.WriteString("Phase Timing\n")
	sb.WriteString(strings.Repeat("-", g.width))
	sb.WriteString("\n")

	start := 0
	for _, p := range result.Phases {
		from := column(start)
		to := column(start + p.DurationMs)
		if p.DurationMs > 0 && to == from && to < plotWidth {
			to++
		}

		row := []rune(strings.Repeat(" ", plotWidth))
		for x := from; x < to; x++ {
			row[x] = '█'
		}
		if row[deadlineCol] == ' ' {
			row[deadlineCol] = '|'
		}

		sb.WriteString(fmt.Sprintf("%-*s |%s\n", labelWidth-2, p.Phase, string(row)))
		start += p.DurationMs
	}

	// X-axis
	sb.WriteString(strings.Repeat(" ", labelWidth-1))
	sb.WriteString("+")
	sb.WriteString(strings.Repeat("-", plotWidth))
	sb.WriteString("\n")

	labels := []rune(strings.Repeat(" ", plotWidth))
	place := func(pos int, text string) {
		for i, ch := range []rune(text) {
			if pos+i >= 0 && pos+i < plotWidth {
				labels[pos+i] = ch
			}
		}
	}
	place(0, "0")
	endLabel := fmt.Sprintf("%dms", scale)
	place(plotWidth-len(endLabel), endLabel)
	deadlineLabel := fmt.Sprintf("^%dms", deadline)
	if deadlineCol+len(deadlineLabel) <= plotWidth-len(endLabel)-1 && deadlineCol > 1 {
		place(deadlineCol, deadlineLabel)
	}

	sb.WriteString(strings.Repeat(" ", labelWidth))
	sb.WriteString(string(labels))
	sb.WriteString("\n")

	sb.WriteString("\nLegend:\n")
	sb.WriteString("  █ - Phase in progress\n")
	sb.WriteString(fmt.Sprintf("  | - Requirement deadline (%d ms)\n", deadline))
	sb.WriteString("\n")

	return sb.String()
}

// GenerateComparison summarises several runs, one line each
func (g *Generator) GenerateComparison(results []simulation.SimulationResult) string {
	var sb strings.Builder

	sb.WriteString("Configuration Comparison\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n")

	if len(results) == 0 {
		sb.WriteString("No simulations run\n")
		return sb.String()
	}

	nameWidth := len("Configuration")
	for _, r := range results {
		nameWidth = max(nameWidth, len([]rune(r.Config.Name)))
	}

	sb.WriteString(fmt.Sprintf("%-*s  %9s  %9s  %s\n", nameWidth, "Configuration", "Total", "Margin", "Verdict"))
	for _, r := range results {
		verdict := "PASS"
		if !r.MeetsRequirement {
			verdict = "FAIL"
		}
		padding := nameWidth - len([]rune(r.Config.Name))
		sb.WriteString(fmt.Sprintf("%s%s  %7dms  %+7dms  %s\n",
			r.Config.Name, strings.Repeat(" ", padding), r.TotalTimeMs, r.MarginMs(), verdict))
	}
	sb.WriteString("\n")

	return sb.String()
}

// GenerateYAML renders results in a machine-readable form
func (g *Generator) GenerateYAML(results []simulation.SimulationResult) (string, error) {
	out, err := yaml.Marshal(struct {
		Results []simulation.SimulationResult `yaml:"results"`
	}{Results: results})
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}

	return string(out), nil
}

// seconds formats milliseconds as seconds with two decimals
func seconds(ms int) string {
	return fmt.Sprintf("%.2f", float64(ms)/1000)
}
