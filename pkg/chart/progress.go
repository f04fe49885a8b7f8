package chart

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const progressSteps = 100

// ProgressBar renders a single-line terminal progress bar.
// It is cosmetic: it paces itself on wall-clock time after a run has finished
// and never feeds back into simulated results.
type ProgressBar struct {
	Prefix   string
	Suffix   string
	Fill     string
	Length   int
	Decimals int

	// Sleep defaults to time.Sleep; tests swap it out
	Sleep func(time.Duration)
}

// NewProgressBar creates the gear extension progress bar
func NewProgressBar() *ProgressBar {
	return &ProgressBar{
		Prefix:   "Extending Landing Gear: ",
		Suffix:   "Landing Gear Extended",
		Fill:     "#",
		Length:   100,
		Decimals: 1,
		Sleep:    time.Sleep,
	}
}

// Render returns one frame of the bar for iteration out of total
func (p *ProgressBar) Render(iteration, total int) string {
	if total <= 0 {
		total = 1
	}
	iteration = min(max(iteration, 0), total)

	percent := 100 * float64(iteration) / float64(total)
	filled := p.Length * iteration / total
	bar := strings.Repeat(p.Fill, filled) + strings.Repeat("-", p.Length-filled)

	return fmt.Sprintf("\r%s |%s| %.*f%% %s", p.Prefix, bar, p.Decimals, percent, p.Suffix)
}

// Play draws every frame from 0 to 100%, spreading totalDelayMs of wall time across them.
// It returns the wall time spent.
func (p *ProgressBar) Play(w io.Writer, totalDelayMs int) time.Duration {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	perStep := time.Duration(max(totalDelayMs, 0)) * time.Millisecond / progressSteps

	fmt.Fprintln(w, "Starting extension of landing gear:")
	start := time.Now()
	for i := 0; i <= progressSteps; i++ {
		fmt.Fprint(w, p.Render(i, progressSteps))
		sleep(perStep)
	}
	taken := time.Since(start)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Time taken to execute: %.2f seconds\n\n", taken.Seconds())

	return taken
}
