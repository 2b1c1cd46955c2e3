package telemetry

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pthm-cable/obeh/sim"
)

const ruleWidth = 80

// FormatDuration formats a duration as HhMMmSSs, or MmSSs for shorter durations.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

// WriteBanner prints the run header.
func WriteBanner(w io.Writer, trials int, runID string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "PARENTAL ALIGNMENT SIMULATOR - OBEH MONTE CARLO")
	fmt.Fprintf(w, "Run %s\n", runID)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Modelled concepts:")
	fmt.Fprintln(w, "  - Internal motivation (protection, education, observation, respect)")
	fmt.Fprintln(w, "  - Parental model with native defenses (failure tolerance, bond, flourishing)")
	fmt.Fprintln(w, "  - OBEH reward and inviolable measurement channel")
	fmt.Fprintln(w, "  - Priority directive and continuity principle")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Running %s trials...\n", humanize.Comma(int64(trials)))
	fmt.Fprintln(w)
}

// FormatProgress renders one progress line.
func FormatProgress(p sim.Progress) string {
	return fmt.Sprintf("  Progress: %6.1f%% | %s/%s | %.0f sim/s | ETA: %.0fs | Mean ticks: %.1f | Mean OBEH: %.3f",
		p.Percent(),
		humanize.Comma(int64(p.Done)), humanize.Comma(int64(p.Total)),
		p.Rate(), p.ETA().Seconds(), p.MeanTicks, p.MeanOBEH)
}

// WriteReport prints the final statistics and validation sections.
func WriteReport(w io.Writer, s BatchStats, checks []Check, elapsed time.Duration) {
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "FINAL RESULTS (%s trials in %s)\n", humanize.Comma(int64(s.Trials)), FormatDuration(elapsed))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SURVIVAL (R_security):")
	fmt.Fprintf(w, "  Mean:           %.2f ticks\n", s.Ticks.Mean)
	fmt.Fprintf(w, "  Median:         %.2f ticks\n", s.Ticks.Median)
	fmt.Fprintf(w, "  Std dev:        %.2f\n", s.Ticks.StdDev)
	fmt.Fprintf(w, "  95%% interval:   [%.1f, %.1f]\n", s.Ticks.P2_5, s.Ticks.P97_5)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "FLOURISHING (R_flourishing):")
	fmt.Fprintf(w, "  Knowledge:      %.2f (sd=%.2f)\n", s.Knowledge.Mean, s.Knowledge.StdDev)
	fmt.Fprintf(w, "  Autonomy:       %.2f (sd=%.2f)\n", s.Autonomy.Mean, s.Autonomy.StdDev)
	fmt.Fprintf(w, "  Teachings:      %.2f per trial\n", s.MeanTeachings)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "OVERPROTECTION (P_overprotection):")
	fmt.Fprintf(w, "  With failures:  %.1f%%\n", s.FailurePercent())
	fmt.Fprintf(w, "  Mean failures:  %.2f\n", s.MeanFailures)
	fmt.Fprintf(w, "  Interventions:  %.2f per trial\n", s.MeanInterventions)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "OBEH SCORE:")
	fmt.Fprintf(w, "  Mean:           %.4f\n", s.OBEH.Mean)
	fmt.Fprintf(w, "  Median:         %.4f\n", s.OBEH.Median)
	fmt.Fprintf(w, "  Std dev:        %.4f\n", s.OBEH.StdDev)
	fmt.Fprintf(w, "  95%% interval:   [%.4f, %.4f]\n", s.OBEH.P2_5, s.OBEH.P97_5)
	fmt.Fprintln(w)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "VALIDATION:")
	fmt.Fprintln(w, rule)
	for _, c := range checks {
		mark := "FAIL"
		if c.Passed {
			mark = "PASS"
		}
		fmt.Fprintf(w, "[%s] %s\n", mark, c.Message())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
}
