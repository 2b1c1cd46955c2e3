package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/obeh/sim"
)

// WriteResultsCSV writes one row per trial, with a header.
func WriteResultsCSV(w io.Writer, results []sim.Result) error {
	if err := gocsv.Marshal(results, w); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
