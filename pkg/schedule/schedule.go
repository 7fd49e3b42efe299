// Package schedule provides the quarter-index to period-label mapping used
// by the output and API layers. Labels are presentational only; the engine
// works purely in elapsed years.
package schedule

import (
	"time"

	"github.com/iwvelando/hybrid-forecast/pkg/constants"
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// QuarterLabels returns years*4+1 period labels anchored at start: the
// initial point plus one label per quarter.
func QuarterLabels(start time.Time, years int) []string {
	steps := years * constants.QuartersPerYear
	labels := make([]string, 0, steps+1)
	for q := 0; q <= steps; q++ {
		labels = append(labels, start.AddDate(0, q*constants.MonthsPerQuarter, 0).Format(constants.DateTimeLayout))
	}
	return labels
}

// QuarterLabel returns the label for a single quarter offset from start.
func QuarterLabel(start time.Time, quarter int) string {
	return start.AddDate(0, quarter*constants.MonthsPerQuarter, 0).Format(constants.DateTimeLayout)
}
