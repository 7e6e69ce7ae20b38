// Package views computes read-only summaries over a project for display.
// Everything here is a pure function: no store access, no mutation.
package views

import (
	"fmt"
	"math"
	"slices"

	"github.com/consentmap/consentmap/internal/models"
)

// Summary is the compact stat rollup shown on project cards.
type Summary struct {
	ProgressPercent      int
	PersonCount          int
	ImageCount           int
	ConsentedPersonCount int
}

// Detailed is the full-display variant of Summary with labeled counts.
type Detailed struct {
	Summary
	PersonLabel  string
	ImageLabel   string
	ConsentLabel string
}

// Progress returns the completion percentage of a project: persons plus
// data entries measured against the estimated image count, capped at 100.
// A zero estimate yields 0 rather than a division error.
func Progress(p models.Project) int {
	if p.EstimatedImageCount <= 0 {
		return 0
	}
	total := len(p.Persons) + len(p.DataEntries)
	percent := int(math.Round(float64(total) / float64(p.EstimatedImageCount) * 100))
	return min(100, percent)
}

// Summarize computes the compact rollup for a project.
func Summarize(p models.Project) Summary {
	consented := 0
	for _, per := range p.Persons {
		if len(per.ConsentFiles) > 0 {
			consented++
		}
	}
	return Summary{
		ProgressPercent:      Progress(p),
		PersonCount:          len(p.Persons),
		ImageCount:           len(p.Images),
		ConsentedPersonCount: consented,
	}
}

// SummarizeDetailed computes the full-display rollup with labeled counts.
func SummarizeDetailed(p models.Project) Detailed {
	s := Summarize(p)
	return Detailed{
		Summary:      s,
		PersonLabel:  fmt.Sprintf("%d persons", s.PersonCount),
		ImageLabel:   fmt.Sprintf("%d images", s.ImageCount),
		ConsentLabel: fmt.Sprintf("%d consents", s.ConsentedPersonCount),
	}
}

// RecentEvents returns up to max events ordered newest-first, regardless of
// insertion order. Equal timestamps keep their insertion order. A max of
// zero or less returns the whole log. The input slice is left untouched.
func RecentEvents(events []models.ProjectEvent, max int) []models.ProjectEvent {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b models.ProjectEvent) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		default:
			return 0
		}
	})
	if max > 0 && len(sorted) > max {
		sorted = sorted[:max]
	}
	return sorted
}
