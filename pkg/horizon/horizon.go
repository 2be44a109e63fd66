// Package horizon contains the pure clock arithmetic of the checkpoint
// engine: due-horizon computation, metric window boundaries, and the
// horizon-gated status transition rules.
package horizon

import (
	"time"

	"github.com/loupe-hq/loupe/pkg/models"
)

// All is the ordered set of post-change horizons, in days.
var All = []int{7, 14, 30, 60, 90}

// FirstResolving is the first horizon allowed to produce a terminal
// transition. D+7 and D+14 are early signals only.
const FirstResolving = 30

// Due returns the horizons that are newly due for a change first
// detected at firstDetected, given the set of horizons already
// computed. A horizon h is due when now >= firstDetected + h days and
// no checkpoint for h exists yet. Older, partially-processed changes
// catch up on missing horizons this way.
func Due(firstDetected, now time.Time, existing map[int]bool) []int {
	var due []int
	for _, h := range All {
		if existing[h] {
			continue
		}
		if !now.Before(firstDetected.AddDate(0, 0, h)) {
			due = append(due, h)
		}
	}
	return due
}

// Windows returns the before/after metric windows for a horizon:
// before = [changeDate - h, changeDate), after = (changeDate, changeDate + h].
func Windows(changeDate time.Time, horizonDays int) (before, after models.Window) {
	before = models.Window{
		Start: changeDate.AddDate(0, 0, -horizonDays),
		End:   changeDate,
	}
	after = models.Window{
		Start: changeDate,
		End:   changeDate.AddDate(0, 0, horizonDays),
	}
	return before, after
}

// Transition computes the status a change should move to after a
// checkpoint at the given horizon, or "" when no transition applies.
//
// Gating rules:
//   - D+7 / D+14 never transition (early signals).
//   - D+30 is the first canonical resolution: improved → validated,
//     regressed → regressed, otherwise inconclusive.
//   - D+60 / D+90 confirm or reverse: the higher horizon's assessment
//     overrides the earlier terminal.
//
// currentStatus must be re-read immediately before calling; reverted is
// terminal and never transitions.
func Transition(currentStatus string, horizonDays int, assessment string) string {
	if currentStatus == "reverted" {
		return ""
	}
	if horizonDays < FirstResolving {
		return ""
	}

	var target string
	switch assessment {
	case models.AssessmentImproved:
		target = "validated"
	case models.AssessmentRegressed:
		target = "regressed"
	default:
		target = "inconclusive"
	}

	if target == currentStatus {
		return ""
	}
	return target
}
