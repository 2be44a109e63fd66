package horizon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/pkg/models"
)

func TestDue(t *testing.T) {
	detected := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		existing map[int]bool
		want     []int
	}{
		{
			name: "nothing due before day 7",
			now:  detected.AddDate(0, 0, 6),
			want: nil,
		},
		{
			name: "day 7 exactly at boundary",
			now:  detected.AddDate(0, 0, 7),
			want: []int{7},
		},
		{
			name: "day 20 owes 7 and 14",
			now:  detected.AddDate(0, 0, 20),
			want: []int{7, 14},
		},
		{
			name:     "existing horizons skipped",
			now:      detected.AddDate(0, 0, 35),
			existing: map[int]bool{7: true, 14: true},
			want:     []int{30},
		},
		{
			name: "catch-up after long gap returns all missing ascending",
			now:  detected.AddDate(0, 0, 120),
			want: []int{7, 14, 30, 60, 90},
		},
		{
			name:     "fully computed change owes nothing",
			now:      detected.AddDate(0, 0, 365),
			existing: map[int]bool{7: true, 14: true, 30: true, 60: true, 90: true},
			want:     nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Due(detected, tt.now, tt.existing))
		})
	}
}

func TestWindows(t *testing.T) {
	changeDate := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

	before, after := Windows(changeDate, 30)

	assert.Equal(t, changeDate.AddDate(0, 0, -30), before.Start)
	assert.Equal(t, changeDate, before.End)
	assert.Equal(t, changeDate, after.Start)
	assert.Equal(t, changeDate.AddDate(0, 0, 30), after.End)

	// Symmetric widths.
	assert.Equal(t, before.End.Sub(before.Start), after.End.Sub(after.Start))
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name       string
		current    string
		horizon    int
		assessment string
		want       string
	}{
		{"day 7 never transitions", "watching", 7, models.AssessmentImproved, ""},
		{"day 14 never transitions", "watching", 14, models.AssessmentRegressed, ""},
		{"day 30 improved validates", "watching", 30, models.AssessmentImproved, "validated"},
		{"day 30 regressed regresses", "watching", 30, models.AssessmentRegressed, "regressed"},
		{"day 30 neutral is inconclusive", "watching", 30, models.AssessmentNeutral, "inconclusive"},
		{"day 30 inconclusive stays inconclusive", "watching", 30, models.AssessmentInconclusive, "inconclusive"},
		{"day 60 reverses a validation", "validated", 60, models.AssessmentRegressed, "regressed"},
		{"day 90 restores after regression", "regressed", 90, models.AssessmentImproved, "validated"},
		{"same target is a no-op", "validated", 60, models.AssessmentImproved, ""},
		{"reverted is terminal", "reverted", 30, models.AssessmentImproved, ""},
		{"reverted terminal at late horizons too", "reverted", 90, models.AssessmentRegressed, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transition(tt.current, tt.horizon, tt.assessment))
		})
	}
}

func TestTransitionIsDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, "validated", Transition("watching", 30, models.AssessmentImproved))
	}
}

func TestAllHorizonsAscending(t *testing.T) {
	require.NotEmpty(t, All)
	for i := 1; i < len(All); i++ {
		assert.Greater(t, All[i], All[i-1])
	}
	assert.Contains(t, All, FirstResolving)
}
