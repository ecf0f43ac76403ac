package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	allPlacements     = []PlacementStatus{PlacementPlaced, PlacementInterviewing, PlacementNotPlaced}
	allInternships    = []InternshipStatus{InternshipCompleted, InternshipOngoing, InternshipNone}
	allProjects       = []ProjectExperience{ProjectAdvanced, ProjectIntermediate, ProjectBeginner}
	allAvailabilities = []AvailabilityStatus{AvailabilityActive, AvailabilityLimited, AvailabilityNotAvailable}
)

func TestCalculatePriorityScore_WeightTable(t *testing.T) {
	tests := []struct {
		name         string
		placement    PlacementStatus
		internship   InternshipStatus
		project      ProjectExperience
		availability AvailabilityStatus
		expected     int
	}{
		{"maximum profile", PlacementPlaced, InternshipCompleted, ProjectAdvanced, AvailabilityActive, 100},
		{"minimum profile", PlacementNotPlaced, InternshipNone, ProjectBeginner, AvailabilityNotAvailable, 20},
		{"placed ongoing advanced active", PlacementPlaced, InternshipOngoing, ProjectAdvanced, AvailabilityActive, 90},
		{"interviewing completed intermediate limited", PlacementInterviewing, InternshipCompleted, ProjectIntermediate, AvailabilityLimited, 70},
		{"not placed completed advanced active", PlacementNotPlaced, InternshipCompleted, ProjectAdvanced, AvailabilityActive, 70},
		{"interviewing none beginner not_available", PlacementInterviewing, InternshipNone, ProjectBeginner, AvailabilityNotAvailable, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePriorityScore(tt.placement, tt.internship, tt.project, tt.availability)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCalculatePriorityScore_Range(t *testing.T) {
	for _, p := range allPlacements {
		for _, i := range allInternships {
			for _, pr := range allProjects {
				for _, a := range allAvailabilities {
					score := CalculatePriorityScore(p, i, pr, a)
					assert.GreaterOrEqual(t, score, MinPriorityScore,
						"score below floor for %s/%s/%s/%s", p, i, pr, a)
					assert.LessOrEqual(t, score, MaxPriorityScore,
						"score above ceiling for %s/%s/%s/%s", p, i, pr, a)
				}
			}
		}
	}
}

func TestCalculatePriorityScore_Monotonicity(t *testing.T) {
	// Upgrading any single attribute never lowers the score
	base := CalculatePriorityScore(PlacementNotPlaced, InternshipNone, ProjectBeginner, AvailabilityLimited)

	assert.Greater(t, CalculatePriorityScore(PlacementPlaced, InternshipNone, ProjectBeginner, AvailabilityLimited), base)
	assert.Greater(t, CalculatePriorityScore(PlacementNotPlaced, InternshipCompleted, ProjectBeginner, AvailabilityLimited), base)
	assert.Greater(t, CalculatePriorityScore(PlacementNotPlaced, InternshipNone, ProjectAdvanced, AvailabilityLimited), base)
	assert.Greater(t, CalculatePriorityScore(PlacementNotPlaced, InternshipNone, ProjectBeginner, AvailabilityActive), base)
}

func TestCalculatePriorityScore_UnknownValuesFallToLowestBucket(t *testing.T) {
	got := CalculatePriorityScore("weird", "values", "fall", "through")
	assert.Equal(t, MinPriorityScore, got)
}

func TestTruncateBio(t *testing.T) {
	assert.Equal(t, "short bio", TruncateBio("short bio"))

	long := make([]rune, MaxBioLength+50)
	for i := range long {
		long[i] = 'x'
	}
	truncated := TruncateBio(string(long))
	assert.Len(t, []rune(truncated), MaxBioLength)

	// Multi-byte runes are counted as characters, not bytes
	unicode := make([]rune, MaxBioLength+1)
	for i := range unicode {
		unicode[i] = 'ह'
	}
	assert.Len(t, []rune(TruncateBio(string(unicode))), MaxBioLength)
}
