package models

// Priority score weights. Contributions are additive and independent; an
// unknown or missing enum value falls through to the lowest bucket for that
// attribute rather than erroring.
//
// The resulting score is always within [20, 100].
const (
	MinPriorityScore = 20
	MaxPriorityScore = 100
)

// CalculatePriorityScore maps the four status attributes to the mentor's
// ranking score. Pure and total: defined for every input, no side effects.
func CalculatePriorityScore(
	placement PlacementStatus,
	internship InternshipStatus,
	project ProjectExperience,
	availability AvailabilityStatus,
) int {
	score := 0

	// Placement status carries the highest weight
	switch placement {
	case PlacementPlaced:
		score += 40
	case PlacementInterviewing:
		score += 25
	default:
		score += 10
	}

	switch internship {
	case InternshipCompleted:
		score += 25
	case InternshipOngoing:
		score += 15
	default:
		score += 5
	}

	switch project {
	case ProjectAdvanced:
		score += 20
	case ProjectIntermediate:
		score += 12
	default:
		score += 5
	}

	// Availability boosts the score; not_available contributes nothing
	switch availability {
	case AvailabilityActive:
		score += 15
	case AvailabilityLimited:
		score += 8
	}

	return score
}
