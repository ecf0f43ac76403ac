package models

import "time"

// PlacementStatus is a senior's placement outcome.
type PlacementStatus string

const (
	PlacementPlaced       PlacementStatus = "placed"
	PlacementInterviewing PlacementStatus = "interviewing"
	PlacementNotPlaced    PlacementStatus = "not_placed"
)

// InternshipStatus is a senior's internship history.
type InternshipStatus string

const (
	InternshipCompleted InternshipStatus = "completed"
	InternshipOngoing   InternshipStatus = "ongoing"
	InternshipNone      InternshipStatus = "none"
)

// ProjectExperience is a senior's self-assessed project depth.
type ProjectExperience string

const (
	ProjectAdvanced     ProjectExperience = "advanced"
	ProjectIntermediate ProjectExperience = "intermediate"
	ProjectBeginner     ProjectExperience = "beginner"
)

// AvailabilityStatus is how available a senior is for mentoring.
type AvailabilityStatus string

const (
	AvailabilityActive       AvailabilityStatus = "active"
	AvailabilityLimited      AvailabilityStatus = "limited"
	AvailabilityNotAvailable AvailabilityStatus = "not_available"
)

// HelpTypes is the fixed vocabulary of help categories a mentor can offer.
var HelpTypes = []string{"internship", "placement", "project", "dsa", "career"}

// MaxBioLength is the bio cap in runes; longer bios are truncated at write
// time, not rejected.
const MaxBioLength = 200

// SeniorProfile represents a registered mentor in the directory.
//
// PriorityScore is computed once when the profile is created and stored as a
// static snapshot; later edits to the status attributes do not re-derive it.
type SeniorProfile struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"userId"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	PrimaryDomain      string             `json:"primaryDomain"`
	SecondaryDomain    string             `json:"secondaryDomain,omitempty"`
	LinkedinURL        string             `json:"linkedinUrl"`
	PlacementStatus    PlacementStatus    `json:"placementStatus"`
	InternshipStatus   InternshipStatus   `json:"internshipStatus"`
	ProjectExperience  ProjectExperience  `json:"projectExperience"`
	AvailabilityStatus AvailabilityStatus `json:"availabilityStatus"`
	MentorIntent       []string           `json:"mentorIntent"`
	Bio                string             `json:"bio"`
	PriorityScore      int                `json:"priorityScore"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// RegisterSeniorRequest is the payload for registering a mentor profile.
// The owning user and email come from the session, never from the body.
type RegisterSeniorRequest struct {
	Name               string   `json:"name" binding:"required,min=2,max=100"`
	PrimaryDomain      string   `json:"primaryDomain" binding:"required,min=2,max=60"`
	SecondaryDomain    string   `json:"secondaryDomain" binding:"omitempty,max=60"`
	LinkedinURL        string   `json:"linkedinUrl" binding:"required,url"`
	PlacementStatus    string   `json:"placementStatus" binding:"required,oneof=placed interviewing not_placed"`
	InternshipStatus   string   `json:"internshipStatus" binding:"required,oneof=completed ongoing none"`
	ProjectExperience  string   `json:"projectExperience" binding:"required,oneof=advanced intermediate beginner"`
	AvailabilityStatus string   `json:"availabilityStatus" binding:"required,oneof=active limited not_available"`
	MentorIntent       []string `json:"mentorIntent" binding:"required,min=1,dive,oneof=internship placement project dsa career"`
	Bio                string   `json:"bio" binding:"omitempty,max=2000"`
}

// RegisterSeniorResponse is returned after a registration attempt.
type RegisterSeniorResponse struct {
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Profile *SeniorProfile `json:"profile,omitempty"`
}

// TruncateBio returns bio capped at MaxBioLength runes.
func TruncateBio(bio string) string {
	runes := []rune(bio)
	if len(runes) <= MaxBioLength {
		return bio
	}
	return string(runes[:MaxBioLength])
}

// OffersAnyOf reports whether the profile's intent set intersects wanted.
func (p *SeniorProfile) OffersAnyOf(wanted []string) bool {
	for _, w := range wanted {
		for _, have := range p.MentorIntent {
			if w == have {
				return true
			}
		}
	}
	return false
}

// InDomain reports whether domain matches the profile's primary or secondary
// domain.
func (p *SeniorProfile) InDomain(domain string) bool {
	return p.PrimaryDomain == domain || p.SecondaryDomain == domain
}
