package repository

import (
	"context"
	"fmt"

	"github.com/seniorconnect/seniorconnect-api/internal/models"
	"github.com/seniorconnect/seniorconnect-api/pkg/logger"
	"go.uber.org/zap"
)

type seedSenior struct {
	userID          string
	name            string
	email           string
	primaryDomain   string
	secondaryDomain string
	linkedinURL     string
	placement       models.PlacementStatus
	internship      models.InternshipStatus
	project         models.ProjectExperience
	availability    models.AvailabilityStatus
	intent          []string
	bio             string
}

var demoSeniors = []seedSenior{
	{
		userID: "demo1", name: "Arjun Sharma", email: "arjun.sharma@uem.edu.in",
		primaryDomain: "AI/ML", secondaryDomain: "Data Science",
		linkedinURL: "https://linkedin.com/in/arjunsharma",
		placement:   models.PlacementPlaced, internship: models.InternshipCompleted,
		project: models.ProjectAdvanced, availability: models.AvailabilityActive,
		intent: []string{"placement", "internship", "project"},
		bio:    "Placed at Google. Love helping juniors crack FAANG interviews. Strong in ML and system design.",
	},
	{
		userID: "demo2", name: "Priya Patel", email: "priya.patel@uem.edu.in",
		primaryDomain: "Web Development",
		linkedinURL:   "https://linkedin.com/in/priyapatel",
		placement:     models.PlacementPlaced, internship: models.InternshipCompleted,
		project: models.ProjectAdvanced, availability: models.AvailabilityActive,
		intent: []string{"project", "career", "dsa"},
		bio:    "Full-stack developer at Microsoft. Expert in React, Node.js, and cloud technologies.",
	},
	{
		userID: "demo3", name: "Rahul Verma", email: "rahul.verma@uem.edu.in",
		primaryDomain: "Cybersecurity", secondaryDomain: "Web Development",
		linkedinURL: "https://linkedin.com/in/rahulverma",
		placement:   models.PlacementInterviewing, internship: models.InternshipCompleted,
		project: models.ProjectIntermediate, availability: models.AvailabilityLimited,
		intent: []string{"internship", "project"},
		bio:    "Security researcher with CTF experience. Interned at Deloitte. Happy to guide on security basics.",
	},
	{
		userID: "demo4", name: "Sneha Gupta", email: "sneha.gupta@uem.edu.in",
		primaryDomain: "App Development",
		linkedinURL:   "https://linkedin.com/in/snehagupta",
		placement:     models.PlacementPlaced, internship: models.InternshipOngoing,
		project: models.ProjectAdvanced, availability: models.AvailabilityActive,
		intent: []string{"placement", "project", "career"},
		bio:    "Mobile dev at Flipkart. Built 5+ production apps. Can help with React Native and Flutter.",
	},
	{
		userID: "demo5", name: "Vikram Singh", email: "vikram.singh@uem.edu.in",
		primaryDomain: "Data Science", secondaryDomain: "AI/ML",
		linkedinURL: "https://linkedin.com/in/vikramsingh",
		placement:   models.PlacementPlaced, internship: models.InternshipCompleted,
		project: models.ProjectAdvanced, availability: models.AvailabilityLimited,
		intent: []string{"dsa", "placement", "internship"},
		bio:    "Data Scientist at Amazon. Strong in statistics and ML. Can help with interview prep.",
	},
	{
		userID: "demo6", name: "Kunal Mehta", email: "kunal.mehta@uem.edu.in",
		primaryDomain: "Cybersecurity", secondaryDomain: "Networking",
		linkedinURL: "https://linkedin.com/in/kunalmehta",
		placement:   models.PlacementNotPlaced, internship: models.InternshipCompleted,
		project: models.ProjectIntermediate, availability: models.AvailabilityActive,
		intent: []string{"project", "career"},
		bio:    "Cybersecurity enthusiast with hands-on CTF experience.",
	},
}

// SeedDemoData inserts the demo mentor profiles when the collection is
// empty, so a fresh local environment has a browsable directory.
func SeedDemoData(ctx context.Context, profiles *ProfileRepository) error {
	count, err := profiles.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check profile count: %w", err)
	}
	if count > 0 {
		logger.Debug("Demo data seeding skipped: profiles already present",
			zap.Int("count", count))
		return nil
	}

	for _, s := range demoSeniors {
		profile := &models.SeniorProfile{
			UserID:             s.userID,
			Name:               s.name,
			Email:              s.email,
			PrimaryDomain:      s.primaryDomain,
			SecondaryDomain:    s.secondaryDomain,
			LinkedinURL:        s.linkedinURL,
			PlacementStatus:    s.placement,
			InternshipStatus:   s.internship,
			ProjectExperience:  s.project,
			AvailabilityStatus: s.availability,
			MentorIntent:       s.intent,
			Bio:                models.TruncateBio(s.bio),
			PriorityScore: models.CalculatePriorityScore(
				s.placement, s.internship, s.project, s.availability,
			),
		}
		if _, err := profiles.Append(ctx, profile); err != nil {
			return fmt.Errorf("failed to seed profile for %s: %w", s.name, err)
		}
	}

	logger.Info("Demo mentor profiles seeded", zap.Int("count", len(demoSeniors)))
	return nil
}
