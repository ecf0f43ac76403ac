// Package directory implements the pure filter and ranking pipeline over the
// mentor profile collection. It performs no I/O: callers supply the profiles,
// the caller's favorites set and a filter configuration, and receive a new
// ordered slice. Repeated application with identical inputs yields an
// identical sequence.
package directory

import (
	"sort"

	"github.com/seniorconnect/seniorconnect-api/internal/models"
)

const (
	// AllDomains is the domain filter value that matches every profile.
	AllDomains = "All Domains"
	// AnyAvailability is the availability filter value that matches every
	// profile (the standing not_available exclusion still applies).
	AnyAvailability = "all"
)

// Config is the user-selected filter configuration. Zero value is a no-op on
// every dimension. Dimensions combine with logical AND; help types combine
// with logical OR within their dimension.
type Config struct {
	Domain        string
	HelpTypes     []string
	Availability  models.AvailabilityStatus
	FavoritesOnly bool
}

// Apply filters and ranks profiles. Profiles with availability not_available
// are excluded unconditionally, before any user filter runs; this exclusion
// cannot be switched off through Config. The result is ordered by priority
// score descending with insertion order preserved among equal scores.
func Apply(profiles []*models.SeniorProfile, favorites map[string]bool, cfg Config) []*models.SeniorProfile {
	result := make([]*models.SeniorProfile, 0, len(profiles))

	for _, p := range profiles {
		if !keep(p, favorites, cfg) {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PriorityScore > result[j].PriorityScore
	})

	return result
}

func keep(p *models.SeniorProfile, favorites map[string]bool, cfg Config) bool {
	// Standing exclusion over the base dataset
	if p.AvailabilityStatus == models.AvailabilityNotAvailable {
		return false
	}

	if cfg.FavoritesOnly && !favorites[p.ID] {
		return false
	}

	if cfg.Domain != "" && cfg.Domain != AllDomains && !p.InDomain(cfg.Domain) {
		return false
	}

	if len(cfg.HelpTypes) > 0 && !p.OffersAnyOf(cfg.HelpTypes) {
		return false
	}

	if cfg.Availability != "" && string(cfg.Availability) != AnyAvailability &&
		p.AvailabilityStatus != cfg.Availability {
		return false
	}

	return true
}
