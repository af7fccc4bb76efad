package dashboard

import (
	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/domain/talent"
)

// Stats summarizes the unfiltered collections.
type Stats struct {
	TotalProjects     int     `json:"totalProjects"`
	TotalValue        float64 `json:"totalValue"`
	TalentCount       int     `json:"talentCount"`
	PendingCompliance int     `json:"pendingCompliance"`
}

// ComputeStats counts records and sums contract amounts.
func ComputeStats(projects []project.Project, talents []talent.Talent) Stats {
	stats := Stats{
		TotalProjects: len(projects),
		TalentCount:   len(talents),
	}
	for _, p := range projects {
		stats.TotalValue += p.ContractAmount
	}
	for _, t := range talents {
		if t.SocialSecurityStatus == talent.StatusPending {
			stats.PendingCompliance++
		}
	}
	return stats
}
