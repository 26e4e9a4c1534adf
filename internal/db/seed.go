package db

import (
	"context"
	"fmt"
	"log/slog"

	"agency-hub/internal/core/domain"
	"agency-hub/internal/core/port"
)

var demoProjects = []domain.NewProject{
	{Name: "Brand Redesign", Client: "TechCorp Inc", Icon: "🎨", Color: "bg-gradient-to-br from-primary to-chart-1", Progress: intPtr(75), Deadline: "Mar 25", Team: "6", Status: domain.ProjectStatusOnTrack},
	{Name: "Product Launch", Client: "StartupXYZ", Icon: "🚀", Color: "bg-gradient-to-br from-accent to-primary", Progress: intPtr(45), Deadline: "Mar 20", Team: "8", Status: domain.ProjectStatusAtRisk},
	{Name: "Social Campaign", Client: "FashionCo", Icon: "📱", Color: "bg-gradient-to-br from-chart-3 to-accent", Progress: intPtr(90), Deadline: "Mar 30", Team: "4", Status: domain.ProjectStatusOnTrack},
}

var demoTeam = []domain.NewTeamMember{
	{Name: "Sarah Johnson", Initials: "SJ", Role: "Senior Designer", Color: "bg-primary", Utilization: intPtr(92), Hours: intPtr(37), Projects: []string{"Brand Redesign", "Product Launch"}},
	{Name: "Mike Chen", Initials: "MC", Role: "Creative Director", Color: "bg-accent", Utilization: intPtr(85), Hours: intPtr(34), Projects: []string{"Social Campaign", "Video Production"}},
}

func intPtr(v int) *int { return &v }

// Seed inserts demo projects and team members through store. It does
// nothing when any project already exists, so restarts do not duplicate data.
func Seed(ctx context.Context, store port.RecordStore, logger *slog.Logger) error {
	existing, err := store.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("seed skipped", slog.Int("projects", len(existing)))
		return nil
	}

	for _, p := range demoProjects {
		if _, err = store.CreateProject(ctx, p); err != nil {
			return fmt.Errorf("seed project %q: %w", p.Name, err)
		}
	}
	for _, m := range demoTeam {
		if _, err = store.CreateTeamMember(ctx, m); err != nil {
			return fmt.Errorf("seed team member %q: %w", m.Name, err)
		}
	}

	logger.Info("seeded demo data",
		slog.Int("projects", len(demoProjects)),
		slog.Int("team_members", len(demoTeam)),
	)
	return nil
}
