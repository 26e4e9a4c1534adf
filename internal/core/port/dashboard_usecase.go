package port

import (
	"context"

	"agency-hub/internal/core/domain"
)

// DashboardUseCase computes derived figures from current records. Nothing
// is cached: every call reduces over the collections again.
type DashboardUseCase interface {
	// DashboardStats returns the headline figures of the dashboard page.
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)

	// ResourceSummary returns team utilization, booked hours and the number
	// of messages awaiting review.
	ResourceSummary(ctx context.Context) (*domain.ResourceSummary, error)
}
