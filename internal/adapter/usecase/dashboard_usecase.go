package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"agency-hub/internal/core/domain"
	"agency-hub/internal/core/port"
)

// DefaultClientSatisfaction is reported as the client satisfaction score.
// No record backs it yet; it is a placeholder figure.
const DefaultClientSatisfaction = 4.8

// DashboardUseCase derives dashboard figures from the record store. It
// implements port.DashboardUseCase.
type DashboardUseCase struct {
	src    port.StatsSource
	logger *slog.Logger

	// satisfaction is returned verbatim as ClientSatisfaction.
	satisfaction float64
}

// NewDashboardUseCase creates a usecase reading from src. A nil logger
// discards data-quality warnings.
func NewDashboardUseCase(src port.StatsSource, logger *slog.Logger, satisfaction float64) *DashboardUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DashboardUseCase{src: src, logger: logger, satisfaction: satisfaction}
}

// DashboardStats counts projects that are not completed, averages team
// utilization and averages the CTR of active campaigns.
func (u *DashboardUseCase) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	projects, err := u.src.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	team, err := u.src.ListTeamMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	campaigns, err := u.src.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	active := 0
	for _, p := range projects {
		if p.Status != domain.ProjectStatusCompleted {
			active++
		}
	}

	var (
		ctrSum float64
		ctrN   int
	)
	for _, c := range campaigns {
		if c.Status != domain.CampaignStatusActive {
			continue
		}
		ctrN++
		v, ok := ParsePercent(c.CTR)
		if !ok {
			u.logger.Warn("unparseable campaign ctr, counted as 0",
				slog.String("campaign_id", c.ID), slog.String("ctr", c.CTR))
		}
		ctrSum += v
	}

	return &domain.DashboardStats{
		ActiveProjects:      active,
		TeamUtilization:     averageUtilization(team),
		CampaignPerformance: roundedMean(ctrSum, ctrN),
		ClientSatisfaction:  u.satisfaction,
	}, nil
}

// ResourceSummary reports team size, average utilization, total booked
// hours and the number of messages awaiting review.
func (u *DashboardUseCase) ResourceSummary(ctx context.Context) (*domain.ResourceSummary, error) {
	team, err := u.src.ListTeamMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	messages, err := u.src.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	hours := 0
	for _, m := range team {
		hours += m.Hours
	}
	pending := 0
	for _, m := range messages {
		if m.NeedsReview {
			pending++
		}
	}

	return &domain.ResourceSummary{
		TeamSize:           len(team),
		AverageUtilization: averageUtilization(team),
		TotalHours:         hours,
		PendingReviews:     pending,
	}, nil
}

func averageUtilization(team []domain.TeamMember) int {
	sum := 0
	for _, m := range team {
		sum += m.Utilization
	}
	return roundedMean(float64(sum), len(team))
}

// roundedMean returns sum/n rounded to the nearest integer, halves away
// from zero, or 0 when n is 0.
func roundedMean(sum float64, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(sum / float64(n)))
}

// ParsePercent parses display text such as "2.7%" into 2.7. Surrounding
// spaces and one trailing "%" are ignored. Malformed or non-finite input
// yields 0 and false.
func ParsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
