package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"agency-hub/internal/core/domain"
	"agency-hub/internal/core/port/mocks"
)

func teamWithUtilization(values ...int) []domain.TeamMember {
	team := make([]domain.TeamMember, 0, len(values))
	for _, v := range values {
		team = append(team, domain.TeamMember{Utilization: v, Hours: 30})
	}
	return team
}

// TestDashboardStats checks every figure against a known data set.
func TestDashboardStats(t *testing.T) {
	src := mocks.NewMockStatsSource(t)

	src.EXPECT().ListProjects(mock.Anything).Return([]domain.Project{
		{Status: "On Track"}, {Status: "At Risk"}, {Status: "Completed"}, {Status: "On Track"},
	}, nil)
	src.EXPECT().ListTeamMembers(mock.Anything).Return(teamWithUtilization(92, 85, 78, 88, 81), nil)
	src.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{
		{ID: "c1", Status: "Active", CTR: "2.7%"},
		{ID: "c2", Status: "Active", CTR: "3.5%"},
		{ID: "c3", Status: "Paused", CTR: "9.9%"},
	}, nil)

	svc := NewDashboardUseCase(src, nil, DefaultClientSatisfaction)

	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("DashboardStats error: %v", err)
	}
	if stats.ActiveProjects != 3 {
		t.Fatalf("activeProjects: got %d, want 3", stats.ActiveProjects)
	}
	// 84.8 rounds to 85
	if stats.TeamUtilization != 85 {
		t.Fatalf("teamUtilization: got %d, want 85", stats.TeamUtilization)
	}
	// mean(2.7, 3.5) = 3.1, paused campaign excluded
	if stats.CampaignPerformance != 3 {
		t.Fatalf("campaignPerformance: got %d, want 3", stats.CampaignPerformance)
	}
	if stats.ClientSatisfaction != 4.8 {
		t.Fatalf("clientSatisfaction: got %v, want 4.8", stats.ClientSatisfaction)
	}
}

// TestDashboardStatsEmpty ensures empty collections produce zeros rather
// than a division by zero.
func TestDashboardStatsEmpty(t *testing.T) {
	src := mocks.NewMockStatsSource(t)

	src.EXPECT().ListProjects(mock.Anything).Return(nil, nil)
	src.EXPECT().ListTeamMembers(mock.Anything).Return(nil, nil)
	src.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{
		{Status: "Paused", CTR: "4%"},
	}, nil)

	svc := NewDashboardUseCase(src, nil, DefaultClientSatisfaction)

	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("DashboardStats error: %v", err)
	}
	if stats.ActiveProjects != 0 || stats.TeamUtilization != 0 || stats.CampaignPerformance != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

// TestDashboardStatsMalformedCTR ensures a bad CTR contributes 0 but still
// counts towards the mean.
func TestDashboardStatsMalformedCTR(t *testing.T) {
	src := mocks.NewMockStatsSource(t)

	src.EXPECT().ListProjects(mock.Anything).Return(nil, nil)
	src.EXPECT().ListTeamMembers(mock.Anything).Return(nil, nil)
	src.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{
		{Status: "Active", CTR: "n/a"},
		{Status: "Active", CTR: "6%"},
	}, nil)

	svc := NewDashboardUseCase(src, nil, DefaultClientSatisfaction)

	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("DashboardStats error: %v", err)
	}
	if stats.CampaignPerformance != 3 {
		t.Fatalf("campaignPerformance: got %d, want 3", stats.CampaignPerformance)
	}
}

func TestDashboardStatsPropagatesStoreError(t *testing.T) {
	src := mocks.NewMockStatsSource(t)
	boom := errors.New("connection reset")

	src.EXPECT().ListProjects(mock.Anything).Return(nil, boom)

	svc := NewDashboardUseCase(src, nil, DefaultClientSatisfaction)

	if _, err := svc.DashboardStats(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestResourceSummary(t *testing.T) {
	src := mocks.NewMockStatsSource(t)

	src.EXPECT().ListTeamMembers(mock.Anything).Return([]domain.TeamMember{
		{Utilization: 92, Hours: 37},
		{Utilization: 85, Hours: 34},
	}, nil)
	src.EXPECT().ListMessages(mock.Anything).Return([]domain.Message{
		{NeedsReview: true}, {NeedsReview: false}, {NeedsReview: true},
	}, nil)

	svc := NewDashboardUseCase(src, nil, DefaultClientSatisfaction)

	sum, err := svc.ResourceSummary(context.Background())
	if err != nil {
		t.Fatalf("ResourceSummary error: %v", err)
	}
	// 88.5 rounds half away from zero
	want := domain.ResourceSummary{TeamSize: 2, AverageUtilization: 89, TotalHours: 71, PendingReviews: 2}
	if *sum != want {
		t.Fatalf("unexpected summary: got %+v, want %+v", *sum, want)
	}
}

func TestParsePercent(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"2.7%", 2.7, true},
		{" 3.5 % ", 3.5, true},
		{"4", 4, true},
		{"", 0, false},
		{"%", 0, false},
		{"abc%", 0, false},
		{"NaN%", 0, false},
		{"Inf", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParsePercent(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePercent(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
