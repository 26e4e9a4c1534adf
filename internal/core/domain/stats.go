package domain

// DashboardStats are the headline figures of the dashboard page. They are
// derived from current records on every request.
type DashboardStats struct {
	ActiveProjects      int     `json:"activeProjects"`
	TeamUtilization     int     `json:"teamUtilization"`
	CampaignPerformance int     `json:"campaignPerformance"`
	ClientSatisfaction  float64 `json:"clientSatisfaction"`
}

// ResourceSummary are the figures shown above the team list on the
// resources page.
type ResourceSummary struct {
	TeamSize           int `json:"teamSize"`
	AverageUtilization int `json:"averageUtilization"`
	TotalHours         int `json:"totalHours"`
	PendingReviews     int `json:"pendingReviews"`
}
