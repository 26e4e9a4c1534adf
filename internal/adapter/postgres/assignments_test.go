package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agency-hub/internal/core/domain"
)

func ptr[T any](v T) *T { return &v }

func TestProjectAssignmentsOnlyPresentFields(t *testing.T) {
	set := projectAssignments(domain.ProjectPatch{
		Progress: ptr(80),
		Status:   ptr("At Risk"),
	})
	require.False(t, set.empty())

	query, args := set.update("projects", projectColumns, "p1")
	assert.Equal(t,
		"UPDATE projects SET progress = $1, status = $2 WHERE id = $3 RETURNING "+projectColumns,
		query)
	assert.Equal(t, []any{80, "At Risk", "p1"}, args)
}

func TestEmptyPatchHasNoAssignments(t *testing.T) {
	assert.True(t, projectAssignments(domain.ProjectPatch{}).empty())
	assert.True(t, campaignAssignments(domain.CampaignPatch{}).empty())
	assert.True(t, teamMemberAssignments(domain.TeamMemberPatch{}).empty())
	assert.True(t, profitabilityAssignments(domain.ProjectProfitabilityPatch{}).empty())
}

func TestProfitabilityAssignmentsRoundROI(t *testing.T) {
	set := profitabilityAssignments(domain.ProjectProfitabilityPatch{
		Revenue: ptr("$20,000"),
		ROI:     ptr(decimal.RequireFromString("12.34")),
	})

	query, args := set.update("project_profitability", "id", "x")
	assert.Equal(t,
		"UPDATE project_profitability SET revenue = $1, roi = $2::text::numeric WHERE id = $3 RETURNING id",
		query)
	assert.Equal(t, []any{"$20,000", "12.3", "x"}, args)
}

func TestTeamMemberAssignmentsEmptyProjects(t *testing.T) {
	var none []string
	set := teamMemberAssignments(domain.TeamMemberPatch{Projects: &none})

	_, args := set.update("team_members", "id", "m1")
	require.Len(t, args, 2)
	assert.Equal(t, []string{}, args[0])
}

func TestUpdateDoesNotAliasArgs(t *testing.T) {
	set := campaignAssignments(domain.CampaignPatch{CTR: ptr("3.1%")})

	_, first := set.update("campaigns", "id", "a")
	_, second := set.update("campaigns", "id", "b")
	assert.Equal(t, "a", first[1])
	assert.Equal(t, "b", second[1])
}
