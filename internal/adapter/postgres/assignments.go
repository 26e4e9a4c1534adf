package postgres

import (
	"fmt"
	"strings"

	"agency-hub/internal/core/domain"
)

// assignments collects the SET list of a partial UPDATE. Only fields present
// in a patch are added, so absent fields keep their stored values.
type assignments struct {
	exprs []string
	args  []any
}

func (a *assignments) add(column string, value any) {
	a.addCast(column, "", value)
}

// addCast appends a column whose placeholder needs an explicit cast.
func (a *assignments) addCast(column, cast string, value any) {
	a.args = append(a.args, value)
	a.exprs = append(a.exprs, fmt.Sprintf("%s = $%d%s", column, len(a.args), cast))
}

func (a *assignments) empty() bool { return len(a.exprs) == 0 }

// update renders "UPDATE table SET ... WHERE id = $n RETURNING columns".
// The id is bound after the assigned values.
func (a *assignments) update(table, returning, id string) (string, []any) {
	args := append(a.args[:len(a.args):len(a.args)], id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(a.exprs, ", "), len(args), returning)
	return query, args
}

func addIf[T any](a *assignments, column string, v *T) {
	if v != nil {
		a.add(column, *v)
	}
}

func projectAssignments(u domain.ProjectPatch) *assignments {
	a := &assignments{}
	addIf(a, "name", u.Name)
	addIf(a, "client", u.Client)
	addIf(a, "icon", u.Icon)
	addIf(a, "color", u.Color)
	addIf(a, "progress", u.Progress)
	addIf(a, "deadline", u.Deadline)
	addIf(a, "team", u.Team)
	addIf(a, "status", u.Status)
	return a
}

func campaignAssignments(u domain.CampaignPatch) *assignments {
	a := &assignments{}
	addIf(a, "name", u.Name)
	addIf(a, "platform", u.Platform)
	addIf(a, "icon", u.Icon)
	addIf(a, "color", u.Color)
	addIf(a, "status", u.Status)
	addIf(a, "impressions", u.Impressions)
	addIf(a, "clicks", u.Clicks)
	addIf(a, "ctr", u.CTR)
	addIf(a, "spend", u.Spend)
	return a
}

func teamMemberAssignments(u domain.TeamMemberPatch) *assignments {
	a := &assignments{}
	addIf(a, "name", u.Name)
	addIf(a, "initials", u.Initials)
	addIf(a, "role", u.Role)
	addIf(a, "color", u.Color)
	addIf(a, "utilization", u.Utilization)
	addIf(a, "hours", u.Hours)
	if u.Projects != nil {
		projects := *u.Projects
		if projects == nil {
			projects = []string{}
		}
		a.add("projects", projects)
	}
	return a
}

func profitabilityAssignments(u domain.ProjectProfitabilityPatch) *assignments {
	a := &assignments{}
	addIf(a, "project_id", u.ProjectID)
	addIf(a, "budget", u.Budget)
	addIf(a, "spent", u.Spent)
	addIf(a, "hours", u.Hours)
	addIf(a, "revenue", u.Revenue)
	if u.ROI != nil {
		a.addCast("roi", roiCast, u.ROI.Round(domain.ROIScale).String())
	}
	return a
}
