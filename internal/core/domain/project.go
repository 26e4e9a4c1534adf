package domain

import "time"

// Project statuses shown on the dashboard. Status is free text; only
// ProjectStatusCompleted carries meaning for aggregation.
const (
	ProjectStatusOnTrack   = "On Track"
	ProjectStatusAtRisk    = "At Risk"
	ProjectStatusInReview  = "In Review"
	ProjectStatusCompleted = "Completed"
)

// Project represents a client engagement tracked by the agency.
// Progress is a percentage in [0,100]; the store does not enforce the range.
type Project struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Client    string    `json:"client" db:"client"`
	Icon      string    `json:"icon" db:"icon"`
	Color     string    `json:"color" db:"color"`
	Progress  int       `json:"progress" db:"progress"`
	Deadline  string    `json:"deadline" db:"deadline"` // free text, e.g. "Mar 25"
	Team      string    `json:"team" db:"team"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NewProject holds the fields accepted when creating a project.
type NewProject struct {
	Name     string `json:"name" validate:"required"`
	Client   string `json:"client" validate:"required"`
	Icon     string `json:"icon" validate:"required"`
	Color    string `json:"color" validate:"required"`
	Progress *int   `json:"progress" validate:"omitnil,min=0,max=100"`
	Deadline string `json:"deadline" validate:"required"`
	Team     string `json:"team" validate:"required"`
	Status   string `json:"status" validate:"required"`
}

// Build returns a project populated from n with declared defaults applied.
func (n NewProject) Build(id string, createdAt time.Time) Project {
	p := Project{
		ID:        id,
		Name:      n.Name,
		Client:    n.Client,
		Icon:      n.Icon,
		Color:     n.Color,
		Deadline:  n.Deadline,
		Team:      n.Team,
		Status:    n.Status,
		CreatedAt: createdAt,
	}
	if n.Progress != nil {
		p.Progress = *n.Progress
	}
	return p
}

// ProjectPatch is a partial update. Nil fields are left unchanged.
type ProjectPatch struct {
	Name     *string `json:"name" validate:"omitnil,min=1"`
	Client   *string `json:"client" validate:"omitnil,min=1"`
	Icon     *string `json:"icon" validate:"omitnil,min=1"`
	Color    *string `json:"color" validate:"omitnil,min=1"`
	Progress *int    `json:"progress" validate:"omitnil,min=0,max=100"`
	Deadline *string `json:"deadline" validate:"omitnil,min=1"`
	Team     *string `json:"team" validate:"omitnil,min=1"`
	Status   *string `json:"status" validate:"omitnil,min=1"`
}

// Apply merges the supplied fields into p.
func (u ProjectPatch) Apply(p *Project) {
	set(&p.Name, u.Name)
	set(&p.Client, u.Client)
	set(&p.Icon, u.Icon)
	set(&p.Color, u.Color)
	set(&p.Progress, u.Progress)
	set(&p.Deadline, u.Deadline)
	set(&p.Team, u.Team)
	set(&p.Status, u.Status)
}

// set copies *src into dst when src is non-nil.
func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
