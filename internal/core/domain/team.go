package domain

import (
	"slices"
	"time"
)

// TeamMember is an agency employee tracked on the resources page.
// Utilization is a whole percentage; Hours is hours booked this week.
type TeamMember struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Initials    string    `json:"initials" db:"initials"`
	Role        string    `json:"role" db:"role"`
	Color       string    `json:"color" db:"color"`
	Utilization int       `json:"utilization" db:"utilization"`
	Hours       int       `json:"hours" db:"hours"`
	Projects    []string  `json:"projects" db:"projects"` // project names, ordered
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Clone returns a deep copy of m.
func (m TeamMember) Clone() TeamMember {
	m.Projects = slices.Clone(m.Projects)
	if m.Projects == nil {
		m.Projects = []string{}
	}
	return m
}

type NewTeamMember struct {
	Name        string   `json:"name" validate:"required"`
	Initials    string   `json:"initials" validate:"required"`
	Role        string   `json:"role" validate:"required"`
	Color       string   `json:"color" validate:"required"`
	Utilization *int     `json:"utilization" validate:"required,min=0"`
	Hours       *int     `json:"hours" validate:"required,min=0"`
	Projects    []string `json:"projects" validate:"required,dive,required"`
}

// Build returns a team member populated from n. Utilization and Hours are
// required on input; nil reads as 0 here.
func (n NewTeamMember) Build(id string, createdAt time.Time) TeamMember {
	m := TeamMember{
		ID:        id,
		Name:      n.Name,
		Initials:  n.Initials,
		Role:      n.Role,
		Color:     n.Color,
		Projects:  slices.Clone(n.Projects),
		CreatedAt: createdAt,
	}
	set(&m.Utilization, n.Utilization)
	set(&m.Hours, n.Hours)
	return m.Clone()
}

type TeamMemberPatch struct {
	Name        *string   `json:"name" validate:"omitnil,min=1"`
	Initials    *string   `json:"initials" validate:"omitnil,min=1"`
	Role        *string   `json:"role" validate:"omitnil,min=1"`
	Color       *string   `json:"color" validate:"omitnil,min=1"`
	Utilization *int      `json:"utilization" validate:"omitnil,min=0"`
	Hours       *int      `json:"hours" validate:"omitnil,min=0"`
	Projects    *[]string `json:"projects" validate:"omitnil,dive,required"`
}

func (u TeamMemberPatch) Apply(m *TeamMember) {
	set(&m.Name, u.Name)
	set(&m.Initials, u.Initials)
	set(&m.Role, u.Role)
	set(&m.Color, u.Color)
	set(&m.Utilization, u.Utilization)
	set(&m.Hours, u.Hours)
	if u.Projects != nil {
		m.Projects = slices.Clone(*u.Projects)
		if m.Projects == nil {
			m.Projects = []string{}
		}
	}
}
