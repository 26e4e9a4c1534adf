package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ROIScale is the number of fractional digits kept for ROI, matching
// numeric(4,1) in the database.
const ROIScale = 1

// ProjectProfitability holds the financial summary of a project.
// ProjectID refers to Project.ID by value only; a dangling reference is
// valid and means the project is unknown.
type ProjectProfitability struct {
	ID        string          `json:"id" db:"id"`
	ProjectID string          `json:"projectId" db:"project_id"`
	Budget    string          `json:"budget" db:"budget"`
	Spent     string          `json:"spent" db:"spent"`
	Hours     string          `json:"hours" db:"hours"`
	Revenue   string          `json:"revenue" db:"revenue"`
	ROI       decimal.Decimal `json:"roi" db:"roi"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

type NewProjectProfitability struct {
	ProjectID string           `json:"projectId" validate:"required"`
	Budget    string           `json:"budget" validate:"required"`
	Spent     string           `json:"spent" validate:"required"`
	Hours     string           `json:"hours" validate:"required"`
	Revenue   string           `json:"revenue" validate:"required"`
	ROI       *decimal.Decimal `json:"roi" validate:"required,gt=-1000,lt=1000"`
}

func (n NewProjectProfitability) Build(id string, createdAt time.Time) ProjectProfitability {
	p := ProjectProfitability{
		ID:        id,
		ProjectID: n.ProjectID,
		Budget:    n.Budget,
		Spent:     n.Spent,
		Hours:     n.Hours,
		Revenue:   n.Revenue,
		CreatedAt: createdAt,
	}
	if n.ROI != nil {
		p.ROI = n.ROI.Round(ROIScale)
	}
	return p
}

type ProjectProfitabilityPatch struct {
	ProjectID *string          `json:"projectId" validate:"omitnil,min=1"`
	Budget    *string          `json:"budget" validate:"omitnil,min=1"`
	Spent     *string          `json:"spent" validate:"omitnil,min=1"`
	Hours     *string          `json:"hours" validate:"omitnil,min=1"`
	Revenue   *string          `json:"revenue" validate:"omitnil,min=1"`
	ROI       *decimal.Decimal `json:"roi" validate:"omitnil,gt=-1000,lt=1000"`
}

func (u ProjectProfitabilityPatch) Apply(p *ProjectProfitability) {
	set(&p.ProjectID, u.ProjectID)
	set(&p.Budget, u.Budget)
	set(&p.Spent, u.Spent)
	set(&p.Hours, u.Hours)
	set(&p.Revenue, u.Revenue)
	if u.ROI != nil {
		p.ROI = u.ROI.Round(ROIScale)
	}
}
