package domain

import "time"

// CampaignStatusActive marks campaigns counted towards campaign performance.
const CampaignStatusActive = "Active"

// Campaign represents a marketing campaign run on behalf of a client.
// Impressions, Clicks, CTR and Spend are kept as display text (e.g. "2.7%",
// "$1,200"); numeric parsing happens where arithmetic is performed.
type Campaign struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Platform    string    `json:"platform" db:"platform"`
	Icon        string    `json:"icon" db:"icon"`
	Color       string    `json:"color" db:"color"`
	Status      string    `json:"status" db:"status"` // Active, Paused, ...
	Impressions string    `json:"impressions" db:"impressions"`
	Clicks      string    `json:"clicks" db:"clicks"`
	CTR         string    `json:"ctr" db:"ctr"`
	Spend       string    `json:"spend" db:"spend"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type NewCampaign struct {
	Name        string `json:"name" validate:"required"`
	Platform    string `json:"platform" validate:"required"`
	Icon        string `json:"icon" validate:"required"`
	Color       string `json:"color" validate:"required"`
	Status      string `json:"status" validate:"required"`
	Impressions string `json:"impressions" validate:"required"`
	Clicks      string `json:"clicks" validate:"required"`
	CTR         string `json:"ctr" validate:"required"`
	Spend       string `json:"spend" validate:"required"`
}

func (n NewCampaign) Build(id string, createdAt time.Time) Campaign {
	return Campaign{
		ID:          id,
		Name:        n.Name,
		Platform:    n.Platform,
		Icon:        n.Icon,
		Color:       n.Color,
		Status:      n.Status,
		Impressions: n.Impressions,
		Clicks:      n.Clicks,
		CTR:         n.CTR,
		Spend:       n.Spend,
		CreatedAt:   createdAt,
	}
}

type CampaignPatch struct {
	Name        *string `json:"name" validate:"omitnil,min=1"`
	Platform    *string `json:"platform" validate:"omitnil,min=1"`
	Icon        *string `json:"icon" validate:"omitnil,min=1"`
	Color       *string `json:"color" validate:"omitnil,min=1"`
	Status      *string `json:"status" validate:"omitnil,min=1"`
	Impressions *string `json:"impressions" validate:"omitnil,min=1"`
	Clicks      *string `json:"clicks" validate:"omitnil,min=1"`
	CTR         *string `json:"ctr" validate:"omitnil,min=1"`
	Spend       *string `json:"spend" validate:"omitnil,min=1"`
}

func (u CampaignPatch) Apply(c *Campaign) {
	set(&c.Name, u.Name)
	set(&c.Platform, u.Platform)
	set(&c.Icon, u.Icon)
	set(&c.Color, u.Color)
	set(&c.Status, u.Status)
	set(&c.Impressions, u.Impressions)
	set(&c.Clicks, u.Clicks)
	set(&c.CTR, u.CTR)
	set(&c.Spend, u.Spend)
}
