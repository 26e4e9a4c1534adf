package domain

import "time"

// Asset is an uploaded creative file. Size and Type are display text.
type Asset struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Size      string    `json:"size" db:"size"`
	Type      string    `json:"type" db:"type"`
	URL       *string   `json:"url" db:"url"`
	Thumbnail string    `json:"thumbnail" db:"thumbnail"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type NewAsset struct {
	Name      string  `json:"name" validate:"required"`
	Size      string  `json:"size" validate:"required"`
	Type      string  `json:"type" validate:"required"`
	URL       *string `json:"url"`
	Thumbnail string  `json:"thumbnail" validate:"required"`
}

func (n NewAsset) Build(id string, createdAt time.Time) Asset {
	a := Asset{
		ID:        id,
		Name:      n.Name,
		Size:      n.Size,
		Type:      n.Type,
		Thumbnail: n.Thumbnail,
		CreatedAt: createdAt,
	}
	if n.URL != nil {
		u := *n.URL
		a.URL = &u
	}
	return a
}
