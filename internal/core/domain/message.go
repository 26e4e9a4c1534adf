package domain

import "time"

// Message is a client communication shown in the inbox.
type Message struct {
	ID          string    `json:"id" db:"id"`
	Client      string    `json:"client" db:"client"`
	Initials    string    `json:"initials" db:"initials"`
	Color       string    `json:"color" db:"color"`
	Project     string    `json:"project" db:"project"`
	Content     string    `json:"content" db:"content"`
	Time        string    `json:"time" db:"time"`
	NeedsReview bool      `json:"needsReview" db:"needs_review"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type NewMessage struct {
	Client      string `json:"client" validate:"required"`
	Initials    string `json:"initials" validate:"required"`
	Color       string `json:"color" validate:"required"`
	Project     string `json:"project" validate:"required"`
	Content     string `json:"content" validate:"required"`
	Time        string `json:"time" validate:"required"`
	NeedsReview *bool  `json:"needsReview"`
}

func (n NewMessage) Build(id string, createdAt time.Time) Message {
	m := Message{
		ID:        id,
		Client:    n.Client,
		Initials:  n.Initials,
		Color:     n.Color,
		Project:   n.Project,
		Content:   n.Content,
		Time:      n.Time,
		CreatedAt: createdAt,
	}
	if n.NeedsReview != nil {
		m.NeedsReview = *n.NeedsReview
	}
	return m
}

// FeedbackItem is a pending piece of client feedback.
type FeedbackItem struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Client    string    `json:"client" db:"client"`
	Priority  string    `json:"priority" db:"priority"`
	Time      string    `json:"time" db:"time"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type NewFeedbackItem struct {
	Title    string `json:"title" validate:"required"`
	Client   string `json:"client" validate:"required"`
	Priority string `json:"priority" validate:"required"`
	Time     string `json:"time" validate:"required"`
}

func (n NewFeedbackItem) Build(id string, createdAt time.Time) FeedbackItem {
	return FeedbackItem{
		ID:        id,
		Title:     n.Title,
		Client:    n.Client,
		Priority:  n.Priority,
		Time:      n.Time,
		CreatedAt: createdAt,
	}
}
