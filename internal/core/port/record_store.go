package port

import (
	"context"
	"errors"

	"agency-hub/internal/core/domain"
)

// ErrUsernameTaken is returned by CreateUser when the username already exists.
var ErrUsernameTaken = errors.New("username already taken")

// RecordStore is the persistence layer of the dashboard. It is an outbound
// port in hexagonal architecture and groups one independent collection per
// entity kind. Implementations must be safe for concurrent use.
//
// Lookups report absence as a nil record with a nil error; deletes report
// it as false. An error always means the backend failed.
type RecordStore interface {
	UserStore
	ProjectStore
	AssetStore
	CampaignStore
	MessageStore
	FeedbackStore
	TeamStore
	ProfitabilityStore
}

type UserStore interface {
	// CreateUser stores a new user. It returns ErrUsernameTaken when the
	// username is already in use.
	CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ProjectStore interface {
	// ListProjects returns projects newest first.
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, in domain.NewProject) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error)
	// DeleteProject does not touch profitability rows referencing the project.
	DeleteProject(ctx context.Context, id string) (bool, error)
}

type AssetStore interface {
	// ListAssets returns assets newest first.
	ListAssets(ctx context.Context) ([]domain.Asset, error)
	GetAsset(ctx context.Context, id string) (*domain.Asset, error)
	CreateAsset(ctx context.Context, in domain.NewAsset) (*domain.Asset, error)
	DeleteAsset(ctx context.Context, id string) (bool, error)
}

type CampaignStore interface {
	// ListCampaigns returns campaigns newest first.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, in domain.NewCampaign) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) (bool, error)
}

type MessageStore interface {
	// ListMessages returns messages newest first.
	ListMessages(ctx context.Context) ([]domain.Message, error)
	GetMessage(ctx context.Context, id string) (*domain.Message, error)
	CreateMessage(ctx context.Context, in domain.NewMessage) (*domain.Message, error)
	DeleteMessage(ctx context.Context, id string) (bool, error)
}

type FeedbackStore interface {
	// ListFeedbackItems returns feedback items newest first.
	ListFeedbackItems(ctx context.Context) ([]domain.FeedbackItem, error)
	GetFeedbackItem(ctx context.Context, id string) (*domain.FeedbackItem, error)
	CreateFeedbackItem(ctx context.Context, in domain.NewFeedbackItem) (*domain.FeedbackItem, error)
	DeleteFeedbackItem(ctx context.Context, id string) (bool, error)
}

type TeamStore interface {
	// ListTeamMembers returns team members ordered by name.
	ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	GetTeamMember(ctx context.Context, id string) (*domain.TeamMember, error)
	CreateTeamMember(ctx context.Context, in domain.NewTeamMember) (*domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, patch domain.TeamMemberPatch) (*domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) (bool, error)
}

type ProfitabilityStore interface {
	// ListProfitability returns rows in insertion order.
	ListProfitability(ctx context.Context) ([]domain.ProjectProfitability, error)
	GetProfitability(ctx context.Context, id string) (*domain.ProjectProfitability, error)
	// FindProfitabilityByProject returns the first row referencing projectID.
	FindProfitabilityByProject(ctx context.Context, projectID string) (*domain.ProjectProfitability, error)
	CreateProfitability(ctx context.Context, in domain.NewProjectProfitability) (*domain.ProjectProfitability, error)
	UpdateProfitability(ctx context.Context, id string, patch domain.ProjectProfitabilityPatch) (*domain.ProjectProfitability, error)
	DeleteProfitability(ctx context.Context, id string) (bool, error)
}

// StatsSource is the read-only slice of RecordStore the aggregation use
// case depends on.
type StatsSource interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	ListMessages(ctx context.Context) ([]domain.Message, error)
}
