// Package memory implements port.RecordStore on process-local maps. It is
// the default backend; data lives for the lifetime of the process.
package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"agency-hub/internal/core/domain"
	"agency-hub/internal/core/port"
)

var _ port.RecordStore = (*Store)(nil)

// Store holds one collection per entity kind. Collections are locked
// independently; there are no cross-collection transactions.
type Store struct {
	now   func() time.Time
	newID func() string

	users         *collection[domain.User]
	projects      *collection[domain.Project]
	assets        *collection[domain.Asset]
	campaigns     *collection[domain.Campaign]
	messages      *collection[domain.Message]
	feedback      *collection[domain.FeedbackItem]
	team          *collection[domain.TeamMember]
	profitability *collection[domain.ProjectProfitability]
}

// Option customises a Store.
type Option func(*Store)

// WithClock replaces the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the id source. Ids must be unique.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:           func() time.Time { return time.Now().UTC() },
		newID:         uuid.NewString,
		users:         newCollection[domain.User](nil),
		projects:      newCollection[domain.Project](nil),
		assets:        newCollection(cloneAsset),
		campaigns:     newCollection[domain.Campaign](nil),
		messages:      newCollection[domain.Message](nil),
		feedback:      newCollection[domain.FeedbackItem](nil),
		team:          newCollection(domain.TeamMember.Clone),
		profitability: newCollection[domain.ProjectProfitability](nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func cloneAsset(a domain.Asset) domain.Asset {
	if a.URL != nil {
		u := *a.URL
		a.URL = &u
	}
	return a
}

func newestFirst(a, b time.Time) int {
	return b.Compare(a)
}

// Users

func (s *Store) CreateUser(_ context.Context, in domain.NewUser) (*domain.User, error) {
	u := in.Build(s.newID())
	taken := func(existing domain.User) bool { return existing.Username == u.Username }
	if err := s.users.insert(u.ID, u, taken); err != nil {
		if errors.Is(err, errConflict) {
			return nil, port.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user %q: %w", u.ID, err)
	}
	return &u, nil
}

func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	return s.users.get(id), nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	return s.users.find(func(u domain.User) bool { return u.Username == username }), nil
}

// Projects

func (s *Store) ListProjects(context.Context) ([]domain.Project, error) {
	return s.projects.list(func(a, b domain.Project) int { return newestFirst(a.CreatedAt, b.CreatedAt) }), nil
}

func (s *Store) GetProject(_ context.Context, id string) (*domain.Project, error) {
	return s.projects.get(id), nil
}

func (s *Store) CreateProject(_ context.Context, in domain.NewProject) (*domain.Project, error) {
	p := in.Build(s.newID(), s.now())
	if err := s.projects.insert(p.ID, p, nil); err != nil {
		return nil, fmt.Errorf("insert project %q: %w", p.ID, err)
	}
	return &p, nil
}

func (s *Store) UpdateProject(_ context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	return s.projects.update(id, patch.Apply), nil
}

func (s *Store) DeleteProject(_ context.Context, id string) (bool, error) {
	return s.projects.remove(id), nil
}

// Assets

func (s *Store) ListAssets(context.Context) ([]domain.Asset, error) {
	return s.assets.list(func(a, b domain.Asset) int { return newestFirst(a.CreatedAt, b.CreatedAt) }), nil
}

func (s *Store) GetAsset(_ context.Context, id string) (*domain.Asset, error) {
	return s.assets.get(id), nil
}

func (s *Store) CreateAsset(_ context.Context, in domain.NewAsset) (*domain.Asset, error) {
	a := in.Build(s.newID(), s.now())
	if err := s.assets.insert(a.ID, a, nil); err != nil {
		return nil, fmt.Errorf("insert asset %q: %w", a.ID, err)
	}
	return &a, nil
}

func (s *Store) DeleteAsset(_ context.Context, id string) (bool, error) {
	return s.assets.remove(id), nil
}

// Campaigns

func (s *Store) ListCampaigns(context.Context) ([]domain.Campaign, error) {
	return s.campaigns.list(func(a, b domain.Campaign) int { return newestFirst(a.CreatedAt, b.CreatedAt) }), nil
}

func (s *Store) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	return s.campaigns.get(id), nil
}

func (s *Store) CreateCampaign(_ context.Context, in domain.NewCampaign) (*domain.Campaign, error) {
	c := in.Build(s.newID(), s.now())
	if err := s.campaigns.insert(c.ID, c, nil); err != nil {
		return nil, fmt.Errorf("insert campaign %q: %w", c.ID, err)
	}
	return &c, nil
}

func (s *Store) UpdateCampaign(_ context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	return s.campaigns.update(id, patch.Apply), nil
}

func (s *Store) DeleteCampaign(_ context.Context, id string) (bool, error) {
	return s.campaigns.remove(id), nil
}

// Messages

func (s *Store) ListMessages(context.Context) ([]domain.Message, error) {
	return s.messages.list(func(a, b domain.Message) int { return newestFirst(a.CreatedAt, b.CreatedAt) }), nil
}

func (s *Store) GetMessage(_ context.Context, id string) (*domain.Message, error) {
	return s.messages.get(id), nil
}

func (s *Store) CreateMessage(_ context.Context, in domain.NewMessage) (*domain.Message, error) {
	m := in.Build(s.newID(), s.now())
	if err := s.messages.insert(m.ID, m, nil); err != nil {
		return nil, fmt.Errorf("insert message %q: %w", m.ID, err)
	}
	return &m, nil
}

func (s *Store) DeleteMessage(_ context.Context, id string) (bool, error) {
	return s.messages.remove(id), nil
}

// Feedback

func (s *Store) ListFeedbackItems(context.Context) ([]domain.FeedbackItem, error) {
	return s.feedback.list(func(a, b domain.FeedbackItem) int { return newestFirst(a.CreatedAt, b.CreatedAt) }), nil
}

func (s *Store) GetFeedbackItem(_ context.Context, id string) (*domain.FeedbackItem, error) {
	return s.feedback.get(id), nil
}

func (s *Store) CreateFeedbackItem(_ context.Context, in domain.NewFeedbackItem) (*domain.FeedbackItem, error) {
	f := in.Build(s.newID(), s.now())
	if err := s.feedback.insert(f.ID, f, nil); err != nil {
		return nil, fmt.Errorf("insert feedback item %q: %w", f.ID, err)
	}
	return &f, nil
}

func (s *Store) DeleteFeedbackItem(_ context.Context, id string) (bool, error) {
	return s.feedback.remove(id), nil
}

// Team

func (s *Store) ListTeamMembers(context.Context) ([]domain.TeamMember, error) {
	return s.team.list(func(a, b domain.TeamMember) int { return strings.Compare(a.Name, b.Name) }), nil
}

func (s *Store) GetTeamMember(_ context.Context, id string) (*domain.TeamMember, error) {
	return s.team.get(id), nil
}

func (s *Store) CreateTeamMember(_ context.Context, in domain.NewTeamMember) (*domain.TeamMember, error) {
	m := in.Build(s.newID(), s.now())
	if err := s.team.insert(m.ID, m, nil); err != nil {
		return nil, fmt.Errorf("insert team member %q: %w", m.ID, err)
	}
	return &m, nil
}

func (s *Store) UpdateTeamMember(_ context.Context, id string, patch domain.TeamMemberPatch) (*domain.TeamMember, error) {
	return s.team.update(id, patch.Apply), nil
}

func (s *Store) DeleteTeamMember(_ context.Context, id string) (bool, error) {
	return s.team.remove(id), nil
}

// Profitability

func (s *Store) ListProfitability(context.Context) ([]domain.ProjectProfitability, error) {
	return s.profitability.list(nil), nil
}

func (s *Store) GetProfitability(_ context.Context, id string) (*domain.ProjectProfitability, error) {
	return s.profitability.get(id), nil
}

func (s *Store) FindProfitabilityByProject(_ context.Context, projectID string) (*domain.ProjectProfitability, error) {
	return s.profitability.find(func(p domain.ProjectProfitability) bool { return p.ProjectID == projectID }), nil
}

func (s *Store) CreateProfitability(_ context.Context, in domain.NewProjectProfitability) (*domain.ProjectProfitability, error) {
	p := in.Build(s.newID(), s.now())
	if err := s.profitability.insert(p.ID, p, nil); err != nil {
		return nil, fmt.Errorf("insert profitability %q: %w", p.ID, err)
	}
	return &p, nil
}

func (s *Store) UpdateProfitability(_ context.Context, id string, patch domain.ProjectProfitabilityPatch) (*domain.ProjectProfitability, error) {
	return s.profitability.update(id, patch.Apply), nil
}

func (s *Store) DeleteProfitability(_ context.Context, id string) (bool, error) {
	return s.profitability.remove(id), nil
}
