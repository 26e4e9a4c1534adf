package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"agency-hub/internal/core/domain"
	"agency-hub/internal/core/port"
)

const (
	uniqueViolation    = "23505"
	usernameConstraint = "users_username_key"

	// roiCast binds ROI as text so the decimal string is parsed by the server.
	roiCast = "::text::numeric"

	userColumns          = "id, username, password"
	projectColumns       = "id, name, client, icon, color, progress, deadline, team, status, created_at"
	assetColumns         = "id, name, size, type, url, thumbnail, created_at"
	campaignColumns      = "id, name, platform, icon, color, status, impressions, clicks, ctr, spend, created_at"
	messageColumns       = "id, client, initials, color, project, content, time, needs_review, created_at"
	feedbackColumns      = "id, title, client, priority, time, created_at"
	teamMemberColumns    = "id, name, initials, role, color, utilization, hours, projects, created_at"
	profitabilityColumns = "id, project_id, budget, spent, hours, revenue, roi::text AS roi, created_at"
)

// RecordStore implements port.RecordStore on PostgreSQL using pgxpool.
// Identifiers and timestamps are assigned in Go, not by the database.
type RecordStore struct {
	pool  *pgxpool.Pool
	now   func() time.Time
	newID func() string
}

var _ port.RecordStore = (*RecordStore)(nil)

// NewRecordStore returns a store backed by pool.
func NewRecordStore(pool *pgxpool.Pool) *RecordStore {
	return &RecordStore{
		pool:  pool,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// queryAll runs query and collects every row with scan.
func queryAll[T any](ctx context.Context, r *RecordStore, scan pgx.RowToFunc[T], query string, args ...any) ([]T, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// queryOne returns the first row of query, or nil when there is none.
func queryOne[T any](ctx context.Context, r *RecordStore, scan pgx.RowToFunc[T], query string, args ...any) (*T, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	item, err := pgx.CollectOneRow(rows, scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// updateOne applies set to the row with id. An empty set leaves the row
// untouched and returns its current state.
func updateOne[T any](ctx context.Context, r *RecordStore, scan pgx.RowToFunc[T], table, columns, id string, set *assignments) (*T, error) {
	if set.empty() {
		return queryOne(ctx, r, scan, fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", columns, table), id)
	}
	query, args := set.update(table, columns, id)
	return queryOne(ctx, r, scan, query, args...)
}

func (r *RecordStore) deleteByID(ctx context.Context, table, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// scanProfitability reads roi as text; decimal.Decimal has no pgx codec.
func scanProfitability(row pgx.CollectableRow) (domain.ProjectProfitability, error) {
	var (
		p   domain.ProjectProfitability
		roi string
	)
	err := row.Scan(&p.ID, &p.ProjectID, &p.Budget, &p.Spent, &p.Hours, &p.Revenue, &roi, &p.CreatedAt)
	if err != nil {
		return p, err
	}
	if p.ROI, err = decimal.NewFromString(roi); err != nil {
		return p, fmt.Errorf("parse roi %q: %w", roi, err)
	}
	return p, nil
}

// Users

func (r *RecordStore) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	u := in.Build(r.newID())
	created, err := queryOne(ctx, r, pgx.RowToStructByName[domain.User],
		`INSERT INTO users (id, username, password) VALUES ($1, $2, $3) RETURNING `+userColumns,
		u.ID, u.Username, u.Password)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == usernameConstraint {
		return nil, port.ErrUsernameTaken
	}
	return created, err
}

func (r *RecordStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return queryOne(ctx, r, pgx.RowToStructByName[domain.User],
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *RecordStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return queryOne(ctx, r, pgx.RowToStructByName[domain.User],
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// Projects

func (r *RecordStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return queryAll(ctx, r, pgx.RowToStructByName[domain.Project],
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, seq`)
}

func (r *RecordStore) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return queryOne(ctx, r, pgx.RowToStructByName[domain.Project],
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
}

func (r *RecordStore) CreateProject(ctx context.Context, in domain.NewProject) (*domain.Project, error) {
	p := in.Build(r.newID(), r.now())
	return queryOne(ctx, r, pgx.RowToStructByName[domain.Project], `
		INSERT INTO projects (`+projectColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+projectColumns,
		p.ID, p.Name, p.Client, p.Icon, p.Color, p.Progress, p.Deadline, p.Team, p.Status, p.CreatedAt)
}

func (r *RecordStore) UpdateProject(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	return updateOne(ctx, r, pgx.RowToStructByName[domain.Project], "projects", projectColumns, id, projectAssignments(patch))
}

func (r *RecordStore) DeleteProject(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "projects", id)
}

// Assets

func (r *RecordStore) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	return queryAll(ctx, r, pgx.RowToStructByName[domain.Asset],
		`SELECT `+assetColumns+` FROM assets ORDER BY created_at DESC, seq`)
}

func (r *RecordStore) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	return queryOne(ctx, r, pgx.RowToStructByName[domain.Asset],
		`SELECT `+assetColumns+` FROM assets WHERE id = $1`, id)
}

func (r *RecordStore) CreateAsset(ctx context.Context, in domain.NewAsset) (*domain.Asset, error) {
	a := in.Build(r.newID(), r.now())
	return queryOne(ctx, r, pgx.RowToStructByName[domain.Asset], `
		INSERT INTO assets (`+assetColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+assetColumns,
		a.ID, a.Name, a.Size, a.Type, a.URL, a.Thumbnail, a.CreatedAt)
}

func (r *RecordStore) DeleteAsset(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "assets", id)
}

// Campaigns

func (r *RecordStore) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return queryAll(ctx, r, pgx.RowToStructByName[domain.Campaign],
		`SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC, seq`)
}

func (r *RecordStore) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return queryOne(ctx, r, pgx.RowToStructByName[domain.Campaign],
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
}

func (r *RecordStore) CreateCampaign(ctx context.Context, in domain.NewCampaign) (*domain.Campaign, error) {
	c := in.Build(r.newID(), r.now())
	return queryOne(ctx, r, pgx.RowToStructByName[domain.Campaign], `
		INSERT INTO campaigns (`+campaignColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+campaignColumns,
		c.ID, c.Name, c.Platform, c.Icon, c.Color, c.Status, c.Impressions, c.Clicks, c.CTR, c.Spend, c.CreatedAt)
}

func (r *RecordStore) UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	return updateOne(ctx, r, pgx.RowToStructByName[domain.Campaign], "campaigns", campaignColumns, id, campaignAssignments(patch))
}

func (r *RecordStore) DeleteCampaign(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "campaigns", id)
}

// Messages

func (r *RecordStore) ListMessages(ctx context.Context) ([]domain.Message, error) {
	return queryAll(ctx, r, pgx.RowToStructByName[domain.Message],
		`SELECT `+messageColumns+` FROM messages ORDER BY created_at DESC, seq`)
}

func (r *RecordStore) GetMessage(ctx context.Context, id string) (*domain.Message, error) {
	return queryOne(ctx, r, pgx.RowToStructByName[domain.Message],
		`SELECT `+messageColumns+` FROM messages WHERE id = $1`, id)
}

func (r *RecordStore) CreateMessage(ctx context.Context, in domain.NewMessage) (*domain.Message, error) {
	m := in.Build(r.newID(), r.now())
	return queryOne(ctx, r, pgx.RowToStructByName[domain.Message], `
		INSERT INTO messages (`+messageColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+messageColumns,
		m.ID, m.Client, m.Initials, m.Color, m.Project, m.Content, m.Time, m.NeedsReview, m.CreatedAt)
}

func (r *RecordStore) DeleteMessage(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "messages", id)
}

// Feedback

func (r *RecordStore) ListFeedbackItems(ctx context.Context) ([]domain.FeedbackItem, error) {
	return queryAll(ctx, r, pgx.RowToStructByName[domain.FeedbackItem],
		`SELECT `+feedbackColumns+` FROM feedback_items ORDER BY created_at DESC, seq`)
}

func (r *RecordStore) GetFeedbackItem(ctx context.Context, id string) (*domain.FeedbackItem, error) {
	return queryOne(ctx, r, pgx.RowToStructByName[domain.FeedbackItem],
		`SELECT `+feedbackColumns+` FROM feedback_items WHERE id = $1`, id)
}

func (r *RecordStore) CreateFeedbackItem(ctx context.Context, in domain.NewFeedbackItem) (*domain.FeedbackItem, error) {
	f := in.Build(r.newID(), r.now())
	return queryOne(ctx, r, pgx.RowToStructByName[domain.FeedbackItem], `
		INSERT INTO feedback_items (`+feedbackColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+feedbackColumns,
		f.ID, f.Title, f.Client, f.Priority, f.Time, f.CreatedAt)
}

func (r *RecordStore) DeleteFeedbackItem(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "feedback_items", id)
}

// Team

func (r *RecordStore) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	return queryAll(ctx, r, pgx.RowToStructByName[domain.TeamMember],
		`SELECT `+teamMemberColumns+` FROM team_members ORDER BY name COLLATE "C", seq`)
}

func (r *RecordStore) GetTeamMember(ctx context.Context, id string) (*domain.TeamMember, error) {
	return queryOne(ctx, r, pgx.RowToStructByName[domain.TeamMember],
		`SELECT `+teamMemberColumns+` FROM team_members WHERE id = $1`, id)
}

func (r *RecordStore) CreateTeamMember(ctx context.Context, in domain.NewTeamMember) (*domain.TeamMember, error) {
	m := in.Build(r.newID(), r.now())
	return queryOne(ctx, r, pgx.RowToStructByName[domain.TeamMember], `
		INSERT INTO team_members (`+teamMemberColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+teamMemberColumns,
		m.ID, m.Name, m.Initials, m.Role, m.Color, m.Utilization, m.Hours, m.Projects, m.CreatedAt)
}

func (r *RecordStore) UpdateTeamMember(ctx context.Context, id string, patch domain.TeamMemberPatch) (*domain.TeamMember, error) {
	return updateOne(ctx, r, pgx.RowToStructByName[domain.TeamMember], "team_members", teamMemberColumns, id, teamMemberAssignments(patch))
}

func (r *RecordStore) DeleteTeamMember(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "team_members", id)
}

// Profitability

func (r *RecordStore) ListProfitability(ctx context.Context) ([]domain.ProjectProfitability, error) {
	return queryAll(ctx, r, scanProfitability,
		`SELECT `+profitabilityColumns+` FROM project_profitability ORDER BY seq`)
}

func (r *RecordStore) GetProfitability(ctx context.Context, id string) (*domain.ProjectProfitability, error) {
	return queryOne(ctx, r, scanProfitability,
		`SELECT `+profitabilityColumns+` FROM project_profitability WHERE id = $1`, id)
}

func (r *RecordStore) FindProfitabilityByProject(ctx context.Context, projectID string) (*domain.ProjectProfitability, error) {
	return queryOne(ctx, r, scanProfitability,
		`SELECT `+profitabilityColumns+` FROM project_profitability WHERE project_id = $1 ORDER BY seq LIMIT 1`, projectID)
}

func (r *RecordStore) CreateProfitability(ctx context.Context, in domain.NewProjectProfitability) (*domain.ProjectProfitability, error) {
	p := in.Build(r.newID(), r.now())
	return queryOne(ctx, r, scanProfitability, `
		INSERT INTO project_profitability (id, project_id, budget, spent, hours, revenue, roi, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7`+roiCast+`, $8)
		RETURNING `+profitabilityColumns,
		p.ID, p.ProjectID, p.Budget, p.Spent, p.Hours, p.Revenue, p.ROI.String(), p.CreatedAt)
}

func (r *RecordStore) UpdateProfitability(ctx context.Context, id string, patch domain.ProjectProfitabilityPatch) (*domain.ProjectProfitability, error) {
	return updateOne(ctx, r, scanProfitability, "project_profitability", profitabilityColumns, id, profitabilityAssignments(patch))
}

func (r *RecordStore) DeleteProfitability(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "project_profitability", id)
}
