package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agency-hub/internal/adapter/memory"
	"agency-hub/internal/adapter/usecase"
	"agency-hub/internal/core/domain"
)

type testServer struct {
	srv     *httptest.Server
	store   *memory.Store
	metrics *Metrics
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.NewStore()
	logger := slog.New(slog.DiscardHandler)
	metrics := NewMetrics(prometheus.NewRegistry(), "/metrics")
	h := NewHandler(
		store,
		usecase.NewDashboardUseCase(store, logger, usecase.DefaultClientSatisfaction),
		usecase.NewUserUseCase(store),
		logger,
		metrics,
	)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return &testServer{srv: srv, store: store, metrics: metrics}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, ts.srv.URL+path, r)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

var brandRedesign = map[string]any{
	"name":     "Brand Redesign",
	"client":   "TechCorp Inc",
	"icon":     "🎨",
	"color":    "bg-gradient-to-br from-primary to-chart-1",
	"deadline": "Mar 25",
	"team":     "6",
	"status":   "On Track",
}

func TestProjectLifecycle(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/projects", brandRedesign)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[domain.Project](t, resp)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 0, created.Progress)
	assert.Equal(t, "Brand Redesign", created.Name)

	resp = ts.do(t, http.MethodGet, "/api/projects/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[domain.Project](t, resp)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	resp = ts.do(t, http.MethodPatch, "/api/projects/"+created.ID, map[string]any{"progress": 60})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	patched := decodeBody[domain.Project](t, resp)
	assert.Equal(t, 60, patched.Progress)
	assert.Equal(t, "Brand Redesign", patched.Name)
	assert.Equal(t, "On Track", patched.Status)

	resp = ts.do(t, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]domain.Project](t, resp)
	require.Len(t, list, 1)

	resp = ts.do(t, http.MethodDelete, "/api/projects/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = ts.do(t, http.MethodDelete, "/api/projects/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = ts.do(t, http.MethodGet, "/api/projects/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	errBody := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "Project not found", errBody["error"])
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPatch, "/api/campaigns/missing", map[string]any{"status": "Paused"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateValidation(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"client": "TechCorp Inc", "progress": 150}
	resp := ts.do(t, http.MethodPost, "/api/projects", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload struct {
		Error []fieldError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	fields := map[string]string{}
	for _, fe := range payload.Error {
		fields[fe.Field] = fe.Rule
	}
	assert.Equal(t, "required", fields["name"])
	assert.Equal(t, "max", fields["progress"])

	all, err := ts.store.ListProjects(t.Context())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestInvalidJSON(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/assets", "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEmptyListIsArray(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/api/feedback", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

func TestAssetURLIsOptional(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/assets", map[string]any{
		"name": "hero.png", "size": "2.4 MB", "type": "Image", "thumbnail": "🖼️",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	raw := decodeBody[map[string]any](t, resp)
	assert.Contains(t, raw, "url")
	assert.Nil(t, raw["url"])
}

func TestDashboardStatsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	for _, status := range []string{"On Track", "At Risk", "Completed", "On Track"} {
		p := map[string]any{}
		for k, v := range brandRedesign {
			p[k] = v
		}
		p["status"] = status
		require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/api/projects", p).StatusCode)
	}
	for _, c := range []struct{ status, ctr string }{{"Active", "2.7%"}, {"Active", "3.5%"}, {"Paused", "9.9%"}} {
		resp := ts.do(t, http.MethodPost, "/api/campaigns", map[string]any{
			"name": "Spring", "platform": "Instagram", "icon": "📸", "color": "bg-accent",
			"status": c.status, "impressions": "1.2M", "clicks": "32K", "ctr": c.ctr, "spend": "$1,200",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	for _, u := range []int{92, 85, 78, 88, 81} {
		resp := ts.do(t, http.MethodPost, "/api/team-members", map[string]any{
			"name": "Member", "initials": "MM", "role": "Designer", "color": "bg-primary",
			"utilization": u, "hours": 30, "projects": []string{"Brand Redesign"},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := ts.do(t, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decodeBody[domain.DashboardStats](t, resp)
	assert.Equal(t, domain.DashboardStats{
		ActiveProjects:      3,
		TeamUtilization:     85,
		CampaignPerformance: 3,
		ClientSatisfaction:  4.8,
	}, stats)

	resp = ts.do(t, http.MethodGet, "/api/resources/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sum := decodeBody[domain.ResourceSummary](t, resp)
	assert.Equal(t, 5, sum.TeamSize)
	assert.Equal(t, 150, sum.TotalHours)
	assert.Equal(t, 85, sum.AverageUtilization)
}

func TestProfitabilityByProject(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/project-profitability", map[string]any{
		"projectId": "p-123", "budget": "$45,000", "spent": "$32,400",
		"hours": "324", "revenue": "$92,500", "roi": "185.5",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[domain.ProjectProfitability](t, resp)
	assert.Equal(t, "185.5", created.ROI.String())

	resp = ts.do(t, http.MethodGet, "/api/projects/p-123/profitability", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[domain.ProjectProfitability](t, resp)
	assert.Equal(t, created.ID, got.ID)

	resp = ts.do(t, http.MethodGet, "/api/projects/unknown/profitability", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = ts.do(t, http.MethodPost, "/api/project-profitability", map[string]any{
		"projectId": "p-123", "budget": "$1", "spent": "$1", "hours": "1", "revenue": "$1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "roi is required")
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	creds := map[string]any{"username": "sarah", "password": "correct horse"}

	resp := ts.do(t, http.MethodPost, "/api/users", creds)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	raw := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "sarah", raw["username"])
	assert.NotContains(t, raw, "password")

	resp = ts.do(t, http.MethodPost, "/api/users", creds)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = ts.do(t, http.MethodPost, "/api/auth/login", creds)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.do(t, http.MethodPost, "/api/auth/login", map[string]any{"username": "sarah", "password": "wrong password"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/projects", nil).StatusCode)
	require.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/projects/nope", nil).StatusCode)

	assert.Equal(t, float64(1), testutil.ToFloat64(ts.metrics.requests.WithLabelValues("GET", "/api/projects/{id}", "404")))

	resp := ts.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "agency_http_requests_total")
}

type validationBody struct {
	Error []fieldError `json:"error"`
}

func fieldsOf(errs []fieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Rule
	}
	return out
}

func TestRegisterPasswordLimitIsInBytes(t *testing.T) {
	ts := newTestServer(t)

	// 40 runes, 80 bytes
	resp := ts.do(t, http.MethodPost, "/api/users", map[string]any{
		"username": "sarah", "password": strings.Repeat("é", 40),
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody[validationBody](t, resp)
	assert.Equal(t, map[string]string{"password": "maxbytes"}, fieldsOf(body.Error))

	// 36 runes, exactly 72 bytes
	resp = ts.do(t, http.MethodPost, "/api/users", map[string]any{
		"username": "sarah", "password": strings.Repeat("é", 36),
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestTeamMemberRequiresUtilizationAndHours(t *testing.T) {
	ts := newTestServer(t)

	member := map[string]any{
		"name": "Sarah Johnson", "initials": "SJ", "role": "Senior Designer",
		"color": "bg-primary", "projects": []string{"Brand Redesign"},
	}
	resp := ts.do(t, http.MethodPost, "/api/team-members", member)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody[validationBody](t, resp)
	assert.Equal(t, map[string]string{"utilization": "required", "hours": "required"}, fieldsOf(body.Error))

	member["utilization"] = 0
	member["hours"] = 0
	resp = ts.do(t, http.MethodPost, "/api/team-members", member)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[domain.TeamMember](t, resp)
	assert.Equal(t, 0, created.Utilization)

	team, err := ts.store.ListTeamMembers(t.Context())
	require.NoError(t, err)
	assert.Len(t, team, 1)
}

func TestProfitabilityROIRange(t *testing.T) {
	ts := newTestServer(t)

	row := func(roi string) map[string]any {
		return map[string]any{
			"projectId": "p-1", "budget": "$1", "spent": "$1", "hours": "1", "revenue": "$1", "roi": roi,
		}
	}

	for _, roi := range []string{"1000", "999.96", "-1000"} {
		resp := ts.do(t, http.MethodPost, "/api/project-profitability", row(roi))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "roi %s", roi)
	}
	all, err := ts.store.ListProfitability(t.Context())
	require.NoError(t, err)
	assert.Empty(t, all)

	resp := ts.do(t, http.MethodPost, "/api/project-profitability", row("-999.9"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[domain.ProjectProfitability](t, resp)

	resp = ts.do(t, http.MethodPatch, "/api/project-profitability/"+created.ID, map[string]any{"roi": "1000"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody[validationBody](t, resp)
	assert.Equal(t, map[string]string{"roi": "lt"}, fieldsOf(body.Error))

	resp = ts.do(t, http.MethodPatch, "/api/project-profitability/"+created.ID, map[string]any{"roi": "999.9"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[domain.ProjectProfitability](t, resp)
	assert.Equal(t, "999.9", updated.ROI.String())
}
