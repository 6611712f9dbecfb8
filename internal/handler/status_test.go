package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"modbot/internal/incidents"
	"modbot/internal/models"
)

type fakeDecisionRepo struct {
	records []models.DecisionRecord
	err     error
}

func (r *fakeDecisionRepo) Insert(record models.DecisionRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *fakeDecisionRepo) ListRecent(limit int) ([]models.DecisionRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	if limit < len(r.records) {
		return r.records[:limit], nil
	}
	return r.records, nil
}

func newTestRouter(registry *incidents.Registry, repo *fakeDecisionRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var h StatusHandler
	if repo != nil {
		h = NewStatusHandler(registry, repo, zap.NewNop())
	} else {
		h = NewStatusHandler(registry, nil, zap.NewNop())
	}

	router.GET("/api/incidents/open", h.GetOpenIncidents)
	router.GET("/api/decisions", h.GetRecentDecisions)
	return router
}

func TestGetOpenIncidents(t *testing.T) {
	registry := incidents.NewRegistry()
	registry.Append(models.Incident{ChatID: -100, MessageID: 7, AdminChannelMessageID: 900})
	router := newTestRouter(registry, &fakeDecisionRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/incidents/open", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count     int               `json:"count"`
		Incidents []models.Incident `json:"incidents"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Incidents, 1)
	assert.Equal(t, int64(900), body.Incidents[0].AdminChannelMessageID)
}

func TestGetRecentDecisions(t *testing.T) {
	repo := &fakeDecisionRepo{records: []models.DecisionRecord{
		{ID: "a", ChatID: -100, MessageID: 7, Action: "spam"},
		{ID: "b", ChatID: -100, MessageID: 8, Action: "nospam"},
	}}
	router := newTestRouter(incidents.NewRegistry(), repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/decisions?limit=1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Decisions []models.DecisionRecord `json:"decisions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Decisions, 1)
}

func TestGetRecentDecisionsBadLimit(t *testing.T) {
	router := newTestRouter(incidents.NewRegistry(), &fakeDecisionRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/decisions?limit=-5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecentDecisionsWithoutStore(t *testing.T) {
	router := newTestRouter(incidents.NewRegistry(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/decisions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetRecentDecisionsRepoFailure(t *testing.T) {
	router := newTestRouter(incidents.NewRegistry(), &fakeDecisionRepo{err: errors.New("db down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/decisions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
