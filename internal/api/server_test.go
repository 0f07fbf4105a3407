package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lr-explorer-server/internal/catalog"
	"github.com/lr-explorer-server/internal/domain"
	"github.com/lr-explorer-server/internal/service"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &domain.Config{
		Server: domain.ServerConfig{
			Host: "127.0.0.1", Port: 0,
			RateLimit: 1000, RateBurst: 1000,
		},
		Explorer: domain.ExplorerConfig{
			CohortSize:           100,
			DefaultPrevalencePct: 10,
			MinPrevalencePct:     1,
			MaxPrevalencePct:     90,
			SessionTTL:           time.Hour,
		},
		Cache:   domain.CacheConfig{ViewCacheSize: 16},
		Logging: domain.LoggingConfig{Level: "error", Format: "text"},
	}

	cat, err := catalog.New(logger)
	require.NoError(t, err)

	views, err := service.NewViewEngine(cat, cfg.Cache.ViewCacheSize, logger)
	require.NoError(t, err)

	sessions := service.NewSessionManager(views, cfg.Explorer, logger)
	t.Cleanup(sessions.Close)

	return NewServer(cfg, cat, sessions, logger)
}

func doJSON(t *testing.T, server *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) domain.SessionView {
	t.Helper()
	var view domain.SessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func TestHealthEndpoint(t *testing.T) {
	server := testServer(t)
	w := doJSON(t, server, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestCreateSessionAutoSelects(t *testing.T) {
	server := testServer(t)

	w := doJSON(t, server, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	view := decodeView(t, w)
	assert.NotEmpty(t, view.ID)
	assert.NotEmpty(t, view.Records)
	require.NotNil(t, view.State.Selected)
	assert.Equal(t, view.Records[0].Test, view.State.Selected.Test)
	assert.Equal(t, 10.0, view.State.PrevalencePct)
}

func TestSessionNotFound(t *testing.T) {
	server := testServer(t)
	w := doJSON(t, server, http.MethodGet, "/api/v1/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionMutationFlow(t *testing.T) {
	server := testServer(t)

	created := decodeView(t, doJSON(t, server, http.MethodPost, "/api/v1/sessions", nil))
	base := fmt.Sprintf("/api/v1/sessions/%s", created.ID)

	// Select PSA and set prevalence to 10%.
	w := doJSON(t, server, http.MethodPost, base+"/select",
		map[string]string{"test": "PSA", "condition": "Prostate Cancer"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, server, http.MethodPut, base+"/prevalence", map[string]float64{"percent": 10})
	require.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	assert.Equal(t, 1.10, view.Derived.ActiveLR)
	assert.InDelta(t, 0.109, view.Derived.PostTestProb, 0.001)

	// Flip polarity to negative.
	w = doJSON(t, server, http.MethodPut, base+"/polarity", map[string]string{"polarity": "negative"})
	require.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	assert.Equal(t, 0.50, view.Derived.ActiveLR)
	assert.InDelta(t, 0.053, view.Derived.PostTestProb, 0.001)

	// Narrow the view; the stale PSA selection is kept.
	w = doJSON(t, server, http.MethodPut, base+"/query", map[string]string{"query": "FIT"})
	require.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	require.Len(t, view.Records, 1)
	assert.Equal(t, "PSA", view.State.Selected.Test)

	// Delete the session.
	w = doJSON(t, server, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, server, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSortToggleOverHTTP(t *testing.T) {
	server := testServer(t)
	created := decodeView(t, doJSON(t, server, http.MethodPost, "/api/v1/sessions", nil))
	base := fmt.Sprintf("/api/v1/sessions/%s", created.ID)

	w := doJSON(t, server, http.MethodPost, base+"/sort", map[string]string{"key": "sensitivity"})
	require.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	assert.Equal(t, domain.SortBySensitivity, view.State.SortKey)
	assert.Equal(t, domain.ASCENDING, view.State.SortDir)

	w = doJSON(t, server, http.MethodPost, base+"/sort", map[string]string{"key": "sensitivity"})
	view = decodeView(t, w)
	assert.Equal(t, domain.DESCENDING, view.State.SortDir)

	w = doJSON(t, server, http.MethodPost, base+"/sort", map[string]string{"key": "year"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectInvisibleRecordRejected(t *testing.T) {
	server := testServer(t)
	created := decodeView(t, doJSON(t, server, http.MethodPost, "/api/v1/sessions", nil))
	base := fmt.Sprintf("/api/v1/sessions/%s", created.ID)

	w := doJSON(t, server, http.MethodPut, base+"/condition", map[string]string{"condition": "Colorectal Cancer"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, server, http.MethodPost, base+"/select",
		map[string]string{"test": "PSA", "condition": "Prostate Cancer"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRecordsStateless(t *testing.T) {
	server := testServer(t)

	w := doJSON(t, server, http.MethodGet, "/api/v1/records?query=FIT&condition=Colorectal%20Cancer", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Records    []domain.TestRecord `json:"records"`
		Conditions []string            `json:"conditions"`
		Total      int                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "FIT", resp.Records[0].Test)
	assert.NotEmpty(t, resp.Conditions)

	w = doJSON(t, server, http.MethodGet, "/api/v1/records?sort=lrPlus&dir=desc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for i := 1; i < len(resp.Records); i++ {
		assert.GreaterOrEqual(t, resp.Records[i-1].LRPlus, resp.Records[i].LRPlus)
	}
}

func TestStudyNotesEndpoint(t *testing.T) {
	server := testServer(t)

	w := doJSON(t, server, http.MethodGet, "/api/v1/records/notes?test=PSA&condition=Prostate%20Cancer", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available":true`)

	// Absence of a note is a normal state, not an error status.
	w = doJSON(t, server, http.MethodGet, "/api/v1/records/notes?test=gFOBT&condition=Colorectal%20Cancer", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available":false`)

	w = doJSON(t, server, http.MethodGet, "/api/v1/records/notes?test=PSA", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogSummaryEndpoint(t *testing.T) {
	server := testServer(t)

	w := doJSON(t, server, http.MethodGet, "/api/v1/catalog/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary domain.CatalogSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Greater(t, summary.RecordCount, 0)
	assert.Greater(t, summary.Sensitivity.Mean, 0.0)
}
