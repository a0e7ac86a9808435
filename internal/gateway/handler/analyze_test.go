package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repolens/internal/analyzer"
	"repolens/internal/gateway/handler"
	"repolens/internal/gateway/server"
	"repolens/internal/gateway/service/analysis"
	"repolens/internal/repostore"
)

func newTestMux(t *testing.T) http.Handler {
	t.Helper()
	fakeGit := func(ctx context.Context, args ...string) error {
		target := args[len(args)-1]
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return os.WriteFile(
			filepath.Join(target, "package.json"),
			[]byte(`{"dependencies":{"react":"^18.0.0"}}`),
			0o644,
		)
	}
	store := repostore.New(t.TempDir(), repostore.WithGitRunner(fakeGit))
	svc := analysis.New(store, analyzer.NewDefault(), 16, time.Minute)
	return server.NewMux(handler.NewAnalyzeHandler(svc))
}

func TestHandleAnalyze(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyze?url=https://github.com/acme/demo", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var report analyzer.Report
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, "demo", report.RepoName)
	assert.Equal(t, "Node.js/JavaScript", report.ConfigFiles["package.json"])
	assert.Equal(t, 1, report.FileExtensions["json"])
}

func TestHandleAnalyze_MissingURL(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyze", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body["error"], "url")
}

func TestHandleAnalyze_MethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze?url=x", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleHealthz(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleAnalyzeWS(t *testing.T) {
	srv := httptest.NewServer(newTestMux(t))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") +
		"/api/analyze/ws?url=https://github.com/acme/demo"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	var stages []string
	for {
		var frame struct {
			Type   string           `json:"type"`
			Event  *analysis.Event  `json:"event"`
			Report *analyzer.Report `json:"report"`
		}
		require.NoError(t, conn.ReadJSON(&frame))
		if frame.Type == "progress" {
			stages = append(stages, frame.Event.Stage)
			continue
		}
		require.Equal(t, "report", frame.Type)
		require.NotNil(t, frame.Report)
		assert.Equal(t, "demo", frame.Report.RepoName)
		break
	}
	assert.Contains(t, stages, analysis.StageCloning)
	assert.Contains(t, stages, analysis.StageDone)
}
