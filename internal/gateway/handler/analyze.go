package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"repolens/internal/gateway/service/analysis"
)

type AnalyzeHandler struct {
	svc *analysis.Service
}

func NewAnalyzeHandler(svc *analysis.Service) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

// HandleAnalyze serves GET /api/analyze?url=<repo-url>. The response is the
// full analysis report as JSON, or {"error": ...} on failure.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	repoURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if repoURL == "" {
		writeError(w, http.StatusBadRequest, "url query parameter is required")
		return
	}

	report, err := h.svc.Analyze(r.Context(), repoURL, nil)
	if err != nil {
		log.Printf("analyze %s: %v", repoURL, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(report)
}

func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": msg})
}
