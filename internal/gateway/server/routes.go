package server

import (
	"net/http"

	"repolens/internal/gateway/handler"
	"repolens/internal/gateway/middleware"
)

func NewMux(analyzeHandler *handler.AnalyzeHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/analyze", analyzeHandler.HandleAnalyze)
	mux.HandleFunc("/api/analyze/ws", analyzeHandler.HandleAnalyzeWS)
	mux.HandleFunc("/healthz", handler.HandleHealthz)

	return middleware.CORS(mux)
}
