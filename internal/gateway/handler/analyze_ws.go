package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"repolens/internal/analyzer"
	"repolens/internal/gateway/service/analysis"
)

const (
	analyzeWSWriteWait = 10 * time.Second
	analyzeWSPongWait  = 60 * time.Second
	analyzeWSPingEvery = (analyzeWSPongWait * 9) / 10
)

var analyzeWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type analyzeWSOutbound struct {
	Type    string           `json:"type"` // progress | report | error
	Event   *analysis.Event  `json:"event,omitempty"`
	Report  *analyzer.Report `json:"report,omitempty"`
	Message string           `json:"message,omitempty"`
}

// HandleAnalyzeWS serves GET /api/analyze/ws?url=<repo-url>. Progress
// events stream as they happen; the final frame carries either the report
// or an error, after which the connection closes.
func (h *AnalyzeHandler) HandleAnalyzeWS(w http.ResponseWriter, r *http.Request) {
	repoURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if repoURL == "" {
		http.Error(w, "url query parameter is required", http.StatusBadRequest)
		return
	}

	conn, err := analyzeWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(analyzeWSPongWait)); err != nil {
		log.Printf("analyze ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(analyzeWSPongWait))
	})

	// Drain control frames; a client read error ends the run.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	writeCh := make(chan analyzeWSOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(analyzeWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(analyzeWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
				if out.Type != "progress" {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(analyzeWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	report, err := h.svc.Analyze(ctx, repoURL, func(ev analysis.Event) {
		pushAnalyzeWS(writeCh, analyzeWSOutbound{Type: "progress", Event: &ev})
	})
	if err != nil {
		pushAnalyzeWS(writeCh, analyzeWSOutbound{Type: "error", Message: err.Error()})
	} else {
		pushAnalyzeWS(writeCh, analyzeWSOutbound{Type: "report", Report: report})
	}
	<-writerDone
}

func pushAnalyzeWS(ch chan<- analyzeWSOutbound, out analyzeWSOutbound) {
	select {
	case ch <- out:
	default:
		log.Printf("analyze ws: dropping %s frame, writer is behind", out.Type)
	}
}
