package app

import (
	"context"
	"log"
	"time"

	"repolens/internal/analyzer"
	"repolens/internal/gateway/config"
	"repolens/internal/gateway/handler"
	"repolens/internal/gateway/server"
	"repolens/internal/gateway/service/analysis"
	"repolens/internal/repostore"
)

// App wires config, repo store, analyzer, service, handlers and server.
type App struct {
	cfg    *config.Config
	server *server.Server
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log.Printf("gateway config: env=%s repos=%s cache=%d entries / %s",
		cfg.Env, cfg.ReposDir, cfg.CacheEntries, cfg.CacheTTL)

	repos := repostore.New(cfg.ReposDir)
	svc := analysis.New(repos, analyzer.NewDefault(), cfg.CacheEntries, cfg.CacheTTL)
	mux := server.NewMux(handler.NewAnalyzeHandler(svc))

	return &App{
		cfg:    cfg,
		server: server.New(cfg.Port, mux),
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

// ShutdownGrace reports how long Shutdown should be given to drain.
func (a *App) ShutdownGrace() time.Duration {
	return a.cfg.ShutdownGrace
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
