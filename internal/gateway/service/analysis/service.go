// Package analysis orchestrates one analysis run: resolve and clone the
// repository, run the analyzer, cache the finished report.
package analysis

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"repolens/internal/analyzer"
	"repolens/internal/repostore"
)

// Stage names emitted as an analysis run progresses.
const (
	StageResolving = "resolving"
	StageCloning   = "cloning"
	StageAnalyzing = "analyzing"
	StageDone      = "done"
	StageError     = "error"
)

// Event reports progress of one analysis run.
type Event struct {
	RunID   string `json:"run_id"`
	Stage   string `json:"stage"`
	Repo    string `json:"repo,omitempty"`
	Message string `json:"message,omitempty"`
}

// EventFunc receives progress events; nil callers get none.
type EventFunc func(Event)

// Service ties the repo store and the analyzer together and memoizes
// finished reports in an expiring in-memory LRU keyed by clone URL.
type Service struct {
	repos    *repostore.Store
	analyzer *analyzer.Analyzer
	cache    *expirable.LRU[string, *analyzer.Report]
}

// New builds a Service. cacheEntries and cacheTTL bound the report cache;
// zero values fall back to 128 entries / 15 minutes.
func New(repos *repostore.Store, a *analyzer.Analyzer, cacheEntries int, cacheTTL time.Duration) *Service {
	if cacheEntries <= 0 {
		cacheEntries = 128
	}
	if cacheTTL <= 0 {
		cacheTTL = 15 * time.Minute
	}
	return &Service{
		repos:    repos,
		analyzer: a,
		cache:    expirable.NewLRU[string, *analyzer.Report](cacheEntries, nil, cacheTTL),
	}
}

// Analyze clones (or reuses) repoURL, runs the full pipeline against the
// checkout, and returns the report. A cached report for the same clone URL
// is returned without touching git or the filesystem. onEvent, when
// non-nil, observes run progress.
func (s *Service) Analyze(ctx context.Context, repoURL string, onEvent EventFunc) (*analyzer.Report, error) {
	runID := uuid.NewString()
	emit := func(stage, msg string) {
		if onEvent != nil {
			onEvent(Event{RunID: runID, Stage: stage, Repo: repoURL, Message: msg})
		}
	}

	emit(StageResolving, "")
	cloneURL, name, err := repostore.NormalizeRepoURL(repoURL)
	if err != nil {
		emit(StageError, err.Error())
		return nil, err
	}

	if cached, ok := s.cache.Get(cloneURL); ok {
		log.Printf("analysis %s: cache hit for %s", runID, cloneURL)
		// The cached report carries the URL spelling of whoever filled the
		// cache; hand back a copy stamped with this caller's spelling.
		report := *cached
		report.RepoURL = repoURL
		emit(StageDone, "cached")
		return &report, nil
	}

	emit(StageCloning, name)
	name, root, err := s.repos.Ensure(ctx, repoURL)
	if err != nil {
		emit(StageError, err.Error())
		return nil, err
	}

	emit(StageAnalyzing, name)
	started := time.Now()
	report, err := s.analyzer.Analyze(root)
	if err != nil {
		emit(StageError, err.Error())
		return nil, fmt.Errorf("analysis: %w", err)
	}
	report.RepoURL = repoURL
	report.RepoName = name
	log.Printf("analysis %s: analyzed %s in %s", runID, name, time.Since(started).Round(time.Millisecond))

	s.cache.Add(cloneURL, report)
	emit(StageDone, "")
	return report, nil
}
