// Package repostore materializes remote repositories as local checkouts
// under a single repos directory, reusing existing clones.
package repostore

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"repolens/internal/scan"
)

// GitRunner executes a git command. Injectable for tests.
type GitRunner func(ctx context.Context, args ...string) error

func runGit(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Store clones repositories into a fixed root directory and reuses
// checkouts that already exist there.
type Store struct {
	root  string
	depth int
	git   GitRunner

	retryAttempts uint64
	retryDelay    time.Duration
}

// Option adjusts a Store.
type Option func(*Store)

// WithGitRunner replaces the git invocation, primarily for tests.
func WithGitRunner(run GitRunner) Option {
	return func(s *Store) { s.git = run }
}

// WithDepth sets the clone depth (default 1).
func WithDepth(depth int) Option {
	return func(s *Store) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithRetry tunes clone retries (default 2 retries, 2s constant backoff).
func WithRetry(attempts uint64, delay time.Duration) Option {
	return func(s *Store) {
		s.retryAttempts = attempts
		if delay > 0 {
			s.retryDelay = delay
		}
	}
}

// New builds a Store rooted at dir.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		root:          dir,
		depth:         1,
		git:           runGit,
		retryAttempts: 2,
		retryDelay:    2 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the repos directory.
func (s *Store) Root() string { return s.root }

// Ensure materializes repoURL under the repos root and returns the repo
// name and absolute checkout path. An existing checkout is reused as-is;
// otherwise the repository is shallow-cloned, retrying transient failures
// with constant backoff.
func (s *Store) Ensure(ctx context.Context, repoURL string) (name, path string, err error) {
	cloneURL, name, err := NormalizeRepoURL(repoURL)
	if err != nil {
		return "", "", err
	}
	if err := scan.ValidateRepoName(name); err != nil {
		return "", "", err
	}
	if strings.TrimSpace(s.root) == "" {
		return "", "", fmt.Errorf("repostore: repos root is not configured")
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", "", fmt.Errorf("repostore: mkdir repos root: %w", err)
	}

	if existing, resolveErr := scan.ResolveRepo(s.root, name); resolveErr == nil {
		log.Printf("repostore: reusing checkout %s", existing)
		return name, existing, nil
	}

	path = filepath.Join(s.root, name)
	args := []string{"clone", "--depth", strconv.Itoa(s.depth), cloneURL, path}
	backoff := retry.WithMaxRetries(s.retryAttempts, retry.NewConstant(s.retryDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if cloneErr := s.git(ctx, args...); cloneErr != nil {
			// A partial clone directory would shadow the retry.
			_ = os.RemoveAll(path)
			return retry.RetryableError(cloneErr)
		}
		return nil
	})
	if err != nil {
		return "", "", fmt.Errorf("repostore: clone %s: %w", cloneURL, err)
	}
	log.Printf("repostore: cloned %s into %s", cloneURL, path)
	return name, path, nil
}

// NormalizeRepoURL canonicalizes github.com https and ssh forms and passes
// other https hosts through unchanged. The repo name is the last path
// segment with any .git suffix stripped.
func NormalizeRepoURL(raw string) (cloneURL, name string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("repostore: repo url required")
	}

	if strings.HasPrefix(raw, "git@github.com:") {
		repoPath := strings.TrimSuffix(strings.TrimPrefix(raw, "git@github.com:"), ".git")
		owner, repo, ok := splitOwnerRepo(repoPath)
		if !ok {
			return "", "", fmt.Errorf("repostore: invalid github repo url %q", raw)
		}
		return fmt.Sprintf("git@github.com:%s/%s.git", owner, repo), repo, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("repostore: invalid repo url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", "", fmt.Errorf("repostore: unsupported url scheme %q", u.Scheme)
	}
	if strings.EqualFold(strings.TrimSpace(u.Host), "github.com") {
		repoPath := strings.Trim(strings.TrimSuffix(u.Path, ".git"), "/")
		owner, repo, ok := splitOwnerRepo(repoPath)
		if !ok {
			return "", "", fmt.Errorf("repostore: invalid github repo url %q", raw)
		}
		return fmt.Sprintf("https://github.com/%s/%s.git", owner, repo), repo, nil
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	last := strings.TrimSuffix(segments[len(segments)-1], ".git")
	if last == "" {
		return "", "", fmt.Errorf("repostore: cannot derive repo name from %q", raw)
	}
	return raw, last, nil
}

func splitOwnerRepo(repoPath string) (owner, repo string, ok bool) {
	parts := strings.Split(strings.Trim(repoPath, "/"), "/")
	if len(parts) < 2 {
		return "", "", false
	}
	owner = strings.TrimSpace(parts[0])
	repo = strings.TrimSpace(parts[1])
	if owner == "" || repo == "" {
		return "", "", false
	}
	return owner, repo, true
}
