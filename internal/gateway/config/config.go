package config

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	// ReposDir is where remote repositories are checked out.
	ReposDir string

	// Report cache bounds.
	CacheEntries int
	CacheTTL     time.Duration

	// ShutdownGrace bounds how long an exiting server waits for in-flight
	// requests to drain.
	ShutdownGrace time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:         *port,
		Env:          env,
		ReposDir:     resolveReposDir(),
		CacheEntries: intEnv("ANALYSIS_CACHE_ENTRIES", 128),
		CacheTTL:     durationEnv("ANALYSIS_CACHE_TTL", 15*time.Minute),

		ShutdownGrace: durationEnv("SHUTDOWN_GRACE", 5*time.Second),
	}, nil
}

func resolveReposDir() string {
	if dir := strings.TrimSpace(os.Getenv("REPOLENS_REPOS_DIR")); dir != "" {
		return dir
	}
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, "repos")
	}
	return filepath.Join(".", "repos")
}

func intEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
