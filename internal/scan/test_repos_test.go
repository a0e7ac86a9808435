package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveRepo(t *testing.T) {
	repos := t.TempDir()
	if err := os.MkdirAll(filepath.Join(repos, "demo"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := ResolveRepo(repos, "demo")
	if err != nil {
		t.Fatalf("ResolveRepo: %v", err)
	}
	want, _ := filepath.Abs(filepath.Join(repos, "demo"))
	if got != want {
		t.Fatalf("path=%s want=%s", got, want)
	}
}

func TestResolveRepo_Rejections(t *testing.T) {
	repos := t.TempDir()
	for _, name := range []string{"", ".", "..", "a/b", `a\b`, "../escape"} {
		if _, err := ResolveRepo(repos, name); err == nil {
			t.Fatalf("name %q: expected error", name)
		}
	}
	if _, err := ResolveRepo(repos, "missing"); err == nil {
		t.Fatal("missing repo: expected error")
	}
}
