package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeStructure(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "src/app.py", "x")
	writeFixture(t, root, "src/app.pyc", "x")
	writeFixture(t, root, "docs/guide.md", "x")
	writeFixture(t, root, "image.png", "x")
	writeFixture(t, root, "config.yaml", "x")
	mkdirFixture(t, root, "empty")

	tree := NewDefault().SummarizeStructure(root)

	assert.Equal(t, map[string]any{
		"src":         map[string]any{"app.py": nil},
		"docs":        map[string]any{"guide.md": nil},
		"empty":       map[string]any{},
		"config.yaml": nil,
	}, tree)
}

func TestSummarizeStructure_UnreadableSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	root := t.TempDir()
	writeFixture(t, root, "src/app.py", "x")
	writeFixture(t, root, "locked/secret.py", "x")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	tree := NewDefault().SummarizeStructure(root)

	assert.Equal(t, map[string]any{"app.py": nil}, tree["src"])
	msg, ok := tree["locked"].(string)
	require.True(t, ok, "unreadable subtree should collapse to an error message, got %T", tree["locked"])
	assert.Contains(t, msg, "permission denied")
}

func TestSummarizeStructure_RecursesDeep(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "a/b/c/deep.go", "x")

	tree := NewDefault().SummarizeStructure(root)

	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": map[string]any{"deep.go": nil},
			},
		},
	}, tree)
}
