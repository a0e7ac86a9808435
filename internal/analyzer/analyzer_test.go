package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func mkdirFixture(t *testing.T, root, rel string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, rel), 0o755))
}

func TestAnalyze_CombinesAllDimensions(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "package.json", `{"dependencies":{"react":"^18.0.0"}}`)
	writeFixture(t, root, "src/index.jsx", "render stuff")

	report, err := NewDefault().Analyze(root)
	require.NoError(t, err)

	assert.Equal(t, 1, report.FileExtensions["json"])
	assert.Equal(t, 1, report.FileExtensions["jsx"])
	assert.Equal(t, "Node.js/JavaScript", report.ConfigFiles["package.json"])
	assert.Equal(t, map[string]string{"react": "^18.0.0"}, report.ConfigFiles["node_dependencies"])
	assert.GreaterOrEqual(t, report.Technologies["react"], 1)
	assert.NotNil(t, report.DirectoryStructure)
	assert.Empty(t, report.RepoURL)
}

func TestAnalyze_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "app.py", "flask flask flask")
	writeFixture(t, root, "requirements.txt", "flask==2.0.1")

	a := NewDefault()
	first, err := a.Analyze(root)
	require.NoError(t, err)
	second, err := a.Analyze(root)
	require.NoError(t, err)

	assert.Equal(t, first.FileExtensions, second.FileExtensions)
	assert.Equal(t, first.Technologies, second.Technologies)
	assert.Equal(t, first.DirectoryStructure, second.DirectoryStructure)
}

func TestAnalyze_SparseScores(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "notes.md", "nothing in particular")

	report, err := NewDefault().Analyze(root)
	require.NoError(t, err)

	for tech, score := range report.Technologies {
		assert.GreaterOrEqual(t, score, 1, "technology %s", tech)
	}
	for style, score := range report.ArchitecturePatterns {
		assert.GreaterOrEqual(t, score, 1, "style %s", style)
	}
}

func TestAnalyze_UnreadableRoot(t *testing.T) {
	_, err := NewDefault().Analyze(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestAnalyze_RootMustBeDirectory(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "f.txt", "x")
	_, err := NewDefault().Analyze(filepath.Join(root, "f.txt"))
	assert.Error(t, err)
}
