package analyzer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectArchitecture_MVCDirectories(t *testing.T) {
	root := t.TempDir()
	mkdirFixture(t, root, "models")
	mkdirFixture(t, root, "views")
	mkdirFixture(t, root, "controllers")

	scores := NewDefault().DetectArchitecture(root)
	assert.Equal(t, 10, scores["mvc"])
}

func TestDetectArchitecture_ControllersAndModelsOnly(t *testing.T) {
	root := t.TempDir()
	mkdirFixture(t, root, "controllers")
	mkdirFixture(t, root, "models")

	scores := NewDefault().DetectArchitecture(root)
	assert.Equal(t, 5, scores["mvc"])
}

func TestDetectArchitecture_Microservices(t *testing.T) {
	root := t.TempDir()
	mkdirFixture(t, root, "services")

	scores := NewDefault().DetectArchitecture(root)
	assert.Equal(t, 5, scores["microservices"])
}

func TestDetectArchitecture_ContentAddsToBonuses(t *testing.T) {
	root := t.TempDir()
	mkdirFixture(t, root, "services")
	writeFixture(t, root, "services/notes.txt", "microservice microservice")

	scores := NewDefault().DetectArchitecture(root)
	assert.Equal(t, 7, scores["microservices"])
}

func TestDetectArchitecture_SampleExtensionsOnly(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "pic.svg", "monolith monolith")

	scores := NewDefault().DetectArchitecture(root)
	_, ok := scores["monolith"]
	assert.False(t, ok, "non-sampled file types must not score")
}

func TestDetectArchitecture_ContentSizeCeiling(t *testing.T) {
	root := t.TempDir()
	content := strings.Repeat("monolith ", 100_000/len("monolith "))
	content += strings.Repeat("x", 100_000-len(content))
	writeFixture(t, root, "notes.txt", content)

	scores := NewDefault().DetectArchitecture(root)
	_, ok := scores["monolith"]
	assert.False(t, ok)
}

func TestDetectArchitecture_SampleCap(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 100; i++ {
		writeFixture(t, root, fmt.Sprintf("f%02d.txt", i), "filler")
	}
	// Sorts after the 100 filler files, so it is never sampled.
	writeFixture(t, root, "zz.txt", "monolith")

	scores := NewDefault().DetectArchitecture(root)
	_, ok := scores["monolith"]
	assert.False(t, ok, "files beyond the sample cap must not score")
}
