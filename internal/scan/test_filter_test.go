package scan

import (
	"slices"
	"testing"
)

func TestFilesWithExtensions(t *testing.T) {
	root := t.TempDir()
	write(t, root, "main.go", "dummy")
	write(t, root, "helper.GO", "dummy")
	write(t, root, "README.md", "dummy")
	write(t, root, "lib/util.ts", "dummy")
	write(t, root, "lib/util.go", "dummy")
	write(t, root, "vendor/skip.go", "dummy")

	files, err := FilesWithExtensions(root, []string{".go", "TS"}, Options{})
	if err != nil {
		t.Fatalf("FilesWithExtensions: %v", err)
	}

	want := []string{"helper.GO", "lib/util.go", "lib/util.ts", "main.go"}
	if !slices.Equal(files, want) {
		t.Fatalf("files=%v want=%v", files, want)
	}
}

func TestFilesWithExtensions_Empty(t *testing.T) {
	files, err := FilesWithExtensions(t.TempDir(), nil, Options{})
	if err != nil {
		t.Fatalf("FilesWithExtensions: %v", err)
	}
	if files != nil {
		t.Fatalf("files=%v want nil", files)
	}
}
