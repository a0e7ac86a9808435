package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"repolens/internal/safeio"
)

// ValidateRepoName rejects names that are empty, relative markers, or
// contain path separators. Checkout directories are always a single
// segment under the repos root.
func ValidateRepoName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("scan: repo name is required")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("scan: invalid repo name %q", name)
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("scan: repo name %q must not contain path separators or ..", name)
	}
	return nil
}

// ResolveRepo converts a single-segment repo name into an absolute path
// under reposDir. The directory must already exist.
func ResolveRepo(reposDir, name string) (string, error) {
	if err := ValidateRepoName(name); err != nil {
		return "", err
	}
	if strings.TrimSpace(reposDir) == "" {
		return "", errors.New("scan: repos dir is not configured")
	}
	baseAbs, err := filepath.Abs(reposDir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(baseAbs, strings.TrimSpace(name))
	if !safeio.HasPathPrefix(path, baseAbs) {
		return "", fmt.Errorf("scan: repo %q escapes repos dir %s", name, baseAbs)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("scan: repo %q not found under %s: %w", name, baseAbs, err)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("scan: repo %q is not a directory", name)
	}
	return path, nil
}
