package analyzer

import (
	"encoding/json"
	"log"
	"path"
	"strings"

	"repolens/internal/safeio"
	"repolens/internal/scan"
)

// DetectConfigs matches known configuration filenames and path fragments
// against every file path under root. Recognized dependency manifests are
// additionally parsed; a parse failure is logged and leaves only the
// signature label in place.
func (a *Analyzer) DetectConfigs(root string) map[string]any {
	found := map[string]any{}
	fsys, err := safeio.NewSafeFS(root)
	if err != nil {
		log.Printf("analyzer: configs root %s: %v", root, err)
		fsys = nil
	}
	_ = scan.ScanWithOptions(root, a.opts, func(fv scan.FileVisit) {
		if fv.IsDir || fv.Err != nil {
			return
		}
		for sig, label := range a.tables.ConfigSignatures {
			if !strings.Contains(fv.Path, sig) {
				continue
			}
			found[sig] = label

			if fsys == nil {
				continue
			}
			switch path.Base(fv.Path) {
			case "package.json":
				deps, err := parseNodeDependencies(fsys, fv.Path)
				if err != nil {
					log.Printf("analyzer: parse %s: %v", fv.Path, err)
					continue
				}
				found["node_dependencies"] = deps
			case "requirements.txt":
				deps, err := parsePythonDependencies(fsys, fv.Path)
				if err != nil {
					log.Printf("analyzer: parse %s: %v", fv.Path, err)
					continue
				}
				found["python_dependencies"] = deps
			}
		}
	})
	return found
}

// parseNodeDependencies merges the dependencies and devDependencies maps of
// a package.json into one name->version map.
func parseNodeDependencies(fsys *safeio.SafeFS, rel string) (map[string]string, error) {
	b, err := fsys.ReadFile(rel)
	if err != nil {
		return nil, err
	}
	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(b, &pkg); err != nil {
		return nil, err
	}
	deps := map[string]string{}
	for name, ver := range pkg.Dependencies {
		deps[name] = ver
	}
	for name, ver := range pkg.DevDependencies {
		deps[name] = ver
	}
	return deps, nil
}

// parsePythonDependencies reads a pinned requirements file, skipping blank
// and comment lines and splitting each remaining line on the first of
// '=', '<', '>' to isolate the package name.
func parsePythonDependencies(fsys *safeio.SafeFS, rel string) (map[string]bool, error) {
	b, err := fsys.ReadFile(rel)
	if err != nil {
		return nil, err
	}
	deps := map[string]bool{}
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexAny(line, "=<>"); i >= 0 {
			line = line[:i]
		}
		name := strings.TrimSpace(line)
		if name != "" {
			deps[name] = true
		}
	}
	return deps, nil
}
