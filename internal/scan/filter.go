package scan

import (
	"sort"
	"strings"
)

// FilesWithExtensions walks root and returns repo-relative paths of files
// whose extensions match any entry in exts. Extensions are case-insensitive
// and may be given with or without a leading dot.
func FilesWithExtensions(root string, exts []string, opts Options) ([]string, error) {
	allowed := NormalizeExts(exts)
	if len(allowed) == 0 {
		return nil, nil
	}

	var files []string
	err := ScanWithOptions(root, opts, func(fv FileVisit) {
		if fv.IsDir || fv.Err != nil {
			return
		}
		if _, ok := allowed[fv.Ext]; !ok {
			return
		}
		files = append(files, fv.Path)
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// NormalizeExts lowercases extensions and ensures each has a leading dot,
// dropping empty entries. Returns nil when nothing remains.
func NormalizeExts(exts []string) map[string]struct{} {
	if len(exts) == 0 {
		return nil
	}
	allowed := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = struct{}{}
	}
	if len(allowed) == 0 {
		return nil
	}
	return allowed
}
