package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultIgnoreDirs are directory names skipped by every walk: version
// control metadata and dependency/build caches.
var DefaultIgnoreDirs = []string{
	".git", ".hg", ".svn",
	"node_modules", "vendor", "target", "build", ".next", ".cache",
}

// Options controls a walk.
type Options struct {
	// IgnoreDirs overrides DefaultIgnoreDirs when non-nil.
	IgnoreDirs []string
	// MaxDepth limits recursion below root; 0 means unbounded.
	// Depth 1 visits only the root's direct children.
	MaxDepth int
}

func (o Options) ignoreSet() map[string]struct{} {
	dirs := o.IgnoreDirs
	if dirs == nil {
		dirs = DefaultIgnoreDirs
	}
	set := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		set[d] = struct{}{}
	}
	return set
}

// FileVisit carries per-entry metadata to user callbacks.
type FileVisit struct {
	// Repo-relative path using forward slashes (e.g., "src/app.go").
	Path string
	// Absolute filesystem path.
	AbsPath string
	// True when the entry is a directory.
	IsDir bool
	// Lowercased extension (e.g., ".go", ".md"); empty for dirs or no-ext files.
	Ext string
	// File size in bytes; 0 for dirs or when stat fails.
	Size int64
	// Non-nil when this entry is a read failure instead of a real file or
	// directory. The walk continues past it; consumers decide whether to
	// skip or record the error.
	Err error
}

// VisitFunc is invoked for every visited entry, including error entries.
// Use a closure to accumulate custom stats (e.g., extension counts).
type VisitFunc func(f FileVisit)

// ScanWithOptions walks root and invokes cb for each entry. Ignored
// directories are pruned whole. A read error below root is reported as a
// FileVisit with Err set and does not abort the walk; only a root that
// cannot be read at all returns an error.
func ScanWithOptions(root string, opts Options, cb VisitFunc) error {
	rootClean := filepath.Clean(root)
	if _, err := os.Stat(rootClean); err != nil {
		return err
	}
	ignore := opts.ignoreSet()

	return filepath.WalkDir(rootClean, func(path string, d fs.DirEntry, err error) error {
		rel, relErr := filepath.Rel(rootClean, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if err != nil {
			if cb != nil {
				cb(FileVisit{Path: rel, AbsPath: path, Err: err})
			}
			return nil
		}
		if d.IsDir() {
			if path != rootClean {
				if _, skip := ignore[d.Name()]; skip {
					return filepath.SkipDir
				}
				if opts.MaxDepth > 0 && depthOf(rel) >= opts.MaxDepth {
					return filepath.SkipDir
				}
			}
			if rel == "." {
				return nil
			}
		}

		ext := ""
		size := int64(0)
		if !d.IsDir() {
			ext = strings.ToLower(filepath.Ext(rel))
			if fi, e := os.Stat(path); e == nil {
				size = fi.Size()
			}
		}
		if cb != nil {
			cb(FileVisit{Path: rel, AbsPath: path, IsDir: d.IsDir(), Ext: ext, Size: size})
		}
		return nil
	})
}

// Scan walks root with default options.
func Scan(root string, cb VisitFunc) error {
	return ScanWithOptions(root, Options{}, cb)
}

func depthOf(rel string) int {
	if rel == "." || rel == "" {
		return 0
	}
	return strings.Count(rel, "/") + 1
}
