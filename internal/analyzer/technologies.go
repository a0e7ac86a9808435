package analyzer

import (
	"log"
	"strings"

	"repolens/internal/safeio"
	"repolens/internal/scan"
)

// ScoreTechnologies accumulates keyword hits per technology. Every keyword
// that is a case-insensitive substring of a file's relative path adds 1;
// for files under the content size ceiling, every non-overlapping content
// occurrence adds 1 more. Path and content hits share one counter, so a
// keyword-dense file weighs its technology up. Files at or above the
// ceiling contribute via their path only.
func (a *Analyzer) ScoreTechnologies(root string) map[string]int {
	scores := map[string]int{}
	fsys, err := safeio.NewSafeFS(root)
	if err != nil {
		log.Printf("analyzer: technologies root %s: %v", root, err)
		fsys = nil
	}
	_ = scan.ScanWithOptions(root, a.opts, func(fv scan.FileVisit) {
		if fv.IsDir || fv.Err != nil {
			return
		}

		lowerPath := strings.ToLower(fv.Path)
		for tech, keywords := range a.tables.TechKeywords {
			for _, kw := range keywords {
				if strings.Contains(lowerPath, kw) {
					scores[tech]++
				}
			}
		}

		if fv.Size >= a.limits.ContentSizeCeiling {
			return
		}
		content, ok := readTextLower(fsys, fv.Path)
		if !ok {
			return
		}
		for tech, keywords := range a.tables.TechKeywords {
			for _, kw := range keywords {
				if n := strings.Count(content, kw); n > 0 {
					scores[tech] += n
				}
			}
		}
	})
	return scores
}

// readTextLower reads a file confined to the scan root as lowercase text,
// dropping invalid UTF-8 byte sequences. A read failure is logged and
// reported as not-ok; the caller falls back to path-only matching.
func readTextLower(fsys *safeio.SafeFS, rel string) (string, bool) {
	if fsys == nil {
		return "", false
	}
	b, err := fsys.ReadFile(rel)
	if err != nil {
		log.Printf("analyzer: read %s: %v", rel, err)
		return "", false
	}
	return strings.ToLower(strings.ToValidUTF8(string(b), "")), true
}
