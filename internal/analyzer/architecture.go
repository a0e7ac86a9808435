package analyzer

import (
	"log"
	"strings"

	"repolens/internal/safeio"
	"repolens/internal/scan"
)

var microserviceDirs = []string{"services", "microservices", "api-gateway"}

// DetectArchitecture scores architectural styles from two evidence tiers:
// fixed bonuses for directory shapes at the top level, plus keyword
// occurrence counts over a bounded sample of file contents. The two tiers
// are additive into the same keys; content density can outweigh structure,
// which is an accepted property of the heuristic.
func (a *Analyzer) DetectArchitecture(root string) map[string]int {
	scores := map[string]int{}
	fsys, err := safeio.NewSafeFS(root)
	if err != nil {
		log.Printf("analyzer: architecture root %s: %v", root, err)
		return scores
	}
	a.scoreDirectoryShape(fsys, scores)
	a.scoreArchContent(root, fsys, scores)
	return scores
}

func (a *Analyzer) scoreDirectoryShape(fsys *safeio.SafeFS, scores map[string]int) {
	entries, err := fsys.ReadDir(".")
	if err != nil {
		log.Printf("analyzer: read top-level of %s: %v", fsys.Root(), err)
		return
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	listing := strings.ToLower(strings.Join(names, "\n"))

	if strings.Contains(listing, "model") && strings.Contains(listing, "view") && strings.Contains(listing, "controller") {
		scores["mvc"] += 10
	} else if dirExists(fsys, "controllers") && dirExists(fsys, "models") {
		scores["mvc"] += 5
	}

	for _, d := range microserviceDirs {
		if strings.Contains(listing, d) {
			scores["microservices"] += 5
			break
		}
	}
}

func (a *Analyzer) scoreArchContent(root string, fsys *safeio.SafeFS, scores map[string]int) {
	files, err := scan.FilesWithExtensions(root, archSampleExts, a.opts)
	if err != nil {
		log.Printf("analyzer: sample files in %s: %v", root, err)
		return
	}
	sampled := 0
	for _, rel := range files {
		if sampled >= a.limits.ArchSampleCap {
			break
		}
		fi, err := fsys.Stat(rel)
		if err != nil || fi.Size() >= a.limits.ArchContentSizeCeiling {
			continue
		}
		content, ok := readTextLower(fsys, rel)
		if !ok {
			continue
		}
		for pattern, keywords := range a.tables.ArchitecturePatterns {
			for _, kw := range keywords {
				if n := strings.Count(content, kw); n > 0 {
					scores[pattern] += n
				}
			}
		}
		sampled++
	}
}

func dirExists(fsys *safeio.SafeFS, name string) bool {
	fi, err := fsys.Stat(name)
	return err == nil && fi.IsDir()
}
