package analyzer

import (
	"log"
	"strings"

	"repolens/internal/safeio"
)

// SummarizeStructure mirrors the directory tree as nested maps. Each
// subdirectory recurses; a file appears with a nil value only when its name
// ends with a summarized extension. A ReadDir failure records the error
// message in place of that subtree and leaves the rest of the tree intact.
func (a *Analyzer) SummarizeStructure(root string) map[string]any {
	fsys, err := safeio.NewSafeFS(root)
	if err != nil {
		log.Printf("analyzer: structure root %s: %v", root, err)
		return map[string]any{}
	}
	node, err := a.summarizeDir(fsys, ".")
	if err != nil {
		log.Printf("analyzer: structure of %s: %v", root, err)
		return map[string]any{}
	}
	return node
}

func (a *Analyzer) summarizeDir(fsys *safeio.SafeFS, rel string) (map[string]any, error) {
	entries, err := fsys.ReadDir(rel)
	if err != nil {
		return nil, err
	}
	node := map[string]any{}
	for _, e := range entries {
		name := e.Name()
		child := name
		if rel != "." {
			child = rel + "/" + name
		}
		if e.IsDir() {
			sub, err := a.summarizeDir(fsys, child)
			if err != nil {
				log.Printf("analyzer: structure of %s: %v", child, err)
				node[name] = err.Error()
				continue
			}
			node[name] = sub
			continue
		}
		if hasStructureExt(name) {
			node[name] = nil
		}
	}
	return node, nil
}

func hasStructureExt(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range structureExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
