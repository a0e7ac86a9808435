package analyzer

import (
	"log"
	"strings"

	"repolens/internal/scan"
)

// CountExtensions tallies file extensions under root. Keys are lowercase
// without the leading dot; files without an extension are ignored.
func (a *Analyzer) CountExtensions(root string) map[string]int {
	counts := map[string]int{}
	visits, errCh := scan.Stream(root, a.opts, true)
	for fv := range visits {
		if fv.Err != nil {
			continue
		}
		ext := strings.TrimPrefix(fv.Ext, ".")
		if ext == "" {
			continue
		}
		counts[ext]++
	}
	if err := <-errCh; err != nil {
		log.Printf("analyzer: count extensions in %s: %v", root, err)
	}
	return counts
}
