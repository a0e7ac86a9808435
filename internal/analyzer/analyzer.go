package analyzer

import (
	"fmt"
	"os"

	"repolens/internal/scan"
)

// Limits bounds how much of the tree the content passes read.
type Limits struct {
	// ContentSizeCeiling is the exclusive byte bound for technology
	// content scanning; larger files are path-matched only.
	ContentSizeCeiling int64
	// ArchContentSizeCeiling is the exclusive byte bound for architecture
	// content sampling.
	ArchContentSizeCeiling int64
	// ArchSampleCap is the maximum number of files the architecture
	// detector reads.
	ArchSampleCap int
}

// DefaultLimits matches the stock analyzer behavior.
func DefaultLimits() Limits {
	return Limits{
		ContentSizeCeiling:     500_000,
		ArchContentSizeCeiling: 100_000,
		ArchSampleCap:          100,
	}
}

// archSampleExts are the file types the architecture detector reads.
var archSampleExts = []string{".md", ".txt", ".py", ".js", ".java", ".go", ".rs", ".cs", ".php"}

// structureExts are the file types kept in the directory structure summary.
var structureExts = []string{
	".py", ".js", ".java", ".go", ".rs", ".cs", ".php", ".rb",
	".md", ".txt", ".json", ".yml", ".yaml",
}

// Analyzer runs the scan/match/aggregate pipeline over a repository root.
// It is stateless across runs and safe for concurrent use.
type Analyzer struct {
	tables Tables
	limits Limits
	opts   scan.Options
}

// New builds an Analyzer from the given tables and limits.
func New(tables Tables, limits Limits) *Analyzer {
	return &Analyzer{tables: tables, limits: limits}
}

// NewDefault builds an Analyzer with the stock tables and limits.
func NewDefault() *Analyzer {
	return New(DefaultTables(), DefaultLimits())
}

// Report is the aggregate result of one analysis run. All score maps are
// sparse: a technology or style with zero hits is absent.
type Report struct {
	RepoURL  string `json:"repo_url,omitempty"`
	RepoName string `json:"repo_name,omitempty"`

	FileExtensions       map[string]int `json:"file_extensions"`
	ConfigFiles          map[string]any `json:"config_files"`
	Technologies         map[string]int `json:"technologies"`
	ArchitecturePatterns map[string]int `json:"architecture_patterns"`
	DirectoryStructure   map[string]any `json:"directory_structure"`
}

// Analyze runs every pipeline stage against root and combines the results.
// Each stage is an independent read of the same tree. An unreadable root is
// the only fatal error; everything below it degrades per stage.
func (a *Analyzer) Analyze(root string) (*Report, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("analyzer: root not readable: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("analyzer: root %s is not a directory", root)
	}

	return &Report{
		FileExtensions:       a.CountExtensions(root),
		ConfigFiles:          a.DetectConfigs(root),
		Technologies:         a.ScoreTechnologies(root),
		ArchitecturePatterns: a.DetectArchitecture(root),
		DirectoryStructure:   a.SummarizeStructure(root),
	}, nil
}
