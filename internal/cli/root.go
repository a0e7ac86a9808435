package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the repolens command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "repolens",
		Short: "Guess a repository's technology stack and architecture",
		Long: `repolens clones a remote repository, scans its file tree against
static keyword dictionaries, and reports the likely technology stack and
architectural style as JSON.`,
		SilenceUsage: true,
	}
	root.AddCommand(newAnalyzeCmd())
	return root
}

// Execute runs the CLI and returns its exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}
