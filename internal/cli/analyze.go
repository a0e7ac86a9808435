package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"repolens/internal/analyzer"
	"repolens/internal/repostore"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		outFile  string
		reposDir string
	)

	cmd := &cobra.Command{
		Use:   "analyze <repo-url>",
		Short: "Clone a repository and print its analysis report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				cancel()
			}()

			return runAnalyze(ctx, args[0], reposDir, outFile, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the report JSON to a file instead of stdout")
	cmd.Flags().StringVar(&reposDir, "repos-dir", "", "directory for repository checkouts (default ./repos)")
	return cmd
}

func runAnalyze(ctx context.Context, repoURL, reposDir, outFile string, stdout io.Writer) error {
	if reposDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		reposDir = filepath.Join(wd, "repos")
	}

	repos := repostore.New(reposDir)
	name, root, err := repos.Ensure(ctx, repoURL)
	if err != nil {
		return err
	}

	report, err := analyzer.NewDefault().Analyze(root)
	if err != nil {
		return err
	}
	report.RepoURL = repoURL
	report.RepoName = name

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, append(out, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outFile, err)
		}
		fmt.Fprintf(stdout, "report written to %s\n", outFile)
		return nil
	}
	_, err = stdout.Write(append(out, '\n'))
	return err
}
