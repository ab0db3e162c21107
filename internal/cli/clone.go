package cli

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/spf13/cobra"

	"github.com/act3-ai/gitkit/internal/logutil"
	"github.com/act3-ai/gitkit/internal/progress"
)

func newCloneCmd(opts *options) *cobra.Command {
	var (
		bare   bool
		quiet  bool
		depth  int
		branch string
	)

	cmd := &cobra.Command{
		Use:   "clone URL [DIR]",
		Short: "Clone a repository, printing transfer progress",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			url := args[0]
			dir := defaultCloneDir(url)
			if len(args) > 1 {
				dir = args[1]
			}

			if slog.Default().Enabled(ctx, slog.LevelDebug) {
				logutil.InstallTransport(nil)
			}

			cloneOpts := &gogit.CloneOptions{
				URL:   url,
				Depth: depth,
			}
			switch {
			case branch == "":
			case strings.HasPrefix(branch, "refs/"):
				cloneOpts.ReferenceName = plumbing.ReferenceName(branch)
			default:
				cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(branch)
			}
			if !quiet {
				w := progress.NewWriter(progressPrinter(cmd.ErrOrStderr()))
				defer w.Close()
				cloneOpts.Progress = w
			}

			slog.InfoContext(ctx, "cloning repository", "url", url, "dir", dir)
			if _, err := gogit.PlainCloneContext(ctx, dir, bare, cloneOpts); err != nil {
				return fmt.Errorf("cloning %s: %w", url, err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&bare, "bare", false, "Create a bare repository")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print progress")
	cmd.Flags().IntVar(&depth, "depth", 0, "Truncate history to `N` commits")
	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Check out `BRANCH` instead of the remote HEAD")

	return cmd
}

// defaultCloneDir is the last path element of url without ".git".
func defaultCloneDir(url string) string {
	url = strings.TrimRight(url, "/")
	if i := strings.LastIndexAny(url, ":/"); i >= 0 {
		url = url[i+1:]
	}
	return strings.TrimSuffix(path.Base(url), ".git")
}
