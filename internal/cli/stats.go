package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/act3-ai/gitkit/internal/diffstat"
	"github.com/act3-ai/gitkit/internal/revision"
	"github.com/act3-ai/gitkit/pkg/gittypes"
)

func newStatsCmd(opts *options) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "stats [REV]",
		Short: "Print line change statistics of a commit",
		Long: `Print the lines inserted and deleted by REV, per file and in total.

Commits are compared with their first parent, trees with the empty tree.
With --from, the changes between two commits or trees are printed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, err := opts.repository()
			if err != nil {
				return err
			}

			var spec string
			if len(args) > 0 {
				spec = args[0]
			}
			to, err := revision.Resolve(ctx, repo, spec)
			if err != nil {
				return err //nolint:wrapcheck
			}

			var stats gittypes.Stats
			comment := to.String()
			if from == "" {
				stats, err = diffstat.ForSource(ctx, to)
			} else {
				var base *revision.Revision
				base, err = revision.Resolve(ctx, repo, from)
				if err != nil {
					return err //nolint:wrapcheck
				}
				comment = fmt.Sprintf("%s..%s", base, to)
				stats, err = statsBetween(cmd, base, to)
			}
			if err != nil {
				return err //nolint:wrapcheck
			}

			return writeOutput(cmd.OutOrStdout(), opts.cfg.OutputFormat, stats, comment)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Compare with `REV` instead of the parent")

	return cmd
}

func statsBetween(cmd *cobra.Command, from, to *revision.Revision) (gittypes.Stats, error) {
	s := to.Repo().Storer()
	a, err := gittypes.ResolveTreeIsh(s, from.ID())
	if err != nil {
		return gittypes.Stats{}, err //nolint:wrapcheck
	}
	b, err := gittypes.ResolveTreeIsh(s, to.ID())
	if err != nil {
		return gittypes.Stats{}, err //nolint:wrapcheck
	}
	return diffstat.Between(cmd.Context(), a, b) //nolint:wrapcheck
}
