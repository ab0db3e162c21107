package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/act3-ai/gitkit/internal/revision"
	"github.com/act3-ai/gitkit/pkg/gittypes"
)

func newKindCmd(opts *options) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "kind REV",
		Short: "Print the kind of object a revision names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, err := opts.repository()
			if err != nil {
				return err
			}
			rev, err := revision.Resolve(ctx, repo, args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}
			obj, err := rev.Object()
			if err != nil {
				return err //nolint:wrapcheck
			}

			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), obj.Kind())
				return err //nolint:wrapcheck
			}
			return writeOutput(cmd.OutOrStdout(), opts.cfg.OutputFormat, describeObject(obj), rev.Spec)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print the kind only")

	return cmd
}

// describeObject keys the object's id by its identifying attribute.
func describeObject(obj gittypes.CommitIsh) map[string]string {
	out := map[string]string{"kind": obj.Kind().String()}
	if ida, ok := obj.(gittypes.HasIDAttribute); ok {
		out[ida.IDAttribute()] = obj.ID().String()
	}
	return out
}
