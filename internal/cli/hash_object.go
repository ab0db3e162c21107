package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/spf13/cobra"

	"github.com/act3-ai/gitkit/internal/blob"
)

func newHashObjectCmd(opts *options) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "hash-object FILE",
		Short: "Compute the blob id of a file, optionally storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening file: %w", err)
			}
			defer f.Close()
			fi, err := f.Stat()
			if err != nil {
				return fmt.Errorf("inspecting file: %w", err)
			}

			var h plumbing.Hash
			if write {
				repo, err := opts.repository()
				if err != nil {
					return err
				}
				w := blob.NewWriter(repo.Storer())
				w.Interval = opts.cfg.ProgressInterval.Duration
				w.Progress = progressPrinter(cmd.ErrOrStderr())
				h, err = w.Write(cmd.Context(), f, fi.Size())
				if err != nil {
					return err //nolint:wrapcheck
				}
			} else {
				hasher := plumbing.NewHasher(plumbing.BlobObject, fi.Size())
				if _, err := io.Copy(hasher, f); err != nil {
					return fmt.Errorf("reading file: %w", err)
				}
				h = hasher.Sum()
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), h)
			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the blob into the repository")

	return cmd
}
