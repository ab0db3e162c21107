package cli

import (
	"fmt"

	"github.com/go-git/go-git/v5/config"
	"github.com/spf13/cobra"

	"github.com/act3-ai/gitkit/internal/gitconfig"
	"github.com/act3-ai/gitkit/pkg/gittypes"
)

func newConfigPathCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "config-path [LEVEL]",
		Short:     "Print the git configuration file of each level",
		Long:      fmt.Sprintf("Print the git configuration file of LEVEL, one of %v, or of every level.", gittypes.ConfigLevels),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: levelArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			levels := gittypes.ConfigLevels[:]
			if len(args) > 0 {
				level, err := gittypes.ParseConfigLevel(args[0])
				if err != nil {
					return err //nolint:wrapcheck
				}
				levels = []gittypes.ConfigLevel{level}
			}

			gitDir, err := opts.gitDir(ctx)
			if err != nil {
				return err
			}

			for _, level := range levels {
				p, err := gitconfig.Path(level, gitDir)
				if err != nil {
					if len(levels) > 1 {
						// repository level outside of a repository
						continue
					}
					return err //nolint:wrapcheck
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", level, p); err != nil {
					return err //nolint:wrapcheck
				}
			}
			return nil
		},
	}

	return cmd
}

func newConfigGetCmd(opts *options) *cobra.Command {
	var levelFlag string

	cmd := &cobra.Command{
		Use:   "config-get SECTION[.SUBSECTION].KEY",
		Short: "Print a git configuration value",
		Long: `Print a git configuration value read from one level, or from every level
merged when no level is given. Later levels override earlier ones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			level := opts.cfg.ConfigLevel
			if levelFlag != "" {
				l, err := gittypes.ParseConfigLevel(levelFlag)
				if err != nil {
					return err //nolint:wrapcheck
				}
				level = l
			}

			gitDir, err := opts.gitDir(ctx)
			if err != nil {
				return err
			}

			var cfg *config.Config
			if level == "" {
				cfg, err = gitconfig.Merged(gitDir)
			} else {
				cfg, err = gitconfig.Read(level, gitDir)
			}
			if err != nil {
				return err //nolint:wrapcheck
			}

			v, err := gitconfig.Get(cfg, args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().StringVar(&levelFlag, "level", "", fmt.Sprintf("Read a single `LEVEL`, one of %v", gittypes.ConfigLevels))

	return cmd
}

func levelArgs() []string {
	out := make([]string, 0, len(gittypes.ConfigLevels))
	for _, l := range gittypes.ConfigLevels {
		out = append(out, l.String())
	}
	return out
}
