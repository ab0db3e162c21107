// Package cli defines CLI commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/act3-ai/go-common/pkg/config"
	"github.com/act3-ai/go-common/pkg/logger"
	gogit "github.com/go-git/go-git/v5"
	"github.com/spf13/cobra"

	"github.com/act3-ai/gitkit/pkg/apis"
	"github.com/act3-ai/gitkit/pkg/apis/gitkit.act3-ai.io/v1alpha1"
	"github.com/act3-ai/gitkit/pkg/git"
)

// options are shared by every command.
type options struct {
	dir         string
	verbosity   int
	configFiles []string

	cfg *v1alpha1.Configuration
}

// NewCLI creates the base gitkit command.
func NewCLI(version string) *cobra.Command {
	opts := &options{}

	// cmd represents the base command when called without any subcommands
	cmd := &cobra.Command{
		Use:          "gitkit",
		Short:        "Inspect git objects, statistics and configuration.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd, opts.verbosity)
			slog.SetDefault(log)
			cmd.SetContext(logger.NewContext(cmd.Context(), log))

			cfg, err := opts.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "Run as if started in `DIR`")
	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase log verbosity, repeatable")
	cmd.PersistentFlags().StringSliceVar(&opts.configFiles, "config",
		config.EnvPathOr("GITKIT_CONFIG", config.DefaultConfigSearchPath("gitkit", "config.yaml")),
		"Configuration file locations, later files override earlier ones")

	cmd.AddCommand(
		newKindCmd(opts),
		newStatsCmd(opts),
		newConfigPathCmd(opts),
		newConfigGetCmd(opts),
		newCloneCmd(opts),
		newHashObjectCmd(opts),
	)

	return cmd
}

// newLogger logs warnings by default, each -v lowers the level by one step.
func newLogger(cmd *cobra.Command, verbosity int) *slog.Logger {
	level := slog.LevelWarn - slog.Level(4*verbosity)
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// loadConfig loads Configuration from the configuration files.
func (o *options) loadConfig(ctx context.Context) (*v1alpha1.Configuration, error) {
	c := &v1alpha1.Configuration{}

	slog.DebugContext(ctx, "searching for configuration files", slog.Any("cfgFiles", o.configFiles))

	if err := config.Load(slog.Default(), apis.NewScheme(), c, o.configFiles); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	v1alpha1.ConfigurationDefault(c)
	if err := c.Validate(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	slog.DebugContext(ctx, "using config", slog.Any("configuration", c))
	return c, nil
}

// repository opens the repository containing the -C directory.
func (o *options) repository() (git.Repository, error) {
	repo, err := git.Open(o.dir)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return repo, nil
}

// gitDir returns the .git directory of the repository containing the -C
// directory, or "" outside of a repository.
func (o *options) gitDir(ctx context.Context) (string, error) {
	repo, err := o.repository()
	switch {
	case errors.Is(err, gogit.ErrRepositoryNotExists):
		slog.DebugContext(ctx, "not in a repository", "dir", o.dir)
		return "", nil
	case err != nil:
		return "", err
	}
	return repo.GitDir(), nil
}
