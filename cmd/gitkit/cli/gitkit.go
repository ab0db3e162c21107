// Package cli exports the gitkit command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/act3-ai/gitkit/internal/cli"
)

// NewCLI creates the base gitkit command.
func NewCLI(version string) *cobra.Command {
	return cli.NewCLI(version)
}
