package commands

import (
	"github.com/spf13/cobra"
	"go.chol.dev/cbuild/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run an incremental build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")
			compiler, _ := cmd.Flags().GetString("compiler")
			return c.app.Build(cmd.Context(), configPath, app.BuildOptions{
				Force:    force,
				Compiler: compiler,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Recompile every source, bypassing the cache")
	cmd.Flags().String("compiler", "", "Override the configured compiler executable")
	return cmd
}
