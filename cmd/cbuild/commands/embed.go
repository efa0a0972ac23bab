package commands

import (
	"github.com/spf13/cobra"
	"go.chol.dev/cbuild/internal/app"
)

func (c *CLI) newEmbedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed <file>",
		Short: "Embed a file into a C header",
		Long: "Embed a file into a C header as a static array. The generated " +
			"header is included with EMBED_NAME defined to the variable name.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("output")
			asBytes, _ := cmd.Flags().GetBool("bytes")
			return c.app.Embed(args[0], out, app.EmbedOptions{Bytes: asBytes})
		},
	}
	cmd.Flags().StringP("output", "o", "", "Path of the generated header")
	_ = cmd.MarkFlagRequired("output")
	cmd.Flags().Bool("bytes", false, "Embed as an unsigned char array instead of a string array")
	return cmd
}
