package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mvnconf/internal/app"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective resolver options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return c.app.Show(cmd.Context(), cmd.OutOrStdout(), requestFromFlags(cmd), format)
		},
	}
	cmd.Flags().StringP("format", "f", app.FormatYAML, "Output format: yaml or json")
	return cmd
}
