package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the effective resolver options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			probe, _ := cmd.Flags().GetBool("probe")
			return c.app.Check(cmd.Context(), cmd.OutOrStdout(), requestFromFlags(cmd), probe)
		},
	}
	cmd.Flags().BoolP("probe", "p", false, "Send a HEAD request to every remote repository")
	return cmd
}
