package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "Print the declared targets and their dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := c.app.Targets()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, t := range targets {
				fmt.Fprintf(out, "%d: %s\n", i, t.Name)
				if len(t.Inputs) == 0 && len(t.Dependencies) == 0 {
					fmt.Fprintln(out, "Does not depend on anything")
					continue
				}
				fmt.Fprintln(out, "Depends on:")
				if len(t.Inputs) > 0 {
					fmt.Fprintln(out, "  These files:")
					for _, f := range t.Inputs {
						fmt.Fprintf(out, "    %s\n", f)
					}
				}
				if len(t.Dependencies) > 0 {
					fmt.Fprintln(out, "  These targets:")
					for _, dep := range t.Dependencies {
						fmt.Fprintf(out, "    %s\n", dep)
					}
				}
			}
			return nil
		},
	}
}
