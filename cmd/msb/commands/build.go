package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/msb/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [target]",
		Short: "Build a target and everything it depends on",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal := app.DefaultGoal
			if len(args) == 1 {
				goal = args[0]
			}
			_, err := c.app.Build(cmd.Context(), goal)
			return err
		},
	}
}
