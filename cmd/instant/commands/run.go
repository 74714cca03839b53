package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/instant/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [tasks...]",
		Short: "Compute the task graph of the given tasks and print the execution plan",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			noReuse, _ := cmd.Flags().GetBool("no-reuse")
			recreate, _ := cmd.Flags().GetBool("recreate")
			readOnly, _ := cmd.Flags().GetBool("read-only")
			return c.app.Run(cmd.Context(), args, app.RunOptions{
				NoReuse:  noReuse,
				Recreate: recreate,
				ReadOnly: readOnly,
			})
		},
	}
	cmd.Flags().BoolP("no-reuse", "n", false, "Ignore the instant execution cache for this run")
	cmd.Flags().BoolP("recreate", "r", false, "Discard and rewrite the instant execution cache")
	cmd.Flags().Bool("read-only", false, "Reuse the instant execution cache but never write it")
	return cmd
}
