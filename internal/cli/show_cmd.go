package cli

import (
	"context"
	"fmt"

	"github.com/shayacohen/limud/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "show REF",
		Short: "Show a schedule's full day-by-day plan",
		Long: `Show a saved schedule. REF is a name, full ID, or unique ID prefix.

With --interactive the plan opens in a scrollable pager instead of
printing to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Schedules.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			if interactive {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				return runPager(s)
			}

			cmd.Printf("%s\n", formatter.FormatScheduleSummary(s))
			cmd.Printf("%s", formatter.FormatScheduleDays(s))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the plan in a scrollable pager")

	return cmd
}
