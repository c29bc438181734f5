package cli

import (
	"context"

	"github.com/shayacohen/limud/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			schedules, err := app.Schedules.List(context.Background())
			if err != nil {
				return err
			}

			if len(schedules) == 0 {
				cmd.Println("No schedules found. Create one with `limud generate`.")
				return nil
			}

			cmd.Printf("%s\n", formatter.FormatScheduleList(schedules))
			return nil
		},
	}
}
