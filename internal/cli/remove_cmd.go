package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove REF",
		Short: "Delete a saved schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schedules.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			cmd.Printf("Removed schedule %s\n", args[0])
			return nil
		},
	}
}
