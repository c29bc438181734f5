package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/shayacohen/limud/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export REF",
		Short: "Export a schedule as CSV or an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Schedules.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "csv":
				err = export.WriteCSV(w, s)
			case "ics":
				err = export.WriteICS(w, s)
			default:
				return fmt.Errorf("unknown format %q (expected csv or ics)", format)
			}
			if err != nil {
				return err
			}

			if out != "" {
				cmd.Printf("Exported %s to %s\n", s.Name, out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv or ics")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")

	return cmd
}
