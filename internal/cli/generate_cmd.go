package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/shayacohen/limud/internal/cli/formatter"
	"github.com/shayacohen/limud/internal/domain"
	"github.com/shayacohen/limud/internal/service"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		name    string
		start   string
		end     string
		perDay  int
		selFl   selectionFlags
		weekSet domain.WeekdaySet
	)

	cmd := &cobra.Command{
		Use:   "generate [CORPUS]",
		Short: "Generate and save a study schedule",
		Long: `Generate a study schedule over a chosen corpus.

Pick units with a selector flag (--book, --division, --chidon, --seder,
--tractate) or pass a catch-all corpus argument: tanach or mishnah.
Pace the schedule with exactly one of --end (fit the corpus into a date
range) or --per-day (fixed units per study day).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare `limud generate` on a terminal opens the wizard.
			if len(args) == 0 && cmd.Flags().NFlag() == 0 {
				if app.IsInteractive != nil && app.IsInteractive() {
					return runWizard(app)
				}
			}
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			corpusArg := ""
			if len(args) > 0 {
				corpusArg = args[0]
			}

			sel, err := selFl.selection(corpusArg)
			if err != nil {
				return err
			}

			startDate, err := parseDateFlag(start, "start")
			if err != nil {
				return err
			}

			req := service.CreateRequest{
				Name:        name,
				Selection:   sel,
				StartDate:   startDate,
				UnitsPerDay: perDay,
				Weekdays:    weekSet,
			}

			if end != "" {
				endDate, err := parseDateFlag(end, "end")
				if err != nil {
					return err
				}
				req.EndDate = &endDate
			}

			s, err := app.Schedules.Create(context.Background(), req)
			if err != nil {
				return err
			}

			cmd.Printf("%s\n", formatter.FormatScheduleSummary(s))
			cmd.Printf("Saved as %s. Run `limud show %s` for the full plan.\n", s.Name, s.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Schedule name (unique)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD); fits the corpus into the range")
	cmd.Flags().IntVar(&perDay, "per-day", 0, "Fixed units per study day; derives the end date")
	selFl.register(cmd.Flags())
	weekdaysFlag(cmd.Flags(), &weekSet)

	return cmd
}

// parseDateFlag parses a YYYY-MM-DD flag value. An empty value means
// today, truncated to midnight UTC.
func parseDateFlag(value, flagName string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date %q: %w", flagName, value, err)
	}
	return t, nil
}
