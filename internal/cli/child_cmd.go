package cli

import (
	"context"

	"github.com/shayacohen/limud/internal/cli/formatter"
	"github.com/shayacohen/limud/internal/domain"
	"github.com/shayacohen/limud/internal/service"
	"github.com/spf13/cobra"
)

func newChildCmd(app *App) *cobra.Command {
	var (
		name      string
		birthdate string
		selFl     selectionFlags
		weekSet   domain.WeekdaySet
	)

	cmd := &cobra.Command{
		Use:   "child [CORPUS]",
		Short: "Generate a schedule anchored to a child's Hebrew birthdays",
		Long: `Generate a schedule that starts on the child's 5th Hebrew birthday
(or today, if that birthday has already passed) and finishes the corpus
by the 10th Hebrew birthday. Both anchors come from the Hebcal date
converter.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corpusArg := ""
			if len(args) > 0 {
				corpusArg = args[0]
			}

			sel, err := selFl.selection(corpusArg)
			if err != nil {
				return err
			}

			birth, err := parseDateFlag(birthdate, "birthdate")
			if err != nil {
				return err
			}

			result, err := app.Schedules.CreateChild(context.Background(), service.ChildRequest{
				Name:      name,
				Selection: sel,
				BirthDate: birth,
				Weekdays:  weekSet,
			})
			if err != nil {
				return err
			}

			cmd.Printf("%s\n", formatter.FormatMilestone("5TH BIRTHDAY ", result.Fifth))
			cmd.Printf("%s\n\n", formatter.FormatMilestone("10TH BIRTHDAY", result.Tenth))
			cmd.Printf("%s\n", formatter.FormatScheduleSummary(result.Schedule))
			cmd.Printf("Saved as %s. Run `limud show %s` for the full plan.\n", result.Schedule.Name, result.Schedule.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Schedule name (unique)")
	cmd.Flags().StringVar(&birthdate, "birthdate", "", "Child's Gregorian birth date (YYYY-MM-DD)")
	selFl.register(cmd.Flags())
	weekdaysFlag(cmd.Flags(), &weekSet)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("birthdate")

	return cmd
}
