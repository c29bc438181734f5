package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/shayacohen/limud/internal/cli/formatter"
	"github.com/shayacohen/limud/internal/corpus"
	"github.com/shayacohen/limud/internal/domain"
	"github.com/shayacohen/limud/internal/service"
)

// limudHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func limudHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardAnswers accumulates form state across the wizard's steps.
type wizardAnswers struct {
	name        string
	corpusKind  string
	division    string
	book        string
	seder       string
	chidon      string
	granularity string
	weekdays    []string
	pacing      string
	start       string
	end         string
	perDay      string
}

// validateRequiredDate requires a YYYY-MM-DD date string.
func validateRequiredDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validatePositiveInt requires a positive integer.
func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func newWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Build a schedule through interactive prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("wizard requires a terminal; use `limud generate` instead")
			}
			return runWizard(app)
		},
	}
}

func runWizard(app *App) error {
	a := wizardAnswers{
		corpusKind:  "book",
		granularity: "chapter",
		pacing:      "end",
		start:       time.Now().UTC().Format("2006-01-02"),
		weekdays:    []string{"sun", "mon", "tue", "wed", "thu"},
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schedule name").
				Placeholder("e.g. tanach-5786").
				Value(&a.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("What will you study?").
				Options(
					huh.NewOption("A single Tanach book", "book"),
					huh.NewOption("A Tanach division", "division"),
					huh.NewOption("All of Tanach", "tanach"),
					huh.NewOption("Chidon curriculum", "chidon"),
					huh.NewOption("A Mishnah seder", "seder"),
					huh.NewOption("All of Mishnah", "mishnah"),
				).
				Value(&a.corpusKind),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Book name").
				Placeholder("Ruth").
				Value(&a.book),
		).WithHideFunc(func() bool { return a.corpusKind != "book" }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Division").
				Options(
					huh.NewOption("Torah", "torah"),
					huh.NewOption("Nevi'im", "neviim"),
					huh.NewOption("Ketuvim", "ketuvim"),
				).
				Value(&a.division),
		).WithHideFunc(func() bool { return a.corpusKind != "division" }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Chidon division").
				Options(
					huh.NewOption("Middle school", "middle"),
					huh.NewOption("High school", "high"),
				).
				Value(&a.chidon),
		).WithHideFunc(func() bool { return a.corpusKind != "chidon" }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Seder").
				Options(sederOptions()...).
				Value(&a.seder),
		).WithHideFunc(func() bool { return a.corpusKind != "seder" }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Unit size").
				Options(
					huh.NewOption("Chapters", "chapter"),
					huh.NewOption("Verses", "verse"),
				).
				Value(&a.granularity),
		).WithHideFunc(func() bool {
			return a.corpusKind == "seder" || a.corpusKind == "mishnah"
		}),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Study days").
				Options(
					huh.NewOption("Sunday", "sun"),
					huh.NewOption("Monday", "mon"),
					huh.NewOption("Tuesday", "tue"),
					huh.NewOption("Wednesday", "wed"),
					huh.NewOption("Thursday", "thu"),
					huh.NewOption("Friday", "fri"),
					huh.NewOption("Saturday", "sat"),
				).
				Value(&a.weekdays).
				Validate(func(days []string) error {
					if len(days) == 0 {
						return fmt.Errorf("pick at least one day")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start date").
				Value(&a.start).
				Validate(validateRequiredDate),
			huh.NewSelect[string]().
				Title("Pacing").
				Options(
					huh.NewOption("Finish by a date", "end"),
					huh.NewOption("Fixed units per day", "rate"),
				).
				Value(&a.pacing),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("End date").
				Placeholder("YYYY-MM-DD").
				Value(&a.end).
				Validate(validateRequiredDate),
		).WithHideFunc(func() bool { return a.pacing != "end" }),
		huh.NewGroup(
			huh.NewInput().
				Title("Units per day").
				Placeholder("2").
				Value(&a.perDay).
				Validate(validatePositiveInt),
		).WithHideFunc(func() bool { return a.pacing != "rate" }),
	).WithTheme(limudHuhTheme())

	if err := form.Run(); err != nil {
		return err
	}

	req, err := a.toRequest()
	if err != nil {
		return err
	}

	s, err := app.Schedules.Create(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", formatter.FormatScheduleSummary(s))
	fmt.Printf("Saved as %s. Run `limud show %s` for the full plan.\n", s.Name, s.Name)
	return nil
}

// toRequest converts collected answers into a service request.
func (a wizardAnswers) toRequest() (service.CreateRequest, error) {
	sel := corpus.Selection{Granularity: domain.Granularity(a.granularity)}

	switch a.corpusKind {
	case "book":
		sel.Mode = domain.SelectBook
		sel.Book = strings.TrimSpace(a.book)
	case "division":
		sel.Mode = domain.SelectDivision
		sel.Division = domain.Division(a.division)
	case "tanach":
		sel.Mode = domain.SelectAllTanach
	case "chidon":
		sel.Mode = domain.SelectChidon
		sel.ChidonDivision = domain.ChidonDivision(a.chidon)
	case "seder":
		sel.Mode = domain.SelectSeder
		sel.Seder = a.seder
		sel.Granularity = domain.GranularityMishnah
	case "mishnah":
		sel.Mode = domain.SelectAllMishnah
		sel.Granularity = domain.GranularityMishnah
	}

	weekdays, err := domain.ParseWeekdaySet(strings.Join(a.weekdays, ","))
	if err != nil {
		return service.CreateRequest{}, err
	}

	startDate, err := time.Parse("2006-01-02", a.start)
	if err != nil {
		return service.CreateRequest{}, fmt.Errorf("invalid start date %q: %w", a.start, err)
	}

	req := service.CreateRequest{
		Name:      strings.TrimSpace(a.name),
		Selection: sel,
		StartDate: startDate,
		Weekdays:  weekdays,
	}

	switch a.pacing {
	case "end":
		endDate, err := time.Parse("2006-01-02", a.end)
		if err != nil {
			return service.CreateRequest{}, fmt.Errorf("invalid end date %q: %w", a.end, err)
		}
		req.EndDate = &endDate
	case "rate":
		// Validated as a positive integer by the form.
		req.UnitsPerDay, _ = strconv.Atoi(a.perDay)
	}

	return req, nil
}

func sederOptions() []huh.Option[string] {
	names := corpus.SederNames()
	options := make([]huh.Option[string], 0, len(names))
	for _, n := range names {
		options = append(options, huh.NewOption(n, n))
	}
	return options
}
