package cli

import (
	"github.com/shayacohen/limud/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and environment probes used by
// CLI commands.
type App struct {
	Schedules service.ScheduleService

	// IsInteractive reports whether stdout is a terminal. Wizard and
	// pager surfaces refuse to run when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "limud" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "limud",
		Short: "Tanach and Mishnah study schedule generator",
	}

	root.AddCommand(
		newGenerateCmd(app),
		newChildCmd(app),
		newWizardCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newExportCmd(app),
		newRemoveCmd(app),
	)

	return root
}
