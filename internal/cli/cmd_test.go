package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shayacohen/limud/internal/hebcal"
	"github.com/shayacohen/limud/internal/repository"
	"github.com/shayacohen/limud/internal/service"
	"github.com/shayacohen/limud/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	repo := repository.NewSQLiteScheduleRepo(db)
	resolver := hebcal.NewMilestoneResolver(&testutil.OffsetConverter{})

	return &App{
		Schedules:     service.NewScheduleService(repo, resolver),
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestGenerateCmd_BookWithRate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app,
		"generate",
		"--name", "ruth",
		"--book", "Ruth",
		"--start", "2024-03-04",
		"--per-day", "1",
		"--weekdays", "mon")
	require.NoError(t, err)

	s, err := app.Schedules.Get(context.Background(), "ruth")
	require.NoError(t, err)
	assert.Equal(t, 4, s.TotalUnits)
	assert.Equal(t, 4, s.TotalStudyDays)
}

func TestGenerateCmd_CatchAllCorpusArgument(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app,
		"generate", "mishnah",
		"--name", "mishnah-yomi",
		"--start", "2024-01-01",
		"--per-day", "2")
	require.NoError(t, err)

	s, err := app.Schedules.Get(context.Background(), "mishnah-yomi")
	require.NoError(t, err)
	assert.Equal(t, "mishnah", string(s.Granularity))
}

func TestGenerateCmd_BareInvocationWithoutTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name is required")
}

func TestWizardCmd_RequiresTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "wizard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a terminal")
}

func TestGenerateCmd_NoCorpusSelected(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "generate", "--name", "x", "--per-day", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no corpus selected")
}

func TestGenerateCmd_ConflictingPacingFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app,
		"generate", "--name", "x", "--book", "Ruth",
		"--start", "2024-01-01", "--end", "2024-02-01", "--per-day", "2")
	require.Error(t, err)
}

func TestGenerateCmd_InvalidDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app,
		"generate", "--name", "x", "--book", "Ruth",
		"--start", "03/04/2024", "--per-day", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date")
}

func TestChildCmd_AnchorsToHebrewBirthdays(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app,
		"child",
		"--name", "chidon-prep",
		"--birthdate", "2024-06-15",
		"--chidon", "middle")
	require.NoError(t, err)

	s, err := app.Schedules.Get(context.Background(), "chidon-prep")
	require.NoError(t, err)
	assert.NotEmpty(t, s.Days)
}

func TestListCmd_EmptyAndPopulated(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No schedules found")

	_, err = executeCmd(t, app,
		"generate", "--name", "ruth", "--book", "Ruth",
		"--start", "2024-01-01", "--per-day", "1")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ruth")
}

func TestShowCmd_ByIDPrefix(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app,
		"generate", "--name", "ruth", "--book", "Ruth",
		"--start", "2024-01-01", "--per-day", "1")
	require.NoError(t, err)

	s, err := app.Schedules.Get(context.Background(), "ruth")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "show", s.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Ruth 1")
}

func TestShowCmd_InteractiveRequiresTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app,
		"generate", "--name", "ruth", "--book", "Ruth",
		"--start", "2024-01-01", "--per-day", "1")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "show", "ruth", "--interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a terminal")
}

func TestExportCmd_WritesCSVFile(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app,
		"generate", "--name", "ruth", "--book", "Ruth",
		"--start", "2024-01-01", "--per-day", "1")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "ruth.csv")
	_, err = executeCmd(t, app, "export", "ruth", "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Date,Day of Week,Reading"))
}

func TestExportCmd_UnknownFormat(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app,
		"generate", "--name", "ruth", "--book", "Ruth",
		"--start", "2024-01-01", "--per-day", "1")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "export", "ruth", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRemoveCmd_DeletesSchedule(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app,
		"generate", "--name", "ruth", "--book", "Ruth",
		"--start", "2024-01-01", "--per-day", "1")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "remove", "ruth")
	require.NoError(t, err)

	_, err = app.Schedules.Get(context.Background(), "ruth")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
