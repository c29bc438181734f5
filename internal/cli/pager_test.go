package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shayacohen/limud/internal/teatest"
	"github.com/shayacohen/limud/internal/testutil"
)

func newPagerDriver(t *testing.T) *teatest.Driver {
	t.Helper()
	return teatest.New(t, newPagerModel(testutil.FixtureSchedule("abc123", "ruth")), 80, 24)
}

func TestPagerModel_NotReadyBeforeWindowSize(t *testing.T) {
	m := newPagerModel(testutil.FixtureSchedule("abc123", "ruth"))

	assert.False(t, m.ready)
	assert.Contains(t, m.View(), "loading")
}

func TestPagerModel_RendersPlanAfterWindowSize(t *testing.T) {
	d := newPagerDriver(t)

	view := d.View()
	assert.Contains(t, view, "ruth")
	assert.Contains(t, view, "Ruth 1")
	assert.Contains(t, view, "q quit")
}

func TestPagerModel_QuitKeys(t *testing.T) {
	press := map[string]func(*teatest.Driver){
		"q":      func(d *teatest.Driver) { d.PressKey('q') },
		"esc":    func(d *teatest.Driver) { d.PressEsc() },
		"ctrl+c": func(d *teatest.Driver) { d.PressCtrlC() },
	}

	for name, send := range press {
		d := newPagerDriver(t)
		send(d)

		require.True(t, d.Quitting, "key %q should quit", name)
		assert.Empty(t, d.View(), "view clears on quit for key %q", name)
	}
}

func TestPagerModel_ScrollDoesNotQuit(t *testing.T) {
	d := newPagerDriver(t)

	d.PressDown()
	d.PressDown()

	assert.False(t, d.Quitting)
}

func TestPagerModel_ResizeKeepsContent(t *testing.T) {
	d := newPagerDriver(t)

	d.Send(tea.WindowSizeMsg{Width: 40, Height: 10})

	pm := d.Model.(pagerModel)
	assert.True(t, pm.ready)
	assert.Equal(t, 40, pm.vp.Width)
}
