package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shayacohen/limud/internal/cli/formatter"
	"github.com/shayacohen/limud/internal/domain"
)

// pagerModel is a scrollable viewer for a schedule's day-by-day plan.
// The summary card stays pinned above the viewport; arrow keys and
// page up/down scroll the plan, q or esc quits.
type pagerModel struct {
	schedule *domain.Schedule
	header   string
	vp       viewport.Model
	ready    bool
	quitting bool
}

func newPagerModel(s *domain.Schedule) pagerModel {
	return pagerModel{
		schedule: s,
		header:   formatter.FormatScheduleSummary(s),
	}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		headerHeight := strings.Count(m.header, "\n") + 2
		bodyHeight := msg.Height - headerHeight
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, bodyHeight)
			m.vp.SetContent(formatter.FormatScheduleDays(m.schedule))
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = bodyHeight
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	footer := formatter.Dim(fmt.Sprintf("%3.0f%%  ↑/↓ scroll · q quit", m.vp.ScrollPercent()*100))
	return m.header + "\n" + m.vp.View() + "\n" + footer
}

// runPager displays the schedule in an interactive pager.
func runPager(s *domain.Schedule) error {
	p := tea.NewProgram(newPagerModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
