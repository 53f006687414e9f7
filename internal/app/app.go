package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/educator/internal/client"
	historydb "github.com/abhisek/educator/internal/history"
	"github.com/abhisek/educator/internal/router"
	"github.com/abhisek/educator/internal/screen"
	"github.com/abhisek/educator/internal/screens/home"
	"github.com/abhisek/educator/internal/screens/welcome"
	"github.com/abhisek/educator/internal/ui/layout"
)

// healthProbeInterval is how often the header status is refreshed.
const healthProbeInterval = 15 * time.Second

// healthMsg carries the result of an API health probe.
type healthMsg struct {
	Status layout.APIStatus
}

// healthTickMsg schedules the next probe.
type healthTickMsg time.Time

// AppModel is the root Bubble Tea model.
type AppModel struct {
	api    *client.Client
	router *router.Router
	status layout.APIStatus
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome splash.
func newAppModel(api *client.Client, events historydb.EventRepo) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(api, events)
	}
	return AppModel{
		api:    api,
		router: router.New(welcome.New(homeFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.probeHealth())
}

// probeHealth checks the API and reports online/offline for the header.
func (m AppModel) probeHealth() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := api.Health(ctx); err != nil {
			return healthMsg{Status: layout.APIOffline}
		}
		return healthMsg{Status: layout.APIOnline}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case healthMsg:
		m.status = msg.Status
		return m, tea.Tick(healthProbeInterval, func(t time.Time) tea.Msg {
			return healthTickMsg(t)
		})

	case healthTickMsg:
		return m, m.probeHealth()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	// The welcome splash renders without header/footer chrome.
	if _, ok := active.(*welcome.WelcomeScreen); ok {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status, m.width)

	var footerHints []layout.KeyHint
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program against the API at baseURL. events may
// be nil when no local history database is available.
func Run(baseURL string, events historydb.EventRepo) error {
	api := client.New(baseURL)
	p := tea.NewProgram(newAppModel(api, events))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
