package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/educator/internal/client"
	historydb "github.com/abhisek/educator/internal/history"
	"github.com/abhisek/educator/internal/router"
	"github.com/abhisek/educator/internal/screen"
	genscreen "github.com/abhisek/educator/internal/screens/generate"
	historyscreen "github.com/abhisek/educator/internal/screens/history"
	"github.com/abhisek/educator/internal/screens/placeholder"
	"github.com/abhisek/educator/internal/ui/components"
)

type statsLoadedMsg struct {
	Generations int
	LLMRequests int64
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string

	generations int
	llmRequests int64
	events      historydb.EventRepo
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. events may be nil when the local history
// database could not be opened; the history entry then shows a placeholder.
func New(api *client.Client, events historydb.EventRepo) *HomeScreen {
	menuLabels := []string{"CREATE CONTENT", "HISTORY", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: genscreen.New(api)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			if events == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(events)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		events:     events,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.events == nil {
		return nil
	}
	events := h.events
	return func() tea.Msg {
		var msg statsLoadedMsg
		if gens, err := events.ListGenerations(context.Background(), 1000); err == nil {
			msg.Generations = len(gens)
		}
		if stats, err := events.LLMStats(context.Background()); err == nil {
			msg.LLMRequests = stats.Requests
		}
		return msg
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		h.generations = msg.Generations
		h.llmRequests = msg.LLMRequests
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderTutorBox(cw))
	}

	sections = append(sections, renderStatsBar(h.generations, h.llmRequests, cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderPanelFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
