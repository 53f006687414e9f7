package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	historydb "github.com/abhisek/educator/internal/history"
	"github.com/abhisek/educator/internal/router"
	"github.com/abhisek/educator/internal/screen"
	"github.com/abhisek/educator/internal/ui/layout"
	"github.com/abhisek/educator/internal/ui/theme"
)

const listLimit = 50

type historyLoadedMsg struct {
	Events []historydb.GenerationEvent
	Err    error
}

// HistoryScreen displays past content generations.
type HistoryScreen struct {
	events   historydb.EventRepo
	records  []historydb.GenerationEvent
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(events historydb.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		events:   events,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.events.ListGenerations(context.Background(), listLimit)
		return historyLoadedMsg{Events: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No generations yet. Create some content!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		dateStr := rec.CreatedAt.Format("Jan 02 15:04")

		status := "✓"
		if !rec.Success {
			status = "✗"
		}

		line := fmt.Sprintf("%s%s  %s  [%s/%s]  %s",
			selectPrefix(i == s.selected), status, dateStr,
			rec.ContentType, rec.Source, truncate(rec.Prompt, 40))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if !rec.Success {
			style = style.Foreground(theme.Error)
		}
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		// Show expanded generation text.
		if s.expanded[i] {
			detail := rec.GeneratedText
			if !rec.Success {
				detail = "Error: " + rec.ErrorMessage
			}
			for _, dl := range detailLines(detail, 6) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).
						Render("    "+dl)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func selectPrefix(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// detailLines clips the detail text to at most max lines of 72 columns.
func detailLines(text string, max int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		for len(line) > 72 {
			out = append(out, line[:72])
			line = line[72:]
		}
		out = append(out, line)
		if len(out) >= max {
			out = append(out, "…")
			return out
		}
	}
	return out
}
