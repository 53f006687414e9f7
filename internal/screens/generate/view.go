package generate

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	gen "github.com/abhisek/educator/internal/generate"
	"github.com/abhisek/educator/internal/ui/theme"
)

func (g *GenerateScreen) View(width, height int) string {
	switch g.state {
	case stateLoading:
		return g.renderLoading(width, height)
	case stateResult:
		return g.renderResult(width, height)
	case stateError:
		return g.renderError(width, height)
	default:
		return g.renderForm(width, height)
	}
}

func (g *GenerateScreen) renderForm(width, height int) string {
	cw := width - 8
	if cw > 72 {
		cw = 72
	}
	if cw < 30 {
		cw = 30
	}
	g.prompt.SetWidth(cw)
	g.contextArea.SetWidth(cw)

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(g.fieldLabel("Topic or question", fieldPrompt))
	b.WriteString("\n")
	b.WriteString(g.prompt.View())
	b.WriteString("\n\n")

	b.WriteString(g.fieldLabel("Context (optional)", fieldContext))
	b.WriteString("\n")
	b.WriteString(g.contextArea.View())
	b.WriteString("\n\n")

	b.WriteString(g.fieldLabel("Content type", fieldType))
	b.WriteString("  ")
	b.WriteString(g.contentType.View(g.focus == fieldType))
	desc := gen.ContentType(g.contentType.Value()).Description()
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + desc))
	b.WriteString("\n\n")

	b.WriteString(g.fieldLabel(fmt.Sprintf("Max length (%d-%d)", gen.MinLength, gen.MaxLength), fieldMaxLength))
	b.WriteString("  ")
	b.WriteString(g.maxLength.View())
	b.WriteString("\n")

	b.WriteString(g.fieldLabel(fmt.Sprintf("Temperature (%.1f-%.1f)", gen.MinTemperature, gen.MaxTemperature), fieldTemperature))
	b.WriteString("  ")
	b.WriteString(g.temperature.View())
	b.WriteString("\n\n")

	btn := "  Generate  "
	if g.focus == fieldGenerate {
		b.WriteString(theme.ButtonActive.Render("▸" + btn))
	} else {
		b.WriteString(theme.ButtonInactive.Render(btn))
	}
	b.WriteString("\n")

	if g.formErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("✗ " + g.formErr))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Padding(0, 4).Render(b.String())
}

func (g *GenerateScreen) fieldLabel(label string, field formField) string {
	if g.focus == field {
		return theme.LabelActive.Render("▸ " + label)
	}
	return theme.LabelInactive.Render("  " + label)
}

func (g *GenerateScreen) renderLoading(width, height int) string {
	frame := spinnerFrames[g.spinFrame%len(spinnerFrames)]
	label := g.lastRequest.ContentType.Label()

	elapsed := time.Since(g.startedAt).Seconds()

	content := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(frame) +
		lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf(" Generating %s… %.0fs", strings.ToLower(label), elapsed)) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render(truncateLine(g.lastRequest.Prompt, 60))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (g *GenerateScreen) renderResult(width, height int) string {
	cw := width - 8
	if cw > 76 {
		cw = 76
	}
	if cw < 30 {
		cw = 30
	}

	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("%s — %s", g.result.ContentType.Label(), truncateLine(g.result.Prompt, 48))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  " + header))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", cw)))
	b.WriteString("\n\n")

	lines := wrapText(g.result.GeneratedText, cw)
	visible := height - 8
	if visible < 4 {
		visible = 4
	}
	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if g.scroll > maxScroll {
		g.scroll = maxScroll
	}

	end := g.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[g.scroll:end] {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + line))
		b.WriteString("\n")
	}

	if maxScroll > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  (%d/%d)", g.scroll+1, maxScroll+1)))
	}

	b.WriteString("\n")
	footer := fmt.Sprintf("  generated in %.1fs", g.result.ProcessingTime)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(footer))

	if g.notice != "" {
		b.WriteString("\n")
		if g.noticeErr {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  ✗ " + g.notice))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("  ✓ " + g.notice))
		}
	}

	return b.String()
}

func (g *GenerateScreen) renderError(width, height int) string {
	content := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
		Render("✗ "+g.errMsg) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Press r to retry, e to edit the request.")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// truncateLine flattens newlines and cuts at max characters. Slicing is by
// rune so multibyte input is never split mid-character.
func truncateLine(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// wrapText breaks text into lines no wider than w columns, preserving
// existing newlines and breaking long lines at word boundaries.
func wrapText(text string, w int) []string {
	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= w {
			out = append(out, paragraph)
			continue
		}
		line := ""
		for _, word := range strings.Fields(paragraph) {
			if line == "" {
				line = word
			} else if len(line)+1+len(word) <= w {
				line += " " + word
			} else {
				out = append(out, line)
				line = word
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
