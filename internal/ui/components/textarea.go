package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps bubbles/textarea for multi-line prompt and context entry.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a styled multi-line input.
func NewTextArea(placeholder string, charLimit, height int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = charLimit
	ta.SetHeight(height)
	ta.ShowLineNumbers = false
	return TextArea{Model: ta}
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Focus focuses the underlying textarea.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// View renders the textarea.
func (t TextArea) View() string {
	return t.Model.View()
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current text.
func (t *TextArea) SetValue(v string) {
	t.Model.SetValue(v)
}

// SetWidth resizes the textarea.
func (t *TextArea) SetWidth(w int) {
	t.Model.SetWidth(w)
}
