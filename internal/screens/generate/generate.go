package generate

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/atotto/clipboard"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/educator/internal/client"
	gen "github.com/abhisek/educator/internal/generate"
	"github.com/abhisek/educator/internal/screen"
	"github.com/abhisek/educator/internal/ui/components"
	"github.com/abhisek/educator/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

// modelLoadingMsg is shown when the startup probe reports no loaded model.
const modelLoadingMsg = "The AI model is still loading. Please wait a moment and retry."

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// uiState is the screen's display mode. Exactly one is active at a time.
type uiState int

const (
	stateForm uiState = iota
	stateLoading
	stateResult
	stateError
)

// formField identifies the focused form element.
type formField int

const (
	fieldPrompt formField = iota
	fieldContext
	fieldType
	fieldMaxLength
	fieldTemperature
	fieldGenerate

	fieldCount
)

// GenerateScreen is the content creation form and its result display.
type GenerateScreen struct {
	api *client.Client

	state uiState
	focus formField

	prompt      components.TextArea
	contextArea components.TextArea
	contentType components.Cycler
	maxLength   components.TextInput
	temperature components.TextInput

	formErr string

	seq         int
	startedAt   time.Time
	lastRequest gen.Request
	result      *gen.Response
	errMsg      string

	notice    string
	noticeErr bool
	spinFrame int
	scroll    int
}

var _ screen.Screen = (*GenerateScreen)(nil)
var _ screen.KeyHintProvider = (*GenerateScreen)(nil)

// New creates a GenerateScreen backed by the given API client.
func New(api *client.Client) *GenerateScreen {
	types := gen.AllContentTypes()
	options := make([]string, len(types))
	labels := make([]string, len(types))
	for i, t := range types {
		options[i] = string(t)
		labels[i] = t.Label()
	}

	maxLength := components.NewTextInput(strconv.Itoa(gen.DefaultLength), true, 4)
	temperature := components.NewTextInput(
		strconv.FormatFloat(gen.DefaultTemperature, 'f', 1, 64), true, 4)

	return &GenerateScreen{
		api:         api,
		prompt:      components.NewTextArea("What would you like to teach?", gen.PromptMaxLen, 3),
		contextArea: components.NewTextArea("Optional background or constraints", gen.ContextMaxLen, 2),
		contentType: components.NewCycler(options, labels),
		maxLength:   maxLength,
		temperature: temperature,
	}
}

func (g *GenerateScreen) Init() tea.Cmd {
	return tea.Batch(g.prompt.Focus(), g.probeModel())
}

// probeModel asks the backend whether a model is loaded before the first
// submission. Connectivity errors are not reported here; they surface on
// submit instead.
func (g *GenerateScreen) probeModel() tea.Cmd {
	api := g.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		hs, err := api.Health(ctx)
		if err != nil {
			return modelReadyMsg{Ready: true}
		}
		return modelReadyMsg{Ready: hs.ModelLoaded}
	}
}

func (g *GenerateScreen) Title() string {
	return "Create Content"
}

func (g *GenerateScreen) KeyHints() []layout.KeyHint {
	switch g.state {
	case stateLoading:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	case stateResult:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "r", Description: "Regenerate"},
			{Key: "c", Description: "Copy"},
			{Key: "s", Description: "Save"},
			{Key: "e", Description: "Edit"},
			{Key: "Esc", Description: "Back"},
		}
	case stateError:
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "e", Description: "Edit"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "←→", Description: "Content type"},
			{Key: "Ctrl+G", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (g *GenerateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		if msg.Seq != g.seq || g.state != stateLoading {
			// Stale response from a superseded request.
			return g, nil
		}
		return g.handleResult(msg)

	case spinnerTickMsg:
		if g.state != stateLoading {
			return g, nil
		}
		g.spinFrame++
		return g, g.spinTick()

	case copiedMsg:
		g.noticeErr = msg.Err != nil
		if msg.Err != nil {
			g.notice = "Copy failed: " + msg.Err.Error()
		} else {
			g.notice = "Copied to clipboard"
		}
		return g, g.expireNotice()

	case savedMsg:
		g.noticeErr = msg.Err != nil
		if msg.Err != nil {
			g.notice = "Save failed: " + msg.Err.Error()
		} else {
			g.notice = "Saved to " + msg.Path
		}
		return g, g.expireNotice()

	case noticeExpiredMsg:
		g.notice = ""
		g.noticeErr = false
		return g, nil

	case modelReadyMsg:
		if g.seq > 0 {
			// The user has already generated something; the probe is moot.
			return g, nil
		}
		if !msg.Ready {
			g.state = stateError
			g.errMsg = modelLoadingMsg
			return g, nil
		}
		if g.state == stateError && g.errMsg == modelLoadingMsg {
			g.state = stateForm
			g.errMsg = ""
			return g, g.focusCurrent()
		}
		return g, nil

	case tea.KeyMsg:
		return g.handleKey(msg)
	}

	return g.forwardToFocused(msg)
}

func (g *GenerateScreen) handleResult(msg resultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		g.state = stateError
		g.errMsg = msg.Err.Error()
		return g, nil
	}
	if !msg.Resp.Success {
		g.state = stateError
		g.errMsg = msg.Resp.Error
		if g.errMsg == "" {
			g.errMsg = "Generation failed."
		}
		return g, nil
	}
	g.state = stateResult
	g.result = msg.Resp
	g.scroll = 0
	return g, nil
}

func (g *GenerateScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch g.state {
	case stateLoading:
		// Input is locked while a request is in flight; esc pops via the app.
		return g, nil

	case stateResult:
		switch msg.String() {
		case "up", "k":
			if g.scroll > 0 {
				g.scroll--
			}
			return g, nil
		case "down", "j":
			g.scroll++
			return g, nil
		case "r":
			return g, g.startGeneration(g.lastRequest)
		case "c":
			return g, g.copyResult()
		case "s":
			return g, g.saveResult()
		case "e":
			g.state = stateForm
			return g, g.focusCurrent()
		}
		return g, nil

	case stateError:
		switch msg.String() {
		case "r":
			if g.lastRequest.Prompt == "" {
				// Nothing to replay; this error came from the startup
				// probe, so retry means probing again.
				return g, g.probeModel()
			}
			return g, g.startGeneration(g.lastRequest)
		case "e":
			g.state = stateForm
			return g, g.focusCurrent()
		}
		return g, nil
	}

	// Form state.
	switch msg.String() {
	case "tab":
		return g, g.moveFocus(1)
	case "shift+tab":
		return g, g.moveFocus(-1)
	case "ctrl+g":
		return g.submit()
	case "enter":
		if g.focus == fieldGenerate {
			return g.submit()
		}
	}

	return g.forwardToFocused(msg)
}

// forwardToFocused routes a message to the form element that has focus.
func (g *GenerateScreen) forwardToFocused(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if g.state != stateForm {
		return g, nil
	}

	var cmd tea.Cmd
	switch g.focus {
	case fieldPrompt:
		g.prompt, cmd = g.prompt.Update(msg)
	case fieldContext:
		g.contextArea, cmd = g.contextArea.Update(msg)
	case fieldType:
		g.contentType, cmd = g.contentType.Update(msg)
	case fieldMaxLength:
		g.maxLength, cmd = g.maxLength.Update(msg)
	case fieldTemperature:
		g.temperature, cmd = g.temperature.Update(msg)
	}
	return g, cmd
}

func (g *GenerateScreen) moveFocus(delta int) tea.Cmd {
	g.blurCurrent()
	g.focus = formField((int(g.focus) + delta + int(fieldCount)) % int(fieldCount))
	return g.focusCurrent()
}

func (g *GenerateScreen) blurCurrent() {
	switch g.focus {
	case fieldPrompt:
		g.prompt.Blur()
	case fieldContext:
		g.contextArea.Blur()
	case fieldMaxLength:
		g.maxLength.Blur()
	case fieldTemperature:
		g.temperature.Blur()
	}
}

func (g *GenerateScreen) focusCurrent() tea.Cmd {
	switch g.focus {
	case fieldPrompt:
		return g.prompt.Focus()
	case fieldContext:
		return g.contextArea.Focus()
	case fieldMaxLength:
		return g.maxLength.Focus()
	case fieldTemperature:
		return g.temperature.Focus()
	}
	return nil
}

// buildRequest assembles a request from the form fields without sending it.
func (g *GenerateScreen) buildRequest() (gen.Request, error) {
	req := gen.NewRequest(g.prompt.Value(), gen.ContentType(g.contentType.Value()), g.contextArea.Value())

	if v := g.maxLength.Value(); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, &gen.ValidationError{Field: "max_length", Message: "Max length must be a whole number."}
		}
		req.MaxLength = n
	}
	if v := g.temperature.Value(); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, &gen.ValidationError{Field: "temperature", Message: "Temperature must be a number."}
		}
		req.Temperature = f
	}

	if err := gen.Validate(req); err != nil {
		return req, err
	}
	return req, nil
}

func (g *GenerateScreen) submit() (screen.Screen, tea.Cmd) {
	req, err := g.buildRequest()
	if err != nil {
		g.formErr = err.Error()
		return g, nil
	}
	g.formErr = ""
	return g, g.startGeneration(req)
}

// startGeneration fires the API call and enters the loading state.
func (g *GenerateScreen) startGeneration(req gen.Request) tea.Cmd {
	g.state = stateLoading
	g.lastRequest = req
	g.startedAt = time.Now()
	g.seq++
	seq := g.seq
	api := g.api

	generateCmd := func() tea.Msg {
		resp, err := api.Generate(context.Background(), req)
		return resultMsg{Seq: seq, Resp: resp, Err: err}
	}
	return tea.Batch(generateCmd, g.spinTick())
}

func (g *GenerateScreen) spinTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (g *GenerateScreen) expireNotice() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}

func (g *GenerateScreen) copyResult() tea.Cmd {
	text := g.result.GeneratedText
	return func() tea.Msg {
		return copiedMsg{Err: clipboard.WriteAll(text)}
	}
}

func (g *GenerateScreen) saveResult() tea.Cmd {
	text := g.result.GeneratedText
	contentType := string(g.result.ContentType)
	return func() tea.Msg {
		path := fmt.Sprintf("educator_%s_%d.txt", contentType, time.Now().Unix())
		err := os.WriteFile(path, []byte(text), 0o644)
		return savedMsg{Path: path, Err: err}
	}
}
