package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/educator/internal/screen"
)

type fakeScreen struct {
	name      string
	initCount int
	lastMsg   tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initCount++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.lastMsg = msg
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func TestPushAndPop(t *testing.T) {
	bottom := &fakeScreen{name: "bottom"}
	r := New(bottom)
	require.Equal(t, 1, r.Depth())

	top := &fakeScreen{name: "top"}
	r.Push(top)

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "top", r.Active().Title())
	assert.Equal(t, 1, top.initCount, "pushed screen should be initialized")

	r.Pop()
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "bottom", r.Active().Title())
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&fakeScreen{name: "only"})
	r.Pop()

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "only", r.Active().Title())
}

func TestReplace(t *testing.T) {
	r := New(&fakeScreen{name: "first"})
	r.Push(&fakeScreen{name: "second"})

	third := &fakeScreen{name: "third"}
	r.Replace(third)

	// Replace swaps the top screen in place without growing the stack.
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "third", r.Active().Title())
	assert.Equal(t, 1, third.initCount)
}

func TestNavigationMessages(t *testing.T) {
	bottom := &fakeScreen{name: "bottom"}
	r := New(bottom)

	pushed := &fakeScreen{name: "pushed"}
	r.Update(PushScreenMsg{Screen: pushed})
	require.Equal(t, "pushed", r.Active().Title())
	assert.Equal(t, 1, pushed.initCount)

	swapped := &fakeScreen{name: "swapped"}
	r.Update(ReplaceScreenMsg{Screen: swapped})
	require.Equal(t, "swapped", r.Active().Title())
	assert.Equal(t, 2, r.Depth())

	r.Update(PopScreenMsg{})
	assert.Equal(t, "bottom", r.Active().Title())
}

func TestUpdateForwardsToActiveScreen(t *testing.T) {
	bottom := &fakeScreen{name: "bottom"}
	top := &fakeScreen{name: "top"}
	r := New(bottom)
	r.Push(top)

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	r.Update(msg)

	assert.Equal(t, msg, top.lastMsg, "active screen should receive the message")
	assert.Nil(t, bottom.lastMsg, "inactive screens should not receive messages")
}
