package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advanced-ai/internal/conversation"
	"advanced-ai/internal/models"
)

type stubRelay struct {
	reply string
	err   error
	gate  chan struct{}
}

func (s *stubRelay) Complete(ctx context.Context, messages []models.Message, settings models.Settings) (string, error) {
	if s.gate != nil {
		<-s.gate
	}
	return s.reply, s.err
}

func newTestModel(relay conversation.Relay) (Model, *conversation.Controller) {
	ctrl := conversation.NewController(relay)
	m := New(context.Background(), ctrl)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), ctrl
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestModel_TypingSyncsInput(t *testing.T) {
	m, ctrl := newTestModel(&stubRelay{reply: "ok"})

	typeText(t, m, "hello")

	assert.Equal(t, "hello", ctrl.State().Input)
}

func TestModel_EnterSubmitsAndWaitsForReply(t *testing.T) {
	m, ctrl := newTestModel(&stubRelay{reply: "**Hi** there"})

	m = typeText(t, m, "Hi")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Empty(t, m.input.Value())

	msg := cmd()
	assert.IsType(t, relayDoneMsg{}, msg)

	next, _ := m.Update(msg)
	m = next.(Model)

	state := ctrl.State()
	require.Len(t, state.Messages, 3)
	assert.Equal(t, models.SenderUser, state.Messages[1].Sender)
	assert.Equal(t, "**Hi** there", state.Messages[2].Text)
	assert.False(t, state.Loading)
	assert.True(t, m.input.Focused())
}

func TestModel_BlankEnterDoesNothing(t *testing.T) {
	m, ctrl := newTestModel(&stubRelay{reply: "ok"})

	m = typeText(t, m, "   ")
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Len(t, ctrl.State().Messages, 1)
}

func TestModel_InputLockedWhileLoading(t *testing.T) {
	relay := &stubRelay{reply: "ok", gate: make(chan struct{})}
	m, ctrl := newTestModel(relay)

	m = typeText(t, m, "first")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, ctrl.State().Loading)
	assert.Contains(t, m.View(), conversation.PlaceholderText)

	m = typeText(t, m, "second")
	_, again := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, again)
	assert.Empty(t, ctrl.State().Input)

	close(relay.gate)
	cmd()
	assert.False(t, ctrl.State().Loading)
	assert.Len(t, ctrl.State().Messages, 3)
}

func TestModel_FailureShowsSystemMessage(t *testing.T) {
	m, ctrl := newTestModel(&stubRelay{err: errors.New("down")})

	m = typeText(t, m, "Hi")
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	msgs := ctrl.State().Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, models.Message{ID: msgs[2].ID, Text: conversation.FailureText, Sender: models.SenderSystem}, msgs[2])
}

func TestModel_ToggleTheme(t *testing.T) {
	m, ctrl := newTestModel(&stubRelay{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, conversation.ThemeLight, ctrl.State().Theme)

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, conversation.ThemeDark, ctrl.State().Theme)
}

func TestModel_SettingsPanelAdjustsSettings(t *testing.T) {
	m, ctrl := newTestModel(&stubRelay{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, ctrl.State().ShowSettings)
	assert.Contains(t, m.View(), "AI Settings")

	// model cycles
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, models.ModelGPT35Turbo, ctrl.State().Settings.Model)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, models.ModelGPT4oMini, ctrl.State().Settings.Model)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 310, ctrl.State().Settings.MaxTokens)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.InDelta(t, 0.6, ctrl.State().Settings.Temperature, 1e-9)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, ctrl.State().ShowSettings)
}

func TestModel_SettingsClampAtBounds(t *testing.T) {
	m, ctrl := newTestModel(&stubRelay{})
	ctrl.UpdateSetting(conversation.SettingTemperature, "1")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, 1.0, ctrl.State().Settings.Temperature)
}

func TestModel_SettingsKeysDoNotReachInput(t *testing.T) {
	m, ctrl := newTestModel(&stubRelay{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	typeText(t, m, "l")

	assert.Empty(t, ctrl.State().Input)
}

func TestModel_ViewRendersConversation(t *testing.T) {
	m, _ := newTestModel(&stubRelay{})

	view := m.View()
	assert.Contains(t, view, "Advanced AI")
	assert.True(t, strings.Contains(view, "Welcome"), "welcome message should be visible")
}

func TestSlider(t *testing.T) {
	assert.Equal(t, "["+strings.Repeat("─", 20)+"]", slider(0))
	assert.Equal(t, "["+strings.Repeat("━", 20)+"]", slider(1))
	assert.Equal(t, "["+strings.Repeat("━", 20)+"]", slider(3))
}
