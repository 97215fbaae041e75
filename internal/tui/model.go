// Package tui is a terminal front-end for the conversation controller.
package tui

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"advanced-ai/internal/conversation"
	"advanced-ai/internal/logging"
	"advanced-ai/internal/models"
)

var log = logging.NewLogger("tui")

// relayDoneMsg arrives once a submitted request has been resolved by the
// controller.
type relayDoneMsg struct{}

type settingField int

const (
	fieldModel settingField = iota
	fieldMaxTokens
	fieldTemperature
	fieldCount
)

const (
	maxTokensStep   = 10
	temperatureStep = 0.1
)

// Model is the bubbletea model. It keeps only view state; the conversation
// itself lives in the controller.
type Model struct {
	ctx  context.Context
	ctrl *conversation.Controller

	keys     KeyMap
	help     help.Model
	input    textinput.Model
	viewport viewport.Model
	md       *markdown

	focus  settingField
	width  int
	height int
	ready  bool
}

func New(ctx context.Context, ctrl *conversation.Controller) Model {
	ti := textinput.New()
	ti.Placeholder = "Type your message..."
	ti.CharLimit = 4000
	ti.Prompt = "› "
	ti.Focus()

	return Model{
		ctx:      ctx,
		ctrl:     ctrl,
		keys:     NewKeyMap(),
		help:     help.New(),
		input:    ti,
		viewport: viewport.New(80, 20),
		md:       newMarkdown(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func waitForRelay(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return relayDoneMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.resize()
		m.refresh()
		return m, nil

	case relayDoneMsg:
		m.refresh()
		cmd := m.input.Focus()
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleSettings):
		m.ctrl.ToggleSettingsPanel()
		m.focus = fieldModel
		return m, nil
	case key.Matches(msg, m.keys.ToggleTheme):
		m.ctrl.ToggleTheme()
		m.refresh()
		return m, nil
	}

	state := m.ctrl.State()
	if state.ShowSettings {
		m.handleSettingsKey(msg, state.Settings)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.HalfViewDown()
		return m, nil
	case key.Matches(msg, m.keys.Send):
		m.ctrl.SetInput(m.input.Value())
		done, ok := m.ctrl.SubmitInput(m.ctx)
		if !ok {
			return m, nil
		}
		m.input.Reset()
		m.input.Blur()
		m.refresh()
		return m, waitForRelay(done)
	}

	// The input is disabled while a request is in flight.
	if state.Loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetInput(m.input.Value())
	return m, cmd
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg, s models.Settings) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.ctrl.ToggleSettingsPanel()
	case key.Matches(msg, m.keys.NextField):
		m.focus = (m.focus + 1) % fieldCount
	case key.Matches(msg, m.keys.PrevField):
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	case key.Matches(msg, m.keys.Increase):
		m.adjust(s, 1)
	case key.Matches(msg, m.keys.Decrease):
		m.adjust(s, -1)
	}
}

// adjust moves the focused setting one step and hands the raw value to the
// controller, the same way a slider would.
func (m *Model) adjust(s models.Settings, dir int) {
	switch m.focus {
	case fieldModel:
		idx := 0
		for i, name := range models.AvailableModels {
			if name == s.Model {
				idx = i
			}
		}
		n := len(models.AvailableModels)
		m.ctrl.UpdateSetting(conversation.SettingModel, models.AvailableModels[(idx+dir+n)%n])
	case fieldMaxTokens:
		m.ctrl.UpdateSetting(conversation.SettingMaxTokens, strconv.Itoa(s.MaxTokens+dir*maxTokensStep))
	case fieldTemperature:
		next := math.Round((s.Temperature+float64(dir)*temperatureStep)*10) / 10
		m.ctrl.UpdateSetting(conversation.SettingTemperature, strconv.FormatFloat(next, 'f', 1, 64))
	}
}

const (
	headerHeight = 3
	footerHeight = 5
)

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-headerHeight-footerHeight, 3)
	m.input.Width = max(m.width-20, 10)
	m.help.Width = m.width
}

// refresh re-renders the message log into the viewport and keeps the newest
// message in view.
func (m *Model) refresh() {
	state := m.ctrl.State()
	st := stylesFor(state.Theme)

	bubbleWidth := max(m.viewport.Width*4/5, 20)
	var b strings.Builder
	for _, msg := range state.Messages {
		b.WriteString(m.renderMessage(msg, st, state.Theme, bubbleWidth))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m *Model) renderMessage(msg models.Message, st styles, theme conversation.Theme, width int) string {
	switch {
	case msg.Sender == models.SenderSystem && msg.Text == conversation.PlaceholderText:
		return lipgloss.PlaceHorizontal(m.viewport.Width, lipgloss.Center, st.Generating.Render(msg.Text))
	case msg.Sender == models.SenderSystem:
		return lipgloss.PlaceHorizontal(m.viewport.Width, lipgloss.Center, st.System.MaxWidth(width).Render(msg.Text))
	case msg.Sender == models.SenderUser:
		body := m.md.Render(msg.Text, theme, width-2)
		return lipgloss.PlaceHorizontal(m.viewport.Width, lipgloss.Right, st.User.Render(body))
	default:
		body := m.md.Render(msg.Text, theme, width-2)
		return st.AI.Render(body)
	}
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	state := m.ctrl.State()
	st := stylesFor(state.Theme)

	themeIcon := "☀️"
	if state.Theme == conversation.ThemeLight {
		themeIcon = "🌙"
	}
	header := lipgloss.JoinVertical(lipgloss.Center,
		st.Title.Render("Advanced AI"),
		st.Subtle.Render(fmt.Sprintf("⚙️  ctrl+s   %s ctrl+t", themeIcon)),
	)
	header = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header) + "\n"

	var body, helpView string
	if state.ShowSettings {
		body = lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, m.settingsView(state.Settings, st))
		helpView = m.help.View(settingsKeys{m.keys})
	} else {
		body = m.viewport.View()
		helpView = m.help.View(chatKeys{m.keys})
	}

	inputStyle, button := st.Input, "Send"
	if state.Loading {
		inputStyle, button = st.InputLocked, conversation.PlaceholderText
	}
	inputRow := lipgloss.JoinHorizontal(lipgloss.Center,
		inputStyle.Render(m.input.View()),
		" ",
		st.Button.Render(button),
	)

	return st.App.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, inputRow, st.Subtle.Render(helpView)))
}

func (m Model) settingsView(s models.Settings, st styles) string {
	rows := []string{
		fmt.Sprintf("Model:       ‹ %s ›", s.Model),
		fmt.Sprintf("Max Tokens:  %d  %s", s.MaxTokens, slider(float64(s.MaxTokens-models.MinMaxTokens)/float64(models.MaxMaxTokens-models.MinMaxTokens))),
		fmt.Sprintf("Creativity:  %.1f  %s", s.Temperature, slider((s.Temperature-models.MinTemperature)/(models.MaxTemperature-models.MinTemperature))),
	}

	lines := []string{st.PanelTitle.Render("AI Settings")}
	for i, row := range rows {
		if settingField(i) == m.focus {
			lines = append(lines, st.FocusField.Render("› "+row))
			continue
		}
		lines = append(lines, st.Field.Render(row))
	}
	return st.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func slider(frac float64) string {
	const width = 20
	filled := int(math.Round(frac * width))
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("━", filled) + strings.Repeat("─", width-filled) + "]"
}
