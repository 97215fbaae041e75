// Package conversation holds the client-side conversation state and drives
// the request lifecycle against the relay. Front-ends render State() and call
// the controller's operations; they never mutate state directly.
package conversation

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"advanced-ai/internal/logging"
	"advanced-ai/internal/models"
)

const (
	WelcomeText     = "👋 Welcome to Advanced AI! I'm your intelligent assistant."
	PlaceholderText = "Generating....."
	FailureText     = "Sorry, something went wrong. Please try again."
)

// Setting names accepted by UpdateSetting.
const (
	SettingModel       = "model"
	SettingMaxTokens   = "maxTokens"
	SettingTemperature = "temperature"
)

var log = logging.NewLogger("conversation")

// Relay sends a conversation snapshot upstream and returns the reply text.
type Relay interface {
	Complete(ctx context.Context, messages []models.Message, settings models.Settings) (string, error)
}

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// State is everything a front-end needs to render.
type State struct {
	Messages     []models.Message
	Input        string
	Loading      bool
	Theme        Theme
	Settings     models.Settings
	ShowSettings bool
}

// Controller owns the conversation state. All methods are safe for
// concurrent use; the loading flag admits one relay call at a time.
type Controller struct {
	relay Relay

	mu     sync.Mutex
	state  State
	lastID int64
}

func NewController(relay Relay) *Controller {
	return &Controller{
		relay: relay,
		state: State{
			Messages: []models.Message{{ID: 0, Text: WelcomeText, Sender: models.SenderSystem}},
			Theme:    ThemeDark,
			Settings: models.DefaultSettings(),
		},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Messages = append([]models.Message(nil), c.state.Messages...)
	return s
}

func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	c.state.Input = text
	c.mu.Unlock()
}

// SubmitInput submits whatever is in the input buffer.
func (c *Controller) SubmitInput(ctx context.Context) (<-chan struct{}, bool) {
	c.mu.Lock()
	text := c.state.Input
	c.mu.Unlock()
	return c.Submit(ctx, text)
}

// Submit appends text as a user message plus a placeholder and starts one
// relay call in the background. It returns accepted=false and does nothing
// when text is blank or a call is already in flight. The returned channel is
// closed once the placeholder has been replaced and loading is cleared.
func (c *Controller) Submit(ctx context.Context, text string) (<-chan struct{}, bool) {
	call, ok := c.begin(text)
	if !ok {
		return nil, false
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.run(ctx, call)
	}()
	return done, true
}

type pendingCall struct {
	placeholderID int64
	snapshot      []models.Message
	settings      models.Settings
}

func (c *Controller) begin(text string) (pendingCall, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if strings.TrimSpace(text) == "" || c.state.Loading {
		return pendingCall{}, false
	}

	user := models.Message{ID: c.nextID(), Text: text, Sender: models.SenderUser}
	placeholder := models.Message{ID: c.nextID(), Text: PlaceholderText, Sender: models.SenderSystem}

	snapshot := make([]models.Message, 0, len(c.state.Messages)+1)
	snapshot = append(snapshot, c.state.Messages...)
	snapshot = append(snapshot, user)

	c.state.Messages = append(append([]models.Message(nil), snapshot...), placeholder)
	c.state.Input = ""
	c.state.Loading = true

	return pendingCall{
		placeholderID: placeholder.ID,
		snapshot:      snapshot,
		settings:      c.state.Settings,
	}, true
}

func (c *Controller) run(ctx context.Context, call pendingCall) {
	var reply string
	var err error

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("relay panicked: %v", r)
		}
		c.finish(call.placeholderID, reply, err)
	}()

	reply, err = c.relay.Complete(ctx, call.snapshot, call.settings)
}

// finish swaps the placeholder for the outcome and clears the loading flag
// in one state update.
func (c *Controller) finish(placeholderID int64, reply string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	outcome := models.Message{ID: c.nextID(), Text: reply, Sender: models.SenderAI}
	if err != nil {
		log.WithError(err).WithField("placeholder_id", placeholderID).Warn("Chat request failed")
		outcome = models.Message{ID: outcome.ID, Text: FailureText, Sender: models.SenderSystem}
	}

	kept := make([]models.Message, 0, len(c.state.Messages))
	for _, m := range c.state.Messages {
		if m.ID != placeholderID {
			kept = append(kept, m)
		}
	}
	c.state.Messages = append(kept, outcome)
	c.state.Loading = false
}

func (c *Controller) nextID() int64 {
	c.lastID++
	return c.lastID
}

// UpdateSetting applies a raw value from the settings panel. Numeric
// settings are parsed and clamped to their ranges; values that do not parse
// and unknown names leave the settings untouched.
func (c *Controller) UpdateSetting(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Settings
	switch name {
	case SettingModel:
		next.Model = value
	case SettingMaxTokens, SettingTemperature:
		f, ok := parseNumber(value)
		if !ok {
			log.WithFields(logrus.Fields{"setting": name, "value": value}).Debug("Ignoring non-numeric setting")
			return
		}
		if name == SettingMaxTokens {
			next.MaxTokens = int(clampFloat(f, models.MinMaxTokens, models.MaxMaxTokens))
		} else {
			next.Temperature = clampFloat(f, models.MinTemperature, models.MaxTemperature)
		}
	default:
		return
	}
	c.state.Settings = next
}

func (c *Controller) ToggleTheme() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Theme == ThemeDark {
		c.state.Theme = ThemeLight
	} else {
		c.state.Theme = ThemeDark
	}
}

// SetTheme is used at startup to honour a configured theme.
func (c *Controller) SetTheme(t Theme) {
	if t != ThemeDark && t != ThemeLight {
		return
	}
	c.mu.Lock()
	c.state.Theme = t
	c.mu.Unlock()
}

func (c *Controller) ToggleSettingsPanel() {
	c.mu.Lock()
	c.state.ShowSettings = !c.state.ShowSettings
	c.mu.Unlock()
}

func parseNumber(value string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func clampFloat(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
