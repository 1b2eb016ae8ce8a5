// Package panel is the bubbletea settings form: toggles, a font size
// slider and a theme select bound to the settings store.
//
// Every interaction calls Store.Update and then Emitter.Play, in that
// order, so feedback always reflects the persisted and projected record.
package panel

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/a11ypanel/internal/keys"
	"github.com/zjrosen/a11ypanel/internal/log"
	"github.com/zjrosen/a11ypanel/internal/settings"
	"github.com/zjrosen/a11ypanel/internal/sound"
	"github.com/zjrosen/a11ypanel/internal/ui/styles"
)

// Store is the part of the settings store the panel needs.
type Store interface {
	Current() settings.Settings
	Update(c settings.Change) settings.Settings
	Reset() settings.Settings
}

// ChangedMsg is emitted after every applied change.
type ChangedMsg struct {
	Settings settings.Settings
}

// Model is the panel state. Like other bubbletea models it is passed by
// value; the store it points to is shared.
type Model struct {
	store    Store
	feedback sound.Emitter
	controls []control
	focused  int

	width, height int

	spinner  spinner.Model
	ticking  bool
	help     help.Model
	showHelp bool
}

// New creates the panel. A nil emitter plays nothing.
func New(store Store, feedback sound.Emitter) Model {
	if feedback == nil {
		feedback = sound.NoopEmitter{}
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		store:    store,
		feedback: feedback,
		controls: defaultControls(),
		spinner:  sp,
		help:     help.New(),
	}
}

// Init starts the preview spinner unless motion is reduced.
func (m Model) Init() tea.Cmd {
	if !styles.CurrentLayout().Animate {
		return nil
	}
	return m.spinner.Tick
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !styles.CurrentLayout().Animate {
			m.ticking = false
			return m, nil
		}
		m.ticking = true
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := keys.For(m.store.Current().KeyboardNavigation)

	switch {
	case key.Matches(msg, keys.Common.Quit), key.Matches(msg, keys.Common.Escape):
		return m, tea.Quit

	case key.Matches(msg, keys.Common.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, k.Up), key.Matches(msg, k.Prev):
		m.focused = (m.focused - 1 + len(m.controls)) % len(m.controls)
		return m, nil

	case key.Matches(msg, k.Down), key.Matches(msg, k.Next):
		m.focused = (m.focused + 1) % len(m.controls)
		return m, nil

	case key.Matches(msg, k.Reset):
		log.Debug(log.CatUI, "Reset to defaults")
		next := m.store.Reset()
		m.feedback.Play()
		return m.afterChange(next)

	case key.Matches(msg, k.Toggle):
		return m.apply(m.activate())

	case key.Matches(msg, k.Left):
		return m.apply(m.step(-1))

	case key.Matches(msg, k.Right):
		return m.apply(m.step(1))
	}
	return m, nil
}

// activate is what space/enter does on the focused control.
func (m Model) activate() settings.Change {
	c := m.controls[m.focused]
	cur := m.store.Current()
	switch c.kind {
	case ControlToggle:
		return toggleChange(c.field, cur)
	case ControlSelect:
		return cycleTheme(cur, 1)
	}
	return nil
}

// step is what left/right does on the focused control.
func (m Model) step(delta int) settings.Change {
	c := m.controls[m.focused]
	cur := m.store.Current()
	switch c.kind {
	case ControlSlider:
		return stepFontSize(cur, delta)
	case ControlSelect:
		return cycleTheme(cur, delta)
	case ControlToggle:
		// Right turns on, left turns off; no-op when already there
		on, _ := cur.Get(c.field)
		if b, ok := on.(bool); ok && b != (delta > 0) {
			return toggleChange(c.field, cur)
		}
	}
	return nil
}

// apply runs update-then-feedback for one change.
func (m Model) apply(c settings.Change) (tea.Model, tea.Cmd) {
	if c == nil {
		return m, nil
	}
	next := m.store.Update(c)
	m.feedback.Play()
	return m.afterChange(next)
}

func (m Model) afterChange(next settings.Settings) (tea.Model, tea.Cmd) {
	changed := func() tea.Msg { return ChangedMsg{Settings: next} }

	// Restart the spinner when motion is allowed again
	if styles.CurrentLayout().Animate && !m.ticking {
		m.ticking = true
		return m, tea.Batch(changed, m.spinner.Tick)
	}
	return m, changed
}

// Focused returns the field of the focused control.
func (m Model) Focused() settings.Field {
	return m.controls[m.focused].field
}

// SetSize updates the view dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.help.Width = width
	return m
}
