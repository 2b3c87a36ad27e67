// Package tui is the interactive terminal front end: a pantry bar, a grid of
// ranked recipe cards, a recipe detail pane, and a new-recipe form.
//
// The bubbletea update loop is the only goroutine that touches the session.
// Network calls run as commands and their results are applied when the
// corresponding message is handled.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/pantry-genius/internal/common"
	"github.com/Veraticus/pantry-genius/internal/controller"
	"github.com/Veraticus/pantry-genius/internal/tui/themes"
	"github.com/Veraticus/pantry-genius/internal/tui/viewmodel"
)

// Focus identifies which pane receives key presses.
type Focus int

const (
	// FocusPantry is the ingredient input.
	FocusPantry Focus = iota
	// FocusTags is the row of pantry ingredients, for removal.
	FocusTags
	// FocusRecipes is the catalog grid or the open recipe.
	FocusRecipes
	// FocusForm is the new-recipe form.
	FocusForm
)

// Model holds the TUI state.
type Model struct {
	ctx        context.Context
	session    *controller.Session
	theme      themes.Theme
	keymap     KeyMap
	help       help.Model
	spinner    spinner.Model
	input      textinput.Model
	form       recipeForm
	status     string
	config     Config
	focus      Focus
	cursor     int
	tagCursor  int
	width      int
	height     int
	statusErr  bool
	loading    bool
	submitting bool
	quitting   bool
}

// New creates a model over session. The catalog is fetched by Init.
func New(ctx context.Context, session *controller.Session, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	input := textinput.New()
	input.Placeholder = "Add an ingredient and press Enter"
	input.Prompt = "+ "
	input.CharLimit = 80
	input.Focus()

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(cfg.Theme.Primary)),
	)

	m := Model{
		ctx:     ctx,
		session: session,
		config:  cfg,
		theme:   cfg.Theme,
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		spinner: s,
		input:   input,
		form:    newRecipeForm(),
		focus:   FocusPantry,
		loading: true,
	}
	m.resize(cfg.Width, cfg.Height)
	return m
}

// Init starts the initial catalog fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCatalog(), textinput.Blink)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case catalogLoadedMsg:
		m.loading = false
		if err := m.session.ApplyFetch(msg.recipes, msg.err); err != nil {
			m.setStatus(common.UserMessage(err, common.MsgFetchFailed), true)
		} else {
			m.clearStatus()
		}
		m.clampCursors()
		return m, nil

	case recipeCreatedMsg:
		m.submitting = false
		if _, err := m.session.ApplyCreate(msg.draft, msg.recipe, msg.err); err != nil {
			m.setStatus(common.UserMessage(err, common.MsgSubmitFailed), true)
			return m, nil
		}
		m.setStatus(common.MsgRecipeAdded, false)
		m.form.Reset()
		m.setFocus(FocusRecipes)
		m.clampCursors()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forwardToInput(msg)
}

// handleKey dispatches a key press to the focused pane.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.focus {
	case FocusForm:
		return m.handleFormKey(msg)
	case FocusTags:
		return m.handleTagKey(msg)
	case FocusRecipes:
		return m.handleRecipeKey(msg)
	default:
		return m.handlePantryKey(msg)
	}
}

func (m Model) handlePantryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.NextFocus):
		if m.session.Pantry.IsEmpty() {
			return m, m.setFocus(FocusRecipes)
		}
		return m, m.setFocus(FocusTags)

	case key.Matches(msg, m.keymap.PrevFocus), key.Matches(msg, m.keymap.Cancel):
		return m, m.setFocus(FocusRecipes)

	case key.Matches(msg, m.keymap.Select):
		value := m.input.Value()
		if strings.TrimSpace(value) == "" {
			m.session.Controller.OnFindRecipes()
			m.clampCursors()
			return m, m.setFocus(FocusRecipes)
		}
		// The input is kept when the ingredient was already present.
		if m.session.Pantry.Add(value) {
			m.input.Reset()
			m.clampCursors()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleTagKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.session.Pantry.Items()

	switch {
	case key.Matches(msg, m.keymap.NextFocus):
		return m, m.setFocus(FocusRecipes)
	case key.Matches(msg, m.keymap.PrevFocus), key.Matches(msg, m.keymap.Cancel):
		return m, m.setFocus(FocusPantry)
	case key.Matches(msg, m.keymap.Left), key.Matches(msg, m.keymap.Up):
		m.tagCursor = viewmodel.ClampCursor(m.tagCursor-1, len(items))
	case key.Matches(msg, m.keymap.Right), key.Matches(msg, m.keymap.Down):
		m.tagCursor = viewmodel.ClampCursor(m.tagCursor+1, len(items))
	case key.Matches(msg, m.keymap.RemoveTag):
		if len(items) > 0 {
			m.session.Pantry.Remove(items[viewmodel.ClampCursor(m.tagCursor, len(items))])
			m.clampCursors()
		}
		if m.session.Pantry.IsEmpty() {
			return m, m.setFocus(FocusPantry)
		}
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleRecipeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := m.session.Controller

	if ctrl.State().Mode() == controller.ModeDetail {
		switch {
		case key.Matches(msg, m.keymap.Back):
			ctrl.ReturnToCatalog()
			return m, nil
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleCommonRecipeKey(msg)
	}

	visible := len(ctrl.Visible())
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keymap.Left):
		m.cursor = viewmodel.ClampCursor(m.cursor-1, visible)
	case key.Matches(msg, m.keymap.Right):
		m.cursor = viewmodel.ClampCursor(m.cursor+1, visible)
	case key.Matches(msg, m.keymap.Up):
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor+cols < visible {
			m.cursor += cols
		}
	case key.Matches(msg, m.keymap.Select):
		if err := ctrl.SelectVisible(m.cursor); err != nil {
			common.LogDebug("Nothing to open", common.Fields{"cursor": m.cursor})
		}
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	default:
		return m.handleCommonRecipeKey(msg)
	}
	return m, nil
}

// handleCommonRecipeKey handles keys shared by the grid and the detail pane.
func (m Model) handleCommonRecipeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.NextFocus):
		return m, m.setFocus(FocusPantry)
	case key.Matches(msg, m.keymap.PrevFocus):
		if m.session.Pantry.IsEmpty() {
			return m, m.setFocus(FocusPantry)
		}
		return m, m.setFocus(FocusTags)
	case key.Matches(msg, m.keymap.NewRecipe):
		return m, m.setFocus(FocusForm)
	case key.Matches(msg, m.keymap.Refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.fetchCatalog())
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		return m, m.setFocus(FocusRecipes)

	case key.Matches(msg, m.keymap.NextFocus):
		return m, m.form.Move(1)

	case key.Matches(msg, m.keymap.PrevFocus):
		return m, m.form.Move(-1)

	case key.Matches(msg, m.keymap.Submit):
		if m.submitting {
			return m, nil
		}
		draft, err := m.session.Validate(m.form.Value())
		if err != nil {
			m.setStatus(common.UserMessage(err, common.MsgIncompleteForm), true)
			return m, nil
		}
		m.submitting = true
		m.clearStatus()
		return m, tea.Batch(m.createRecipe(draft), m.spinner.Tick)

	case key.Matches(msg, m.keymap.Select) && !m.form.InTextArea():
		return m, m.form.Move(1)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// forwardToInput passes non-key messages such as cursor blinks to the
// focused text input.
func (m Model) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusPantry:
		m.input, cmd = m.input.Update(msg)
	case FocusForm:
		m.form, cmd = m.form.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(focus Focus) tea.Cmd {
	m.focus = focus
	m.input.Blur()
	m.form.Blur()

	switch focus {
	case FocusPantry:
		return m.input.Focus()
	case FocusForm:
		return m.form.Focus()
	case FocusTags:
		m.tagCursor = viewmodel.ClampCursor(m.tagCursor, m.session.Pantry.Len())
	}
	return nil
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

// clampCursors keeps the grid and tag cursors valid after the visible list
// or the pantry changed.
func (m *Model) clampCursors() {
	m.cursor = viewmodel.ClampCursor(m.cursor, len(m.session.Controller.Visible()))
	m.tagCursor = viewmodel.ClampCursor(m.tagCursor, m.session.Pantry.Len())
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.input.Width = max(width-8, 10)
	m.form.SetWidth(width - 8)
}

// columns is the number of recipe cards per row at the current width.
func (m Model) columns() int {
	fit := m.width / (cardWidth + 2)
	return max(1, min(fit, m.config.Columns))
}

// Focus returns the focused pane.
func (m Model) Focus() Focus {
	return m.focus
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.status
}
