package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/form"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	form      *form.Controller
	stats     *usecase.TaskStatsOutput
	err       error

	// State (slices - contain pointers)
	tasks []*domain.Task

	// Components (structs with pointers)
	keys   KeyMap
	styles Styles
	help   help.Model
	query  domain.Query

	// Input state (large structs)
	titleInput  textinput.Model
	descInput   textinput.Model
	dueInput    textinput.Model
	tagInput    textinput.Model
	searchInput textinput.Model

	// Numeric state (smaller types last)
	mode          Mode
	confirmAction ConfirmAction
	formField     FormField
	width         int
	height        int
	cursor        int
	total         int
	confirmTaskID int64
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	di := textinput.New()
	di.Placeholder = "Description (optional)"
	di.CharLimit = 1000

	du := textinput.New()
	du.Placeholder = domain.DateLayout
	du.CharLimit = len(domain.DateLayout)

	tg := textinput.New()
	tg.Placeholder = "Add tag and press enter"
	tg.CharLimit = 50

	si := textinput.New()
	si.Placeholder = "Search tasks..."
	si.CharLimit = 100

	return &Model{
		container:   c,
		form:        form.NewController(),
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		help:        help.New(),
		query:       c.Config.InitialQuery(),
		titleInput:  ti,
		descInput:   di,
		dueInput:    du,
		tagInput:    tg,
		searchInput: si,
		mode:        ModeNormal,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadTasks(),
		m.loadStats(),
	)
}

// loadTasks returns a command that recomputes the task view.
func (m *Model) loadTasks() tea.Cmd {
	query := m.query
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{Query: query})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, Total: out.Total}
	}
}

// loadStats returns a command that recomputes aggregate statistics.
func (m *Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.TaskStatsUseCase().Execute(context.Background(), usecase.TaskStatsInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStatsLoaded{Stats: out}
	}
}

// SelectedTask returns the task under the cursor, or nil if the view is empty.
func (m *Model) SelectedTask() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}

// clampCursor keeps the cursor inside the current view.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// openForm switches to form mode with the inputs mirroring the draft.
func (m *Model) openForm() {
	draft := m.form.Draft()
	m.titleInput.SetValue(draft.Title)
	m.descInput.SetValue(draft.Description)
	m.dueInput.SetValue(domain.FormatDate(draft.DueDate))
	m.tagInput.Reset()
	m.formField = FieldTitle
	m.focusFormField()
	m.mode = ModeForm
}

// closeForm leaves form mode and resets the inputs.
func (m *Model) closeForm() {
	m.titleInput.Reset()
	m.descInput.Reset()
	m.dueInput.Reset()
	m.tagInput.Reset()
	m.blurFormInputs()
	m.mode = ModeNormal
}

// focusFormField focuses the text input behind the current field, if any.
func (m *Model) focusFormField() {
	m.blurFormInputs()
	switch m.formField {
	case FieldTitle:
		m.titleInput.Focus()
	case FieldDescription:
		m.descInput.Focus()
	case FieldDueDate:
		m.dueInput.Focus()
	case FieldTags:
		m.tagInput.Focus()
	case FieldPriority, FieldStatus:
		// Cycled with left/right, no text input to focus.
	}
}

func (m *Model) blurFormInputs() {
	m.titleInput.Blur()
	m.descInput.Blur()
	m.dueInput.Blur()
	m.tagInput.Blur()
}

// syncDraftFromInputs copies the text inputs back into the form draft.
// The due date is parsed on submit, not here.
func (m *Model) syncDraftFromInputs() {
	draft := m.form.Draft()
	if draft == nil {
		return
	}
	draft.Title = m.titleInput.Value()
	draft.Description = m.descInput.Value()
}

// submitForm parses the due date, then routes the draft through the form
// controller.
func (m *Model) submitForm() tea.Cmd {
	m.syncDraftFromInputs()
	draft := m.form.Draft()
	if draft == nil {
		return nil
	}
	if v := strings.TrimSpace(m.dueInput.Value()); v != "" {
		due, err := domain.ParseDate(v)
		if err != nil {
			m.err = err
			return nil
		}
		draft.DueDate = due
	}
	// A tag still sitting in the input counts as entered.
	if tag := strings.TrimSpace(m.tagInput.Value()); tag != "" {
		draft.AddTag(tag)
		m.tagInput.Reset()
	}

	task, err := m.form.Submit(context.Background(), m.container.FormSink())
	if err != nil {
		m.err = err
		return nil
	}
	m.closeForm()
	saved := task.ID
	return func() tea.Msg {
		return MsgTaskSaved{TaskID: saved}
	}
}
