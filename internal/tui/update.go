package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.total = msg.Total
		m.clampCursor()
		return m, nil

	case MsgStatsLoaded:
		m.stats = msg.Stats
		return m, nil

	case MsgTaskSaved:
		return m, m.refresh()

	case MsgTaskToggled:
		return m, m.refresh()

	case MsgTaskDeleted:
		m.confirmAction = ConfirmNone
		m.confirmTaskID = 0
		return m, m.refresh()

	case MsgError:
		m.err = msg.Err
		if m.mode == ModeConfirm {
			m.mode = ModeNormal
			m.confirmAction = ConfirmNone
		}
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// refresh recomputes both the task view and the statistics.
func (m *Model) refresh() tea.Cmd {
	return tea.Batch(m.loadTasks(), m.loadStats())
}

// handleKeyMsg dispatches key events by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(msg)
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeForm:
		return m.handleFormKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key clears a stale error message.
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.form.OpenForCreate(m.container.Clock.Now())
		m.openForm()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.form.OpenForEdit(task)
		m.openForm()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		return m, m.toggleTask(task.ID)

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.query.Filter = m.query.Filter.Next()
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Sort):
		m.query.Sort = m.query.Sort.Next()
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.searchInput.SetValue(m.query.Search)
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		m.query = domain.DefaultQuery()
		m.searchInput.Reset()
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// handleSearchKeys applies the search text live as it is typed.
func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		// Abandon the search entirely.
		m.searchInput.Reset()
		m.searchInput.Blur()
		m.query.Search = ""
		m.mode = ModeNormal
		return m, m.loadTasks()

	case msg.Type == tea.KeyEnter:
		// Keep the search and return to navigation.
		m.searchInput.Blur()
		m.mode = ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.query.Search != m.searchInput.Value() {
		m.query.Search = m.searchInput.Value()
		return m, tea.Batch(cmd, m.loadTasks())
	}
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if m.confirmAction == ConfirmDelete {
			id := m.confirmTaskID
			m.mode = ModeNormal
			return m, m.deleteTask(id)
		}
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil

	default:
		// Anything but y cancels.
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmTaskID = 0
		return m, nil
	}
}

func (m *Model) handleHelpKeys(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	return m, nil
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.form.Cancel()
		m.closeForm()
		m.err = nil
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.submitForm()

	case key.Matches(msg, m.keys.NextField):
		m.syncDraftFromInputs()
		m.formField = m.formField.Next()
		m.focusFormField()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.syncDraftFromInputs()
		m.formField = m.formField.Prev()
		m.focusFormField()
		return m, nil
	}

	draft := m.form.Draft()
	if draft == nil {
		return m, nil
	}

	switch m.formField {
	case FieldPriority:
		switch msg.String() {
		case "left", "h":
			draft.Priority = prevPriority(draft.Priority)
		case "right", "l", " ":
			draft.Priority = nextPriority(draft.Priority)
		}
		return m, nil

	case FieldStatus:
		switch msg.String() {
		case "left", "h":
			draft.Status = prevStatus(draft.Status)
		case "right", "l", " ":
			draft.Status = nextStatus(draft.Status)
		}
		return m, nil

	case FieldTags:
		switch msg.Type {
		case tea.KeyEnter:
			if tag := strings.TrimSpace(m.tagInput.Value()); tag != "" {
				draft.AddTag(tag)
				m.tagInput.Reset()
			}
			return m, nil
		case tea.KeyBackspace:
			if m.tagInput.Value() == "" && len(draft.Tags) > 0 {
				draft.RemoveTag(draft.Tags[len(draft.Tags)-1])
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.tagInput, cmd = m.tagInput.Update(msg)
		return m, cmd

	case FieldTitle:
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd

	case FieldDescription:
		var cmd tea.Cmd
		m.descInput, cmd = m.descInput.Update(msg)
		return m, cmd

	case FieldDueDate:
		var cmd tea.Cmd
		m.dueInput, cmd = m.dueInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// toggleTask returns a command that flips a task's completion.
func (m *Model) toggleTask(id int64) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{TaskID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		if out.Task == nil {
			return MsgClearError{}
		}
		return MsgTaskToggled{TaskID: id}
	}
}

// deleteTask returns a command that removes a task.
func (m *Model) deleteTask(id int64) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{TaskID: id}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: id}
	}
}

func nextPriority(p domain.Priority) domain.Priority {
	all := domain.AllPriorities()
	for i, v := range all {
		if v == p {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func prevPriority(p domain.Priority) domain.Priority {
	all := domain.AllPriorities()
	for i, v := range all {
		if v == p {
			return all[(i-1+len(all))%len(all)]
		}
	}
	return all[0]
}

func nextStatus(s domain.Status) domain.Status {
	all := domain.AllStatuses()
	for i, v := range all {
		if v == s {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func prevStatus(s domain.Status) domain.Status {
	all := domain.AllStatuses()
	for i, v := range all {
		if v == s {
			return all[(i-1+len(all))%len(all)]
		}
	}
	return all[0]
}
