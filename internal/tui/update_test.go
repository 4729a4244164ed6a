package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

var tuiNow = time.Date(2026, 2, 16, 12, 0, 0, 0, time.Local)

func newTestModel(tasks ...*domain.Task) (*Model, *testutil.MockTaskRepository) {
	repo := testutil.NewMockTaskRepository()
	repo.NextIDN = 100
	repo.Seed(tasks...)
	c := app.NewWithDeps(repo, &testutil.MockClock{NowTime: tuiNow}, &testutil.MockLogger{}, nil)
	m := New(c)
	m.width = 100
	m.height = 40
	return m, repo
}

func makeTask(id int64, title string) *domain.Task {
	draft := domain.NewTaskDraft(tuiNow)
	draft.Title = title
	return domain.NewTask(id, draft, tuiNow)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes a command and feeds the resulting message back into the model.
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				_, _ = m.Update(c())
			}
		}
		return
	}
	_, _ = m.Update(msg)
}

func TestUpdate_MsgTasksLoaded(t *testing.T) {
	m, _ := newTestModel()
	m.cursor = 5

	_, _ = m.Update(MsgTasksLoaded{Tasks: []*domain.Task{makeTask(1, "A")}, Total: 3})

	assert.Len(t, m.tasks, 1)
	assert.Equal(t, 3, m.total)
	assert.Equal(t, 0, m.cursor, "cursor clamps into the new view")
}

func TestUpdate_Navigation(t *testing.T) {
	m, _ := newTestModel()
	m.tasks = []*domain.Task{makeTask(1, "A"), makeTask(2, "B"), makeTask(3, "C")}

	_, _ = m.Update(keyRunes("j"))
	assert.Equal(t, 1, m.cursor)
	_, _ = m.Update(keyRunes("j"))
	_, _ = m.Update(keyRunes("j"))
	assert.Equal(t, 2, m.cursor, "cursor stops at the last row")

	_, _ = m.Update(keyRunes("k"))
	assert.Equal(t, 1, m.cursor)
	_, _ = m.Update(keyRunes("k"))
	_, _ = m.Update(keyRunes("k"))
	assert.Equal(t, 0, m.cursor, "cursor stops at the first row")
}

func TestUpdate_NewTaskOpensForm(t *testing.T) {
	m, _ := newTestModel()

	_, _ = m.Update(keyRunes("n"))

	assert.Equal(t, ModeForm, m.mode)
	require.True(t, m.form.IsOpen())
	assert.False(t, m.form.Draft().IsEdit())
	assert.Equal(t, domain.PriorityMedium, m.form.Draft().Priority)
}

func TestUpdate_EditOpensPrefilledForm(t *testing.T) {
	task := makeTask(7, "Existing")
	m, _ := newTestModel(task)
	m.tasks = []*domain.Task{task}

	_, _ = m.Update(keyRunes("e"))

	assert.Equal(t, ModeForm, m.mode)
	require.True(t, m.form.IsOpen())
	assert.Equal(t, int64(7), m.form.Draft().ID)
	assert.Equal(t, "Existing", m.titleInput.Value())
}

func TestUpdate_EditWithoutSelectionIsNoop(t *testing.T) {
	m, _ := newTestModel()

	_, _ = m.Update(keyRunes("e"))

	assert.Equal(t, ModeNormal, m.mode)
	assert.False(t, m.form.IsOpen())
}

func TestUpdate_ToggleFlipsCompletion(t *testing.T) {
	task := makeTask(1, "Flip")
	m, repo := newTestModel(task)
	m.tasks = []*domain.Task{task}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	runCmd(t, m, cmd)

	stored, err := repo.Get(1)
	require.NoError(t, err)
	assert.True(t, stored.Completed)
}

func TestUpdate_DeleteRequiresConfirmation(t *testing.T) {
	task := makeTask(1, "Doomed")
	m, repo := newTestModel(task)
	m.tasks = []*domain.Task{task}

	_, _ = m.Update(keyRunes("d"))
	assert.Equal(t, ModeConfirm, m.mode)
	assert.Equal(t, ConfirmDelete, m.confirmAction)
	assert.Equal(t, int64(1), m.confirmTaskID)

	// Task is untouched until confirmed.
	stored, _ := repo.Get(1)
	assert.NotNil(t, stored)

	_, cmd := m.Update(keyRunes("y"))
	runCmd(t, m, cmd)

	stored, _ = repo.Get(1)
	assert.Nil(t, stored)
	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_DeleteCancelled(t *testing.T) {
	task := makeTask(1, "Spared")
	m, repo := newTestModel(task)
	m.tasks = []*domain.Task{task}

	_, _ = m.Update(keyRunes("d"))
	_, _ = m.Update(keyRunes("n"))

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, ConfirmNone, m.confirmAction)
	stored, _ := repo.Get(1)
	assert.NotNil(t, stored, "cancel keeps the task")
}

func TestUpdate_FilterAndSortCycling(t *testing.T) {
	m, _ := newTestModel()
	require.Equal(t, domain.FilterAll, m.query.Filter)

	_, _ = m.Update(keyRunes("f"))
	assert.Equal(t, domain.FilterActive, m.query.Filter)

	_, _ = m.Update(keyRunes("o"))
	assert.Equal(t, domain.SortByPriority, m.query.Sort)

	_, _ = m.Update(keyRunes("F"))
	assert.Equal(t, domain.DefaultQuery(), m.query)
}

func TestUpdate_SearchMode(t *testing.T) {
	m, _ := newTestModel()

	_, _ = m.Update(keyRunes("/"))
	assert.Equal(t, ModeSearch, m.mode)

	_, _ = m.Update(keyRunes("r"))
	_, _ = m.Update(keyRunes("e"))
	assert.Equal(t, "re", m.query.Search, "search applies as typed")

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, "re", m.query.Search, "enter keeps the search")

	_, _ = m.Update(keyRunes("/"))
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, m.query.Search, "escape abandons the search")
}

func TestUpdate_FormEscapeCancels(t *testing.T) {
	m, _ := newTestModel()
	_, _ = m.Update(keyRunes("n"))
	_, _ = m.Update(keyRunes("x"))

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeNormal, m.mode)
	assert.False(t, m.form.IsOpen(), "escape discards the draft")
	assert.Empty(t, m.titleInput.Value())
}

func TestUpdate_FormFieldCycling(t *testing.T) {
	m, _ := newTestModel()
	_, _ = m.Update(keyRunes("n"))
	require.Equal(t, FieldTitle, m.formField)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldDescription, m.formField)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldTitle, m.formField)
}

func TestUpdate_FormPriorityCycling(t *testing.T) {
	m, _ := newTestModel()
	_, _ = m.Update(keyRunes("n"))
	m.formField = FieldPriority
	require.Equal(t, domain.PriorityMedium, m.form.Draft().Priority)

	_, _ = m.Update(keyRunes("l"))
	assert.Equal(t, domain.PriorityHigh, m.form.Draft().Priority)

	_, _ = m.Update(keyRunes("h"))
	_, _ = m.Update(keyRunes("h"))
	assert.Equal(t, domain.PriorityLow, m.form.Draft().Priority)
}

func TestUpdate_FormTagEditing(t *testing.T) {
	m, _ := newTestModel()
	_, _ = m.Update(keyRunes("n"))
	m.formField = FieldTags
	m.focusFormField()

	_, _ = m.Update(keyRunes("w"))
	_, _ = m.Update(keyRunes("o"))
	_, _ = m.Update(keyRunes("r"))
	_, _ = m.Update(keyRunes("k"))
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"work"}, m.form.Draft().Tags)
	assert.Empty(t, m.tagInput.Value(), "input clears after adding a tag")

	// Backspace on an empty input removes the last tag.
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, m.form.Draft().Tags)
}

func TestUpdate_FormSubmitEmptyTitle(t *testing.T) {
	m, _ := newTestModel()
	_, _ = m.Update(keyRunes("n"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.ErrorIs(t, m.err, domain.ErrEmptyTitle)
	assert.Equal(t, ModeForm, m.mode, "failed submit keeps the form open")
}

func TestUpdate_FormSubmitCreatesTask(t *testing.T) {
	m, repo := newTestModel()
	_, _ = m.Update(keyRunes("n"))
	m.titleInput.SetValue("Ship it")
	m.dueInput.SetValue("2026-02-17")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	runCmd(t, m, cmd)

	assert.Equal(t, ModeNormal, m.mode)
	tasks, err := repo.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Ship it", tasks[0].Title)
	assert.True(t, tasks[0].DueSoon, "due tomorrow is flagged")
}

func TestUpdate_FormSubmitKeepsPendingTag(t *testing.T) {
	m, repo := newTestModel()
	_, _ = m.Update(keyRunes("n"))
	m.titleInput.SetValue("Tagged")
	m.formField = FieldTags
	m.focusFormField()
	for _, r := range "work" {
		_, _ = m.Update(keyRunes(string(r)))
	}

	// Submit without pressing enter on the tag first.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	runCmd(t, m, cmd)

	tasks, err := repo.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, []string{"work"}, tasks[0].Tags)
}

func TestUpdate_FormSubmitBadDate(t *testing.T) {
	m, _ := newTestModel()
	_, _ = m.Update(keyRunes("n"))
	m.titleInput.SetValue("X")
	m.dueInput.SetValue("17/02/2026")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.ErrorIs(t, m.err, domain.ErrInvalidDate)
	assert.True(t, m.form.IsOpen())
}

func TestUpdate_HelpMode(t *testing.T) {
	m, _ := newTestModel()

	_, _ = m.Update(keyRunes("?"))
	assert.Equal(t, ModeHelp, m.mode)

	_, _ = m.Update(keyRunes("x"))
	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_MsgError(t *testing.T) {
	m, _ := newTestModel()
	m.mode = ModeConfirm
	m.confirmAction = ConfirmDelete

	_, _ = m.Update(MsgError{Err: assert.AnError})

	assert.Equal(t, assert.AnError, m.err)
	assert.Equal(t, ModeNormal, m.mode)

	_, _ = m.Update(MsgClearError{})
	assert.Nil(t, m.err)
}
