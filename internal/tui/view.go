package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeForm:
		content = m.viewForm()
	case ModeNormal, ModeSearch, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the task list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.stats != nil {
		b.WriteString(m.viewStats())
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if m.mode == ModeSearch {
		b.WriteString(m.styles.FooterKey.Render("Search: "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	} else if m.query.Search != "" {
		b.WriteString(m.styles.Footer.Render("Search: "+m.query.Search) + "\n\n")
	}

	b.WriteString(m.viewTaskList())

	if m.mode == ModeConfirm {
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title line with the view counts right-aligned.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Taskdeck")

	countText := fmt.Sprintf("showing %d of %d tasks", len(m.tasks), m.total)
	if !m.query.IsDefault() {
		countText = fmt.Sprintf("%s · %s · %s", m.query.Filter.Display(), m.query.Sort.Display(), countText)
	}
	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(countText)

	headerWidth := m.width - 6
	if headerWidth < 40 {
		headerWidth = 40
	}
	spacing := headerWidth - lipgloss.Width(title) - lipgloss.Width(rightText)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewStats renders the aggregate statistics line.
func (m *Model) viewStats() string {
	s := m.stats
	parts := []string{
		m.statPair("total", s.Total),
		m.statPair("done", s.Completed),
		m.statPair("pending", s.Pending),
		m.statPair("high", s.HighPriority),
		m.styles.Stats.Render("rate ") + m.styles.StatsValue.Render(fmt.Sprintf("%d%%", s.CompletionRate)),
	}
	if s.DueToday > 0 {
		parts = append(parts, m.styles.DueSoonBadge.Render(fmt.Sprintf("%d due today", s.DueToday)))
	}
	return strings.Join(parts, m.styles.Stats.Render("  |  "))
}

func (m *Model) statPair(label string, value int) string {
	return m.styles.Stats.Render(label+" ") + m.styles.StatsValue.Render(fmt.Sprintf("%d", value))
}

// viewTaskList renders the cursor-driven task rows.
func (m *Model) viewTaskList() string {
	if len(m.tasks) == 0 {
		return m.styles.TaskDesc.Render("No tasks match the current view. Press n to create one.") + "\n"
	}

	var b strings.Builder
	for i, task := range m.tasks {
		b.WriteString(m.viewTaskRow(task, i == m.cursor))
		b.WriteString("\n")
	}
	return m.styles.TaskList.Render(b.String())
}

// viewTaskRow renders one task line plus its detail line when selected.
func (m *Model) viewTaskRow(task *domain.Task, selected bool) string {
	cursor := "  "
	titleStyle := m.styles.TaskTitle
	if selected {
		cursor = m.styles.CursorSelected.Render("> ")
		titleStyle = m.styles.TaskTitleSelected
	}
	if task.Completed {
		titleStyle = m.styles.TaskTitleDone
	}

	parts := []string{
		cursor + StatusIcon(task.Completed),
		m.styles.PriorityStyle(task.Priority).Render(task.Priority.Display()),
		titleStyle.Render(task.Title),
		m.styles.StatusStyle(task.Status).Render(task.Status.Display()),
		m.styles.TaskID.Render(domain.FormatDate(task.DueDate)),
	}
	if task.DueSoon && !task.Completed {
		parts = append(parts, m.styles.DueSoonBadge.Render("⏰ due soon"))
	}
	line := strings.Join(parts, " ")

	if selected && (task.Description != "" || len(task.Tags) > 0) {
		detail := "      "
		if task.Description != "" {
			detail += m.styles.TaskDesc.Render(task.Description)
		}
		if len(task.Tags) > 0 {
			if task.Description != "" {
				detail += " "
			}
			detail += m.styles.TaskTag.Render("#" + strings.Join(task.Tags, " #"))
		}
		line += "\n" + detail
	}
	return line
}

// viewConfirmDialog renders the delete confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	title := ""
	for _, task := range m.tasks {
		if task.ID == m.confirmTaskID {
			title = task.Title
			break
		}
	}

	prompt := fmt.Sprintf("Delete %q?", title)
	body := m.styles.DialogTitle.Render("Confirm "+m.confirmAction.String()) + "\n\n" +
		m.styles.DialogPrompt.Render(prompt) + "\n\n" +
		m.styles.FooterKey.Render("y") + m.styles.Footer.Render(" confirm   ") +
		m.styles.FooterKey.Render("esc/n") + m.styles.Footer.Render(" cancel")
	return m.styles.Dialog.Render(body)
}

// viewForm renders the task form.
func (m *Model) viewForm() string {
	draft := m.form.Draft()
	if draft == nil {
		return ""
	}

	heading := "New Task"
	if draft.IsEdit() {
		heading = fmt.Sprintf("Edit Task #%d", draft.ID)
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(heading))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.formRow(FieldTitle, m.titleInput.View()))
	b.WriteString(m.formRow(FieldDescription, m.descInput.View()))
	b.WriteString(m.formRow(FieldPriority, m.cycleValue(draft.Priority.Display(), m.formField == FieldPriority)))
	b.WriteString(m.formRow(FieldStatus, m.cycleValue(draft.Status.Display(), m.formField == FieldStatus)))
	b.WriteString(m.formRow(FieldDueDate, m.dueInput.View()))

	tags := m.styles.TaskTag.Render("#" + strings.Join(draft.Tags, " #"))
	if len(draft.Tags) == 0 {
		tags = m.styles.TaskDesc.Render("none")
	}
	b.WriteString(m.formRow(FieldTags, tags+"  "+m.tagInput.View()))

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("tab next field · ctrl+s save · esc cancel"))
	return b.String()
}

// formRow renders one label/value line, highlighting the focused field.
func (m *Model) formRow(field FormField, value string) string {
	label := m.styles.FormLabel
	if field == m.formField {
		label = m.styles.FormLabelFocused
	}
	return label.Render(field.Label()) + " " + m.styles.FormValue.Render(value) + "\n"
}

// cycleValue renders an enum value with arrows when focused.
func (m *Model) cycleValue(value string, focused bool) string {
	if focused {
		return m.styles.FooterKey.Render("← ") + value + m.styles.FooterKey.Render(" →")
	}
	return value
}

// viewHelp renders the help overlay.
func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Keybindings"))
	b.WriteString("\n\n")

	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			b.WriteString(m.styles.HelpKey.Render(fmt.Sprintf("%-12s", binding.Help().Key)))
			b.WriteString(m.styles.HelpDesc.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render("press any key to close"))
	return m.styles.Help.Render(b.String())
}

// viewFooter renders the short help line.
func (m *Model) viewFooter() string {
	return m.help.View(m.keys)
}
