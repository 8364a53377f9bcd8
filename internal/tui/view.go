package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskboard/internal/domain"
)

// View renders the model.
func (m *Model) View() string {
	// Only the error is shown after a failed load
	if m.err != nil {
		return m.styles.App.Render(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
	}

	if m.loading {
		return m.styles.App.Render(m.spinner.View() + " Loading tasks...")
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeSearch, ModeDate, ModeAdd:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the board: inputs, the current page and the pager.
func (m *Model) viewMain() string {
	filtered := m.filteredTasks()

	var b strings.Builder

	b.WriteString(m.viewHeader(len(filtered)))
	b.WriteString("\n")

	b.WriteString(m.viewInput("Search", ModeSearch, m.searchInput.View()))
	b.WriteString(m.viewInput("Date", ModeDate, m.dateInput.View()))
	b.WriteString(m.viewInput("New", ModeAdd, m.addInput.View()))

	b.WriteString(m.viewTaskList(filtered))

	if pager := m.viewPager(len(filtered)); pager != "" {
		b.WriteString(pager)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title and the "showing X of Y tasks" count.
func (m *Model) viewHeader(filteredCount int) string {
	title := m.styles.HeaderText.Render("Todo List")
	rightText := m.styles.HeaderInfo.Render(fmt.Sprintf("showing %d of %d tasks", filteredCount, len(m.tasks)))

	headerWidth := m.contentWidth()
	spacing := headerWidth - lipgloss.Width(title) - lipgloss.Width(rightText)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewInput renders one labelled input line.
func (m *Model) viewInput(label string, mode Mode, field string) string {
	prompt := m.styles.InputPrompt
	if m.mode == mode {
		prompt = m.styles.InputPromptActive
	}
	return prompt.Render(label+":") + " " + field + "\n"
}

// viewTaskList renders the tasks on the current page.
func (m *Model) viewTaskList(filtered []*domain.Task) string {
	if len(m.tasks) == 0 {
		return m.styles.TaskList.Render(m.styles.Footer.Render("No tasks yet. Press a to add one.")) + "\n"
	}
	if len(filtered) == 0 {
		return m.styles.TaskList.Render(m.styles.Footer.Render("No tasks match the current filters.")) + "\n"
	}

	page := domain.PageSlice(filtered, m.page, m.pageSize)
	if len(page) == 0 {
		return m.styles.TaskList.Render(m.styles.Footer.Render("This page is empty. Press g for the first page.")) + "\n"
	}

	rows := make([]string, 0, len(page))
	for _, task := range page {
		rows = append(rows, m.renderTaskItem(task))
	}
	return m.styles.TaskList.Render(strings.Join(rows, "\n")) + "\n"
}

// renderTaskItem renders a single task row.
func (m *Model) renderTaskItem(task *domain.Task) string {
	check := "[ ]"
	if task.Completed {
		check = "[x]"
	}

	title := m.styles.TitleStyle(task.Completed).Render(task.Title)
	date := m.styles.TaskDate.Render("Date: " + task.DisplayDate)
	status := m.styles.StatusStyle(task.Completed).Render(task.StatusLabel())

	return fmt.Sprintf("%s %s  %s  %s", check, title, date, status)
}

// viewPager renders the page dots and the page position.
func (m *Model) viewPager(filteredCount int) string {
	pages := domain.PageCount(filteredCount, m.pageSize)
	if pages == 0 {
		return ""
	}

	m.pager.PerPage = m.pageSize
	m.pager.SetTotalPages(filteredCount)
	m.pager.Page = min(m.page, pages-1)

	info := m.styles.PageInfo.Render(fmt.Sprintf("Page %d of %d", m.page+1, pages))
	if pages == 1 {
		return info
	}
	return m.pager.View() + "  " + info
}

// viewFooter renders the key hints for the current mode.
func (m *Model) viewFooter() string {
	var hints string
	if m.mode.IsInputMode() {
		hints = m.help.ShortHelpView(m.keys.InputHelp())
	} else {
		hints = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	if m.adding > 0 {
		return m.spinner.View() + " Adding task...  " + hints
	}
	return hints
}

// viewHelp renders the help overlay.
func (m *Model) viewHelp() string {
	title := m.styles.DialogTitle.Render("KEYBOARD SHORTCUTS")
	content := m.help.FullHelpView(m.keys.FullHelp())
	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", content))
}

// contentWidth returns the usable width inside the app padding.
func (m *Model) contentWidth() int {
	width := m.width - 6
	if width < 40 {
		width = 40
	}
	return width
}
