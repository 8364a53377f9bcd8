package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskboard/internal/domain"
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

	case spinner.TickMsg:
		if !m.loading && m.adding == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MsgTasksLoaded:
		m.loading = false
		m.tasks = msg.Tasks
		if m.tasks == nil {
			m.tasks = []*domain.Task{}
		}
		return m, nil

	case MsgLoadFailed:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case MsgTaskAdded:
		if m.adding > 0 {
			m.adding--
		}
		tasks := make([]*domain.Task, 0, len(m.tasks)+1)
		tasks = append(tasks, msg.Task)
		m.tasks = append(tasks, m.tasks...)
		m.addInput.Reset()
		return m, nil

	case MsgAddFailed:
		if m.adding > 0 {
			m.adding--
		}
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches key input by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeSearch, ModeDate, ModeAdd:
		return m.handleInputMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	// A failed load leaves nothing to interact with
	if m.err != nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.PrevPage):
		m.prevPage()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.nextPage()
		return m, nil

	case key.Matches(msg, m.keys.FirstPage):
		m.page = 0
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m, m.enterInputMode(ModeSearch)

	case key.Matches(msg, m.keys.Date):
		return m, m.enterInputMode(ModeDate)

	case key.Matches(msg, m.keys.Add):
		return m, m.enterInputMode(ModeAdd)

	case key.Matches(msg, m.keys.ClearFilters):
		m.searchInput.Reset()
		m.dateInput.Reset()
		return m, nil
	}

	return m, nil
}

// prevPage moves back one page unless already on the first.
func (m *Model) prevPage() {
	if m.page > 0 {
		m.page--
	}
}

// nextPage moves forward one page unless already on the last.
func (m *Model) nextPage() {
	if m.page < m.pageCount()-1 {
		m.page++
	}
}

// activeInput returns the input focused by the current mode.
func (m *Model) activeInput() *textinput.Model {
	switch m.mode {
	case ModeSearch:
		return &m.searchInput
	case ModeDate:
		return &m.dateInput
	case ModeAdd:
		return &m.addInput
	case ModeNormal, ModeHelp:
		return nil
	}
	return nil
}

// enterInputMode switches to an input mode and focuses its field.
func (m *Model) enterInputMode(mode Mode) tea.Cmd {
	m.mode = mode
	return m.activeInput().Focus()
}

// leaveInputMode blurs the focused field and returns to normal mode.
func (m *Model) leaveInputMode() {
	if in := m.activeInput(); in != nil {
		in.Blur()
	}
	m.mode = ModeNormal
}

// handleInputMode handles keys while search, date or add input is focused.
// Search and date apply as they are typed.
func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.leaveInputMode()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.mode == ModeAdd {
			return m, m.submitAdd()
		}
		m.leaveInputMode()
		return m, nil
	}

	in := m.activeInput()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return m, cmd
}

// submitAdd posts the pending title. Blank titles are ignored.
func (m *Model) submitAdd() tea.Cmd {
	title := m.addInput.Value()
	if strings.TrimSpace(title) == "" {
		return nil
	}

	m.leaveInputMode()
	m.adding++
	return tea.Batch(m.addTask(title), m.spinner.Tick)
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}
