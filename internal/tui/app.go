package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

// Model is the task board. It owns the source list and the user's inputs;
// the filtered sequence and the visible page are derived on every render.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error // Load failure; once set only the error is shown

	// State (slices - contain pointers)
	tasks []*domain.Task // Source list in remote order, new tasks prepended

	// Components (structs with pointers)
	keys    KeyMap
	styles  Styles
	help    help.Model
	spinner spinner.Model
	pager   paginator.Model

	// Input state (large structs)
	searchInput textinput.Model
	dateInput   textinput.Model
	addInput    textinput.Model

	// Numeric state (smaller types last)
	mode     Mode
	page     int // Zero-based; not reset when filters change
	pageSize int
	adding   int // Add requests in flight
	width    int
	height   int
	loading  bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	si := textinput.New()
	si.Prompt = ""
	si.Placeholder = "Search by title..."
	si.CharLimit = 100

	di := textinput.New()
	di.Prompt = ""
	di.Placeholder = "YYYY-MM-DD"
	di.CharLimit = len(domain.DateLayout)

	ai := textinput.New()
	ai.Prompt = ""
	ai.Placeholder = "Add a new task..."
	ai.CharLimit = 200

	styles := DefaultStyles()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styles.Spinner

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = styles.PaginationDotActive.Render("•")
	pager.InactiveDot = styles.PaginationDot.Render("•")

	return &Model{
		container:   c,
		mode:        ModeNormal,
		tasks:       []*domain.Task{},
		keys:        DefaultKeyMap(),
		styles:      styles,
		help:        help.New(),
		spinner:     sp,
		pager:       pager,
		searchInput: si,
		dateInput:   di,
		addInput:    ai,
		pageSize:    c.PageSize(),
		loading:     true,
	}
}

// Init starts the one-time load of the collection.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadTasks(),
		m.spinner.Tick,
	)
}

// loadTasks returns a command that fetches the collection once.
func (m *Model) loadTasks() tea.Cmd {
	uc := m.container.LoadTasksUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background())
		if err != nil {
			return MsgLoadFailed{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// addTask returns a command that posts a new task with the given title.
func (m *Model) addTask(title string) tea.Cmd {
	uc := m.container.AddTaskUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.AddTaskInput{Title: title})
		if err != nil {
			return MsgAddFailed{Err: err}
		}
		return MsgTaskAdded{Task: out.Task}
	}
}

// filter returns the current search and date criteria.
func (m *Model) filter() domain.TaskFilter {
	return domain.TaskFilter{
		Search: m.searchInput.Value(),
		Date:   m.dateInput.Value(),
	}
}

// filteredTasks returns the source list narrowed by the current filter.
func (m *Model) filteredTasks() []*domain.Task {
	return domain.FilterTasks(m.tasks, m.filter())
}

// pageCount returns the number of pages of the filtered sequence.
func (m *Model) pageCount() int {
	return domain.PageCount(len(m.filteredTasks()), m.pageSize)
}

// visibleTasks returns the tasks on the current page.
func (m *Model) visibleTasks() []*domain.Task {
	return domain.PageSlice(m.filteredTasks(), m.page, m.pageSize)
}

// Tasks returns the source list.
func (m *Model) Tasks() []*domain.Task {
	return m.tasks
}

// Page returns the zero-based page index.
func (m *Model) Page() int {
	return m.page
}

// Err returns the load failure, if any.
func (m *Model) Err() error {
	return m.err
}

// Loading reports whether the initial load is still in flight.
func (m *Model) Loading() bool {
	return m.loading
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}
