package screens

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pmc-dev/pmc/internal/db"
	"github.com/pmc-dev/pmc/internal/models"
)

// Task list view modes.
const (
	ViewModeList   = "list"
	ViewModeKanban = "kanban"
)

// taskList shows tasks either as a flat list or as a kanban board grouped
// by status, depending on the manifest's view mode.
type taskList struct {
	deps     Deps
	viewMode string

	tasks  []*models.Task
	cursor int
	err    error
}

func newTaskList(deps Deps, viewMode string) (Screen, error) {
	if viewMode == "" {
		viewMode = ViewModeList
	}
	if viewMode != ViewModeList && viewMode != ViewModeKanban {
		return nil, fmt.Errorf("unknown task list view mode %q", viewMode)
	}

	s := &taskList{deps: deps, viewMode: viewMode}
	s.refresh()
	return s, nil
}

func (s *taskList) refresh() {
	tasks, err := s.deps.Tasks.List(context.Background(), db.TaskQuery{})
	if err != nil {
		s.err = err
		s.deps.Logger.Error().Err(err).Msg("load tasks")
		return
	}
	s.tasks = tasks
	s.err = nil
	if s.cursor >= len(s.tasks) {
		s.cursor = max(0, len(s.tasks)-1)
	}
}

func (s *taskList) Title() string {
	if s.viewMode == ViewModeKanban {
		return "Tasks (kanban)"
	}
	return "Tasks"
}

func (s *taskList) Init() tea.Cmd { return nil }

func (s *taskList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "j", "down":
		if s.cursor < len(s.tasks)-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "c":
		if task := s.selected(); task != nil {
			if err := s.deps.Tasks.Complete(context.Background(), task.ID); err != nil {
				s.err = err
			}
			s.refresh()
		}
	case "x":
		if task := s.selected(); task != nil {
			if err := s.deps.Tasks.Delete(context.Background(), task.ID); err != nil {
				s.err = err
			}
			s.refresh()
		}
	case "r":
		s.refresh()
	}
	return s, nil
}

func (s *taskList) selected() *models.Task {
	if s.cursor < 0 || s.cursor >= len(s.tasks) {
		return nil
	}
	return s.tasks[s.cursor]
}

func (s *taskList) View() string {
	if s.err != nil {
		return s.deps.Theme.Style("Error").Render("error: " + s.err.Error())
	}
	if len(s.tasks) == 0 {
		return s.deps.Theme.Style("Muted").Render("No tasks. Add one with: pmc task add <title>")
	}
	if s.viewMode == ViewModeKanban {
		return s.kanbanView()
	}
	return s.listView()
}

func (s *taskList) listView() string {
	var b strings.Builder
	now := time.Now()

	for i, task := range s.tasks {
		line := s.taskLine(task, now)
		if i == s.cursor {
			line = s.deps.Theme.Style("Highlight").Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\n")
	b.WriteString(s.deps.Theme.Style("Muted").Render("j/k move · c complete · x delete · r refresh"))
	return b.String()
}

func (s *taskList) kanbanView() string {
	columns := []struct {
		status models.TaskStatus
		label  string
	}{
		{models.TaskStatusPending, "Pending"},
		{models.TaskStatusActive, "Active"},
		{models.TaskStatusDone, "Done"},
	}

	now := time.Now()
	rendered := make([]string, 0, len(columns))
	for _, col := range columns {
		var b strings.Builder
		b.WriteString(s.deps.Theme.Style("Header").Render(col.label))
		b.WriteByte('\n')
		for _, task := range s.tasks {
			if task.Status != col.status {
				continue
			}
			b.WriteString(s.taskLine(task, now))
			b.WriteByte('\n')
		}
		style := lipgloss.NewStyle().
			Width(28).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(s.deps.Theme.GetColor("Border"))).
			Padding(0, 1)
		rendered = append(rendered, style.Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (s *taskList) taskLine(task *models.Task, now time.Time) string {
	priority := fmt.Sprintf("P%d", task.Priority)
	switch task.Priority {
	case models.PriorityHigh:
		priority = s.deps.Theme.Style("Error").Render(priority)
	case models.PriorityMedium:
		priority = s.deps.Theme.Style("Warning").Render(priority)
	default:
		priority = s.deps.Theme.Style("Muted").Render(priority)
	}

	title := task.Title
	if task.Status == models.TaskStatusDone {
		title = s.deps.Theme.Style("Muted").Render(title)
	} else {
		title = s.deps.Theme.Style("Text").Render(title)
	}

	line := priority + " " + title
	if task.Project != "" {
		line += " " + s.deps.Theme.Style("Label").Render("["+task.Project+"]")
	}
	if task.Overdue(now) {
		line += " " + s.deps.Theme.Style("Error").Render("overdue")
	}
	return line
}
