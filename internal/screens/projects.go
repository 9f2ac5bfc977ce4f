package screens

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pmc-dev/pmc/internal/db"
	"github.com/pmc-dev/pmc/internal/models"
)

// projects lists project names with open/done task counts.
type projects struct {
	deps Deps

	rows []projectRow
	err  error
}

type projectRow struct {
	name string
	open int
	done int
}

func newProjects(deps Deps, _ string) (Screen, error) {
	s := &projects{deps: deps}
	s.refresh()
	return s, nil
}

func (s *projects) refresh() {
	ctx := context.Background()

	names, err := s.deps.Tasks.Projects(ctx)
	if err != nil {
		s.err = err
		return
	}

	rows := make([]projectRow, 0, len(names))
	for _, name := range names {
		project := name
		tasks, err := s.deps.Tasks.List(ctx, db.TaskQuery{Project: &project})
		if err != nil {
			s.err = err
			return
		}
		row := projectRow{name: name}
		for _, task := range tasks {
			if task.Status == models.TaskStatusDone {
				row.done++
			} else {
				row.open++
			}
		}
		rows = append(rows, row)
	}
	s.rows = rows
	s.err = nil
}

func (s *projects) Title() string { return "Projects" }

func (s *projects) Init() tea.Cmd { return nil }

func (s *projects) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "r" {
		s.refresh()
	}
	return s, nil
}

func (s *projects) View() string {
	if s.err != nil {
		return s.deps.Theme.Style("Error").Render("error: " + s.err.Error())
	}
	if len(s.rows) == 0 {
		return s.deps.Theme.Style("Muted").Render("No projects yet.")
	}

	var b strings.Builder
	b.WriteString(s.deps.Theme.Style("Header").Render(fmt.Sprintf("%-24s %6s %6s", "Project", "Open", "Done")))
	b.WriteByte('\n')
	for _, row := range s.rows {
		name := s.deps.Theme.Style("Text").Render(fmt.Sprintf("%-24s", row.name))
		open := s.deps.Theme.Style("Warning").Render(fmt.Sprintf("%6d", row.open))
		done := s.deps.Theme.Style("Success").Render(fmt.Sprintf("%6d", row.done))
		b.WriteString(name + " " + open + " " + done + "\n")
	}
	return b.String()
}
