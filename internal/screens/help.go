package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// help is a static key reference screen.
type help struct {
	deps Deps
}

func newHelp(deps Deps, _ string) (Screen, error) {
	return &help{deps: deps}, nil
}

func (s *help) Title() string { return "Help" }

func (s *help) Init() tea.Cmd { return nil }

func (s *help) Update(tea.Msg) (tea.Model, tea.Cmd) { return s, nil }

func (s *help) View() string {
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Global", [][2]string{
			{"F1-F6", "open menu"},
			{"tab", "next menu"},
			{"enter", "invoke menu item"},
			{"esc", "close menu / pop screen"},
			{"q, ctrl+c", "quit"},
		}},
		{"Task list", [][2]string{
			{"j/k", "move"},
			{"c", "complete task"},
			{"x", "delete task"},
			{"r", "refresh"},
		}},
		{"Timesheet", [][2]string{
			{"h/l", "previous/next day"},
		}},
	}

	var b strings.Builder
	for _, section := range sections {
		b.WriteString(s.deps.Theme.Style("Header").Render(section.title))
		b.WriteByte('\n')
		for _, key := range section.keys {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				s.deps.Theme.Style("Label").Render(fmt.Sprintf("%-10s", key[0])),
				s.deps.Theme.Style("Text").Render(key[1])))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
