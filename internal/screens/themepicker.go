package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// preset is a named seed color offered by the picker.
type preset struct {
	name string
	hex  string
}

var presets = []preset{
	{"Sky", "#33AAFF"},
	{"Ember", "#FF6633"},
	{"Moss", "#44AA66"},
	{"Violet", "#9966FF"},
	{"Gold", "#DDAA33"},
	{"Slate", "#8899AA"},
	{"Rose", "#EE6688"},
}

// themePicker applies a new seed color through the theme engine.
type themePicker struct {
	deps Deps

	cursor int
	status string
}

func newThemePicker(deps Deps, _ string) (Screen, error) {
	s := &themePicker{deps: deps}
	for i, p := range presets {
		if strings.EqualFold(p.hex, deps.Theme.GetCurrentThemeHex()) {
			s.cursor = i
			break
		}
	}
	return s, nil
}

func (s *themePicker) Title() string { return "Theme" }

func (s *themePicker) Init() tea.Cmd { return nil }

func (s *themePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "j", "down":
		if s.cursor < len(presets)-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "enter":
		chosen := presets[s.cursor]
		if err := s.deps.Theme.SetTheme(chosen.hex); err != nil {
			s.status = "error: " + err.Error()
		} else {
			s.status = fmt.Sprintf("theme set to %s (%s)", chosen.name, chosen.hex)
		}
	}
	return s, nil
}

func (s *themePicker) View() string {
	var b strings.Builder
	b.WriteString(s.deps.Theme.Style("Header").Render("Pick a seed color"))
	b.WriteString("\n\n")

	for i, p := range presets {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(p.hex)).
			Render("      ")
		line := fmt.Sprintf("%s %-8s %s", swatch, p.name, s.deps.Theme.Style("Muted").Render(p.hex))
		if i == s.cursor {
			line = s.deps.Theme.Style("Highlight").Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(s.deps.Theme.Style("Muted").Render(
		"current seed " + s.deps.Theme.GetCurrentThemeHex() + " · enter to apply"))
	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(s.deps.Theme.Style("Info").Render(s.status))
	}
	return b.String()
}
