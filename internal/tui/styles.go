package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pmc-dev/pmc/internal/theme"
)

// styleSet caches lipgloss styles derived from the theme engine. It keeps
// its own derived state, so it subscribes to the engine for invalidation:
// a seed change must flush both the engine's caches and this one.
type styleSet struct {
	engine *theme.Engine

	MenuBar      lipgloss.Style
	MenuName     lipgloss.Style
	MenuActive   lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	MenuHotkey   lipgloss.Style
	Separator    lipgloss.Style
	ScreenTitle  lipgloss.Style
	StatusBar    lipgloss.Style
	StatusError  lipgloss.Style
}

// newStyleSet builds the cached styles and registers for invalidation.
func newStyleSet(engine *theme.Engine) *styleSet {
	s := &styleSet{engine: engine}
	s.rebuild()
	engine.Subscribe(s.rebuild)
	return s
}

func (s *styleSet) rebuild() {
	border := lipgloss.Color(s.engine.GetColor("Border"))
	primary := lipgloss.Color(s.engine.GetColor("Primary"))

	s.MenuBar = lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.engine.GetColor("Text"))).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(border)
	s.MenuName = lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.engine.GetColor("Label"))).
		Padding(0, 1)
	s.MenuActive = lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.engine.GetColor("Bright"))).
		Background(primary).
		Bold(true).
		Padding(0, 1)
	s.MenuItem = s.engine.Style("Text").Padding(0, 1)
	s.MenuSelected = s.engine.Style("Highlight").Bold(true).Padding(0, 1)
	s.MenuHotkey = s.engine.Style("Info")
	s.Separator = s.engine.Style("Muted")
	s.ScreenTitle = s.engine.Style("Title").Bold(true)
	s.StatusBar = s.engine.Style("Status")
	s.StatusError = s.engine.Style("Error")
}
