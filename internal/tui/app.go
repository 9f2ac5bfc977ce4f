// Package tui implements the pmc shell: a menu bar over a stack of screens.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/pmc-dev/pmc/internal/logging"
	"github.com/pmc-dev/pmc/internal/menu"
	"github.com/pmc-dev/pmc/internal/screens"
	"github.com/pmc-dev/pmc/internal/theme"
)

// Config wires the shell to its collaborators.
type Config struct {
	Registry *menu.Registry
	Theme    *theme.Engine
	Stack    *Stack
	Version  string
}

// Run launches the pmc TUI program.
func Run(cfg Config) error {
	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	cfg    Config
	styles *styleSet
	logger zerolog.Logger

	width  int
	height int

	menuOpen  bool
	menuIndex int
	itemIndex int
	status    string
	statusErr bool
}

func newModel(cfg Config) model {
	if cfg.Stack == nil {
		cfg.Stack = NewStack()
	}
	return model{
		cfg:    cfg,
		styles: newStyleSet(cfg.Theme),
		logger: logging.Component("tui"),
		status: "F1-F6 or tab to open menus",
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.forwardToScreen(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// F-keys open a menu from anywhere.
	for i := range menu.CanonicalMenus {
		if key == fmt.Sprintf("f%d", i+1) {
			return m.openMenu(i), nil
		}
	}

	if m.menuOpen {
		return m.handleMenuKey(key)
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		return m.openMenu(0), nil
	case "esc":
		if m.cfg.Stack.Len() > 0 {
			m.cfg.Stack.Pop()
		}
		return m, nil
	}
	return m.forwardToScreen(msg)
}

func (m model) handleMenuKey(key string) (tea.Model, tea.Cmd) {
	items := m.cfg.Registry.GetMenuItems(menu.CanonicalMenus[m.menuIndex])

	switch key {
	case "esc":
		m.menuOpen = false
	case "tab", "right":
		return m.openMenu((m.menuIndex + 1) % len(menu.CanonicalMenus)), nil
	case "left":
		return m.openMenu((m.menuIndex + len(menu.CanonicalMenus) - 1) % len(menu.CanonicalMenus)), nil
	case "down", "j":
		m.itemIndex = nextSelectable(items, m.itemIndex, 1)
	case "up", "k":
		m.itemIndex = nextSelectable(items, m.itemIndex, -1)
	case "enter":
		if m.itemIndex >= 0 && m.itemIndex < len(items) {
			return m.invoke(items[m.itemIndex])
		}
	default:
		// Single-rune keys match item hotkeys.
		runes := []rune(key)
		if len(runes) == 1 {
			for _, item := range items {
				if item.Hotkey == runes[0] && !item.IsSeparator() {
					return m.invoke(item)
				}
			}
		}
	}
	return m, nil
}

func (m model) invoke(item menu.Item) (tea.Model, tea.Cmd) {
	m.menuOpen = false
	if item.Action == nil {
		return m, nil
	}
	if err := item.Action(); err != nil {
		m.logger.Error().Err(err).Str("item", item.Label).Msg("menu action failed")
		m.status = "error: " + err.Error()
		m.statusErr = true
		return m, nil
	}
	m.status = item.Label
	m.statusErr = false
	return m, nil
}

func (m model) openMenu(index int) model {
	m.menuOpen = true
	m.menuIndex = index
	items := m.cfg.Registry.GetMenuItems(menu.CanonicalMenus[index])
	m.itemIndex = nextSelectable(items, -1, 1)
	return m
}

func (m model) forwardToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	top := m.cfg.Stack.Top()
	if top == nil {
		return m, nil
	}
	updated, cmd := top.Update(msg)
	if screen, ok := updated.(screens.Screen); ok {
		m.cfg.Stack.Replace(screen)
	}
	return m, cmd
}

// nextSelectable steps through items skipping separators. A start of -1
// finds the first selectable item.
func nextSelectable(items []menu.Item, start, step int) int {
	if len(items) == 0 {
		return -1
	}
	i := start
	for range items {
		i += step
		if i < 0 || i >= len(items) {
			break
		}
		if !items[i].IsSeparator() {
			return i
		}
	}
	if start >= 0 {
		return start
	}
	return -1
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.menuBarView())
	b.WriteByte('\n')

	if m.menuOpen {
		b.WriteString(m.dropdownView())
		b.WriteByte('\n')
	}

	if top := m.cfg.Stack.Top(); top != nil {
		b.WriteString(m.styles.ScreenTitle.Render(top.Title()))
		b.WriteString("\n\n")
		b.WriteString(top.View())
	} else {
		b.WriteString(m.styles.Separator.Render("No screen open. Pick one from a menu."))
	}

	b.WriteString("\n\n")
	b.WriteString(m.statusBarView())
	return b.String()
}

func (m model) menuBarView() string {
	parts := make([]string, 0, len(menu.CanonicalMenus))
	for i, name := range menu.CanonicalMenus {
		label := fmt.Sprintf("F%d %s", i+1, name)
		if m.menuOpen && i == m.menuIndex {
			parts = append(parts, m.styles.MenuActive.Render(label))
		} else {
			parts = append(parts, m.styles.MenuName.Render(label))
		}
	}
	return m.styles.MenuBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (m model) dropdownView() string {
	items := m.cfg.Registry.GetMenuItems(menu.CanonicalMenus[m.menuIndex])
	if len(items) == 0 {
		return m.styles.Separator.Render("  (empty)")
	}

	var b strings.Builder
	for i, item := range items {
		if item.IsSeparator() {
			b.WriteString(m.styles.Separator.Render("  ────────"))
			b.WriteByte('\n')
			continue
		}
		line := item.Label
		if item.Hotkey != 0 {
			line = fmt.Sprintf("%s %s", m.styles.MenuHotkey.Render(string(item.Hotkey)), line)
		}
		if i == m.itemIndex {
			b.WriteString(m.styles.MenuSelected.Render("> " + line))
		} else {
			b.WriteString(m.styles.MenuItem.Render("  " + line))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// statusBarView paints with raw escape sequences from the engine; the reset
// comes from the same snapshot so the bar never leaks color into the next
// line.
func (m model) statusBarView() string {
	seq := m.cfg.Theme.GetAnsiSequence("Status", false)
	if m.statusErr {
		seq = m.cfg.Theme.GetAnsiSequence("Error", false)
	}

	text := fmt.Sprintf("%s · seed %s · %d screen(s)",
		m.status, m.cfg.Theme.GetCurrentThemeHex(), m.cfg.Stack.Len())
	if seq == "" {
		return text
	}
	return seq + text + theme.Reset
}
