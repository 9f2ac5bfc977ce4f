package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/pmc-dev/pmc/internal/config"
	"github.com/pmc-dev/pmc/internal/menu"
	"github.com/pmc-dev/pmc/internal/theme"
)

func testModel(t *testing.T) (model, *menu.Registry) {
	t.Helper()

	registry := menu.NewRegistry()
	m := newModel(Config{
		Registry: registry,
		Theme:    theme.New(nil),
		Stack:    NewStack(),
	})
	return m, registry
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMenuOpensAndInvokes(t *testing.T) {
	m, registry := testModel(t)

	invoked := false
	require.NoError(t, registry.AddMenuItem("Tasks", "Do it", 'd', func() error {
		invoked = true
		return nil
	}, menu.DefaultOrder))

	updated, _ := m.Update(key("f1"))
	m = updated.(model)
	require.True(t, m.menuOpen)

	updated, _ = m.Update(key("enter"))
	m = updated.(model)
	require.True(t, invoked)
	require.False(t, m.menuOpen)
	require.Equal(t, "Do it", m.status)
}

func TestMenuHotkeyInvokes(t *testing.T) {
	m, registry := testModel(t)

	invoked := false
	require.NoError(t, registry.AddMenuItem("Tasks", "By hotkey", 'h', func() error {
		invoked = true
		return nil
	}, menu.DefaultOrder))

	updated, _ := m.Update(key("f1"))
	m = updated.(model)
	updated, _ = m.Update(key("h"))
	m = updated.(model)

	require.True(t, invoked)
}

func TestMenuNavigationSkipsSeparators(t *testing.T) {
	m, registry := testModel(t)

	require.NoError(t, registry.AddMenuItem("Tasks", "First", 0, func() error { return nil }, 10))
	require.NoError(t, registry.AddSeparator("Tasks", 20))
	require.NoError(t, registry.AddMenuItem("Tasks", "Second", 0, func() error { return nil }, 30))

	updated, _ := m.Update(key("f1"))
	m = updated.(model)
	require.Equal(t, 0, m.itemIndex)

	updated, _ = m.Update(key("j"))
	m = updated.(model)
	require.Equal(t, 2, m.itemIndex, "separator is skipped")
}

func TestActionErrorShownInStatus(t *testing.T) {
	m, registry := testModel(t)

	require.NoError(t, registry.AddMenuItem("Tools", "Broken", 0, func() error {
		return errTest
	}, menu.DefaultOrder))

	updated, _ := m.Update(key("f1"))
	m = updated.(model)
	// Move to the Tools menu.
	for i := 0; i < 3; i++ {
		updated, _ = m.Update(key("tab"))
		m = updated.(model)
	}
	updated, _ = m.Update(key("enter"))
	m = updated.(model)

	require.True(t, m.statusErr)
	require.Contains(t, m.status, "boom")
}

var errTest = &testError{}

type testError struct{}

func (*testError) Error() string { return "boom" }

func TestViewRendersMenuBarAndStatus(t *testing.T) {
	m, registry := testModel(t)
	require.NoError(t, registry.AddMenuItem("Help", "About", 'a', func() error { return nil }, menu.DefaultOrder))

	view := m.View()
	require.Contains(t, view, "Tasks")
	require.Contains(t, view, "Help")
	require.Contains(t, view, "No screen open")
	require.Contains(t, view, m.cfg.Theme.GetCurrentThemeHex())
}

func TestStyleSetRebuildsOnThemeChange(t *testing.T) {
	store, err := config.Load(t.TempDir())
	require.NoError(t, err)
	engine := theme.New(store)
	styles := newStyleSet(engine)

	before := styles.MenuActive.GetBackground()
	require.NoError(t, engine.SetTheme("#FF0000"))
	after := styles.MenuActive.GetBackground()

	require.NotEqual(t, before, after, "cached styles rebuild on invalidation")
	require.Equal(t, lipgloss.Color("#FF0000"), after)
}

func TestStackOperations(t *testing.T) {
	s := NewStack()
	require.Nil(t, s.Top())
	require.Nil(t, s.Pop())
	require.Zero(t, s.Len())
}

func TestEscPopsScreen(t *testing.T) {
	m, registry := testModel(t)
	_ = registry

	// Simulate a pushed screen via the stack directly.
	m.cfg.Stack.Push(fakeScreen{})
	require.Equal(t, 1, m.cfg.Stack.Len())

	updated, _ := m.Update(key("esc"))
	m = updated.(model)
	require.Zero(t, m.cfg.Stack.Len())
}

type fakeScreen struct{}

func (fakeScreen) Title() string                       { return "Fake" }
func (fakeScreen) Init() tea.Cmd                       { return nil }
func (fakeScreen) Update(tea.Msg) (tea.Model, tea.Cmd) { return fakeScreen{}, nil }
func (fakeScreen) View() string                        { return strings.Repeat("x", 3) }
