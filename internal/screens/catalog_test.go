package screens

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/pmc-dev/pmc/internal/db"
	"github.com/pmc-dev/pmc/internal/logging"
	"github.com/pmc-dev/pmc/internal/theme"
)

func testDeps(t *testing.T) Deps {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "pmc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return Deps{
		Theme:  theme.New(nil),
		Tasks:  db.NewTaskRepository(database),
		Time:   db.NewTimeEntryRepository(database),
		Logger: logging.Component("test"),
	}
}

func TestCatalogLoadIsIdempotent(t *testing.T) {
	c := NewCatalog(testDeps(t))

	require.NoError(t, c.Load("tasklist"))
	require.NoError(t, c.Load("tasklist"))
	require.Error(t, c.Load("no-such-unit"))
}

func TestCatalogBuildsEveryUnit(t *testing.T) {
	c := NewCatalog(testDeps(t))

	for _, unit := range c.Units() {
		screen, err := c.Build(unit, "")
		require.NoError(t, err, "unit %s", unit)
		require.NotEmpty(t, screen.Title())
		require.NotEmpty(t, screen.View(), "unit %s renders", unit)
	}
}

func TestCatalogBuildReturnsFreshInstances(t *testing.T) {
	c := NewCatalog(testDeps(t))

	first, err := c.Build("help", "")
	require.NoError(t, err)
	second, err := c.Build("help", "")
	require.NoError(t, err)
	require.NotSame(t, first, second)
}

func TestTaskListViewModes(t *testing.T) {
	c := NewCatalog(testDeps(t))

	list, err := c.Build("tasklist", ViewModeList)
	require.NoError(t, err)
	require.Equal(t, "Tasks", list.Title())

	kanban, err := c.Build("tasklist", ViewModeKanban)
	require.NoError(t, err)
	require.Equal(t, "Tasks (kanban)", kanban.Title())

	_, err = c.Build("tasklist", "spiral")
	require.Error(t, err)
}

func TestTaskListNavigation(t *testing.T) {
	deps := testDeps(t)
	c := NewCatalog(deps)

	screen, err := c.Build("tasklist", "")
	require.NoError(t, err)

	// No tasks: navigation keys are harmless.
	updated, _ := screen.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	require.NotNil(t, updated)
}
