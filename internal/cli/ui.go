package cli

import (
	"github.com/spf13/cobra"

	"github.com/pmc-dev/pmc/internal/db"
	"github.com/pmc-dev/pmc/internal/logging"
	"github.com/pmc-dev/pmc/internal/menu"
	"github.com/pmc-dev/pmc/internal/resolver"
	"github.com/pmc-dev/pmc/internal/screens"
	"github.com/pmc-dev/pmc/internal/theme"
	"github.com/pmc-dev/pmc/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the pmc TUI",
	Long:  "Launch the pmc terminal user interface.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI()
	},
}

func runUI() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message: "the TUI requires an interactive terminal",
			Hint:    "run without --non-interactive and with a TTY, or use pmc task subcommands",
		}
	}

	logger := logging.Component("startup")

	store, dir, err := loadStore()
	if err != nil {
		return err
	}

	database, err := db.Open(store.DataPath())
	if err != nil {
		return err
	}
	defer database.Close()

	engine := theme.New(store)
	stack := tui.NewStack()
	catalog := screens.NewCatalog(screens.Deps{
		Theme:  engine,
		Tasks:  db.NewTaskRepository(database),
		Time:   db.NewTimeEntryRepository(database),
		Logger: logging.Component("screens"),
	})

	registry := menu.NewRegistry()
	container := resolver.New()

	manifestPath, err := ensureManifest(dir)
	if err != nil {
		return err
	}
	result := registry.LoadFromManifest(manifestPath, container, menu.ManifestOptions{
		Catalog: catalog,
		Stack:   stack,
	})
	if len(result.Errors) > 0 {
		logger.Warn().
			Int("registered", result.Registered).
			Int("failed", len(result.Errors)).
			Msg("manifest loaded with errors")
	}

	// Directly registered items live alongside manifest-driven ones.
	registry.AddSeparator("Options", 90)
	registry.AddMenuItem("Options", "Reload Theme", 'r', func() error {
		engine.Reload()
		return nil
	}, 100)

	return tui.Run(tui.Config{
		Registry: registry,
		Theme:    engine,
		Stack:    stack,
		Version:  Version,
	})
}
