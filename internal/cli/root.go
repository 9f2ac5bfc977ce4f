// Package cli implements the pmc command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pmc-dev/pmc/internal/config"
	"github.com/pmc-dev/pmc/internal/logging"
)

// Version is stamped by the build.
var Version = "dev"

var (
	flagConfigDir      string
	flagDebug          bool
	flagNonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:           "pmc",
	Short:         "pmc is a terminal task and project manager",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(flagDebug)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "configuration directory (default: ~/.config/pmc)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNonInteractive, "non-interactive", false, "fail instead of launching interactive UI")
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = Version
	return rootCmd.Execute()
}

// IsNonInteractive reports whether interactive UI must not be launched.
func IsNonInteractive() bool {
	return flagNonInteractive || !term.IsTerminal(int(os.Stdout.Fd()))
}

// PreflightError is a user-actionable startup failure.
type PreflightError struct {
	Message string
	Hint    string
}

func (e *PreflightError) Error() string {
	if e.Hint == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Hint)
}

// configDir resolves the configuration directory from the flag or the
// platform default.
func configDir() (string, error) {
	if flagConfigDir != "" {
		return flagConfigDir, nil
	}
	return config.DefaultDir()
}

// loadStore opens the configuration store.
func loadStore() (*config.Store, string, error) {
	dir, err := configDir()
	if err != nil {
		return nil, "", err
	}
	store, err := config.Load(dir)
	if err != nil {
		return nil, "", err
	}
	return store, dir, nil
}
