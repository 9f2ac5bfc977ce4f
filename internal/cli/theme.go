package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmc-dev/pmc/internal/theme"
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeSetCmd)
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect or change the color theme",
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current seed color and resolved roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := loadStore()
		if err != nil {
			return err
		}
		engine := theme.New(store)

		fmt.Printf("seed: %s\n\n", engine.GetCurrentThemeHex())
		for _, role := range engine.GetAvailableRoles() {
			hex := engine.GetColor(role)
			seq := engine.GetAnsiSequence(role, false)
			fmt.Printf("%s%-12s %s%s\n", seq, role, hex, theme.Reset)
		}
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set <hex>",
	Short: "Set the theme seed color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := loadStore()
		if err != nil {
			return err
		}
		engine := theme.New(store)

		if err := engine.SetTheme(args[0]); err != nil {
			return err
		}
		fmt.Printf("theme seed set to %s\n", engine.GetCurrentThemeHex())
		return nil
	},
}
