package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simidle/simidle/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default theme",
	Long:  `Replace every saved color with the default theme.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initializeGlobalState()

		exitOnError(withExclusiveStore(func(s *store.ColorStore) error {
			s.ResetToDefaults()
			fmt.Printf("Palette reset to default %s.\n", s.CurrentTheme().ColorCode())
			return nil
		}))
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
