package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simidle/simidle/internal/store"
)

var applyCmd = &cobra.Command{
	Use:   "apply <index>",
	Short: "Make a saved color the current theme",
	Long:  `Move the saved color at <index> (see 'simidle ls') to the front of the palette.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initializeGlobalState()

		exitOnError(withExclusiveStore(func(s *store.ColorStore) error {
			index, err := parseIndex(args[0], s)
			if err != nil {
				return err
			}
			s.MoveToFirst(index)
			fmt.Printf("Applied %s.\n", s.CurrentTheme().ColorCode())
			return nil
		}))
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
