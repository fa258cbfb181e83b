package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simidle/simidle/internal/share"
	"github.com/simidle/simidle/internal/store"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Share the palette in a social post",
	Long: `Open a pre-filled social post carrying the palette's codes in the browser.
Use --print to only show the link.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initializeGlobalState()

		indices, _ := cmd.Flags().GetIntSlice("index")
		printOnly, _ := cmd.Flags().GetBool("print")
		settings := loadSettings()

		exitOnError(withStore(func(s *store.ColorStore) error {
			elements, err := selectForExport(s.Elements(), indices)
			if err != nil {
				return err
			}
			if len(elements) == 0 {
				return errEmptyPalette
			}

			poster := share.NewPoster(settings.Share.PostBaseURL, share.BrowserOpener{})
			if printOnly {
				fmt.Println(poster.IntentURL(elements))
				return nil
			}
			poster.ShareColorCodes(elements)
			fmt.Printf("Opened a post with %d color codes.\n", len(elements))
			return nil
		}))
	},
}

func init() {
	rootCmd.AddCommand(postCmd)
	postCmd.Flags().IntSliceP("index", "i", nil, "Post only these entries (see 'simidle ls')")
	postCmd.Flags().Bool("print", false, "Print the post link instead of opening it")
}
