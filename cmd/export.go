package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simidle/simidle/internal/clipboard"
	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/share"
	"github.com/simidle/simidle/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the palette as a share code",
	Long: `Print the palette, or the entries picked with --index, as a share code
of 12 hex digits per color pair.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initializeGlobalState()

		indices, _ := cmd.Flags().GetIntSlice("index")
		toClipboard, _ := cmd.Flags().GetBool("copy")

		exitOnError(withStore(func(s *store.ColorStore) error {
			elements, err := selectForExport(s.Elements(), indices)
			if err != nil {
				return err
			}
			if len(elements) == 0 {
				return errEmptyPalette
			}

			if toClipboard {
				clipboard.NewWriter(clipboard.SystemBoard{}).CopyColorCodes(elements)
				fmt.Fprintf(os.Stderr, "Copied %d color codes.\n", len(elements))
			}
			fmt.Println(palette.ColorCodesString(elements))
			return nil
		}))
	},
}

var errEmptyPalette = errors.New("palette is empty")

// selectForExport picks elements by index in the order given.
// No indices means the whole palette.
func selectForExport(elements []palette.ColorElement, indices []int) ([]palette.ColorElement, error) {
	if len(indices) == 0 {
		return elements, nil
	}

	state := share.NewSharingSelectionState(elements)
	for _, i := range indices {
		if i < 0 || i >= len(elements) {
			return nil, fmt.Errorf("index %d out of range (palette has %d colors)", i, len(elements))
		}
		state = state.Select(elements[i])
	}
	return state.Candidates(), nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().IntSliceP("index", "i", nil, "Export only these entries (see 'simidle ls')")
	exportCmd.Flags().BoolP("copy", "c", false, "Also copy the code to the clipboard")
}
