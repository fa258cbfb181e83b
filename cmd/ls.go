package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/store"
)

// paletteRow is one entry of `ls --json`
type paletteRow struct {
	Index        int    `json:"index"`
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	OrbHexCode   string `json:"orbHexCode"`
	SpaceHexCode string `json:"spaceHexCode"`
	Code         string `json:"code"`
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved colors",
	Long: `List the saved orb/space color pairs. Index 0 is the current theme.
Use --presets to list the built-in themes instead.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initializeGlobalState()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if showPresets, _ := cmd.Flags().GetBool("presets"); showPresets {
			exitOnError(printPresets(os.Stdout, jsonOutput))
			return
		}
		exitOnError(withStore(func(s *store.ColorStore) error {
			return printPalette(os.Stdout, s, jsonOutput)
		}))
	},
}

func paletteRows(s *store.ColorStore) []paletteRow {
	pallets := s.Pallets()
	rows := make([]paletteRow, 0, len(pallets))
	for i, p := range pallets {
		rows = append(rows, paletteRow{
			Index:        i,
			ID:           p.ID.String(),
			Name:         palette.PresetName(p.Element),
			OrbHexCode:   p.Element.OrbHexCode,
			SpaceHexCode: p.Element.SpaceHexCode,
			Code:         p.Element.ColorCode(),
		})
	}
	return rows
}

// presetRows lists the built-in themes in seed order
func presetRows() []paletteRow {
	presets := palette.Presets()
	rows := make([]paletteRow, 0, len(presets))
	for i, p := range presets {
		rows = append(rows, paletteRow{
			Index:        i,
			Name:         p.Name,
			OrbHexCode:   p.Element.OrbHexCode,
			SpaceHexCode: p.Element.SpaceHexCode,
			Code:         p.Element.ColorCode(),
		})
	}
	return rows
}

func printPresets(w io.Writer, jsonOutput bool) error {
	rows := presetRows()
	if jsonOutput {
		return writeRowsJSON(w, rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tORB\tSPACE\tCODE")
	fmt.Fprintln(tw, "----\t---\t-----\t----")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.OrbHexCode, r.SpaceHexCode, r.Code)
	}
	return tw.Flush()
}

func writeRowsJSON(w io.Writer, rows []paletteRow) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printPalette(w io.Writer, s *store.ColorStore, jsonOutput bool) error {
	rows := paletteRows(s)

	if jsonOutput {
		return writeRowsJSON(w, rows)
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No saved colors.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tORB\tSPACE\tCODE\tNAME")
	fmt.Fprintln(tw, "-\t---\t-----\t----\t----")
	for _, r := range rows {
		name := r.Name
		if name == "" {
			name = "-"
		}
		marker := ""
		if r.Index == 0 {
			marker = " *"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s%s\n", r.Index, r.OrbHexCode, r.SpaceHexCode, r.Code, name, marker)
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().Bool("json", false, "Output in JSON format")
	lsCmd.Flags().Bool("presets", false, "List the built-in themes")
}
