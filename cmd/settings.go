package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simidle/simidle/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the settings",
	Long: `Print the effective settings and where they are read from.
Use --init to write them to settings.json for editing.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initializeGlobalState()

		initFile, _ := cmd.Flags().GetBool("init")

		settings, err := config.LoadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if initFile {
			if err := config.SaveSettings(settings); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", config.GetSettingsPath())
		}

		data, _ := json.MarshalIndent(settings, "", "  ")
		fmt.Printf("# %s\n%s\n", config.GetSettingsPath(), data)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("init", false, "Write the effective settings to settings.json")
}
