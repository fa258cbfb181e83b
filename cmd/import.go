package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/simidle/simidle/internal/clipboard"
	"github.com/simidle/simidle/internal/config"
	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/share"
	"github.com/simidle/simidle/internal/store"
	"github.com/simidle/simidle/internal/utils"
)

var importCmd = &cobra.Command{
	Use:   "import [code]...",
	Short: "Add colors from a share code",
	Long: `Add the colors of a share code to the palette. The code is read from the
arguments, --file, --url or, when none is given, the clipboard. Colors already
in the palette are skipped; the rest fill the free slots.

When 'simidle serve' is running the code is sent to it.`,
	Run: func(cmd *cobra.Command, args []string) {
		initializeGlobalState()

		file, _ := cmd.Flags().GetString("file")
		url, _ := cmd.Flags().GetString("url")
		settings := loadSettings()

		incoming, err := readIncoming(args, file, url, settings)
		exitOnError(err)

		if port := readActivePort(); port > 0 {
			resp, err := sendImport(serverURL(port), palette.ColorCodesString(incoming))
			if err == nil {
				exitOnError(printImportResponse(resp))
				return
			}
			utils.Debug("Import via server failed, importing locally: %v", err)
		}

		exitOnError(withExclusiveStore(func(s *store.ColorStore) error {
			result, applied := importElements(s, share.NewImportLogic(settings.General.MaxImportElements), incoming)
			return printImportResponse(importResponse(result, applied))
		}))
	},
}

// readIncoming reads the code from the first source given
func readIncoming(args []string, file, url string, settings *config.Settings) ([]palette.ColorElement, error) {
	switch {
	case len(args) > 0:
		return clipboard.ParseCodes(strings.Join(args, ""))
	case file != "":
		return share.ReadCodesFile(file)
	case url != "":
		timeout := time.Duration(settings.Share.FetchTimeout)
		if timeout <= 0 {
			timeout = share.DefaultFetchTimeout
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return share.NewFetcher(timeout).FetchCodes(ctx, url)
	default:
		return clipboard.ReadColorCodes()
	}
}

// importResponse describes a local import the way the server does
func importResponse(result share.ImportResult, applied []palette.ColorElement) ImportResponse {
	if !result.Accepted() {
		return ImportResponse{Status: "rejected", Message: result.Reason.Message()}
	}
	return ImportResponse{
		Status: "imported",
		Code:   palette.ColorCodesString(applied),
		Count:  len(applied),
	}
}

func printImportResponse(resp ImportResponse) error {
	if resp.Status != "imported" {
		return errors.New(resp.Message)
	}
	fmt.Printf("Palette updated (%d colors): %s\n", resp.Count, resp.Code)
	return nil
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringP("file", "f", "", "Read the code from a file")
	importCmd.Flags().StringP("url", "u", "", "Download the code from a URL")
}
