package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simidle/simidle/internal/clipboard"
	"github.com/simidle/simidle/internal/experience"
	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add <orb> <space> | add <code>",
	Short: "Save a color pair",
	Long: `Save an orb/space color pair as if it had been edited in the app.
The pair becomes the current theme. When the palette is full it replaces
the current theme instead.`,
	Example: `  simidle add "#3BB6A2" "#FFF8E1"
  simidle add 3BB6A2FFF8E1`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		initializeGlobalState()

		element, err := parsePair(args)
		exitOnError(err)

		exitOnError(withExclusiveStore(func(s *store.ColorStore) error {
			fmt.Println(commitElement(s, element))
			return nil
		}))
	},
}

// parsePair reads one color pair from "<orb> <space>" or a single 12-digit code
func parsePair(args []string) (palette.ColorElement, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = palette.StripHash(strings.TrimSpace(a))
	}
	if len(parts) == 2 && (len(parts[0]) != palette.HexLength || len(parts[1]) != palette.HexLength) {
		return palette.ColorElement{}, clipboard.ErrInvalidFormat
	}

	elements, err := clipboard.ParseCodes(strings.Join(parts, ""))
	if err != nil {
		return palette.ColorElement{}, err
	}
	if len(elements) != 1 {
		return palette.ColorElement{}, errors.New("expected exactly one color pair")
	}
	return elements[0], nil
}

// commitElement runs element through the editor's commit rules and
// describes the outcome
func commitElement(s *store.ColorStore, element palette.ColorElement) string {
	session := experience.NewEditingSessionFromStore(s)
	session.Orb.UpdateCode(element.OrbHexCode)
	session.Space.UpdateCode(element.SpaceHexCode)

	logic := experience.NewSelectionLogic(s)
	switch logic.ExecuteAction(logic.DetermineAction(session), session) {
	case experience.ResultAdded:
		return fmt.Sprintf("Added %s (%d/%d).", element.ColorCode(), s.Count(), s.MaxPallets())
	case experience.ResultAlreadyExists:
		return fmt.Sprintf("%s is already in the palette.", element.ColorCode())
	case experience.ResultApplied:
		return fmt.Sprintf("Palette full, current colors replaced with %s.", element.ColorCode())
	default:
		return fmt.Sprintf("%s is already the current theme.", element.ColorCode())
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
}
