package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simidle/simidle/internal/experience"
	"github.com/simidle/simidle/internal/store"
)

var rmCmd = &cobra.Command{
	Use:     "rm <index>",
	Aliases: []string{"delete"},
	Short:   "Remove a saved color",
	Long:    `Remove the saved color at <index> (see 'simidle ls'). Asks for confirmation unless --yes is given.`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initializeGlobalState()

		yes, _ := cmd.Flags().GetBool("yes")

		exitOnError(withExclusiveStore(func(s *store.ColorStore) error {
			index, err := parseIndex(args[0], s)
			if err != nil {
				return err
			}

			remaining, deleted, err := deleteWithConfirmation(s, index, yes, os.Stdin, os.Stdout)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Println("Cancelled.")
				return nil
			}
			fmt.Printf("Deleted (%d left).\n", remaining)
			return nil
		}))
	},
}

// deleteWithConfirmation walks the long-press delete workflow: request
// confirmation, ask on in/out unless assumeYes, then delete or cancel
func deleteWithConfirmation(s *store.ColorStore, index int, assumeYes bool, in io.Reader, out io.Writer) (remaining int, deleted bool, err error) {
	logic := experience.NewDeletionLogic(s)

	req, err := logic.Handle(experience.LongTap{Index: index})
	if err != nil {
		return 0, false, err
	}

	confirmed := assumeYes
	if !confirmed {
		element := s.Elements()[req.Index]
		fmt.Fprintf(out, "Remove %s from the palette? [y/N] ", element.ColorCode())
		answer, _ := bufio.NewReader(in).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		confirmed = answer == "y" || answer == "yes"
	}

	var event experience.DeletionEvent = experience.DeleteCancel{}
	if confirmed {
		event = experience.DeleteConfirmed{Index: req.Index}
	}

	result, err := logic.Handle(event)
	if err != nil {
		return 0, false, err
	}
	return result.RemainingCount, result.Outcome == experience.OutcomeDeleted, nil
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolP("yes", "y", false, "Delete without asking")
}
