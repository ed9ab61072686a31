package cmd

import (
	"fmt"

	"draftshare-cli/api"
	"draftshare-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:     "delete [index-or-id]",
	Aliases: []string{"del"},
	Short:   "Delete a draft",
	Args:    cobra.ExactArgs(1),
	Run:     del,
}

func del(cmd *cobra.Command, args []string) {
	drafts := mustGetDrafts()
	draft := mustResolveDraft(args[0], drafts)

	fmt.Println(contentPreview(draft.Content, 60))
	confirmed, err := term.ConfirmYesNo("Delete this draft?")
	if err != nil {
		term.OutputErrorAndExit("Error getting confirmation: %v", err)
	}
	if !confirmed {
		fmt.Println("🙅‍♂️ Canceled")
		return
	}

	term.StartSpinner("")
	apiErr := api.Client.DeleteDraft(draft.Id)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Delete failed: %v", apiErr.Msg)
	}

	color.New(term.ColorHiGreen, color.Bold).Println("🗑️  Draft deleted")
}
