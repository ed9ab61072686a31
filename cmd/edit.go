package cmd

import (
	"fmt"

	"draftshare-cli/api"
	"draftshare-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit [index-or-id]",
	Short: "Edit a draft's content",
	Args:  cobra.ExactArgs(1),
	Run:   edit,
}

func edit(cmd *cobra.Command, args []string) {
	drafts := mustGetDrafts()
	draft := mustResolveDraft(args[0], drafts)

	content, err := term.GetUserStringInputWithDefault("Edit draft:", draft.Content)
	if err != nil {
		term.OutputErrorAndExit("Error getting input: %v", err)
	}

	if content == draft.Content {
		fmt.Println("🤷‍♂️ No changes")
		return
	}

	term.StartSpinner("")
	updated, apiErr := api.Client.UpdateDraft(draft.Id, content)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Save failed: %v", apiErr.Msg)
	}

	color.New(term.ColorHiGreen, color.Bold).Println("✅ Draft updated")
	fmt.Println()
	fmt.Println(updated.Content)
}
