package cmd

import (
	"draftshare-cli/term"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(copyCmd)
}

var copyCmd = &cobra.Command{
	Use:   "copy [index-or-id]",
	Short: "Copy a draft's content to the clipboard",
	Args:  cobra.ExactArgs(1),
	Run:   copyDraft,
}

func copyDraft(cmd *cobra.Command, args []string) {
	drafts := mustGetDrafts()
	draft := mustResolveDraft(args[0], drafts)

	if err := clipboard.WriteAll(draft.Content); err != nil {
		term.OutputErrorAndExit("Error copying to clipboard: %v", err)
	}

	color.New(term.ColorHiGreen, color.Bold).Println("📋 Copied draft to clipboard")
}
