package cmd

import (
	"draftshare-cli/share"
	shared "draftshare-cli/shared"
	"draftshare-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var shareSnsFlag string

func init() {
	shareCmd.Flags().StringVar(&shareSnsFlag, "sns", "", "Share to this network instead of the draft's target")
	RootCmd.AddCommand(shareCmd)
}

var shareCmd = &cobra.Command{
	Use:   "share [index-or-id]",
	Short: "Hand a draft off to its social network's composer",
	Args:  cobra.ExactArgs(1),
	Run:   shareDraft,
}

func shareDraft(cmd *cobra.Command, args []string) {
	drafts := mustGetDrafts()
	draft := mustResolveDraft(args[0], drafts)

	targetSns := draft.TargetSns
	if shareSnsFlag != "" {
		targetSns = mustParseTargetSns(shareSnsFlag)
	}

	router := share.NewRouter()
	if err := router.ShareToSns(draft.Content, targetSns); err != nil {
		term.OutputErrorAndExit("Error sharing draft: %v", err)
	}

	info, _ := shared.GetSnsInfo(targetSns)
	color.New(term.ColorHiGreen, color.Bold).Printf("🚀 Handed off to %s\n", info.Name)
}
