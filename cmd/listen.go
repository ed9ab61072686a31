package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"draftshare-cli/api"
	"draftshare-cli/fs"
	"draftshare-cli/lib"
	"draftshare-cli/shareintent"
	shared "draftshare-cli/shared"
	"draftshare-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listenSnsFlag string

func init() {
	listenCmd.Flags().StringVar(&listenSnsFlag, "sns", string(shared.SnsX), "Target social network for generated drafts")
	RootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Wait for shares from other apps and generate drafts",
	Run:   listen,
}

func listen(cmd *cobra.Command, args []string) {
	targetSns := mustParseTargetSns(listenSnsFlag)

	lib.CurrentDrafts.SetAll(mustGetDrafts())

	controller := shareintent.NewController(shareintent.ControllerParams{
		Client:    api.Client,
		Drafts:    lib.CurrentDrafts,
		TargetSns: func() shared.TargetSns { return targetSns },
		Notify: func(msg string) {
			term.OutputSimpleError(msg)
		},
		OnGenerating: func(generating bool) {
			if generating {
				term.StartSpinner("✍️ Generating draft...")
			} else {
				term.StopSpinner()
			}
		},
		OnDraft: func(draft *shared.Draft) {
			info, _ := shared.GetSnsInfo(draft.TargetSns)
			color.New(term.ColorHiGreen, color.Bold).Printf("✅ Draft for %s generated\n\n", info.Name)
			fmt.Println(draft.Content)
			fmt.Println()
		},
	})

	inbox := shareintent.NewInbox(fs.InboxDir, controller)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	info, _ := shared.GetSnsInfo(targetSns)
	fmt.Printf("👂 Listening for shares in %s (backend %s)\n", fs.InboxDir, api.GetApiHost())
	fmt.Printf("New drafts target %s %s. Press Ctrl+C to stop\n", info.Icon, info.Name)

	err := inbox.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		term.OutputErrorAndExit("Error watching share inbox: %v", err)
	}

	fmt.Println("\n✋ Stopped listening")
}
