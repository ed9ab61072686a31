package cmd

import (
	"fmt"
	"unicode/utf8"

	shared "draftshare-cli/shared"
	"draftshare-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [index-or-id]",
	Short: "Show a draft in full",
	Args:  cobra.ExactArgs(1),
	Run:   show,
}

func show(cmd *cobra.Command, args []string) {
	drafts := mustGetDrafts()
	draft := mustResolveDraft(args[0], drafts)

	info, _ := shared.GetSnsInfo(draft.TargetSns)

	color.New(color.Bold, term.ColorHiCyan).Printf("%s %s draft · %s\n", info.Icon, info.Name, draft.Id)

	switch draft.SourceType {
	case shared.SourceTypeImage:
		fmt.Printf("Source: image (%s)\n", draft.ImageUrl)
	case shared.SourceTypeText:
		fmt.Printf("Source: text (%s)\n", contentPreview(draft.SourceText, 60))
	case shared.SourceTypeUrl:
		fmt.Printf("Source: %s\n", draft.SourceUrl)
	}

	fmt.Printf("Created: %s", draft.CreatedAt.Local().Format("Jan 2 2006 15:04"))
	if draft.UpdatedAt != nil {
		fmt.Printf(" · Updated: %s", draft.UpdatedAt.Local().Format("Jan 2 2006 15:04"))
	}
	fmt.Println()

	length := utf8.RuneCountInString(draft.Content)
	lengthColor := term.ColorHiGreen
	if info.MaxLength > 0 && length > info.MaxLength {
		lengthColor = term.ColorHiRed
	}
	color.New(lengthColor).Printf("Length: %d/%d\n\n", length, info.MaxLength)

	fmt.Println(draft.Content)
	fmt.Println()
	term.PrintCmds("", "share", "edit", "copy", "delete")
}
