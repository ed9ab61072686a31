package cmd

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	shared "draftshare-cli/shared"
	"draftshare-cli/term"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(draftsCmd)
}

var draftsCmd = &cobra.Command{
	Use:     "drafts",
	Aliases: []string{"ls"},
	Short:   "List drafts",
	Run:     drafts,
}

func drafts(cmd *cobra.Command, args []string) {
	drafts := mustGetDrafts()

	if len(drafts) == 0 {
		fmt.Println("🤷‍♂️ No drafts yet. Share a photo, link, or text to generate one")
		fmt.Println()
		term.PrintCmds("", "new", "listen")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Target", "Source", "Content", "Length", "Created"})

	for i, draft := range drafts {
		info, _ := shared.GetSnsInfo(draft.TargetSns)

		length := strconv.Itoa(utf8.RuneCountInString(draft.Content))
		if info.MaxLength > 0 {
			length = fmt.Sprintf("%s/%d", length, info.MaxLength)
		}

		row := []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%s %s", info.Icon, info.Name),
			string(draft.SourceType),
			contentPreview(draft.Content, 60),
			length,
			draft.CreatedAt.Local().Format("Jan 2 15:04"),
		}

		var style []tablewriter.Colors
		if info.MaxLength > 0 && utf8.RuneCountInString(draft.Content) > info.MaxLength {
			style = []tablewriter.Colors{
				{},
				{},
				{},
				{},
				{tablewriter.FgHiRedColor, tablewriter.Bold},
				{},
			}
		}
		table.Rich(row, style)
	}

	table.Render()

	fmt.Println()
	color.New(term.ColorHiCyan).Printf("%d drafts\n", len(drafts))
	term.PrintCmds("", "show", "edit", "copy", "share", "delete")
}
