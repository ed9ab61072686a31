package cmd

import (
	"fmt"
	"strings"

	"draftshare-cli/api"
	"draftshare-cli/shareintent"
	shared "draftshare-cli/shared"
	"draftshare-cli/term"

	"github.com/fatih/color"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"
)

var newTextFlag string
var newUrlFlag string
var newImageFlag string
var newSnsFlag string

func init() {
	newCmd.Flags().StringVar(&newTextFlag, "text", "", "Generate from free text")
	newCmd.Flags().StringVar(&newUrlFlag, "url", "", "Generate from a URL")
	newCmd.Flags().StringVar(&newImageFlag, "image", "", "Generate from an image file")
	newCmd.Flags().StringVar(&newSnsFlag, "sns", string(shared.SnsX), "Target social network")
	RootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [text]",
	Short: "Generate a draft from text, a URL, or an image",
	Args:  cobra.RangeArgs(0, 1),
	Run:   newDraft,
}

func newDraft(cmd *cobra.Command, args []string) {
	targetSns := mustParseTargetSns(newSnsFlag)

	input := newTextFlag
	if len(args) > 0 {
		input = args[0]
	}
	input = strings.TrimSpace(input)

	numInputs := 0
	for _, set := range []bool{input != "", newUrlFlag != "", newImageFlag != ""} {
		if set {
			numInputs++
		}
	}
	if numInputs != 1 {
		term.OutputErrorAndExit("Pass exactly one of: text, --url, or --image")
	}

	var draft *shared.Draft
	var apiErr *shared.ApiError

	term.StartSpinner("✍️ Generating draft...")

	switch {
	case newImageFlag != "":
		mtype, err := mimetype.DetectFile(newImageFlag)
		if err != nil {
			term.OutputErrorAndExit("Error reading image: %v", err)
		}
		if !strings.HasPrefix(mtype.String(), "image/") {
			term.OutputErrorAndExit("%s is not an image (detected %s)", newImageFlag, mtype.String())
		}
		draft, apiErr = api.Client.CreateDraftFromImage(newImageFlag, mtype.String(), targetSns)

	case newUrlFlag != "":
		draft, apiErr = api.Client.CreateDraftFromUrl(newUrlFlag, targetSns)

	default:
		// Pasted URLs route the same way as shared ones.
		if shareintent.IsUrlText(input) {
			draft, apiErr = api.Client.CreateDraftFromUrl(input, targetSns)
		} else {
			draft, apiErr = api.Client.CreateDraftFromText(input, targetSns)
		}
	}

	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Draft generation failed: %v", apiErr.Msg)
	}

	info, _ := shared.GetSnsInfo(draft.TargetSns)
	color.New(term.ColorHiGreen, color.Bold).Printf("✅ Draft for %s generated\n\n", info.Name)
	fmt.Println(draft.Content)
	fmt.Println()
	term.PrintCmds("", "share", "edit", "copy")
}
