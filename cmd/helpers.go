package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"draftshare-cli/api"
	shared "draftshare-cli/shared"
	"draftshare-cli/term"
)

func mustGetDrafts() []*shared.Draft {
	term.StartSpinner("")
	drafts, apiErr := api.Client.GetDrafts()
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error fetching drafts: %v", apiErr.Msg)
	}

	return drafts
}

// mustResolveDraft matches a 1-based list index or an id prefix.
func mustResolveDraft(arg string, drafts []*shared.Draft) *shared.Draft {
	if len(drafts) == 0 {
		fmt.Println("🤷‍♂️ No drafts yet")
		term.PrintCmds("", "new", "listen")
		os.Exit(0)
	}

	if idx, err := strconv.Atoi(arg); err == nil {
		if idx < 1 || idx > len(drafts) {
			term.OutputErrorAndExit("Draft %d doesn't exist. There are %d drafts", idx, len(drafts))
		}
		return drafts[idx-1]
	}

	var matched []*shared.Draft
	for _, draft := range drafts {
		if strings.HasPrefix(draft.Id, arg) {
			matched = append(matched, draft)
		}
	}

	if len(matched) == 0 {
		term.OutputErrorAndExit("No draft matches %q", arg)
	}
	if len(matched) > 1 {
		term.OutputErrorAndExit("%q matches %d drafts. Use a longer id prefix or the list index", arg, len(matched))
	}

	return matched[0]
}

func mustParseTargetSns(arg string) shared.TargetSns {
	targetSns, err := shared.ParseTargetSns(arg)
	if err != nil {
		var ids []string
		for _, sns := range shared.SnsList {
			ids = append(ids, string(sns.Id))
		}
		term.OutputErrorAndExit("%v. Choose one of: %s", err, strings.Join(ids, ", "))
	}
	return targetSns
}

func contentPreview(content string, maxRunes int) string {
	content = strings.ReplaceAll(content, "\n", " ")
	if utf8.RuneCountInString(content) <= maxRunes {
		return content
	}
	runes := []rune(content)
	return string(runes[:maxRunes-1]) + "…"
}
