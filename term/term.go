package term

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var CmdDesc = map[string][2]string{
	"drafts": {"", "list drafts"},
	"new":    {"", "generate a draft from text, a url, or an image"},
	"show":   {"", "show a draft in full"},
	"edit":   {"", "edit a draft's content"},
	"copy":   {"", "copy a draft's content to the clipboard"},
	"delete": {"del", "delete a draft"},
	"share":  {"", "hand a draft off to its social network's composer"},
	"listen": {"", "wait for shares from other apps and generate drafts"},
}

func PrintCmds(prefix string, cmds ...string) {
	for _, cmd := range cmds {
		config, ok := CmdDesc[cmd]
		if !ok {
			continue
		}

		alias := config[0]
		desc := config[1]
		if alias != "" {
			cmd = strings.Replace(cmd, alias, fmt.Sprintf("(%s)", alias), 1)
		}
		styled := color.New(color.Bold, color.FgHiWhite, color.BgCyan).Sprintf(" draftshare %s ", cmd)

		fmt.Printf("%s%s 👉 %s\n", prefix, styled, desc)
	}
}

func ClearCurrentLine() {
	fmt.Print("\033[2K\r")
}
