package fs

import (
	"os"
	"path/filepath"

	"draftshare-cli/term"
)

var HomeDir string
var HomeDraftShareDir string

// InboxDir is where OS share extensions drop payload files for the
// ingestion controller. One *.json file per share event.
var InboxDir string

var LogPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Couldn't find home dir: %v", err.Error())
	}
	HomeDir = home

	if dir := os.Getenv("DRAFTSHARE_HOME"); dir != "" {
		HomeDraftShareDir = dir
	} else {
		HomeDraftShareDir = filepath.Join(home, ".draftshare")
	}

	InboxDir = filepath.Join(HomeDraftShareDir, "inbox")
	LogPath = filepath.Join(HomeDraftShareDir, "draftshare.log")

	err = os.MkdirAll(InboxDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit("Error creating inbox directory: %v", err)
	}
}
