package share

import (
	"bytes"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/pkg/browser"
)

// Opener is the platform's check-and-open URL primitive.
type Opener interface {
	CanOpen(rawUrl string) bool
	Open(rawUrl string) error
}

type systemOpener struct{}

var DefaultOpener Opener = systemOpener{}

func (systemOpener) CanOpen(rawUrl string) bool {
	u, err := url.Parse(rawUrl)
	if err != nil {
		return false
	}
	if u.Scheme == "http" || u.Scheme == "https" {
		return true
	}
	return hasSchemeHandler(u.Scheme)
}

func (systemOpener) Open(rawUrl string) error {
	return browser.OpenURL(rawUrl)
}

func hasSchemeHandler(scheme string) bool {
	switch runtime.GOOS {
	case "linux":
		out, err := exec.Command("xdg-mime", "query", "default", "x-scheme-handler/"+scheme).Output()
		return err == nil && len(bytes.TrimSpace(out)) > 0
	default:
		// macOS and Windows resolve scheme handlers at open time; report
		// openable and let Open surface the failure.
		return true
	}
}
