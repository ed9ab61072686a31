package share

import (
	"errors"
	"fmt"
	"net/url"

	shared "draftshare-cli/shared"
	"draftshare-cli/term"

	"github.com/atotto/clipboard"
)

// Per-network compose endpoints. X still answers to the twitter schemes.
const (
	xAppUrl      = "twitter://post"
	xWebUrl      = "https://twitter.com/intent/tweet"
	instagramUrl = "instagram://"
	linkedinUrl  = "https://www.linkedin.com/sharing/share-offsite/"
	blueskyUrl   = "https://bsky.app/intent/compose"
)

// Router hands finished draft text to a target network's composer. Each
// network gets its own strategy; open failures propagate to the caller,
// which is responsible for notifying the user.
type Router struct {
	opener    Opener
	clipboard func(text string) error
	inform    func(msg string)
}

func NewRouter() *Router {
	return &Router{
		opener:    DefaultOpener,
		clipboard: clipboard.WriteAll,
		inform:    term.WaitForUserKey,
	}
}

func (r *Router) ShareToSns(content string, targetSns shared.TargetSns) error {
	switch targetSns {
	case shared.SnsX:
		return r.shareToX(content)
	case shared.SnsInstagram:
		return r.shareToInstagram(content)
	case shared.SnsLinkedIn:
		return r.shareToLinkedIn(content)
	case shared.SnsBluesky:
		return r.shareToBluesky(content)
	default:
		return fmt.Errorf("unsupported social network: %s", targetSns)
	}
}

// shareToX tries the native compose scheme first and falls back to the web
// intent URL with the same encoded text.
func (r *Router) shareToX(content string) error {
	encoded := url.QueryEscape(content)

	appUrl := fmt.Sprintf("%s?message=%s", xAppUrl, encoded)
	if r.opener.CanOpen(appUrl) {
		return r.opener.Open(appUrl)
	}

	return r.opener.Open(fmt.Sprintf("%s?text=%s", xWebUrl, encoded))
}

// shareToInstagram copies the text to the clipboard, since Instagram's URL
// scheme can't receive text, then opens the app once the user acknowledges.
func (r *Router) shareToInstagram(content string) error {
	if err := r.clipboard(content); err != nil {
		return fmt.Errorf("error copying to clipboard: %v", err)
	}

	r.inform("Copied to clipboard. Instagram will open next. Paste into the composer.")

	if !r.opener.CanOpen(instagramUrl) {
		return errors.New("the Instagram app is not installed")
	}
	return r.opener.Open(instagramUrl)
}

func (r *Router) shareToLinkedIn(content string) error {
	return r.opener.Open(fmt.Sprintf("%s?url=&summary=%s", linkedinUrl, url.QueryEscape(content)))
}

func (r *Router) shareToBluesky(content string) error {
	return r.opener.Open(fmt.Sprintf("%s?text=%s", blueskyUrl, url.QueryEscape(content)))
}
