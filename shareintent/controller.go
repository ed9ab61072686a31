package shareintent

import (
	"log"
	"regexp"
	"strings"
	"sync/atomic"

	"draftshare-cli/lib"
	shared "draftshare-cli/shared"
	"draftshare-cli/types"
)

var urlPattern = regexp.MustCompile(`(?i)^https?://`)

// IsUrlText reports whether shared text should be treated as a URL rather
// than free text when seeding a draft.
func IsUrlText(text string) bool {
	return urlPattern.MatchString(text)
}

type ControllerParams struct {
	Client types.ApiClient
	Drafts *lib.DraftsState

	// TargetSns supplies the currently selected network at dispatch time.
	TargetSns func() shared.TargetSns

	// Notify reports a user-facing error message. Optional.
	Notify func(msg string)

	// OnGenerating reports busy-state transitions for UI feedback. Optional.
	OnGenerating func(generating bool)

	// OnDraft is called with each successfully created draft after it has
	// been prepended to the list. Optional.
	OnDraft func(draft *shared.Draft)
}

// Controller converts inbound share payloads into drafts. For each payload
// it dispatches at most one backend creation call, prepends the result to
// the draft list, and acknowledges the payload so the host layer retires it.
type Controller struct {
	client       types.ApiClient
	drafts       *lib.DraftsState
	targetSns    func() shared.TargetSns
	notify       func(msg string)
	onGenerating func(generating bool)
	onDraft      func(draft *shared.Draft)

	// processing guards against a second handling attempt starting while a
	// payload is in flight. It lives on the controller instance, not in any
	// per-call state, and is set before the first suspension point.
	processing atomic.Bool
}

func NewController(params ControllerParams) *Controller {
	c := &Controller{
		client:       params.Client,
		drafts:       params.Drafts,
		targetSns:    params.TargetSns,
		notify:       params.Notify,
		onGenerating: params.OnGenerating,
		onDraft:      params.OnDraft,
	}
	if c.targetSns == nil {
		c.targetSns = func() shared.TargetSns { return shared.SnsX }
	}
	if c.notify == nil {
		c.notify = func(string) {}
	}
	if c.onGenerating == nil {
		c.onGenerating = func(bool) {}
	}
	if c.onDraft == nil {
		c.onDraft = func(*shared.Draft) {}
	}
	return c
}

// Handle processes one share payload. Shared text takes priority over files;
// text beginning with http:// or https:// (case-insensitive) seeds a URL
// draft, any other text seeds a text draft. Without text, only the first
// file is considered, and it must have a path and an image/* MIME type;
// anything else is acknowledged and dropped without a backend call.
//
// A delivery that arrives while another payload is still in flight is
// rejected outright: it is not acknowledged, and no second creation call is
// issued. The in-flight payload's own acknowledgement retires it.
func (c *Controller) Handle(intent *types.ShareIntent, ack func()) {
	if intent == nil {
		return
	}

	if !c.processing.CompareAndSwap(false, true) {
		return
	}
	defer c.processing.Store(false)

	if intent.Text != "" {
		defer ack()
		text := intent.Text
		c.generate(func() (*shared.Draft, *shared.ApiError) {
			if IsUrlText(text) {
				return c.client.CreateDraftFromUrl(text, c.targetSns())
			}
			return c.client.CreateDraftFromText(text, c.targetSns())
		})
		return
	}

	if len(intent.Files) == 0 {
		ack()
		return
	}

	file := intent.Files[0]
	if file.Path == "" || !strings.HasPrefix(file.MimeType, "image/") {
		ack()
		return
	}

	defer ack()
	c.generate(func() (*shared.Draft, *shared.ApiError) {
		return c.client.CreateDraftFromImage(file.Path, file.MimeType, c.targetSns())
	})
}

func (c *Controller) generate(create func() (*shared.Draft, *shared.ApiError)) {
	c.onGenerating(true)
	defer c.onGenerating(false)

	draft, apiErr := create()
	if apiErr != nil {
		log.Printf("Error generating draft from share payload: %v\n", apiErr.Msg)
		c.notify("draft generation failed")
		return
	}

	c.drafts.Prepend(draft)
	c.onDraft(draft)
}
