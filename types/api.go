package types

import (
	shared "draftshare-cli/shared"
)

// ApiClient is the drafts backend gateway. One method per operation, each a
// single request/response round trip with no batching, retries, or caching.
type ApiClient interface {
	CreateDraftFromImage(imagePath, mimeType string, targetSns shared.TargetSns) (*shared.Draft, *shared.ApiError)
	CreateDraftFromText(sourceText string, targetSns shared.TargetSns) (*shared.Draft, *shared.ApiError)
	CreateDraftFromUrl(sourceUrl string, targetSns shared.TargetSns) (*shared.Draft, *shared.ApiError)

	GetDrafts() ([]*shared.Draft, *shared.ApiError)
	UpdateDraft(draftId, content string) (*shared.Draft, *shared.ApiError)
	DeleteDraft(draftId string) *shared.ApiError
}
