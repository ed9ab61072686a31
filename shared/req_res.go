package shared

type CreateDraftFromTextRequest struct {
	SourceType SourceType `json:"sourceType"`
	SourceText string     `json:"sourceText"`
	TargetSns  TargetSns  `json:"targetSns"`
}

type CreateDraftFromUrlRequest struct {
	SourceType SourceType `json:"sourceType"`
	SourceUrl  string     `json:"sourceUrl"`
	TargetSns  TargetSns  `json:"targetSns"`
}

type UpdateDraftRequest struct {
	Content string `json:"content"`
}

type DraftResponse struct {
	Draft *Draft `json:"draft"`
}

type ListDraftsResponse struct {
	Drafts []*Draft `json:"drafts"`
}
