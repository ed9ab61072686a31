package shared

import "time"

// SourceType is how a draft was seeded.
type SourceType string

const (
	SourceTypeImage SourceType = "image"
	SourceTypeText  SourceType = "text"
	SourceTypeUrl   SourceType = "url"
)

type TargetSns string

const (
	SnsX         TargetSns = "x"
	SnsInstagram TargetSns = "instagram"
	SnsLinkedIn  TargetSns = "linkedin"
	SnsBluesky   TargetSns = "bluesky"
)

// Draft is a generated social post. The backend assigns the id and owns the
// canonical state; exactly one of ImageUrl/SourceText/SourceUrl is set,
// matching SourceType. Only Content is mutable after creation.
type Draft struct {
	Id         string     `json:"id"`
	Content    string     `json:"content"`
	ImageUrl   string     `json:"image_url,omitempty"`
	SourceType SourceType `json:"source_type"`
	SourceText string     `json:"source_text,omitempty"`
	SourceUrl  string     `json:"source_url,omitempty"`
	TargetSns  TargetSns  `json:"target_sns"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
