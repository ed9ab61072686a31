package shared

import "fmt"

// SnsInfo is display metadata for a supported social network. MaxLength is
// the network's character budget for a post, informational only.
type SnsInfo struct {
	Id        TargetSns
	Name      string
	Icon      string
	MaxLength int
}

// SnsList is the fixed, ordered set of supported networks.
var SnsList = []SnsInfo{
	{Id: SnsX, Name: "X", Icon: "𝕏", MaxLength: 280},
	{Id: SnsInstagram, Name: "Instagram", Icon: "📷", MaxLength: 2200},
	{Id: SnsLinkedIn, Name: "LinkedIn", Icon: "💼", MaxLength: 3000},
	{Id: SnsBluesky, Name: "Bluesky", Icon: "🦋", MaxLength: 300},
}

func GetSnsInfo(id TargetSns) (SnsInfo, bool) {
	for _, sns := range SnsList {
		if sns.Id == id {
			return sns, true
		}
	}
	return SnsInfo{}, false
}

func ParseTargetSns(s string) (TargetSns, error) {
	for _, sns := range SnsList {
		if string(sns.Id) == s {
			return sns.Id, nil
		}
	}
	return "", fmt.Errorf("unsupported social network: %s", s)
}
