package googleads

// Platform limits for responsive search ad assets, counted in characters
const (
	MaxHeadlineLength    = 30
	MaxDescriptionLength = 90
)

// MatchType is the keyword match type
type MatchType string

const (
	MatchBroad  MatchType = "BROAD"
	MatchPhrase MatchType = "PHRASE"
	MatchExact  MatchType = "EXACT"
)

// TextAsset is a single headline or description line
type TextAsset struct {
	Text      string `json:"text"`
	Length    int    `json:"length"`
	OverLimit bool   `json:"over_limit"`
}

// Keyword represents a Google Ads keyword
type Keyword struct {
	Text      string    `json:"text"`
	MatchType MatchType `json:"match_type"`
}

// ResponsiveSearchAd is a draft ready to be pasted into a Google Ads ad group
type ResponsiveSearchAd struct {
	Headlines    []TextAsset `json:"headlines"`
	Descriptions []TextAsset `json:"descriptions"`
	Keywords     []Keyword   `json:"keywords"`
}

// HasOverLimitAssets reports whether any asset exceeds the platform limit
func (ad *ResponsiveSearchAd) HasOverLimitAssets() bool {
	for _, a := range ad.Headlines {
		if a.OverLimit {
			return true
		}
	}
	for _, a := range ad.Descriptions {
		if a.OverLimit {
			return true
		}
	}
	return false
}
