package concept

// VisualDirection describes imagery and colour for the creative team
type VisualDirection struct {
	Imagery string   `json:"imagery"`
	Palette []string `json:"palette"`
}

// AdConcept is the generated copy bundle for one brief
type AdConcept struct {
	Headline        string          `json:"headline"`
	PrimaryText     string          `json:"primaryText"`
	SupportPoints   []string        `json:"supportPoints"`
	SocialSnippets  []string        `json:"socialSnippets"`
	GoogleHeadlines []string        `json:"googleHeadlines"`
	Keywords        []string        `json:"keywords"`
	VisualDirection VisualDirection `json:"visualDirection"`
	CTA             string          `json:"cta"`
	CampaignHook    string          `json:"campaignHook"`
}
