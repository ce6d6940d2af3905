package export

import (
	"strings"
	"unicode/utf8"

	"adcraft/internal/domain/concept"
	"adcraft/internal/domain/googleads"
)

// Format identifies an export layout
type Format string

const (
	FormatText      Format = "text"
	FormatGoogleAds Format = "googleads"
)

// Service defines the export formats offered for a generated concept
type Service interface {
	Text(c *concept.AdConcept) string
	SearchAd(c *concept.AdConcept) googleads.ResponsiveSearchAd
}

type service struct{}

// NewService creates a new export service
func NewService() Service {
	return &service{}
}

// Text renders the whole concept as a plain-text brief for pasting into
// documents or chat. Sections are separated by a blank line.
func (s *service) Text(c *concept.AdConcept) string {
	var lines []string
	section := func(body ...string) {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, body...)
	}

	section("Nagłówek: " + c.Headline)
	section("Tekst główny:", c.PrimaryText)
	section(append([]string{"Punkty wsparcia:"}, bullets(c.SupportPoints)...)...)
	section(append([]string{"Social:"}, bullets(c.SocialSnippets)...)...)
	section(append([]string{"Google Ads:"}, bullets(c.GoogleHeadlines)...)...)
	section("Słowa kluczowe: " + strings.Join(c.Keywords, ", "))
	section("CTA: " + c.CTA)
	section(
		"Kierunek wizualny: "+c.VisualDirection.Imagery,
		"Paleta: "+strings.Join(c.VisualDirection.Palette, ", "),
	)
	section("Kanały:", c.CampaignHook)

	return strings.Join(lines, "\n")
}

func bullets(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = "- " + item
	}
	return out
}

// SearchAd turns the concept into a responsive search ad draft. Assets over
// the platform limits are kept and flagged rather than cut.
func (s *service) SearchAd(c *concept.AdConcept) googleads.ResponsiveSearchAd {
	ad := googleads.ResponsiveSearchAd{
		Headlines:    make([]googleads.TextAsset, 0, len(c.GoogleHeadlines)),
		Descriptions: []googleads.TextAsset{},
		Keywords:     make([]googleads.Keyword, 0, len(c.Keywords)),
	}

	for _, h := range c.GoogleHeadlines {
		ad.Headlines = append(ad.Headlines, asset(h, googleads.MaxHeadlineLength))
	}
	for _, d := range sentences(c.PrimaryText) {
		ad.Descriptions = append(ad.Descriptions, asset(d, googleads.MaxDescriptionLength))
	}
	for _, kw := range c.Keywords {
		ad.Keywords = append(ad.Keywords, googleads.Keyword{Text: kw, MatchType: googleads.MatchBroad})
	}

	return ad
}

func asset(text string, limit int) googleads.TextAsset {
	n := utf8.RuneCountInString(text)
	return googleads.TextAsset{Text: text, Length: n, OverLimit: n > limit}
}

// sentences splits text after ".", "!" or "?" followed by a space
func sentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			if i+1 == len(text) || text[i+1] == ' ' {
				if s := strings.TrimSpace(text[start : i+1]); s != "" {
					out = append(out, s)
				}
				start = i + 1
			}
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}
