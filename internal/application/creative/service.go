package creative

import (
	"adcraft/internal/domain/campaign"
	"adcraft/internal/domain/concept"
)

// Service defines the ad concept generation use case
type Service interface {
	Generate(brief campaign.Brief) (*concept.AdConcept, error)
}

type service struct {
	lexicon *Lexicon
}

// NewService creates a generator backed by lex, or by the default lexicon
// when lex is nil
func NewService(lex *Lexicon) Service {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &service{lexicon: lex}
}

var defaultService = NewService(nil)

// GenerateAdConcept builds the concept for brief with the default lexicon
func GenerateAdConcept(brief campaign.Brief) (*concept.AdConcept, error) {
	return defaultService.Generate(brief)
}

// Generate is a pure function of brief: it performs no I/O, keeps no state
// between calls and fails only when the brand or product is blank.
func (s *service) Generate(in campaign.Brief) (*concept.AdConcept, error) {
	b, err := normalize(in)
	if err != nil {
		return nil, err
	}
	lex := s.lexicon

	c := &concept.AdConcept{}
	c.Headline = composeHeadline(b, lex)
	c.PrimaryText = composePrimaryText(b, lex)
	c.SupportPoints = composeSupportPoints(b, lex)
	c.SocialSnippets = composeSocialSnippets(b, lex)
	c.GoogleHeadlines = composeGoogleHeadlines(b, lex)
	c.Keywords = extractKeywords(b, lex)
	c.VisualDirection.Imagery, c.VisualDirection.Palette = composeVisualDirection(b, lex)
	c.CTA = composeCTA(b, lex)
	c.CampaignHook = composeCampaignHook(b, lex)

	return c, nil
}
