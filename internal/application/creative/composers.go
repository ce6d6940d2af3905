package creative

import (
	"strings"

	"golang.org/x/text/cases"
)

const (
	// headlineSeparator joins the seasonal clause after the core headline so
	// the brand always leads.
	headlineSeparator = " — "

	// maxBodyBenefits caps how many benefits the primary text mentions
	maxBodyBenefits = 3

	// SearchHeadlineTarget is the length search headlines are written for.
	// It is a target, not a contract: long brand or product names pass
	// through unshortened.
	SearchHeadlineTarget = 30

	searchHeadlineCount = 3
)

func composeHeadline(b *brief, lex *Lexicon) string {
	headline := render(lex.voice(b.tone).Opening, b.slots())
	if b.seasonal == "" {
		return headline
	}
	return headline + headlineSeparator + b.seasonal
}

func composePrimaryText(b *brief, lex *Lexicon) string {
	voice := lex.voice(b.tone)
	s := b.slots()

	audience := lex.Frames.AudienceFallback
	if b.audience != "" {
		audience = render(lex.Frames.Audience, s)
	}

	s.Adjectives = joinList(voice.Adjectives, "i")
	pitch := render(lex.Frames.Pitch, s)

	var benefits string
	if n := min(len(b.benefits), maxBodyBenefits); n > 0 {
		clauses := make([]string, n)
		for i, benefit := range b.benefits[:n] {
			clauses[i] = lowerFirst(benefit)
		}
		s.Benefits = joinList(clauses, "oraz")
		benefits = render(lex.Frames.Benefits, s)
	}

	closing := render(lex.goal(b.goal).BodyClosing, s)

	return joinSentences(audience, pitch, benefits, closing)
}

func composeSupportPoints(b *brief, lex *Lexicon) []string {
	s := b.slots()
	s.Qualifier = lex.voice(b.tone).Qualifier

	points := make([]string, 0, len(b.benefits))
	for _, benefit := range b.benefits {
		s.Benefit = benefit
		points = append(points, render(lex.Frames.SupportPoint, s))
	}
	return points
}

// composeSocialSnippets always returns three variants: a question hook, a
// benefit highlight and a seasonal or urgency line.
func composeSocialSnippets(b *brief, lex *Lexicon) []string {
	voice := lex.voice(b.tone)
	s := b.slots()

	question := render(voice.Question, s)

	var highlight string
	if benefit := b.firstBenefit(); benefit != "" {
		s.Benefit = benefit
		highlight = render(lex.Frames.BenefitHighlight, s)
	} else {
		s.Adjective = voice.Adjectives[0]
		highlight = render(lex.Frames.GenericHighlight, s)
	}

	var closer string
	if b.seasonal != "" {
		closer = render(lex.Frames.SeasonalSnippet, s)
	} else {
		closer = render(lex.urgency(lex.goal(b.goal).Urgency), s)
	}

	return []string{question, highlight, closer}
}

// composeGoogleHeadlines picks the first three distinct candidates. The goal,
// tone and generic fallbacks are distinct by construction, which guarantees
// three results even when brand, product and benefit collide.
func composeGoogleHeadlines(b *brief, lex *Lexicon) []string {
	candidates := []string{
		b.brand,
		b.product,
		b.firstBenefit(),
		lex.goal(b.goal).SearchHeadline,
		lex.voice(b.tone).Tagline,
		lex.Frames.SearchFallback,
	}

	fold := cases.Fold()
	seen := make(map[string]bool, len(candidates))
	headlines := make([]string, 0, searchHeadlineCount)
	for _, c := range candidates {
		key := fold.String(c)
		if c == "" || seen[key] {
			continue
		}
		seen[key] = true
		headlines = append(headlines, c)
		if len(headlines) == searchHeadlineCount {
			break
		}
	}
	return headlines
}

func composeVisualDirection(b *brief, lex *Lexicon) (string, []string) {
	voice := lex.voice(b.tone)
	palette := make([]string, len(voice.Palette))
	copy(palette, voice.Palette)
	return voice.Imagery, palette
}

func composeCTA(b *brief, lex *Lexicon) string {
	return render(lex.cta(b.cta), b.slots())
}

// composeCampaignHook lists channel advice in canonical channel order. With
// no channel selected it falls back to a fixed generic sentence.
func composeCampaignHook(b *brief, lex *Lexicon) string {
	if len(b.channels) == 0 {
		return lex.Frames.FallbackHook
	}

	phrases := make([]string, len(b.channels))
	for i, c := range b.channels {
		phrases[i] = lex.hook(c)
	}

	s := b.slots()
	s.Channels = strings.Join(phrases, "; ")
	hook := render(lex.Frames.HookLead, s)
	if b.seasonal != "" {
		hook = joinSentences(hook, render(lex.Frames.HookSeasonal, s))
	}
	return hook
}
