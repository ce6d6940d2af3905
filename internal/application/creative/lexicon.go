package creative

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"

	"adcraft/internal/domain/campaign"
)

// UrgencyLevel is how hard a goal pushes for an immediate reaction
type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
)

// UrgencyLevels returns every urgency level
func UrgencyLevels() []UrgencyLevel {
	return []UrgencyLevel{UrgencyLow, UrgencyMedium, UrgencyHigh}
}

// ToneVoice holds the phrasing of one tone
type ToneVoice struct {
	Adjectives []string
	Imagery    string
	Palette    []string
	Opening    *template.Template
	Question   *template.Template
	Qualifier  string
	Keyword    string
	Tagline    string
}

// GoalFraming holds the phrasing of one campaign goal
type GoalFraming struct {
	BodyClosing    *template.Template
	Urgency        UrgencyLevel
	SearchHeadline string
}

// Frames are the tone-independent sentence frames composers slot values into
type Frames struct {
	Audience         *template.Template
	AudienceFallback string
	Pitch            *template.Template
	Benefits         *template.Template
	SupportPoint     *template.Template
	BenefitHighlight *template.Template
	GenericHighlight *template.Template
	SeasonalSnippet  *template.Template
	HookLead         *template.Template
	HookSeasonal     *template.Template
	FallbackHook     string
	SearchFallback   string
}

// Lexicon is the complete static phrase table. It is read-only once built
// and safe for concurrent use.
type Lexicon struct {
	Voices  map[campaign.Tone]ToneVoice
	Goals   map[campaign.Goal]GoalFraming
	CTAs    map[campaign.CTAStyle]*template.Template
	Hooks   map[campaign.Channel]string
	Urgency map[UrgencyLevel]*template.Template
	Frames  Frames
}

// slots are the values a template may reference
type slots struct {
	Brand      string
	Product    string
	Audience   string
	Seasonal   string
	Benefit    string
	Benefits   string
	Adjective  string
	Adjectives string
	Qualifier  string
	Channels   string
}

var templateFuncs = template.FuncMap{
	"lcfirst": lowerFirst,
	"ucfirst": upperFirst,
}

func phrase(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).Parse(text))
}

func render(t *template.Template, s slots) string {
	var sb strings.Builder
	if err := t.Execute(&sb, s); err != nil {
		panic(fmt.Sprintf("creative: template %q: %v", t.Name(), err))
	}
	return sb.String()
}

func (l *Lexicon) voice(t campaign.Tone) ToneVoice {
	v, ok := l.Voices[t]
	if !ok {
		panic(fmt.Sprintf("creative: lexicon has no voice for tone %q", t))
	}
	return v
}

func (l *Lexicon) goal(g campaign.Goal) GoalFraming {
	f, ok := l.Goals[g]
	if !ok {
		panic(fmt.Sprintf("creative: lexicon has no framing for goal %q", g))
	}
	return f
}

func (l *Lexicon) cta(s campaign.CTAStyle) *template.Template {
	t, ok := l.CTAs[s]
	if !ok {
		panic(fmt.Sprintf("creative: lexicon has no CTA for style %q", s))
	}
	return t
}

func (l *Lexicon) hook(c campaign.Channel) string {
	h, ok := l.Hooks[c]
	if !ok {
		panic(fmt.Sprintf("creative: lexicon has no hook for channel %q", c))
	}
	return h
}

func (l *Lexicon) urgency(u UrgencyLevel) *template.Template {
	t, ok := l.Urgency[u]
	if !ok {
		panic(fmt.Sprintf("creative: lexicon has no wording for urgency %q", u))
	}
	return t
}

// Check reports every enumeration value the lexicon does not cover and
// every entry that would make a composer produce an empty field.
func (l *Lexicon) Check() error {
	var errs []error
	missing := func(table string, key any) {
		errs = append(errs, fmt.Errorf("%s: missing entry for %q", table, key))
	}

	for _, t := range campaign.Tones() {
		v, ok := l.Voices[t]
		if !ok {
			missing("voices", t)
			continue
		}
		if len(v.Adjectives) == 0 || len(v.Palette) == 0 {
			errs = append(errs, fmt.Errorf("voices: tone %q needs adjectives and a palette", t))
		}
		if v.Opening == nil || v.Question == nil || v.Imagery == "" || v.Keyword == "" || v.Tagline == "" {
			errs = append(errs, fmt.Errorf("voices: tone %q is incomplete", t))
		}
	}
	for _, g := range campaign.Goals() {
		f, ok := l.Goals[g]
		if !ok {
			missing("goals", g)
			continue
		}
		if f.BodyClosing == nil || f.SearchHeadline == "" {
			errs = append(errs, fmt.Errorf("goals: goal %q is incomplete", g))
		}
		if _, ok := l.Urgency[f.Urgency]; !ok {
			missing("urgency", f.Urgency)
		}
	}
	for _, s := range campaign.CTAStyles() {
		if l.CTAs[s] == nil {
			missing("ctas", s)
		}
	}
	for _, c := range campaign.Channels() {
		if l.Hooks[c] == "" {
			missing("hooks", c)
		}
	}
	for _, u := range UrgencyLevels() {
		if l.Urgency[u] == nil {
			missing("urgency", u)
		}
	}
	frames := []struct {
		name string
		tmpl *template.Template
	}{
		{"audience", l.Frames.Audience},
		{"pitch", l.Frames.Pitch},
		{"benefits", l.Frames.Benefits},
		{"supportPoint", l.Frames.SupportPoint},
		{"benefitHighlight", l.Frames.BenefitHighlight},
		{"genericHighlight", l.Frames.GenericHighlight},
		{"seasonalSnippet", l.Frames.SeasonalSnippet},
		{"hookLead", l.Frames.HookLead},
		{"hookSeasonal", l.Frames.HookSeasonal},
	}
	for _, f := range frames {
		if f.tmpl == nil {
			missing("frames", f.name)
		}
	}
	if l.Frames.FallbackHook == "" || l.Frames.AudienceFallback == "" || l.Frames.SearchFallback == "" {
		errs = append(errs, errors.New("frames: fallback sentences must not be empty"))
	}
	errs = append(errs, l.checkSearchFallbacks()...)

	return errors.Join(errs...)
}

// checkSearchFallbacks makes sure the three fixed search headlines of every
// goal and tone pair are distinct, so three unique headlines always exist.
func (l *Lexicon) checkSearchFallbacks() []error {
	var errs []error
	fold := cases.Fold()
	for _, g := range campaign.Goals() {
		for _, t := range campaign.Tones() {
			f, okGoal := l.Goals[g]
			v, okTone := l.Voices[t]
			if !okGoal || !okTone {
				continue
			}
			a, b, c := fold.String(f.SearchHeadline), fold.String(v.Tagline), fold.String(l.Frames.SearchFallback)
			if a == b || a == c || b == c {
				errs = append(errs, fmt.Errorf("search: fallback headlines of %q/%q are not distinct", g, t))
			}
		}
	}
	return errs
}
