package campaign

// Tone represents the voice the copy is written in
type Tone string

const (
	TonePremium   Tone = "premium"
	ToneRustic    Tone = "rustic"
	ToneFamily    Tone = "family"
	ToneEco       Tone = "eco"
	ToneEnergetic Tone = "energetic"
)

// Goal represents what the campaign is optimised for
type Goal string

const (
	GoalSale           Goal = "sale"
	GoalLeadGeneration Goal = "lead-generation"
	GoalAwareness      Goal = "awareness"
)

// CTAStyle represents how the call to action is phrased
type CTAStyle string

const (
	CTAUrgent        CTAStyle = "urgent"
	CTAInspirational CTAStyle = "inspirational"
	CTAAdvisory      CTAStyle = "advisory"
)

// Channel represents a distribution channel the campaign emphasises
type Channel string

const (
	ChannelSocial     Channel = "social"
	ChannelSearch     Channel = "search"
	ChannelPinterest  Channel = "pinterest"
	ChannelNewsletter Channel = "newsletter"
)

// Brief is the structured campaign input. It is never mutated by the generator.
type Brief struct {
	BrandName       string    `json:"brandName" yaml:"brandName" validate:"max=200"`
	ProductFocus    string    `json:"productFocus" yaml:"productFocus" validate:"max=300"`
	TargetAudience  string    `json:"targetAudience" yaml:"targetAudience" validate:"max=500"`
	KeyBenefits     []string  `json:"keyBenefits" yaml:"keyBenefits" validate:"max=20,dive,max=300"`
	Tone            Tone      `json:"tone" yaml:"tone" validate:"tone"`
	CampaignGoal    Goal      `json:"campaignGoal" yaml:"campaignGoal" validate:"goal"`
	ChannelEmphasis []Channel `json:"channelEmphasis" yaml:"channelEmphasis" validate:"max=8,dive,channel"`
	CTAStyle        CTAStyle  `json:"ctaStyle" yaml:"ctaStyle" validate:"ctastyle"`
	SeasonalAngle   string    `json:"seasonalAngle,omitempty" yaml:"seasonalAngle,omitempty" validate:"max=300"`
}

// Tones returns every tone in canonical order
func Tones() []Tone {
	return []Tone{TonePremium, ToneRustic, ToneFamily, ToneEco, ToneEnergetic}
}

// Goals returns every campaign goal in canonical order
func Goals() []Goal {
	return []Goal{GoalSale, GoalLeadGeneration, GoalAwareness}
}

// CTAStyles returns every CTA style in canonical order
func CTAStyles() []CTAStyle {
	return []CTAStyle{CTAUrgent, CTAInspirational, CTAAdvisory}
}

// Channels returns every channel in canonical order. Hooks always list
// channels in this order regardless of how the caller selected them.
func Channels() []Channel {
	return []Channel{ChannelSocial, ChannelSearch, ChannelPinterest, ChannelNewsletter}
}

// Valid reports whether t is a known tone
func (t Tone) Valid() bool {
	for _, v := range Tones() {
		if v == t {
			return true
		}
	}
	return false
}

// Valid reports whether g is a known goal
func (g Goal) Valid() bool {
	for _, v := range Goals() {
		if v == g {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known CTA style
func (s CTAStyle) Valid() bool {
	for _, v := range CTAStyles() {
		if v == s {
			return true
		}
	}
	return false
}

// Valid reports whether c is a known channel
func (c Channel) Valid() bool {
	for _, v := range Channels() {
		if v == c {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the brief
func (b Brief) Clone() Brief {
	out := b
	if b.KeyBenefits != nil {
		out.KeyBenefits = append([]string(nil), b.KeyBenefits...)
	}
	if b.ChannelEmphasis != nil {
		out.ChannelEmphasis = append([]Channel(nil), b.ChannelEmphasis...)
	}
	return out
}
