package creative

import (
	"fmt"
	"strings"

	"adcraft/internal/domain/campaign"
)

// brief is the normalised view of a campaign.Brief that composers work on.
// The caller's brief is only read, never written.
type brief struct {
	brand    string
	product  string
	audience string
	seasonal string
	benefits []string
	tone     campaign.Tone
	goal     campaign.Goal
	cta      campaign.CTAStyle
	channels []campaign.Channel
}

func normalize(in campaign.Brief) (*brief, error) {
	b := &brief{
		brand:    clean(in.BrandName),
		product:  clean(in.ProductFocus),
		audience: fragment(in.TargetAudience),
		seasonal: fragment(in.SeasonalAngle),
		tone:     in.Tone,
		goal:     in.CampaignGoal,
		cta:      in.CTAStyle,
	}
	if b.brand == "" {
		return nil, campaign.ErrBlankBrandName
	}
	if b.product == "" {
		return nil, campaign.ErrBlankProductFocus
	}

	b.benefits = make([]string, 0, len(in.KeyBenefits))
	for _, raw := range in.KeyBenefits {
		if v := fragment(raw); v != "" {
			b.benefits = append(b.benefits, v)
		}
	}

	selected := make(map[campaign.Channel]bool, len(in.ChannelEmphasis))
	for _, c := range in.ChannelEmphasis {
		if !c.Valid() {
			// Enumerations are validated by the caller; an unknown value here
			// means the caller and the engine disagree about the channel list.
			panic(fmt.Sprintf("creative: unknown channel %q", c))
		}
		selected[c] = true
	}
	for _, c := range campaign.Channels() {
		if selected[c] {
			b.channels = append(b.channels, c)
		}
	}

	return b, nil
}

// fragment cleans text that gets embedded mid-sentence, dropping trailing
// full stops so the surrounding frame controls punctuation. Text is blank
// only when nothing is left after cleaning; punctuation-only text is kept.
func fragment(s string) string {
	v := clean(s)
	if f := strings.TrimSpace(strings.TrimRight(v, ".")); f != "" {
		return f
	}
	return v
}

func (b *brief) firstBenefit() string {
	if len(b.benefits) == 0 {
		return ""
	}
	return b.benefits[0]
}

func (b *brief) slots() slots {
	return slots{
		Brand:    b.brand,
		Product:  b.product,
		Audience: b.audience,
		Seasonal: b.seasonal,
	}
}
