package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcraft/internal/domain/campaign"
)

func validBrief() campaign.Brief {
	return campaign.Brief{
		BrandName:       "GreenFrame Studio",
		ProductFocus:    "Pergole",
		Tone:            campaign.ToneEco,
		CampaignGoal:    campaign.GoalAwareness,
		ChannelEmphasis: []campaign.Channel{campaign.ChannelSearch},
		CTAStyle:        campaign.CTAAdvisory,
	}
}

func TestValidateAcceptsKnownValues(t *testing.T) {
	v := NewBriefValidator()

	assert.NoError(t, v.Validate(validBrief()))

	blank := validBrief()
	blank.BrandName = ""
	blank.ProductFocus = "  "
	blank.ChannelEmphasis = nil
	assert.NoError(t, v.Validate(blank), "blank required text is the generator's call")
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*campaign.Brief)
		field  string
		reason string
	}{
		{"unknown tone", func(b *campaign.Brief) { b.Tone = "gothic" }, "tone", `has unknown value "gothic"`},
		{"empty tone", func(b *campaign.Brief) { b.Tone = "" }, "tone", `has unknown value ""`},
		{"unknown goal", func(b *campaign.Brief) { b.CampaignGoal = "sprzedaż" }, "campaignGoal", `has unknown value "sprzedaż"`},
		{"unknown cta", func(b *campaign.Brief) { b.CTAStyle = "loud" }, "ctaStyle", `has unknown value "loud"`},
		{"unknown channel", func(b *campaign.Brief) {
			b.ChannelEmphasis = []campaign.Channel{campaign.ChannelSocial, "tiktok"}
		}, "channelEmphasis[1]", `has unknown value "tiktok"`},
		{"brand too long", func(b *campaign.Brief) { b.BrandName = strings.Repeat("x", 201) }, "brandName", "exceeds 200"},
		{"too many benefits", func(b *campaign.Brief) { b.KeyBenefits = make([]string, 21) }, "keyBenefits", "exceeds 20"},
	}

	v := NewBriefValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBrief()
			tt.mutate(&b)

			err := v.Validate(b)
			require.Error(t, err)
			assert.ErrorIs(t, err, campaign.ErrValidation)

			var vErr *campaign.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.reason, vErr.Reason)
		})
	}
}
