package creative

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcraft/internal/domain/campaign"
)

func keywordsFor(t *testing.T, in campaign.Brief) []string {
	t.Helper()
	b, err := normalize(in)
	require.NoError(t, err)
	return extractKeywords(b, DefaultLexicon())
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name     string
		product  string
		benefits []string
		tone     campaign.Tone
		want     []string
	}{
		{
			name:    "product then benefits then tone",
			product: "Huśtawki ogrodowe",
			benefits: []string{
				"Stal nierdzewna",
				"Montaż w cenie",
			},
			tone: campaign.ToneFamily,
			want: []string{"huśtawki", "ogrodowe", "stal", "nierdzewna", "montaż", "cenie", "rodzinny"},
		},
		{
			name:     "case insensitive dedup keeps first occurrence",
			product:  "Drewno DREWNO drewno",
			benefits: []string{"Drewniane drewno", "", "  "},
			tone:     campaign.ToneRustic,
			want:     []string{"drewno", "drewniane", "rustykalny"},
		},
		{
			name:    "stop words and single characters are dropped",
			product: "Stół z drewna i stali dla 4 osób",
			tone:    campaign.TonePremium,
			want:    []string{"stół", "drewna", "stali", "osób", "premium"},
		},
		{
			name:     "tone keyword already present is not repeated",
			product:  "Eko meble",
			benefits: []string{"eko"},
			tone:     campaign.ToneEco,
			want:     []string{"eko", "meble"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keywordsFor(t, campaign.Brief{
				BrandName:    "Marka",
				ProductFocus: tt.product,
				KeyBenefits:  tt.benefits,
				Tone:         tt.tone,
				CampaignGoal: campaign.GoalSale,
				CTAStyle:     campaign.CTAUrgent,
			})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("keywords mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractKeywordsShortTokens(t *testing.T) {
	got := keywordsFor(t, campaign.Brief{
		BrandName:    "Altana Atelier",
		ProductFocus: "Altany",
		KeyBenefits:  []string{"5-letnia gwarancja", "Montaż w 10 dni"},
		Tone:         campaign.TonePremium,
	})

	assert.Equal(t, []string{"altany", "letnia", "gwarancja", "montaż", "10", "dni", DefaultLexicon().Voices[campaign.TonePremium].Keyword}, got)
	assert.NotContains(t, got, "5")
}

func TestExtractKeywordsHasNoCaseInsensitiveDuplicates(t *testing.T) {
	got := keywordsFor(t, campaign.Brief{
		BrandName:    "Marka",
		ProductFocus: "ŁAWKA Ławka ławka Ogród",
		KeyBenefits:  []string{"OGRÓD ogród", "Ławka", "Premium"},
		Tone:         campaign.TonePremium,
		CampaignGoal: campaign.GoalAwareness,
		CTAStyle:     campaign.CTAAdvisory,
	})

	seen := map[string]bool{}
	for _, kw := range got {
		key := strings.ToLower(kw)
		assert.False(t, seen[key], "duplicate keyword %q", kw)
		seen[key] = true
	}
	assert.Equal(t, []string{"ławka", "ogród", "premium"}, got)
}
