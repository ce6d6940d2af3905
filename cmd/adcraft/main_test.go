package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcraft/internal/domain/campaign"
	"adcraft/internal/domain/concept"
	"adcraft/internal/domain/googleads"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRoot()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGeneratePresetText(t *testing.T) {
	out, _, err := run(t, "", "generate", "--preset", "greenframe")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Nagłówek: GreenFrame Studio: Zestawy mebli tarasowych z modrzewia w zgodzie z naturą"))
	assert.Contains(t, out, "Kanały:\nPriorytet kanałów:")
}

func TestGenerateBriefFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brief.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
brandName: Dębowy Zakątek
productFocus: Ławki ogrodowe z dębu
keyBenefits: ["Zaokrąglone krawędzie"]
tone: family
campaignGoal: sale
ctaStyle: urgent
`), 0o644))

	out, _, err := run(t, "", "generate", "--brief", path, "--format", "json")
	require.NoError(t, err)

	var c concept.AdConcept
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, "Ławki ogrodowe z dębu od Dębowy Zakątek na wspólne chwile całej rodziny", c.Headline)
	assert.Equal(t, []string{"Dla całej rodziny: zaokrąglone krawędzie"}, c.SupportPoints)
}

func TestGenerateStdinGoogleAds(t *testing.T) {
	brief := `{"brandName":"B","productFocus":"P","tone":"energetic","campaignGoal":"awareness","ctaStyle":"advisory"}`

	out, _, err := run(t, brief, "generate", "--brief", "-", "--format", "googleads")
	require.NoError(t, err)

	var ad googleads.ResponsiveSearchAd
	require.NoError(t, json.Unmarshal([]byte(out), &ad))
	assert.Len(t, ad.Headlines, 3)
	assert.Equal(t, "B", ad.Headlines[0].Text)
	assert.Equal(t, googleads.MatchBroad, ad.Keywords[0].MatchType)
}

func TestGenerateDebugLogsFingerprint(t *testing.T) {
	_, stderr, err := run(t, "", "generate", "--preset", "greenframe", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "concept generated")
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"no source", "", []string{"generate"}, "one of --brief or --preset is required"},
		{"both sources", "", []string{"generate", "--brief", "x.yaml", "--preset", "greenframe"}, "none of the others can be"},
		{"unknown preset", "", []string{"generate", "--preset", "nope"}, campaign.ErrPresetNotFound.Error()},
		{"unknown format", "", []string{"generate", "--preset", "greenframe", "--format", "pdf"}, `unknown format "pdf"`},
		{"blank brand", `{"brandName":" ","productFocus":"P","tone":"eco","campaignGoal":"sale","ctaStyle":"urgent"}`, []string{"generate", "--brief", "-"}, campaign.ErrBlankBrandName.Error()},
		{"unknown tone", `{"brandName":"B","productFocus":"P","tone":"gothic","campaignGoal":"sale","ctaStyle":"urgent"}`, []string{"generate", "--brief", "-"}, `tone has unknown value "gothic"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := run(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestOptionsCommand(t *testing.T) {
	out, _, err := run(t, "", "options")
	require.NoError(t, err)
	for _, tone := range campaign.Tones() {
		assert.Contains(t, out, string(tone))
	}
	assert.Contains(t, out, "lead-generation")
	assert.Contains(t, out, "newsletter")
}

func TestPresetsCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.yaml"), []byte(`
id: zz-extra
name: Dodatkowy
brief:
  brandName: X
  productFocus: Y
  tone: rustic
  campaignGoal: sale
  ctaStyle: urgent
`), 0o644))

	out, _, err := run(t, "", "presets", "--presets-dir", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "greenframe\tGreenFrame Studio", lines[2])
	assert.Equal(t, "zz-extra\tDodatkowy", lines[3])
}
