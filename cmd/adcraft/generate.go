package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"adcraft/internal/application/creative"
	"adcraft/internal/application/export"
	"adcraft/internal/delivery/validation"
	"adcraft/internal/domain/campaign"
	"adcraft/internal/infrastructure/repository"
)

const formatJSON = "json"

func generateCmd(g *globals) *cobra.Command {
	var briefPath, presetID, format string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an ad concept from a brief file or preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				brief campaign.Brief
				err   error
			)
			switch {
			case briefPath != "":
				brief, err = readBriefFile(briefPath, cmd.InOrStdin())
			case presetID != "":
				brief, err = loadPreset(g.presetsDir, presetID)
			default:
				return fmt.Errorf("one of --brief or --preset is required")
			}
			if err != nil {
				return err
			}
			return runGenerate(cmd.OutOrStdout(), g.logger(cmd), brief, format)
		},
	}
	cmd.Flags().StringVar(&briefPath, "brief", "", `Brief file in YAML or JSON ("-" reads stdin)`)
	cmd.Flags().StringVar(&presetID, "preset", "", "Preset ID to generate from")
	cmd.Flags().StringVar(&format, "format", string(export.FormatText), "Output format: text, json or googleads")
	cmd.MarkFlagsMutuallyExclusive("brief", "preset")
	return cmd
}

func readBriefFile(path string, stdin io.Reader) (campaign.Brief, error) {
	var brief campaign.Brief

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return brief, fmt.Errorf("read brief: %w", err)
	}

	// YAML is a superset of JSON, so one decoder serves both.
	if err := yaml.Unmarshal(data, &brief); err != nil {
		return brief, fmt.Errorf("parse brief %s: %w", path, err)
	}
	return brief, nil
}

func loadPreset(dir, id string) (campaign.Brief, error) {
	repo, err := repository.NewPresetRepository(dir)
	if err != nil {
		return campaign.Brief{}, err
	}
	p, err := repo.GetByID(id)
	if err != nil {
		return campaign.Brief{}, fmt.Errorf("%w: %s", err, id)
	}
	return p.Brief, nil
}

func runGenerate(out io.Writer, log zerolog.Logger, brief campaign.Brief, format string) error {
	if format != formatJSON && format != string(export.FormatText) && format != string(export.FormatGoogleAds) {
		return fmt.Errorf("unknown format %q", format)
	}

	if err := validation.NewBriefValidator().Validate(brief); err != nil {
		return err
	}

	c, err := creative.GenerateAdConcept(brief)
	if err != nil {
		return err
	}
	log.Debug().
		Str("brand", brief.BrandName).
		Str("tone", string(brief.Tone)).
		Str("fingerprint", creative.Fingerprint(c)).
		Msg("concept generated")

	exporter := export.NewService()
	switch format {
	case formatJSON:
		return writeJSON(out, c)
	case string(export.FormatGoogleAds):
		ad := exporter.SearchAd(c)
		if ad.HasOverLimitAssets() {
			log.Warn().Msg("some assets exceed Google Ads length limits, see over_limit")
		}
		return writeJSON(out, ad)
	default:
		_, err := fmt.Fprintln(out, exporter.Text(c))
		return err
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
