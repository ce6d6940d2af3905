package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"adcraft/internal/domain/campaign"
	"adcraft/internal/infrastructure/repository"
)

func optionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the allowed values of every brief enumeration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := campaign.Options()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			groups := []struct {
				name    string
				options []campaign.Option
			}{
				{"tone", opts.Tones},
				{"campaignGoal", opts.Goals},
				{"channelEmphasis", opts.Channels},
				{"ctaStyle", opts.CTAStyles},
			}
			for _, g := range groups {
				for _, o := range g.options {
					fmt.Fprintf(w, "%s\t%s\t%s\n", g.name, o.Value, o.Label)
				}
			}
			return w.Flush()
		},
	}
}

func presetsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repository.NewPresetRepository(g.presetsDir)
			if err != nil {
				return err
			}
			presets, err := repo.List()
			if err != nil {
				return err
			}
			for _, p := range presets {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.ID, p.Name)
			}
			return nil
		},
	}
}
