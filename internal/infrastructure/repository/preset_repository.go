package repository

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"adcraft/internal/domain/campaign"
)

//go:embed presets/*.yaml
var builtinPresets embed.FS

type presetRepository struct {
	presets []campaign.Preset
	byID    map[string]int
}

// NewPresetRepository loads the built-in preset catalogue. When dir is not
// empty every *.yaml, *.yml and *.json file in it is loaded on top, replacing
// built-in presets with the same ID.
func NewPresetRepository(dir string) (campaign.PresetRepository, error) {
	r := &presetRepository{byID: make(map[string]int)}

	builtin, err := fs.Sub(builtinPresets, "presets")
	if err != nil {
		return nil, err
	}
	if err := r.loadFS(builtin, "builtin"); err != nil {
		return nil, err
	}

	if dir != "" {
		if err := r.loadFS(os.DirFS(dir), dir); err != nil {
			return nil, err
		}
	}

	sort.Slice(r.presets, func(i, j int) bool {
		return r.presets[i].ID < r.presets[j].ID
	})
	for i, p := range r.presets {
		r.byID[p.ID] = i
	}

	return r, nil
}

func (r *presetRepository) loadFS(fsys fs.FS, origin string) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("read presets from %s: %w", origin, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isPresetFile(entry.Name()) {
			continue
		}

		data, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return fmt.Errorf("read preset %s/%s: %w", origin, entry.Name(), err)
		}

		var p campaign.Preset
		if err := yaml.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("parse preset %s/%s: %w", origin, entry.Name(), err)
		}
		if err := checkPreset(&p); err != nil {
			return fmt.Errorf("preset %s/%s: %w", origin, entry.Name(), err)
		}

		r.put(p)
	}
	return nil
}

func (r *presetRepository) put(p campaign.Preset) {
	for i := range r.presets {
		if r.presets[i].ID == p.ID {
			r.presets[i] = p
			return
		}
	}
	r.presets = append(r.presets, p)
}

func isPresetFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// checkPreset rejects presets the generator could not accept
func checkPreset(p *campaign.Preset) error {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return fmt.Errorf("missing id")
	}
	if !p.Brief.Tone.Valid() {
		return fmt.Errorf("unknown tone %q", p.Brief.Tone)
	}
	if !p.Brief.CampaignGoal.Valid() {
		return fmt.Errorf("unknown campaign goal %q", p.Brief.CampaignGoal)
	}
	if !p.Brief.CTAStyle.Valid() {
		return fmt.Errorf("unknown cta style %q", p.Brief.CTAStyle)
	}
	for _, c := range p.Brief.ChannelEmphasis {
		if !c.Valid() {
			return fmt.Errorf("unknown channel %q", c)
		}
	}
	return nil
}

func (r *presetRepository) List() ([]campaign.Preset, error) {
	out := make([]campaign.Preset, len(r.presets))
	for i, p := range r.presets {
		p.Brief = p.Brief.Clone()
		out[i] = p
	}
	return out, nil
}

func (r *presetRepository) GetByID(id string) (*campaign.Preset, error) {
	i, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, campaign.ErrPresetNotFound
	}

	p := r.presets[i]
	p.Brief = p.Brief.Clone()
	return &p, nil
}
