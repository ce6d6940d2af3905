package campaign

// Preset is a named, ready-to-edit brief
type Preset struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Brief       Brief  `json:"brief" yaml:"brief"`
}

// PresetRepository defines the contract for the read-only preset catalogue
type PresetRepository interface {
	List() ([]Preset, error)
	GetByID(id string) (*Preset, error)
}
