package config

// DisplayConfig holds settings for board output.
type DisplayConfig struct {
	// Unicode draws pieces with chess symbols instead of letters.
	Unicode bool `yaml:"unicode"`

	// ShowFEN prints the FEN after every move in interactive play.
	ShowFEN bool `yaml:"show_fen"`
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{}
}
