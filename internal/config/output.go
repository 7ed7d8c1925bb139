package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of the text dump
	JSONFormat bool

	// ShowBoard prints the board grid beside the diff grid
	ShowBoard bool

	// ShowCandidates lists each piece's move and attack candidates
	ShowCandidates bool

	// ShowThreats prints the local seat's friendly/hostile square map
	ShowThreats bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
	}
}
